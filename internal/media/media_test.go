package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverFix(t *testing.T) {
	r := NewResolver("https://backend.example.com/api/", "")

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"double prefixed absolute", "/media/https://cdn.example.com/x.png", "https://cdn.example.com/x.png"},
		{"host relative", "/media/products/a.png", "https://backend.example.com/media/products/a.png"},
		{"already absolute", "https://cdn.example.com/b.png", "https://cdn.example.com/b.png"},
		{"encoded colon", "/media/https%3A/cdn.example.com/c.png", "https://cdn.example.com/c.png"},
		{"single slash scheme", "/media/https:/cdn.example.com/d.png", "https://cdn.example.com/d.png"},
		{"plain http prefix", "/media/http://cdn.example.com/e.png", "http://cdn.example.com/e.png"},
		{"empty", "", ""},
		{"bare name", "logo.png", "logo.png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Fix(tc.in))
		})
	}
}

func TestNewResolverHost(t *testing.T) {
	assert.Equal(t, "https://backend.example.com", NewResolver("https://backend.example.com/api", "").Host())
	assert.Equal(t, "https://media.example.com", NewResolver("https://backend.example.com/api/", "https://media.example.com/").Host())
	assert.Equal(t, "", NewResolver("", "").Host())
}

func TestFixWithoutHostKeepsRelativePath(t *testing.T) {
	r := NewResolver("", "")
	assert.Equal(t, "/media/products/a.png", r.Fix("/media/products/a.png"))
}
