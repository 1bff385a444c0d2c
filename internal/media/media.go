// Package media repairs image URLs returned by the API so templates can use
// them directly.
package media

import (
	"strings"
)

// Resolver turns API image references into absolute URLs.
type Resolver struct {
	host string
}

// NewResolver derives the media host from mediaURL, or from the API base when
// mediaURL is empty (a trailing /api segment is dropped).
func NewResolver(apiURL, mediaURL string) *Resolver {
	host := strings.TrimSpace(mediaURL)
	if host == "" {
		host = strings.TrimSpace(apiURL)
		host = strings.TrimSuffix(host, "/")
		host = strings.TrimSuffix(host, "/api")
	}
	return &Resolver{host: strings.TrimRight(host, "/")}
}

// Host is the origin used for host-relative paths.
func (r *Resolver) Host() string {
	return r.host
}

// Fix normalizes absolute, host-relative and double-prefixed image URLs.
func (r *Resolver) Fix(raw string) string {
	if raw == "" {
		return ""
	}

	u := strings.Replace(raw, "%3A", ":", 1)

	// Storage backends sometimes return an absolute URL that the API then
	// prefixes with its media path: /media/https://cdn/x.png
	if _, rest, ok := strings.Cut(u, "/media/http"); ok {
		return repairScheme("http" + rest)
	}

	if strings.HasPrefix(u, "http") {
		return u
	}

	if strings.HasPrefix(u, "/") {
		if r == nil || r.host == "" {
			return u
		}
		return r.host + u
	}

	return u
}

func repairScheme(u string) string {
	for _, scheme := range []string{"https:", "http:"} {
		if !strings.HasPrefix(u, scheme) {
			continue
		}
		rest := strings.TrimLeft(strings.TrimPrefix(u, scheme), "/")
		return scheme + "//" + rest
	}
	return u
}
