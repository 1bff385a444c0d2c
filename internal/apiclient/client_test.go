package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tmrsite/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 2*time.Second)
}

func TestListAcceptsArrayAndEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/brands/":
			_, _ = io.WriteString(w, `[{"id":1,"name":"Makita"}]`)
		case "/api/categories/":
			_, _ = io.WriteString(w, `{"count":1,"results":[{"id":2,"name":"Drills"}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	brands, err := client.Brands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Makita", brands[0].Name)

	cats, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, int64(2), cats[0].ID)
}

func TestTokenHeaderOnlyOnAuthenticatedCopy(t *testing.T) {
	var headers []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.WithToken("abc123").ContactLeads(context.Background())
	require.NoError(t, err)
	_, err = client.Brands(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Token abc123", ""}, headers)
}

func TestErrorMapping(t *testing.T) {
	status := http.StatusNotFound
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"detail":"nope"}`)
	})

	cases := map[int]error{
		http.StatusNotFound:            ErrNotFound,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrUnauthorized,
		http.StatusBadRequest:          ErrValidation,
		http.StatusUnprocessableEntity: ErrValidation,
	}
	for code, want := range cases {
		status = code
		_, err := client.Brand(context.Background(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, want, "status %d", code)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, code, apiErr.Status)
		assert.Equal(t, "nope", Describe(err))
	}
}

func TestTransportFailure(t *testing.T) {
	client := New("http://127.0.0.1:1/api/", time.Second)
	_, err := client.Brands(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"non_field_errors":["bad"]}`)
			return
		}
		_, _ = io.WriteString(w, `{"token":"tok-1"}`)
	})

	tok, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	_, err = client.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductFormRepeatsIDsAndOmitsUnchangedImage(t *testing.T) {
	var (
		brandIDs []string
		catIDs   []string
		hasImage bool
		method   string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		require.NoError(t, r.ParseMultipartForm(1<<20))
		brandIDs = r.MultipartForm.Value["brand_ids"]
		catIDs = r.MultipartForm.Value["category_ids"]
		_, hasImage = r.MultipartForm.File["image"]
		_, _ = io.WriteString(w, `{"id":3,"slug":"drill"}`)
	})

	form := NewForm().Set("name", "Drill").Add("brand_ids", "1", "2").Add("category_ids", "5").File("image", nil)
	p, err := client.WithToken("t").UpdateProduct(context.Background(), "drill", form)
	require.NoError(t, err)
	assert.Equal(t, "drill", p.Slug)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, []string{"1", "2"}, brandIDs)
	assert.Equal(t, []string{"5"}, catIDs)
	assert.False(t, hasImage)
}

func TestFormAttachesNewUpload(t *testing.T) {
	var filename string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["logo"]
		require.Len(t, files, 1)
		filename = files[0].Filename
		_, _ = io.WriteString(w, `{"id":9,"name":"Bosch"}`)
	})

	form := NewForm().Set("name", "Bosch").File("logo", &Upload{Filename: "bosch.png", ContentType: "image/png", Data: []byte("png")})
	assert.True(t, form.HasFile("logo"))

	b, err := client.CreateBrand(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, int64(9), b.ID)
	assert.Equal(t, "bosch.png", filename)
}

func TestSetLeadResolvedSendsSinglePatch(t *testing.T) {
	var calls int
	var got models.Resolution
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/leads/wholesale/4/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{}`)
	})

	require.NoError(t, client.SetLeadResolved(context.Background(), models.LeadWholesale, 4, true))
	assert.Equal(t, 1, calls)
	assert.True(t, got.IsResolved)

	assert.Error(t, client.SetLeadResolved(context.Background(), models.LeadType("bogus"), 4, true))
	assert.Equal(t, 1, calls)
}

func TestWholesaleLeadCarriesIDArrays(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateWholesaleLead(context.Background(), models.WholesaleInquiryInput{Name: "A", BrandIDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, body["brand_ids"])
	assert.Equal(t, []any{}, body["product_ids"])
}

func TestProductQueryFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "makita", r.URL.Query().Get("brand"))
		assert.Equal(t, "", r.URL.Query().Get("category"))
		_, _ = io.WriteString(w, `[]`)
	})
	products, err := client.Products(context.Background(), ProductQuery{Brand: "makita"})
	require.NoError(t, err)
	assert.Empty(t, products)
}
