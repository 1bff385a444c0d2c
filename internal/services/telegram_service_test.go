package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tmrsite/internal/models"
)

func TestTelegramDisabledWithoutToken(t *testing.T) {
	s := NewTelegramService("", "123")
	assert.False(t, s.Enabled())
	assert.NoError(t, s.NotifyContactInquiry(context.Background(), models.ContactInquiryInput{Name: "x"}))
}

func TestTelegramSendsEscapedLead(t *testing.T) {
	var got telegramMessage
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewTelegramService("bot-token", "42")
	s.apiBase = srv.URL

	err := s.NotifyWholesaleInquiry(context.Background(), models.WholesaleInquiryInput{
		Name:          "Jane <Admin>",
		BusinessName:  "Acme",
		ContactNumber: "555",
		BrandIDs:      []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "/botbot-token/sendMessage", path)
	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "Jane &lt;Admin&gt;")
	assert.Contains(t, got.Text, "<b>Brands of interest:</b> 2")
	assert.NotContains(t, got.Text, "Products of interest")
}

func TestTelegramReportsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewTelegramService("t", "1")
	s.apiBase = srv.URL
	assert.Error(t, s.SendToAdmin(context.Background(), "hi"))
}
