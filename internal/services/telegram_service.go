package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/example/tmrsite/internal/models"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramService posts lead notifications to the sales chat.
type TelegramService struct {
	botToken    string
	adminChatID string
	apiBase     string
	client      *http.Client
}

// NewTelegramService creates a new TelegramService. Without a bot token or
// chat ID every send is a no-op.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    strings.TrimSpace(botToken),
		adminChatID: strings.TrimSpace(adminChatID),
		apiBase:     defaultTelegramAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether notifications will actually be sent.
func (s *TelegramService) Enabled() bool {
	return s != nil && s.botToken != "" && s.adminChatID != ""
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendToAdmin sends an HTML formatted message to the admin chat.
func (s *TelegramService) SendToAdmin(ctx context.Context, text string) error {
	if !s.Enabled() {
		return nil
	}

	body, err := json.Marshal(telegramMessage{ChatID: s.adminChatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(s.apiBase, "/"), s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}
	return nil
}

func line(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return fmt.Sprintf("<b>%s:</b> %s\n", label, html.EscapeString(value))
}

// NotifyContactInquiry announces a new contact lead.
func (s *TelegramService) NotifyContactInquiry(ctx context.Context, in models.ContactInquiryInput) error {
	var b strings.Builder
	b.WriteString("<b>📩 New contact inquiry</b>\n")
	b.WriteString(line("Name", in.Name))
	b.WriteString(line("Business", in.BusinessName))
	b.WriteString(line("Email", in.Email))
	b.WriteString(line("Phone", in.Phone))
	b.WriteString(line("Website", in.Website))
	b.WriteString(line("Budget", in.Budget))
	b.WriteString(line("Requirement", in.Requirement))
	return s.SendToAdmin(ctx, strings.TrimSpace(b.String()))
}

// NotifyWholesaleInquiry announces a new wholesale lead.
func (s *TelegramService) NotifyWholesaleInquiry(ctx context.Context, in models.WholesaleInquiryInput) error {
	var b strings.Builder
	b.WriteString("<b>📦 New wholesale inquiry</b>\n")
	b.WriteString(line("Name", in.Name))
	b.WriteString(line("Business", in.BusinessName))
	b.WriteString(line("Email", in.Email))
	b.WriteString(line("Phone", in.ContactNumber))
	b.WriteString(line("Details", in.Details))
	if n := len(in.BrandIDs); n > 0 {
		b.WriteString(fmt.Sprintf("<b>Brands of interest:</b> %d\n", n))
	}
	if n := len(in.ProductIDs); n > 0 {
		b.WriteString(fmt.Sprintf("<b>Products of interest:</b> %d\n", n))
	}
	return s.SendToAdmin(ctx, strings.TrimSpace(b.String()))
}
