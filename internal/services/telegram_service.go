package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
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

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// OrderNotification contains POS order data for a Telegram notification.
type OrderNotification struct {
	OrderNumber   string
	BranchName    string
	OrderType     string
	TableName     string
	Items         []OrderItemNotification
	GrandTotal    float64
	Currency      string
	PaymentMethod string
}

// OrderItemNotification contains one order line.
type OrderItemNotification struct {
	Name     string
	Quantity int
	LineNet  float64
}

// FormatPrice formats price with currency and thousand separators.
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "UZS"
	}
	intAmount := int64(amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String() + " " + currency
}

// NotifyOrderPaid tells the admin chat an order was paid at the register.
func (s *TelegramService) NotifyOrderPaid(order OrderNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range order.Items {
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b> x%d = %s\n",
			i+1,
			item.Name,
			item.Quantity,
			FormatPrice(item.LineNet, order.Currency),
		))
	}

	tableLine := ""
	if order.TableName != "" {
		tableLine = fmt.Sprintf("\n<b>🪑 Stol:</b> %s", order.TableName)
	}

	message := fmt.Sprintf(`<b>✅ BUYURTMA TO'LANDI!</b>
<b>📋 Buyurtma:</b> %s
<b>🏪 Filial:</b> %s
<b>📦 Turi:</b> %s%s
<b>🍽 Tarkibi:</b>
%s
<b>💰 Jami:</b> %s
<b>💳 To'lov:</b> %s
━━━━━━━━━━━━━━━━━━`,
		order.OrderNumber,
		order.BranchName,
		order.OrderType,
		tableLine,
		itemsList.String(),
		FormatPrice(order.GrandTotal, order.Currency),
		order.PaymentMethod,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
