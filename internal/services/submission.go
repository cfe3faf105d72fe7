package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/models"
	"github.com/example/lazzat/internal/pos"
)

// Submission step names surfaced on failure.
const (
	StepCreateOrder   = "create_order"
	StepCreateLines   = "create_lines"
	StepApplyDiscount = "apply_discount"
	StepPay           = "pay"
)

// ErrAlreadyPaid is returned when paying an order a second time.
var ErrAlreadyPaid = errors.New("order already paid")

// SubmitError reports which step of the submission sequence failed. Steps
// before the failing one are already persisted; whether to retry or abandon
// is the caller's decision.
type SubmitError struct {
	Step string
	Err  error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("order submission failed at %s: %v", e.Step, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// OrderSubmitter persists priced carts as orders, step by step.
type OrderSubmitter struct {
	db       *gorm.DB
	telegram *TelegramService
}

// NewOrderSubmitter constructs OrderSubmitter.
func NewOrderSubmitter(db *gorm.DB, telegram *TelegramService) *OrderSubmitter {
	return &OrderSubmitter{db: db, telegram: telegram}
}

// Submit persists a priced cart: create the order row, post the lines, then
// apply the bill discount and final totals. The steps run without a shared
// transaction, mirroring the POS handoff sequence; on failure the partially
// persisted order is returned along with an error naming the failed step.
func (s *OrderSubmitter) Submit(branch models.Branch, cart *pos.Cart, notes string) (*models.Order, error) {
	tax := pos.TaxConfig{
		VATPercent:           branch.VATPercent,
		ServiceChargePercent: branch.ServiceChargePercent,
	}
	totals := cart.Totals(tax)

	order := models.Order{
		OrderNumber:       generateOrderNumber(),
		BranchID:          branch.ID,
		CustomerID:        cart.CustomerID(),
		TableID:           cart.TableID(),
		OrderType:         string(cart.OrderType()),
		Status:            models.OrderStatusOpen,
		PlacedAt:          time.Now(),
		Subtotal:          totals.Subtotal,
		LineDiscountTotal: totals.LineDiscountTotal,
		Currency:          branch.Currency,
		PaymentStatus:     models.PaymentStatusUnpaid,
		Notes:             notes,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, &SubmitError{Step: StepCreateOrder, Err: err}
	}

	for i, l := range cart.Lines() {
		item := orderItemFromLine(order.ID, l)
		if err := s.db.Create(&item).Error; err != nil {
			return &order, &SubmitError{Step: StepCreateLines, Err: fmt.Errorf("line %d: %w", i+1, err)}
		}
		order.Items = append(order.Items, item)
	}

	updates := map[string]any{
		"bill_discount_percent": totals.BillDiscountPercent,
		"bill_discount_amount":  totals.BillDiscountAmount,
		"service_charge":        totals.ServiceCharge,
		"tax":                   totals.Tax,
		"grand_total":           totals.GrandTotal,
	}
	if err := s.db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return &order, &SubmitError{Step: StepApplyDiscount, Err: err}
	}

	order.BillDiscountPercent = totals.BillDiscountPercent
	order.BillDiscountAmount = totals.BillDiscountAmount
	order.ServiceCharge = totals.ServiceCharge
	order.Tax = totals.Tax
	order.GrandTotal = totals.GrandTotal

	return &order, nil
}

// Pay records a payment and completes the order.
func (s *OrderSubmitter) Pay(orderID uuid.UUID, method string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items.Modifiers").Preload("Branch").
		First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	now := time.Now()
	updates := map[string]any{
		"payment_method": method,
		"payment_status": models.PaymentStatusPaid,
		"paid_at":        &now,
		"status":         models.OrderStatusCompleted,
	}
	if err := s.db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return nil, &SubmitError{Step: StepPay, Err: err}
	}

	order.PaymentMethod = method
	order.PaymentStatus = models.PaymentStatusPaid
	order.PaidAt = &now
	order.Status = models.OrderStatusCompleted

	if s.telegram != nil {
		go s.notifyOrderPaid(order)
	}

	return &order, nil
}

func (s *OrderSubmitter) notifyOrderPaid(order models.Order) {
	notification := OrderNotification{
		OrderNumber:   order.OrderNumber,
		OrderType:     order.OrderType,
		GrandTotal:    order.GrandTotal,
		Currency:      order.Currency,
		PaymentMethod: order.PaymentMethod,
	}
	if order.Branch != nil {
		notification.BranchName = order.Branch.Name
	}
	if order.TableID != nil {
		var table models.DiningTable
		if err := s.db.First(&table, "id = ?", *order.TableID).Error; err == nil {
			notification.TableName = table.Name
		}
	}
	for _, item := range order.Items {
		notification.Items = append(notification.Items, OrderItemNotification{
			Name:     item.ItemName,
			Quantity: item.Quantity,
			LineNet:  item.LineNet,
		})
	}

	if err := s.telegram.NotifyOrderPaid(notification); err != nil {
		log.Printf("[Order] Telegram notification failed for %s: %v", order.OrderNumber, err)
	}
}

func orderItemFromLine(orderID uuid.UUID, l pos.OrderLine) models.OrderItem {
	menuItemID := l.MenuItemID
	item := models.OrderItem{
		OrderID:         orderID,
		MenuItemID:      &menuItemID,
		MenuItemSizeID:  l.MenuItemSizeID,
		ItemName:        l.ItemName,
		SizeName:        l.SizeName,
		Quantity:        l.Quantity,
		BasePrice:       l.BasePrice,
		ModifiersExtra:  l.ModifiersExtra(),
		LineTotal:       l.LineTotal(),
		DiscountPercent: l.DiscountPercent,
		DiscountAmount:  l.DiscountAmount(),
		LineNet:         l.LineNet(),
		Notes:           l.Notes,
	}
	for _, m := range l.Modifiers {
		modifierID := m.ModifierID
		item.Modifiers = append(item.Modifiers, models.OrderItemModifier{
			ModifierID: &modifierID,
			Name:       m.Name,
			Quantity:   m.Quantity,
			UnitPrice:  m.UnitPrice,
		})
	}
	return item
}

func generateOrderNumber() string {
	return fmt.Sprintf("#%d", time.Now().UnixNano()%1000000000)
}
