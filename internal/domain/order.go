package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusSent      OrderStatus = "Sent"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{StatusPending, StatusSent, StatusDelivered, StatusCancelled}

var transitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusSent, StatusCancelled},
	StatusSent:    {StatusDelivered, StatusCancelled},
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CheckTransition returns a Conflict error when next is not reachable from s.
func (s OrderStatus) CheckTransition(next OrderStatus) error {
	if !next.Valid() {
		return InvalidField("status", fmt.Sprintf("unknown order status %q", next))
	}
	if !s.CanTransitionTo(next) {
		return Conflict(fmt.Sprintf("cannot change order status from %s to %s", s, next))
	}
	return nil
}

const MaxItemQuantity = 1_000_000

var (
	hundred = decimal.NewFromInt(100)
	// maxAmount is the first value that no longer fits NUMERIC(14,2).
	maxAmount = decimal.New(1, 12)
)

// PriceItems fills in every line total and returns the subtotal.
func PriceItems(items []OrderItem) (OrderItems, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, InvalidField("items", "an order needs at least one item")
	}
	priced := make(OrderItems, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		it.SKU = strings.TrimSpace(it.SKU)
		it.Name = strings.TrimSpace(it.Name)
		if it.SKU == "" || it.Name == "" {
			return nil, decimal.Zero, InvalidField("items", fmt.Sprintf("item %d needs a sku and a name", i+1))
		}
		if it.Price.IsNegative() {
			return nil, decimal.Zero, InvalidField("items", fmt.Sprintf("item %d has a negative price", i+1))
		}
		if it.Quantity < 1 || it.Quantity > MaxItemQuantity {
			return nil, decimal.Zero, InvalidField("items", fmt.Sprintf("item %d needs a quantity between 1 and %d", i+1, MaxItemQuantity))
		}
		if it.Price.GreaterThanOrEqual(maxAmount) {
			return nil, decimal.Zero, InvalidField("items", fmt.Sprintf("item %d has a price that is too large", i+1))
		}
		it.LineTotal = it.Price.Mul(decimal.NewFromInt(it.Quantity)).Round(2)
		subtotal = subtotal.Add(it.LineTotal)
		if subtotal.GreaterThanOrEqual(maxAmount) {
			return nil, decimal.Zero, InvalidField("items", "order total is too large")
		}
		priced[i] = it
	}
	return priced, subtotal, nil
}

// ApplyDiscount takes pct percent off subtotal.
func ApplyDiscount(subtotal decimal.Decimal, pct int) decimal.Decimal {
	if pct <= 0 {
		return subtotal.Round(2)
	}
	if pct > 100 {
		pct = 100
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(pct))).Div(hundred)
	return subtotal.Mul(factor).Round(2)
}

// NewReference builds the human facing order reference, e.g. SPT-251019-3F2A9C1D.
func NewReference(id uuid.UUID, at time.Time) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("SPT-%s-%s", at.Format("060102"), strings.ToUpper(hex[len(hex)-8:]))
}

// Reprice recomputes line totals, subtotal and total from o.Items.
func (o *Order) Reprice() error {
	items, subtotal, err := PriceItems(o.Items)
	if err != nil {
		return err
	}
	o.Items = items
	o.Subtotal = subtotal
	o.Total = ApplyDiscount(subtotal, o.Discount)
	return nil
}
