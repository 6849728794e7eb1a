// internal/domain/models.go
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Country string

const (
	CountryChile    Country = "Chile"
	CountryPeru     Country = "Peru"
	CountryColombia Country = "Colombia"
)

type IDType string

const (
	IDTypeRUT IDType = "RUT"
	IDTypeRUC IDType = "RUC"
	IDTypeNIT IDType = "NIT"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	PersonalID   string    `json:"personalId"`
	BusinessID   string    `json:"businessId"`
	IDType       IDType    `json:"idType"`
	Country      Country   `json:"country"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Password     string    `json:"-"`
	Confirmed    bool      `json:"confirmed"`
	PasswordSet  bool      `json:"passwordSet"`
	Admin        bool      `json:"admin"`
	Discount     int       `json:"discount"`
	Address      string    `json:"address"`
	Region       string    `json:"region,omitempty"`
	City         string    `json:"city,omitempty"`
	Province     string    `json:"province,omitempty"`
	Reference    string    `json:"reference,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type TokenType string

const (
	TokenAdminConfirmation TokenType = "admin_confirmation"
	TokenPasswordReset     TokenType = "password_reset"
)

func (t TokenType) Valid() bool {
	return t == TokenAdminConfirmation || t == TokenPasswordReset
}

type Token struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Value     string
	Type      TokenType
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (t *Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

type OrderItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// OrderItems is stored as a JSONB column.
type OrderItems []OrderItem

func (it OrderItems) Value() (driver.Value, error) {
	if it == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(it)
}

func (it *OrderItems) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*it = OrderItems{}
		return nil
	default:
		return errors.New("order items: unsupported column type")
	}
	return json.Unmarshal(data, it)
}

type Order struct {
	ID                uuid.UUID       `json:"id"`
	Reference         string          `json:"reference"`
	UserID            uuid.UUID       `json:"userId"`
	Items             OrderItems      `json:"items"`
	Payment           string          `json:"payment"`
	TrackingNumber    string          `json:"trackingNumber"`
	Shipper           string          `json:"shipper"`
	Status            OrderStatus     `json:"status"`
	Country           Country         `json:"country"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Discount          int             `json:"discount"`
	Total             decimal.Decimal `json:"total"`
	BusinessName      string          `json:"businessName"`
	BusinessID        string          `json:"businessId"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	DeliveredAt       *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NewAccount carries the registration form of a business client.
type NewAccount struct {
	Name         string
	BusinessName string
	PersonalID   string
	BusinessID   string
	Country      Country
	Email        string
	Phone        string
	Address      string
	Region       string
	City         string
	Province     string
	Reference    string
	PostalCode   string
}

type ProfileUpdate struct {
	Name         string
	BusinessName string
	Email        string
	Phone        string
	Address      string
}

type NewOrder struct {
	OwnerID           uuid.UUID
	Items             []OrderItem
	Payment           string
	TrackingNumber    string
	Shipper           string
	EstimatedDelivery *time.Time
}

type OrderUpdate struct {
	Payment           *string
	TrackingNumber    *string
	Shipper           *string
	EstimatedDelivery *time.Time
	Items             []OrderItem
}

type UserFilter struct {
	Confirmed *bool
	Search    string
	Page      Page
}

type OrderFilter struct {
	UserID *uuid.UUID
	Status OrderStatus
	Search string
	Page   Page
}
