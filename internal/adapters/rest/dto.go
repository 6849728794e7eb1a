package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/shopspring/decimal"
)

type createAccountRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	BusinessName string `json:"businessName" validate:"required,max=255"`
	PersonalID   string `json:"personalId" validate:"required,max=32"`
	BusinessID   string `json:"businessId" validate:"required,max=32"`
	Country      string `json:"country" validate:"required,oneof=Chile Peru Colombia"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Phone        string `json:"phone" validate:"required,min=8,max=20"`
	Address      string `json:"address" validate:"required"`
	Region       string `json:"region" validate:"max=128"`
	City         string `json:"city" validate:"max=128"`
	Province     string `json:"province" validate:"max=128"`
	Reference    string `json:"reference"`
	PostalCode   string `json:"postalCode" validate:"omitempty,len=7"`
}

func (r createAccountRequest) toDomain() domain.NewAccount {
	return domain.NewAccount{
		Name:         r.Name,
		BusinessName: r.BusinessName,
		PersonalID:   r.PersonalID,
		BusinessID:   r.BusinessID,
		Country:      domain.Country(r.Country),
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		Region:       r.Region,
		City:         r.City,
		Province:     r.Province,
		Reference:    r.Reference,
		PostalCode:   r.PostalCode,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type setPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

type profileRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	BusinessName string `json:"businessName" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Phone        string `json:"phone" validate:"required,min=8,max=20"`
	Address      string `json:"address" validate:"required"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type discountRequest struct {
	Discount *int `json:"discount" validate:"required,gte=0,lte=100"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Sent Delivered Cancelled"`
}

type orderItemRequest struct {
	SKU      string          `json:"sku" validate:"required,max=64"`
	Name     string          `json:"name" validate:"required,max=255"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity" validate:"gte=1"`
}

func toItems(in []orderItemRequest) []domain.OrderItem {
	if in == nil {
		return nil
	}
	out := make([]domain.OrderItem, len(in))
	for i, it := range in {
		out[i] = domain.OrderItem{SKU: it.SKU, Name: it.Name, Price: it.Price, Quantity: it.Quantity}
	}
	return out
}

type createOrderRequest struct {
	UserID            *uuid.UUID         `json:"userId"`
	Items             []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Payment           string             `json:"payment" validate:"required,max=255"`
	TrackingNumber    string             `json:"trackingNumber" validate:"max=255"`
	Shipper           string             `json:"shipper" validate:"max=255"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery"`
}

func (r createOrderRequest) toDomain() domain.NewOrder {
	in := domain.NewOrder{
		Items:             toItems(r.Items),
		Payment:           r.Payment,
		TrackingNumber:    r.TrackingNumber,
		Shipper:           r.Shipper,
		EstimatedDelivery: r.EstimatedDelivery,
	}
	if r.UserID != nil {
		in.OwnerID = *r.UserID
	}
	return in
}

type updateOrderRequest struct {
	Payment           *string            `json:"payment" validate:"omitempty,max=255"`
	TrackingNumber    *string            `json:"trackingNumber" validate:"omitempty,max=255"`
	Shipper           *string            `json:"shipper" validate:"omitempty,max=255"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery"`
	Items             []orderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

func (r updateOrderRequest) toDomain() domain.OrderUpdate {
	return domain.OrderUpdate{
		Payment:           r.Payment,
		TrackingNumber:    r.TrackingNumber,
		Shipper:           r.Shipper,
		EstimatedDelivery: r.EstimatedDelivery,
		Items:             toItems(r.Items),
	}
}
