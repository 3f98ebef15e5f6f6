// Package store holds sample model types used by examples and tests.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a sale row as exported from the till system.
type Transaction struct {
	TransactionId int32
	Product       *Product
	Promotion     *Promotion
}

// Product is the catalogue entry a transaction refers to.
type Product struct {
	Name        string
	Sku         string
	Description string
}

// Promotion is the price in effect on a given date.
type Promotion struct {
	Date  time.Time
	Price decimal.Decimal
}

// Audit carries bookkeeping fields shared by several models.
type Audit struct {
	CreatedAt time.Time
	CreatedBy *string
}

// Customer is a loyalty-program member. Optional columns are pointers.
type Customer struct {
	Audit

	ID       uuid.UUID
	Email    string
	FullName string
	Active   bool
	Balance  *decimal.Decimal
	Visits   *int32
	Rating   *float64
	Referrer *uuid.UUID
	Address  *Address
}

// Address is a postal address.
type Address struct {
	Street  string
	City    string
	Zip     *string
	Country Country
}

// Country is nested below Address to exercise deep paths.
type Country struct {
	Code string
	Name string
}

// Order has fields whose types cannot be mapped to a column.
type Order struct {
	ID        int64
	Status    OrderStatus
	Items     []OrderItem
	Notes     map[string]string
	Quantity  int
	Weight    float32
	Customer  *Customer
	OrderedAt *time.Time
}

// OrderItem is a line within an order.
type OrderItem struct {
	Sku      string
	Quantity int32
}

// OrderStatus is a named string; it is a distinct type from string.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
