// internal/model/customer.go
package model

import (
    "time"

    "github.com/shopspring/decimal"
)

// Customer is keyed by phone: submitting an order with a known phone
// updates the row instead of inserting a new one.
type Customer struct {
    ID          int             `db:"id" json:"id"`
    LastName    string          `db:"last_name" json:"lastName"`
    FirstName   string          `db:"first_name" json:"firstName"`
    MiddleName  string          `db:"middle_name" json:"middleName"`
    Phone       string          `db:"phone" json:"phone"`
    City        string          `db:"city" json:"city"`
    Address     string          `db:"address" json:"address"`
    TotalOrders int             `db:"total_orders" json:"totalOrders"`
    TotalSpent  decimal.Decimal `db:"total_spent" json:"totalSpent"`
    CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
    UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}
