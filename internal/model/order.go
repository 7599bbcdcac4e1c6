// internal/model/order.go
package model

import (
    "time"

    "github.com/shopspring/decimal"
)

// OrderItem is a line item inside the order's items blob. The blob is an
// opaque snapshot of what the storefront sent; it is never edited.
type OrderItem struct {
    Name     string  `json:"name"`
    Price    float64 `json:"price"`
    Quantity int     `json:"quantity"`
}

// Order carries a denormalized copy of the customer's contact fields as they
// were at submission time, linked to the customer only by phone value.
type Order struct {
    ID         int             `db:"id" json:"id"`
    LastName   string          `db:"last_name" json:"lastName"`
    FirstName  string          `db:"first_name" json:"firstName"`
    MiddleName string          `db:"middle_name" json:"middleName"`
    Phone      string          `db:"phone" json:"phone"`
    City       string          `db:"city" json:"city"`
    Address    string          `db:"address" json:"address"`
    Items      []OrderItem     `db:"items" json:"items"`
    Total      decimal.Decimal `db:"total" json:"total"`
    Status     string          `db:"status" json:"status"` // see OrderStatuses
    Notes      string          `db:"notes" json:"notes,omitempty"`
    CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}

// OrderStatuses is the full set of values the status column may take.
var OrderStatuses = []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"}

func ValidOrderStatus(s string) bool {
    for _, allowed := range OrderStatuses {
        if s == allowed {
            return true
        }
    }
    return false
}
