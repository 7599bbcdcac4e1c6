// internal/model/product.go
package model

import (
    "time"

    "github.com/shopspring/decimal"
)

// Dimensions is stored as three flat columns (dimension_length,
// dimension_width, dimension_height) and exposed nested on the wire.
type Dimensions struct {
    Length float64 `db:"dimension_length" json:"length"`
    Width  float64 `db:"dimension_width" json:"width"`
    Height float64 `db:"dimension_height" json:"height"`
}

type Product struct {
    ID           int             `db:"id" json:"id"`
    Name         string          `db:"name" json:"name"`
    Price        decimal.Decimal `db:"price" json:"price"`
    Images       []string        `db:"images" json:"images"`
    Category     string          `db:"category" json:"category"`
    Material     string          `db:"material" json:"material"`
    Style        string          `db:"style" json:"style"`
    Color        string          `db:"color" json:"color"`
    Manufacturer string          `db:"manufacturer" json:"manufacturer"`
    Description  string          `db:"description" json:"description"`
    Dimensions   Dimensions      `json:"dimensions"`
    CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
    UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"`
}
