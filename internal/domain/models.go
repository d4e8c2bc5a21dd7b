// internal/domain/models.go
package domain

import "time"

// Product is a catalog entry. Description is free text and may carry a
// lead-time marker such as "T+7".
type Product struct {
	ID            int64   `json:"id" db:"id"`
	Code          string  `json:"code" db:"code"`
	Name          string  `json:"name" db:"name"`
	Description   string  `json:"description" db:"description"`
	Unit          string  `json:"unit" db:"unit"`
	Specification string  `json:"specification" db:"specification"`
	CurrentStock  float64 `json:"current_stock" db:"current_stock"`
}

// SalesRecord is the quantity sold of a product on one calendar day.
// There is at most one record per (product, date).
type SalesRecord struct {
	ID        int64   `json:"id" db:"id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Date      Date    `json:"date" db:"date"`
	Quantity  float64 `json:"quantity" db:"quantity"`
}

// ArrivalRecord is a purchase order waiting to be (or already) received.
// ProductCode and ProductName are snapshots taken when the order was created.
type ArrivalRecord struct {
	ID           int64         `json:"id" db:"id"`
	ProductID    int64         `json:"product_id" db:"product_id"`
	ProductCode  string        `json:"product_code" db:"product_code"`
	ProductName  string        `json:"product_name" db:"product_name"`
	OrderDate    Date          `json:"order_date" db:"order_date"`
	ExpectedDate Date          `json:"expected_date" db:"expected_date"`
	Quantity     float64       `json:"quantity" db:"quantity"`
	Status       ArrivalStatus `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}
