package models

import "time"

// ProductTrace is a traceability record for a received product. Photo
// holds a local binary reference; it never crosses the backup boundary
// in either direction, hence the "-" tag.
type ProductTrace struct {
	ID          string     `json:"id"`
	ProductName string     `json:"productName"`
	RecordedAt  time.Time  `json:"recordedAt"`
	LotNumber   string     `json:"lotNumber,omitempty"`
	Supplier    string     `json:"supplier,omitempty"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	Photo       []byte     `json:"-"`
}

func (p ProductTrace) EntityID() string { return p.ID }

// PriceHistory is one observed price point for a product.
type PriceHistory struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	RecordedAt  time.Time `json:"recordedAt"`
	Supplier    string    `json:"supplier,omitempty"`
	Unit        string    `json:"unit,omitempty"`
}

func (p PriceHistory) EntityID() string { return p.ID }
