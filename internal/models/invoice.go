package models

import "time"

// InvoiceItem is one line of an invoice. Items live inline in their
// invoice (composition), not as a separate collection.
type InvoiceItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
}

// Invoice is a supplier invoice captured by the OCR flow. PageImages
// holds scanned page blobs; like product photos they stay local and
// never cross the backup boundary.
type Invoice struct {
	ID          string        `json:"id"`
	Supplier    string        `json:"supplier"`
	InvoiceDate time.Time     `json:"invoiceDate"`
	Items       []InvoiceItem `json:"items"`
	TotalAmount *float64      `json:"totalAmount,omitempty"`
	CreatedAt   *time.Time    `json:"createdAt,omitempty"`
	PageImages  [][]byte      `json:"-"`
}

func (i Invoice) EntityID() string { return i.ID }
