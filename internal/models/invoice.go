package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// invoiceNamespace scopes the name-based invoice ids so they never collide
// with ids generated for other entities.
var invoiceNamespace = uuid.MustParse("6f1c2a4e-3b0d-4f5e-9a8b-1c2d3e4f5a6b")

type Invoice struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     int       `json:"amount"` // cents
	Status     string    `json:"status"` // 'pending' or 'paid'
	Date       time.Time `json:"date"`
}

// InvoiceID derives a stable id from the invoice contents, so the same
// fixture always maps to the same row.
func InvoiceID(customerID uuid.UUID, amount int, status string, date time.Time) uuid.UUID {
	name := fmt.Sprintf("%s|%d|%s|%s", customerID, amount, status, date.Format(time.DateOnly))
	return uuid.NewSHA1(invoiceNamespace, []byte(name))
}

func (i *Invoice) Prepare() {
	if i.ID == uuid.Nil {
		i.ID = InvoiceID(i.CustomerID, i.Amount, i.Status, i.Date)
	}
}

func (i *Invoice) Validate() error {
	if i.CustomerID == uuid.Nil {
		return fmt.Errorf("invoice %s: customer id is required", i.ID)
	}
	if i.Amount < 0 {
		return fmt.Errorf("invoice %s: amount must not be negative", i.ID)
	}
	switch i.Status {
	case InvoiceStatusPending, InvoiceStatusPaid:
	default:
		return fmt.Errorf("invoice %s: unknown status %q", i.ID, i.Status)
	}
	if i.Date.IsZero() {
		return fmt.Errorf("invoice %s: date is required", i.ID)
	}
	return nil
}
