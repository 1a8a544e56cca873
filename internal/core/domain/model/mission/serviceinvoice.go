package mission

import (
	"errors"
)

// InvoiceLine is one itemized expense on a service invoice.
// The line total is computed, never supplied.
type InvoiceLine struct {
	description string
	quantity    float64
	unitPrice   float64
	total       float64

	isConstructed bool
}

// NewInvoiceLine creates a validated invoice line. Negative quantities and
// prices are sanitized to zero so a malformed line can never reduce the
// invoice total.
func NewInvoiceLine(description string, quantity, unitPrice float64) (InvoiceLine, error) {
	if err := requireText("description", description); err != nil {
		return InvoiceLine{}, err
	}

	quantity = clampNonNegative(quantity)
	unitPrice = clampNonNegative(unitPrice)

	return InvoiceLine{
		description:   description,
		quantity:      quantity,
		unitPrice:     unitPrice,
		total:         quantity * unitPrice,
		isConstructed: true,
	}, nil
}

// Description returns the expense description.
func (l InvoiceLine) Description() string { return l.description }

// Quantity returns the billed quantity.
func (l InvoiceLine) Quantity() float64 { return l.quantity }

// UnitPrice returns the price per unit.
func (l InvoiceLine) UnitPrice() float64 { return l.unitPrice }

// Total returns quantity times unit price.
func (l InvoiceLine) Total() float64 { return l.total }

// ErrServiceInvoiceIsNotConstructed is returned when validating a zero-value
// ServiceInvoice.
var ErrServiceInvoiceIsNotConstructed = errors.New(
	"ServiceInvoice must be created via NewServiceInvoice constructor")

// ServiceInvoice is the itemized expense record of a service mission.
// Subtotal, tax amount and total are derived from the lines and the tax
// rate; they are recomputed on construction and never stored independently.
type ServiceInvoice struct {
	lines     []InvoiceLine
	taxRate   float64
	subtotal  float64
	taxAmount float64
	total     float64

	isConstructed bool
}

// NewServiceInvoice creates a service invoice and computes its totals.
// The tax rate is a percentage; negative rates are sanitized to zero.
func NewServiceInvoice(lines []InvoiceLine, taxRate float64) (*ServiceInvoice, error) {
	for _, line := range lines {
		if !line.isConstructed {
			return nil, errors.New("InvoiceLine must be created via NewInvoiceLine constructor")
		}
	}

	taxRate = clampNonNegative(taxRate)

	var subtotal float64
	for _, line := range lines {
		subtotal += line.total
	}
	taxAmount := subtotal * taxRate / 100

	copied := make([]InvoiceLine, len(lines))
	copy(copied, lines)

	return &ServiceInvoice{
		lines:         copied,
		taxRate:       taxRate,
		subtotal:      subtotal,
		taxAmount:     taxAmount,
		total:         subtotal + taxAmount,
		isConstructed: true,
	}, nil
}

// Lines returns the itemized expense lines.
func (s *ServiceInvoice) Lines() []InvoiceLine {
	lines := make([]InvoiceLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// TaxRate returns the applied tax percentage.
func (s *ServiceInvoice) TaxRate() float64 { return s.taxRate }

// Subtotal returns the sum of all line totals.
func (s *ServiceInvoice) Subtotal() float64 { return s.subtotal }

// TaxAmount returns subtotal times tax rate.
func (s *ServiceInvoice) TaxAmount() float64 { return s.taxAmount }

// Total returns subtotal plus tax amount.
func (s *ServiceInvoice) Total() float64 { return s.total }

// Validate checks that the invoice was built through NewServiceInvoice.
func (s *ServiceInvoice) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceInvoiceIsNotConstructed
	}
	return nil
}

// clampNonNegative maps negative and NaN inputs to zero.
func clampNonNegative(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	return v
}
