package domain

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceItem is one billable line derived from a single timesheet date.
// Quantity is hours worked, Price is the hourly rate.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

type Party struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
}

// Invoice is the assembled result handed to the UI and export layers.
// Subtotal, TaxAmount and Total are derived from Items, TaxRate and
// Discount and are always recomputed together.
type Invoice struct {
	ID            string        `json:"id,omitempty"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Date          string        `json:"date"`
	DueDate       string        `json:"dueDate"`
	From          Party         `json:"from"`
	To            Party         `json:"to"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	TaxRate       float64       `json:"taxRate"`
	TaxAmount     float64       `json:"taxAmount"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	Notes         string        `json:"notes"`
	Status        InvoiceStatus `json:"status"`
}

// ParseStats are diagnostic counters from one timesheet parse. They are
// reported alongside the invoice but are not part of it.
type ParseStats struct {
	RowsProcessed int     `json:"rowsProcessed"`
	RowsSkipped   int     `json:"rowsSkipped"`
	TotalHours    float64 `json:"totalHours"`
	Items         int     `json:"items"`
}
