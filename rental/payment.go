package rental

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentDeleted   = "deleted"
)

// Payment represents a payment against an invoice
type Payment struct {
	Meta
	InvoiceID uint    `json:"invoice_id" gorm:"index;not null"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method" gorm:"type:varchar(30)"`
	Reference string  `json:"reference" gorm:"type:varchar(100)"`
	Status    string  `json:"status" gorm:"type:varchar(20);index;default:'pending'"`
}

// PaymentRequest is the create/update payload for a payment
type PaymentRequest struct {
	TenantID  uint    `json:"tenant_id"`
	InvoiceID uint    `json:"invoice_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
	Status    string  `json:"status"`

	AmountInput string `json:"-"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *PaymentRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *PaymentRequest) Normalize() {
	r.Method = trim(r.Method)
	r.Reference = trim(r.Reference)
	r.Status = trim(r.Status)
	if r.AmountInput != "" {
		r.Amount = parseAmount(r.AmountInput)
	}
}

// NewPaymentDraft builds the default create-mode draft
func NewPaymentDraft() *PaymentRequest {
	return &PaymentRequest{Status: PaymentPending}
}

// PaymentDraftFrom hydrates a draft from an existing record
func PaymentDraftFrom(p *Payment) *PaymentRequest {
	return &PaymentRequest{
		TenantID:  p.TenantID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		Status:    p.Status,
	}
}
