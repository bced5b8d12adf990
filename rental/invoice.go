package rental

// Invoice statuses. Only draft invoices may be deleted, a restriction the
// presentation layer enforces by hiding the action.
const (
	InvoiceDraft     = "draft"
	InvoiceIssued    = "issued"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
	InvoiceDeleted   = "deleted"
)

// Invoice represents a rental invoice. Amounts are computed by the backend;
// the client treats them as opaque.
type Invoice struct {
	Meta
	BranchID   *uint   `json:"branch_id,omitempty" gorm:"index"`
	CustomerID uint    `json:"customer_id" gorm:"index;not null"`
	ContractID *uint   `json:"contract_id,omitempty" gorm:"index"`
	Number     string  `json:"number" gorm:"type:varchar(50);index"`
	Subtotal   float64 `json:"subtotal"`
	VATAmount  float64 `json:"vat_amount"`
	Total      float64 `json:"total"`
	Status     string  `json:"status" gorm:"type:varchar(20);index;default:'draft'"`
	Notes      *string `json:"notes,omitempty" gorm:"type:text"`
}

// InvoiceRequest is the create/update payload for an invoice
type InvoiceRequest struct {
	TenantID   uint    `json:"tenant_id"`
	BranchID   *uint   `json:"branch_id,omitempty"`
	CustomerID uint    `json:"customer_id"`
	ContractID *uint   `json:"contract_id,omitempty"`
	Subtotal   float64 `json:"subtotal"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`

	// Form input coerced on Normalize
	SubtotalInput string `json:"-"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *InvoiceRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *InvoiceRequest) Normalize() {
	r.Status = trim(r.Status)
	r.Notes = nilIfEmpty(r.Notes)
	if r.SubtotalInput != "" {
		r.Subtotal = parseAmount(r.SubtotalInput)
	}
}

// NewInvoiceDraft builds the default create-mode draft
func NewInvoiceDraft() *InvoiceRequest {
	return &InvoiceRequest{Status: InvoiceDraft}
}

// InvoiceDraftFrom hydrates a draft from an existing record
func InvoiceDraftFrom(i *Invoice) *InvoiceRequest {
	return &InvoiceRequest{
		TenantID:   i.TenantID,
		BranchID:   i.BranchID,
		CustomerID: i.CustomerID,
		ContractID: i.ContractID,
		Subtotal:   i.Subtotal,
		Status:     i.Status,
		Notes:      i.Notes,
	}
}
