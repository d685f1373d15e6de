package models

// Audit actions.
const (
	AuditActionAddTransaction    = "ADD_TRANSACTION"
	AuditActionDeleteTransaction = "DELETE_TRANSACTION"
)

// AuditLog records a ledger mutation. The ledger itself lives in memory; this
// trail is best-effort and never read back into it.
type AuditLog struct {
	Base
	Action        string          `gorm:"not null;index" json:"action"`
	TransactionID int64           `gorm:"not null;index" json:"transaction_id"`
	Type          TransactionType `gorm:"not null" json:"type"`
	Category      string          `gorm:"not null" json:"category"`
	Amount        string          `gorm:"not null" json:"amount"`
	Date          string          `gorm:"not null" json:"date"`
	Changes       string          `json:"changes,omitempty"`
}
