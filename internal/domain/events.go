package domain

import "time"

// Event types
const (
	EventTypePaymentRecorded      = "payment.recorded"
	EventTypePaymentEdited        = "payment.edited"
	EventTypeSaleRecorded         = "sale.recorded"
	EventTypePurchaseRecorded     = "purchase.recorded"
	EventTypeEntryDeleted         = "entry.deleted"
	EventTypeBankTransferExecuted = "bank_transfer.executed"
	EventTypePartyCreated         = "party.created"
	EventTypeAccountCreated       = "account.created"
	EventTypeAccountAdjusted      = "account.adjusted"
)

// Aggregate types
const (
	AggregateTypeEntry   = "ledger_entry"
	AggregateTypeParty   = "party"
	AggregateTypeAccount = "bank_account"
)

// OutboxEvent represents an event staged inside the transaction that caused
// it, to be published by the background publisher.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PaymentRecordedEvent payload
type PaymentRecordedEvent struct {
	EntryID       string `json:"entry_id"`
	PartyID       string `json:"party_id"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
	BankAccountID string `json:"bank_account_id,omitempty"`
}

// SaleRecordedEvent payload
type SaleRecordedEvent struct {
	EntryID   string `json:"entry_id"`
	PartyID   string `json:"party_id"`
	Total     string `json:"total"`
	PaidCash  string `json:"paid_cash"`
	ItemCount int    `json:"item_count"`
}

// EntryDeletedEvent payload
type EntryDeletedEvent struct {
	EntryID string `json:"entry_id"`
	PartyID string `json:"party_id"`
	Kind    string `json:"kind"`
	Amount  string `json:"amount"`
}

// BankTransferExecutedEvent payload
type BankTransferExecutedEvent struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"`
}
