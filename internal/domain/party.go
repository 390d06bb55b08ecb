package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind distinguishes the two counterparty types in the ledger.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartyDealer   PartyKind = "dealer"
)

// PartyStatus is an explicit tombstone; parties are never physically deleted
// while ledger entries reference them.
type PartyStatus string

const (
	PartyActive   PartyStatus = "active"
	PartyArchived PartyStatus = "archived"
)

// Party is a customer or dealer. Sign convention: a positive customer balance
// means the customer owes the shop; a positive dealer balance means the shop
// owes the dealer.
type Party struct {
	ID        string
	Kind      PartyKind
	Name      string
	Phone     string
	Address   string
	Balance   decimal.Decimal
	Status    PartyStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyDebit returns the balance after debiting the party by amount.
func (p *Party) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return p.Balance.Add(amount)
}

// ApplyCredit returns the balance after crediting the party by amount.
func (p *Party) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return p.Balance.Sub(amount)
}

// CanArchive reports whether the party can be archived.
func (p *Party) CanArchive() error {
	if !p.Balance.IsZero() {
		return ErrBalanceNotZero
	}
	return nil
}

// ValidateKind checks the party kind.
func ValidatePartyKind(kind PartyKind) error {
	switch kind {
	case PartyCustomer, PartyDealer:
		return nil
	}
	return ErrInvalidPartyKind
}
