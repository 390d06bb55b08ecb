package domain

import "errors"

var (
	// Party errors
	ErrPartyNotFound    = errors.New("party not found")
	ErrPartyArchived    = errors.New("party is archived")
	ErrBalanceNotZero   = errors.New("balance must be zero")
	ErrInvalidPartyKind = errors.New("invalid party kind")

	// Ledger entry errors
	ErrEntryNotFound    = errors.New("ledger entry not found")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidEntryKind = errors.New("invalid ledger entry kind")
	ErrDuplicateEntry   = errors.New("entry with this idempotency key already exists")
	ErrMissingBankRef   = errors.New("online payment method requires a bank account")

	// Bank errors
	ErrAccountNotFound   = errors.New("bank account not found")
	ErrAccountArchived   = errors.New("bank account is archived")
	ErrInsufficientFunds = errors.New("insufficient bank balance")
	ErrSameAccount       = errors.New("cannot transfer to same account")

	// Stock errors
	ErrStockItemNotFound  = errors.New("stock item not found")
	ErrInvalidStockKind   = errors.New("invalid stock item kind")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrAggregateNotFound  = errors.New("aggregate stock not found")
	ErrInsufficientScraps = errors.New("insufficient aggregate quantity")
)
