package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParty_ApplyDebitCredit(t *testing.T) {
	p := &Party{Balance: decimal.NewFromInt(100)}

	if got := p.ApplyDebit(decimal.NewFromInt(40)); !got.Equal(decimal.NewFromInt(140)) {
		t.Errorf("ApplyDebit = %s, want 140", got)
	}

	if got := p.ApplyCredit(decimal.NewFromInt(40)); !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("ApplyCredit = %s, want 60", got)
	}
}

func TestParty_CanArchive(t *testing.T) {
	p := &Party{Balance: decimal.NewFromInt(5)}
	if err := p.CanArchive(); err != ErrBalanceNotZero {
		t.Errorf("expected ErrBalanceNotZero, got %v", err)
	}

	p.Balance = decimal.Zero
	if err := p.CanArchive(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBankAccount_ValidateDebit(t *testing.T) {
	a := &BankAccount{Balance: decimal.NewFromInt(3000)}

	if err := a.ValidateDebit(decimal.NewFromInt(5000)); err != ErrInsufficientFunds {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}

	if err := a.ValidateDebit(decimal.NewFromInt(3000)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLedgerEntry_Validate(t *testing.T) {
	accountID := "acc-1"

	tests := []struct {
		name    string
		entry   LedgerEntry
		wantErr error
	}{
		{
			name:  "valid cash payment",
			entry: LedgerEntry{Kind: EntryPayment, Amount: decimal.NewFromInt(100), Method: MethodCash},
		},
		{
			name:  "valid online payment",
			entry: LedgerEntry{Kind: EntryPayment, Amount: decimal.NewFromInt(100), Method: MethodOnline, BankAccountID: &accountID},
		},
		{
			name:    "zero amount",
			entry:   LedgerEntry{Kind: EntrySale, Amount: decimal.Zero, Method: MethodCash},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			entry:   LedgerEntry{Kind: EntrySale, Amount: decimal.NewFromInt(-5), Method: MethodCash},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown kind",
			entry:   LedgerEntry{Kind: "refund", Amount: decimal.NewFromInt(10), Method: MethodCash},
			wantErr: ErrInvalidEntryKind,
		},
		{
			name:    "online without bank account",
			entry:   LedgerEntry{Kind: EntryPayment, Amount: decimal.NewFromInt(10), Method: MethodOnline},
			wantErr: ErrMissingBankRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	sale := &LedgerEntry{Kind: EntrySale, Amount: decimal.NewFromInt(100)}
	if !sale.SignedAmount().Equal(decimal.NewFromInt(100)) {
		t.Errorf("sale signed amount = %s, want 100", sale.SignedAmount())
	}

	payment := &LedgerEntry{Kind: EntryPayment, Amount: decimal.NewFromInt(100)}
	if !payment.SignedAmount().Equal(decimal.NewFromInt(-100)) {
		t.Errorf("payment signed amount = %s, want -100", payment.SignedAmount())
	}
}
