package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// BankUseCase manages bank accounts, their transaction history, and transfers
// between them.
type BankUseCase struct {
	executor *Executor
	bankRepo BankRepository
	idGen    IDGenerator
}

// NewBankUseCase creates a new BankUseCase.
func NewBankUseCase(executor *Executor, bankRepo BankRepository, idGen IDGenerator) *BankUseCase {
	return &BankUseCase{
		executor: executor,
		bankRepo: bankRepo,
		idGen:    idGen,
	}
}

// CreateAccountInput represents input for creating a bank account.
type CreateAccountInput struct {
	Title          string
	BankName       string
	AccountNumber  string
	OpeningBalance decimal.Decimal
}

// CreateAccount creates a bank account. A non-zero opening balance is written
// as the account's first transaction so the balance stays equal to the signed
// sum of its history from day one.
func (uc *BankUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.BankAccount, error) {
	if err := domain.ValidateName(input.Title); err != nil {
		return nil, err
	}
	if input.OpeningBalance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	account := &domain.BankAccount{
		ID:            uc.idGen.Generate(),
		Title:         input.Title,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		Balance:       decimal.Zero,
		Status:        domain.AccountActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.executor.Run(ctx, "create bank account", func(ctx context.Context, r *Reads) (*Plan, error) {
		plan := NewPlan()
		plan.CreateBankAccount(account)

		if input.OpeningBalance.IsPositive() {
			if err := stageBankDelta(plan, uc.idGen, account, input.OpeningBalance, now, "opening balance", nil, now); err != nil {
				return nil, err
			}
		}

		plan.AddEvent(&domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   account.ID,
			AggregateType: domain.AggregateTypeAccount,
			EventType:     domain.EventTypeAccountCreated,
			Payload: map[string]any{
				"account_id": account.ID,
				"title":      account.Title,
				"opening":    input.OpeningBalance.String(),
			},
			CreatedAt: now,
		})

		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount fetches an account by ID.
func (uc *BankUseCase) GetAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	return uc.bankRepo.GetAccountByID(ctx, id)
}

// ListAccounts lists bank accounts.
func (uc *BankUseCase) ListAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.bankRepo.ListAccounts(ctx, limit, offset)
}

// ListTransactions lists an account's transaction history, newest first.
func (uc *BankUseCase) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]*domain.BankTransaction, error) {
	if _, err := uc.bankRepo.GetAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.bankRepo.ListTransactions(ctx, accountID, limit, offset)
}

// TransferInput represents input for a transfer between two accounts.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
}

// Transfer moves money between two accounts as one atomic unit. Accounts are
// locked in sorted ID order to avoid lock cycles with concurrent transfers.
func (uc *BankUseCase) Transfer(ctx context.Context, input TransferInput) error {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}
	if input.FromAccountID == input.ToAccountID {
		return domain.ErrSameAccount
	}

	first, second := input.FromAccountID, input.ToAccountID
	if second < first {
		first, second = second, first
	}

	return uc.executor.Run(ctx, "bank transfer", func(ctx context.Context, r *Reads) (*Plan, error) {
		accounts := make(map[string]*domain.BankAccount, 2)
		for _, id := range []string{first, second} {
			account, err := r.BankAccount(ctx, id)
			if err != nil {
				return nil, err
			}
			accounts[id] = account
		}

		from := accounts[input.FromAccountID]
		to := accounts[input.ToAccountID]

		if from.Status == domain.AccountArchived || to.Status == domain.AccountArchived {
			return nil, domain.ErrAccountArchived
		}

		now := time.Now().UTC()
		plan := NewPlan()

		desc := input.Description
		if desc == "" {
			desc = "transfer"
		}

		if err := stageBankDelta(plan, uc.idGen, from, input.Amount.Neg(), input.Date, desc+" to "+to.Title, nil, now); err != nil {
			return nil, err
		}
		if err := stageBankDelta(plan, uc.idGen, to, input.Amount, input.Date, desc+" from "+from.Title, nil, now); err != nil {
			return nil, err
		}

		plan.AddEvent(&domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   from.ID,
			AggregateType: domain.AggregateTypeAccount,
			EventType:     domain.EventTypeBankTransferExecuted,
			Payload: map[string]any{
				"from_account_id": from.ID,
				"to_account_id":   to.ID,
				"amount":          input.Amount.String(),
			},
			CreatedAt: now,
		})

		return plan, nil
	})
}

// ArchiveAccount tombstones a bank account. Checked under the row lock, same
// as party archival.
func (uc *BankUseCase) ArchiveAccount(ctx context.Context, id string) error {
	return uc.executor.Run(ctx, "archive bank account", func(ctx context.Context, r *Reads) (*Plan, error) {
		account, err := r.BankAccount(ctx, id)
		if err != nil {
			return nil, err
		}

		if account.Status == domain.AccountArchived {
			return NewPlan(), nil
		}

		if err := account.CanArchive(); err != nil {
			return nil, err
		}

		account.UpdatedAt = time.Now().UTC()
		plan := NewPlan()
		plan.SetAccountStatus(account, domain.AccountArchived)
		return plan, nil
	})
}

// ManualAdjustmentInput represents a deposit into or withdrawal from an
// account recorded outside any ledger entry.
type ManualAdjustmentInput struct {
	AccountID   string
	Direction   domain.TxnDirection
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// ManualAdjustment applies a manual deposit or withdrawal. Withdrawals that
// would take the balance negative are refused.
func (uc *BankUseCase) ManualAdjustment(ctx context.Context, input ManualAdjustmentInput) (*domain.BankAccount, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Direction != domain.TxnCredit && input.Direction != domain.TxnDebit {
		return nil, domain.ErrInvalidAmount
	}

	var adjusted *domain.BankAccount

	err := uc.executor.Run(ctx, "manual bank adjustment", func(ctx context.Context, r *Reads) (*Plan, error) {
		account, err := r.BankAccount(ctx, input.AccountID)
		if err != nil {
			return nil, err
		}
		if account.Status == domain.AccountArchived {
			return nil, domain.ErrAccountArchived
		}

		delta := input.Amount
		if input.Direction == domain.TxnDebit {
			delta = delta.Neg()
		}

		desc := input.Description
		if desc == "" {
			desc = "manual adjustment"
		}

		now := time.Now().UTC()
		plan := NewPlan()
		if err := stageBankDelta(plan, uc.idGen, account, delta, input.Date, desc, nil, now); err != nil {
			return nil, err
		}

		plan.AddEvent(&domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   account.ID,
			AggregateType: domain.AggregateTypeAccount,
			EventType:     domain.EventTypeAccountAdjusted,
			Payload: map[string]any{
				"account_id": account.ID,
				"direction":  string(input.Direction),
				"amount":     input.Amount.String(),
			},
			CreatedAt: now,
		})

		adjusted = account
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return adjusted, nil
}
