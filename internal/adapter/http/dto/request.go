package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// CreatePartyRequest represents a request to register a customer or dealer.
type CreatePartyRequest struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePartyRequest) ToUseCaseInput() usecase.CreatePartyInput {
	return usecase.CreatePartyInput{
		Kind:    domain.PartyKind(r.Kind),
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// UpdatePartyRequest represents a request to update party contact details.
type UpdatePartyRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdatePartyRequest) ToUseCaseInput() usecase.UpdatePartyInput {
	return usecase.UpdatePartyInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// RecordPaymentRequest represents a request to record a payment.
type RecordPaymentRequest struct {
	PartyID       string          `json:"party_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Method        string          `json:"method"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input. The idempotency key travels in
// a header, not the body.
func (r *RecordPaymentRequest) ToUseCaseInput(idempotencyKey string) usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		PartyID:        r.PartyID,
		Amount:         r.Amount,
		Date:           r.Date,
		Method:         domain.PaymentMethod(r.Method),
		BankAccountID:  r.BankAccountID,
		Reference:      r.Reference,
		IdempotencyKey: idempotencyKey,
	}
}

// EditPaymentRequest represents a request to edit a recorded payment.
type EditPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Method        string          `json:"method"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *EditPaymentRequest) ToUseCaseInput() usecase.EditPaymentInput {
	return usecase.EditPaymentInput{
		Amount:        r.Amount,
		Date:          r.Date,
		Method:        domain.PaymentMethod(r.Method),
		BankAccountID: r.BankAccountID,
		Reference:     r.Reference,
	}
}

// SaleLine is one stock line of a sale or purchase.
type SaleLine struct {
	StockItemID string          `json:"stock_item_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// RecordSaleRequest represents a request to record a sale.
type RecordSaleRequest struct {
	PartyID       string          `json:"party_id"`
	Date          time.Time       `json:"date"`
	Items         []SaleLine      `json:"items"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Method        string          `json:"method"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordSaleRequest) ToUseCaseInput(idempotencyKey string) usecase.RecordSaleInput {
	items := make([]usecase.SaleLineInput, len(r.Items))
	for i, line := range r.Items {
		items[i] = usecase.SaleLineInput{
			StockItemID: line.StockItemID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		}
	}
	return usecase.RecordSaleInput{
		PartyID:        r.PartyID,
		Date:           r.Date,
		Items:          items,
		PaidAmount:     r.PaidAmount,
		Method:         domain.PaymentMethod(r.Method),
		BankAccountID:  r.BankAccountID,
		Reference:      r.Reference,
		IdempotencyKey: idempotencyKey,
	}
}

// RecordPurchaseRequest represents a request to record a purchase from a
// dealer.
type RecordPurchaseRequest struct {
	PartyID       string          `json:"party_id"`
	Date          time.Time       `json:"date"`
	Items         []SaleLine      `json:"items"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Method        string          `json:"method"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPurchaseRequest) ToUseCaseInput(idempotencyKey string) usecase.RecordPurchaseInput {
	items := make([]usecase.PurchaseLineInput, len(r.Items))
	for i, line := range r.Items {
		items[i] = usecase.PurchaseLineInput{
			StockItemID: line.StockItemID,
			Quantity:    line.Quantity,
			UnitCost:    line.UnitPrice,
		}
	}
	return usecase.RecordPurchaseInput{
		PartyID:        r.PartyID,
		Date:           r.Date,
		Items:          items,
		PaidAmount:     r.PaidAmount,
		Method:         domain.PaymentMethod(r.Method),
		BankAccountID:  r.BankAccountID,
		Reference:      r.Reference,
		IdempotencyKey: idempotencyKey,
	}
}

// CreateBankAccountRequest represents a request to create a bank account.
type CreateBankAccountRequest struct {
	Title          string          `json:"title"`
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBankAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Title:          r.Title,
		BankName:       r.BankName,
		AccountNumber:  r.AccountNumber,
		OpeningBalance: r.OpeningBalance,
	}
}

// BankTransferRequest represents a request to move money between accounts.
type BankTransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *BankTransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
		Date:          r.Date,
		Description:   r.Description,
	}
}

// ManualAdjustmentRequest represents a manual deposit or withdrawal.
type ManualAdjustmentRequest struct {
	Direction   string          `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ManualAdjustmentRequest) ToUseCaseInput(accountID string) usecase.ManualAdjustmentInput {
	return usecase.ManualAdjustmentInput{
		AccountID:   accountID,
		Direction:   domain.TxnDirection(r.Direction),
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
	}
}

// CreateStockItemRequest represents a request to add a catalog item.
type CreateStockItemRequest struct {
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateStockItemRequest) ToUseCaseInput() usecase.CreateStockItemInput {
	return usecase.CreateStockItemInput{
		Kind:      domain.StockItemKind(r.Kind),
		Name:      r.Name,
		CostPrice: r.CostPrice,
		SalePrice: r.SalePrice,
	}
}

// UpdateStockItemRequest represents a request to update catalog details.
type UpdateStockItemRequest struct {
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateStockItemRequest) ToUseCaseInput() usecase.UpdateStockItemInput {
	return usecase.UpdateStockItemInput{
		Name:      r.Name,
		CostPrice: r.CostPrice,
		SalePrice: r.SalePrice,
	}
}

// PurchaseAggregateRequest represents a bulk scrap or acid purchase.
type PurchaseAggregateRequest struct {
	Resource      string          `json:"resource"`
	Quantity      decimal.Decimal `json:"quantity"`
	Value         decimal.Decimal `json:"value"`
	Method        string          `json:"method"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	Date          time.Time       `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *PurchaseAggregateRequest) ToUseCaseInput() usecase.PurchaseAggregateInput {
	return usecase.PurchaseAggregateInput{
		Resource:      domain.AggregateResource(r.Resource),
		Quantity:      r.Quantity,
		Value:         r.Value,
		Method:        domain.PaymentMethod(r.Method),
		BankAccountID: r.BankAccountID,
		Date:          r.Date,
	}
}

// ConsumeAggregateRequest represents a bulk scrap or acid consumption.
type ConsumeAggregateRequest struct {
	Resource string          `json:"resource"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
	Date     time.Time       `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *ConsumeAggregateRequest) ToUseCaseInput() usecase.ConsumeAggregateInput {
	return usecase.ConsumeAggregateInput{
		Resource: domain.AggregateResource(r.Resource),
		Quantity: r.Quantity,
		Value:    r.Value,
		Date:     r.Date,
	}
}

// ReconcileCashRequest represents the figures entered when closing the
// drawer. Denomination counts map note value to count.
type ReconcileCashRequest struct {
	Date         time.Time       `json:"date"`
	Opening      map[int64]int64 `json:"opening"`
	Closing      map[int64]int64 `json:"closing"`
	CashExpenses decimal.Decimal `json:"cash_expenses"`
	BankDeposits decimal.Decimal `json:"bank_deposits"`
}

// ToUseCaseInput converts to use case input.
func (r *ReconcileCashRequest) ToUseCaseInput() usecase.ReconcileInput {
	return usecase.ReconcileInput{
		Date:         r.Date,
		Opening:      domain.DenominationCount(r.Opening),
		Closing:      domain.DenominationCount(r.Closing),
		CashExpenses: r.CashExpenses,
		BankDeposits: r.BankDeposits,
	}
}
