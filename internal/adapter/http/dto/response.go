package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PartyResponse represents a customer or dealer in API responses.
type PartyResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *PartyResponse {
	return &PartyResponse{
		ID:        p.ID,
		Kind:      string(p.Kind),
		Name:      p.Name,
		Phone:     p.Phone,
		Address:   p.Address,
		Balance:   p.Balance,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []*domain.Party) []*PartyResponse {
	result := make([]*PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// ListPartiesResponse wraps a party listing.
type ListPartiesResponse struct {
	Parties []*PartyResponse `json:"parties"`
	Total   int64            `json:"total"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID            string          `json:"id"`
	PartyID       string          `json:"party_id"`
	Kind          string          `json:"kind"`
	EntryDate     time.Time       `json:"entry_date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		PartyID:       e.PartyID,
		Kind:          string(e.Kind),
		EntryDate:     e.EntryDate,
		Amount:        e.Amount,
		Method:        string(e.Method),
		BankAccountID: e.BankAccountID,
		Reference:     e.Reference,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// SaleResponse represents a recorded sale or purchase.
type SaleResponse struct {
	Entry        *EntryResponse  `json:"entry"`
	PaymentEntry *EntryResponse  `json:"payment_entry,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

// SaleFromOutput converts a sale result to a response.
func SaleFromOutput(out *usecase.RecordSaleOutput) *SaleResponse {
	resp := &SaleResponse{
		Entry: EntryFromDomain(out.Entry),
		Total: out.Total,
	}
	if out.PaymentEntry != nil {
		resp.PaymentEntry = EntryFromDomain(out.PaymentEntry)
	}
	return resp
}

// PurchaseFromOutput converts a purchase result to a response.
func PurchaseFromOutput(out *usecase.RecordPurchaseOutput) *SaleResponse {
	resp := &SaleResponse{
		Entry: EntryFromDomain(out.Entry),
		Total: out.Total,
	}
	if out.PaymentEntry != nil {
		resp.PaymentEntry = EntryFromDomain(out.PaymentEntry)
	}
	return resp
}

// BankAccountResponse represents a bank account in API responses.
type BankAccountResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	BankName      string          `json:"bank_name,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BankAccountFromDomain converts a domain account to a response.
func BankAccountFromDomain(a *domain.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		ID:            a.ID,
		Title:         a.Title,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// BankAccountsFromDomain converts domain accounts to responses.
func BankAccountsFromDomain(accounts []*domain.BankAccount) []*BankAccountResponse {
	result := make([]*BankAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = BankAccountFromDomain(a)
	}
	return result
}

// ListBankAccountsResponse wraps an account listing.
type ListBankAccountsResponse struct {
	Accounts []*BankAccountResponse `json:"accounts"`
	Total    int64                  `json:"total"`
}

// BankTransactionResponse represents a bank transaction in API responses.
type BankTransactionResponse struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	TxnDate       time.Time       `json:"txn_date"`
	Description   string          `json:"description,omitempty"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	LedgerEntryID *string         `json:"ledger_entry_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BankTransactionsFromDomain converts domain transactions to responses.
func BankTransactionsFromDomain(txns []*domain.BankTransaction) []*BankTransactionResponse {
	result := make([]*BankTransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = &BankTransactionResponse{
			ID:            t.ID,
			AccountID:     t.AccountID,
			TxnDate:       t.TxnDate,
			Description:   t.Description,
			Direction:     string(t.Direction),
			Amount:        t.Amount,
			BalanceAfter:  t.BalanceAfter,
			LedgerEntryID: t.LedgerEntryID,
			CreatedAt:     t.CreatedAt,
		}
	}
	return result
}

// ListBankTransactionsResponse wraps a transaction listing.
type ListBankTransactionsResponse struct {
	Transactions []*BankTransactionResponse `json:"transactions"`
	Total        int64                      `json:"total"`
}

// StockItemResponse represents a catalog item in API responses.
type StockItemResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockItemFromDomain converts a domain stock item to a response.
func StockItemFromDomain(s *domain.StockItem) *StockItemResponse {
	return &StockItemResponse{
		ID:        s.ID,
		Kind:      string(s.Kind),
		Name:      s.Name,
		CostPrice: s.CostPrice,
		SalePrice: s.SalePrice,
		Stock:     s.Stock,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// StockItemsFromDomain converts domain stock items to responses.
func StockItemsFromDomain(items []*domain.StockItem) []*StockItemResponse {
	result := make([]*StockItemResponse, len(items))
	for i, s := range items {
		result[i] = StockItemFromDomain(s)
	}
	return result
}

// ListStockItemsResponse wraps a stock item listing.
type ListStockItemsResponse struct {
	Items []*StockItemResponse `json:"items"`
	Total int64                `json:"total"`
}

// AggregateResponse represents an aggregate stock singleton.
type AggregateResponse struct {
	Resource  string          `json:"resource"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AggregateFromDomain converts a domain aggregate to a response.
func AggregateFromDomain(a *domain.AggregateStock) *AggregateResponse {
	return &AggregateResponse{
		Resource:  string(a.Resource),
		Quantity:  a.Quantity,
		Value:     a.Value,
		UpdatedAt: a.UpdatedAt,
	}
}

// MovementResponse represents an aggregate movement.
type MovementResponse struct {
	ID            string          `json:"id"`
	Resource      string          `json:"resource"`
	Direction     string          `json:"direction"`
	Quantity      decimal.Decimal `json:"quantity"`
	Value         decimal.Decimal `json:"value"`
	Method        string          `json:"method"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	MovedAt       time.Time       `json:"moved_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.AggregateMovement) *MovementResponse {
	return &MovementResponse{
		ID:            m.ID,
		Resource:      string(m.Resource),
		Direction:     string(m.Direction),
		Quantity:      m.Quantity,
		Value:         m.Value,
		Method:        string(m.Method),
		BankAccountID: m.BankAccountID,
		MovedAt:       m.MovedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.AggregateMovement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// StatementRowResponse is one line of a party statement.
type StatementRowResponse struct {
	EntryID   string          `json:"entry_id"`
	Date      time.Time       `json:"date"`
	Kind      string          `json:"kind"`
	Reference string          `json:"reference,omitempty"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"`
}

// StatementResponse represents a party statement with running balances.
type StatementResponse struct {
	PartyID      string                  `json:"party_id"`
	PartyName    string                  `json:"party_name"`
	Balance      decimal.Decimal         `json:"balance"`
	TotalDebits  decimal.Decimal         `json:"total_debits"`
	TotalCredits decimal.Decimal         `json:"total_credits"`
	Rows         []*StatementRowResponse `json:"rows"`
	GeneratedAt  time.Time               `json:"generated_at"`
}

// StatementFromUseCase converts a statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	rows := make([]*StatementRowResponse, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = &StatementRowResponse{
			EntryID:   row.EntryID,
			Date:      row.Date,
			Kind:      string(row.Kind),
			Reference: row.Reference,
			Debit:     row.Debit,
			Credit:    row.Credit,
			Balance:   row.Balance,
		}
	}
	return &StatementResponse{
		PartyID:      s.PartyID,
		PartyName:    s.PartyName,
		Balance:      s.Balance,
		TotalDebits:  s.TotalDebits,
		TotalCredits: s.TotalCredits,
		Rows:         rows,
		GeneratedAt:  s.GeneratedAt,
	}
}

// CashReconciliationResponse is the outcome of closing the drawer.
type CashReconciliationResponse struct {
	Date          time.Time       `json:"date"`
	Phase         string          `json:"phase"`
	Opening       decimal.Decimal `json:"opening"`
	Expected      decimal.Decimal `json:"expected"`
	Counted       decimal.Decimal `json:"counted"`
	Difference    decimal.Decimal `json:"difference"`
	CashReceived  decimal.Decimal `json:"cash_received"`
	CashToDealers decimal.Decimal `json:"cash_to_dealers"`
	CashForScrap  decimal.Decimal `json:"cash_for_scrap"`
	CashExpenses  decimal.Decimal `json:"cash_expenses"`
	BankDeposits  decimal.Decimal `json:"bank_deposits"`
}

// CashReconciliationFromDomain converts a reconciliation to a response.
func CashReconciliationFromDomain(r *domain.CashReconciliation) *CashReconciliationResponse {
	return &CashReconciliationResponse{
		Date:          r.Date,
		Phase:         string(r.Phase),
		Opening:       r.Opening,
		Expected:      r.Expected,
		Counted:       r.Counted,
		Difference:    r.Difference,
		CashReceived:  r.Totals.CashReceived,
		CashToDealers: r.Totals.CashToDealers,
		CashForScrap:  r.Totals.CashForScrap,
		CashExpenses:  r.Totals.CashExpenses,
		BankDeposits:  r.Totals.BankDeposits,
	}
}

// ReconciliationResultResponse is one consistency check outcome.
type ReconciliationResultResponse struct {
	Subject           string          `json:"subject"`
	ID                string          `json:"id"`
	RecordedBalance   decimal.Decimal `json:"recorded_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	IsReconciled      bool            `json:"is_reconciled"`
}

// ReconciliationReportResponse summarizes a full consistency sweep.
type ReconciliationReportResponse struct {
	TotalChecked  int                             `json:"total_checked"`
	Reconciled    int                             `json:"reconciled"`
	Discrepancies []*ReconciliationResultResponse `json:"discrepancies"`
	CheckedAt     time.Time                       `json:"checked_at"`
}

// ReportFromUseCase converts a reconciliation report to a response.
func ReportFromUseCase(report *usecase.ReconciliationReport) *ReconciliationReportResponse {
	discrepancies := make([]*ReconciliationResultResponse, len(report.Discrepancies))
	for i, d := range report.Discrepancies {
		discrepancies[i] = &ReconciliationResultResponse{
			Subject:           d.Subject,
			ID:                d.ID,
			RecordedBalance:   d.RecordedBalance,
			CalculatedBalance: d.CalculatedBalance,
			Difference:        d.Difference,
			IsReconciled:      d.IsReconciled,
		}
	}
	return &ReconciliationReportResponse{
		TotalChecked:  report.TotalChecked,
		Reconciled:    report.Reconciled,
		Discrepancies: discrepancies,
		CheckedAt:     report.CheckedAt,
	}
}
