package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ofx"
)

// Statement is the view of a bank or credit card statement. Amounts are
// formatted in the statement currency unless a transaction has its own.
type Statement struct {
	Title        string          `json:"title"`
	Account      string          `json:"account"`
	Currency     string          `json:"currency"`
	From         string          `json:"from,omitempty"`
	To           string          `json:"to,omitempty"`
	Transactions []StatementLine `json:"transactions"`
	Balances     []BalanceLine   `json:"balances"`
}

// StatementLine is a single transaction of a statement.
type StatementLine struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Memo        string `json:"memo,omitempty"`
	Amount      string `json:"amount"`
}

// BalanceLine is a balance at a given date.
type BalanceLine struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	AsOf   string `json:"asOf"`
}

// NewBankStatement creates the view of a bank statement.
func NewBankStatement(s *ofx.StatementResponse) *Statement {
	v := &Statement{Title: "Bank Statement", Currency: s.CurrencyCode}
	if a := s.Account; a != nil {
		v.Account = fmt.Sprintf("%s %s", a.BankID, a.AccountID)
		if a.Type != "" {
			v.Account += fmt.Sprintf(" (%s)", strings.ToLower(string(a.Type)))
		}
	}
	v.fill(s.TransactionList, s.LedgerBalance, s.AvailableBalance)
	return v
}

// NewCreditCardStatement creates the view of a credit card statement.
func NewCreditCardStatement(s *ofx.CreditCardStatementResponse) *Statement {
	v := &Statement{Title: "Credit Card Statement", Currency: s.CurrencyCode}
	if a := s.Account; a != nil {
		v.Account = a.AccountID
	}
	v.fill(s.TransactionList, s.LedgerBalance, s.AvailableBalance)
	return v
}

func (v *Statement) fill(list *ofx.TransactionList, ledger, available *ofx.Balance) {
	v.Transactions = make([]StatementLine, 0)
	v.Balances = make([]BalanceLine, 0)
	if list != nil {
		v.From, v.To = Day(list.Start), Day(list.End)
		for _, t := range list.Transactions {
			v.Transactions = append(v.Transactions, StatementLine{
				Date:        Day(t.Posted),
				Type:        strings.ToLower(string(t.Type)),
				ID:          cell(t.ID),
				Description: cell(description(t)),
				Memo:        cell(t.Memo),
				Amount:      Amount(t.Amount, transactionCurrency(t, v.Currency)),
			})
		}
	}
	if ledger != nil {
		v.Balances = append(v.Balances, BalanceLine{Name: "Ledger", Amount: Amount(ledger.Amount, v.Currency), AsOf: Day(ledger.AsOf)})
	}
	if available != nil {
		v.Balances = append(v.Balances, BalanceLine{Name: "Available", Amount: Amount(available.Amount, v.Currency), AsOf: Day(available.AsOf)})
	}
}

// description names the counterpart of a transaction.
func description(t ofx.Transaction) string {
	name := t.Name
	if name == "" && t.Payee != nil {
		name = t.Payee.Name
	}
	if t.CheckNumber != "" {
		name = strings.TrimSpace(fmt.Sprintf("%s (check %s)", name, t.CheckNumber))
	}
	return name
}

// transactionCurrency returns the currency of the amounts of t.
func transactionCurrency(t ofx.Transaction, def string) string {
	if t.Currency != nil && t.Currency.Symbol != "" {
		return t.Currency.Symbol
	}
	return def
}
