package ofx

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a statement transaction.
type TransactionType string

const (
	Credit      TransactionType = "CREDIT"
	Debit       TransactionType = "DEBIT"
	Interest    TransactionType = "INT"
	Dividend    TransactionType = "DIV"
	Fee         TransactionType = "FEE"
	ServiceChg  TransactionType = "SRVCHG"
	Deposit     TransactionType = "DEP"
	ATM         TransactionType = "ATM"
	PointOfSale TransactionType = "POS"
	Transfer    TransactionType = "XFER"
	Check       TransactionType = "CHECK"
	Payment     TransactionType = "PAYMENT"
	Cash        TransactionType = "CASH"
	DirectDep   TransactionType = "DIRECTDEP"
	DirectDebit TransactionType = "DIRECTDEBIT"
	RepeatPmt   TransactionType = "REPEATPMT"
	Hold        TransactionType = "HOLD"
	OtherTrn    TransactionType = "OTHER"
)

var ParseTransactionType = oneOf(Credit, Debit, Interest, Dividend, Fee, ServiceChg, Deposit, ATM,
	PointOfSale, Transfer, Check, Payment, Cash, DirectDep, DirectDebit, RepeatPmt, Hold, OtherTrn)

// CorrectionAction tells how a transaction corrects a previous one.
type CorrectionAction string

const (
	Replace CorrectionAction = "REPLACE"
	Delete  CorrectionAction = "DELETE"
)

var ParseCorrectionAction = oneOf(Replace, Delete)

// IncludeTransactions selects the transactions of a statement request.
// Zero dates leave the range open.
type IncludeTransactions struct {
	Start   time.Time
	End     time.Time
	Include bool
}

// Balance is an amount at a date (LEDGERBAL, AVAILBAL).
type Balance struct {
	Amount decimal.Decimal
	AsOf   time.Time
}

// Payee of a transaction.
type Payee struct {
	Name       string
	Address1   string
	Address2   string
	Address3   string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// Currency is a currency with its rate to the statement's default
// currency (CURRENCY, ORIGCURRENCY).
type Currency struct {
	Rate   decimal.Decimal
	Symbol string
}

// Transaction is one line of a bank or credit card statement.
type Transaction struct {
	Type             TransactionType
	Posted           time.Time
	Initiated        time.Time
	Available        time.Time
	Amount           decimal.Decimal
	ID               string
	CorrectionID     string
	CorrectionAction CorrectionAction
	TempID           string
	CheckNumber      string
	ReferenceNumber  string
	SIC              string
	PayeeID          string
	Name             string
	Payee            *Payee
	BankAccountTo    *BankAccount
	CCAccountTo      *CreditCardAccount
	Memo             string
	Currency         *Currency
	OriginalCurrency *Currency
}

// TransactionList is the list of transactions of a statement.
type TransactionList struct {
	Start        time.Time
	End          time.Time
	Transactions []Transaction
}

// StatementRange returns the INCTRAN selecting transactions between start
// and end.
func StatementRange(start, end time.Time) *IncludeTransactions {
	return &IncludeTransactions{Start: start, End: end, Include: true}
}

func registerStatements(r *Registry) {
	Register[IncludeTransactions](r, "INCTRAN",
		Element("DTSTART", 0, DateTime, func(i *IncludeTransactions) *time.Time { return &i.Start }),
		Element("DTEND", 10, DateTime, func(i *IncludeTransactions) *time.Time { return &i.End }),
		Element("INCLUDE", 20, Flag, func(i *IncludeTransactions) *bool { return &i.Include }).Required(),
	)
	Register[Balance](r, "LEDGERBAL",
		Element("BALAMT", 0, Number, func(b *Balance) *decimal.Decimal { return &b.Amount }).Required(),
		Element("DTASOF", 10, DateTime, func(b *Balance) *time.Time { return &b.AsOf }).Required(),
	)
	Register[Payee](r, "PAYEE",
		Element("NAME", 0, Text, func(p *Payee) *string { return &p.Name }).Required(),
		Element("ADDR1", 10, Text, func(p *Payee) *string { return &p.Address1 }).Required(),
		Element("ADDR2", 20, Text, func(p *Payee) *string { return &p.Address2 }),
		Element("ADDR3", 30, Text, func(p *Payee) *string { return &p.Address3 }),
		Element("CITY", 40, Text, func(p *Payee) *string { return &p.City }).Required(),
		Element("STATE", 50, Text, func(p *Payee) *string { return &p.State }).Required(),
		Element("POSTALCODE", 60, Text, func(p *Payee) *string { return &p.PostalCode }).Required(),
		Element("COUNTRY", 70, Text, func(p *Payee) *string { return &p.Country }),
		Element("PHONE", 80, Text, func(p *Payee) *string { return &p.Phone }).Required(),
	)
	Register[Currency](r, "CURRENCY",
		Element("CURRATE", 0, Number, func(c *Currency) *decimal.Decimal { return &c.Rate }).Required(),
		Element("CURSYM", 10, Text, func(c *Currency) *string { return &c.Symbol }).Required(),
	)
	Register[Transaction](r, "STMTTRN",
		Element("TRNTYPE", 0, Enum(ParseTransactionType), func(t *Transaction) *TransactionType { return &t.Type }).Required(),
		Element("DTPOSTED", 10, DateTime, func(t *Transaction) *time.Time { return &t.Posted }).Required(),
		Element("DTUSER", 20, DateTime, func(t *Transaction) *time.Time { return &t.Initiated }),
		Element("DTAVAIL", 30, DateTime, func(t *Transaction) *time.Time { return &t.Available }),
		Element("TRNAMT", 40, Number, func(t *Transaction) *decimal.Decimal { return &t.Amount }).Required(),
		Element("FITID", 50, Text, func(t *Transaction) *string { return &t.ID }).Required(),
		Element("CORRECTFITID", 60, Text, func(t *Transaction) *string { return &t.CorrectionID }),
		Element("CORRECTACTION", 70, Enum(ParseCorrectionAction), func(t *Transaction) *CorrectionAction { return &t.CorrectionAction }),
		Element("SRVRTID", 80, Text, func(t *Transaction) *string { return &t.TempID }),
		Element("CHECKNUM", 90, Text, func(t *Transaction) *string { return &t.CheckNumber }),
		Element("REFNUM", 100, Text, func(t *Transaction) *string { return &t.ReferenceNumber }),
		Element("SIC", 110, Text, func(t *Transaction) *string { return &t.SIC }),
		Element("PAYEEID", 120, Text, func(t *Transaction) *string { return &t.PayeeID }),
		Element("NAME", 130, Text, func(t *Transaction) *string { return &t.Name }),
		Child("", 140, func(t *Transaction) **Payee { return &t.Payee }),
		Child("BANKACCTTO", 150, func(t *Transaction) **BankAccount { return &t.BankAccountTo }),
		Child("CCACCTTO", 160, func(t *Transaction) **CreditCardAccount { return &t.CCAccountTo }),
		Element("MEMO", 170, Text, func(t *Transaction) *string { return &t.Memo }),
		Child("", 180, func(t *Transaction) **Currency { return &t.Currency }),
		Child("ORIGCURRENCY", 190, func(t *Transaction) **Currency { return &t.OriginalCurrency }),
	)
	Register[TransactionList](r, "BANKTRANLIST",
		Element("DTSTART", 0, DateTime, func(l *TransactionList) *time.Time { return &l.Start }).Required(),
		Element("DTEND", 10, DateTime, func(l *TransactionList) *time.Time { return &l.End }).Required(),
		Children("", 20, func(l *TransactionList) *[]Transaction { return &l.Transactions }),
	)
}
