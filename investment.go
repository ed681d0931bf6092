package ofx

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubAccountType is the sub-account of a brokerage account.
type SubAccountType string

const (
	SubAccountCash   SubAccountType = "CASH"
	SubAccountMargin SubAccountType = "MARGIN"
	SubAccountShort  SubAccountType = "SHORT"
	SubAccountOther  SubAccountType = "OTHER"
)

var ParseSubAccountType = oneOf(SubAccountCash, SubAccountMargin, SubAccountShort, SubAccountOther)

type BuyType string

const (
	Buy        BuyType = "BUY"
	BuyToCover BuyType = "BUYTOCOVER"
)

var ParseBuyType = oneOf(Buy, BuyToCover)

type SellType string

const (
	Sell      SellType = "SELL"
	SellShort SellType = "SELLSHORT"
)

var ParseSellType = oneOf(Sell, SellShort)

type IncomeType string

const (
	IncomeLongTermGain  IncomeType = "CGLONG"
	IncomeShortTermGain IncomeType = "CGSHORT"
	IncomeDividend      IncomeType = "DIV"
	IncomeInterest      IncomeType = "INTEREST"
	IncomeMisc          IncomeType = "MISC"
)

var ParseIncomeType = oneOf(IncomeLongTermGain, IncomeShortTermGain, IncomeDividend, IncomeInterest, IncomeMisc)

type PositionType string

const (
	Long  PositionType = "LONG"
	Short PositionType = "SHORT"
)

var ParsePositionType = oneOf(Long, Short)

type Secured string

const (
	Naked   Secured = "NAKED"
	Covered Secured = "COVERED"
)

var ParseSecured = oneOf(Naked, Covered)

// IncludePositions selects the positions of an investment statement.
type IncludePositions struct {
	AsOf    time.Time
	Include bool
}

// InvestmentStatementRequest asks for the statement of a brokerage account.
type InvestmentStatementRequest struct {
	Account           *InvestmentAccount
	Transactions      *IncludeTransactions
	IncludeOpenOrders bool
	Positions         *IncludePositions
	IncludeBalance    bool
}

// InvestmentStatementResponse is the statement of a brokerage account.
type InvestmentStatementResponse struct {
	AsOf            time.Time
	CurrencyCode    string
	Account         *InvestmentAccount
	TransactionList *InvestmentTransactionList
	Positions       *PositionList
	Balance         *InvestmentBalance
	MarketingInfo   string
}

// SecurityID identifies a security, usually by CUSIP.
type SecurityID struct {
	UniqueID     string
	UniqueIDType string
}

// InvestmentTransactionInfo is the part shared by investment transactions.
type InvestmentTransactionInfo struct {
	ID             string
	ServerID       string
	TradeDate      time.Time
	SettlementDate time.Time
	ReversalID     string
	Memo           string
}

// InvestmentBuy is the part shared by the buy transactions.
type InvestmentBuy struct {
	Transaction        *InvestmentTransactionInfo
	Security           *SecurityID
	Units              decimal.Decimal
	UnitPrice          decimal.Decimal
	Markup             *decimal.Decimal
	Commission         *decimal.Decimal
	Taxes              *decimal.Decimal
	Fees               *decimal.Decimal
	Load               *decimal.Decimal
	Total              decimal.Decimal
	Currency           *Currency
	OriginalCurrency   *Currency
	SubAccountSecurity SubAccountType
	SubAccountFund     SubAccountType
}

// InvestmentSell is the part shared by the sell transactions.
type InvestmentSell struct {
	Transaction        *InvestmentTransactionInfo
	Security           *SecurityID
	Units              decimal.Decimal
	UnitPrice          decimal.Decimal
	Markdown           *decimal.Decimal
	Commission         *decimal.Decimal
	Taxes              *decimal.Decimal
	Fees               *decimal.Decimal
	Load               *decimal.Decimal
	Withholding        *decimal.Decimal
	TaxExempt          *bool
	Total              decimal.Decimal
	Gain               *decimal.Decimal
	Currency           *Currency
	OriginalCurrency   *Currency
	SubAccountSecurity SubAccountType
	SubAccountFund     SubAccountType
}

// InvestmentTransaction is one of BuyStock, SellStock, BuyMutualFund,
// SellMutualFund, Income or InvestmentBankTransaction.
type InvestmentTransaction interface {
	investmentTransaction()
}

type BuyStock struct {
	Buy  *InvestmentBuy
	Type BuyType
}

type SellStock struct {
	Sell *InvestmentSell
	Type SellType
}

type BuyMutualFund struct {
	Buy       *InvestmentBuy
	Type      BuyType
	RelatedID string
}

type SellMutualFund struct {
	Sell             *InvestmentSell
	Type             SellType
	AverageCostBasis *decimal.Decimal
	RelatedID        string
}

type Income struct {
	Transaction        *InvestmentTransactionInfo
	Security           *SecurityID
	Type               IncomeType
	Total              decimal.Decimal
	SubAccountSecurity SubAccountType
	SubAccountFund     SubAccountType
	TaxExempt          *bool
	Withholding        *decimal.Decimal
	Currency           *Currency
	OriginalCurrency   *Currency
}

// InvestmentBankTransaction is a cash movement of a brokerage account.
type InvestmentBankTransaction struct {
	Transaction    *Transaction
	SubAccountFund SubAccountType
}

func (*BuyStock) investmentTransaction()                  {}
func (*SellStock) investmentTransaction()                 {}
func (*BuyMutualFund) investmentTransaction()             {}
func (*SellMutualFund) investmentTransaction()            {}
func (*Income) investmentTransaction()                    {}
func (*InvestmentBankTransaction) investmentTransaction() {}

type InvestmentTransactionList struct {
	Start        time.Time
	End          time.Time
	Transactions []InvestmentTransaction
}

// InvestmentPosition is the part shared by positions.
type InvestmentPosition struct {
	Security      *SecurityID
	HeldInAccount SubAccountType
	Type          PositionType
	Units         decimal.Decimal
	UnitPrice     decimal.Decimal
	MarketValue   decimal.Decimal
	PriceAsOf     time.Time
	Currency      *Currency
	Memo          string
}

// Position is one of StockPosition, MutualFundPosition, DebtPosition,
// OptionPosition or OtherPosition.
type Position interface {
	Info() *InvestmentPosition
}

type StockPosition struct {
	Details           *InvestmentPosition
	UnitsStreet       *decimal.Decimal
	UnitsUser         *decimal.Decimal
	ReinvestDividends *bool
}

type MutualFundPosition struct {
	Details              *InvestmentPosition
	UnitsStreet          *decimal.Decimal
	UnitsUser            *decimal.Decimal
	ReinvestDividends    *bool
	ReinvestCapitalGains *bool
}

type DebtPosition struct {
	Details *InvestmentPosition
}

type OptionPosition struct {
	Details *InvestmentPosition
	Secured Secured
}

type OtherPosition struct {
	Details *InvestmentPosition
}

func (p *StockPosition) Info() *InvestmentPosition      { return p.Details }
func (p *MutualFundPosition) Info() *InvestmentPosition { return p.Details }
func (p *DebtPosition) Info() *InvestmentPosition       { return p.Details }
func (p *OptionPosition) Info() *InvestmentPosition     { return p.Details }
func (p *OtherPosition) Info() *InvestmentPosition      { return p.Details }

type PositionList struct {
	Positions []Position
}

// InvestmentBalance is the cash balance of a brokerage account.
type InvestmentBalance struct {
	AvailableCash decimal.Decimal
	MarginBalance decimal.Decimal
	ShortBalance  decimal.Decimal
	BuyingPower   *decimal.Decimal
}

type InvestmentStatementTransactionRequest struct {
	TransactionRequest
	Message *InvestmentStatementRequest
}

type InvestmentStatementTransactionResponse struct {
	TransactionResponse
	Message *InvestmentStatementResponse
}

func (*InvestmentStatementTransactionResponse) ResponseName() string { return "INVSTMTTRNRS" }

type InvestmentRequestMessageSet struct {
	StatementRequests []InvestmentStatementTransactionRequest
}

func (*InvestmentRequestMessageSet) Type() MessageSetType { return InvestmentSet }
func (*InvestmentRequestMessageSet) requestMessageSet()   {}

func (s *InvestmentRequestMessageSet) RequestMessages() []any {
	messages := make([]any, len(s.StatementRequests))
	for i := range s.StatementRequests {
		messages[i] = &s.StatementRequests[i]
	}
	return messages
}

type InvestmentResponseMessageSet struct {
	StatementResponses []InvestmentStatementTransactionResponse
}

func (*InvestmentResponseMessageSet) Type() MessageSetType { return InvestmentSet }
func (*InvestmentResponseMessageSet) responseMessageSet()  {}

func (s *InvestmentResponseMessageSet) ResponseMessages() []any {
	messages := make([]any, len(s.StatementResponses))
	for i := range s.StatementResponses {
		messages[i] = &s.StatementResponses[i]
	}
	return messages
}

func registerInvestment(r *Registry) {
	subAccount := Enum(ParseSubAccountType)

	Register[IncludePositions](r, "INCPOS",
		Element("DTASOF", 0, DateTime, func(i *IncludePositions) *time.Time { return &i.AsOf }),
		Element("INCLUDE", 10, Flag, func(i *IncludePositions) *bool { return &i.Include }).Required(),
	)
	Register[InvestmentStatementRequest](r, "INVSTMTRQ",
		Child("", 0, func(s *InvestmentStatementRequest) **InvestmentAccount { return &s.Account }).Required(),
		Child("", 10, func(s *InvestmentStatementRequest) **IncludeTransactions { return &s.Transactions }),
		Element("INCOO", 20, Flag, func(s *InvestmentStatementRequest) *bool { return &s.IncludeOpenOrders }).Required(),
		Child("", 30, func(s *InvestmentStatementRequest) **IncludePositions { return &s.Positions }).Required(),
		Element("INCBAL", 40, Flag, func(s *InvestmentStatementRequest) *bool { return &s.IncludeBalance }).Required(),
	)
	Register[InvestmentStatementResponse](r, "INVSTMTRS",
		Element("DTASOF", 0, DateTime, func(s *InvestmentStatementResponse) *time.Time { return &s.AsOf }).Required(),
		Element("CURDEF", 10, Text, func(s *InvestmentStatementResponse) *string { return &s.CurrencyCode }),
		Child("", 20, func(s *InvestmentStatementResponse) **InvestmentAccount { return &s.Account }).Required(),
		Child("", 30, func(s *InvestmentStatementResponse) **InvestmentTransactionList { return &s.TransactionList }),
		Child("", 40, func(s *InvestmentStatementResponse) **PositionList { return &s.Positions }),
		Child("", 50, func(s *InvestmentStatementResponse) **InvestmentBalance { return &s.Balance }),
		Element("MKTGINFO", 60, Text, func(s *InvestmentStatementResponse) *string { return &s.MarketingInfo }),
	)
	Register[SecurityID](r, "SECID",
		Element("UNIQUEID", 0, Text, func(s *SecurityID) *string { return &s.UniqueID }).Required(),
		Element("UNIQUEIDTYPE", 10, Text, func(s *SecurityID) *string { return &s.UniqueIDType }).Required(),
	)
	Register[InvestmentTransactionInfo](r, "INVTRAN",
		Element("FITID", 0, Text, func(t *InvestmentTransactionInfo) *string { return &t.ID }).Required(),
		Element("SRVRTID", 10, Text, func(t *InvestmentTransactionInfo) *string { return &t.ServerID }),
		Element("DTTRADE", 20, DateTime, func(t *InvestmentTransactionInfo) *time.Time { return &t.TradeDate }).Required(),
		Element("DTSETTLE", 30, DateTime, func(t *InvestmentTransactionInfo) *time.Time { return &t.SettlementDate }),
		Element("REVERSALFITID", 40, Text, func(t *InvestmentTransactionInfo) *string { return &t.ReversalID }),
		Element("MEMO", 50, Text, func(t *InvestmentTransactionInfo) *string { return &t.Memo }),
	)
	Register[InvestmentBuy](r, "INVBUY",
		Child("", 0, func(b *InvestmentBuy) **InvestmentTransactionInfo { return &b.Transaction }).Required(),
		Child("", 10, func(b *InvestmentBuy) **SecurityID { return &b.Security }).Required(),
		Element("UNITS", 20, Number, func(b *InvestmentBuy) *decimal.Decimal { return &b.Units }).Required(),
		Element("UNITPRICE", 30, Number, func(b *InvestmentBuy) *decimal.Decimal { return &b.UnitPrice }).Required(),
		Element("MARKUP", 40, OptNumber, func(b *InvestmentBuy) **decimal.Decimal { return &b.Markup }),
		Element("COMMISSION", 50, OptNumber, func(b *InvestmentBuy) **decimal.Decimal { return &b.Commission }),
		Element("TAXES", 60, OptNumber, func(b *InvestmentBuy) **decimal.Decimal { return &b.Taxes }),
		Element("FEES", 70, OptNumber, func(b *InvestmentBuy) **decimal.Decimal { return &b.Fees }),
		Element("LOAD", 80, OptNumber, func(b *InvestmentBuy) **decimal.Decimal { return &b.Load }),
		Element("TOTAL", 90, Number, func(b *InvestmentBuy) *decimal.Decimal { return &b.Total }).Required(),
		Child("", 100, func(b *InvestmentBuy) **Currency { return &b.Currency }),
		Child("ORIGCURRENCY", 110, func(b *InvestmentBuy) **Currency { return &b.OriginalCurrency }),
		Element("SUBACCTSEC", 120, subAccount, func(b *InvestmentBuy) *SubAccountType { return &b.SubAccountSecurity }),
		Element("SUBACCTFUND", 130, subAccount, func(b *InvestmentBuy) *SubAccountType { return &b.SubAccountFund }),
	)
	Register[InvestmentSell](r, "INVSELL",
		Child("", 0, func(s *InvestmentSell) **InvestmentTransactionInfo { return &s.Transaction }).Required(),
		Child("", 10, func(s *InvestmentSell) **SecurityID { return &s.Security }).Required(),
		Element("UNITS", 20, Number, func(s *InvestmentSell) *decimal.Decimal { return &s.Units }).Required(),
		Element("UNITPRICE", 30, Number, func(s *InvestmentSell) *decimal.Decimal { return &s.UnitPrice }).Required(),
		Element("MARKDOWN", 40, OptNumber, func(s *InvestmentSell) **decimal.Decimal { return &s.Markdown }),
		Element("COMMISSION", 50, OptNumber, func(s *InvestmentSell) **decimal.Decimal { return &s.Commission }),
		Element("TAXES", 60, OptNumber, func(s *InvestmentSell) **decimal.Decimal { return &s.Taxes }),
		Element("FEES", 70, OptNumber, func(s *InvestmentSell) **decimal.Decimal { return &s.Fees }),
		Element("LOAD", 80, OptNumber, func(s *InvestmentSell) **decimal.Decimal { return &s.Load }),
		Element("WITHHOLDING", 90, OptNumber, func(s *InvestmentSell) **decimal.Decimal { return &s.Withholding }),
		Element("TAXEXEMPT", 100, OptFlag, func(s *InvestmentSell) **bool { return &s.TaxExempt }),
		Element("TOTAL", 110, Number, func(s *InvestmentSell) *decimal.Decimal { return &s.Total }).Required(),
		Element("GAIN", 120, OptNumber, func(s *InvestmentSell) **decimal.Decimal { return &s.Gain }),
		Child("", 130, func(s *InvestmentSell) **Currency { return &s.Currency }),
		Child("ORIGCURRENCY", 140, func(s *InvestmentSell) **Currency { return &s.OriginalCurrency }),
		Element("SUBACCTSEC", 150, subAccount, func(s *InvestmentSell) *SubAccountType { return &s.SubAccountSecurity }),
		Element("SUBACCTFUND", 160, subAccount, func(s *InvestmentSell) *SubAccountType { return &s.SubAccountFund }),
	)
	Register[BuyStock](r, "BUYSTOCK",
		Child("", 0, func(b *BuyStock) **InvestmentBuy { return &b.Buy }).Required(),
		Element("BUYTYPE", 10, Enum(ParseBuyType), func(b *BuyStock) *BuyType { return &b.Type }).Required(),
	)
	Register[SellStock](r, "SELLSTOCK",
		Child("", 0, func(s *SellStock) **InvestmentSell { return &s.Sell }).Required(),
		Element("SELLTYPE", 10, Enum(ParseSellType), func(s *SellStock) *SellType { return &s.Type }).Required(),
	)
	Register[BuyMutualFund](r, "BUYMF",
		Child("", 0, func(b *BuyMutualFund) **InvestmentBuy { return &b.Buy }).Required(),
		Element("BUYTYPE", 10, Enum(ParseBuyType), func(b *BuyMutualFund) *BuyType { return &b.Type }).Required(),
		Element("RELFITID", 20, Text, func(b *BuyMutualFund) *string { return &b.RelatedID }),
	)
	Register[SellMutualFund](r, "SELLMF",
		Child("", 0, func(s *SellMutualFund) **InvestmentSell { return &s.Sell }).Required(),
		Element("SELLTYPE", 10, Enum(ParseSellType), func(s *SellMutualFund) *SellType { return &s.Type }).Required(),
		Element("AVGCOSTBASIS", 20, OptNumber, func(s *SellMutualFund) **decimal.Decimal { return &s.AverageCostBasis }),
		Element("RELFITID", 30, Text, func(s *SellMutualFund) *string { return &s.RelatedID }),
	)
	Register[Income](r, "INCOME",
		Child("", 0, func(i *Income) **InvestmentTransactionInfo { return &i.Transaction }).Required(),
		Child("", 10, func(i *Income) **SecurityID { return &i.Security }).Required(),
		Element("INCOMETYPE", 20, Enum(ParseIncomeType), func(i *Income) *IncomeType { return &i.Type }).Required(),
		Element("TOTAL", 30, Number, func(i *Income) *decimal.Decimal { return &i.Total }).Required(),
		Element("SUBACCTSEC", 40, subAccount, func(i *Income) *SubAccountType { return &i.SubAccountSecurity }),
		Element("SUBACCTFUND", 50, subAccount, func(i *Income) *SubAccountType { return &i.SubAccountFund }),
		Element("TAXEXEMPT", 60, OptFlag, func(i *Income) **bool { return &i.TaxExempt }),
		Element("WITHHOLDING", 70, OptNumber, func(i *Income) **decimal.Decimal { return &i.Withholding }),
		Child("", 80, func(i *Income) **Currency { return &i.Currency }),
		Child("ORIGCURRENCY", 90, func(i *Income) **Currency { return &i.OriginalCurrency }),
	)
	Register[InvestmentBankTransaction](r, "INVBANKTRAN",
		Child("", 0, func(b *InvestmentBankTransaction) **Transaction { return &b.Transaction }).Required(),
		Element("SUBACCTFUND", 10, subAccount, func(b *InvestmentBankTransaction) *SubAccountType { return &b.SubAccountFund }).Required(),
	)
	Register[InvestmentTransactionList](r, "INVTRANLIST",
		Element("DTSTART", 0, DateTime, func(l *InvestmentTransactionList) *time.Time { return &l.Start }).Required(),
		Element("DTEND", 10, DateTime, func(l *InvestmentTransactionList) *time.Time { return &l.End }).Required(),
		OneOf(20, func(l *InvestmentTransactionList) *[]InvestmentTransaction { return &l.Transactions },
			As[BuyStock, InvestmentTransaction](),
			As[SellStock, InvestmentTransaction](),
			As[BuyMutualFund, InvestmentTransaction](),
			As[SellMutualFund, InvestmentTransaction](),
			As[Income, InvestmentTransaction](),
			As[InvestmentBankTransaction, InvestmentTransaction](),
		),
	)

	Register[InvestmentPosition](r, "INVPOS",
		Child("", 0, func(p *InvestmentPosition) **SecurityID { return &p.Security }).Required(),
		Element("HELDINACCT", 10, subAccount, func(p *InvestmentPosition) *SubAccountType { return &p.HeldInAccount }).Required(),
		Element("POSTYPE", 20, Enum(ParsePositionType), func(p *InvestmentPosition) *PositionType { return &p.Type }).Required(),
		Element("UNITS", 30, Number, func(p *InvestmentPosition) *decimal.Decimal { return &p.Units }).Required(),
		Element("UNITPRICE", 40, Number, func(p *InvestmentPosition) *decimal.Decimal { return &p.UnitPrice }).Required(),
		Element("MKTVAL", 50, Number, func(p *InvestmentPosition) *decimal.Decimal { return &p.MarketValue }).Required(),
		Element("DTPRICEASOF", 60, DateTime, func(p *InvestmentPosition) *time.Time { return &p.PriceAsOf }).Required(),
		Child("", 70, func(p *InvestmentPosition) **Currency { return &p.Currency }),
		Element("MEMO", 80, Text, func(p *InvestmentPosition) *string { return &p.Memo }),
	)
	Register[StockPosition](r, "POSSTOCK",
		Child("", 0, func(p *StockPosition) **InvestmentPosition { return &p.Details }).Required(),
		Element("UNITSSTREET", 10, OptNumber, func(p *StockPosition) **decimal.Decimal { return &p.UnitsStreet }),
		Element("UNITSUSER", 20, OptNumber, func(p *StockPosition) **decimal.Decimal { return &p.UnitsUser }),
		Element("REINVDIV", 30, OptFlag, func(p *StockPosition) **bool { return &p.ReinvestDividends }),
	)
	Register[MutualFundPosition](r, "POSMF",
		Child("", 0, func(p *MutualFundPosition) **InvestmentPosition { return &p.Details }).Required(),
		Element("UNITSSTREET", 10, OptNumber, func(p *MutualFundPosition) **decimal.Decimal { return &p.UnitsStreet }),
		Element("UNITSUSER", 20, OptNumber, func(p *MutualFundPosition) **decimal.Decimal { return &p.UnitsUser }),
		Element("REINVDIV", 30, OptFlag, func(p *MutualFundPosition) **bool { return &p.ReinvestDividends }),
		Element("REINVCG", 40, OptFlag, func(p *MutualFundPosition) **bool { return &p.ReinvestCapitalGains }),
	)
	Register[DebtPosition](r, "POSDEBT",
		Child("", 0, func(p *DebtPosition) **InvestmentPosition { return &p.Details }).Required(),
	)
	Register[OptionPosition](r, "POSOPT",
		Child("", 0, func(p *OptionPosition) **InvestmentPosition { return &p.Details }).Required(),
		Element("SECURED", 10, Enum(ParseSecured), func(p *OptionPosition) *Secured { return &p.Secured }),
	)
	Register[OtherPosition](r, "POSOTHER",
		Child("", 0, func(p *OtherPosition) **InvestmentPosition { return &p.Details }).Required(),
	)
	Register[PositionList](r, "INVPOSLIST",
		OneOf(0, func(l *PositionList) *[]Position { return &l.Positions },
			As[StockPosition, Position](),
			As[MutualFundPosition, Position](),
			As[DebtPosition, Position](),
			As[OptionPosition, Position](),
			As[OtherPosition, Position](),
		),
	)
	Register[InvestmentBalance](r, "INVBAL",
		Element("AVAILCASH", 0, Number, func(b *InvestmentBalance) *decimal.Decimal { return &b.AvailableCash }).Required(),
		Element("MARGINBALANCE", 10, Number, func(b *InvestmentBalance) *decimal.Decimal { return &b.MarginBalance }).Required(),
		Element("SHORTBALANCE", 20, Number, func(b *InvestmentBalance) *decimal.Decimal { return &b.ShortBalance }).Required(),
		Element("BUYPOWER", 30, OptNumber, func(b *InvestmentBalance) **decimal.Decimal { return &b.BuyingPower }),
	)

	registerTransactionRequest(r, "INVSTMTTRNRQ",
		func(t *InvestmentStatementTransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *InvestmentStatementTransactionRequest) **InvestmentStatementRequest { return &t.Message })
	registerTransactionResponse(r, "INVSTMTTRNRS",
		func(t *InvestmentStatementTransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *InvestmentStatementTransactionResponse) **InvestmentStatementResponse { return &t.Message })
	Register[InvestmentRequestMessageSet](r, "INVSTMTMSGSRQV1",
		Children("", 0, func(s *InvestmentRequestMessageSet) *[]InvestmentStatementTransactionRequest { return &s.StatementRequests }),
	)
	Register[InvestmentResponseMessageSet](r, "INVSTMTMSGSRSV1",
		Children("", 0, func(s *InvestmentResponseMessageSet) *[]InvestmentStatementTransactionResponse { return &s.StatementResponses }),
	)
}
