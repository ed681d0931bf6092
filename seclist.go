package ofx

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetClass is the broad class of a security.
type AssetClass string

const (
	AssetDomesticBond AssetClass = "DOMESTICBOND"
	AssetIntlBond     AssetClass = "INTLBOND"
	AssetLargeStock   AssetClass = "LARGESTOCK"
	AssetSmallStock   AssetClass = "SMALLSTOCK"
	AssetIntlStock    AssetClass = "INTLSTOCK"
	AssetMoneyMarket  AssetClass = "MONEYMRKT"
	AssetOther        AssetClass = "OTHER"
)

var ParseAssetClass = oneOf(AssetDomesticBond, AssetIntlBond, AssetLargeStock, AssetSmallStock,
	AssetIntlStock, AssetMoneyMarket, AssetOther)

type StockType string

const (
	StockCommon      StockType = "COMMON"
	StockPreferred   StockType = "PREFERRED"
	StockConvertible StockType = "CONVERTIBLE"
	StockOther       StockType = "OTHER"
)

var ParseStockType = oneOf(StockCommon, StockPreferred, StockConvertible, StockOther)

type FundType string

const (
	FundOpenEnd  FundType = "OPENEND"
	FundCloseEnd FundType = "CLOSEEND"
	FundOther    FundType = "OTHER"
)

var ParseFundType = oneOf(FundOpenEnd, FundCloseEnd, FundOther)

type DebtType string

const (
	DebtCoupon DebtType = "COUPON"
	DebtZero   DebtType = "ZERO"
)

var ParseDebtType = oneOf(DebtCoupon, DebtZero)

type OptionType string

const (
	Put  OptionType = "PUT"
	Call OptionType = "CALL"
)

var ParseOptionType = oneOf(Put, Call)

// SecurityInfo is the part shared by security descriptions.
type SecurityInfo struct {
	ID        *SecurityID
	Name      string
	Ticker    string
	FIID      string
	Rating    string
	UnitPrice *decimal.Decimal
	PriceAsOf time.Time
	Currency  *Currency
	Memo      string
}

// Security is one of StockInfo, MutualFundInfo, DebtInfo, OptionInfo or
// OtherInfo.
type Security interface {
	Info() *SecurityInfo
}

type StockInfo struct {
	Details    *SecurityInfo
	Type       StockType
	Yield      *decimal.Decimal
	YieldAsOf  time.Time
	AssetClass AssetClass
}

type MutualFundInfo struct {
	Details    *SecurityInfo
	Type       FundType
	Yield      *decimal.Decimal
	YieldAsOf  time.Time
	AssetClass AssetClass
}

type DebtInfo struct {
	Details         *SecurityInfo
	ParValue        decimal.Decimal
	Type            DebtType
	DebtClass       string
	CouponRate      *decimal.Decimal
	CouponMaturity  time.Time
	CouponFrequency string
	Maturity        time.Time
	AssetClass      AssetClass
}

type OptionInfo struct {
	Details           *SecurityInfo
	Type              OptionType
	StrikePrice       decimal.Decimal
	Expiration        time.Time
	SharesPerContract int
	Underlying        *SecurityID
	AssetClass        AssetClass
}

type OtherInfo struct {
	Details     *SecurityInfo
	Description string
	AssetClass  AssetClass
}

func (s *StockInfo) Info() *SecurityInfo      { return s.Details }
func (s *MutualFundInfo) Info() *SecurityInfo { return s.Details }
func (s *DebtInfo) Info() *SecurityInfo       { return s.Details }
func (s *OptionInfo) Info() *SecurityInfo     { return s.Details }
func (s *OtherInfo) Info() *SecurityInfo      { return s.Details }

// SecurityList is the SECLIST aggregate. It is sent outside of any
// transaction, next to the SECLISTTRNRS that requested it.
type SecurityList struct {
	Securities []Security
}

// SecurityRequest names a security by id, ticker or institution id.
type SecurityRequest struct {
	ID     *SecurityID
	Ticker string
	FIID   string
}

type SecurityListRequest struct {
	Securities []SecurityRequest
}

// SecurityListResponse is empty: the securities come in the SecurityList.
type SecurityListResponse struct{}

type SecurityListTransactionRequest struct {
	TransactionRequest
	Message *SecurityListRequest
}

type SecurityListTransactionResponse struct {
	TransactionResponse
	Message *SecurityListResponse
}

func (*SecurityListTransactionResponse) ResponseName() string { return "SECLISTTRNRS" }

type SecurityListRequestMessageSet struct {
	Requests []SecurityListTransactionRequest
}

func (*SecurityListRequestMessageSet) Type() MessageSetType { return SecurityListSet }
func (*SecurityListRequestMessageSet) requestMessageSet()   {}

func (s *SecurityListRequestMessageSet) RequestMessages() []any {
	messages := make([]any, len(s.Requests))
	for i := range s.Requests {
		messages[i] = &s.Requests[i]
	}
	return messages
}

type SecurityListResponseMessageSet struct {
	Responses []SecurityListTransactionResponse
	List      *SecurityList
}

func (*SecurityListResponseMessageSet) Type() MessageSetType { return SecurityListSet }
func (*SecurityListResponseMessageSet) responseMessageSet()  {}

func (s *SecurityListResponseMessageSet) ResponseMessages() []any {
	messages := make([]any, 0, len(s.Responses)+1)
	for i := range s.Responses {
		messages = append(messages, &s.Responses[i])
	}
	if s.List != nil {
		messages = append(messages, s.List)
	}
	return messages
}

func registerSecurityList(r *Registry) {
	assetClass := Enum(ParseAssetClass)

	Register[SecurityInfo](r, "SECINFO",
		Child("", 0, func(s *SecurityInfo) **SecurityID { return &s.ID }).Required(),
		Element("SECNAME", 10, Text, func(s *SecurityInfo) *string { return &s.Name }).Required(),
		Element("TICKER", 20, Text, func(s *SecurityInfo) *string { return &s.Ticker }),
		Element("FIID", 30, Text, func(s *SecurityInfo) *string { return &s.FIID }),
		Element("RATING", 40, Text, func(s *SecurityInfo) *string { return &s.Rating }),
		Element("UNITPRICE", 50, OptNumber, func(s *SecurityInfo) **decimal.Decimal { return &s.UnitPrice }),
		Element("DTASOF", 60, DateTime, func(s *SecurityInfo) *time.Time { return &s.PriceAsOf }),
		Child("", 70, func(s *SecurityInfo) **Currency { return &s.Currency }),
		Element("MEMO", 80, Text, func(s *SecurityInfo) *string { return &s.Memo }),
	)
	Register[StockInfo](r, "STOCKINFO",
		Child("", 0, func(s *StockInfo) **SecurityInfo { return &s.Details }).Required(),
		Element("STOCKTYPE", 10, Enum(ParseStockType), func(s *StockInfo) *StockType { return &s.Type }),
		Element("YIELD", 20, OptNumber, func(s *StockInfo) **decimal.Decimal { return &s.Yield }),
		Element("DTYIELDASOF", 30, DateTime, func(s *StockInfo) *time.Time { return &s.YieldAsOf }),
		Element("ASSETCLASS", 40, assetClass, func(s *StockInfo) *AssetClass { return &s.AssetClass }),
	)
	Register[MutualFundInfo](r, "MFINFO",
		Child("", 0, func(s *MutualFundInfo) **SecurityInfo { return &s.Details }).Required(),
		Element("MFTYPE", 10, Enum(ParseFundType), func(s *MutualFundInfo) *FundType { return &s.Type }),
		Element("YIELD", 20, OptNumber, func(s *MutualFundInfo) **decimal.Decimal { return &s.Yield }),
		Element("DTYIELDASOF", 30, DateTime, func(s *MutualFundInfo) *time.Time { return &s.YieldAsOf }),
		Element("ASSETCLASS", 40, assetClass, func(s *MutualFundInfo) *AssetClass { return &s.AssetClass }),
	)
	Register[DebtInfo](r, "DEBTINFO",
		Child("", 0, func(s *DebtInfo) **SecurityInfo { return &s.Details }).Required(),
		Element("PARVALUE", 10, Number, func(s *DebtInfo) *decimal.Decimal { return &s.ParValue }).Required(),
		Element("DEBTTYPE", 20, Enum(ParseDebtType), func(s *DebtInfo) *DebtType { return &s.Type }).Required(),
		Element("DEBTCLASS", 30, Text, func(s *DebtInfo) *string { return &s.DebtClass }),
		Element("COUPONRT", 40, OptNumber, func(s *DebtInfo) **decimal.Decimal { return &s.CouponRate }),
		Element("DTCOUPON", 50, DateTime, func(s *DebtInfo) *time.Time { return &s.CouponMaturity }),
		Element("COUPONFREQ", 60, Text, func(s *DebtInfo) *string { return &s.CouponFrequency }),
		Element("DTMAT", 70, DateTime, func(s *DebtInfo) *time.Time { return &s.Maturity }),
		Element("ASSETCLASS", 80, assetClass, func(s *DebtInfo) *AssetClass { return &s.AssetClass }),
	)
	Register[OptionInfo](r, "OPTINFO",
		Child("", 0, func(s *OptionInfo) **SecurityInfo { return &s.Details }).Required(),
		Element("OPTTYPE", 10, Enum(ParseOptionType), func(s *OptionInfo) *OptionType { return &s.Type }).Required(),
		Element("STRIKEPRICE", 20, Number, func(s *OptionInfo) *decimal.Decimal { return &s.StrikePrice }).Required(),
		Element("DTEXPIRE", 30, DateTime, func(s *OptionInfo) *time.Time { return &s.Expiration }).Required(),
		Element("SHPERCTRCT", 40, Integer, func(s *OptionInfo) *int { return &s.SharesPerContract }).Required(),
		Child("", 50, func(s *OptionInfo) **SecurityID { return &s.Underlying }),
		Element("ASSETCLASS", 60, assetClass, func(s *OptionInfo) *AssetClass { return &s.AssetClass }),
	)
	Register[OtherInfo](r, "OTHERINFO",
		Child("", 0, func(s *OtherInfo) **SecurityInfo { return &s.Details }).Required(),
		Element("TYPEDESC", 10, Text, func(s *OtherInfo) *string { return &s.Description }),
		Element("ASSETCLASS", 20, assetClass, func(s *OtherInfo) *AssetClass { return &s.AssetClass }),
	)
	Register[SecurityList](r, "SECLIST",
		OneOf(0, func(l *SecurityList) *[]Security { return &l.Securities },
			As[StockInfo, Security](),
			As[MutualFundInfo, Security](),
			As[DebtInfo, Security](),
			As[OptionInfo, Security](),
			As[OtherInfo, Security](),
		),
	)

	Register[SecurityRequest](r, "SECRQ",
		Child("", 0, func(s *SecurityRequest) **SecurityID { return &s.ID }),
		Element("TICKER", 10, Text, func(s *SecurityRequest) *string { return &s.Ticker }),
		Element("FIID", 20, Text, func(s *SecurityRequest) *string { return &s.FIID }),
	)
	Register[SecurityListRequest](r, "SECLISTRQ",
		Children("", 0, func(l *SecurityListRequest) *[]SecurityRequest { return &l.Securities }),
	)
	Register[SecurityListResponse](r, "SECLISTRS")

	registerTransactionRequest(r, "SECLISTTRNRQ",
		func(t *SecurityListTransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *SecurityListTransactionRequest) **SecurityListRequest { return &t.Message })
	registerTransactionResponse(r, "SECLISTTRNRS",
		func(t *SecurityListTransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *SecurityListTransactionResponse) **SecurityListResponse { return &t.Message })
	Register[SecurityListRequestMessageSet](r, "SECLISTMSGSRQV1",
		Children("", 0, func(s *SecurityListRequestMessageSet) *[]SecurityListTransactionRequest { return &s.Requests }),
	)
	Register[SecurityListResponseMessageSet](r, "SECLISTMSGSRSV1",
		Children("", 0, func(s *SecurityListResponseMessageSet) *[]SecurityListTransactionResponse { return &s.Responses }),
		Child("", 10, func(s *SecurityListResponseMessageSet) **SecurityList { return &s.List }),
	)
}
