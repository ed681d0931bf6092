package ofx

import "github.com/shopspring/decimal"

// Address of a 1099 form payer (PAYERADDR) or recipient (RECADDR).
type Address struct {
	Name1      string
	Name2      string
	Address1   string
	Address2   string
	Address3   string
	City       string
	State      string
	PostalCode string
	Phone      string
}

// Tax1099Request asks for the 1099 forms of one tax year.
type Tax1099Request struct {
	Year int
}

// Tax1099Dividend is a 1099-DIV form.
type Tax1099Dividend struct {
	ServerID           string
	Year               int
	OrdinaryDividends  *decimal.Decimal
	QualifiedDividends *decimal.Decimal
	TotalCapitalGain   *decimal.Decimal
	NonTaxable         *decimal.Decimal
	FederalWithholding *decimal.Decimal
	InvestmentExpenses *decimal.Decimal
	ForeignTaxPaid     *decimal.Decimal
	ForeignCountry     string
	PayerAddress       *Address
	PayerID            string
	RecipientAddress   *Address
	RecipientID        string
	RecipientAccount   string
}

// Tax1099Interest is a 1099-INT form.
type Tax1099Interest struct {
	ServerID               string
	Year                   int
	Interest               *decimal.Decimal
	EarlyWithdrawalPenalty *decimal.Decimal
	USBondInterest         *decimal.Decimal
	FederalWithholding     *decimal.Decimal
	InvestmentExpenses     *decimal.Decimal
	ForeignTaxPaid         *decimal.Decimal
	ForeignCountry         string
	TaxExemptInterest      *decimal.Decimal
	PayerAddress           *Address
	PayerID                string
	RecipientAddress       *Address
	RecipientID            string
	RecipientAccount       string
}

type Tax1099Response struct {
	Dividends []Tax1099Dividend
	Interests []Tax1099Interest
}

type Tax1099TransactionRequest struct {
	TransactionRequest
	Message *Tax1099Request
}

type Tax1099TransactionResponse struct {
	TransactionResponse
	Message *Tax1099Response
}

func (*Tax1099TransactionResponse) ResponseName() string { return "TAX1099TRNRS" }

type Tax1099RequestMessageSet struct {
	Requests []Tax1099TransactionRequest
}

func (*Tax1099RequestMessageSet) Type() MessageSetType { return Tax1099Set }
func (*Tax1099RequestMessageSet) requestMessageSet()   {}

func (s *Tax1099RequestMessageSet) RequestMessages() []any {
	messages := make([]any, len(s.Requests))
	for i := range s.Requests {
		messages[i] = &s.Requests[i]
	}
	return messages
}

type Tax1099ResponseMessageSet struct {
	Responses []Tax1099TransactionResponse
}

func (*Tax1099ResponseMessageSet) Type() MessageSetType { return Tax1099Set }
func (*Tax1099ResponseMessageSet) responseMessageSet()  {}

func (s *Tax1099ResponseMessageSet) ResponseMessages() []any {
	messages := make([]any, len(s.Responses))
	for i := range s.Responses {
		messages[i] = &s.Responses[i]
	}
	return messages
}

func registerTax1099(r *Registry) {
	Register[Address](r, "PAYERADDR",
		Element("NAME1", 0, Text, func(a *Address) *string { return &a.Name1 }).Required(),
		Element("NAME2", 10, Text, func(a *Address) *string { return &a.Name2 }),
		Element("ADDR1", 20, Text, func(a *Address) *string { return &a.Address1 }).Required(),
		Element("ADDR2", 30, Text, func(a *Address) *string { return &a.Address2 }),
		Element("ADDR3", 40, Text, func(a *Address) *string { return &a.Address3 }),
		Element("CITY", 50, Text, func(a *Address) *string { return &a.City }).Required(),
		Element("STATE", 60, Text, func(a *Address) *string { return &a.State }).Required(),
		Element("POSTALCODE", 70, Text, func(a *Address) *string { return &a.PostalCode }).Required(),
		Element("PHONE", 80, Text, func(a *Address) *string { return &a.Phone }),
	)
	Register[Tax1099Request](r, "TAX1099RQ",
		Element("TAXYEAR", 0, Integer, func(t *Tax1099Request) *int { return &t.Year }).Required(),
	)
	Register[Tax1099Dividend](r, "TAX1099DIV_V100",
		Element("SRVRTID", 0, Text, func(f *Tax1099Dividend) *string { return &f.ServerID }),
		Element("TAXYEAR", 10, Integer, func(f *Tax1099Dividend) *int { return &f.Year }).Required(),
		Element("ORDDIV", 20, OptNumber, func(f *Tax1099Dividend) **decimal.Decimal { return &f.OrdinaryDividends }),
		Element("QUALIFIEDDIV", 30, OptNumber, func(f *Tax1099Dividend) **decimal.Decimal { return &f.QualifiedDividends }),
		Element("TOTCAPGAIN", 40, OptNumber, func(f *Tax1099Dividend) **decimal.Decimal { return &f.TotalCapitalGain }),
		Element("NONTAXDIST", 50, OptNumber, func(f *Tax1099Dividend) **decimal.Decimal { return &f.NonTaxable }),
		Element("FEDTAXWH", 60, OptNumber, func(f *Tax1099Dividend) **decimal.Decimal { return &f.FederalWithholding }),
		Element("INVESTEXP", 70, OptNumber, func(f *Tax1099Dividend) **decimal.Decimal { return &f.InvestmentExpenses }),
		Element("FORTAXPD", 80, OptNumber, func(f *Tax1099Dividend) **decimal.Decimal { return &f.ForeignTaxPaid }),
		Element("FORCNT", 90, Text, func(f *Tax1099Dividend) *string { return &f.ForeignCountry }),
		Child("", 100, func(f *Tax1099Dividend) **Address { return &f.PayerAddress }).Required(),
		Element("PAYERID", 110, Text, func(f *Tax1099Dividend) *string { return &f.PayerID }).Required(),
		Child("RECADDR", 120, func(f *Tax1099Dividend) **Address { return &f.RecipientAddress }),
		Element("RECID", 130, Text, func(f *Tax1099Dividend) *string { return &f.RecipientID }).Required(),
		Element("RECACCT", 140, Text, func(f *Tax1099Dividend) *string { return &f.RecipientAccount }),
	)
	Register[Tax1099Interest](r, "TAX1099INT_V100",
		Element("SRVRTID", 0, Text, func(f *Tax1099Interest) *string { return &f.ServerID }),
		Element("TAXYEAR", 10, Integer, func(f *Tax1099Interest) *int { return &f.Year }).Required(),
		Element("INTINCOME", 20, OptNumber, func(f *Tax1099Interest) **decimal.Decimal { return &f.Interest }),
		Element("ERLWITHPEN", 30, OptNumber, func(f *Tax1099Interest) **decimal.Decimal { return &f.EarlyWithdrawalPenalty }),
		Element("INTUSBNDTRS", 40, OptNumber, func(f *Tax1099Interest) **decimal.Decimal { return &f.USBondInterest }),
		Element("FEDTAXWH", 50, OptNumber, func(f *Tax1099Interest) **decimal.Decimal { return &f.FederalWithholding }),
		Element("INVESTEXP", 60, OptNumber, func(f *Tax1099Interest) **decimal.Decimal { return &f.InvestmentExpenses }),
		Element("FORTAXPD", 70, OptNumber, func(f *Tax1099Interest) **decimal.Decimal { return &f.ForeignTaxPaid }),
		Element("FORCNT", 80, Text, func(f *Tax1099Interest) *string { return &f.ForeignCountry }),
		Element("TAXEXEMPTINT", 90, OptNumber, func(f *Tax1099Interest) **decimal.Decimal { return &f.TaxExemptInterest }),
		Child("", 100, func(f *Tax1099Interest) **Address { return &f.PayerAddress }).Required(),
		Element("PAYERID", 110, Text, func(f *Tax1099Interest) *string { return &f.PayerID }).Required(),
		Child("RECADDR", 120, func(f *Tax1099Interest) **Address { return &f.RecipientAddress }),
		Element("RECID", 130, Text, func(f *Tax1099Interest) *string { return &f.RecipientID }).Required(),
		Element("RECACCT", 140, Text, func(f *Tax1099Interest) *string { return &f.RecipientAccount }),
	)
	Register[Tax1099Response](r, "TAX1099RS",
		Children("", 0, func(t *Tax1099Response) *[]Tax1099Dividend { return &t.Dividends }),
		Children("", 10, func(t *Tax1099Response) *[]Tax1099Interest { return &t.Interests }),
	)

	registerTransactionRequest(r, "TAX1099TRNRQ",
		func(t *Tax1099TransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *Tax1099TransactionRequest) **Tax1099Request { return &t.Message })
	registerTransactionResponse(r, "TAX1099TRNRS",
		func(t *Tax1099TransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *Tax1099TransactionResponse) **Tax1099Response { return &t.Message })
	Register[Tax1099RequestMessageSet](r, "TAX1099MSGSRQV1",
		Children("", 0, func(s *Tax1099RequestMessageSet) *[]Tax1099TransactionRequest { return &s.Requests }),
	)
	Register[Tax1099ResponseMessageSet](r, "TAX1099MSGSRSV1",
		Children("", 0, func(s *Tax1099ResponseMessageSet) *[]Tax1099TransactionResponse { return &s.Responses }),
	)
}
