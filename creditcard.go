package ofx

// CreditCardStatementRequest asks for the statement of a credit card.
type CreditCardStatementRequest struct {
	Account      *CreditCardAccount
	Transactions *IncludeTransactions
}

// CreditCardStatementResponse is the statement of a credit card.
type CreditCardStatementResponse struct {
	CurrencyCode     string
	Account          *CreditCardAccount
	TransactionList  *TransactionList
	LedgerBalance    *Balance
	AvailableBalance *Balance
	MarketingInfo    string
}

type CreditCardStatementTransactionRequest struct {
	TransactionRequest
	Message *CreditCardStatementRequest
}

type CreditCardStatementTransactionResponse struct {
	TransactionResponse
	Message *CreditCardStatementResponse
}

func (*CreditCardStatementTransactionResponse) ResponseName() string { return "CCSTMTTRNRS" }

type CreditCardRequestMessageSet struct {
	StatementRequests []CreditCardStatementTransactionRequest
}

func (*CreditCardRequestMessageSet) Type() MessageSetType { return CreditCardSet }
func (*CreditCardRequestMessageSet) requestMessageSet()   {}

func (s *CreditCardRequestMessageSet) RequestMessages() []any {
	messages := make([]any, len(s.StatementRequests))
	for i := range s.StatementRequests {
		messages[i] = &s.StatementRequests[i]
	}
	return messages
}

type CreditCardResponseMessageSet struct {
	StatementResponses []CreditCardStatementTransactionResponse
}

func (*CreditCardResponseMessageSet) Type() MessageSetType { return CreditCardSet }
func (*CreditCardResponseMessageSet) responseMessageSet()  {}

func (s *CreditCardResponseMessageSet) ResponseMessages() []any {
	messages := make([]any, len(s.StatementResponses))
	for i := range s.StatementResponses {
		messages[i] = &s.StatementResponses[i]
	}
	return messages
}

func registerCreditCard(r *Registry) {
	Register[CreditCardStatementRequest](r, "CCSTMTRQ",
		Child("", 0, func(s *CreditCardStatementRequest) **CreditCardAccount { return &s.Account }).Required(),
		Child("", 10, func(s *CreditCardStatementRequest) **IncludeTransactions { return &s.Transactions }),
	)
	Register[CreditCardStatementResponse](r, "CCSTMTRS",
		Element("CURDEF", 0, Text, func(s *CreditCardStatementResponse) *string { return &s.CurrencyCode }).Required(),
		Child("", 10, func(s *CreditCardStatementResponse) **CreditCardAccount { return &s.Account }).Required(),
		Child("", 20, func(s *CreditCardStatementResponse) **TransactionList { return &s.TransactionList }),
		Child("LEDGERBAL", 30, func(s *CreditCardStatementResponse) **Balance { return &s.LedgerBalance }),
		Child("AVAILBAL", 40, func(s *CreditCardStatementResponse) **Balance { return &s.AvailableBalance }),
		Element("MKTGINFO", 50, Text, func(s *CreditCardStatementResponse) *string { return &s.MarketingInfo }),
	)
	registerTransactionRequest(r, "CCSTMTTRNRQ",
		func(t *CreditCardStatementTransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *CreditCardStatementTransactionRequest) **CreditCardStatementRequest { return &t.Message })
	registerTransactionResponse(r, "CCSTMTTRNRS",
		func(t *CreditCardStatementTransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *CreditCardStatementTransactionResponse) **CreditCardStatementResponse { return &t.Message })

	Register[CreditCardRequestMessageSet](r, "CREDITCARDMSGSRQV1",
		Children("", 0, func(s *CreditCardRequestMessageSet) *[]CreditCardStatementTransactionRequest { return &s.StatementRequests }),
	)
	Register[CreditCardResponseMessageSet](r, "CREDITCARDMSGSRSV1",
		Children("", 0, func(s *CreditCardResponseMessageSet) *[]CreditCardStatementTransactionResponse { return &s.StatementResponses }),
	)
}
