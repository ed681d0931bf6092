package ofx

// StatementRequest asks for the statement of a bank account.
type StatementRequest struct {
	Account      *BankAccount
	Transactions *IncludeTransactions
}

// StatementResponse is the statement of a bank account.
type StatementResponse struct {
	CurrencyCode     string
	Account          *BankAccount
	TransactionList  *TransactionList
	LedgerBalance    *Balance
	AvailableBalance *Balance
	MarketingInfo    string
}

type StatementTransactionRequest struct {
	TransactionRequest
	Message *StatementRequest
}

type StatementTransactionResponse struct {
	TransactionResponse
	Message *StatementResponse
}

func (*StatementTransactionResponse) ResponseName() string { return "STMTTRNRS" }

type BankingRequestMessageSet struct {
	StatementRequests []StatementTransactionRequest
}

func (*BankingRequestMessageSet) Type() MessageSetType { return BankingSet }
func (*BankingRequestMessageSet) requestMessageSet()   {}

func (s *BankingRequestMessageSet) RequestMessages() []any {
	messages := make([]any, len(s.StatementRequests))
	for i := range s.StatementRequests {
		messages[i] = &s.StatementRequests[i]
	}
	return messages
}

type BankingResponseMessageSet struct {
	StatementResponses []StatementTransactionResponse
}

func (*BankingResponseMessageSet) Type() MessageSetType { return BankingSet }
func (*BankingResponseMessageSet) responseMessageSet()  {}

func (s *BankingResponseMessageSet) ResponseMessages() []any {
	messages := make([]any, len(s.StatementResponses))
	for i := range s.StatementResponses {
		messages[i] = &s.StatementResponses[i]
	}
	return messages
}

func registerBanking(r *Registry) {
	Register[StatementRequest](r, "STMTRQ",
		Child("", 0, func(s *StatementRequest) **BankAccount { return &s.Account }).Required(),
		Child("", 10, func(s *StatementRequest) **IncludeTransactions { return &s.Transactions }),
	)
	Register[StatementResponse](r, "STMTRS",
		Element("CURDEF", 0, Text, func(s *StatementResponse) *string { return &s.CurrencyCode }).Required(),
		Child("", 10, func(s *StatementResponse) **BankAccount { return &s.Account }).Required(),
		Child("", 20, func(s *StatementResponse) **TransactionList { return &s.TransactionList }),
		Child("LEDGERBAL", 30, func(s *StatementResponse) **Balance { return &s.LedgerBalance }),
		Child("AVAILBAL", 40, func(s *StatementResponse) **Balance { return &s.AvailableBalance }),
		Element("MKTGINFO", 50, Text, func(s *StatementResponse) *string { return &s.MarketingInfo }),
	)
	registerTransactionRequest(r, "STMTTRNRQ",
		func(t *StatementTransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *StatementTransactionRequest) **StatementRequest { return &t.Message })
	registerTransactionResponse(r, "STMTTRNRS",
		func(t *StatementTransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *StatementTransactionResponse) **StatementResponse { return &t.Message })

	Register[BankingRequestMessageSet](r, "BANKMSGSRQV1",
		Children("", 0, func(s *BankingRequestMessageSet) *[]StatementTransactionRequest { return &s.StatementRequests }),
	)
	Register[BankingResponseMessageSet](r, "BANKMSGSRSV1",
		Children("", 0, func(s *BankingResponseMessageSet) *[]StatementTransactionResponse { return &s.StatementResponses }),
	)
}
