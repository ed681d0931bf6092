package ofx

import "time"

// AccountInfoRequest asks for the accounts of the user. A zero LastUpdate
// requests every account.
type AccountInfoRequest struct {
	LastUpdate time.Time
}

type AccountInfoResponse struct {
	LastUpdate time.Time
	Accounts   []AccountInfo
}

// AccountInfo describes one account of the user. Exactly one of Bank,
// CreditCard and Investment is set.
type AccountInfo struct {
	Description string
	Phone       string
	Bank        *BankAccountInfo
	CreditCard  *CreditCardAccountInfo
	Investment  *InvestmentAccountInfo
}

type AccountInfoTransactionRequest struct {
	TransactionRequest
	Message *AccountInfoRequest
}

type AccountInfoTransactionResponse struct {
	TransactionResponse
	Message *AccountInfoResponse
}

func (*AccountInfoTransactionResponse) ResponseName() string { return "ACCTINFOTRNRS" }

type SignupRequestMessageSet struct {
	Requests []AccountInfoTransactionRequest
}

func (*SignupRequestMessageSet) Type() MessageSetType { return SignupSet }
func (*SignupRequestMessageSet) requestMessageSet()   {}

func (s *SignupRequestMessageSet) RequestMessages() []any {
	messages := make([]any, len(s.Requests))
	for i := range s.Requests {
		messages[i] = &s.Requests[i]
	}
	return messages
}

type SignupResponseMessageSet struct {
	Responses []AccountInfoTransactionResponse
}

func (*SignupResponseMessageSet) Type() MessageSetType { return SignupSet }
func (*SignupResponseMessageSet) responseMessageSet()  {}

func (s *SignupResponseMessageSet) ResponseMessages() []any {
	messages := make([]any, len(s.Responses))
	for i := range s.Responses {
		messages[i] = &s.Responses[i]
	}
	return messages
}

func registerSignup(r *Registry) {
	Register[AccountInfoRequest](r, "ACCTINFORQ",
		Element("DTACCTUP", 0, lastUpdate, func(a *AccountInfoRequest) *time.Time { return &a.LastUpdate }).Required(),
	)
	Register[AccountInfo](r, "ACCTINFO",
		Element("DESC", 0, Text, func(a *AccountInfo) *string { return &a.Description }),
		Element("PHONE", 10, Text, func(a *AccountInfo) *string { return &a.Phone }),
		Child("", 20, func(a *AccountInfo) **BankAccountInfo { return &a.Bank }),
		Child("", 30, func(a *AccountInfo) **CreditCardAccountInfo { return &a.CreditCard }),
		Child("", 40, func(a *AccountInfo) **InvestmentAccountInfo { return &a.Investment }),
	)
	Register[AccountInfoResponse](r, "ACCTINFORS",
		Element("DTACCTUP", 0, DateTime, func(a *AccountInfoResponse) *time.Time { return &a.LastUpdate }).Required(),
		Children("", 10, func(a *AccountInfoResponse) *[]AccountInfo { return &a.Accounts }),
	)

	registerTransactionRequest(r, "ACCTINFOTRNRQ",
		func(t *AccountInfoTransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *AccountInfoTransactionRequest) **AccountInfoRequest { return &t.Message })
	registerTransactionResponse(r, "ACCTINFOTRNRS",
		func(t *AccountInfoTransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *AccountInfoTransactionResponse) **AccountInfoResponse { return &t.Message })
	Register[SignupRequestMessageSet](r, "SIGNUPMSGSRQV1",
		Children("", 0, func(s *SignupRequestMessageSet) *[]AccountInfoTransactionRequest { return &s.Requests }),
	)
	Register[SignupResponseMessageSet](r, "SIGNUPMSGSRSV1",
		Children("", 0, func(s *SignupResponseMessageSet) *[]AccountInfoTransactionResponse { return &s.Responses }),
	)
}
