package ofx

import (
	"context"
	"fmt"
	"time"
)

// Default application identity sent in signon requests. Many servers only
// answer the applications they know.
const (
	DefaultAppID      = "QWIN"
	DefaultAppVersion = "2700"
)

// Credentials of a user at an institution.
type Credentials struct {
	UserID   string
	Password string
}

// Anonymous is the identity used to read the profile of an institution.
var Anonymous = Credentials{UserID: AnonymousUser, Password: AnonymousUser}

// Institution is a client of the OFX server of a financial institution.
//
// Every call sends one request made of a signon and one message set, checks
// the response with a Validator tolerating INFO statuses, and returns the
// response message.
type Institution struct {
	Data InstitutionData
	// Transport used to send, an HTTPTransport when nil.
	Transport Transport
	// ClientUID identifies this client installation, when the server
	// requires one.
	ClientUID string
	// Now returns the client time, time.Now when nil.
	Now func() time.Time
}

// NewInstitution returns a client of the institution.
func NewInstitution(data InstitutionData, t Transport) *Institution {
	return &Institution{Data: data, Transport: t}
}

func (i *Institution) now() time.Time {
	if i.Now == nil {
		return time.Now()
	}
	return i.Now()
}

func (i *Institution) signon(c Credentials) *SignonRequestMessageSet {
	appID, appVer := i.Data.AppID, i.Data.AppVersion
	if appID == "" {
		appID, appVer = DefaultAppID, DefaultAppVersion
	}
	return &SignonRequestMessageSet{
		Signon: &SignonRequest{
			Timestamp:      i.now(),
			UserID:         c.UserID,
			Password:       c.Password,
			Language:       "ENG",
			FinancialInst:  &FinancialInstitution{Organization: i.Data.Org, ID: i.Data.FID},
			ApplicationID:  appID,
			ApplicationVer: appVer,
			ClientUID:      i.ClientUID,
		},
	}
}

// call sends signon and sets, and validates the response.
func (i *Institution) call(ctx context.Context, signon *SignonRequestMessageSet, sets ...RequestMessageSet) (*ResponseEnvelope, error) {
	req := NewRequestEnvelope()
	req.Add(signon)
	req.Add(sets...)
	conn := &Connection{URL: i.Data.URL, Version: i.Data.Version, Transport: i.Transport}
	resp, err := conn.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	v := Validator{TolerateInfo: true}
	if err := v.Validate(req, resp); err != nil {
		return resp, err
	}
	return resp, nil
}

func missing(aggregate, field string) error {
	return &FieldError{Err: ErrMissingRequiredField, Aggregate: aggregate, Field: field}
}

// ReadProfile reads the profile of the institution, anonymously.
func (i *Institution) ReadProfile(ctx context.Context) (*ProfileResponse, error) {
	set := &ProfileRequestMessageSet{Requests: []ProfileTransactionRequest{{
		TransactionRequest: NewTransactionRequest(),
		Message:            &ProfileRequest{Routing: RoutingMsgSet},
	}}}
	resp, err := i.call(ctx, i.signon(Anonymous), set)
	if err != nil {
		return nil, err
	}
	// a validated response answers the only transaction
	rs := resp.MessageSet(ProfileSet).(*ProfileResponseMessageSet).Responses[0]
	if rs.Message == nil {
		return nil, missing("PROFTRNRS", "PROFRS")
	}
	return rs.Message, nil
}

// ReadAccountProfiles lists the accounts of the user.
func (i *Institution) ReadAccountProfiles(ctx context.Context, c Credentials) ([]AccountInfo, error) {
	set := &SignupRequestMessageSet{Requests: []AccountInfoTransactionRequest{{
		TransactionRequest: NewTransactionRequest(),
		Message:            &AccountInfoRequest{},
	}}}
	resp, err := i.call(ctx, i.signon(c), set)
	if err != nil {
		return nil, err
	}
	rs := resp.MessageSet(SignupSet).(*SignupResponseMessageSet).Responses[0]
	if rs.Message == nil {
		return nil, missing("ACCTINFOTRNRS", "ACCTINFORS")
	}
	return rs.Message.Accounts, nil
}

// BankStatement downloads the statement of a bank account. Zero dates leave
// the range open.
func (i *Institution) BankStatement(ctx context.Context, c Credentials, account BankAccount, start, end time.Time) (*StatementResponse, error) {
	set := &BankingRequestMessageSet{StatementRequests: []StatementTransactionRequest{{
		TransactionRequest: NewTransactionRequest(),
		Message:            &StatementRequest{Account: &account, Transactions: StatementRange(start, end)},
	}}}
	resp, err := i.call(ctx, i.signon(c), set)
	if err != nil {
		return nil, err
	}
	rs := resp.MessageSet(BankingSet).(*BankingResponseMessageSet).StatementResponses[0]
	if rs.Message == nil {
		return nil, missing("STMTTRNRS", "STMTRS")
	}
	return rs.Message, nil
}

// CreditCardStatement downloads the statement of a credit card account.
func (i *Institution) CreditCardStatement(ctx context.Context, c Credentials, account CreditCardAccount, start, end time.Time) (*CreditCardStatementResponse, error) {
	set := &CreditCardRequestMessageSet{StatementRequests: []CreditCardStatementTransactionRequest{{
		TransactionRequest: NewTransactionRequest(),
		Message:            &CreditCardStatementRequest{Account: &account, Transactions: StatementRange(start, end)},
	}}}
	resp, err := i.call(ctx, i.signon(c), set)
	if err != nil {
		return nil, err
	}
	rs := resp.MessageSet(CreditCardSet).(*CreditCardResponseMessageSet).StatementResponses[0]
	if rs.Message == nil {
		return nil, missing("CCSTMTTRNRS", "CCSTMTRS")
	}
	return rs.Message, nil
}

// InvestmentStatement downloads the statement of a brokerage account, with
// its positions, balance and open orders. The securities held are
// described in the returned SecurityList, when the server sends one.
func (i *Institution) InvestmentStatement(ctx context.Context, c Credentials, account InvestmentAccount, start, end time.Time) (*InvestmentStatementResponse, *SecurityList, error) {
	if account.BrokerID == "" {
		account.BrokerID = i.Data.BrokerID
	}
	set := &InvestmentRequestMessageSet{StatementRequests: []InvestmentStatementTransactionRequest{{
		TransactionRequest: NewTransactionRequest(),
		Message: &InvestmentStatementRequest{
			Account:           &account,
			Transactions:      StatementRange(start, end),
			IncludeOpenOrders: true,
			Positions:         &IncludePositions{Include: true},
			IncludeBalance:    true,
		},
	}}}
	resp, err := i.call(ctx, i.signon(c), set)
	if err != nil {
		return nil, nil, err
	}
	rs := resp.MessageSet(InvestmentSet).(*InvestmentResponseMessageSet).StatementResponses[0]
	if rs.Message == nil {
		return nil, nil, missing("INVSTMTTRNRS", "INVSTMTRS")
	}
	var list *SecurityList
	if s, ok := resp.MessageSet(SecurityListSet).(*SecurityListResponseMessageSet); ok {
		list = s.List
	}
	return rs.Message, list, nil
}

// SecurityList describes the securities of the given ids.
func (i *Institution) SecurityList(ctx context.Context, c Credentials, ids ...SecurityID) (*SecurityList, error) {
	rq := &SecurityListRequest{}
	for _, id := range ids {
		rq.Securities = append(rq.Securities, SecurityRequest{ID: &id})
	}
	set := &SecurityListRequestMessageSet{Requests: []SecurityListTransactionRequest{{
		TransactionRequest: NewTransactionRequest(),
		Message:            rq,
	}}}
	resp, err := i.call(ctx, i.signon(c), set)
	if err != nil {
		return nil, err
	}
	rs := resp.MessageSet(SecurityListSet).(*SecurityListResponseMessageSet)
	if rs.List == nil {
		return nil, fmt.Errorf("%w: no SECLIST in response", ErrMissingRequiredField)
	}
	return rs.List, nil
}

// Tax1099 downloads the 1099 forms of a tax year.
func (i *Institution) Tax1099(ctx context.Context, c Credentials, year int) (*Tax1099Response, error) {
	set := &Tax1099RequestMessageSet{Requests: []Tax1099TransactionRequest{{
		TransactionRequest: NewTransactionRequest(),
		Message:            &Tax1099Request{Year: year},
	}}}
	resp, err := i.call(ctx, i.signon(c), set)
	if err != nil {
		return nil, err
	}
	rs := resp.MessageSet(Tax1099Set).(*Tax1099ResponseMessageSet).Responses[0]
	if rs.Message == nil {
		return nil, missing("TAX1099TRNRS", "TAX1099RS")
	}
	return rs.Message, nil
}

// ChangePassword changes the password of the user.
func (i *Institution) ChangePassword(ctx context.Context, c Credentials, password string) error {
	signon := i.signon(c)
	signon.PasswordChange = &PasswordChangeTransactionRequest{
		TransactionRequest: NewTransactionRequest(),
		Message:            &PasswordChangeRequest{UserID: c.UserID, NewPassword: password},
	}
	_, err := i.call(ctx, signon)
	return err
}
