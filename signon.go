package ofx

import "time"

// AnonymousUser is the user id of the anonymous profile request.
const AnonymousUser = "anonymous00000000000000000000000"

// FinancialInstitution identifies the institution in a signon.
type FinancialInstitution struct {
	Organization string
	ID           string
}

// SignonRequest authenticates the user.
type SignonRequest struct {
	Timestamp       time.Time
	UserID          string
	Password        string
	UserKey         string
	GenerateUserKey *bool
	Language        string
	FinancialInst   *FinancialInstitution
	SessionCookie   string
	ApplicationID   string
	ApplicationVer  string
	ClientUID       string
	UserCred1       string
	UserCred2       string
	AuthToken       string
	AccessKey       string
}

// SignonResponse is the answer of the institution to a SignonRequest.
type SignonResponse struct {
	Status             *Status
	Timestamp          time.Time
	UserKey            string
	UserKeyExpiration  time.Time
	Language           string
	ProfileLastUpdated time.Time
	AccountLastUpdated time.Time
	FinancialInst      *FinancialInstitution
	SessionCookie      string
	AccessKey          string
}

func (s *SignonResponse) ResponseStatus() *Status { return s.Status }
func (s *SignonResponse) ResponseName() string    { return "SONRS" }

// PasswordChangeRequest changes the password of the user.
type PasswordChangeRequest struct {
	UserID      string
	NewPassword string
}

type PasswordChangeResponse struct {
	UserID      string
	TimeChanged time.Time
}

type PasswordChangeTransactionRequest struct {
	TransactionRequest
	Message *PasswordChangeRequest
}

type PasswordChangeTransactionResponse struct {
	TransactionResponse
	Message *PasswordChangeResponse
}

func (*PasswordChangeTransactionResponse) ResponseName() string { return "PINCHTRNRS" }

type SignonRequestMessageSet struct {
	Signon         *SignonRequest
	PasswordChange *PasswordChangeTransactionRequest
}

func (*SignonRequestMessageSet) Type() MessageSetType { return SignonSet }
func (*SignonRequestMessageSet) requestMessageSet()   {}

func (s *SignonRequestMessageSet) RequestMessages() []any {
	var messages []any
	if s.Signon != nil {
		messages = append(messages, s.Signon)
	}
	if s.PasswordChange != nil {
		messages = append(messages, s.PasswordChange)
	}
	return messages
}

type SignonResponseMessageSet struct {
	Signon         *SignonResponse
	PasswordChange *PasswordChangeTransactionResponse
}

func (*SignonResponseMessageSet) Type() MessageSetType { return SignonSet }
func (*SignonResponseMessageSet) responseMessageSet()  {}

func (s *SignonResponseMessageSet) ResponseMessages() []any {
	var messages []any
	if s.Signon != nil {
		messages = append(messages, s.Signon)
	}
	if s.PasswordChange != nil {
		messages = append(messages, s.PasswordChange)
	}
	return messages
}

func registerSignon(r *Registry) {
	Register[FinancialInstitution](r, "FI",
		Element("ORG", 0, Text, func(f *FinancialInstitution) *string { return &f.Organization }).Required(),
		Element("FID", 10, Text, func(f *FinancialInstitution) *string { return &f.ID }),
	)
	Register[SignonRequest](r, "SONRQ",
		Element("DTCLIENT", 0, DateTime, func(s *SignonRequest) *time.Time { return &s.Timestamp }).Required(),
		Element("USERID", 10, Text, func(s *SignonRequest) *string { return &s.UserID }),
		Element("USERPASS", 20, Text, func(s *SignonRequest) *string { return &s.Password }),
		Element("USERKEY", 30, Text, func(s *SignonRequest) *string { return &s.UserKey }),
		Element("GENUSERKEY", 40, OptFlag, func(s *SignonRequest) **bool { return &s.GenerateUserKey }),
		Element("LANGUAGE", 50, Text, func(s *SignonRequest) *string { return &s.Language }).Required(),
		Child("", 60, func(s *SignonRequest) **FinancialInstitution { return &s.FinancialInst }),
		Element("SESSCOOKIE", 70, Text, func(s *SignonRequest) *string { return &s.SessionCookie }),
		Element("APPID", 80, Text, func(s *SignonRequest) *string { return &s.ApplicationID }).Required(),
		Element("APPVER", 90, Text, func(s *SignonRequest) *string { return &s.ApplicationVer }).Required(),
		Element("CLIENTUID", 100, Text, func(s *SignonRequest) *string { return &s.ClientUID }),
		Element("USERCRED1", 110, Text, func(s *SignonRequest) *string { return &s.UserCred1 }),
		Element("USERCRED2", 120, Text, func(s *SignonRequest) *string { return &s.UserCred2 }),
		Element("AUTHTOKEN", 130, Text, func(s *SignonRequest) *string { return &s.AuthToken }),
		Element("ACCESSKEY", 140, Text, func(s *SignonRequest) *string { return &s.AccessKey }),
	)
	Register[SignonResponse](r, "SONRS",
		Child("", 0, func(s *SignonResponse) **Status { return &s.Status }).Required(),
		Element("DTSERVER", 10, DateTime, func(s *SignonResponse) *time.Time { return &s.Timestamp }).Required(),
		Element("USERKEY", 20, Text, func(s *SignonResponse) *string { return &s.UserKey }),
		Element("TSKEYEXPIRE", 30, DateTime, func(s *SignonResponse) *time.Time { return &s.UserKeyExpiration }),
		Element("LANGUAGE", 40, Text, func(s *SignonResponse) *string { return &s.Language }).Required(),
		Element("DTPROFUP", 50, DateTime, func(s *SignonResponse) *time.Time { return &s.ProfileLastUpdated }),
		Element("DTACCTUP", 60, DateTime, func(s *SignonResponse) *time.Time { return &s.AccountLastUpdated }),
		Child("", 70, func(s *SignonResponse) **FinancialInstitution { return &s.FinancialInst }),
		Element("SESSCOOKIE", 80, Text, func(s *SignonResponse) *string { return &s.SessionCookie }),
		Element("ACCESSKEY", 90, Text, func(s *SignonResponse) *string { return &s.AccessKey }),
	)
	Register[PasswordChangeRequest](r, "PINCHRQ",
		Element("USERID", 0, Text, func(p *PasswordChangeRequest) *string { return &p.UserID }).Required(),
		Element("NEWUSERPASS", 10, Text, func(p *PasswordChangeRequest) *string { return &p.NewPassword }).Required(),
	)
	Register[PasswordChangeResponse](r, "PINCHRS",
		Element("USERID", 0, Text, func(p *PasswordChangeResponse) *string { return &p.UserID }).Required(),
		Element("DTCHANGED", 10, DateTime, func(p *PasswordChangeResponse) *time.Time { return &p.TimeChanged }),
	)
	registerTransactionRequest(r, "PINCHTRNRQ",
		func(t *PasswordChangeTransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *PasswordChangeTransactionRequest) **PasswordChangeRequest { return &t.Message })
	registerTransactionResponse(r, "PINCHTRNRS",
		func(t *PasswordChangeTransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *PasswordChangeTransactionResponse) **PasswordChangeResponse { return &t.Message })

	Register[SignonRequestMessageSet](r, "SIGNONMSGSRQV1",
		Child("", 0, func(s *SignonRequestMessageSet) **SignonRequest { return &s.Signon }).Required(),
		Child("", 10, func(s *SignonRequestMessageSet) **PasswordChangeTransactionRequest { return &s.PasswordChange }),
	)
	Register[SignonResponseMessageSet](r, "SIGNONMSGSRSV1",
		Child("", 0, func(s *SignonResponseMessageSet) **SignonResponse { return &s.Signon }),
		Child("", 10, func(s *SignonResponseMessageSet) **PasswordChangeTransactionResponse { return &s.PasswordChange }),
	)
}
