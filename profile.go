package ofx

import "time"

// ClientRouting tells how the server expects requests to be routed.
type ClientRouting string

const (
	RoutingNone    ClientRouting = "NONE"
	RoutingService ClientRouting = "SERVICE"
	RoutingMsgSet  ClientRouting = "MSGSET"
)

var ParseClientRouting = oneOf(RoutingNone, RoutingService, RoutingMsgSet)

// SyncMode is the synchronization flavor of a message set.
type SyncMode string

const (
	SyncFull SyncMode = "FULL"
	SyncLite SyncMode = "LITE"
)

var ParseSyncMode = oneOf(SyncFull, SyncLite)

// CharType is the allowed character classes of a password.
type CharType string

const (
	AlphaOnly       CharType = "ALPHAONLY"
	NumericOnly     CharType = "NUMERICONLY"
	AlphaOrNumeric  CharType = "ALPHAORNUMERIC"
	AlphaAndNumeric CharType = "ALPHAANDNUMERIC"
)

var ParseCharType = oneOf(AlphaOnly, NumericOnly, AlphaOrNumeric, AlphaAndNumeric)

// ProfileRequest asks for the profile of the institution. A zero LastUpdate
// requests the full profile.
type ProfileRequest struct {
	Routing    ClientRouting
	LastUpdate time.Time
}

// ProfileResponse describes the institution and the message sets it serves.
type ProfileResponse struct {
	MessageSets          *MessageSetList
	SignonInfos          *SignonInfoList
	LastUpdate           time.Time
	Name                 string
	Address1             string
	Address2             string
	Address3             string
	City                 string
	State                string
	PostalCode           string
	Country              string
	CustomerServicePhone string
	TechSupportPhone     string
	FaxPhone             string
	URL                  string
	Email                string
}

// MessageSetCore is the part shared by message set profiles.
type MessageSetCore struct {
	Version           int
	URL               string
	Security          ApplicationSecurity
	TransportSecurity bool
	SignonRealm       string
	Language          string
	SyncMode          SyncMode
	RefreshSupport    *bool
	FileErrorRecovery bool
	ServiceProvider   string
}

// MessageSetProfile describes one message set served by the institution.
type MessageSetProfile interface {
	Type() MessageSetType
	// Core is nil when the server sent no version 1 description.
	Core() *MessageSetCore
}

type SignonMessageSetV1 struct {
	Core *MessageSetCore
}

type SignupMessageSetV1 struct {
	Core              *MessageSetCore
	ChangeUserInfo    bool
	AvailableAccounts bool
	ClientActivation  bool
}

type BankMessageSetV1 struct {
	Core             *MessageSetCore
	ClosingAvailable bool
}

type CreditCardMessageSetV1 struct {
	Core             *MessageSetCore
	ClosingAvailable bool
}

type InvestmentMessageSetV1 struct {
	Core                 *MessageSetCore
	TransactionsDownload bool
	OpenOrdersDownload   bool
	PositionsDownload    bool
	BalanceDownload      bool
	CanEmail             bool
}

type SecurityListMessageSetV1 struct {
	Core *MessageSetCore
}

type Tax1099MessageSetV1 struct {
	Core *MessageSetCore
}

type ProfileMessageSetV1 struct {
	Core *MessageSetCore
}

type SignonMessageSetProfile struct{ V1 *SignonMessageSetV1 }
type SignupMessageSetProfile struct{ V1 *SignupMessageSetV1 }
type BankMessageSetProfile struct{ V1 *BankMessageSetV1 }
type CreditCardMessageSetProfile struct{ V1 *CreditCardMessageSetV1 }
type InvestmentMessageSetProfile struct{ V1 *InvestmentMessageSetV1 }
type SecurityListMessageSetProfile struct{ V1 *SecurityListMessageSetV1 }
type Tax1099MessageSetProfile struct{ V1 *Tax1099MessageSetV1 }
type ProfileMessageSetProfile struct{ V1 *ProfileMessageSetV1 }

func (*SignonMessageSetProfile) Type() MessageSetType       { return SignonSet }
func (*SignupMessageSetProfile) Type() MessageSetType       { return SignupSet }
func (*BankMessageSetProfile) Type() MessageSetType         { return BankingSet }
func (*CreditCardMessageSetProfile) Type() MessageSetType   { return CreditCardSet }
func (*InvestmentMessageSetProfile) Type() MessageSetType   { return InvestmentSet }
func (*SecurityListMessageSetProfile) Type() MessageSetType { return SecurityListSet }
func (*Tax1099MessageSetProfile) Type() MessageSetType      { return Tax1099Set }
func (*ProfileMessageSetProfile) Type() MessageSetType      { return ProfileSet }

func (p *SignonMessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

func (p *SignupMessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

func (p *BankMessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

func (p *CreditCardMessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

func (p *InvestmentMessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

func (p *SecurityListMessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

func (p *Tax1099MessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

func (p *ProfileMessageSetProfile) Core() *MessageSetCore {
	if p.V1 == nil {
		return nil
	}
	return p.V1.Core
}

type MessageSetList struct {
	Sets []MessageSetProfile
}

// Find returns the profile of the message set t, or nil.
func (l *MessageSetList) Find(t MessageSetType) MessageSetProfile {
	if l == nil {
		return nil
	}
	for _, s := range l.Sets {
		if s.Type() == t {
			return s
		}
	}
	return nil
}

// SignonInfo describes the credentials expected in a signon realm.
type SignonInfo struct {
	Realm                 string
	MinChars              int
	MaxChars              int
	CharType              CharType
	CaseSensitive         bool
	Special               bool
	Spaces                bool
	PinChange             bool
	ChangePinFirst        bool
	UserCred1Label        string
	UserCred2Label        string
	ClientUIDRequired     *bool
	AuthTokenFirst        *bool
	AuthTokenLabel        string
	AuthTokenInfoURL      string
	MFAChallengeSupported *bool
	MFAChallengeFirst     *bool
	AccessTokenRequired   *bool
}

type SignonInfoList struct {
	Infos []SignonInfo
}

type ProfileTransactionRequest struct {
	TransactionRequest
	Message *ProfileRequest
}

type ProfileTransactionResponse struct {
	TransactionResponse
	Message *ProfileResponse
}

func (*ProfileTransactionResponse) ResponseName() string { return "PROFTRNRS" }

type ProfileRequestMessageSet struct {
	Requests []ProfileTransactionRequest
}

func (*ProfileRequestMessageSet) Type() MessageSetType { return ProfileSet }
func (*ProfileRequestMessageSet) requestMessageSet()   {}

func (s *ProfileRequestMessageSet) RequestMessages() []any {
	messages := make([]any, len(s.Requests))
	for i := range s.Requests {
		messages[i] = &s.Requests[i]
	}
	return messages
}

type ProfileResponseMessageSet struct {
	Responses []ProfileTransactionResponse
}

func (*ProfileResponseMessageSet) Type() MessageSetType { return ProfileSet }
func (*ProfileResponseMessageSet) responseMessageSet()  {}

func (s *ProfileResponseMessageSet) ResponseMessages() []any {
	messages := make([]any, len(s.Responses))
	for i := range s.Responses {
		messages[i] = &s.Responses[i]
	}
	return messages
}

// registerMessageSetProfile registers the wrapper W, named name, around the
// version 1 description V, named name+"V1", made of a MSGSETCORE and fields.
func registerMessageSetProfile[W, V any](r *Registry, name string, v1 func(*W) **V, core func(*V) **MessageSetCore, fields ...*Field) {
	Register[V](r, name+"V1", append([]*Field{Child("", 0, core).Required()}, fields...)...)
	Register[W](r, name, Child("", 0, v1).Required())
}

func registerProfile(r *Registry) {
	Register[MessageSetCore](r, "MSGSETCORE",
		Element("VER", 0, Integer, func(c *MessageSetCore) *int { return &c.Version }).Required(),
		Element("URL", 10, Text, func(c *MessageSetCore) *string { return &c.URL }).Required(),
		Element("OFXSEC", 20, Enum(ParseApplicationSecurity), func(c *MessageSetCore) *ApplicationSecurity { return &c.Security }).Required(),
		Element("TRANSPSEC", 30, Flag, func(c *MessageSetCore) *bool { return &c.TransportSecurity }).Required(),
		Element("SIGNONREALM", 40, Text, func(c *MessageSetCore) *string { return &c.SignonRealm }).Required(),
		Element("LANGUAGE", 50, Text, func(c *MessageSetCore) *string { return &c.Language }).Required(),
		Element("SYNCMODE", 60, Enum(ParseSyncMode), func(c *MessageSetCore) *SyncMode { return &c.SyncMode }).Required(),
		Element("REFRESHSUPT", 70, OptFlag, func(c *MessageSetCore) **bool { return &c.RefreshSupport }),
		Element("RESPFILEER", 80, Flag, func(c *MessageSetCore) *bool { return &c.FileErrorRecovery }).Required(),
		Element("SPNAME", 90, Text, func(c *MessageSetCore) *string { return &c.ServiceProvider }),
	)

	registerMessageSetProfile(r, "SIGNONMSGSET",
		func(p *SignonMessageSetProfile) **SignonMessageSetV1 { return &p.V1 },
		func(v *SignonMessageSetV1) **MessageSetCore { return &v.Core })
	registerMessageSetProfile(r, "SIGNUPMSGSET",
		func(p *SignupMessageSetProfile) **SignupMessageSetV1 { return &p.V1 },
		func(v *SignupMessageSetV1) **MessageSetCore { return &v.Core },
		Element("CHGUSERINFO", 10, Flag, func(v *SignupMessageSetV1) *bool { return &v.ChangeUserInfo }).Required(),
		Element("AVAILACCTS", 20, Flag, func(v *SignupMessageSetV1) *bool { return &v.AvailableAccounts }).Required(),
		Element("CLIENTACTREQ", 30, Flag, func(v *SignupMessageSetV1) *bool { return &v.ClientActivation }).Required(),
	)
	registerMessageSetProfile(r, "BANKMSGSET",
		func(p *BankMessageSetProfile) **BankMessageSetV1 { return &p.V1 },
		func(v *BankMessageSetV1) **MessageSetCore { return &v.Core },
		Element("CLOSINGAVAIL", 10, Flag, func(v *BankMessageSetV1) *bool { return &v.ClosingAvailable }).Required(),
	)
	registerMessageSetProfile(r, "CREDITCARDMSGSET",
		func(p *CreditCardMessageSetProfile) **CreditCardMessageSetV1 { return &p.V1 },
		func(v *CreditCardMessageSetV1) **MessageSetCore { return &v.Core },
		Element("CLOSINGAVAIL", 10, Flag, func(v *CreditCardMessageSetV1) *bool { return &v.ClosingAvailable }).Required(),
	)
	registerMessageSetProfile(r, "INVSTMTMSGSET",
		func(p *InvestmentMessageSetProfile) **InvestmentMessageSetV1 { return &p.V1 },
		func(v *InvestmentMessageSetV1) **MessageSetCore { return &v.Core },
		Element("TRANDNLD", 10, Flag, func(v *InvestmentMessageSetV1) *bool { return &v.TransactionsDownload }).Required(),
		Element("OODNLD", 20, Flag, func(v *InvestmentMessageSetV1) *bool { return &v.OpenOrdersDownload }).Required(),
		Element("POSDNLD", 30, Flag, func(v *InvestmentMessageSetV1) *bool { return &v.PositionsDownload }).Required(),
		Element("BALDNLD", 40, Flag, func(v *InvestmentMessageSetV1) *bool { return &v.BalanceDownload }).Required(),
		Element("CANEMAIL", 50, Flag, func(v *InvestmentMessageSetV1) *bool { return &v.CanEmail }).Required(),
	)
	registerMessageSetProfile(r, "SECLISTMSGSET",
		func(p *SecurityListMessageSetProfile) **SecurityListMessageSetV1 { return &p.V1 },
		func(v *SecurityListMessageSetV1) **MessageSetCore { return &v.Core })
	registerMessageSetProfile(r, "TAX1099MSGSET",
		func(p *Tax1099MessageSetProfile) **Tax1099MessageSetV1 { return &p.V1 },
		func(v *Tax1099MessageSetV1) **MessageSetCore { return &v.Core })
	registerMessageSetProfile(r, "PROFMSGSET",
		func(p *ProfileMessageSetProfile) **ProfileMessageSetV1 { return &p.V1 },
		func(v *ProfileMessageSetV1) **MessageSetCore { return &v.Core })

	Register[MessageSetList](r, "MSGSETLIST",
		OneOf(0, func(l *MessageSetList) *[]MessageSetProfile { return &l.Sets },
			As[SignonMessageSetProfile, MessageSetProfile](),
			As[SignupMessageSetProfile, MessageSetProfile](),
			As[BankMessageSetProfile, MessageSetProfile](),
			As[CreditCardMessageSetProfile, MessageSetProfile](),
			As[InvestmentMessageSetProfile, MessageSetProfile](),
			As[SecurityListMessageSetProfile, MessageSetProfile](),
			As[Tax1099MessageSetProfile, MessageSetProfile](),
			As[ProfileMessageSetProfile, MessageSetProfile](),
		),
	)
	Register[SignonInfo](r, "SIGNONINFO",
		Element("SIGNONREALM", 0, Text, func(s *SignonInfo) *string { return &s.Realm }).Required(),
		Element("MIN", 10, Integer, func(s *SignonInfo) *int { return &s.MinChars }).Required(),
		Element("MAX", 20, Integer, func(s *SignonInfo) *int { return &s.MaxChars }).Required(),
		Element("CHARTYPE", 30, Enum(ParseCharType), func(s *SignonInfo) *CharType { return &s.CharType }).Required(),
		Element("CASESEN", 40, Flag, func(s *SignonInfo) *bool { return &s.CaseSensitive }).Required(),
		Element("SPECIAL", 50, Flag, func(s *SignonInfo) *bool { return &s.Special }).Required(),
		Element("SPACES", 60, Flag, func(s *SignonInfo) *bool { return &s.Spaces }).Required(),
		Element("PINCH", 70, Flag, func(s *SignonInfo) *bool { return &s.PinChange }).Required(),
		Element("CHGPINFIRST", 80, Flag, func(s *SignonInfo) *bool { return &s.ChangePinFirst }).Required(),
		Element("USERCRED1LABEL", 90, Text, func(s *SignonInfo) *string { return &s.UserCred1Label }),
		Element("USERCRED2LABEL", 100, Text, func(s *SignonInfo) *string { return &s.UserCred2Label }),
		Element("CLIENTUIDREQ", 110, OptFlag, func(s *SignonInfo) **bool { return &s.ClientUIDRequired }),
		Element("AUTHTOKENFIRST", 120, OptFlag, func(s *SignonInfo) **bool { return &s.AuthTokenFirst }),
		Element("AUTHTOKENLABEL", 130, Text, func(s *SignonInfo) *string { return &s.AuthTokenLabel }),
		Element("AUTHTOKENINFOURL", 140, Text, func(s *SignonInfo) *string { return &s.AuthTokenInfoURL }),
		Element("MFACHALLENGESUPT", 150, OptFlag, func(s *SignonInfo) **bool { return &s.MFAChallengeSupported }),
		Element("MFACHALLENGEFIRST", 160, OptFlag, func(s *SignonInfo) **bool { return &s.MFAChallengeFirst }),
		Element("ACCESSTOKENREQ", 170, OptFlag, func(s *SignonInfo) **bool { return &s.AccessTokenRequired }),
	)
	Register[SignonInfoList](r, "SIGNONINFOLIST",
		Children("", 0, func(l *SignonInfoList) *[]SignonInfo { return &l.Infos }),
	)

	Register[ProfileRequest](r, "PROFRQ",
		Element("CLIENTROUTING", 0, Enum(ParseClientRouting), func(p *ProfileRequest) *ClientRouting { return &p.Routing }).Required(),
		Element("DTPROFUP", 10, lastUpdate, func(p *ProfileRequest) *time.Time { return &p.LastUpdate }).Required(),
	)
	Register[ProfileResponse](r, "PROFRS",
		Child("", 0, func(p *ProfileResponse) **MessageSetList { return &p.MessageSets }).Required(),
		Child("", 10, func(p *ProfileResponse) **SignonInfoList { return &p.SignonInfos }).Required(),
		Element("DTPROFUP", 20, DateTime, func(p *ProfileResponse) *time.Time { return &p.LastUpdate }).Required(),
		Element("FINAME", 30, Text, func(p *ProfileResponse) *string { return &p.Name }).Required(),
		Element("ADDR1", 40, Text, func(p *ProfileResponse) *string { return &p.Address1 }).Required(),
		Element("ADDR2", 50, Text, func(p *ProfileResponse) *string { return &p.Address2 }),
		Element("ADDR3", 60, Text, func(p *ProfileResponse) *string { return &p.Address3 }),
		Element("CITY", 70, Text, func(p *ProfileResponse) *string { return &p.City }).Required(),
		Element("STATE", 80, Text, func(p *ProfileResponse) *string { return &p.State }).Required(),
		Element("POSTALCODE", 90, Text, func(p *ProfileResponse) *string { return &p.PostalCode }).Required(),
		Element("COUNTRY", 100, Text, func(p *ProfileResponse) *string { return &p.Country }),
		Element("CSPHONE", 110, Text, func(p *ProfileResponse) *string { return &p.CustomerServicePhone }),
		Element("TSPHONE", 120, Text, func(p *ProfileResponse) *string { return &p.TechSupportPhone }),
		Element("FAXPHONE", 130, Text, func(p *ProfileResponse) *string { return &p.FaxPhone }),
		Element("URL", 140, Text, func(p *ProfileResponse) *string { return &p.URL }),
		Element("EMAIL", 150, Text, func(p *ProfileResponse) *string { return &p.Email }),
	)

	registerTransactionRequest(r, "PROFTRNRQ",
		func(t *ProfileTransactionRequest) *TransactionRequest { return &t.TransactionRequest },
		func(t *ProfileTransactionRequest) **ProfileRequest { return &t.Message })
	registerTransactionResponse(r, "PROFTRNRS",
		func(t *ProfileTransactionResponse) *TransactionResponse { return &t.TransactionResponse },
		func(t *ProfileTransactionResponse) **ProfileResponse { return &t.Message })
	Register[ProfileRequestMessageSet](r, "PROFMSGSRQV1",
		Children("", 0, func(s *ProfileRequestMessageSet) *[]ProfileTransactionRequest { return &s.Requests }),
	)
	Register[ProfileResponseMessageSet](r, "PROFMSGSRSV1",
		Children("", 0, func(s *ProfileResponseMessageSet) *[]ProfileTransactionResponse { return &s.Responses }),
	)
}

// lastUpdateEpoch is sent as DTPROFUP or DTACCTUP when the client knows
// nothing yet.
var lastUpdateEpoch = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

// lastUpdate is the codec of the required last update date of a request.
var lastUpdate = NewCodec(
	func(t time.Time) (string, bool) {
		if t.IsZero() {
			t = lastUpdateEpoch
		}
		return DateTime.Format(t)
	},
	DateTime.Parse)
