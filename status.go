package ofx

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity of a Status.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

var ParseSeverity = oneOf(SeverityInfo, SeverityWarn, SeverityError)

// StatusCode is the numeric result code of a Status: either a KnownCode or
// an UnknownCode.
type StatusCode interface {
	Code() int
	// Message is the default message of the code.
	Message() string
	// Severity is the default severity of the code.
	Severity() Severity
	isStatusCode()
}

// KnownCode is a code of the protocol's table.
type KnownCode int

const (
	Success                KnownCode = 0
	ClientUpToDate         KnownCode = 1
	GeneralError           KnownCode = 2000
	GeneralAccountError    KnownCode = 2002
	AccountNotFound        KnownCode = 2003
	AccountClosed          KnownCode = 2004
	AccountNotAuthorized   KnownCode = 2005
	DateTooSoon            KnownCode = 2014
	DuplicateRequest       KnownCode = 2019
	UnsupportedVersion     KnownCode = 2021
	InvalidTAN             KnownCode = 2022
	MFAChallengeRequired   KnownCode = 3000
	MFAChallengeFailed     KnownCode = 3001
	NoTaxData              KnownCode = 14701
	TaxDatabaseError       KnownCode = 14702
	TaxYearNotSupported    KnownCode = 14703
	PasswordChangeRequired KnownCode = 15000
	SignonInvalid          KnownCode = 15500
	CustomerAccountInUse   KnownCode = 15501
	PasswordLocked         KnownCode = 15502
	InvalidClientUID       KnownCode = 15510
	ContactFI              KnownCode = 15511
	AuthTokenRequired      KnownCode = 15512
	InvalidAuthToken       KnownCode = 15513
)

type codeInfo struct {
	message  string
	severity Severity
}

var knownCodes = map[KnownCode]codeInfo{
	Success:                {"Success", SeverityInfo},
	ClientUpToDate:         {"Client is up-to-date", SeverityInfo},
	GeneralError:           {"General error.", SeverityError},
	GeneralAccountError:    {"General account error.", SeverityError},
	AccountNotFound:        {"Account not found.", SeverityError},
	AccountClosed:          {"Account closed.", SeverityError},
	AccountNotAuthorized:   {"Account not authorized.", SeverityError},
	DateTooSoon:            {"Date too soon", SeverityError},
	DuplicateRequest:       {"Duplicate request.", SeverityError},
	UnsupportedVersion:     {"Unsupported version", SeverityError},
	InvalidTAN:             {"Invalid transaction authorization number.", SeverityError},
	MFAChallengeRequired:   {"Further authentication required.", SeverityError},
	MFAChallengeFailed:     {"MFA failed.", SeverityError},
	NoTaxData:              {"No Tax Data for Account.", SeverityError},
	TaxDatabaseError:       {"Database error has occured.", SeverityError},
	TaxYearNotSupported:    {"This Tax Year is not supported.", SeverityError},
	PasswordChangeRequired: {"Password change required.", SeverityInfo},
	SignonInvalid:          {"Invalid signon", SeverityError},
	CustomerAccountInUse:   {"Customer account in use.", SeverityError},
	PasswordLocked:         {"Password locked.", SeverityError},
	InvalidClientUID:       {"Invalid client UID.", SeverityError},
	ContactFI:              {"User must contact FI.", SeverityError},
	AuthTokenRequired:      {"Auth token required.", SeverityError},
	InvalidAuthToken:       {"Invalid auth token.", SeverityError},
}

func (c KnownCode) Code() int          { return int(c) }
func (c KnownCode) Message() string    { return knownCodes[c].message }
func (c KnownCode) Severity() Severity { return knownCodes[c].severity }
func (c KnownCode) String() string     { return strconv.Itoa(int(c)) }
func (KnownCode) isStatusCode()        {}

// UnknownCode is a code missing from the table. It is kept as is rather
// than rejected.
type UnknownCode int

func (c UnknownCode) Code() int          { return int(c) }
func (c UnknownCode) Message() string    { return fmt.Sprintf("Unknown status code %d", int(c)) }
func (c UnknownCode) Severity() Severity { return SeverityError }
func (c UnknownCode) String() string     { return strconv.Itoa(int(c)) }
func (UnknownCode) isStatusCode()        {}

// LookupCode returns the KnownCode of n, or an UnknownCode.
func LookupCode(n int) StatusCode {
	if _, ok := knownCodes[KnownCode(n)]; ok {
		return KnownCode(n)
	}
	return UnknownCode(n)
}

// Code is the codec of status codes.
var Code Codec[StatusCode] = NewCodec(
	func(c StatusCode) (string, bool) {
		if c == nil {
			return "", false
		}
		return strconv.Itoa(c.Code()), true
	},
	func(s string) (StatusCode, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid status code %q", s)
		}
		return LookupCode(n), nil
	})

// Status is the result of a response message.
type Status struct {
	Code     StatusCode
	Severity Severity
	Message  string
}

// NewStatus returns a status with the default severity of code.
func NewStatus(code StatusCode) *Status {
	return &Status{Code: code, Severity: code.Severity()}
}

// Success reports whether the code is Success.
func (s *Status) Success() bool { return s.Code != nil && s.Code.Code() == int(Success) }

// Text returns the message of the status or the default message of its code.
func (s *Status) Text() string {
	if s.Message != "" {
		return s.Message
	}
	if s.Code == nil {
		return ""
	}
	return s.Code.Message()
}

func registerStatus(r *Registry) {
	Register[Status](r, "STATUS",
		Element("CODE", 0, Code, func(s *Status) *StatusCode { return &s.Code }).Required(),
		Element("SEVERITY", 10, Enum(ParseSeverity), func(s *Status) *Severity { return &s.Severity }).Required(),
		Element("MESSAGE", 20, Text, func(s *Status) *string { return &s.Message }),
	)
}
