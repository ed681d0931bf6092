package ofx

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// MessageSetType identifies a message set. The values are sorted in wire
// order.
type MessageSetType int

const (
	SignonSet MessageSetType = iota
	SignupSet
	BankingSet
	CreditCardSet
	InvestmentSet
	SecurityListSet
	Tax1099Set
	ProfileSet
)

var messageSetNames = [...]string{"signon", "signup", "banking", "creditcard", "investment", "seclist", "tax1099", "profile"}

func (t MessageSetType) String() string {
	if t < 0 || int(t) >= len(messageSetNames) {
		return fmt.Sprintf("messageset(%d)", int(t))
	}
	return messageSetNames[t]
}

// ParseMessageSetType is the inverse of MessageSetType.String.
func ParseMessageSetType(s string) (MessageSetType, bool) {
	for i, n := range messageSetNames {
		if n == s {
			return MessageSetType(i), true
		}
	}
	return 0, false
}

// ApplicationSecurity is the message-level security declared in the header.
type ApplicationSecurity string

const (
	SecurityNone  ApplicationSecurity = "NONE"
	SecurityType1 ApplicationSecurity = "TYPE1"
)

var ParseApplicationSecurity = oneOf(SecurityNone, SecurityType1)

// RequestMessageSet is one of the *RequestMessageSet types of this package.
type RequestMessageSet interface {
	Type() MessageSetType
	// RequestMessages lists the messages of the set, in wire order.
	RequestMessages() []any
	requestMessageSet()
}

// ResponseMessageSet is one of the *ResponseMessageSet types of this package.
type ResponseMessageSet interface {
	Type() MessageSetType
	// ResponseMessages lists the messages of the set, in wire order.
	ResponseMessages() []any
	responseMessageSet()
}

// Transactional is implemented by transaction wrapped messages.
type Transactional interface {
	TransactionUID() string
}

// StatusHolder is implemented by response messages carrying a Status.
type StatusHolder interface {
	ResponseStatus() *Status
	// ResponseName is the tag of the message, for diagnostics.
	ResponseName() string
}

// TransactionRequest is the part of a transaction wrapped request shared by
// every message.
type TransactionRequest struct {
	UID          string
	ClientCookie string
	TAN          string
}

func (t *TransactionRequest) TransactionUID() string { return t.UID }

// NewTransactionRequest returns a transaction with a fresh unique id.
func NewTransactionRequest() TransactionRequest {
	return TransactionRequest{UID: uuid.NewString()}
}

// TransactionResponse is the part of a transaction wrapped response shared
// by every message.
type TransactionResponse struct {
	UID          string
	Status       *Status
	ClientCookie string
}

func (t *TransactionResponse) TransactionUID() string  { return t.UID }
func (t *TransactionResponse) ResponseStatus() *Status { return t.Status }

// registerTransactionRequest registers T, a wrapper of message M.
func registerTransactionRequest[T, M any](r *Registry, name string, trn func(*T) *TransactionRequest, msg func(*T) **M) {
	Register[T](r, name,
		Element("TRNUID", 0, Text, func(t *T) *string { return &trn(t).UID }).Required(),
		Element("CLTCOOKIE", 10, Text, func(t *T) *string { return &trn(t).ClientCookie }),
		Element("TAN", 20, Text, func(t *T) *string { return &trn(t).TAN }),
		Child("", 30, msg).Required(),
	)
}

// registerTransactionResponse registers T, a wrapper of message M. The
// message is absent when the status is an error.
func registerTransactionResponse[T, M any](r *Registry, name string, trn func(*T) *TransactionResponse, msg func(*T) **M) {
	Register[T](r, name,
		Element("TRNUID", 0, Text, func(t *T) *string { return &trn(t).UID }).Required(),
		Child("", 10, func(t *T) **Status { return &trn(t).Status }).Required(),
		Element("CLTCOOKIE", 20, Text, func(t *T) *string { return &trn(t).ClientCookie }),
		Child("", 30, msg),
	)
}

// RequestEnvelope is the <OFX> root of a request.
type RequestEnvelope struct {
	UID         string // NEWFILEUID
	LastUID     string // OLDFILEUID
	Security    ApplicationSecurity
	MessageSets []RequestMessageSet
}

// NewRequestEnvelope returns an empty envelope with a fresh unique id.
func NewRequestEnvelope() *RequestEnvelope {
	return &RequestEnvelope{UID: uuid.NewString(), Security: SecurityNone}
}

// Add adds message sets, keeping them in wire order.
func (e *RequestEnvelope) Add(sets ...RequestMessageSet) {
	e.MessageSets = append(e.MessageSets, sets...)
	sort.SliceStable(e.MessageSets, func(i, j int) bool { return e.MessageSets[i].Type() < e.MessageSets[j].Type() })
}

// MessageSet returns the message set of type t, or nil.
func (e *RequestEnvelope) MessageSet(t MessageSetType) RequestMessageSet {
	for _, s := range e.MessageSets {
		if s.Type() == t {
			return s
		}
	}
	return nil
}

func (e *RequestEnvelope) ofxHeader() Header {
	h := DefaultHeader()
	h.Security, h.NewFileUID = e.Security, e.UID
	if e.LastUID != "" {
		h.OldFileUID = e.LastUID
	}
	return h
}

func (e *RequestEnvelope) setOFXHeader(h Header) {
	e.Security, e.UID = h.Security, h.NewFileUID
	if h.OldFileUID != "NONE" {
		e.LastUID = h.OldFileUID
	}
}

// ResponseEnvelope is the <OFX> root of a response.
type ResponseEnvelope struct {
	UID         string // NEWFILEUID
	Security    ApplicationSecurity
	MessageSets []ResponseMessageSet
}

// Add adds message sets, keeping them in wire order.
func (e *ResponseEnvelope) Add(sets ...ResponseMessageSet) {
	e.MessageSets = append(e.MessageSets, sets...)
	sort.SliceStable(e.MessageSets, func(i, j int) bool { return e.MessageSets[i].Type() < e.MessageSets[j].Type() })
}

// MessageSet returns the message set of type t, or nil.
func (e *ResponseEnvelope) MessageSet(t MessageSetType) ResponseMessageSet {
	for _, s := range e.MessageSets {
		if s.Type() == t {
			return s
		}
	}
	return nil
}

// Signon returns the signon response, or nil.
func (e *ResponseEnvelope) Signon() *SignonResponse {
	if s, ok := e.MessageSet(SignonSet).(*SignonResponseMessageSet); ok {
		return s.Signon
	}
	return nil
}

func (e *ResponseEnvelope) ofxHeader() Header {
	h := DefaultHeader()
	h.Security, h.NewFileUID = e.Security, e.UID
	return h
}

func (e *ResponseEnvelope) setOFXHeader(h Header) {
	e.Security, e.UID = h.Security, h.NewFileUID
}

func registerEnvelopes(r *Registry) {
	Register[RequestEnvelope](r, "OFX",
		OneOf(0, func(e *RequestEnvelope) *[]RequestMessageSet { return &e.MessageSets },
			As[SignonRequestMessageSet, RequestMessageSet](),
			As[SignupRequestMessageSet, RequestMessageSet](),
			As[BankingRequestMessageSet, RequestMessageSet](),
			As[CreditCardRequestMessageSet, RequestMessageSet](),
			As[InvestmentRequestMessageSet, RequestMessageSet](),
			As[SecurityListRequestMessageSet, RequestMessageSet](),
			As[Tax1099RequestMessageSet, RequestMessageSet](),
			As[ProfileRequestMessageSet, RequestMessageSet](),
		),
	)
	Register[ResponseEnvelope](r, "OFX",
		OneOf(0, func(e *ResponseEnvelope) *[]ResponseMessageSet { return &e.MessageSets },
			As[SignonResponseMessageSet, ResponseMessageSet](),
			As[SignupResponseMessageSet, ResponseMessageSet](),
			As[BankingResponseMessageSet, ResponseMessageSet](),
			As[CreditCardResponseMessageSet, ResponseMessageSet](),
			As[InvestmentResponseMessageSet, ResponseMessageSet](),
			As[SecurityListResponseMessageSet, ResponseMessageSet](),
			As[Tax1099ResponseMessageSet, ResponseMessageSet](),
			As[ProfileResponseMessageSet, ResponseMessageSet](),
		),
	)
}
