package ofx

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error kinds.
var (
	// ErrMissingRequiredField indicates a required field is absent, either
	// when marshalling or after an aggregate has been read.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue indicates an element value could not be decoded.
	ErrInvalidValue = errors.New("invalid value")

	// ErrSchemaNotFound indicates a type or a root tag has no registered schema.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrUnparseableAggregate indicates a structurally invalid tag nesting.
	ErrUnparseableAggregate = errors.New("unparseable aggregate")

	// ErrUnsupportedSecurity indicates a response uses message-level security.
	ErrUnsupportedSecurity = errors.New("unsupported security")

	// ErrEnvelopeMismatch indicates the response does not answer the request envelope.
	ErrEnvelopeMismatch = errors.New("envelope mismatch")

	// ErrNoResponseForMessageSet indicates a request message set has no response counterpart.
	ErrNoResponseForMessageSet = errors.New("no response for message set")

	// ErrNoSignonResponse indicates the signon message set has no SONRS.
	ErrNoSignonResponse = errors.New("no signon response")

	// ErrUnknownTransactionResponse indicates a response transaction answers nothing that was asked.
	ErrUnknownTransactionResponse = errors.New("unknown transaction response")

	// ErrUnansweredTransactions indicates request transactions without a response.
	ErrUnansweredTransactions = errors.New("unanswered transactions")

	// ErrStatus indicates a response carries a non-success status.
	ErrStatus = errors.New("status")
)

// FieldError reports a failure on a single field of an aggregate.
type FieldError struct {
	Err       error  // ErrMissingRequiredField or ErrInvalidValue
	Aggregate string // tag of the aggregate owning the field
	Field     string // tag of the field
	Cause     error  // decoding error, if any
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s in <%s>: %v", e.Err.Error(), e.Field, e.Aggregate, e.Cause)
	}
	return fmt.Sprintf("%s %s in <%s>", e.Err.Error(), e.Field, e.Aggregate)
}

func (e *FieldError) Unwrap() error { return e.Err }

// SchemaError reports a registry lookup failure.
type SchemaError struct {
	Err  error  // ErrSchemaNotFound
	Type string // Go type name, when looking up by type
	Tag  string // wire tag, when looking up by tag
}

func (e *SchemaError) Error() string {
	switch {
	case e.Type != "":
		return fmt.Sprintf("%s for type %s", e.Err.Error(), e.Type)
	case e.Tag != "":
		return fmt.Sprintf("%s for tag <%s>", e.Err.Error(), e.Tag)
	}
	return e.Err.Error()
}

func (e *SchemaError) Unwrap() error { return e.Err }

// SyntaxError reports an invalid tag stream.
type SyntaxError struct {
	Err    error  // ErrUnparseableAggregate
	Tag    string // tag being processed when the error occurred
	Offset int64  // byte offset in the input, when known
	Cause  error  // underlying tokenizer error
	Msg    string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Tag != "" {
		fmt.Fprintf(&b, " <%s>", e.Tag)
	}
	if e.Offset > 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// EnvelopeError reports a response envelope that cannot answer the request.
type EnvelopeError struct {
	Err      error  // ErrUnsupportedSecurity or ErrEnvelopeMismatch
	Expected string
	Got      string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("%s: expected %q, got %q", e.Err.Error(), e.Expected, e.Got)
}

func (e *EnvelopeError) Unwrap() error { return e.Err }

// TransactionError reports a correlation failure within a message set.
type TransactionError struct {
	Err        error          // one of the correlation sentinels
	MessageSet MessageSetType // message set being validated
	UIDs       []string       // transaction ids involved, sorted
}

func (e *TransactionError) Error() string {
	if len(e.UIDs) == 0 {
		return fmt.Sprintf("%s (%s)", e.Err.Error(), e.MessageSet)
	}
	return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.MessageSet, strings.Join(e.UIDs, ", "))
}

func (e *TransactionError) Unwrap() error { return e.Err }

func newTransactionError(sentinel error, set MessageSetType, uids ...string) error {
	sort.Strings(uids)
	return &TransactionError{Err: sentinel, MessageSet: set, UIDs: uids}
}

// StatusError wraps a non-success Status found in a response.
type StatusError struct {
	Status     Status
	Holder     string         // tag of the response message carrying the status
	MessageSet MessageSetType
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s in <%s>: %d %s", e.Status.Severity, ErrStatus.Error(), e.Holder, e.Status.Code.Code(), e.Status.Text())
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// Severity returns the severity reported by the institution, defaulting to
// the code's own severity.
func (e *StatusError) Severity() Severity {
	if e.Status.Severity != "" {
		return e.Status.Severity
	}
	return e.Status.Code.Severity()
}

// HTTPError reports a non 2xx answer from an institution server.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	kind := "server"
	if e.ClientError() {
		kind = "client"
	}
	return fmt.Sprintf("ofx %s error: %s", kind, e.Status)
}

// ClientError reports whether the server blamed the request (4xx).
func (e *HTTPError) ClientError() bool { return e.StatusCode >= 400 && e.StatusCode < 500 }
