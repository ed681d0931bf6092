package ofx

import (
	"context"
	"log"
)

// Validator checks that a response envelope answers a request envelope.
//
// Validation stops at the first failure. Every status found in the response
// is classified; whether a status of severity INFO is fatal is decided by
// TolerateInfo.
type Validator struct {
	// TolerateInfo accepts statuses of severity INFO, such as ClientUpToDate,
	// instead of failing.
	TolerateInfo bool
	// OnStatus receives the tolerated statuses. When nil they are logged.
	OnStatus func(*StatusError)
}

// Validate checks resp against req with a Validator that tolerates nothing.
func Validate(req *RequestEnvelope, resp *ResponseEnvelope) error {
	var v Validator
	return v.Validate(req, resp)
}

// Validate checks, in order, that resp:
//   - declares SECURITY NONE, an unset security being rejected,
//   - has the uid of req,
//   - has a message set for each message set of req, and a signon response,
//   - carries only successful statuses,
//   - answers every transaction of req, and nothing else.
func (v *Validator) Validate(req *RequestEnvelope, resp *ResponseEnvelope) (err error) {
	defer func() { emitValidateComplete(context.Background(), len(req.MessageSets), err) }()

	if sec := resp.Security; sec != SecurityNone {
		return &EnvelopeError{Err: ErrUnsupportedSecurity, Expected: string(SecurityNone), Got: string(sec)}
	}
	if resp.UID != req.UID {
		return &EnvelopeError{Err: ErrEnvelopeMismatch, Expected: req.UID, Got: resp.UID}
	}
	for _, rq := range req.MessageSets {
		rs := resp.MessageSet(rq.Type())
		if rs == nil {
			return newTransactionError(ErrNoResponseForMessageSet, rq.Type())
		}
		if err := v.validateSet(rq, rs); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateSet(rq RequestMessageSet, rs ResponseMessageSet) error {
	set := rq.Type()
	if set == SignonSet {
		if s, ok := rs.(*SignonResponseMessageSet); !ok || s.Signon == nil {
			return newTransactionError(ErrNoSignonResponse, set)
		}
	}

	pending := make(map[string]bool)
	for _, m := range rq.RequestMessages() {
		if t, ok := m.(Transactional); ok {
			pending[t.TransactionUID()] = true
		}
	}

	for _, m := range rs.ResponseMessages() {
		// messages that are neither status holders nor transactions, like
		// SECLIST, have nothing to correlate
		if h, ok := m.(StatusHolder); ok {
			if err := v.validateStatus(h, set); err != nil {
				return err
			}
		}
		if t, ok := m.(Transactional); ok {
			uid := t.TransactionUID()
			if !pending[uid] {
				return newTransactionError(ErrUnknownTransactionResponse, set, uid)
			}
			delete(pending, uid)
		}
	}

	if len(pending) > 0 {
		uids := make([]string, 0, len(pending))
		for uid := range pending {
			uids = append(uids, uid)
		}
		return newTransactionError(ErrUnansweredTransactions, set, uids...)
	}
	return nil
}

func (v *Validator) validateStatus(h StatusHolder, set MessageSetType) error {
	s := h.ResponseStatus()
	if s == nil {
		return &FieldError{Err: ErrMissingRequiredField, Aggregate: h.ResponseName(), Field: "STATUS"}
	}
	if s.Success() {
		return nil
	}
	if s.Code == nil {
		return &FieldError{Err: ErrMissingRequiredField, Aggregate: "STATUS", Field: "CODE"}
	}
	serr := &StatusError{Status: *s, Holder: h.ResponseName(), MessageSet: set}
	if v.TolerateInfo && serr.Severity() == SeverityInfo {
		if v.OnStatus != nil {
			v.OnStatus(serr)
		} else {
			log.Println(serr)
		}
		return nil
	}
	return serr
}
