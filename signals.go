package ofx

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for OFX events.
var (
	SignalMarshalComplete   = capitan.NewSignal("ofx.marshal.complete", "Document encoded")
	SignalUnmarshalComplete = capitan.NewSignal("ofx.unmarshal.complete", "Document decoded")
	SignalSendStart         = capitan.NewSignal("ofx.send.start", "Request sent to an institution")
	SignalSendComplete      = capitan.NewSignal("ofx.send.complete", "Response received from an institution")
	SignalValidateComplete  = capitan.NewSignal("ofx.validate.complete", "Response correlated with its request")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyVersion     = capitan.NewIntKey("version")
	KeyURL         = capitan.NewStringKey("url")
	KeySize        = capitan.NewIntKey("size")
	KeyMessageSets = capitan.NewIntKey("message_sets")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitMarshalComplete emits an event when a document has been encoded.
func emitMarshalComplete(v any, version Version, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(fmt.Sprintf("%T", v)),
		KeyVersion.Field(int(version)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalMarshalComplete, fields...)
	}
}

// emitUnmarshalComplete emits an event when a document has been decoded.
func emitUnmarshalComplete(v any, version Version, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(fmt.Sprintf("%T", v)),
		KeyVersion.Field(int(version)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalUnmarshalComplete, fields...)
	}
}

// emitSendStart emits an event when a request leaves for an institution.
func emitSendStart(ctx context.Context, url string, size int) {
	capitan.Emit(ctx, SignalSendStart,
		KeyURL.Field(url),
		KeySize.Field(size),
	)
}

// emitSendComplete emits an event when the institution has answered.
func emitSendComplete(ctx context.Context, url string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyURL.Field(url),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSendComplete, fields...)
	}
}

// emitValidateComplete emits an event when a response has been correlated.
func emitValidateComplete(ctx context.Context, sets int, err error) {
	fields := []capitan.Field{
		KeyMessageSets.Field(sets),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalValidateComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalValidateComplete, fields...)
	}
}
