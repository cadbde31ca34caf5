package response

import (
	"encoding/json"
	"time"
)

// DefaultSuccessMessage is used when Success is called without a message.
const DefaultSuccessMessage = "Operation completed successfully"

// Now stamps envelopes. Tests may replace it to pin the clock.
var Now = time.Now

// Envelope is the uniform body of every API response. The success flag decides
// which of data or errors carries meaning; the pairing is fixed at construction
// because the only way to build one is Success or Failure.
type Envelope[T any] struct {
	success   bool
	message   string
	data      T
	errors    any
	timestamp time.Time
}

// Empty is the payload of responses that carry no data.
type Empty struct{}

// Success wraps data in a successful envelope. The default message applies only
// when no message is passed; an explicit empty one is kept.
func Success[T any](data T, message ...string) Envelope[T] {
	msg := DefaultSuccessMessage
	if len(message) > 0 {
		msg = message[0]
	}
	return Envelope[T]{
		success:   true,
		message:   msg,
		data:      data,
		timestamp: Now().UTC(),
	}
}

// Failure builds a failed envelope; data stays at its zero value.
func Failure[T any](message string, errs any) Envelope[T] {
	return Envelope[T]{
		message:   message,
		errors:    errs,
		timestamp: Now().UTC(),
	}
}

// SuccessEmpty is Success for endpoints without a payload.
func SuccessEmpty(message ...string) Envelope[Empty] {
	return Success(Empty{}, message...)
}

// FailureEmpty is Failure for endpoints without a payload.
func FailureEmpty(message string, errs any) Envelope[Empty] {
	return Failure[Empty](message, errs)
}

func (e Envelope[T]) Success() bool        { return e.success }
func (e Envelope[T]) Message() string      { return e.message }
func (e Envelope[T]) Data() T              { return e.data }
func (e Envelope[T]) Errors() any          { return e.errors }
func (e Envelope[T]) Timestamp() time.Time { return e.timestamp }

// wireEnvelope is the JSON shape. Data is a pointer so a failure serializes it as null.
type wireEnvelope[T any] struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      *T        `json:"data"`
	Timestamp time.Time `json:"timestamp"`
	Errors    any       `json:"errors,omitempty"`
}

func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	w := wireEnvelope[T]{
		Success:   e.success,
		Message:   e.message,
		Timestamp: e.timestamp,
		Errors:    e.errors,
	}
	if e.success {
		d := e.data
		w.Data = &d
	}
	return json.Marshal(w)
}

func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var w wireEnvelope[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	var data T
	if w.Data != nil {
		data = *w.Data
	}
	*e = Envelope[T]{
		success:   w.Success,
		message:   w.Message,
		data:      data,
		errors:    w.Errors,
		timestamp: w.Timestamp,
	}
	return nil
}
