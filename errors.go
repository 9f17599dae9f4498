package overlay

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by how the caller is expected to react to it.
type Kind uint8

const (
	// KindUnknown is reported for errors that carry no classification.
	KindUnknown Kind = iota

	// KindFatal marks startup failures (window or device creation).
	// The process cannot render and must not retry internally.
	KindFatal

	// KindTransient marks conditions the frame loop recovers from on its own,
	// such as device loss during present.
	KindTransient

	// KindDegraded marks soft failures where defaults are kept and work
	// continues, such as an unparsable settings file.
	KindDegraded
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFatal:
		return "fatal"
	case KindTransient:
		return "transient"
	case KindDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Op names the operation that failed
// (e.g. "device.Create", "settings.Load").
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("overlay: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("overlay: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal wraps err as a KindFatal failure of op. Returns nil if err is nil.
func Fatal(op string, err error) error {
	return wrap(KindFatal, op, err)
}

// Transient wraps err as a KindTransient failure of op. Returns nil if err is nil.
func Transient(op string, err error) error {
	return wrap(KindTransient, op, err)
}

// Degraded wraps err as a KindDegraded failure of op. Returns nil if err is nil.
func Degraded(op string, err error) error {
	return wrap(KindDegraded, op, err)
}

func wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the classification of the outermost *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsFatal reports whether err is classified as KindFatal.
func IsFatal(err error) bool {
	return KindOf(err) == KindFatal
}
