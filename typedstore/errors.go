package typedstore

import (
	"errors"
	"fmt"
)

// Kind classifies a store *Error.
type Kind string

const (
	// KindValidation means a value did not conform to its key's validator.
	KindValidation Kind = "validation"

	// KindParsing means stored text could not be decoded.
	KindParsing Kind = "parsing"

	// KindStorage means the backing store failed or rejected an operation.
	KindStorage Kind = "storage"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrValidation = errors.New("typedstore: validation error")
	ErrParsing    = errors.New("typedstore: parsing error")
	ErrStorage    = errors.New("typedstore: storage error")
)

var (
	// ErrUnknownKey is returned for keys that are not in the registry.
	ErrUnknownKey = errors.New("typedstore: unknown key")

	// ErrNoValue is returned by Value.Decode on an absent value.
	ErrNoValue = errors.New("typedstore: no value")

	ErrNilRegistry = errors.New("typedstore: nil registry")
	ErrNilBackend  = errors.New("typedstore: nil backend")
)

// Error is returned by store operations that fail for a specific key.
//
//	var serr *typedstore.Error
//	if errors.As(err, &serr) {
//	    log.Printf("key %s rejected %v", serr.Key, serr.Value)
//	}
type Error struct {
	Kind Kind

	// Key is the logical key, without prefix.
	Key string

	// Value is the offending value. For parsing errors it is the raw
	// stored text; for validation errors on read it is the decoded value.
	Value any

	// Message is a short description naming the key.
	Message string

	// Err is the underlying cause: a validator diagnostic, a decode error
	// or a backend error.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrParsing:
		return e.Kind == KindParsing
	case ErrStorage:
		return e.Kind == KindStorage
	}
	return false
}

func validationError(key string, value any, readPath bool, cause error) *Error {
	msg := fmt.Sprintf("invalid value for key %q", key)
	if readPath {
		msg = fmt.Sprintf("validation failed for key %q", key)
	}
	return &Error{Kind: KindValidation, Key: key, Value: value, Message: msg, Err: cause}
}

func parsingError(key, raw string, cause error) *Error {
	return &Error{
		Kind:    KindParsing,
		Key:     key,
		Value:   raw,
		Message: fmt.Sprintf("failed to parse stored value for key %q", key),
		Err:     cause,
	}
}

func storageError(key, action string, value any, cause error) *Error {
	return &Error{
		Kind:    KindStorage,
		Key:     key,
		Value:   value,
		Message: fmt.Sprintf("failed to %s value for key %q", action, key),
		Err:     cause,
	}
}

func unknownKey(key string) error {
	return fmt.Errorf("%w %q", ErrUnknownKey, key)
}
