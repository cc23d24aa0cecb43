package schema

// Validator checks a decoded value against an expected shape and optionally
// supplies a default value for keys that have nothing stored.
//
// Implementations must be safe for concurrent use and must not retain the
// values they are given.
type Validator interface {
	// Validate returns the validated, possibly normalized, value or an error
	// whose message describes why the value does not conform.
	Validate(value any) (any, error)

	// Default returns a freshly computed default value and true, or false
	// when the validator declares no default. It is called on every read
	// that needs a default, so returned maps and slices are never shared
	// between callers.
	Default() (any, bool)
}

// Func adapts a plain validation function to the Validator interface.
// The resulting validator declares no default; combine it with WithDefault
// to add one.
//
// Example:
//
//	positive := schema.Func(func(v any) (any, error) {
//	    n, ok := v.(float64)
//	    if !ok || n <= 0 {
//	        return nil, fmt.Errorf("expected a positive number, got %v", v)
//	    }
//	    return n, nil
//	})
func Func(fn func(value any) (any, error)) Validator {
	return funcValidator(fn)
}

type funcValidator func(value any) (any, error)

func (f funcValidator) Validate(value any) (any, error) { return f(value) }

func (f funcValidator) Default() (any, bool) { return nil, false }

// WithDefault returns a Validator that validates with v and reports the value
// produced by fn as its default. fn is invoked on every call to Default.
func WithDefault(v Validator, fn func() any) Validator {
	return &defaultingValidator{inner: v, fn: fn}
}

type defaultingValidator struct {
	inner Validator
	fn    func() any
}

func (d *defaultingValidator) Validate(value any) (any, error) {
	return d.inner.Validate(value)
}

func (d *defaultingValidator) Default() (any, bool) {
	if d.fn == nil {
		return d.inner.Default()
	}
	return d.fn(), true
}
