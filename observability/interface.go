package observability

import "time"

// Observer receives one event per completed store operation. It lets
// callers plug in metrics, tracing or audit logging without the store
// depending on any of them.
//
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveOperation is called after an operation returns.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a completed store operation.
type OperationContext struct {
	// Component is the package that performed the operation, e.g. "typedstore".
	Component string

	// Operation is one of "get", "set", "remove", "clear", "has".
	Operation string

	// Resource is the logical key the operation targeted. Empty for clear.
	Resource string

	// SubResource is the key actually used in the backing store,
	// i.e. the logical key with the namespace prefix applied.
	SubResource string

	// Duration is the wall time of the operation.
	Duration time.Duration

	// Error is the error returned to the caller, nil on success.
	Error error

	// Size is the length in bytes of the encoded value read or written.
	Size int64

	// Metadata carries operation-specific details such as the value
	// source of a get ("stored", "default", "absent").
	Metadata map[string]interface{}
}

// Outcome classifies the context as "success" or "error".
func (c OperationContext) Outcome() string {
	if c.Error != nil {
		return "error"
	}
	return "success"
}
