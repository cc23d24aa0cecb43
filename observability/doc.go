// Package observability defines the hook a typed store reports its
// operations through.
//
// A store accepts an optional Observer and calls it once per operation
// after the operation finishes:
//
//	store, err := typedstore.New(reg, backend, cfg,
//	    typedstore.WithObserver(metricsObserver),
//	)
//
// Every event carries the logical key in Resource and the namespaced
// storage key in SubResource:
//
//	OperationContext{
//	    Component:   "typedstore",
//	    Operation:   "set",
//	    Resource:    "user",
//	    SubResource: "app:user",
//	    Duration:    40 * time.Microsecond,
//	    Size:        24, // encoded bytes written
//	}
//
// Several observers can be combined with Multi. Observers are invoked
// synchronously on the calling goroutine, so they should not block.
package observability
