// Package typedstore is a typed accessor layer over a string key-value
// store.
//
// A fixed set of keys is declared up front in a schema.Registry, each with
// a validator. Every write is validated before it is encoded as JSON and
// stored; every read decodes and validates what it finds. Keys with a
// default return it whenever nothing usable is stored.
//
// # Basic usage
//
//	reg := schema.MustRegistry(
//	    schema.Define("theme", schema.WithDefault(schema.Enum("light", "dark"),
//	        func() any { return "light" })),
//	    schema.Define("user", schema.MustFor[User]()),
//	)
//
//	store, err := typedstore.New(reg, memory.New(memory.Config{}), typedstore.Config{Prefix: "app"})
//	if err != nil {
//	    return err
//	}
//
//	v, err := store.Get(ctx, "theme") // v.Raw() == "light", v.Source() == SourceDefault
//	err = store.Set(ctx, "user", User{Name: "John", Age: 30})
//	// backend now holds "app:user" = {"name":"John","age":30}
//
// # Typed keys
//
// Key[T] pairs a key name with the Go type its value decodes into:
//
//	var UserKey = typedstore.NewKey[User]("user")
//
//	u, ok, err := typedstore.Get(ctx, store, UserKey)
//
// # Strict and lenient reads
//
// By default a stored value that is not valid JSON, or that fails its
// validator, makes Get return a *Error of kind KindParsing or
// KindValidation. With Config.Strict set to false, Get logs a warning and
// returns the default (or an absent Value) instead. Set always validates.
//
// # Errors
//
// Failures for a specific key are *Error values carrying the kind, the
// key, the offending value and the underlying cause:
//
//	if errors.Is(err, typedstore.ErrStorage) && errors.Is(err, kv.ErrQuotaExceeded) {
//	    // the backend is full; the previous value is still in place
//	}
//
// # Observability
//
// WithLogger, WithObserver and WithTracer attach a logger, an
// observability.Observer (see the metrics package) and a tracer. Each
// storage operation produces one observer event and one span.
package typedstore
