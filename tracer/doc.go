// Package tracer wraps an OpenTelemetry SDK tracer provider behind a small
// Tracer/Span API.
//
// A typed store started with typedstore.WithTracer opens one span per
// operation ("typedstore.get", "typedstore.set" and so on), tags it with
// the logical and storage keys and records the returned error:
//
//	t, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "prefs",
//	    EnableExport: true,
//	    Endpoint:     "localhost:4318",
//	    Insecure:     true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer t.Shutdown(context.Background())
//
// Without EnableExport spans are created and sampled but never leave the
// process, which is enough for log correlation through the logger
// package's *WithContext methods.
package tracer
