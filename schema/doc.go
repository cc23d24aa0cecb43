// Package schema holds the fixed mapping from logical key names to the
// validators for their values.
//
// A Validator has two capabilities: checking a decoded value, and optionally
// producing a default for keys that have nothing stored. Both are explicit
// methods, so any validation backend can be plugged in. The package ships
// three kinds of validators:
//
//   - SchemaValidator, backed by JSON Schema (github.com/google/jsonschema-go),
//     built from a *jsonschema.Schema, inferred from a Go type with For, or
//     created for closed value sets with Enum.
//   - Func, which adapts a plain function.
//   - WithDefault, which attaches a dynamically computed default to any
//     validator.
//
// A Registry is built once, in declaration order:
//
//	reg := schema.MustRegistry(
//	    schema.Define("theme", schema.WithDefault(schema.Enum("light", "dark"),
//	        func() any { return "light" })),
//	    schema.Define("user", schema.MustFor[User]()),
//	)
//
// Registries can also be loaded from a JSON document with LoadFile.
package schema
