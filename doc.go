// Package tagged provides branded ("tagged") variants of ordinary Go values:
// distinct, mutually non-assignable types that share the same underlying
// representation and cost nothing at runtime.
//
// A Tagged[V, T] holds exactly one value of type V. The brand type T is a
// phantom parameter: it stores no data and exists only to make two wrappers
// with different brands incompatible at compile time.
//
//	type PasswordTag struct{}
//	type UsernameTag struct{}
//
//	type Password = tagged.Tagged[string, PasswordTag]
//	type Username = tagged.Tagged[string, UsernameTag]
//
//	pw := tagged.New[string, PasswordTag]("supersecret")
//	var u Username = pw // does not compile: different brands
//	var s string = pw   // does not compile: branded value is not a string
//
// Behaviors beyond construction are opt-in. Each behavior is gated on a
// marker interface from a fixed catalogue (CanEqual, CanClone, CanFormat,
// ...); a brand type carries a marker by declaring the corresponding empty
// method. Operations are package-level generic functions constrained on
// those markers, so using a behavior the brand never granted is rejected by
// the compiler, not at runtime:
//
//	pw := tagged.New[string, PasswordTag]("supersecret")
//	_ = tagged.Format(pw) // does not compile unless PasswordTag has CanFormat
//
// Grants are normally generated. Annotate the brand type with declaration
// lists in struct tags and run the taggen tool:
//
//	//go:generate go run github.com/ecordell/tagged/cmd/taggen -output=tags_gen.go .
//	type HostTag struct {
//		_ struct{} `implement:"clone,equal,hash" transparent:"format,parse" capability:"inner,from"`
//	}
//
// taggen validates every name against the catalogue and emits one empty
// marker method per grant. The standalone declaration `permissive:"true"`
// grants the entire catalogue and must be the only declaration on the type;
// the same effect is available without generation by embedding Permissive
// in the brand type.
//
// Behaviors marked transparent (Format, Debug, Parse, Marshal, Unmarshal)
// are byte-for-byte pass-throughs: operating on the wrapper is defined to
// produce exactly what operating on the inner value would, with failures
// propagated unchanged and successes re-tagged.
package tagged
