package tagged

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Transparent behaviors: formatting, parsing and JSON serialization of a
// wrapper are defined to be byte-identical to operating on the inner value
// directly. The wrapper only re-tags successes; failures pass through
// untouched.

// Format renders the inner value exactly as fmt.Sprint would render it
// unwrapped. Requires the CanFormat grant.
func Format[V any, T CanFormat](t Tagged[V, T]) string {
	return fmt.Sprint(t.v)
}

// Debug renders the inner value exactly as the %#v verb would render it
// unwrapped. Requires the CanDebug grant.
func Debug[V any, T CanDebug](t Tagged[V, T]) string {
	return fmt.Sprintf("%#v", t.v)
}

// TextParser constrains *V to the standard text-decoding interface so that
// Parse can delegate to the inner type's own parser.
type TextParser[V any] interface {
	*V
	encoding.TextUnmarshaler
}

// Parse decodes s with the inner type's UnmarshalText and tags the result.
// Text the inner type rejects is rejected with the inner type's own error.
// Requires the CanParse grant.
//
// The pointer type parameter is inferred:
//
//	gw, err := tagged.Parse[netip.Addr, GatewayTag]("192.168.0.1")
func Parse[V any, T CanParse, PV TextParser[V]](s string) (Tagged[V, T], error) {
	var v V
	if err := PV(&v).UnmarshalText([]byte(s)); err != nil {
		return Tagged[V, T]{}, err
	}
	return Tagged[V, T]{v: v}, nil
}

// Marshal encodes the inner value with encoding/json; the output is
// identical to marshaling the bare value. Requires the CanMarshal grant.
func Marshal[V any, T CanMarshal](t Tagged[V, T]) ([]byte, error) {
	return json.Marshal(t.v)
}

// Unmarshal decodes data with encoding/json and tags the result, passing
// decode failures through unchanged. Requires the CanUnmarshal grant.
func Unmarshal[V any, T CanUnmarshal](data []byte) (Tagged[V, T], error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return Tagged[V, T]{}, err
	}
	return Tagged[V, T]{v: v}, nil
}
