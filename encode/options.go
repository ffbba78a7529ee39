package encode

import "libra/report"

// Object is a JSON object node: the wire format of every encoded type,
// constant, value, and instruction is "one discriminant key per variant"
// (spec.md §3), which maps naturally onto an untyped map rather than a
// family of Go structs with omitempty tags.
type Object = map[string]interface{}

// Array is a JSON array node.
type Array = []interface{}

// Options configures a single encode.Module call.
type Options struct {
	// LogLevel controls how chatty the reporter is; warnings are always
	// collected regardless of level (spec.md §7.2).
	LogLevel report.Level

	// IntBitsLimit, when non-zero, is an extra ceiling on integer
	// constant bit width. Spec.md §9's open question is resolved in
	// favor of unlimited decimal-string encoding by default (IntBitsLimit
	// == 0); a caller that still wants a hard ceiling can set this.
	IntBitsLimit uint64
}
