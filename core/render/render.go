// Package render walks a parsed API specification tree and produces the
// sequence of type symbols it defines, paired with their fully-qualified
// dotted identifiers.
package render

import (
	"iter"

	"github.com/apisnap-labs/apisnap/core/apidefs"
)

// Symbols returns a lazy, single-pass sequence over every type symbol
// defined by the given API groups, in deterministic pre-order: groups in
// input order, types in declaration order, each type before its nested
// definitions. Identifiers join the namespace and the nested type names
// with dots (e.g. "alarms.Alarm.Period").
//
// The sequence makes no uniqueness or kind guarantees; defects in the input
// tree are surfaced by the consumer.
func Symbols(groups []apidefs.GroupSpec) iter.Seq2[apidefs.TypeSpec, string] {
	return func(yield func(apidefs.TypeSpec, string) bool) {
		for _, group := range groups {
			if !walkTypes(group.Types, group.Namespace, yield) {
				return
			}
		}
	}
}

// walkTypes visits each type and its nested definitions depth-first.
// Returns false once the consumer stops the iteration.
func walkTypes(types []apidefs.TypeSpec, prefix string, yield func(apidefs.TypeSpec, string) bool) bool {
	for _, spec := range types {
		id := prefix + "." + spec.Name
		if !yield(spec, id) {
			return false
		}
		if !walkTypes(spec.Types, id, yield) {
			return false
		}
	}
	return true
}
