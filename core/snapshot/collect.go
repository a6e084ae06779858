// Package snapshot builds the stable-channel symbol table: it collects the
// symbols discovered by the renderer, classifies each one by release
// channel, and assembles the deterministic output record set.
package snapshot

import (
	"errors"
	"fmt"
	"iter"

	"github.com/apisnap-labs/apisnap/core/apidefs"
)

// Traversal-integrity errors. Any of these aborts the run: they indicate a
// defect in the input data or the traversal, and a partial snapshot is worse
// than no snapshot.
var (
	ErrDuplicateSymbol = errors.New("duplicate symbol identifier")
	ErrVoidSymbol      = errors.New("void-kind symbol reached the collector")
	ErrEmptyIdentifier = errors.New("empty symbol identifier")
)

// Table is the collected symbol table, keyed by fully-qualified identifier.
// It is built exactly once per run and read-only after Collect returns.
type Table map[string]apidefs.TypeSpec

// Collect consumes the rendered symbol sequence and accumulates the symbol
// table, enforcing that every identifier is observed at most once and that
// no sentinel void-kind symbol was delivered.
func Collect(symbols iter.Seq2[apidefs.TypeSpec, string]) (Table, error) {
	table := make(Table)
	for spec, id := range symbols {
		if err := observe(table, spec, id); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// observe records one (spec, id) pair, failing on any integrity violation.
func observe(table Table, spec apidefs.TypeSpec, id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if spec.Kind == apidefs.KindVoid {
		return fmt.Errorf("%w: %s", ErrVoidSymbol, id)
	}
	if _, seen := table[id]; seen {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, id)
	}
	table[id] = spec
	return nil
}
