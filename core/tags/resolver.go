// Package tags computes per-symbol classification tags from the feature
// entries declared in the input payload.
package tags

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/apisnap-labs/apisnap/core/apidefs"
	"github.com/apisnap-labs/apisnap/core/snapshot"
)

var _ snapshot.TagResolver = (*Resolver)(nil)

// Resolver resolves the ordered tag list for a symbol. It is built once per
// run from the payload's feature entries and is read-only afterward.
type Resolver struct {
	features map[string]apidefs.FeatureSpec
}

// NewResolver indexes the given feature entries by name. When the same name
// appears more than once, the entry with the earliest valid semver
// min_version wins; an entry with a valid min_version beats one without;
// otherwise the first entry in input order is kept.
func NewResolver(features []apidefs.FeatureSpec) *Resolver {
	indexed := make(map[string]apidefs.FeatureSpec, len(features))
	for _, f := range features {
		existing, ok := indexed[f.Name]
		if !ok {
			indexed[f.Name] = f
			continue
		}
		if earlierFeature(f, existing) {
			indexed[f.Name] = f
		}
	}
	return &Resolver{features: indexed}
}

// earlierFeature reports whether candidate should replace existing in the
// feature index.
func earlierFeature(candidate, existing apidefs.FeatureSpec) bool {
	candValid := semver.IsValid(canonicalVersion(candidate.MinVersion))
	existValid := semver.IsValid(canonicalVersion(existing.MinVersion))

	switch {
	case candValid && !existValid:
		return true
	case !candValid:
		return false
	default:
		return semver.Compare(canonicalVersion(candidate.MinVersion), canonicalVersion(existing.MinVersion)) < 0
	}
}

// canonicalVersion normalizes a min_version for semver comparison. Feature
// entries conventionally omit the "v" prefix.
func canonicalVersion(v string) string {
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// ResolveTags returns the complete ordered tag list for the symbol: the
// channel tag first (when one applies), then since, then deprecated.
// Deterministic and side-effect-free.
//
// Channel resolution precedence: the spec's own channel override, then the
// feature entry matching id exactly, then the nearest dotted-prefix ancestor
// entry. With no match at all, no channel tag is emitted.
func (r *Resolver) ResolveTags(spec apidefs.TypeSpec, id string) []apidefs.Tag {
	var out []apidefs.Tag

	feature, found := r.lookup(id)

	switch {
	case spec.Channel != "":
		out = append(out, apidefs.Tag{Name: apidefs.TagChannel, Value: string(spec.Channel)})
	case found && feature.Channel != "":
		out = append(out, apidefs.Tag{Name: apidefs.TagChannel, Value: string(feature.Channel)})
	}

	if found && feature.MinVersion != "" {
		out = append(out, apidefs.Tag{Name: apidefs.TagSince, Value: feature.MinVersion})
	}

	if spec.Deprecated {
		out = append(out, apidefs.Tag{Name: apidefs.TagDeprecated, Value: "true"})
	}

	return out
}

// lookup finds the feature entry governing id: exact match first, then
// successively shorter dotted prefixes ("a.b.c" → "a.b" → "a").
func (r *Resolver) lookup(id string) (apidefs.FeatureSpec, bool) {
	name := id
	for {
		if f, ok := r.features[name]; ok {
			return f, true
		}
		dot := strings.LastIndex(name, ".")
		if dot < 0 {
			return apidefs.FeatureSpec{}, false
		}
		name = name[:dot]
	}
}
