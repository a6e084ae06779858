package snapshot

import (
	"log/slog"
	"sort"

	"github.com/apisnap-labs/apisnap/core/apidefs"
)

// TagResolver computes the complete ordered tag list for a symbol. It must
// be deterministic and side-effect-free.
type TagResolver interface {
	ResolveTags(spec apidefs.TypeSpec, id string) []apidefs.Tag
}

// Record is the minimal per-symbol output: the deprecation flag is emitted
// only when true, never as an explicit false.
type Record struct {
	Deprecated bool `json:"deprecated,omitempty"`
}

// Output maps each retained symbol identifier to its record.
type Output map[string]Record

// Stats are the run counters reported in the summary line.
type Stats struct {
	Stable     int
	Deprecated int
	Skipped    int
}

// LogSummary emits the one diagnostic line for the run: counts plus the
// input's definitions-revision marker, echoed verbatim.
func (s Stats) LogSummary(logger *slog.Logger, revision string) {
	logger.Info("stable API snapshot",
		"stable", s.Stable,
		"deprecated", s.Deprecated,
		"skipped", s.Skipped,
		"revision", revision,
	)
}

// Classify filters the collected table down to stable-channel symbols and
// builds their output records. Symbols with no channel tag or an explicit
// "stable" tag are kept; every other channel value is skipped. A pure fold
// over the table: the counters are returned, not accumulated globally.
//
// Identifiers are visited in ascending byte-wise order so resolver calls,
// and any diagnostics they produce, are deterministic across runs.
func Classify(table Table, resolver TagResolver) (Output, Stats) {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(Output, len(ids))
	var stats Stats

	for _, id := range ids {
		spec := table[id]

		if ch, found := channelTag(resolver.ResolveTags(spec, id)); found && ch != string(apidefs.ChannelStable) {
			stats.Skipped++
			continue
		}

		var rec Record
		if spec.Deprecated {
			rec.Deprecated = true
			stats.Deprecated++
		}
		out[id] = rec
		stats.Stable++
	}

	return out, stats
}

// channelTag extracts the channel tag value from a resolved tag list.
func channelTag(resolved []apidefs.Tag) (string, bool) {
	for _, tag := range resolved {
		if tag.Name == apidefs.TagChannel {
			return tag.Value, true
		}
	}
	return "", false
}
