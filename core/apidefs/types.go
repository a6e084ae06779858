package apidefs

// Kind is the discriminant describing the shape of a type specification.
type Kind string

const (
	KindObject   Kind = "object"
	KindString   Kind = "string"
	KindInteger  Kind = "integer"
	KindNumber   Kind = "number"
	KindBoolean  Kind = "boolean"
	KindArray    Kind = "array"
	KindFunction Kind = "function"
	KindAny      Kind = "any"
	KindRef      Kind = "ref"

	// KindVoid is the sentinel "no value" kind. It appears inside function
	// signatures but never as a named type; one reaching the symbol
	// collector indicates a traversal defect.
	KindVoid Kind = "void"
)

// Channel identifies the release channel a symbol is exposed on.
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelBeta   Channel = "beta"
	ChannelDev    Channel = "dev"
)

// TypeSpec describes a single type symbol in an API group. Nested type
// definitions may appear at arbitrary depth under Types.
type TypeSpec struct {
	Name       string     `json:"name"`
	Kind       Kind       `json:"kind"`
	Deprecated bool       `json:"deprecated,omitempty"`
	Channel    Channel    `json:"channel,omitempty"`
	Types      []TypeSpec `json:"types,omitempty"`
}

// GroupSpec is one API group: a namespace and its top-level type definitions.
type GroupSpec struct {
	Namespace string     `json:"namespace"`
	Types     []TypeSpec `json:"types,omitempty"`
}

// FeatureSpec is one feature-flag entry controlling channel availability.
// Name is matched against symbol identifiers exactly, then by dotted-prefix
// ancestry. MinVersion, when present, is the earliest release carrying the
// feature.
type FeatureSpec struct {
	Name       string  `json:"name"`
	Channel    Channel `json:"channel,omitempty"`
	MinVersion string  `json:"min_version,omitempty"`
}

// Tag is one classification name/value pair produced by the tag resolver.
type Tag struct {
	Name  string
	Value string
}

// Tag names emitted by the resolver. The core pipeline only inspects
// TagChannel; the rest are informational.
const (
	TagChannel    = "channel"
	TagSince      = "since"
	TagDeprecated = "deprecated"
)

// Payload is the full input document: the API groups to traverse, the
// feature entries that feed the tag resolver, and the definitions-revision
// marker echoed in the run summary.
type Payload struct {
	Revision string        `json:"revision"`
	Groups   []GroupSpec   `json:"groups"`
	Features []FeatureSpec `json:"features,omitempty"`
}
