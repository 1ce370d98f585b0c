package schema

// Custom string types for type safety.
type (
	// EventCategory is the kind of activity an event records.
	EventCategory string

	// OutputMode represents the format of the output.
	OutputMode string

	// SmoothingMethod selects how curve points are joined.
	SmoothingMethod string

	// SourceKind selects where activity feeds are loaded from.
	SourceKind string
)

// All event categories supported.
const (
	CommitEvent      EventCategory = "commit"
	PullRequestEvent EventCategory = "pull_request"
	IssueEvent       EventCategory = "issue"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
)

// All smoothing methods supported.
const (
	SimpleSmoothing     SmoothingMethod = "simple" // default
	CatmullRomSmoothing SmoothingMethod = "catmull-rom"
)

// All feed sources supported.
const (
	FileSource SourceKind = "file" // default
	GitSource  SourceKind = "git"
)

// AllEventCategories returns the categories in display order.
var AllEventCategories = []EventCategory{CommitEvent, PullRequestEvent, IssueEvent}

// ValidEventCategories lists all valid event categories.
var ValidEventCategories = map[EventCategory]struct{}{
	CommitEvent:      {},
	PullRequestEvent: {},
	IssueEvent:       {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
}

// ValidSmoothingMethods lists all valid smoothing methods.
var ValidSmoothingMethods = map[SmoothingMethod]struct{}{
	SimpleSmoothing:     {},
	CatmullRomSmoothing: {},
}

// ValidSourceKinds lists all valid feed sources.
var ValidSourceKinds = map[SourceKind]struct{}{
	FileSource: {},
	GitSource:  {},
}
