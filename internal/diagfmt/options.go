package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto is relative to the file set base directory when possible.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses the path the file was loaded with.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// ShowExpected appends the expected token set to each message.
	ShowExpected bool
}

// JSONOpts configures JSON output of diagnostics and trees.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // truncates the output, not the Bag
	IncludeNotes     bool
}

// TreeOpts configures the indented tree dump.
type TreeOpts struct {
	Color bool
	// Spans adds the byte range of every node and token.
	Spans bool
	// Trivia prints leading whitespace and comments under each token.
	Trivia bool
}
