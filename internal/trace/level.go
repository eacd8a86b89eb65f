package trace

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError               // ring only, dumped on failure
	LevelPhase               // driver and pass spans
	LevelDetail              // plus one span per file
	LevelDebug               // plus parser recovery points
)

var levelNames = []string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

func (l Level) String() string { return nameOf(levelNames, l) }

// ParseLevel is case-insensitive; the empty string means off.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelOff, nil
	}
	return parseName("trace level", s, levelNames, LevelOff)
}

// ShouldEmit reports whether events of scope pass at level l.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelOff:
		return false
	case LevelError:
		return scope <= ScopePass
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	}
	return false
}
