// Package version holds build metadata for the balparse CLI. The variables
// are overridden with -ldflags at release time.
package version

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	Version    = "0.4.0-dev"
	GitCommit  = ""
	GitMessage = ""
	BuildDate  = ""
)

// Grammar is the language revision the parser accepts.
const Grammar = "0.990"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
	labelColor = color.New(color.Faint)
)

// Colored renders Version with each numeric component in its own color.
// Pre-release suffixes are left plain. color.NoColor turns it off.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Print writes the banner shown by balparse version.
func Print(w io.Writer) error {
	lines := []string{fmt.Sprintf("balparse %s (grammar %s)", Colored(), Grammar)}
	if GitCommit != "" {
		c := GitCommit
		if GitMessage != "" {
			c += " " + GitMessage
		}
		lines = append(lines, labelColor.Sprint("commit: ")+c)
	}
	if BuildDate != "" {
		lines = append(lines, labelColor.Sprint("built:  ")+BuildDate)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
