package diagfmt

import "github.com/fatih/color"

// palette holds the colors used by the text formats. Each color is forced
// on or off explicitly so that output does not depend on the global
// color.NoColor detection.
type palette struct {
	errorSev *color.Color
	warnSev  *color.Color
	infoSev  *color.Color
	code     *color.Color
	path     *color.Color
	caret    *color.Color
	note     *color.Color
	node     *color.Color
	token    *color.Color
	text     *color.Color
	missing  *color.Color
	errNode  *color.Color
	dim      *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		errorSev: color.New(color.FgRed, color.Bold),
		warnSev:  color.New(color.FgYellow, color.Bold),
		infoSev:  color.New(color.FgBlue, color.Bold),
		code:     color.New(color.FgMagenta),
		path:     color.New(color.Bold),
		caret:    color.New(color.FgRed, color.Bold),
		note:     color.New(color.FgCyan),
		node:     color.New(color.FgCyan, color.Bold),
		token:    color.New(color.FgGreen),
		text:     color.New(color.FgYellow),
		missing:  color.New(color.FgRed, color.Italic),
		errNode:  color.New(color.FgRed, color.Bold),
		dim:      color.New(color.Faint),
	}
	for _, c := range []*color.Color{
		p.errorSev, p.warnSev, p.infoSev, p.code, p.path, p.caret, p.note,
		p.node, p.token, p.text, p.missing, p.errNode, p.dim,
	} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
