package diagfmt

import (
	"encoding/json"
	"io"

	"balparse/internal/cst"
)

// EventJSON is one line of the event stream. Node events carry the node id
// and kind; token events carry the token index and the accepted kind.
type EventJSON struct {
	Event   string `json:"event"`
	Kind    string `json:"kind"`
	Node    uint32 `json:"node,omitempty"`
	Token   uint32 `json:"token,omitempty"`
	Text    string `json:"text,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

// FormatEvents writes the enter/token/exit sequence of root as NDJSON, the
// same sequence a parser listener observes.
func FormatEvents(w io.Writer, tr *cst.Tree, root cst.NodeID) error {
	enc := json.NewEncoder(w)
	for _, ev := range cst.Events(tr, root) {
		out := EventJSON{Event: ev.Kind.String()}
		switch ev.Kind {
		case cst.EventEnter, cst.EventExit:
			out.Kind = tr.Kind(ev.Node).String()
			out.Node = uint32(ev.Node)
		case cst.EventToken:
			tok := tr.Token(ev.Child)
			out.Kind = tok.Kind.String()
			out.Token = ev.Child.Token
			out.Text = tok.Text
			out.Missing = ev.Child.IsMissing()
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return nil
}
