// Package testkit checks the structural guarantees every parse result
// must meet, whatever the input. Parser, driver and fuzz tests share it.
package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/source"
)

// CheckTokenCoverage walks root and verifies that every token of the
// stream appears exactly once, in stream order, and that each missing
// child sits at the gap before the next real token.
func CheckTokenCoverage(tr *cst.Tree, root cst.NodeID) error {
	if tr == nil || tr.Node(root) == nil {
		return errors.New("nil tree or root")
	}
	var next uint32
	var err error
	cst.Walk(tr, root, cst.ListenerFuncs{OnToken: func(_ *cst.Tree, c cst.Child) {
		if err != nil {
			return
		}
		switch {
		case c.IsMissing() && c.Token != next:
			err = fmt.Errorf("missing %s at token %d, expected gap at %d", c.TokKind, c.Token, next)
		case c.IsToken() && c.Token != next:
			err = fmt.Errorf("token %d visited, expected %d", c.Token, next)
		case c.IsToken():
			next++
		}
	}})
	if err != nil {
		return err
	}
	total, cerr := safecast.Conv[uint32](len(tr.Tokens))
	if cerr != nil {
		return fmt.Errorf("token count: %w", cerr)
	}
	if next != total {
		return fmt.Errorf("%d of %d tokens reachable from the root", next, total)
	}
	return nil
}

// CheckNodeRanges verifies that every node's token range is exactly the
// concatenation of its children's ranges.
func CheckNodeRanges(tr *cst.Tree, root cst.NodeID) error {
	var errs []error
	cst.Walk(tr, root, cst.ListenerFuncs{OnEnter: func(t *cst.Tree, id cst.NodeID) {
		n := t.Node(id)
		if n.First > n.End {
			errs = append(errs, fmt.Errorf("%s#%d: first %d after end %d", n.Kind, id, n.First, n.End))
			return
		}
		if len(n.Children) == 0 {
			return
		}
		pos := n.First
		for i, c := range n.Children {
			first, end := t.ChildRange(c)
			if first != pos {
				errs = append(errs, fmt.Errorf("%s#%d: child %d starts at %d, expected %d", n.Kind, id, i, first, pos))
				return
			}
			pos = end
		}
		if pos != n.End {
			errs = append(errs, fmt.Errorf("%s#%d: children end at %d, node ends at %d", n.Kind, id, pos, n.End))
		}
	}})
	return errors.Join(errs...)
}

// CheckRoundTrip verifies that the tree under root reproduces content.
func CheckRoundTrip(tr *cst.Tree, root cst.NodeID, content []byte) error {
	got := tr.Reconstruct(root)
	if got == string(content) {
		return nil
	}
	i := 0
	for i < len(got) && i < len(content) && got[i] == content[i] {
		i++
	}
	return fmt.Errorf("round trip differs at byte %d of %d (got %d bytes)", i, len(content), len(got))
}

// CheckDiagnostics verifies that every diagnostic points into the file and,
// unless it carries no token (-1, as lexical ones do), into the stream.
func CheckDiagnostics(ds []diag.Diagnostic, tr *cst.Tree, file *source.File) error {
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("content size: %w", err)
	}
	var errs []error
	for i, d := range ds {
		if d.Token < -1 || d.Token >= len(tr.Tokens) {
			errs = append(errs, fmt.Errorf("diagnostic %d (%s): token %d out of range", i, d.Code.ID(), d.Token))
		}
		if d.Primary.Start > d.Primary.End || d.Primary.End > size {
			errs = append(errs, fmt.Errorf("diagnostic %d (%s): span %v outside file", i, d.Code.ID(), d.Primary))
		}
	}
	return errors.Join(errs...)
}

// CheckAll runs every check against one parse of file.
func CheckAll(tr *cst.Tree, root cst.NodeID, ds []diag.Diagnostic, file *source.File) error {
	return errors.Join(
		CheckTokenCoverage(tr, root),
		CheckNodeRanges(tr, root),
		CheckRoundTrip(tr, root, file.Content),
		CheckDiagnostics(ds, tr, file),
	)
}
