package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/diagfmt"
	"balparse/internal/source"
	"balparse/internal/token"
	"balparse/internal/version"
)

// cacheSchema is bumped whenever cachePayload changes shape.
const cacheSchema uint16 = 1

// DiskCache stores parse results on disk keyed by file content, so an
// unchanged file is not lexed or parsed again. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema      uint16             `msgpack:"schema"`
	Tree        diagfmt.PackedFile `msgpack:"tree"`
	Diagnostics []cachedDiagnostic `msgpack:"diagnostics,omitempty"`
}

type cachedDiagnostic struct {
	Severity uint8        `msgpack:"sev"`
	Code     uint16       `msgpack:"code"`
	Kind     uint8        `msgpack:"kind"`
	Message  string       `msgpack:"msg"`
	Start    uint32       `msgpack:"s"`
	End      uint32       `msgpack:"e"`
	Token    int          `msgpack:"tok"`
	Expected []uint8      `msgpack:"exp,omitempty"`
	Notes    []cachedNote `msgpack:"notes,omitempty"`
}

type cachedNote struct {
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
	Msg   string `msgpack:"m"`
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app, or ~/.cache/app.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// cacheKey covers the content and the grammar revision, so a parser
// upgrade never serves stale trees.
func cacheKey(f *source.File) string {
	h := sha256.New()
	h.Write([]byte(version.Grammar))
	h.Write([]byte{0})
	h.Write([]byte(version.Version))
	h.Write([]byte{0})
	h.Write(f.Hash[:])
	return hex.EncodeToString(h.Sum(nil))
}

func (c *DiskCache) pathFor(key string) string {
	return filepath.Join(c.dir, "trees", key[:2], key+".mp")
}

// put writes the result for f. The file is written to a temporary name
// and renamed so readers never see a partial payload.
func (c *DiskCache) put(f *source.File, tr *cst.Tree, root cst.NodeID, diags []diag.Diagnostic) error {
	if c == nil {
		return nil
	}
	payload := cachePayload{
		Schema: cacheSchema,
		Tree:   diagfmt.Pack(tr, root, nil, nil, diagfmt.JSONOpts{}),
	}
	for _, d := range diags {
		cd := cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Kind:     uint8(d.Kind),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Token:    d.Token,
		}
		for _, k := range d.Expected {
			cd.Expected = append(cd.Expected, uint8(k))
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.pathFor(cacheKey(f))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err := msgpack.NewEncoder(tmp).Encode(&payload); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// get returns the cached tree and diagnostics for f. A missing entry is
// not an error; a corrupt one is.
func (c *DiskCache) get(f *source.File) (*cst.Tree, cst.NodeID, []diag.Diagnostic, bool, error) {
	if c == nil {
		return nil, cst.NoNodeID, nil, false, nil
	}
	c.mu.RLock()
	raw, err := os.ReadFile(c.pathFor(cacheKey(f)))
	c.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cst.NoNodeID, nil, false, nil
		}
		return nil, cst.NoNodeID, nil, false, err
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return nil, cst.NoNodeID, nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if payload.Schema != cacheSchema {
		return nil, cst.NoNodeID, nil, false, nil
	}
	tr, root, err := payload.Tree.Unpack(f.ID)
	if err != nil {
		return nil, cst.NoNodeID, nil, false, fmt.Errorf("cache entry: %w", err)
	}
	diags := make([]diag.Diagnostic, 0, len(payload.Diagnostics))
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Kind:     diag.Kind(cd.Kind),
			Message:  cd.Message,
			Primary:  source.Span{File: f.ID, Start: cd.Start, End: cd.End},
			Token:    cd.Token,
		}
		for _, k := range cd.Expected {
			d.Expected = append(d.Expected, token.Kind(k))
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: source.Span{File: f.ID, Start: n.Start, End: n.End}, Msg: n.Msg})
		}
		diags = append(diags, d)
	}
	return tr, root, diags, true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "trees"))
}
