package fswalk

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"pathfinder/internal/arena"
	"pathfinder/internal/trace"
)

// Options controls a walk.
type Options struct {
	Sort           bool // sort siblings by name instead of directory order
	FollowSymlinks bool // descend into symlinks that point at directories
	Hidden         bool // include names starting with '.'
	Normalize      bool // NFC-normalise display names
	MaxDepth       int  // 0 = unlimited; 1 = root and its entries
	Jobs           int  // concurrent directory listings, 0 = GOMAXPROCS

	// Progress is called on the walking goroutine after each directory
	// has been attached to the tree.
	Progress func(Progress)
}

// DefaultOptions mirrors a plain recursive listing: directory order,
// symlinks followed, hidden entries included.
func DefaultOptions() Options {
	return Options{
		FollowSymlinks: true,
		Hidden:         true,
		Normalize:      true,
	}
}

// Progress reports how far a walk has got.
type Progress struct {
	Dir     string
	Dirs    int
	Entries int
}

type child struct {
	entry   Entry
	descend bool
}

type walker struct {
	ctx     context.Context
	opts    Options
	tree    *arena.Tree[Entry]
	tracer  trace.Tracer
	span    uint64
	dirs    int
	entries int
}

// Build walks path recursively and returns the tree of its entries. The
// root node is path itself; every directory's entries are attached as its
// children. Any filesystem error or context cancellation aborts the whole
// walk: Build never returns a partially built tree.
func Build(ctx context.Context, path string, opts Options) (*arena.Tree[Entry], error) {
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid max depth %d", opts.MaxDepth)
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "walk", trace.CurrentSpan(ctx))
	w := &walker{
		ctx:    ctx,
		opts:   opts,
		tree:   arena.New[Entry](),
		tracer: tracer,
		span:   span.ID(),
	}

	tree, err := w.run(path)
	if err != nil {
		span.End("error: " + err.Error())
		return nil, err
	}
	span.WithExtra("nodes", strconv.Itoa(tree.Len())).
		WithExtra("dirs", strconv.Itoa(w.dirs)).
		End("")
	return tree, nil
}

func (w *walker) run(path string) (*arena.Tree[Entry], error) {
	if err := w.ctx.Err(); err != nil {
		return nil, err
	}
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	root := w.classify(path, DisplayName(path), info.Mode())
	rootID := w.tree.SetRoot(root.entry)
	if !root.descend {
		return w.tree, nil
	}
	listing, err := w.list(path)
	if err != nil {
		return nil, err
	}
	if err := w.attach(rootID, path, listing, 1); err != nil {
		return nil, err
	}
	return w.tree, nil
}

// attach adds listing under parent and recurses into its subdirectories.
// depth is the depth of the entries in listing (the root's entries are 1).
// Subdirectory listings are read concurrently; the tree is only touched on
// the calling goroutine.
func (w *walker) attach(parent arena.NodeID, dir string, listing []child, depth int) error {
	span := trace.Begin(w.tracer, trace.ScopeDir, "dir:"+dir, w.span)

	ids := make([]arena.NodeID, len(listing))
	for i, c := range listing {
		ids[i] = w.tree.AddChild(parent, c.entry)
		trace.Point(w.tracer, trace.ScopeEntry, c.entry.Name, c.entry.Kind.String(), span.ID())
	}
	w.dirs++
	w.entries += len(listing)
	if w.opts.Progress != nil {
		w.opts.Progress(Progress{Dir: dir, Dirs: w.dirs, Entries: w.entries})
	}

	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		span.WithExtra("entries", strconv.Itoa(len(listing))).End("depth limit")
		return nil
	}

	sub := make([][]child, len(listing))
	g, gctx := errgroup.WithContext(w.ctx)
	g.SetLimit(w.opts.Jobs)
	for i, c := range listing {
		if !c.descend {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := w.list(c.entry.Path)
			if err != nil {
				return err
			}
			sub[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End("error")
		return err
	}
	span.WithExtra("entries", strconv.Itoa(len(listing))).End("")

	for i, c := range listing {
		if !c.descend {
			continue
		}
		if err := w.attach(ids[i], c.entry.Path, sub[i], depth+1); err != nil {
			return err
		}
	}
	return nil
}

// list reads and classifies the entries of dir. It runs on listing
// goroutines and must not touch the tree.
func (w *walker) list(dir string) ([]child, error) {
	if err := w.ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	entries, err := f.ReadDir(-1)
	closeErr := f.Close()
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, closeErr)
	}

	out := make([]child, 0, len(entries))
	for _, de := range entries {
		name := de.Name()
		if !w.opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, w.classify(filepath.Join(dir, name), name, de.Type()))
	}
	if w.opts.Sort {
		slices.SortStableFunc(out, func(a, b child) int {
			return strings.Compare(a.entry.Name, b.entry.Name)
		})
	}
	return out, nil
}

// classify builds the Entry for path and decides whether the walk should
// descend into it. A symlink is a leaf when its target cannot be resolved
// or when the target is an ancestor of the link.
func (w *walker) classify(path, name string, mode fs.FileMode) child {
	if w.opts.Normalize {
		name = norm.NFC.String(name)
	}
	e := Entry{Name: name, Path: path}
	descend := false
	switch {
	case mode.IsDir():
		e.Kind = KindDir
		descend = true
	case mode&fs.ModeSymlink != 0:
		e.Kind = KindSymlink
		if w.opts.FollowSymlinks {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				descend = !linksToAncestor(path)
			}
		}
	case mode.IsRegular():
		e.Kind = KindFile
	default:
		e.Kind = KindOther
	}
	return child{entry: e, descend: descend}
}

func linksToAncestor(link string) bool {
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		return true
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(link))
	if err != nil {
		return true
	}
	rel, err := filepath.Rel(target, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
