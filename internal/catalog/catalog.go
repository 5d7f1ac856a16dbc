// Package catalog discovers sequence files under a root directory and
// loads their per-record lengths into an immutable, path-sorted
// collection. The catalog is built once, before the interactive loop
// starts, and is read-only afterwards.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/seqwell/seqscope/internal/seqfile"
)

// SequenceFile is one discovered file and the lengths of its records.
// Immutable once loaded.
type SequenceFile struct {
	path    string
	lengths []int
}

// Path returns the file path.
func (f *SequenceFile) Path() string { return f.path }

// Lengths returns a copy of the record lengths in file order. Callers
// get their own slice so the catalog stays immutable.
func (f *SequenceFile) Lengths() []int {
	out := make([]int, len(f.lengths))
	copy(out, f.lengths)
	return out
}

// Records returns the number of records in the file.
func (f *SequenceFile) Records() int { return len(f.lengths) }

// MinMax returns the smallest and largest record length, or (0, 0) for a
// file with no records.
func (f *SequenceFile) MinMax() (int, int) {
	if len(f.lengths) == 0 {
		return 0, 0
	}
	min, max := f.lengths[0], f.lengths[0]
	for _, l := range f.lengths[1:] {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	return min, max
}

// Catalog is the ordered, path-sorted set of discovered sequence files.
type Catalog struct {
	files []SequenceFile
	dirs  []string // directories visited during the walk, for Watch

	watcher *watcher
}

// Options controls discovery.
type Options struct {
	// Extensions filters the walk; defaults to seqfile.DefaultExtensions.
	Extensions []string
	// FollowSymlinks makes the walk descend into symlinked directories.
	FollowSymlinks bool
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return seqfile.DefaultExtensions
	}
	return o.Extensions
}

// New builds a catalog directly from per-file length lists, sorted by
// path ascending with duplicate paths collapsed (last one wins).
func New(lengthsByPath map[string][]int) *Catalog {
	files := make([]SequenceFile, 0, len(lengthsByPath))
	for path, lengths := range lengthsByPath {
		copied := make([]int, len(lengths))
		copy(copied, lengths)
		files = append(files, SequenceFile{path: path, lengths: copied})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })
	return &Catalog{files: files}
}

// Build walks root, parses every matching file, and returns the sorted
// catalog. It is a single blocking step: a single unreadable path or
// malformed file aborts the whole build, so the resulting analytics are
// never computed over a partial collection.
func Build(root string, opts Options) (*Catalog, error) {
	w := &walker{
		exts:           opts.extensions(),
		followSymlinks: opts.FollowSymlinks,
		seen:           make(map[string]bool),
	}
	if err := w.walk(root); err != nil {
		return nil, err
	}

	files := make([]SequenceFile, len(w.paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, path := range w.paths {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()
			lengths, err := seqfile.RecordLengths(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			files[i] = SequenceFile{path: path, lengths: lengths}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })
	deduped := files[:0]
	for i, f := range files {
		if i > 0 && f.path == files[i-1].path {
			continue
		}
		deduped = append(deduped, f)
	}

	return &Catalog{files: deduped, dirs: w.dirs}, nil
}

// Len returns the number of files in the catalog.
func (c *Catalog) Len() int { return len(c.files) }

// File returns the i-th file in path order.
func (c *Catalog) File(i int) *SequenceFile { return &c.files[i] }

// Files returns all files in path order.
func (c *Catalog) Files() []SequenceFile {
	out := make([]SequenceFile, len(c.files))
	copy(out, c.files)
	return out
}

// walker accumulates matching files and visited directories, following
// symbolic links without revisiting a directory twice.
type walker struct {
	exts           []string
	followSymlinks bool

	paths []string
	dirs  []string
	seen  map[string]bool
}

func (w *walker) matches(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range w.exts {
		if ext == e {
			return true
		}
	}
	return false
}

func (w *walker) walk(dir string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if w.seen[resolved] {
		return nil
	}
	w.seen[resolved] = true
	w.dirs = append(w.dirs, dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		isFile := entry.Type().IsRegular()
		if entry.Type()&os.ModeSymlink != 0 {
			if !w.followSymlinks {
				continue
			}
			info, err := os.Stat(full)
			if err != nil {
				return fmt.Errorf("stat %s: %w", full, err)
			}
			isDir = info.IsDir()
			isFile = info.Mode().IsRegular()
		}

		switch {
		case isDir:
			if err := w.walk(full); err != nil {
				return err
			}
		case isFile && w.matches(entry.Name()):
			w.paths = append(w.paths, full)
		}
	}
	return nil
}
