// Package renamer maps files to new names and carries the writes out.
//
// Two callers use it: the HTTP handler applies a client-supplied
// positional plan to uploaded bytes, and the CLI builds plans over a
// local directory of images (sequential, date, custom or clean mode)
// and renames in place.
package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Mode selects how a local rename plan is generated.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeDate       Mode = "date"
	ModeCustom     Mode = "custom"
	ModeClean      Mode = "clean"
)

// ParseMode validates a mode name from the CLI.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSequential, ModeDate, ModeCustom, ModeClean:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want sequential, date, custom or clean)", s)
}

// Options controls name generation for the local modes.
type Options struct {
	Pattern       string // base pattern, e.g. "product"
	CustomPattern string // template with {n} and {ext}, custom mode only
	StartNumber   int
	Prefix        string
	Suffix        string
	Padding       int
}

// DefaultOptions mirrors the defaults of the standalone tool.
func DefaultOptions() Options {
	return Options{Pattern: "product", StartNumber: 1, Padding: 3}
}

// Op is one planned rename within a directory.
type Op struct {
	OldPath string
	NewPath string
	OldName string
	NewName string
}

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {},
	".bmp": {}, ".webp": {}, ".tiff": {}, ".svg": {},
}

// imageFiles lists the regular files in dir with a recognized image
// extension, sorted by name.
func imageFiles(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var images []os.DirEntry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if _, ok := imageExtensions[ext]; ok {
			images = append(images, e)
		}
	}
	sort.Slice(images, func(i, j int) bool { return images[i].Name() < images[j].Name() })
	return images, nil
}

// numberedName builds {prefix}{pattern}_{number}{suffix}{ext} with the
// number zero-padded to opts.Padding.
func (o Options) numberedName(index int, ext string) string {
	number := fmt.Sprintf("%0*d", o.Padding, o.StartNumber+index)
	return o.Prefix + o.Pattern + "_" + number + o.Suffix + ext
}

// BuildPlan generates the rename plan for dir under the given mode.
// Plans never touch the filesystem; Execute applies them.
func BuildPlan(dir string, mode Mode, opts Options) ([]Op, error) {
	images, err := imageFiles(dir)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeSequential:
		return numberedPlan(dir, images, opts), nil
	case ModeDate:
		if err := sortByModTime(images); err != nil {
			return nil, err
		}
		return numberedPlan(dir, images, opts), nil
	case ModeCustom:
		if opts.CustomPattern == "" {
			return nil, fmt.Errorf("custom mode requires a custom pattern")
		}
		return customPlan(dir, images, opts), nil
	case ModeClean:
		return cleanPlan(dir, images)
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

func sortByModTime(images []os.DirEntry) error {
	type timed struct {
		entry os.DirEntry
		mtime int64
	}
	ts := make([]timed, 0, len(images))
	for _, e := range images {
		info, err := e.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		ts = append(ts, timed{e, info.ModTime().UnixNano()})
	}
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].mtime < ts[j].mtime })
	for i := range ts {
		images[i] = ts[i].entry
	}
	return nil
}

func numberedPlan(dir string, images []os.DirEntry, opts Options) []Op {
	ops := make([]Op, 0, len(images))
	for i, e := range images {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		newName := opts.numberedName(i, ext)
		ops = append(ops, Op{
			OldPath: filepath.Join(dir, e.Name()),
			NewPath: filepath.Join(dir, newName),
			OldName: e.Name(),
			NewName: newName,
		})
	}
	return ops
}

func customPlan(dir string, images []os.DirEntry, opts Options) []Op {
	ops := make([]Op, 0, len(images))
	for i, e := range images {
		number := fmt.Sprintf("%0*d", opts.Padding, opts.StartNumber+i)
		ext := strings.ToLower(filepath.Ext(e.Name()))
		newName := strings.ReplaceAll(opts.CustomPattern, "{n}", number)
		newName = strings.ReplaceAll(newName, "{ext}", ext)
		ops = append(ops, Op{
			OldPath: filepath.Join(dir, e.Name()),
			NewPath: filepath.Join(dir, newName),
			OldName: e.Name(),
			NewName: newName,
		})
	}
	return ops
}
