// Package merge concatenates PDF documents, decrypting protected ones
// along the way, into a single unlocked output.
package merge

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/missdeer/mergepdf/pkg/codec"
	"github.com/missdeer/mergepdf/pkg/natsort"
)

// Merge order policies for filesystem inputs.
const (
	OrderName  = "name"
	OrderMtime = "mtime"
)

// ErrInterrupted is returned by Files when the caller's interrupt
// channel fires mid-run. No output is produced in that case.
var ErrInterrupted = errors.New("merge aborted")

var errLocked = errors.New("wrong or unknown password")

// Options control the filesystem merge variant.
type Options struct {
	DefaultPassword string
	Prompt          PromptFunc    // nil disables per-file prompting
	Order           string        // OrderName (default) or OrderMtime
	Interrupt       <-chan struct{}
}

// Streams merges in-memory sources in caller-supplied order. Prompting
// is never available on this path. Per-document failures are recorded
// as skipped and the run continues.
func Streams(sources []Source, defaultPassword string) (*Result, error) {
	out := codec.NewWriter()
	result := &Result{}

	for _, src := range sources {
		if err := appendSource(out, src, defaultPassword, nil); err != nil {
			result.skip(src.Name)
			continue
		}
		result.MergedCount++
	}

	return finish(out, result)
}

// Files merges the given paths, sorted per opts.Order, printing one
// progress line per file. Returns ErrInterrupted without output when
// opts.Interrupt fires.
func Files(paths []string, opts Options) (*Result, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	if opts.Order == OrderMtime {
		// Stat each file once up front rather than inside the comparator.
		times := make(map[string]time.Time, len(sorted))
		for _, path := range sorted {
			times[path] = mtime(path)
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			return times[sorted[i]].Before(times[sorted[j]])
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return natsort.Less(filepath.Base(sorted[i]), filepath.Base(sorted[j]))
		})
	}

	out := codec.NewWriter()
	result := &Result{}

	for _, path := range sorted {
		select {
		case <-opts.Interrupt:
			fmt.Println("\nAborted by user.")
			return nil, ErrInterrupted
		default:
		}

		rel := relpath(path)
		fmt.Printf("Processing: %s\n", rel)

		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("  Failed to read '%s': %v\n", rel, err)
			result.skip(filepath.Base(path))
			continue
		}
		err = appendSource(out, Source{Name: filepath.Base(path), Reader: f}, opts.DefaultPassword, opts.Prompt)
		f.Close()
		if err != nil {
			if err == errLocked {
				fmt.Println("  Could not decrypt (wrong/unknown password). Skipping.")
			} else {
				fmt.Printf("  Failed to read '%s': %v\n", rel, err)
			}
			result.skip(filepath.Base(path))
			continue
		}
		result.MergedCount++
	}

	return finish(out, result)
}

// appendSource decodes one source, resolves its password when needed
// and appends every page to out. A non-nil error means the source must
// be recorded as skipped.
func appendSource(out *codec.Writer, src Source, defaultPassword string, prompt PromptFunc) error {
	rs, err := EnsureSeekable(src.Reader)
	if err != nil {
		return err
	}

	doc, err := codec.Open(rs)
	if err != nil {
		return err
	}

	encrypted, err := doc.Encrypted()
	if err != nil {
		return err
	}
	if encrypted {
		candidates := PasswordCandidates(defaultPassword, src.Password)
		if !ResolvePassword(doc, src.Name, candidates, prompt) {
			return errLocked
		}
	}

	pages, err := doc.Pages()
	if err != nil {
		return err
	}
	for _, page := range pages {
		// Pages already appended before a failure are kept.
		if err := out.AddPage(page); err != nil {
			return err
		}
	}
	return nil
}

func finish(out *codec.Writer, result *Result) (*Result, error) {
	if result.MergedCount == 0 {
		return result, nil
	}
	data, err := out.Bytes()
	if err != nil {
		return nil, err
	}
	result.Buffer = bytes.NewBuffer(data)
	return result, nil
}

func mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func relpath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
