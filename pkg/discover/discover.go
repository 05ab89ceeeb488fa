// Package discover lists candidate PDF files under a folder.
package discover

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// PDFs returns every file under folder whose name ends in ".pdf"
// (case-insensitive) and matches the case-sensitive glob pattern.
// Direct children only unless recursive is set. Unreadable entries are
// skipped; an empty slice is returned when nothing matches.
func PDFs(folder string, recursive bool, pattern string) []string {
	abs, err := filepath.Abs(folder)
	if err != nil {
		abs = folder
	}

	var matches []string
	if recursive {
		filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if matchName(info.Name(), pattern) {
				matches = append(matches, path)
			}
			return nil
		})
		return matches
	}

	entries, err := ioutil.ReadDir(abs)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchName(entry.Name(), pattern) {
			matches = append(matches, filepath.Join(abs, entry.Name()))
		}
	}
	return matches
}

func matchName(name, pattern string) bool {
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return false
	}
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}
