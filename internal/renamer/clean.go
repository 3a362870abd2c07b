package renamer

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	dashSpaceRe = regexp.MustCompile(`[-\s]+`)
)

// CleanFilename normalizes a filename: strips punctuation, collapses
// runs of dashes and whitespace to a single underscore and lowercases
// the base name. The extension is kept as-is.
func CleanFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	cleaned := nonWordRe.ReplaceAllString(base, "")
	cleaned = dashSpaceRe.ReplaceAllString(cleaned, "_")
	cleaned = strings.ToLower(strings.Trim(cleaned, "_"))

	return cleaned + ext
}

// cleanPlan maps every image to its cleaned name. When the cleaned name
// already exists on disk (and is not the file itself), a _1, _2, …
// counter is appended before the extension.
func cleanPlan(dir string, images []os.DirEntry) ([]Op, error) {
	ops := make([]Op, 0, len(images))
	for _, e := range images {
		oldPath := filepath.Join(dir, e.Name())
		newName := CleanFilename(e.Name())
		newPath := filepath.Join(dir, newName)

		ext := filepath.Ext(newName)
		base := strings.TrimSuffix(newName, ext)
		for counter := 1; ; counter++ {
			if newPath == oldPath {
				break
			}
			if _, err := os.Stat(newPath); os.IsNotExist(err) {
				break
			}
			newName = base + "_" + strconv.Itoa(counter) + ext
			newPath = filepath.Join(dir, newName)
		}

		ops = append(ops, Op{
			OldPath: oldPath,
			NewPath: newPath,
			OldName: e.Name(),
			NewName: newName,
		})
	}
	return ops, nil
}
