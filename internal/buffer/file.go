// internal/buffer/file.go
package buffer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bethropolis/kite/internal/highlighter/lang"
	"github.com/bethropolis/kite/internal/logger"
)

// ErrNoFilePath is returned by Save when neither the document nor the
// caller names a file.
var ErrNoFilePath = errors.New("no file path specified for saving")

// Load reads a file into a new highlighted document. The language is
// detected from the path. A missing file gives an empty document bound to
// the path, so saving creates it.
func Load(filePath string) (*Document, error) {
	language := lang.Detect(filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Infof("File %s does not exist, starting empty", filePath)
			d := FromLines(nil, language)
			d.filePath = filePath
			return d, nil
		}
		return nil, fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}

	text := string(content)
	trailing := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	d := FromLines(strings.Split(text, "\n"), language)
	d.filePath = filePath
	d.trailingNewline = trailing
	logger.Debugf("Loaded %s: %d lines, language %s", filePath, d.LineCount(), language.Name)
	return d, nil
}

// Bytes returns the document text as it is written to disk.
func (d *Document) Bytes() []byte {
	text := strings.Join(d.ToLines(), "\n")
	if d.trailingNewline {
		text += "\n"
	}
	return []byte(text)
}

// Save writes the document to filePath, or to its own path when filePath
// is empty. Saving under a new name re-detects the language.
func (d *Document) Save(filePath string) error {
	path := d.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return ErrNoFilePath
	}

	if err := os.WriteFile(path, d.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	d.filePath = path
	d.modified = false
	if detected := lang.Detect(path); detected.Name != d.language.Name {
		logger.Infof("Language changed from %s to %s after save", d.language.Name, detected.Name)
		d.SetLanguage(detected)
	}
	return nil
}
