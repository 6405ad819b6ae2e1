package cards

import (
	"encoding/json"
	"path/filepath"

	"wedding-line-bot/internal/domain"
	"wedding-line-bot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Compile-time check to ensure FileCardSource implements CardSource interface
var _ output.CardSource = (*FileCardSource)(nil)

// FileCardSource struct - Output adapter serving pre-authored flex card
// payloads from a directory of JSON files, one file per logical key
type FileCardSource struct {
	fs  afero.Fs
	dir string
}

// NewFileCardSource serves cards from dir on the host filesystem
func NewFileCardSource(dir string) *FileCardSource {
	return NewFileCardSourceFS(afero.NewOsFs(), dir)
}

// NewFileCardSourceFS serves cards from dir on the given filesystem
func NewFileCardSourceFS(fs afero.Fs, dir string) *FileCardSource {
	return &FileCardSource{
		fs:  fs,
		dir: dir,
	}
}

// Card tries each key in order and returns the first payload that loads and
// parses. Exhausting every key yields domain.ErrContentUnavailable; the
// caller decides how to apologize to the user.
func (c *FileCardSource) Card(keys ...string) (json.RawMessage, error) {
	for _, key := range keys {
		data, err := afero.ReadFile(c.fs, filepath.Join(c.dir, key+".json"))
		if err != nil {
			continue
		}
		if !json.Valid(data) {
			logrus.Warnf("Card %q is not valid JSON, trying next key", key)
			continue
		}
		return json.RawMessage(data), nil
	}
	return nil, domain.ErrContentUnavailable
}
