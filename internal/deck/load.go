package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is the on-disk JSON shape consumed by tooling: an ordered list of
// records under a single key.
type File struct {
	Records []Record `json:"records"`
}

// maxDeckFileSize bounds record files read by tooling (16MB).
const maxDeckFileSize = 16 * 1024 * 1024

// LoadFile reads an ordered record stream from a JSON file. The file must
// have a .json extension and stay under the size cap; partial or empty
// record lists are fine.
func LoadFile(path string) ([]Record, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("deck record file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat deck record file: %w", err)
	}
	if info.Size() > maxDeckFileSize {
		return nil, fmt.Errorf("deck record file too large: %d bytes (max %d)", info.Size(), maxDeckFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck record file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse deck record file: %w", err)
	}
	for i, rec := range f.Records {
		if rec.Keyword == "" {
			return nil, fmt.Errorf("record %d has no keyword", i)
		}
	}
	return f.Records, nil
}
