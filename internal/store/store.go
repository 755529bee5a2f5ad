// Package store persists the item list as a JSON document. The file
// path is an explicit value resolved once by the caller; nothing in
// here reads process-wide state.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/darajkong/scale-comparison/internal/emath"
	"github.com/darajkong/scale-comparison/internal/thing"
	"github.com/darajkong/scale-comparison/internal/units"
)

type record struct {
	Name        string  `json:"name"`
	Significand float64 `json:"significand"`
	Exponent    float64 `json:"exponent"`
}

// DefaultPath returns the per-user location of the data file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "scale-comparison", "data.json"), nil
}

// Load reads the item list from path. Missing or corrupt files are
// reported as errors; callers treat them as non-fatal and fall back to
// a default list.
func Load(path string) ([]thing.Thing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	things := make([]thing.Thing, 0, len(records))
	for _, r := range records {
		n := emath.Normalize(r.Significand, r.Exponent)
		things = append(things, thing.New(r.Name, units.New(n)))
	}
	return things, nil
}

// Save writes the item list to path, creating parent directories as
// needed.
func Save(path string, things []thing.Thing) error {
	records := make([]record, 0, len(things))
	for _, t := range things {
		n := t.Value.Num()
		records = append(records, record{
			Name:        t.Name,
			Significand: n.Significand(),
			Exponent:    n.Exponent(),
		})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
