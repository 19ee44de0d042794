package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/boxzoom"
)

// Record is a committed box as stored on disk.
type Record struct {
	ID      string       `yaml:"id"`
	Image   string       `yaml:"image"`
	Natural [2]int       `yaml:"natural_size,flow"`
	Created time.Time    `yaml:"created"`
	Box     boxzoom.Data `yaml:"box"`
	// Pixels is the box in natural image pixels as [x, y, width, height].
	Pixels [4]int `yaml:"pixels,flow"`
}

// newRecord stamps a committed box with a fresh ID.
func newRecord(image string, naturalW, naturalH int, d boxzoom.Data) Record {
	r := d.PixelRect(naturalW, naturalH)
	return Record{
		ID:      uuid.NewString(),
		Image:   image,
		Natural: [2]int{naturalW, naturalH},
		Created: time.Now().UTC().Truncate(time.Second),
		Box:     d,
		Pixels:  [4]int{r.Min.X, r.Min.Y, r.Dx(), r.Dy()},
	}
}

// LoadRecord reads a box record from a YAML file.
func LoadRecord(path string) (Record, error) {
	var rec Record
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("read record: %w", err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("parse record %s: %w", path, err)
	}
	if rec.ID != "" {
		if _, err := uuid.Parse(rec.ID); err != nil {
			return rec, fmt.Errorf("record %s: bad id: %w", path, err)
		}
	}
	if !rec.Box.Valid() {
		return rec, fmt.Errorf("record %s: %w", path, errEmptyBox)
	}
	return rec, nil
}

var errEmptyBox = errors.New("box is empty or uncommitted")

// Save writes the record as YAML.
func (r Record) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
