package palette

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

type fileEntry struct {
	Name  string     `json:"name"`
	Color [4]float32 `json:"color"`
}

// Load reads a palette file: a JSON array of {"name", "color"} entries
// that override the built-in bank from slot zero upward. Files longer
// than the bank are rejected so a typo cannot silently drop entries.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read palette file: %w", err)
	}

	var entries []fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not unmarshal palette json: %w", err)
	}
	if len(entries) > Size {
		return nil, fmt.Errorf("palette file has %d entries, the bank holds %d", len(entries), Size)
	}

	p := Default()
	for i, e := range entries {
		if e.Name != "" {
			p.names[i] = e.Name
		}
		p.colors[i] = mgl32.Vec4{e.Color[0], e.Color[1], e.Color[2], e.Color[3]}
	}
	return p, nil
}
