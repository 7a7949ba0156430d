package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults carries the layout defaults an application ships in its TOML
// config: inter-item spacing, the allocator's rounding unit, the grid
// dimensions to start from, and the insert policy for linear layouts.
//
//	margin = 8.0
//	unit = 1.0
//	insert_policy = "alphabetical"
//
//	[grid]
//	columns = 3
//	rows = 2
type Defaults struct {
	Margin       float32 `toml:"margin"`
	Unit         float32 `toml:"unit"`
	InsertPolicy string  `toml:"insert_policy"`

	Grid struct {
		Columns int `toml:"columns"`
		Rows    int `toml:"rows"`
	} `toml:"grid"`
}

// DefaultConfig returns the defaults used when no config file is present:
// no margin, unit rounding, bottom insertion, a 1x1 grid.
func DefaultConfig() Defaults {
	d := Defaults{
		Margin:       0,
		Unit:         DefaultUnit,
		InsertPolicy: "bottom",
	}
	d.Grid.Columns = 1
	d.Grid.Rows = 1
	return d
}

// LoadDefaults reads TOML from r on top of DefaultConfig.
func LoadDefaults(r io.Reader) (Defaults, error) {
	d := DefaultConfig()
	if err := toml.NewDecoder(r).Decode(&d); err != nil {
		return Defaults{}, fmt.Errorf("decode layout defaults: %w", err)
	}
	if err := d.validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// LoadDefaultsFile reads TOML defaults from a file.
func LoadDefaultsFile(path string) (Defaults, error) {
	f, err := os.Open(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("open layout defaults: %w", err)
	}
	defer f.Close()
	return LoadDefaults(f)
}

func (d Defaults) validate() error {
	if d.Margin < 0 {
		return fmt.Errorf("%w: margin %v is negative", ErrOutOfRange, d.Margin)
	}
	if d.Unit <= 0 {
		return fmt.Errorf("%w: unit %v is not positive", ErrOutOfRange, d.Unit)
	}
	if d.Grid.Columns < 0 || d.Grid.Rows < 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrOutOfRange, d.Grid.Columns, d.Grid.Rows)
	}
	if _, err := d.Policy(); err != nil {
		return err
	}
	return nil
}

// Policy resolves the configured insert policy name.
func (d Defaults) Policy() (InsertPolicy, error) {
	switch d.InsertPolicy {
	case "", "bottom":
		return InsertAtBottom, nil
	case "top":
		return InsertAtTop, nil
	case "alphabetical":
		return InsertAlphabetically, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, d.InsertPolicy)
}

// NewLinear creates a linear layout carrying the configured margin and
// allocation unit.
func (d Defaults) NewLinear(direction Direction) *LinearLayout {
	l := NewLinear(direction, d.Margin)
	l.unit = d.Unit
	return l
}

// NewGrid creates a grid layout with the configured dimensions and
// allocation unit.
func (d Defaults) NewGrid() *GridLayout {
	g := NewGrid(d.Grid.Columns, d.Grid.Rows)
	g.unit = d.Unit
	return g
}
