package sweep

import (
	"strings"
)

// Modes lists the names accepted by New
var Modes = []string{
	"smooth",
	"cyclic",
	"oneshot",
}

// New returns the effect for the given mode
func New(mode string) (e Effect, ok bool) {
	switch mode {
	case "smooth":
		e = SmoothSweep{}
	case "cyclic":
		e = CyclicSweep{}
	case "oneshot":
		e = OneShotSweep{}
	}
	ok = e != nil
	return
}

// Metadata describes an effect to a host's effect catalog: its name, the labels of the speed and intensity sliders,
// and which color slots it uses. "!" selects the host's default label.
type Metadata struct {
	Name    string
	Sliders []string
	Colors  []string
	Palette string
}

// String renders the metadata as name@sliders;colors;palette
func (m Metadata) String() string {
	return m.Name + "@" + strings.Join(m.Sliders, ",") + ";" + strings.Join(m.Colors, ",") + ";" + m.Palette
}

// Info is a catalog entry
type Info struct {
	ID       uint8
	Mode     string
	Metadata Metadata
}

var catalog = []Info{
	{ID: 1, Mode: "smooth", Metadata: sweepMetadata("Smooth Sweep")},
	{ID: 2, Mode: "cyclic", Metadata: sweepMetadata("Smooth Sweep Fill")},
	{ID: 3, Mode: "oneshot", Metadata: sweepMetadata("Smooth Sweep Once")},
}

func sweepMetadata(name string) Metadata {
	return Metadata{
		Name:    name,
		Sliders: []string{"!", "Gradient width"},
		Colors:  []string{"!", "!"},
		Palette: "!",
	}
}

// Catalog returns all registered effects
func Catalog() []Info {
	entries := make([]Info, len(catalog))
	copy(entries, catalog)
	return entries
}

// Lookup returns the catalog entry with the given ID
func Lookup(id uint8) (Info, bool) {
	for _, entry := range catalog {
		if entry.ID == id {
			return entry, true
		}
	}
	return Info{}, false
}

// LookupMode returns the catalog entry for the given mode
func LookupMode(mode string) (Info, bool) {
	for _, entry := range catalog {
		if entry.Mode == mode {
			return entry, true
		}
	}
	return Info{}, false
}
