package catalog

import "fmt"

// Icon is a closed set of map glyphs regions can reference. Unknown names
// resolve to IconFallback at load time instead of failing the catalog.
type Icon int

const (
	IconFallback Icon = iota
	IconHeart
	IconBrain
	IconCoins
	IconShield
	IconAnchor
)

var iconNames = map[Icon]string{
	IconFallback: "marker",
	IconHeart:    "heart",
	IconBrain:    "brain",
	IconCoins:    "coins",
	IconShield:   "shield",
	IconAnchor:   "anchor",
}

var iconGlyphs = map[Icon]string{
	IconFallback: "(*)",
	IconHeart:    "(<3)",
	IconBrain:    "(@)",
	IconCoins:    "($)",
	IconShield:   "[#]",
	IconAnchor:   "(&)",
}

func (i Icon) String() string {
	return iconNames[i]
}

// Glyph returns the terminal rendering of the icon.
func (i Icon) Glyph() string {
	return iconGlyphs[i]
}

func (i *Icon) UnmarshalText(text []byte) error {
	for icon, name := range iconNames {
		if name == string(text) {
			*i = icon
			return nil
		}
	}
	*i = IconFallback
	return nil
}

func (i Icon) MarshalText() ([]byte, error) {
	name, ok := iconNames[i]
	if !ok {
		return nil, fmt.Errorf("unknown icon: %d", i)
	}
	return []byte(name), nil
}
