// Package catalog holds the fixed content tree the game plays over:
// regions with their questions and answers, the avatar roster, and the
// personality profiles. Content is authored as JSON assets and validated
// when the catalog is built; any integrity fault fails startup rather
// than being papered over at play time.
package catalog

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-quest/internal/storage"
)

// RegionEntry pairs a region with its asset id.
type RegionEntry struct {
	ID     string
	Region *Region
}

// Catalog is the immutable content aggregate. Regions and avatars are held
// in catalog order.
type Catalog struct {
	regions       []RegionEntry
	regionIndex   map[string]int
	avatars       []*Avatar
	personalities map[Trait]*Personality
}

// New assembles a catalog from the individual asset stores and verifies
// cross-asset integrity: contiguous region and avatar ordering, a
// non-empty avatar roster, and a personality profile for every trait.
func New(
	regions storage.Storer[*Region],
	avatars storage.Storer[*Avatar],
	personalities storage.Storer[*Personality],
) (*Catalog, error) {
	el := errors.NewErrorList()

	c := &Catalog{
		regionIndex:   map[string]int{},
		personalities: map[Trait]*Personality{},
	}

	for id, r := range regions.GetAll() {
		c.regions = append(c.regions, RegionEntry{ID: id, Region: r})
	}
	sort.Slice(c.regions, func(i, j int) bool {
		return c.regions[i].Region.Order < c.regions[j].Region.Order
	})
	if len(c.regions) == 0 {
		el.Add(fmt.Errorf("no regions defined"))
	}
	for i, entry := range c.regions {
		if entry.Region.Order != i {
			el.Add(fmt.Errorf("region %s: order %d is out of sequence (want %d)", entry.ID, entry.Region.Order, i))
		}
		c.regionIndex[entry.ID] = i
	}

	for _, a := range avatars.GetAll() {
		c.avatars = append(c.avatars, a)
	}
	sort.Slice(c.avatars, func(i, j int) bool {
		return c.avatars[i].Order < c.avatars[j].Order
	})
	if len(c.avatars) == 0 {
		el.Add(fmt.Errorf("no avatars defined"))
	}
	for i, a := range c.avatars {
		if a.Order != i {
			el.Add(fmt.Errorf("avatar %q: order %d is out of sequence (want %d)", a.Selector(), a.Order, i))
		}
	}

	for id, p := range personalities.GetAll() {
		c.personalities[Trait(id)] = p
	}
	for _, t := range Traits {
		if _, ok := c.personalities[t]; !ok {
			el.Add(fmt.Errorf("missing personality profile: %s", t))
		}
	}

	if err := el.Err(); err != nil {
		return nil, fmt.Errorf("catalog integrity: %w", err)
	}

	return c, nil
}

// Regions returns all regions in catalog order.
func (c *Catalog) Regions() []RegionEntry {
	out := make([]RegionEntry, len(c.regions))
	copy(out, c.regions)
	return out
}

// Region returns the region with the given id, or nil if unknown.
func (c *Catalog) Region(id string) *Region {
	i, ok := c.regionIndex[id]
	if !ok {
		return nil
	}
	return c.regions[i].Region
}

// RegionIndex returns the position of the region in catalog order, or -1
// if unknown.
func (c *Catalog) RegionIndex(id string) int {
	i, ok := c.regionIndex[id]
	if !ok {
		return -1
	}
	return i
}

func (c *Catalog) RegionCount() int {
	return len(c.regions)
}

// Avatars returns the avatar roster in catalog order.
func (c *Catalog) Avatars() []*Avatar {
	out := make([]*Avatar, len(c.avatars))
	copy(out, c.avatars)
	return out
}

// Avatar returns the avatar at the given index, or nil if out of range.
func (c *Catalog) Avatar(i int) *Avatar {
	if i < 0 || i >= len(c.avatars) {
		return nil
	}
	return c.avatars[i]
}

func (c *Catalog) AvatarCount() int {
	return len(c.avatars)
}

// Personality returns the profile for a trait. The trait set is verified
// at build time, so lookups for classifier output always succeed.
func (c *Catalog) Personality(t Trait) *Personality {
	return c.personalities[t]
}
