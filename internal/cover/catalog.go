package cover

import (
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Catalog is the registry of cover types for one session. It keeps two
// derived views of the catalog: the prioritized types sorted descending by
// priority value, and the unprioritized rest. The views are rebuilt lazily;
// a generation counter bumped by every mutation is compared against the
// generation at the last rebuild, so a stale view can never be read.
//
// All catalog access is single-threaded (see the concurrency notes in the
// engine); the generation counter guards against missed invalidation, not
// against races.
type Catalog struct {
	log   *zap.Logger
	types map[string]CoverType

	gen      uint64
	builtGen uint64

	prioritized   []CoverType
	unprioritized []CoverType
}

// NewCatalog returns an empty catalog. A nil logger disables diagnostics.
func NewCatalog(log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		log:   log,
		types: make(map[string]CoverType),
		gen:   1,
	}
}

// Add stores a new cover type and returns its id, generating one when the
// type has none. An invalid type or a duplicate id is logged and ignored;
// the empty string is returned and the catalog is unchanged.
func (c *Catalog) Add(ct CoverType) string {
	if !ct.valid() {
		c.log.Error("rejecting invalid cover type",
			zap.String("id", ct.ID),
			zap.Float64("threshold", ct.PercentThreshold))
		return ""
	}
	if ct.ID == "" {
		ct.ID = uuid.NewString()
	}
	if _, exists := c.types[ct.ID]; exists {
		c.log.Error("rejecting duplicate cover type id", zap.String("id", ct.ID))
		return ""
	}
	c.types[ct.ID] = ct
	c.gen++
	return ct.ID
}

// Update replaces a stored cover type. Unknown ids and invalid types are
// logged and ignored.
func (c *Catalog) Update(ct CoverType) {
	if !ct.valid() {
		c.log.Error("rejecting invalid cover type update", zap.String("id", ct.ID))
		return
	}
	if _, exists := c.types[ct.ID]; !exists {
		c.log.Error("rejecting update of unknown cover type", zap.String("id", ct.ID))
		return
	}
	c.types[ct.ID] = ct
	c.gen++
}

// Remove deletes a cover type. Removing an unknown id is a no-op.
func (c *Catalog) Remove(id string) {
	if _, exists := c.types[id]; !exists {
		return
	}
	delete(c.types, id)
	c.gen++
}

// Get looks up a cover type by id.
func (c *Catalog) Get(id string) (CoverType, bool) {
	ct, ok := c.types[id]
	return ct, ok
}

// Len returns the number of stored cover types.
func (c *Catalog) Len() int { return len(c.types) }

// All returns every stored cover type in unspecified order.
func (c *Catalog) All() []CoverType {
	out := make([]CoverType, 0, len(c.types))
	for _, ct := range c.types {
		out = append(out, ct)
	}
	return out
}

// Prioritized returns the types that carry a priority, sorted descending by
// priority value (evaluation order: highest value first).
func (c *Catalog) Prioritized() []CoverType {
	c.refresh()
	return c.prioritized
}

// Unprioritized returns the types without a priority, unordered among
// themselves (id order, for determinism).
func (c *Catalog) Unprioritized() []CoverType {
	c.refresh()
	return c.unprioritized
}

// refresh rebuilds both derived views when the catalog has changed since
// the last rebuild. The two views always partition the full catalog.
func (c *Catalog) refresh() {
	if c.builtGen == c.gen {
		return
	}
	c.prioritized = c.prioritized[:0]
	c.unprioritized = c.unprioritized[:0]
	for _, ct := range c.types {
		if ct.Priority != nil {
			c.prioritized = append(c.prioritized, ct)
		} else {
			c.unprioritized = append(c.unprioritized, ct)
		}
	}
	sort.Slice(c.prioritized, func(i, j int) bool {
		pi, pj := *c.prioritized[i].Priority, *c.prioritized[j].Priority
		if pi != pj {
			return pi > pj
		}
		return c.prioritized[i].ID < c.prioritized[j].ID
	})
	sort.Slice(c.unprioritized, func(i, j int) bool {
		return c.unprioritized[i].ID < c.unprioritized[j].ID
	})
	c.builtGen = c.gen
}
