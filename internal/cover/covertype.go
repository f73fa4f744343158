// Package cover classifies how much cover a target token has from an
// attacker: a catalog of thresholded cover categories, the engine that maps
// an occlusion fraction to zero or more categories under priority and
// overlap rules, and a geometric percent-cover oracle built on the geom
// package.
package cover

// CoverType is one cover category: it applies to an attacker/target pair
// when the pair's occlusion fraction reaches PercentThreshold.
type CoverType struct {
	// ID is the catalog key. Left empty on Add, one is generated.
	ID string `yaml:"id"`
	// Name is the display name.
	Name string `yaml:"name"`
	// PercentThreshold is the occlusion fraction in [0,1] at or above
	// which this category applies.
	PercentThreshold float64 `yaml:"percent_threshold"`
	// Priority orders prioritized categories: the engine evaluates them
	// from the highest value downward and stops at the first match. Nil
	// means unprioritized; those are evaluated afterward, unordered.
	Priority *int `yaml:"priority,omitempty"`
	// CanOverlap allows this category to coexist with an already-assigned
	// category. Non-overlapping categories are mutually exclusive.
	CanOverlap bool `yaml:"can_overlap"`
	// Icon is the effect icon applied to tokens holding this cover.
	Icon string `yaml:"icon"`
	// IncludeWalls / IncludeTokens select which blockers count toward the
	// occlusion fraction for this category.
	IncludeWalls  bool `yaml:"include_walls"`
	IncludeTokens bool `yaml:"include_tokens"`
}

// Prio is a convenience for building priority pointers in literals.
func Prio(n int) *int { return &n }

// valid reports whether the cover type is well-formed enough to store.
func (ct CoverType) valid() bool {
	return ct.PercentThreshold >= 0 && ct.PercentThreshold <= 1
}
