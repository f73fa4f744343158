package cover

import "go.uber.org/zap"

// Well-known catalog ids used by the built-in catalogs and the size
// upgrade rule.
const (
	CoverLesser   = "lesser"
	CoverStandard = "standard"
	CoverImproved = "improved"
	CoverTotal    = "total"

	CoverHalf          = "half"
	CoverThreeQuarters = "three-quarters"

	CoverLow    = "low"
	CoverMedium = "medium"
	CoverHigh   = "high"
)

// Ruleset is a game-system specialization of the classification algorithm:
// the base algorithm stays in Engine, and a ruleset attaches optional hooks
// around it. Hooks are plain functions selected by ruleset id at startup,
// not subclasses.
type Ruleset struct {
	ID string
	// PreFilter may drop categories before evaluation of a pair.
	PreFilter func(types []CoverType, attacker, target Token, opts QueryOptions) []CoverType
	// PostUpgrade may rewrite the evaluated result for a pair.
	PostUpgrade func(result []CoverType, attacker, target Token) []CoverType
}

// RulesetFor returns the built-in ruleset for a system id, falling back to
// the generic ruleset (no hooks) for unknown ids. The sfrpg ruleset needs
// the scene to find blocking tokens and the catalog to resolve the upgrade
// target.
func RulesetFor(id string, scene *Scene, catalog *Catalog, log *zap.Logger) Ruleset {
	if log == nil {
		log = zap.NewNop()
	}
	switch id {
	case "dnd5e":
		return DND5E()
	case "sfrpg":
		return SFRPG(scene, catalog)
	case "", "generic":
		return Ruleset{ID: "generic"}
	default:
		log.Warn("unknown ruleset id, using generic rules", zap.String("ruleset", id))
		return Ruleset{ID: "generic"}
	}
}

// DND5E returns the dnd5e specialization: attackers with an "ignores
// cover" exemption for the query's action type skip every category whose
// threshold is at or below the exemption level (sharpshooter-style feats,
// spells that ignore half and three-quarters cover, and so on).
func DND5E() Ruleset {
	return Ruleset{
		ID: "dnd5e",
		PreFilter: func(types []CoverType, attacker, target Token, opts QueryOptions) []CoverType {
			ig, ok := attacker.(CoverIgnorer)
			if !ok {
				return types
			}
			level := ig.IgnoresCover(opts.ActionType)
			if level <= 0 {
				return types
			}
			out := make([]CoverType, 0, len(types))
			for _, ct := range types {
				if ct.PercentThreshold <= level {
					continue
				}
				out = append(out, ct)
			}
			return out
		},
	}
}

// SFRPG returns the sfrpg specialization: lesser cover granted by a
// creature at least two size steps larger than the bigger of attacker and
// target is upgraded to standard cover.
func SFRPG(scene *Scene, catalog *Catalog) Ruleset {
	return Ruleset{
		ID: "sfrpg",
		PostUpgrade: func(result []CoverType, attacker, target Token) []CoverType {
			if scene == nil || catalog == nil {
				return result
			}
			idx := -1
			for i, ct := range result {
				if ct.ID == CoverLesser {
					idx = i
					break
				}
			}
			if idx < 0 {
				return result
			}
			standard, ok := catalog.Get(CoverStandard)
			if !ok {
				return result
			}

			pairRank := SizeRank(attacker.Size())
			if r := SizeRank(target.Size()); r > pairRank {
				pairRank = r
			}
			for _, tok := range scene.BlockingTokens(attacker, target) {
				if SizeRank(tok.Size()) >= pairRank+2 {
					result[idx] = standard
					break
				}
			}
			return result
		},
	}
}

// DefaultCatalog returns the built-in cover-type catalog for a system id.
// Thresholds and priorities follow each system's cover ladder; priorities
// increase with severity so the per-pair walk tests the strictest category
// first.
func DefaultCatalog(rulesetID string, log *zap.Logger) *Catalog {
	c := NewCatalog(log)
	switch rulesetID {
	case "dnd5e":
		c.Add(CoverType{ID: CoverHalf, Name: "Half Cover", PercentThreshold: 0.5,
			Priority: Prio(1), Icon: "icons/cover-half.svg", IncludeWalls: true, IncludeTokens: true})
		c.Add(CoverType{ID: CoverThreeQuarters, Name: "Three-Quarters Cover", PercentThreshold: 0.75,
			Priority: Prio(2), Icon: "icons/cover-three-quarters.svg", IncludeWalls: true, IncludeTokens: true})
		c.Add(CoverType{ID: CoverTotal, Name: "Total Cover", PercentThreshold: 1.0,
			Priority: Prio(3), Icon: "icons/cover-total.svg", IncludeWalls: true, IncludeTokens: true})
	case "sfrpg":
		c.Add(CoverType{ID: CoverLesser, Name: "Lesser Cover", PercentThreshold: 0.25,
			Priority: Prio(1), Icon: "icons/cover-lesser.svg", IncludeWalls: true, IncludeTokens: true})
		c.Add(CoverType{ID: CoverStandard, Name: "Cover", PercentThreshold: 0.5,
			Priority: Prio(2), Icon: "icons/cover-standard.svg", IncludeWalls: true, IncludeTokens: true})
		c.Add(CoverType{ID: CoverImproved, Name: "Improved Cover", PercentThreshold: 0.75,
			Priority: Prio(3), Icon: "icons/cover-improved.svg", IncludeWalls: true, IncludeTokens: true})
		c.Add(CoverType{ID: CoverTotal, Name: "Total Cover", PercentThreshold: 1.0,
			Priority: Prio(4), Icon: "icons/cover-total.svg", IncludeWalls: true, IncludeTokens: true})
	default:
		c.Add(CoverType{ID: CoverLow, Name: "Low Cover", PercentThreshold: 0.5,
			Priority: Prio(1), Icon: "icons/cover-low.svg", IncludeWalls: true, IncludeTokens: true})
		c.Add(CoverType{ID: CoverMedium, Name: "Medium Cover", PercentThreshold: 0.75,
			Priority: Prio(2), Icon: "icons/cover-medium.svg", IncludeWalls: true, IncludeTokens: true})
		c.Add(CoverType{ID: CoverHigh, Name: "High Cover", PercentThreshold: 1.0,
			Priority: Prio(3), Icon: "icons/cover-high.svg", IncludeWalls: true, IncludeTokens: true})
	}
	return c
}
