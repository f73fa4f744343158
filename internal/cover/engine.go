package cover

import "go.uber.org/zap"

// QueryOptions carries per-query context for a cover evaluation.
type QueryOptions struct {
	// ActionType is the attack flavor ("mwak", "rwak", "spell", ...) used
	// by ruleset exemption rules. Empty means no exemption applies.
	ActionType string
}

// Engine evaluates which cover categories apply to attacker/target pairs.
// The base algorithm lives here; game-system rules plug in through the
// Ruleset hooks selected at construction. All evaluation is synchronous and
// builds no shared state, so one engine may serve any number of queries.
type Engine struct {
	catalog *Catalog
	oracle  PercentCover
	ruleset Ruleset
	log     *zap.Logger
}

// NewEngine builds an engine over a catalog, an oracle and a ruleset. A nil
// logger disables diagnostics.
func NewEngine(catalog *Catalog, oracle PercentCover, ruleset Ruleset, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: catalog, oracle: oracle, ruleset: ruleset, log: log}
}

// Catalog returns the engine's cover-type catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// CoverTypeApplies reports whether one category applies to the pair: the
// oracle's occlusion fraction under the category's blocker flags reaches
// the category's threshold.
func (e *Engine) CoverTypeApplies(ct CoverType, attacker, target Token, opts QueryOptions) bool {
	if attacker == nil || target == nil {
		e.log.Error("cover query with nil token", zap.String("type", ct.ID))
		return false
	}
	pct := e.oracle.PercentCover(attacker, target, ct.IncludeWalls, ct.IncludeTokens)
	return pct >= ct.PercentThreshold
}

// CoverTypesForToken returns the categories applying to the pair.
//
// The prioritized categories are walked from the highest priority value
// downward and the first match ends the walk, so at most one prioritized
// category ever applies to a pair. The unprioritized categories are then
// each tested, except that a non-overlapping one is skipped once anything
// has been assigned.
func (e *Engine) CoverTypesForToken(attacker, target Token, opts QueryOptions) []CoverType {
	if attacker == nil || target == nil {
		e.log.Error("cover query with nil token")
		return nil
	}

	prioritized := e.catalog.Prioritized()
	unprioritized := e.catalog.Unprioritized()
	if e.ruleset.PreFilter != nil {
		prioritized = e.ruleset.PreFilter(prioritized, attacker, target, opts)
		unprioritized = e.ruleset.PreFilter(unprioritized, attacker, target, opts)
	}

	var out []CoverType
	for _, ct := range prioritized {
		if e.CoverTypeApplies(ct, attacker, target, opts) {
			out = append(out, ct)
			break
		}
	}
	for _, ct := range unprioritized {
		if !ct.CanOverlap && len(out) > 0 {
			continue
		}
		if e.CoverTypeApplies(ct, attacker, target, opts) {
			out = append(out, ct)
		}
	}

	if e.ruleset.PostUpgrade != nil {
		out = e.ruleset.PostUpgrade(out, attacker, target)
	}
	return out
}

// MinimumCoverFromAttackers returns the cover that holds against every
// attacker in the group: the best the attackers can jointly guarantee.
//
// For prioritized categories the per-attacker picks are compared by the
// sort key, smallest priority number winning. (Per-pair resolution walks
// highest-value-first; the asymmetry is deliberate and matches the observed
// rule.) A prioritized pick only survives when every attacker produced one.
// Unprioritized categories are intersected across attackers. An empty
// attacker group yields no cover.
func (e *Engine) MinimumCoverFromAttackers(target Token, attackers []Token, opts QueryOptions) []CoverType {
	if len(attackers) == 0 {
		return nil
	}

	var minPrioritized *CoverType
	prioritizedFromAll := true
	var common map[string]CoverType

	for _, atk := range attackers {
		types := e.CoverTypesForToken(atk, target, opts)

		var pick *CoverType
		seen := make(map[string]CoverType)
		for i := range types {
			ct := types[i]
			if ct.Priority != nil {
				pick = &ct
			} else {
				seen[ct.ID] = ct
			}
		}

		if pick == nil {
			prioritizedFromAll = false
		} else if minPrioritized == nil || *pick.Priority < *minPrioritized.Priority {
			minPrioritized = pick
		}

		if common == nil {
			common = seen
		} else {
			for id := range common {
				if _, ok := seen[id]; !ok {
					delete(common, id)
				}
			}
		}
	}

	var out []CoverType
	if prioritizedFromAll && minPrioritized != nil {
		out = append(out, *minPrioritized)
	}
	for _, ct := range e.catalog.Unprioritized() {
		if _, ok := common[ct.ID]; ok {
			out = append(out, ct)
		}
	}
	return out
}

// ReplaceCoverTypes reconciles the target's effect icons against the
// desired category set: icons of unwanted catalog categories are removed,
// missing ones are added, and icons the catalog does not own are left
// alone. Returns whether anything changed; reconciling an already-correct
// token is a no-op.
func (e *Engine) ReplaceCoverTypes(target Token, desired []CoverType) bool {
	if target == nil {
		e.log.Error("replace cover types with nil token")
		return false
	}

	want := make(map[string]bool)
	for _, ct := range desired {
		if ct.Icon != "" {
			want[ct.Icon] = true
		}
	}
	managed := make(map[string]bool)
	for _, ct := range e.catalog.All() {
		if ct.Icon != "" {
			managed[ct.Icon] = true
		}
	}
	have := make(map[string]bool)
	for _, ic := range target.EffectIcons() {
		have[ic] = true
	}

	changed := false
	for ic := range managed {
		switch {
		case want[ic] && !have[ic]:
			target.AddEffectIcon(ic)
			changed = true
		case !want[ic] && have[ic]:
			target.RemoveEffectIcon(ic)
			changed = true
		}
	}
	return changed
}
