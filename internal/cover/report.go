package cover

import (
	"fmt"
	"strings"
)

// ReportEntry is one evaluated attacker/target pair in a cover report.
type ReportEntry struct {
	Attacker string
	Target   string
	Percent  float64 // occlusion fraction counting all blockers
	Types    []string
}

// String formats the entry as a fixed-width report line.
//
//	Archer   -> Goblin    62.5%  standard
func (e ReportEntry) String() string {
	names := "none"
	if len(e.Types) > 0 {
		names = strings.Join(e.Types, ", ")
	}
	return fmt.Sprintf("%-10s -> %-10s %5.1f%%  %s",
		e.Attacker, e.Target, e.Percent*100, names)
}

// Report collects cover evaluations for a scenario run. Unbounded and
// machine-readable, for the headless report command and tests.
type Report struct {
	entries []ReportEntry
}

// Add records an evaluated pair.
func (r *Report) Add(attacker, target string, percent float64, types []CoverType) {
	names := make([]string, 0, len(types))
	for _, ct := range types {
		names = append(names, ct.ID)
	}
	r.entries = append(r.entries, ReportEntry{
		Attacker: attacker,
		Target:   target,
		Percent:  percent,
		Types:    names,
	})
}

// Entries returns the recorded entries in insertion order.
func (r *Report) Entries() []ReportEntry { return r.entries }

// Lines formats every entry.
func (r *Report) Lines() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.String()
	}
	return out
}

// String renders the whole report.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// ByTarget groups entries by target name, preserving insertion order
// within each group.
func (r *Report) ByTarget() map[string][]ReportEntry {
	out := make(map[string][]ReportEntry)
	for _, e := range r.entries {
		out[e.Target] = append(out[e.Target], e)
	}
	return out
}
