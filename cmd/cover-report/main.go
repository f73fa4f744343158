package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Garsondee/Cover-Sense/internal/config"
	"github.com/Garsondee/Cover-Sense/internal/cover"
	"github.com/Garsondee/Cover-Sense/internal/logger"
	"github.com/Garsondee/Cover-Sense/internal/queue"
)

// scenarioRun holds everything one evaluated scenario produced.
type scenarioRun struct {
	report *cover.Report
	// minima is the per-target cover guaranteed against all attackers.
	minima map[string][]cover.CoverType
	// icons is each token's effect-icon list after reconciliation.
	icons map[string][]string
}

func main() {
	var scenarioPath string
	var ruleset string
	var logLevel string
	var logFile string

	flag.StringVar(&scenarioPath, "scenario", "", "scenario YAML file (empty = built-in demo)")
	flag.StringVar(&ruleset, "ruleset", "", "override the scenario's ruleset id")
	flag.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "optional rotated log file")
	flag.Parse()

	fileCfg := logger.FileConfig{}
	if logFile != "" {
		fileCfg = logger.DefaultFileConfig(logFile)
	}
	log := logger.New(logLevel, fileCfg)
	defer log.Sync()

	s, err := config.Load(scenarioPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if ruleset != "" {
		s.Ruleset = ruleset
	}

	run := runScenario(s, log)

	fmt.Printf("=== Cover Report ===\n")
	fmt.Printf("scenario=%s ruleset=%s tokens=%d walls=%d\n\n",
		s.Name, s.Ruleset, len(s.Tokens), len(s.Walls))
	for _, line := range run.report.Lines() {
		fmt.Println(line)
	}

	fmt.Printf("\n--- Minimum cover vs all attackers ---\n")
	names := make([]string, 0, len(run.minima))
	for name := range run.minima {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-10s %s\n", name, typeNames(run.minima[name]))
	}

	fmt.Printf("\n--- Applied effect icons ---\n")
	for _, name := range names {
		icons := run.icons[name]
		if len(icons) == 0 {
			fmt.Printf("%-10s none\n", name)
			continue
		}
		fmt.Printf("%-10s %s\n", name, strings.Join(icons, ", "))
	}
}

// runScenario evaluates every ordered token pair, computes each target's
// minimum cover against the rest of the field, and reconciles effect icons
// through the serialized refresh queue.
func runScenario(s *config.Scenario, log *zap.Logger) *scenarioRun {
	scene := s.Scene()
	catalog := s.Catalog(log)
	rs := cover.RulesetFor(s.Ruleset, scene, catalog, log)
	oracle := cover.NewAreaOracle(scene, log)
	engine := cover.NewEngine(catalog, oracle, rs, log)

	run := &scenarioRun{
		report: &cover.Report{},
		minima: make(map[string][]cover.CoverType),
		icons:  make(map[string][]string),
	}

	for _, atk := range scene.Tokens {
		for _, tgt := range scene.Tokens {
			if atk == tgt {
				continue
			}
			pct := oracle.PercentCover(atk, tgt, true, true)
			types := engine.CoverTypesForToken(atk, tgt, cover.QueryOptions{})
			run.report.Add(atk.Name(), tgt.Name(), pct, types)
		}
	}

	q := queue.New(nil)
	for _, tgt := range scene.Tokens {
		tgt := tgt
		attackers := make([]cover.Token, 0, len(scene.Tokens)-1)
		for _, atk := range scene.Tokens {
			if atk != tgt {
				attackers = append(attackers, atk)
			}
		}
		minimum := engine.MinimumCoverFromAttackers(tgt, attackers, cover.QueryOptions{})
		run.minima[tgt.Name()] = minimum
		q.Enqueue(func() {
			engine.ReplaceCoverTypes(tgt, minimum)
		})
	}
	q.Close()

	for _, tgt := range scene.Tokens {
		run.icons[tgt.Name()] = tgt.EffectIcons()
	}
	return run
}

// typeNames formats a category set for the summary table.
func typeNames(types []cover.CoverType) string {
	if len(types) == 0 {
		return "none"
	}
	names := make([]string, 0, len(types))
	for _, ct := range types {
		names = append(names, ct.ID)
	}
	return strings.Join(names, ", ")
}
