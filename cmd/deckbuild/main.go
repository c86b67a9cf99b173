// Command deckbuild constructs a grid property model from a JSON record
// stream and prints a per-property summary. With -db it also persists the
// built model as a sqlite snapshot.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/strata-data/reservoir.model/internal/config"
	"github.com/strata-data/reservoir.model/internal/deck"
	"github.com/strata-data/reservoir.model/internal/grid"
	"github.com/strata-data/reservoir.model/internal/monitoring"
	"github.com/strata-data/reservoir.model/internal/propdb"
	"github.com/strata-data/reservoir.model/internal/props"
	"github.com/strata-data/reservoir.model/internal/units"
	"github.com/strata-data/reservoir.model/internal/version"
)

func main() {
	configPath := flag.String("config", "run.json", "run configuration file")
	deckPath := flag.String("deck", "", "deck record file (overrides config)")
	dbPath := flag.String("db", "", "optional sqlite snapshot database")
	verbose := flag.Bool("v", false, "log engine diagnostics")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("deckbuild %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if !*verbose {
		monitoring.SetLogger(nil)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	recordPath := cfg.GetDeckPath()
	if *deckPath != "" {
		recordPath = *deckPath
	}
	if recordPath == "" {
		log.Fatal("no deck record file: set deck_path in the config or pass -deck")
	}

	records, err := deck.LoadFile(recordPath)
	if err != nil {
		log.Fatalf("deck: %v", err)
	}

	g, err := grid.New(cfg.NX, cfg.NY, cfg.NZ)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}

	engine := props.New(g, units.ByName(cfg.GetUnitSystem()))
	if err := engine.ProcessAll(records); err != nil {
		log.Fatalf("build: %v", err)
	}

	fmt.Printf("built %dx%dx%d model (%s) from %d records\n",
		g.NX, g.NY, g.NZ, engine.Units().Name(), len(records))
	printSummary(engine)

	if *dbPath != "" {
		store, err := propdb.Open(*dbPath)
		if err != nil {
			log.Fatalf("snapshot db: %v", err)
		}
		defer store.Close()

		id, err := store.SaveSnapshot(cfg.GetSnapshotName(), engine)
		if err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		fmt.Printf("saved snapshot %s\n", id)
	}
}

func printSummary(engine *props.Engine) {
	for p := range engine.IntProperties() {
		regions, err := engine.Regions(p.Name())
		if err != nil {
			log.Fatalf("regions of %s: %v", p.Name(), err)
		}
		labels := make([]string, len(regions))
		for i, r := range regions {
			labels[i] = fmt.Sprint(r)
		}
		fmt.Printf("  %-10s int     regions [%s]\n", p.Name(), strings.Join(labels, " "))
	}
	for p := range engine.DoubleProperties() {
		values := p.Values()
		fmt.Printf("  %-10s double  min %.6g  max %.6g\n", p.Name(), floats.Min(values), floats.Max(values))
	}
	for _, fault := range engine.FaultNames() {
		mult, _ := engine.FaultMultiplier(fault)
		fmt.Printf("  fault %-8s multiplier %.4g\n", fault, mult)
	}
}
