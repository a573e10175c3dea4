// hazard-check evaluates a single case file against the registered indicator
// packs and prints the summary as JSON. Useful for checking a case offline
// without running the server.
//
// Usage: hazard-check [-area housing_disrepair] case.json
package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/casewell/go-housing-hazards/internal/config"
	"github.com/casewell/go-housing-hazards/internal/engine"
	"github.com/casewell/go-housing-hazards/internal/logging"
	"github.com/casewell/go-housing-hazards/internal/models"
	"github.com/casewell/go-housing-hazards/internal/packs"
)

func main() {
	area := flag.String("area", packs.PracticeAreaHousingDisrepair, "practice area")
	flag.Parse()

	if flag.NArg() != 1 {
		logging.Fatalf("usage: hazard-check [-area AREA] case.json")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	registry := packs.NewRegistry()
	if err := registry.LoadDir(cfg.Packs.Dir); err != nil {
		logging.Fatalf("Failed to load indicator packs: %v", err)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logging.Fatalf("Failed to read case file: %v", err)
	}

	var input models.HazardInput
	if err := json.Unmarshal(data, &input); err != nil {
		logging.Fatalf("Failed to parse case file: %v", err)
	}
	input.LandlordType = models.ParseLandlordType(string(input.LandlordType))

	summary := engine.EmptySummary()
	if pack, ok := registry.Get(*area); ok {
		summary = engine.Evaluate(input, pack, time.Now())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		logging.Fatalf("Failed to encode summary: %v", err)
	}
}
