package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	hjson "github.com/hjson/hjson-go/v4"
	"github.com/joho/godotenv"

	"policysim/pkg/core/catalog"
	"policysim/pkg/core/engine"
)

// scenarioFile is the HJSON scenario format: intervention levels, a horizon,
// optional per-province overrides and the enhanced-path switch.
type scenarioFile struct {
	Horizon   int                           `json:"horizon"`
	Levels    map[string]float64            `json:"levels"`
	Provinces map[string]map[string]float64 `json:"provinces"`
	Enhanced  bool                          `json:"enhanced"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "Path to an HJSON scenario file")
	horizon := flag.Int("horizon", 10, "Projection horizon in years (overridden by the scenario file)")
	enhanced := flag.Bool("enhanced", false, "Run the epidemiological projection as well")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println(" [config] No .env file found, using process environment")
	}

	// Catalog: built-in national data unless CATALOG_FILE points at a YAML
	// alternative.
	cat := catalog.MustDefault()
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		loaded, err := catalog.LoadYAMLFile(path)
		if err != nil {
			fmt.Printf(" [config] Error loading catalog from %s: %v\n", path, err)
			os.Exit(1)
		}
		cat = loaded
		fmt.Printf(" [config] Loaded catalog from %s (%d interventions, %d outcomes)\n",
			path, len(cat.Interventions), len(cat.Outcomes))
	}

	opts := engine.Options{}
	if v := os.Getenv("SIM_POPULATION"); v != "" {
		if pop, err := strconv.ParseFloat(v, 64); err == nil {
			opts.Population = pop
		}
	}
	if v := os.Getenv("SIM_DISCOUNT_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			opts.DiscountRate = rate
		}
	}

	scenario := scenarioFile{Horizon: *horizon, Enhanced: *enhanced}
	if *scenarioPath != "" {
		data, err := os.ReadFile(*scenarioPath)
		if err != nil {
			fmt.Printf(" [config] Error reading scenario %s: %v\n", *scenarioPath, err)
			os.Exit(1)
		}
		if err := hjson.Unmarshal(data, &scenario); err != nil {
			fmt.Printf(" [config] Error parsing scenario %s: %v\n", *scenarioPath, err)
			os.Exit(1)
		}
		fmt.Printf(" [config] Loaded scenario from %s\n", *scenarioPath)
	}

	e := engine.New(cat, opts)

	fmt.Println("\n[STEP] 1. Scenario Run")
	fmt.Println("---------------------------------------------------------")
	res := e.Run(scenario.Levels, scenario.Horizon, scenario.Provinces)
	fmt.Printf(" [engine] Horizon: %d years, %d intervention(s) active\n", res.Horizon, len(res.Levels))

	printSynergies(res)
	printTrajectories(res)
	printEconomics(res)
	printProvinces(res)

	if scenario.Enhanced {
		fmt.Println("\n[STEP] 2. Epidemiological Projection (Enhanced)")
		fmt.Println("---------------------------------------------------------")
		enh := e.RunEnhanced(scenario.Levels, scenario.Horizon, scenario.Provinces)
		last := enh.Epidemiology.Years[len(enh.Epidemiology.Years)-1]
		fmt.Printf(" [epi] Communicable infected at horizon:  %.0f\n", last.CommunicableInfected)
		fmt.Printf(" [epi] Vector-borne infected at horizon:  %.0f\n", last.VectorInfected)
		fmt.Printf(" [epi] Chronic complications at horizon:  %.0f\n", last.ChronicComplications)
		fmt.Printf(" [epi] Cumulative deaths:                 %.0f\n", last.CumulativeDeaths)
		fmt.Printf(" [epi] Disease burden (DALY):             %.0f (YLL %.0f, YLD %.0f)\n",
			enh.Burden.Total, enh.Burden.YLL, enh.Burden.YLD)
		fmt.Printf(" [epi] Crude life-expectancy adjustment:  %+.2f years\n", enh.LifeExpectancyChange)
	}
}

func printSynergies(res engine.Result) {
	if len(res.Synergies) == 0 {
		fmt.Println(" [synergy] No synergy pairs active")
		return
	}
	fmt.Printf(" [synergy] %d pair(s) active:\n", len(res.Synergies))
	for _, s := range res.Synergies {
		fmt.Printf("   - %s + %s (x%.2f): %s\n", s.First, s.Second, s.Multiplier, s.Description)
	}
}

func printTrajectories(res engine.Result) {
	fmt.Println("\n[STEP] Outcome Deltas at Horizon")
	fmt.Println("---------------------------------------------------------")
	fmt.Printf("%-20s | %-10s | %-10s | %-8s\n", "Outcome", "Baseline", "Adjusted", "Delta")
	for _, d := range res.HorizonDeltas {
		fmt.Printf("%-20s | %-10.2f | %-10.2f | %+8.2f\n", d.Outcome, d.Baseline, d.Adjusted, d.Delta)
	}
}

func printEconomics(res engine.Result) {
	ec := res.Economic
	fmt.Println("\n[STEP] Economic Impact")
	fmt.Println("---------------------------------------------------------")
	fmt.Printf(" [econ] Total Program Cost:   $%.1fM\n", ec.TotalCost/1e6)
	fmt.Printf(" [econ] Healthcare Savings:   $%.1fM\n", ec.HealthcareSavings/1e6)
	fmt.Printf(" [econ] Productivity Gains:   $%.1fM\n", ec.ProductivityGains/1e6)
	fmt.Printf(" [econ] QALYs Gained:         %.0f\n", ec.QALYGained)
	fmt.Printf(" [econ] Net Benefit:          $%.1fM\n", ec.NetBenefit/1e6)
	if ec.ROI != 0 {
		fmt.Printf(" [econ] ROI:                  %.1f%%\n", ec.ROI)
	}
	for _, item := range ec.CostBreakdown {
		tag := "cost"
		if item.Cost < 0 {
			tag = "revenue"
		}
		fmt.Printf("   - %-20s $%.1fM (%s)\n", item.Intervention, item.Cost/1e6, tag)
	}
}

func printProvinces(res engine.Result) {
	if len(res.ProvinceDeltas) == 0 {
		return
	}

	// Aggregate per province so the report stays readable.
	type provinceSummary struct {
		improved int
		total    int
	}
	byProvince := make(map[string]*provinceSummary)
	var order []string
	for _, pd := range res.ProvinceDeltas {
		s, ok := byProvince[pd.Province]
		if !ok {
			s = &provinceSummary{}
			byProvince[pd.Province] = s
			order = append(order, pd.Province)
		}
		s.total++
		if pd.Delta != 0 {
			s.improved++
		}
	}
	sort.Strings(order)

	fmt.Println("\n[STEP] Provincial Breakdown")
	fmt.Println("---------------------------------------------------------")
	for _, id := range order {
		s := byProvince[id]
		fmt.Printf(" [province] %-12s %d of %d outcomes moved\n", id, s.improved, s.total)
	}
}
