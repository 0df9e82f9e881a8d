package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"energy-retrofit/internal/analysis"
	"energy-retrofit/internal/config"
	"energy-retrofit/internal/data"
	"energy-retrofit/internal/model"
	"energy-retrofit/internal/simulation"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "presets":
		cmdPresets()
	case "classes":
		cmdClasses()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/recommendations.csv --summary results/summary.csv")
	fmt.Println("  cli compare --config examples/config.yaml,examples/config_three_shift.yaml")
	fmt.Println("  cli presets")
	fmt.Println("  cli classes")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate ranks motor upgrades, VFDs and LED retrofits by payback")
	fmt.Println("  - compare runs several configs concurrently and prints their totals side by side")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional recommendations CSV path")
	summaryPath := fs.String("summary", "", "Optional summary CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	a := cfg.Audit()

	res, err := simulation.New().Run(a.Motors, a.Lighting, a.Schedule, a.Tariff)
	if err != nil {
		log.WithError(err).Fatal("simulate")
	}
	recs := analysis.Rank(res, a.Ceilings)

	printResults(os.Stdout, a, res, recs)

	if *outPath != "" {
		err := simulation.WriteCSVFile(*outPath, func(w io.Writer) error {
			return simulation.WriteRecommendationsCSV(w, recs)
		})
		if err != nil {
			log.WithError(err).Fatal("write recommendations")
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(recs), *outPath)
	}
	if *summaryPath != "" {
		err := simulation.WriteCSVFile(*summaryPath, func(w io.Writer) error {
			return simulation.WriteSummaryCSV(w, simulation.Summary{
				FactoryType:        a.FactoryType,
				AnalysisDate:       time.Now(),
				NumRecommendations: len(recs),
				Results:            res,
			})
		})
		if err != nil {
			log.WithError(err).Fatal("write summary")
		}
		fmt.Printf("Wrote summary to %s\n", *summaryPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPaths := fs.String("config", "", "Comma-separated YAML config paths")
	_ = fs.Parse(args)

	paths := splitPaths(*cfgPaths)
	if len(paths) == 0 {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	scenarios := make([]simulation.Scenario, 0, len(paths))
	audits := make([]config.Audit, 0, len(paths))
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			log.WithError(err).WithField("config", p).Fatal("load config")
		}
		a := cfg.Audit()
		audits = append(audits, a)
		scenarios = append(scenarios, simulation.Scenario{
			Name:     strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)),
			Motors:   a.Motors,
			Lighting: a.Lighting,
			Schedule: a.Schedule,
			Tariff:   a.Tariff,
		})
	}

	outcomes, err := simulation.New().RunScenarios(context.Background(), scenarios)
	if err != nil {
		log.WithError(err).Fatal("compare")
	}

	fmt.Printf("%-24s %-14s %-12s %-12s %-6s %-10s\n", "scenario", "energy kWh", "savings$", "invest$", "recs", "break-even")
	for i, o := range outcomes {
		if o.Err != nil {
			fmt.Printf("%-24s error: %v\n", o.Name, o.Err)
			continue
		}
		t := o.Results.Totals
		recs := analysis.Rank(o.Results, audits[i].Ceilings)
		p := simulation.Project(o.Results, audits[i].AnalysisYears)
		breakEven := fmt.Sprintf("year %d", p.BreakEvenYear)
		if p.BeyondHorizon {
			breakEven = fmt.Sprintf(">%d yrs", p.HorizonYears)
		}
		fmt.Printf("%-24s %-14.0f %-12.2f %-12.2f %-6d %-10s\n",
			o.Name, t.EnergySavingsKWh, t.CostSavings, t.TotalInvestment, len(recs), breakEven)
	}
}

func cmdPresets() {
	fmt.Printf("%-18s %-8s %-10s %-14s %-8s\n", "factory_type", "groups", "kW", "fixtures", "preset")
	for _, ft := range data.FactoryTypes() {
		p := data.Preset(ft)
		kw := 0.0
		for _, m := range p.Motors {
			kw += m.RatingKW * float64(m.Quantity)
		}
		fmt.Printf("%-18s %-8d %-10.1f %-14s %-8s\n",
			ft, len(p.Motors), kw, fmt.Sprintf("%d x %gW", p.Lighting.NumFixtures, p.Lighting.WattagePerFixture), p.Source)
	}
}

func cmdClasses() {
	fmt.Printf("%-5s %-14s %-8s %s\n", "class", "name", "$/kW", "efficiency @ 25/50/75/100% load")
	for _, c := range model.EfficiencyClasses {
		pts := model.EfficiencyCurve(c).Points()
		effs := make([]string, len(pts))
		for i, p := range pts {
			effs[i] = fmt.Sprintf("%.2f", p.Y)
		}
		fmt.Printf("%-5s %-14s %-8.0f %s\n", c, c.Description(), model.MotorUnitCostPerKW(c), strings.Join(effs, " / "))
	}
}

func printResults(w io.Writer, a config.Audit, res *simulation.Results, recs []model.Recommendation) {
	t := res.Totals
	fmt.Fprintf(w, "Factory=%s  hours/year=%.0f  $%.4f/kWh\n\n", a.FactoryType, res.AnnualHours, a.Tariff.ElectricityCostPerKWh)

	fmt.Fprintf(w, "%-4s %-18s %-48s %-12s %-12s %-8s %-8s\n", "rank", "measure", "description", "invest$", "savings$/yr", "payback", "priority")
	for i, r := range recs {
		fmt.Fprintf(w, "%-4d %-18s %-48s %-12.2f %-12.2f %-8.2f %-8s\n",
			i+1, r.MeasureType, r.Description, r.Investment, r.AnnualSavings, r.PaybackYears, r.Priority)
	}
	if len(recs) == 0 {
		fmt.Fprintln(w, "(no measure pays back within its ceiling)")
	}

	fmt.Fprintf(w, "\nEnergy savings=%.0f kWh  Cost savings=$%.2f  CO2=%.1f t (%.0f cars)  Investment=$%.2f\n",
		t.EnergySavingsKWh, t.CostSavings, t.CO2ReductionTons, t.CarsOffRoad, t.TotalInvestment)
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
