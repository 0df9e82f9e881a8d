package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"energy-retrofit/internal/analysis"
	"energy-retrofit/internal/config"
	"energy-retrofit/internal/data"
	"energy-retrofit/internal/model"
	"energy-retrofit/internal/simulation"

	"github.com/sirupsen/logrus"
)

// Demo:
// - Pick a factory preset (or a YAML config)
// - Run the engine with default schedule and tariff
// - Show every evaluated measure, the ranking, the projection and the roadmap
func main() {
	factory := flag.String("factory", data.DefaultFactoryType, "Factory type preset")
	cfgPath := flag.String("config", "", "Path to YAML config (optional, overrides --factory)")
	outCSV := flag.String("out", "", "Optional path to write recommendations CSV (e.g. results/recommendations.csv)")
	flag.Parse()

	log := logrus.New()

	cfg := &config.Config{FactoryType: *factory}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.WithError(err).Fatal("load config")
		}
		cfg = loaded
	} else {
		cfg.ApplyDefaults()
	}
	a := cfg.Audit()

	res, err := simulation.New().Run(a.Motors, a.Lighting, a.Schedule, a.Tariff)
	if err != nil {
		log.WithError(err).Fatal("simulate")
	}
	recs := analysis.Rank(res, a.Ceilings)

	fmt.Printf("Factory=%s  %d motor groups  %d x %gW %s\n", a.FactoryType, len(a.Motors),
		a.Lighting.NumFixtures, a.Lighting.WattagePerFixture, a.Lighting.FixtureType)
	fmt.Printf("Schedule=%d days x %d shifts x %d h = %.0f h/year\n\n",
		a.Schedule.OperatingDaysPerYear, a.Schedule.ShiftsPerDay, a.Schedule.HoursPerShift, res.AnnualHours)

	for _, m := range res.MotorUpgrades {
		fmt.Printf("motor %d  %5.1fkW x%-3d lf=%.2f  %s %.3f -> IE4 %.3f  save=%9.0f kWh  $%9.2f  cost=$%9.2f  payback=%s\n",
			m.MotorID, m.RatingKW, m.Quantity, m.LoadFactor, m.CurrentClass, m.CurrentEfficiency,
			m.UpgradedEfficiency, m.EnergySavingsKWh, m.CostSavings, m.UpgradeCost, payback(m.PaybackYears))
	}
	for _, v := range res.VFDs {
		fmt.Printf("vfd   %d  %5.1fkW x%-3d lf=%.2f  %4.1f%%  save=%9.0f kWh  $%9.2f  cost=$%9.2f  payback=%s\n",
			v.MotorID, v.RatingKW, v.Quantity, v.LoadFactor, v.SavingsPercent,
			v.EnergySavingsKWh, v.CostSavings, v.VFDCost, payback(v.PaybackYears))
	}
	l := res.Lighting
	fmt.Printf("led      %d fixtures %gW -> %gW  %.0f h  save=%9.0f kWh (%.0f%%)  $%9.2f  cost=$%9.2f  payback=%s\n\n",
		l.NumFixtures, a.Lighting.WattagePerFixture, l.LEDWattage, l.AnnualHours, l.EnergySavingsKWh,
		l.SavingsPercent, l.CostSavings, l.RetrofitCost, payback(l.PaybackYears))

	fmt.Println("Recommendations:")
	for i, r := range recs {
		fmt.Printf("  %d. [%s] %s  payback=%.2f yrs\n", i+1, r.Priority, r.Description, r.PaybackYears)
	}

	p := simulation.Project(res, a.AnalysisYears)
	if p.BeyondHorizon {
		fmt.Printf("\nBreak-even beyond %d years\n", p.HorizonYears)
	} else {
		fmt.Printf("\nBreak-even in year %d\n", p.BreakEvenYear)
	}

	fmt.Println("\nRoadmap:")
	for _, s := range analysis.BuildRoadmap(recs, time.Now().Year()) {
		fmt.Printf("  %d %s  %-60s %d months\n", s.Year, s.Phase, s.Action, s.DurationMonths)
	}

	if *outCSV != "" {
		err := simulation.WriteCSVFile(*outCSV, func(w io.Writer) error {
			return simulation.WriteRecommendationsCSV(w, recs)
		})
		if err != nil {
			log.WithError(err).Fatal("write csv")
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	t := res.Totals
	fmt.Printf("\nDone. Savings=$%.2f/yr  Investment=$%.2f  CO2=%.1f t/yr  Peak demand -%.1f kW ($%.2f/yr)\n",
		t.CostSavings, t.TotalInvestment, t.CO2ReductionTons, t.PeakDemandReductionKW, t.AnnualDemandSavings)
}

func payback(years float64) string {
	if !model.HasPayback(years) {
		return "never"
	}
	return fmt.Sprintf("%.2f yrs", years)
}
