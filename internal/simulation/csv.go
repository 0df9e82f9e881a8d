package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"energy-retrofit/internal/model"

	"github.com/shopspring/decimal"
)

// Summary is the header data of an audit report.
type Summary struct {
	FactoryType        string
	AnalysisDate       time.Time
	NumRecommendations int
	Results            *Results
}

// WriteRecommendationsCSV writes ranked recommendations, rank 1 first.
func WriteRecommendationsCSV(w io.Writer, recs []model.Recommendation) error {
	cw := csv.NewWriter(w)

	header := []string{
		"rank",
		"measure_type",
		"description",
		"investment",
		"annual_savings",
		"payback_years",
		"priority",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, r := range recs {
		row := []string{
			strconv.Itoa(i + 1),
			string(r.MeasureType),
			r.Description,
			fmtMoney(r.Investment),
			fmtMoney(r.AnnualSavings),
			fmtFixed(r.PaybackYears, 2),
			string(r.Priority),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes a two-column parameter/value report.
func WriteSummaryCSV(w io.Writer, s Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"parameter", "value"}); err != nil {
		return err
	}

	rows := [][]string{
		{"factory_type", s.FactoryType},
		{"analysis_date", fmtDate(s.AnalysisDate)},
	}
	if r := s.Results; r != nil {
		rows = append(rows,
			[]string{"annual_operating_hours", fmtFixed(r.AnnualHours, 0)},
			[]string{"electricity_cost_per_kwh", fmtFixed(r.Tariff.ElectricityCostPerKWh, 4)},
			[]string{"total_energy_savings_kwh", fmtFixed(r.Totals.EnergySavingsKWh, 0)},
			[]string{"total_cost_savings", fmtMoney(r.Totals.CostSavings)},
			[]string{"total_investment", fmtMoney(r.Totals.TotalInvestment)},
			[]string{"co2_reduction_tons", fmtFixed(r.Totals.CO2ReductionTons, 1)},
			[]string{"cars_off_road", fmtFixed(r.Totals.CarsOffRoad, 0)},
		)
	}
	rows = append(rows, []string{"recommendations", strconv.Itoa(s.NumRecommendations)})

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteCSVFile creates path (and its directory) and hands it to write.
func WriteCSVFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RoundMoney rounds x to cents using decimal arithmetic.
func RoundMoney(x float64) float64 {
	v, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return v
}

func fmtMoney(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

func fmtFixed(x float64, places int32) string {
	return decimal.NewFromFloat(x).StringFixed(places)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
