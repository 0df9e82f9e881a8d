package simulation

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"energy-retrofit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecommendationsCSV(t *testing.T) {
	recs := []model.Recommendation{
		{
			MeasureType:   model.MeasureMotorUpgrade,
			Description:   "Motor 1: IE2 → IE4 (15kW × 8)",
			Investment:    4200,
			AnnualSavings: 3031.578947,
			PaybackYears:  1.385416,
			Priority:      model.PriorityHigh,
		},
		{
			MeasureType:   model.MeasureVFDInstallation,
			Description:   "Motor 1: 15kW VFD (8 units)",
			Investment:    12000,
			AnnualSavings: 5184,
			PaybackYears:  2.3148,
			Priority:      model.PriorityMedium,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteRecommendationsCSV(&buf, recs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"rank", "measure_type", "description", "investment", "annual_savings", "payback_years", "priority"}, rows[0])
	assert.Equal(t, []string{"1", "Motor Upgrade", "Motor 1: IE2 → IE4 (15kW × 8)", "4200.00", "3031.58", "1.39", "High"}, rows[1])
	assert.Equal(t, "VFD Installation", rows[2][1])
	assert.Equal(t, "5184.00", rows[2][4])
}

func TestWriteRecommendationsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecommendationsCSV(&buf, nil))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteSummaryCSV(t *testing.T) {
	res, err := New().Run(textileMotors[:1], lighting, schedule, tariff)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, Summary{
		FactoryType:        "Textile",
		AnalysisDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		NumRecommendations: 2,
		Results:            res,
	}))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	values := map[string]string{}
	for _, r := range rows[1:] {
		values[r[0]] = r[1]
	}
	assert.Equal(t, "Textile", values["factory_type"])
	assert.Equal(t, "2026-03-01", values["analysis_date"])
	assert.Equal(t, "4800", values["annual_operating_hours"])
	assert.Equal(t, "2", values["recommendations"])
	assert.Equal(t, fmtMoney(res.Totals.CostSavings), values["total_cost_savings"])
}

func TestWriteCSVFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recs.csv")
	err := WriteCSVFile(path, func(w io.Writer) error {
		return WriteRecommendationsCSV(w, nil)
	})
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "measure_type")
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 3031.58, RoundMoney(3031.578947))
	assert.Equal(t, 0.0, RoundMoney(0.004))
}
