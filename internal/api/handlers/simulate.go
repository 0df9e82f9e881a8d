package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"energy-retrofit/internal/analysis"
	"energy-retrofit/internal/api/models"
	"energy-retrofit/internal/config"
	"energy-retrofit/internal/model"
	"energy-retrofit/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SimulateHandler handles audit simulation requests
type SimulateHandler struct {
	engine    *simulation.Engine
	inventory *InventoryStore
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(inventory *InventoryStore, log logrus.FieldLogger) *SimulateHandler {
	return &SimulateHandler{
		engine:    simulation.New(),
		inventory: inventory,
		log:       log,
		now:       time.Now,
	}
}

// auditRun is one evaluated audit.
type auditRun struct {
	id              string
	audit           config.Audit
	results         *simulation.Results
	recommendations []model.Recommendation
}

// Simulate handles POST /api/v1/simulate
func (h *SimulateHandler) Simulate(c *gin.Context) {
	req, ok := h.bindSimulate(c)
	if !ok {
		return
	}
	run, err := h.run(req)
	if err != nil {
		h.fail(c, err)
		return
	}

	startYear := req.StartYear
	if startYear == 0 {
		startYear = h.now().Year()
	}
	c.JSON(http.StatusOK, buildSimulateResponse(run, startYear))
}

// Report handles POST /api/v1/simulate/report
// ?kind=summary returns the summary CSV; anything else the recommendations CSV.
func (h *SimulateHandler) Report(c *gin.Context) {
	req, ok := h.bindSimulate(c)
	if !ok {
		return
	}
	run, err := h.run(req)
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	filename := "recommendations.csv"
	if c.Query("kind") == "summary" {
		filename = "summary.csv"
		err = simulation.WriteSummaryCSV(&buf, simulation.Summary{
			FactoryType:        run.audit.FactoryType,
			AnalysisDate:       h.now(),
			NumRecommendations: len(run.recommendations),
			Results:            run.results,
		})
	} else {
		err = simulation.WriteRecommendationsCSV(&buf, run.recommendations)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "REPORT_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Compare handles POST /api/v1/simulate/compare
// The base audit is reported first, then each variation in request order.
func (h *SimulateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base := toConfig(req.Base)
	names := make([]string, 0, len(req.Variations)+1)
	configs := make([]config.Config, 0, len(req.Variations)+1)
	names = append(names, "base")
	configs = append(configs, base)
	for _, v := range req.Variations {
		names = append(names, v.Name)
		configs = append(configs, config.Merge(base, toConfig(v.Overrides)))
	}

	comparison := make([]models.ComparisonResult, len(configs))
	audits := make([]config.Audit, len(configs))
	scenarios := make([]simulation.Scenario, 0, len(configs))
	slot := make([]int, 0, len(configs)) // scenario index -> comparison index

	for i := range configs {
		comparison[i].Name = names[i]
		cfg, err := h.prepare(configs[i])
		if err != nil {
			comparison[i].Status = "error"
			comparison[i].Error = &models.ErrorDetail{Code: errorCode(err), Message: err.Error()}
			continue
		}
		a := cfg.Audit()
		audits[i] = a
		scenarios = append(scenarios, simulation.Scenario{
			Name:     names[i],
			Motors:   a.Motors,
			Lighting: a.Lighting,
			Schedule: a.Schedule,
			Tariff:   a.Tariff,
		})
		slot = append(slot, i)
	}

	outcomes, err := h.engine.RunScenarios(c.Request.Context(), scenarios)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "COMPARE_ABORTED",
				Message: err.Error(),
			},
		})
		return
	}
	for j, o := range outcomes {
		i := slot[j]
		if o.Err != nil {
			comparison[i].Status = "error"
			comparison[i].Error = &models.ErrorDetail{Code: errorCode(o.Err), Message: o.Err.Error()}
			continue
		}
		recs := analysis.Rank(o.Results, audits[i].Ceilings)
		totals := buildTotals(o.Results.Totals)
		comparison[i].Status = "ok"
		comparison[i].Totals = &totals
		comparison[i].NumRecommendations = len(recs)
		comparison[i].BreakEvenYear = simulation.Project(o.Results, audits[i].AnalysisYears).BreakEvenYear
	}

	id := uuid.NewString()
	h.log.WithFields(logrus.Fields{
		"compare_id": id,
		"variations": len(req.Variations),
	}).Info("comparison complete")

	c.JSON(http.StatusOK, models.CompareResponse{
		ID:         id,
		Comparison: comparison,
	})
}

// Helper methods

// bindSimulate accepts an empty body as "all defaults".
func (h *SimulateHandler) bindSimulate(c *gin.Context) (models.SimulateRequest, bool) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return req, false
	}
	return req, true
}

func (h *SimulateHandler) run(req models.SimulateRequest) (*auditRun, error) {
	cfg, err := h.prepare(toConfig(req))
	if err != nil {
		return nil, err
	}
	a := cfg.Audit()
	res, err := h.engine.Run(a.Motors, a.Lighting, a.Schedule, a.Tariff)
	if err != nil {
		return nil, err
	}
	run := &auditRun{
		id:              uuid.NewString(),
		audit:           a,
		results:         res,
		recommendations: analysis.Rank(res, a.Ceilings),
	}
	h.log.WithFields(logrus.Fields{
		"run_id":          run.id,
		"factory_type":    a.FactoryType,
		"motor_groups":    len(a.Motors),
		"recommendations": len(run.recommendations),
	}).Info("simulation complete")
	return run, nil
}

// prepare resolves the inventory file, fills defaults and validates.
func (h *SimulateHandler) prepare(cfg config.Config) (*config.Config, error) {
	if cfg.InventoryFile != "" {
		inv, err := h.inventory.Load(cfg.InventoryFile)
		if err != nil {
			return nil, err
		}
		cfg.ApplyInventory(inv)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (h *SimulateHandler) fail(c *gin.Context, err error) {
	code := errorCode(err)
	h.log.WithError(err).WithField("code", code).Warn("simulation rejected")
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidMotorGroup):
		return "INVALID_MOTOR_GROUP"
	case errors.Is(err, model.ErrInvalidLightingConfig):
		return "INVALID_LIGHTING"
	case errors.Is(err, model.ErrInvalidSchedule):
		return "INVALID_SCHEDULE"
	case errors.Is(err, model.ErrInvalidTariff):
		return "INVALID_TARIFF"
	case errors.Is(err, ErrInventoryNotFound):
		return "INVENTORY_NOT_FOUND"
	default:
		return "INVALID_INPUT"
	}
}

func toConfig(req models.SimulateRequest) config.Config {
	cfg := config.Config{
		FactoryType:   req.FactoryType,
		InventoryFile: req.InventoryFile,
		Schedule: config.ScheduleConfig{
			OperatingDaysPerYear: req.Schedule.OperatingDaysPerYear,
			ShiftsPerDay:         req.Schedule.ShiftsPerDay,
			HoursPerShift:        req.Schedule.HoursPerShift,
		},
		Tariff: config.TariffConfig{
			ElectricityCostPerKWh:  req.Tariff.ElectricityCostPerKWh,
			DemandChargePerKWMonth: req.Tariff.DemandChargePerKWMonth,
			CO2FactorKgPerKWh:      req.Tariff.CO2FactorKgPerKWh,
		},
		Lighting: config.LightingConfig{
			FixtureType:        req.Lighting.FixtureType,
			NumFixtures:        req.Lighting.NumFixtures,
			WattagePerFixture:  req.Lighting.WattagePerFixture,
			DailyHours:         req.Lighting.DailyHours,
			ProposedLEDWattage: req.Lighting.ProposedLEDWattage,
		},
		Ranking: config.RankingConfig{
			MotorMaxPaybackYears:    req.Ranking.MotorMaxPaybackYears,
			VFDMaxPaybackYears:      req.Ranking.VFDMaxPaybackYears,
			LightingMaxPaybackYears: req.Ranking.LightingMaxPaybackYears,
		},
		AnalysisYears: req.AnalysisYears,
	}
	for _, m := range req.Motors {
		cfg.Motors = append(cfg.Motors, config.MotorConfig{
			RatingKW:      m.RatingKW,
			Quantity:      m.Quantity,
			LoadFactor:    m.LoadFactor,
			Class:         m.Class,
			VFDApplicable: m.VFDApplicable,
		})
	}
	return cfg
}

func buildSimulateResponse(run *auditRun, startYear int) models.SimulateResponse {
	r := run.results
	recs := make([]models.RecommendationInfo, len(run.recommendations))
	for i, rec := range run.recommendations {
		recs[i] = models.RecommendationInfo{
			Rank:          i + 1,
			MeasureType:   string(rec.MeasureType),
			SourceID:      rec.SourceID,
			Description:   rec.Description,
			Investment:    simulation.RoundMoney(rec.Investment),
			AnnualSavings: simulation.RoundMoney(rec.AnnualSavings),
			PaybackYears:  rec.PaybackYears,
			Priority:      string(rec.Priority),
		}
	}
	return models.SimulateResponse{
		ID:              run.id,
		Status:          "completed",
		FactoryType:     run.audit.FactoryType,
		AnnualHours:     r.AnnualHours,
		MotorUpgrades:   r.MotorUpgrades,
		VFDs:            r.VFDs,
		Lighting:        r.Lighting,
		Totals:          buildTotals(r.Totals),
		Recommendations: recs,
		Projection:      simulation.Project(r, run.audit.AnalysisYears),
		Roadmap:         analysis.BuildRoadmap(run.recommendations, startYear),
	}
}

func buildTotals(t simulation.Totals) models.TotalsSummary {
	return models.TotalsSummary{
		EnergySavingsKWh:       t.EnergySavingsKWh,
		CostSavings:            simulation.RoundMoney(t.CostSavings),
		CO2ReductionTons:       t.CO2ReductionTons,
		CarsOffRoad:            t.CarsOffRoad,
		MotorUpgradeInvestment: simulation.RoundMoney(t.MotorUpgradeInvestment),
		VFDInvestment:          simulation.RoundMoney(t.VFDInvestment),
		LightingInvestment:     simulation.RoundMoney(t.LightingInvestment),
		TotalInvestment:        simulation.RoundMoney(t.TotalInvestment),
		PeakDemandReductionKW:  t.PeakDemandReductionKW,
		AnnualDemandSavings:    simulation.RoundMoney(t.AnnualDemandSavings),
	}
}
