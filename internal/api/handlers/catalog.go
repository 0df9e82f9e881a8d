package handlers

import (
	"net/http"

	"energy-retrofit/internal/api/models"
	"energy-retrofit/internal/curve"
	"energy-retrofit/internal/model"

	"github.com/gin-gonic/gin"
)

// ListEfficiencyClasses handles GET /api/v1/efficiency-classes
func ListEfficiencyClasses(c *gin.Context) {
	classes := make([]models.EfficiencyClassInfo, 0, len(model.EfficiencyClasses))
	for _, ec := range model.EfficiencyClasses {
		classes = append(classes, models.EfficiencyClassInfo{
			Class:         string(ec),
			Description:   ec.Description(),
			UnitCostPerKW: model.MotorUnitCostPerKW(ec),
			Curve:         curvePoints(model.EfficiencyCurve(ec)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"classes":           classes,
		"upgrade_target":    model.UpgradeTarget,
		"vfd_savings_curve": curvePoints(model.VFDSavingsCurve()),
		"vfd_cost_per_kw":   model.VFDCostPerKW,
	})
}

// ListLightingTypes handles GET /api/v1/lighting-types
func ListLightingTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lighting_types": model.LightingTechnologies()})
}

func curvePoints(t curve.Table) []models.CurvePoint {
	pts := t.Points()
	out := make([]models.CurvePoint, len(pts))
	for i, p := range pts {
		out[i] = models.CurvePoint{LoadFactor: p.X, Value: p.Y}
	}
	return out
}
