package simulation

import (
	"energy-retrofit/internal/model"

	"github.com/pkg/errors"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run evaluates every motor group and the lighting configuration.
// All inputs are validated before any arithmetic; the first invalid input
// fails the whole run and no partial results are returned.
func (e *Engine) Run(motors []model.MotorGroup, lighting model.LightingConfig, schedule model.OperatingSchedule, tariff model.Tariff) (*Results, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	if err := tariff.Validate(); err != nil {
		return nil, err
	}
	for idx, g := range motors {
		if err := g.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "motor group %d", idx+1)
		}
	}
	if err := lighting.Validate(); err != nil {
		return nil, err
	}

	hours := schedule.TotalAnnualHours()
	res := &Results{
		Schedule:      schedule,
		Tariff:        tariff,
		AnnualHours:   hours,
		MotorUpgrades: make([]model.MotorUpgradeResult, 0, len(motors)),
		VFDs:          make([]model.VfdResult, 0, len(motors)),
	}

	for idx, g := range motors {
		id := idx + 1
		up, err := model.EvaluateUpgrade(id, g, hours, tariff)
		if err != nil {
			return nil, err
		}
		res.MotorUpgrades = append(res.MotorUpgrades, up)

		vfd, ok, err := model.EvaluateVFD(id, g, hours, tariff)
		if err != nil {
			return nil, err
		}
		if ok {
			res.VFDs = append(res.VFDs, vfd)
		}
	}

	lr, err := model.EvaluateRetrofit(lighting, schedule, tariff)
	if err != nil {
		return nil, errors.WithMessage(err, "lighting")
	}
	res.Lighting = lr
	res.Totals = computeTotals(res)
	return res, nil
}
