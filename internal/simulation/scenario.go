package simulation

import (
	"context"

	"energy-retrofit/internal/model"

	"golang.org/x/sync/errgroup"
)

// Scenario is one complete, independent engine input.
type Scenario struct {
	Name     string
	Motors   []model.MotorGroup
	Lighting model.LightingConfig
	Schedule model.OperatingSchedule
	Tariff   model.Tariff
}

// ScenarioResult pairs a scenario with its run outcome. Exactly one of
// Results and Err is set.
type ScenarioResult struct {
	Name    string
	Results *Results
	Err     error
}

// maxParallelScenarios bounds how many runs are in flight at once.
const maxParallelScenarios = 8

// RunScenarios evaluates scenarios concurrently and returns outcomes in input order.
// An invalid scenario does not stop the others; only ctx cancellation aborts the batch.
func (e *Engine) RunScenarios(ctx context.Context, scenarios []Scenario) ([]ScenarioResult, error) {
	out := make([]ScenarioResult, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelScenarios)

	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Run(sc.Motors, sc.Lighting, sc.Schedule, sc.Tariff)
			out[i] = ScenarioResult{Name: sc.Name, Results: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
