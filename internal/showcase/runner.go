package showcase

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrScenarioFailed errorkit.Error = "ErrScenarioFailed"

// Outcome tells whether a scenario produced its expected result.
type Outcome string

const (
	Success Outcome = "SUCCESS"
	Failed  Outcome = "FAILED"
)

// Report is the outcome of a single scenario run.
type Report struct {
	Scenario string
	Outcome  Outcome
	Result   Result
}

// Runner executes scenarios and logs their outcome.
// When Logger is nil, the package level logger is used.
type Runner struct {
	Logger *logging.Logger
}

// Run executes the scenarios in order.
// Every scenario runs even if a previous one failed,
// and the failures are returned merged into a single error.
func (r Runner) Run(ctx context.Context, scenarios []Scenario) ([]Report, error) {
	var (
		reports []Report
		errs    []error
	)
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		res := sc.Run()
		rep := Report{Scenario: sc.Name, Outcome: Success, Result: res}
		if !res.OK() {
			rep.Outcome = Failed
			errs = append(errs, ErrScenarioFailed.F("%s: got %s, expected %s", sc.Name, res.Got, res.Expected))
		}
		r.log(ctx, rep)
		reports = append(reports, rep)
	}
	return reports, errorkit.Merge(errs...)
}

func (r Runner) log(ctx context.Context, rep Report) {
	details := []logging.Detail{
		logging.Field("scenario", rep.Scenario),
		logging.Field("outcome", string(rep.Outcome)),
	}
	if rep.Outcome == Success {
		r.info(ctx, "scenario finished", details...)
		return
	}
	details = append(details,
		logging.Field("result", rep.Result.Got),
		logging.Field("expected", rep.Result.Expected))
	r.warn(ctx, "scenario finished with unexpected result", details...)
}

func (r Runner) info(ctx context.Context, msg string, ds ...logging.Detail) {
	if r.Logger != nil {
		r.Logger.Info(ctx, msg, ds...)
		return
	}
	logger.Info(ctx, msg, ds...)
}

func (r Runner) warn(ctx context.Context, msg string, ds ...logging.Detail) {
	if r.Logger != nil {
		r.Logger.Warn(ctx, msg, ds...)
		return
	}
	logger.Warn(ctx, msg, ds...)
}
