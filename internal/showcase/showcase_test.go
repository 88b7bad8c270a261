package showcase_test

import (
	"bytes"
	"context"
	"testing"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/rangekit/internal/showcase"
)

func TestScenarios(t *testing.T) {
	for _, sc := range showcase.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			res := sc.Run()
			assert.True(t, res.OK(), assert.MessageF("got %s, expected %s", res.Got, res.Expected))
		})
	}
}

func TestLookup(t *testing.T) {
	sc, ok := showcase.Lookup("any_range")
	assert.True(t, ok)
	assert.Equal(t, "any_range", sc.Name)

	_, ok = showcase.Lookup("unknown")
	assert.False(t, ok)
}

func TestRunner(t *testing.T) {
	s := testcase.NewSpec(t)

	buf := testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
	runner := testcase.Let(s, func(t *testcase.T) showcase.Runner {
		return showcase.Runner{Logger: &logging.Logger{Out: buf.Get(t)}}
	})
	scenarios := testcase.LetValue[[]showcase.Scenario](s, nil)
	subject := func(t *testcase.T) ([]showcase.Report, error) {
		return runner.Get(t).Run(context.Background(), scenarios.Get(t))
	}

	s.When("every scenario succeeds", func(s *testcase.Spec) {
		scenarios.Let(s, func(t *testcase.T) []showcase.Scenario {
			return showcase.Scenarios()
		})

		s.Then("all of them are reported as success", func(t *testcase.T) {
			reports, err := subject(t)
			assert.NoError(t, err)
			assert.Equal(t, len(showcase.Scenarios()), len(reports))
			for _, rep := range reports {
				assert.Equal(t, showcase.Success, rep.Outcome)
			}
		})

		s.Then("the outcomes are logged", func(t *testcase.T) {
			_, err := subject(t)
			assert.NoError(t, err)
			assert.Contains(t, buf.Get(t).String(), `"scenario":"index_range"`)
			assert.Contains(t, buf.Get(t).String(), `"outcome":"SUCCESS"`)
		})
	})

	s.When("a scenario produces an unexpected result", func(s *testcase.Spec) {
		scenarios.Let(s, func(t *testcase.T) []showcase.Scenario {
			return []showcase.Scenario{
				{Name: "broken", Run: func() showcase.Result {
					return showcase.Result{Got: "1", Expected: "2"}
				}},
				showcase.Scenarios()[0],
			}
		})

		s.Then("it is reported, and the remaining scenarios still run", func(t *testcase.T) {
			reports, err := subject(t)
			assert.ErrorIs(t, err, showcase.ErrScenarioFailed)
			assert.Equal(t, 2, len(reports))
			assert.Equal(t, showcase.Failed, reports[0].Outcome)
			assert.Equal(t, showcase.Success, reports[1].Outcome)
			assert.Contains(t, buf.Get(t).String(), `"outcome":"FAILED"`)
		})
	})

	s.When("the context is already cancelled", func(s *testcase.Spec) {
		scenarios.Let(s, func(t *testcase.T) []showcase.Scenario {
			return showcase.Scenarios()
		})

		s.Then("no scenario runs", func(t *testcase.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			reports, err := runner.Get(t).Run(ctx, scenarios.Get(t))
			assert.ErrorIs(t, err, context.Canceled)
			assert.Empty(t, reports)
		})
	})
}
