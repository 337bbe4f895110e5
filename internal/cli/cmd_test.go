package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/rushi2212/agrimitra/internal/knowledge"
	"github.com/rushi2212/agrimitra/internal/market"
	"github.com/rushi2212/agrimitra/internal/pipeline"
	"github.com/rushi2212/agrimitra/internal/repository"
	"github.com/rushi2212/agrimitra/internal/service"
	"github.com/rushi2212/agrimitra/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	states := repository.NewSQLiteFarmStateRepo(database)
	prices := repository.NewSQLitePriceRepo(database)
	uow := testutil.NewTestUoW(database)

	kb, err := knowledge.Open("")
	require.NoError(t, err)

	orch := pipeline.NewOrchestrator(pipeline.Config{
		Knowledge: kb,
		States:    states,
		UoW:       uow,
	})
	predictor := market.NewPredictor(prices, market.SyntheticSource{}, uow)

	return &App{
		DayCycle: service.NewDayCycleService(orch, states),
		Plans:    service.NewPlanService(orch, states),
		Status:   service.NewStatusService(states),
		Outlook:  service.NewOutlookService(states, predictor),
	}
}

// execute runs the root command with args, discarding cobra's own output.
func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root.Execute()
}

func TestDayCmd_NewSessionRunsFullCycle(t *testing.T) {
	app := testApp(t)

	err := execute(t, app,
		"day", "--crop", "rice", "--location", "Kolhapur", "--sowing", "2026-06-15")
	require.NoError(t, err)

	status, err := app.Status.GetStatus(context.Background(), contract.NewStatusRequest(""))
	require.NoError(t, err)
	require.Len(t, status.Sessions, 1)
	assert.Equal(t, "rice", status.Sessions[0].Crop)
	assert.Equal(t, 1, status.Sessions[0].CurrentDayIndex)
	assert.NotEmpty(t, status.Sessions[0].Calendar)
}

func TestDayCmd_ExistingSessionAdvances(t *testing.T) {
	app := testApp(t)

	plan, err := app.Plans.Plan(context.Background(), contract.PlanRequest{
		Crop: "rice", Location: "Kolhapur", SowingDate: "2026-06-15",
	})
	require.NoError(t, err)

	err = execute(t, app, "day", plan.SessionID, "--days", "3", "--response", "completed")
	require.NoError(t, err)

	status, err := app.Status.GetStatus(context.Background(), contract.NewStatusRequest(plan.SessionID))
	require.NoError(t, err)
	require.Len(t, status.Sessions, 1)
	assert.Equal(t, 3, status.Sessions[0].CurrentDayIndex)
}

func TestDayCmd_MissingCropFails(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "day")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING_IDENTITY")
}

func TestPlanCmd_BuildsCalendarWithoutAdvancing(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "plan", "--crop", "wheat", "--location", "Nashik")
	require.NoError(t, err)

	status, err := app.Status.GetStatus(context.Background(), contract.NewStatusRequest(""))
	require.NoError(t, err)
	require.Len(t, status.Sessions, 1)
	assert.Equal(t, "wheat", status.Sessions[0].Crop)
	assert.Equal(t, 0, status.Sessions[0].CurrentDayIndex)
}

func TestStatusCmd_UnknownSessionFails(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "status", "no-such-session")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_SESSION")
}

func TestOutlookCmd_KnownSession(t *testing.T) {
	app := testApp(t)

	plan, err := app.Plans.Plan(context.Background(), contract.PlanRequest{
		Crop: "rice", Location: "Kolhapur", SowingDate: "2026-06-15",
	})
	require.NoError(t, err)

	err = execute(t, app, "outlook", plan.SessionID, "--humidity", "88", "--rain", "12")
	require.NoError(t, err)
}

func TestOutlookCmd_RequiresSessionArg(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "outlook")
	require.Error(t, err)
}

func TestMarketAndPestCmds_KnownSession(t *testing.T) {
	app := testApp(t)

	plan, err := app.Plans.Plan(context.Background(), contract.PlanRequest{
		Crop: "rice", Location: "Kolhapur", SowingDate: "2026-06-15",
	})
	require.NoError(t, err)

	require.NoError(t, execute(t, app, "market", plan.SessionID))
	require.NoError(t, execute(t, app, "pest", plan.SessionID, "--humidity", "90"))
}
