package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/repository"
	"github.com/rushi2212/agrimitra/internal/testutil"
)

func TestGetStatus_SingleSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	states := repository.NewSQLiteFarmStateRepo(database)
	ctx := context.Background()

	state := testutil.NewFarmState(
		testutil.WithCalendar(testutil.RiceCalendar()),
		testutil.WithDayIndex(10),
	)
	state.CurrentCropStage = "Vegetative"
	state.LastAdvisory = "test advisory"
	state.SkippedActions = []domain.ActionRecord{{Action: "Fungicide spray", Day: 9, Reason: "blocked"}}
	state.RiskEvents = []domain.RiskEvent{{Type: domain.RiskActionBlocked, Reason: "Rain"}}
	require.NoError(t, states.Save(ctx, state))

	svc := NewStatusService(states)
	resp, err := svc.GetStatus(ctx, contract.NewStatusRequest(state.SessionID))
	require.NoError(t, err)

	require.Len(t, resp.Sessions, 1)
	view := resp.Sessions[0]
	assert.Equal(t, "rice", view.Crop)
	assert.Equal(t, 10, view.CurrentDayIndex)
	assert.Equal(t, "Vegetative", view.CurrentStage)
	assert.Equal(t, 61, view.TotalDays)
	assert.Equal(t, 1, view.SkippedCount)
	assert.Equal(t, 1, view.RiskEventCount)
	assert.Equal(t, "test advisory", view.LastAdvisory)
	assert.Len(t, view.Calendar, 3)
	assert.False(t, view.CycleComplete)
}

func TestGetStatus_HistoryExcluded(t *testing.T) {
	database := testutil.NewTestDB(t)
	states := repository.NewSQLiteFarmStateRepo(database)
	ctx := context.Background()

	state := testutil.NewFarmState(testutil.WithCalendar(testutil.RiceCalendar()))
	require.NoError(t, states.Save(ctx, state))

	req := contract.NewStatusRequest(state.SessionID)
	req.IncludeHistory = false

	resp, err := NewStatusService(states).GetStatus(ctx, req)
	require.NoError(t, err)

	require.Len(t, resp.Sessions, 1)
	assert.Nil(t, resp.Sessions[0].Calendar)
	assert.Equal(t, 61, resp.Sessions[0].TotalDays)
}

func TestGetStatus_AllSessions(t *testing.T) {
	database := testutil.NewTestDB(t)
	states := repository.NewSQLiteFarmStateRepo(database)
	ctx := context.Background()

	require.NoError(t, states.Save(ctx, testutil.NewFarmState()))
	require.NoError(t, states.Save(ctx, testutil.NewFarmState(testutil.WithCrop("wheat"))))

	resp, err := NewStatusService(states).GetStatus(ctx, contract.StatusRequest{})
	require.NoError(t, err)

	assert.Len(t, resp.Sessions, 2)
}

func TestGetStatus_UnknownSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	states := repository.NewSQLiteFarmStateRepo(database)

	_, err := NewStatusService(states).GetStatus(context.Background(), contract.NewStatusRequest("nope"))

	var statusErr *contract.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, contract.StatusErrUnknownSession, statusErr.Code)
}
