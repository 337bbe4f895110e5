package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDayCycleRequest_SetsDefaults(t *testing.T) {
	req := NewDayCycleRequest("session-1")

	assert.Equal(t, "session-1", req.SessionID)
	assert.Equal(t, 1, req.Days)
	assert.Empty(t, req.Crop)
	assert.Empty(t, req.Response)
}

func TestNewStatusRequest_SetsDefaults(t *testing.T) {
	req := NewStatusRequest("session-1")

	assert.Equal(t, "session-1", req.SessionID)
	assert.True(t, req.IncludeHistory)
}

func TestNewOutlookRequest_SetsDefaults(t *testing.T) {
	req := NewOutlookRequest("session-1")

	assert.Equal(t, "Maharashtra", req.MarketState)
	assert.InDelta(t, 27, req.Conditions.TemperatureC, 1e-9)
}

func TestDayCycleError_ErrorString(t *testing.T) {
	err := &DayCycleError{
		Code:    DayCycleErrMissingIdentity,
		Message: "crop and location are required for a new session",
	}
	assert.Equal(t, "MISSING_IDENTITY: crop and location are required for a new session", err.Error())
}

func TestDayCycleErrorCodes_AreDistinct(t *testing.T) {
	codes := []DayCycleErrorCode{
		DayCycleErrMissingIdentity,
		DayCycleErrInvalidDays,
		DayCycleErrInternal,
	}
	seen := make(map[DayCycleErrorCode]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate error code: %s", c)
		seen[c] = true
	}
}
