package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rushi2212/agrimitra/internal/db"
	"github.com/rushi2212/agrimitra/internal/domain"
)

// SQLiteFarmStateRepo implements FarmStateRepo over a single farm_states
// table with JSON text columns for the collection-valued fields.
type SQLiteFarmStateRepo struct {
	db db.DBTX
}

// NewSQLiteFarmStateRepo creates a repo bound to a *sql.DB or an open
// transaction.
func NewSQLiteFarmStateRepo(dbtx db.DBTX) *SQLiteFarmStateRepo {
	return &SQLiteFarmStateRepo{db: dbtx}
}

const farmStateColumns = `session_id, crop, location, sowing_date, current_day_index, current_crop_stage,
	weather_risk, last_advisory, expected_pattern, soil_context, weather_forecast, weather_history,
	crop_calendar, today_actions, completed_actions, skipped_actions, delayed_actions,
	risk_events, risk_event, confidence_scores, created_at, updated_at`

func (r *SQLiteFarmStateRepo) Load(ctx context.Context, sessionID string) (*domain.FarmState, error) {
	query := `SELECT ` + farmStateColumns + ` FROM farm_states WHERE session_id = ?`
	row := r.db.QueryRowContext(ctx, query, sessionID)

	var (
		s                                        domain.FarmState
		weatherRisk                              string
		soilJSON, forecastJSON, historyJSON      string
		calendarJSON, todayJSON                  string
		completedJSON, skippedJSON, delayedJSON  string
		riskEventsJSON, confidenceJSON           string
		riskEventJSON                            sql.NullString
		createdAt, updatedAt                     string
	)
	err := row.Scan(
		&s.SessionID, &s.Crop, &s.Location, &s.SowingDate, &s.CurrentDayIndex, &s.CurrentCropStage,
		&weatherRisk, &s.LastAdvisory, &s.ExpectedWeatherPattern, &soilJSON, &forecastJSON, &historyJSON,
		&calendarJSON, &todayJSON, &completedJSON, &skippedJSON, &delayedJSON,
		&riskEventsJSON, &riskEventJSON, &confidenceJSON, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewFarmState(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading farm state %s: %w", sessionID, err)
	}

	s.WeatherRisk = domain.WeatherRisk(weatherRisk)
	decodeJSON(soilJSON, &s.SoilContext)
	decodeJSON(forecastJSON, &s.WeatherForecast)
	decodeJSON(historyJSON, &s.WeatherHistory)
	decodeJSON(calendarJSON, &s.CropCalendar)
	decodeJSON(todayJSON, &s.TodayActions)
	decodeJSON(completedJSON, &s.CompletedActions)
	decodeJSON(skippedJSON, &s.SkippedActions)
	decodeJSON(delayedJSON, &s.DelayedActions)
	decodeJSON(riskEventsJSON, &s.RiskEvents)
	decodeJSON(confidenceJSON, &s.ConfidenceScores)
	if riskEventJSON.Valid && riskEventJSON.String != "" && riskEventJSON.String != "null" {
		var ev domain.RiskEvent
		decodeJSON(riskEventJSON.String, &ev)
		if ev.Type != "" {
			s.RiskEvent = &ev
		}
	}
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	s.Normalize()
	return &s, nil
}

func (r *SQLiteFarmStateRepo) Save(ctx context.Context, state *domain.FarmState) error {
	if state.SessionID == "" {
		return fmt.Errorf("saving farm state: empty session id")
	}
	state.UpdatedAt = time.Now().UTC()
	if state.CreatedAt.IsZero() {
		state.CreatedAt = state.UpdatedAt
	}

	var riskEvent sql.NullString
	if state.RiskEvent != nil {
		riskEvent = sql.NullString{String: encodeJSON(state.RiskEvent, "{}"), Valid: true}
	}

	query := `INSERT INTO farm_states (` + farmStateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			crop = excluded.crop,
			location = excluded.location,
			sowing_date = excluded.sowing_date,
			current_day_index = excluded.current_day_index,
			current_crop_stage = excluded.current_crop_stage,
			weather_risk = excluded.weather_risk,
			last_advisory = excluded.last_advisory,
			expected_pattern = excluded.expected_pattern,
			soil_context = excluded.soil_context,
			weather_forecast = excluded.weather_forecast,
			weather_history = excluded.weather_history,
			crop_calendar = excluded.crop_calendar,
			today_actions = excluded.today_actions,
			completed_actions = excluded.completed_actions,
			skipped_actions = excluded.skipped_actions,
			delayed_actions = excluded.delayed_actions,
			risk_events = excluded.risk_events,
			risk_event = excluded.risk_event,
			confidence_scores = excluded.confidence_scores,
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		state.SessionID, state.Crop, state.Location, state.SowingDate,
		state.CurrentDayIndex, state.CurrentCropStage,
		string(state.WeatherRisk), state.LastAdvisory, state.ExpectedWeatherPattern,
		encodeJSON(state.SoilContext, "{}"),
		encodeJSON(state.WeatherForecast, "{}"),
		encodeJSON(state.WeatherHistory, "[]"),
		encodeJSON(state.CropCalendar, "[]"),
		encodeJSON(state.TodayActions, "[]"),
		encodeJSON(state.CompletedActions, "[]"),
		encodeJSON(state.SkippedActions, "[]"),
		encodeJSON(state.DelayedActions, "[]"),
		encodeJSON(state.RiskEvents, "[]"),
		riskEvent,
		encodeJSON(state.ConfidenceScores, "{}"),
		state.CreatedAt.Format(time.RFC3339),
		state.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving farm state %s: %w", state.SessionID, err)
	}
	return nil
}

func (r *SQLiteFarmStateRepo) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM farm_states WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting farm state %s: %w", sessionID, err)
	}
	return nil
}

func (r *SQLiteFarmStateRepo) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT session_id FROM farm_states ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning session id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return ids, nil
}
