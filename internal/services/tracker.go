package services

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"fitness-tracker/internal/logger"
	"fitness-tracker/internal/models"
)

// Persister loads and saves the full store.
type Persister interface {
	Load() (models.Store, error)
	Save(models.Store) error
}

// TrackerService owns the in-memory store and mirrors every mutation to disk.
type TrackerService struct {
	persister Persister
	logger    logger.Logger
	now       func() time.Time

	mu    sync.RWMutex
	data  models.Store
	today string
	stats TrackerStats
}

// TrackerStats counts what the service did during this process lifetime.
type TrackerStats struct {
	Saves     int
	SaveFails int
	LastSaved time.Time
}

type Option func(*TrackerService)

// WithClock overrides time.Now, which decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(ts *TrackerService) {
		ts.now = now
	}
}

// NewTrackerService loads the store and makes sure today's record exists.
func NewTrackerService(persister Persister, log logger.Logger, opts ...Option) (*TrackerService, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ts := &TrackerService{
		persister: persister,
		logger:    log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}

	data, err := persister.Load()
	if err != nil {
		return nil, fmt.Errorf("load fitness data: %w", err)
	}
	if data == nil {
		data = models.Store{}
	}
	if err := data.Validate(); err != nil {
		ts.logger.Warning("stored data failed validation", map[string]interface{}{
			"error": err.Error(),
		})
	}

	ts.data = data
	ts.today = models.DateKey(ts.now())
	ts.data.Ensure(ts.today)

	ts.logger.Info("fitness data loaded", map[string]interface{}{
		"days":  len(ts.data),
		"today": ts.today,
	})
	return ts, nil
}

// Today is the date key every operation applies to.
func (ts *TrackerService) Today() string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.today
}

// Record returns a copy of today's record.
func (ts *TrackerService) Record() models.DailyRecord {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.data.Clone()[ts.today]
}

// Snapshot returns a deep copy of the whole store.
func (ts *TrackerService) Snapshot() models.Store {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.data.Clone()
}

func (ts *TrackerService) Stats() TrackerStats {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.stats
}

// SetWeight records today's weight in kilograms.
func (ts *TrackerService) SetWeight(weight float64) (string, error) {
	if weight <= 0 {
		return "", models.ErrNonPositiveWeight
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	prev := ts.data[ts.today]
	next := prev
	next.Weight = &weight
	if err := ts.commit(next, prev); err != nil {
		return "", err
	}

	ts.logger.Info("weight set", map[string]interface{}{
		"date":   ts.today,
		"weight": weight,
	})
	return fmt.Sprintf("Weight set to %s kg.", models.FormatNumber(weight)), nil
}

// AddSteps adds steps to today's running total.
func (ts *TrackerService) AddSteps(steps int) (string, error) {
	if steps < 0 {
		return "", models.ErrNegativeSteps
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	prev := ts.data[ts.today]
	if steps > math.MaxInt-prev.Steps {
		return "", models.ErrInvalidSteps
	}
	next := prev
	next.Steps += steps
	if err := ts.commit(next, prev); err != nil {
		return "", err
	}

	ts.logger.Info("steps added", map[string]interface{}{
		"date":  ts.today,
		"added": steps,
		"total": next.Steps,
	})
	return fmt.Sprintf("Added %d steps. Total today: %d", steps, next.Steps), nil
}

// Calories estimates today's calories burned. Returns models.ErrWeightNotSet
// until a weight is recorded.
func (ts *TrackerService) Calories() (float64, error) {
	return ts.Record().Calories()
}

// Distance is today's distance in kilometers.
func (ts *TrackerService) Distance() float64 {
	return ts.Record().Distance()
}

// Summary renders today's totals for display.
func (ts *TrackerService) Summary() string {
	ts.mu.RLock()
	today := ts.today
	rec := ts.data[today]
	ts.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "--- Fitness Summary for %s ---\n", today)
	fmt.Fprintf(&b, "Steps Taken: %d\n", rec.Steps)
	fmt.Fprintf(&b, "Distance Covered: %s km\n", models.FormatNumber(rec.Distance()))

	calories, err := rec.Calories()
	if err != nil {
		b.WriteString(WeightMissingMessage)
	} else {
		fmt.Fprintf(&b, "Calories Burned: %s kcal", models.FormatNumber(calories))
	}
	return b.String()
}

// WeightMissingMessage replaces the calorie line until a weight is set.
const WeightMissingMessage = "Please set your weight first."

// Reset drops every stored day and starts today over from zero.
func (ts *TrackerService) Reset() (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	prevData, prevToday := ts.data, ts.today

	ts.today = models.DateKey(ts.now())
	ts.data = models.Store{ts.today: models.NewDailyRecord()}

	if err := ts.save(); err != nil {
		ts.data, ts.today = prevData, prevToday
		return "", err
	}

	ts.logger.Warning("all fitness data reset", map[string]interface{}{
		"dropped_days": len(prevData),
		"today":        ts.today,
	})
	return "All data reset to factory settings.", nil
}

// commit installs next as today's record and saves, restoring prev on failure.
// Callers hold ts.mu.
func (ts *TrackerService) commit(next, prev models.DailyRecord) error {
	if err := next.Validate(); err != nil {
		return err
	}
	ts.data[ts.today] = next
	if err := ts.save(); err != nil {
		ts.data[ts.today] = prev
		return err
	}
	return nil
}

func (ts *TrackerService) save() error {
	if err := ts.persister.Save(ts.data); err != nil {
		ts.stats.SaveFails++
		ts.logger.Error("failed to save fitness data", err, map[string]interface{}{
			"date": ts.today,
		})
		return fmt.Errorf("save fitness data: %w", err)
	}
	ts.stats.Saves++
	ts.stats.LastSaved = ts.now()
	return nil
}
