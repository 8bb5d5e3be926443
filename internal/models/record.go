package models

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// CaloriesPerStep is the approximate energy burned per step at ReferenceWeight.
	CaloriesPerStep = 0.04
	// StrideLength is the average stride in meters.
	StrideLength = 0.75
	// ReferenceWeight is the body weight in kg that CaloriesPerStep is calibrated for.
	ReferenceWeight = 70.0

	DateLayout = "2006-01-02"
)

var (
	ErrWeightNotSet      = errors.New("weight not set")
	ErrInvalidSteps      = errors.New("steps must be a whole number")
	ErrNegativeSteps     = errors.New("steps cannot be negative")
	ErrInvalidWeight     = errors.New("weight must be a number")
	ErrNonPositiveWeight = errors.New("weight must be positive")
)

var validate = validator.New()

// DailyRecord holds one calendar day of activity.
type DailyRecord struct {
	Steps  int      `json:"steps" validate:"gte=0"`
	Weight *float64 `json:"weight" validate:"omitempty,gt=0"`
}

// NewDailyRecord returns the zero-steps, no-weight record used for a fresh day.
func NewDailyRecord() DailyRecord {
	return DailyRecord{}
}

// HasWeight reports whether a weight has been recorded for the day.
func (r DailyRecord) HasWeight() bool {
	return r.Weight != nil
}

// Calories estimates energy burned. It fails with ErrWeightNotSet until a
// weight has been recorded.
func (r DailyRecord) Calories() (float64, error) {
	if r.Weight == nil {
		return 0, ErrWeightNotSet
	}
	return Calories(r.Steps, *r.Weight), nil
}

// Distance is the distance covered in kilometers.
func (r DailyRecord) Distance() float64 {
	return Distance(r.Steps)
}

func (r DailyRecord) Validate() error {
	return validate.Struct(r)
}

// Calories returns steps × CaloriesPerStep × weight / ReferenceWeight rounded to
// two decimals.
func Calories(steps int, weight float64) float64 {
	return round2(float64(steps) * CaloriesPerStep * weight / ReferenceWeight)
}

// Distance returns kilometers covered for steps, rounded to two decimals.
func Distance(steps int) float64 {
	return round2(float64(steps) * StrideLength / 1000)
}

// round2 rounds the exact binary value of v to two decimals. Scaling by 100
// first would round ties like 0.015 (stored as 0.01499...) the wrong way.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// ParseSteps reads a step count typed by the user.
func ParseSteps(input string) (int, error) {
	steps, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidSteps
	}
	if steps < 0 {
		return 0, ErrNegativeSteps
	}
	return steps, nil
}

// ParseWeight reads a body weight in kilograms typed by the user.
func ParseWeight(input string) (float64, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, ErrInvalidWeight
	}
	if weight <= 0 {
		return 0, ErrNonPositiveWeight
	}
	return weight, nil
}

// DateKey formats t as the local calendar date used to key the store.
func DateKey(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// FormatNumber renders a float in its shortest form while keeping at least one
// decimal place, so 40 prints as "40.0" and 0.75 as "0.75". Magnitudes below
// 1e-4 or from 1e16 up switch to exponent form ("1e-05", "1e+16").
func FormatNumber(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Store maps ISO dates to their records. It is persisted as a whole.
type Store map[string]DailyRecord

// Ensure creates an empty record for date if none exists and returns it.
func (s Store) Ensure(date string) DailyRecord {
	rec, ok := s[date]
	if !ok {
		rec = NewDailyRecord()
		s[date] = rec
	}
	return rec
}

// Clone returns a deep copy, weights included.
func (s Store) Clone() Store {
	out := make(Store, len(s))
	for date, rec := range s {
		if rec.Weight != nil {
			w := *rec.Weight
			rec.Weight = &w
		}
		out[date] = rec
	}
	return out
}

// Dates returns the stored dates in ascending order.
func (s Store) Dates() []string {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Validate checks every record, returning the first failure.
func (s Store) Validate() error {
	for _, date := range s.Dates() {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return err
		}
		if err := s[date].Validate(); err != nil {
			return err
		}
	}
	return nil
}
