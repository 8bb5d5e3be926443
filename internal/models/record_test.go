package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weight(kg float64) *float64 { return &kg }

func TestCaloriesAndDistance(t *testing.T) {
	rec := DailyRecord{Steps: 1000, Weight: weight(70)}

	cal, err := rec.Calories()
	require.NoError(t, err)
	assert.Equal(t, 40.0, cal)
	assert.Equal(t, 0.75, rec.Distance())
}

func TestCaloriesScaleWithWeight(t *testing.T) {
	assert.Equal(t, 80.0, Calories(1000, 140))
	assert.Equal(t, 2.29, Calories(57, 70.3))
	assert.Equal(t, 0.0, Calories(0, 90))
}

func TestCaloriesRequireWeight(t *testing.T) {
	_, err := DailyRecord{Steps: 500}.Calories()
	assert.ErrorIs(t, err, ErrWeightNotSet)
}

func TestDistanceRounding(t *testing.T) {
	cases := []struct {
		steps int
		want  float64
		text  string
	}{
		{7, 0.01, "0.01"},
		{20, 0.01, "0.01"},
		{60, 0.04, "0.04"},
		{140, 0.1, "0.1"},
		{460, 0.34, "0.34"},
		{1000, 0.75, "0.75"},
		{10000, 7.5, "7.5"},
	}
	for _, tc := range cases {
		got := Distance(tc.steps)
		assert.Equal(t, tc.want, got, "steps=%d", tc.steps)
		assert.Equal(t, tc.text, FormatNumber(got), "steps=%d", tc.steps)
	}
}

func TestParseSteps(t *testing.T) {
	steps, err := ParseSteps(" 1200 ")
	require.NoError(t, err)
	assert.Equal(t, 1200, steps)

	_, err = ParseSteps("-5")
	assert.ErrorIs(t, err, ErrNegativeSteps)

	for _, in := range []string{"", "abc", "12.5", "1e3"} {
		_, err = ParseSteps(in)
		assert.ErrorIs(t, err, ErrInvalidSteps, in)
	}
}

func TestParseWeight(t *testing.T) {
	w, err := ParseWeight("72.5")
	require.NoError(t, err)
	assert.Equal(t, 72.5, w)

	for _, in := range []string{"0", "-70", "-0.1"} {
		_, err = ParseWeight(in)
		assert.ErrorIs(t, err, ErrNonPositiveWeight, in)
	}
	for _, in := range []string{"", "heavy", "NaN", "Inf"} {
		_, err = ParseWeight(in)
		assert.ErrorIs(t, err, ErrInvalidWeight, in)
	}
}

func TestRecordValidate(t *testing.T) {
	assert.NoError(t, DailyRecord{}.Validate())
	assert.NoError(t, DailyRecord{Steps: 10, Weight: weight(60)}.Validate())
	assert.Error(t, DailyRecord{Steps: -1}.Validate())
	assert.Error(t, DailyRecord{Weight: weight(0)}.Validate())
}

func TestStoreValidate(t *testing.T) {
	assert.NoError(t, Store{"2026-10-18": {Steps: 3}}.Validate())
	assert.Error(t, Store{"yesterday": {Steps: 3}}.Validate())
	assert.Error(t, Store{"2026-10-18": {Steps: -3}}.Validate())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "40.0", FormatNumber(40))
	assert.Equal(t, "0.75", FormatNumber(0.75))
	assert.Equal(t, "72.5", FormatNumber(72.5))
	assert.Equal(t, "0.0", FormatNumber(0))
	assert.Equal(t, "0.0001", FormatNumber(0.0001))
	assert.Equal(t, "1e-05", FormatNumber(0.00001))
	assert.Equal(t, "1.5e-05", FormatNumber(0.000015))
	assert.Equal(t, "1e+16", FormatNumber(1e16))
	assert.Equal(t, "1.2345678901234568e+17", FormatNumber(123456789012345678))
	assert.Equal(t, "9999999999999998.0", FormatNumber(9999999999999998))
}

func TestStoreEnsureAndClone(t *testing.T) {
	s := Store{}
	rec := s.Ensure("2026-10-18")
	assert.Equal(t, DailyRecord{}, rec)
	require.Len(t, s, 1)

	s["2026-10-18"] = DailyRecord{Steps: 5, Weight: weight(80)}
	assert.Equal(t, 5, s.Ensure("2026-10-18").Steps)

	c := s.Clone()
	*c["2026-10-18"].Weight = 60
	assert.Equal(t, 80.0, *s["2026-10-18"].Weight)
}

func TestStoreDatesSorted(t *testing.T) {
	s := Store{"2026-10-18": {}, "2026-01-02": {}, "2025-12-31": {}}
	assert.Equal(t, []string{"2025-12-31", "2026-01-02", "2026-10-18"}, s.Dates())
}

func TestDailyRecordJSON(t *testing.T) {
	data, err := json.Marshal(Store{"2026-10-18": {Steps: 12}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"2026-10-18":{"steps":12,"weight":null}}`, string(data))

	var s Store
	require.NoError(t, json.Unmarshal([]byte(`{"2026-10-17":{"steps":3,"weight":81.5}}`), &s))
	assert.Equal(t, 81.5, *s["2026-10-17"].Weight)
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2026, 10, 18, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2026-10-18", DateKey(ts))
}
