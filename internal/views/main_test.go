package views

import (
	"errors"
	"path/filepath"
	"testing"

	"fitness-tracker/internal/controllers"
	"fitness-tracker/internal/logger"
	"fitness-tracker/internal/services"
	"fitness-tracker/internal/storage"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ controllers.View = (*MainView)(nil)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	return NewMainView(w, Options{
		DataFile: "fitness_data.json",
		Width:    400,
		Height:   600,
	}, logger.NoOpLogger{})
}

func TestMainViewInputs(t *testing.T) {
	view := newTestView(t)

	test.Type(view.Form().WeightEntry, "72.5")
	test.Type(view.Form().StepsEntry, "800")
	assert.Equal(t, "72.5", view.WeightInput())
	assert.Equal(t, "800", view.StepsInput())

	view.ClearWeightInput()
	view.ClearStepsInput()
	assert.Empty(t, view.WeightInput())
	assert.Empty(t, view.StepsInput())

	view.SetResult("hello")
	assert.Equal(t, "hello", view.Result())
}

func TestMainViewShowErrorOpensDialog(t *testing.T) {
	view := newTestView(t)

	view.ShowError("Error", errors.New("Steps cannot be negative."))

	overlay := view.GetWindow().Canvas().Overlays().Top()
	require.NotNil(t, overlay)
}

func TestMainViewWithController(t *testing.T) {
	view := newTestView(t)

	path := filepath.Join(t.TempDir(), "fitness_data.json")
	tracker, err := services.NewTrackerService(storage.NewJSONStore(path), logger.NoOpLogger{})
	require.NoError(t, err)

	mc := controllers.NewMainController(tracker, logger.NoOpLogger{})
	mc.SetMainView(view)

	test.Type(view.Form().StepsEntry, "1000")
	test.Tap(view.Actions().AddStepsButton)
	assert.Equal(t, "Added 1000 steps. Total today: 1000", view.Result())
	assert.Empty(t, view.StepsInput())

	test.Type(view.Form().WeightEntry, "70")
	test.Tap(view.Actions().SetWeightButton)
	assert.Equal(t, "Weight set to 70.0 kg.", view.Result())

	test.Tap(view.Actions().SummaryButton)
	assert.Contains(t, view.Result(), "Calories Burned: 40.0 kcal")

	test.Tap(view.Actions().ClearButton)
	assert.Empty(t, view.Result())

	reloaded, err := storage.NewJSONStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, reloaded[tracker.Today()].Steps)
}

func TestMainViewRejectsInvalidSteps(t *testing.T) {
	view := newTestView(t)

	tracker, err := services.NewTrackerService(storage.NewJSONStore(filepath.Join(t.TempDir(), "d.json")), nil)
	require.NoError(t, err)
	controllers.NewMainController(tracker, nil).SetMainView(view)

	test.Type(view.Form().StepsEntry, "-4")
	test.Tap(view.Actions().AddStepsButton)

	assert.NotNil(t, view.GetWindow().Canvas().Overlays().Top())
	assert.Equal(t, "-4", view.StepsInput())
	assert.Zero(t, tracker.Record().Steps)
}

func TestResetButtonHasDangerImportance(t *testing.T) {
	view := newTestView(t)
	assert.Equal(t, widget.DangerImportance, view.Actions().ResetButton.Importance)
}
