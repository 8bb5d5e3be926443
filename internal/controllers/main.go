package controllers

import (
	"errors"
	"fmt"
	"sync"

	"fitness-tracker/internal/logger"
	"fitness-tracker/internal/models"
)

// Tracker is the slice of the tracker service the controller drives.
type Tracker interface {
	SetWeight(weight float64) (string, error)
	AddSteps(steps int) (string, error)
	Summary() string
	Reset() (string, error)
}

// View is what the controller needs from the presentation layer.
type View interface {
	WeightInput() string
	StepsInput() string
	ClearWeightInput()
	ClearStepsInput()
	SetResult(text string)
	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))

	SetWeightHandler(handler func())
	SetAddStepsHandler(handler func())
	SetSummaryHandler(handler func())
	SetClearHandler(handler func())
	SetResetHandler(handler func())
	SetExitHandler(handler func())
}

const (
	errorTitle        = "Error"
	resetConfirmTitle = "Confirm Reset"
	resetConfirmText  = "Are you sure you want to reset all data? This cannot be undone."
)

// MainController binds view events to tracker operations.
type MainController struct {
	tracker Tracker
	logger  logger.Logger

	mu       sync.Mutex
	mainView View
	quit     func()
	stopped  bool
}

func NewMainController(tracker Tracker, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		tracker: tracker,
		logger:  log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// SetQuitHandler sets what Exit and Shutdown call to stop the application.
func (mc *MainController) SetQuitHandler(quit func()) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.quit = quit
}

// SetWeight handles the Set Weight button.
func (mc *MainController) SetWeight() {
	weight, err := models.ParseWeight(mc.mainView.WeightInput())
	if err != nil {
		mc.handleError(err)
		return
	}

	result, err := mc.tracker.SetWeight(weight)
	if err != nil {
		mc.handleError(err)
		return
	}

	mc.mainView.SetResult(result)
	mc.mainView.ClearWeightInput()
}

// AddSteps handles the Add Steps button.
func (mc *MainController) AddSteps() {
	steps, err := models.ParseSteps(mc.mainView.StepsInput())
	if err != nil {
		mc.handleError(err)
		return
	}

	result, err := mc.tracker.AddSteps(steps)
	if err != nil {
		mc.handleError(err)
		return
	}

	mc.mainView.SetResult(result)
	mc.mainView.ClearStepsInput()
}

// ShowSummary displays today's totals.
func (mc *MainController) ShowSummary() {
	mc.mainView.SetResult(mc.tracker.Summary())
}

// Clear empties the inputs and result area. Stored data is untouched.
func (mc *MainController) Clear() {
	mc.mainView.ClearWeightInput()
	mc.mainView.ClearStepsInput()
	mc.mainView.SetResult("")
}

// ResetAll asks for confirmation, then wipes every stored day.
func (mc *MainController) ResetAll() {
	mc.mainView.ShowConfirm(resetConfirmTitle, resetConfirmText, func(confirmed bool) {
		if !confirmed {
			mc.logger.Debug("reset cancelled", nil)
			return
		}

		result, err := mc.tracker.Reset()
		if err != nil {
			mc.handleError(err)
			return
		}

		mc.mainView.SetResult(result)
		mc.mainView.ClearWeightInput()
		mc.mainView.ClearStepsInput()
	})
}

// Exit quits the application.
func (mc *MainController) Exit() {
	mc.logger.Info("exit requested", nil)
	mc.Shutdown()
}

// Shutdown stops the application once. Safe to call from a signal handler.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	if mc.stopped {
		mc.mu.Unlock()
		return
	}
	mc.stopped = true
	quit := mc.quit
	mc.mu.Unlock()

	if quit != nil {
		quit()
	}
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetWeightHandler(mc.SetWeight)
	mc.mainView.SetAddStepsHandler(mc.AddSteps)
	mc.mainView.SetSummaryHandler(mc.ShowSummary)
	mc.mainView.SetClearHandler(mc.Clear)
	mc.mainView.SetResetHandler(mc.ResetAll)
	mc.mainView.SetExitHandler(mc.Exit)
}

// handleError reports err in a modal dialog. Input errors are expected and
// only logged at debug level.
func (mc *MainController) handleError(err error) {
	msg := UserMessage(err)
	if isInputError(err) {
		mc.logger.Debug("input rejected", map[string]interface{}{"reason": msg})
	} else {
		mc.logger.Error("operation failed", err, nil)
	}
	mc.mainView.ShowError(errorTitle, errors.New(msg))
}

func isInputError(err error) bool {
	return errors.Is(err, models.ErrInvalidWeight) ||
		errors.Is(err, models.ErrNonPositiveWeight) ||
		errors.Is(err, models.ErrInvalidSteps) ||
		errors.Is(err, models.ErrNegativeSteps)
}

// UserMessage turns an error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidWeight):
		return "Please enter a valid number for weight."
	case errors.Is(err, models.ErrNonPositiveWeight):
		return "Weight must be positive."
	case errors.Is(err, models.ErrInvalidSteps):
		return "Please enter a valid number for steps."
	case errors.Is(err, models.ErrNegativeSteps):
		return "Steps cannot be negative."
	default:
		return fmt.Sprintf("Could not save fitness data: %v", err)
	}
}
