package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Actions groups the form's buttons. Each button calls the handler set for it;
// an unset handler makes the button a no-op.
type Actions struct {
	SetWeightButton *widget.Button
	AddStepsButton  *widget.Button
	SummaryButton   *widget.Button
	ClearButton     *widget.Button
	ResetButton     *widget.Button
	ExitButton      *widget.Button

	setWeightHandler func()
	addStepsHandler  func()
	summaryHandler   func()
	clearHandler     func()
	resetHandler     func()
	exitHandler      func()
}

// NewActions creates the action buttons
func NewActions() *Actions {
	a := &Actions{}
	a.createComponents()
	return a
}

func (a *Actions) createComponents() {
	a.SetWeightButton = widget.NewButton("Set Weight", func() { call(a.setWeightHandler) })
	a.AddStepsButton = widget.NewButton("Add Steps", func() { call(a.addStepsHandler) })

	a.SummaryButton = widget.NewButton("Show Summary", func() { call(a.summaryHandler) })
	a.SummaryButton.Importance = widget.SuccessImportance

	a.ClearButton = widget.NewButton("Clear", func() { call(a.clearHandler) })

	a.ResetButton = widget.NewButton("Reset All Data", func() { call(a.resetHandler) })
	a.ResetButton.Importance = widget.DangerImportance

	a.ExitButton = widget.NewButton("Exit", func() { call(a.exitHandler) })
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

func (a *Actions) SetWeightHandler(h func())   { a.setWeightHandler = h }
func (a *Actions) SetAddStepsHandler(h func()) { a.addStepsHandler = h }
func (a *Actions) SetSummaryHandler(h func())  { a.summaryHandler = h }
func (a *Actions) SetClearHandler(h func())    { a.clearHandler = h }
func (a *Actions) SetResetHandler(h func())    { a.resetHandler = h }
func (a *Actions) SetExitHandler(h func())     { a.exitHandler = h }

// Footer lays out the buttons shown under the result area.
func (a *Actions) Footer() *fyne.Container {
	return container.NewVBox(
		a.ClearButton,
		a.ResetButton,
		a.ExitButton,
	)
}
