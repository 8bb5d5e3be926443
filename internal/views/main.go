package views

import (
	"fitness-tracker/internal/logger"
	"fitness-tracker/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// Options configures the main view.
type Options struct {
	Title           string
	BackgroundImage string
	DataFile        string
	Width           float32
	Height          float32
}

// MainView is the single form window of the tracker.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	background    *components.Background
	form          *components.InputForm
	actions       *components.Actions
	result        *components.ResultDisplay
	statusBar     *components.StatusBar
}

// NewMainView builds the form and installs it as the window content.
func NewMainView(window fyne.Window, opts Options, log logger.Logger) *MainView {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if opts.Title == "" {
		opts.Title = "Fitness Tracker"
	}

	view := &MainView{
		window:     window,
		background: components.NewBackground(opts.BackgroundImage, log),
		form:       components.NewInputForm(opts.Title),
		actions:    components.NewActions(),
		result:     components.NewResultDisplay(),
		statusBar:  components.NewStatusBar(),
	}
	view.statusBar.SetDataFile(opts.DataFile)

	view.buildLayout()
	if opts.Width > 0 && opts.Height > 0 {
		window.Resize(fyne.NewSize(opts.Width, opts.Height))
	}
	return view
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	form := container.NewVBox(
		mv.form.Banner(),
		mv.form.WeightSection(),
		mv.actions.SetWeightButton,
		mv.form.StepsSection(),
		mv.actions.AddStepsButton,
		mv.actions.SummaryButton,
		mv.result.GetContainer(),
		mv.actions.Footer(),
	)

	content := container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewVScroll(container.NewPadded(form)),
	)

	mv.mainContainer = container.NewStack(mv.background.GetObject(), content)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) WeightInput() string { return mv.form.Weight() }
func (mv *MainView) StepsInput() string  { return mv.form.Steps() }
func (mv *MainView) ClearWeightInput()   { mv.form.ClearWeight() }
func (mv *MainView) ClearStepsInput()    { mv.form.ClearSteps() }

// SetResult replaces the text in the result area.
func (mv *MainView) SetResult(text string) {
	mv.result.SetText(text)
}

func (mv *MainView) Result() string {
	return mv.result.GetText()
}

// SetToday shows the date being tracked in the status bar.
func (mv *MainView) SetToday(date string) {
	mv.statusBar.SetToday(date)
}

// Event handler setters - called by controller

func (mv *MainView) SetWeightHandler(handler func())   { mv.actions.SetWeightHandler(handler) }
func (mv *MainView) SetAddStepsHandler(handler func()) { mv.actions.SetAddStepsHandler(handler) }
func (mv *MainView) SetSummaryHandler(handler func())  { mv.actions.SetSummaryHandler(handler) }
func (mv *MainView) SetClearHandler(handler func())    { mv.actions.SetClearHandler(handler) }
func (mv *MainView) SetResetHandler(handler func())    { mv.actions.SetResetHandler(handler) }
func (mv *MainView) SetExitHandler(handler func())     { mv.actions.SetExitHandler(handler) }

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	d := dialog.NewError(err, mv.window)
	d.Show()
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Form exposes the entry fields, used by tests to type into them.
func (mv *MainView) Form() *components.InputForm {
	return mv.form
}

// Actions exposes the buttons, used by tests to tap them.
func (mv *MainView) Actions() *components.Actions {
	return mv.actions
}
