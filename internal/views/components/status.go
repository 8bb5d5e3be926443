package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultDisplay shows the outcome of the last action.
type ResultDisplay struct {
	container *fyne.Container
	label     *widget.Label
}

// NewResultDisplay creates an empty result area
func NewResultDisplay() *ResultDisplay {
	rd := &ResultDisplay{}
	rd.label = widget.NewLabel("")
	rd.label.Wrapping = fyne.TextWrapWord
	rd.container = container.NewPadded(rd.label)
	return rd
}

func (rd *ResultDisplay) SetText(text string) {
	rd.label.SetText(text)
}

func (rd *ResultDisplay) GetText() string {
	return rd.label.Text
}

// GetContainer returns the result area container
func (rd *ResultDisplay) GetContainer() *fyne.Container {
	return rd.container
}

// StatusBar shows which file is being tracked and for which day.
type StatusBar struct {
	container *fyne.Container
	dataLabel *widget.Label
	dayLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		dataLabel: widget.NewLabel("Data: --"),
		dayLabel:  widget.NewLabel("Today: --"),
	}
	sb.dataLabel.Truncation = fyne.TextTruncateEllipsis
	sb.container = container.NewBorder(nil, nil, nil, sb.dayLabel, sb.dataLabel)
	return sb
}

func (sb *StatusBar) SetDataFile(path string) {
	sb.dataLabel.SetText(fmt.Sprintf("Data: %s", path))
}

func (sb *StatusBar) SetToday(date string) {
	sb.dayLabel.SetText(fmt.Sprintf("Today: %s", date))
}

func (sb *StatusBar) GetDataText() string {
	return sb.dataLabel.Text
}

func (sb *StatusBar) GetDayText() string {
	return sb.dayLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
