package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HeaderColor is the banner colour behind the title.
var HeaderColor = color.NRGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff}

// InputForm holds the title banner and the weight and steps entries.
type InputForm struct {
	banner      *fyne.Container
	WeightEntry *widget.Entry
	StepsEntry  *widget.Entry
}

// NewInputForm creates the banner and entry fields
func NewInputForm(title string) *InputForm {
	f := &InputForm{}
	f.createComponents()
	f.buildBanner(title)
	return f
}

func (f *InputForm) createComponents() {
	f.WeightEntry = widget.NewEntry()
	f.WeightEntry.SetPlaceHolder("e.g. 70")

	f.StepsEntry = widget.NewEntry()
	f.StepsEntry.SetPlaceHolder("e.g. 5000")
}

func (f *InputForm) buildBanner(title string) {
	heading := canvas.NewText(title, color.White)
	heading.TextSize = 20
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	f.banner = container.NewStack(
		canvas.NewRectangle(HeaderColor),
		container.NewPadded(heading),
	)
}

func (f *InputForm) Banner() *fyne.Container {
	return f.banner
}

func (f *InputForm) WeightSection() *fyne.Container {
	return container.NewVBox(
		boldLabel("Enter Weight (kg):"),
		f.WeightEntry,
	)
}

func (f *InputForm) StepsSection() *fyne.Container {
	return container.NewVBox(
		boldLabel("Enter Steps:"),
		f.StepsEntry,
	)
}

func (f *InputForm) Weight() string {
	return f.WeightEntry.Text
}

func (f *InputForm) Steps() string {
	return f.StepsEntry.Text
}

func (f *InputForm) ClearWeight() {
	f.WeightEntry.SetText("")
}

func (f *InputForm) ClearSteps() {
	f.StepsEntry.SetText("")
}

func boldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}
