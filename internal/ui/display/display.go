package display

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"tickdown/internal/core/countdown"
	"tickdown/internal/core/model"
	"tickdown/internal/i18n"
)

// Widget renders a machine's breakdown as zero-padded digit groups with
// separators and optional unit captions. The machine owns the values;
// the widget only reads them on Refresh.
type Widget struct {
	machine    *countdown.Machine
	style      Style
	showLabels bool
	digits     map[model.Unit]*canvas.Text
	root       fyne.CanvasObject
}

// New builds a display for the machine's configured units.
func New(machine *countdown.Machine, style Style, showLabels bool) *Widget {
	display := &Widget{
		machine:    machine,
		style:      style,
		showLabels: showLabels,
		digits:     make(map[model.Unit]*canvas.Text),
	}
	display.root = display.build(machine.Units())
	display.Refresh()
	return display
}

// CanvasObject returns the renderable root.
func (display *Widget) CanvasObject() fyne.CanvasObject {
	return display.root
}

// Refresh re-reads the machine and updates the digit texts. Must run on
// the Fyne UI goroutine; callers on other goroutines wrap it in fyne.Do.
func (display *Widget) Refresh() {
	breakdown := display.machine.Breakdown()
	display.setDigit(model.UnitDays, breakdown.Days)
	display.setDigit(model.UnitHours, breakdown.Hours)
	display.setDigit(model.UnitMinutes, breakdown.Minutes)
	display.setDigit(model.UnitSeconds, breakdown.Seconds)
}

func (display *Widget) setDigit(unit model.Unit, value int) {
	digit, ok := display.digits[unit]
	if !ok {
		return
	}
	text := fmt.Sprintf("%02d", value)
	if digit.Text != text {
		digit.Text = text
		digit.Refresh()
	}
}

func (display *Widget) build(units model.UnitSet) fyne.CanvasObject {
	row := container.NewHBox()
	first := true
	for _, unit := range model.Units {
		if !units.Has(unit) {
			continue
		}
		if !first {
			row.Add(display.newSeparator())
		}
		first = false
		row.Add(display.newGroup(unit))
	}
	if first {
		// Nothing selected; fall back to a bare seconds readout.
		row.Add(display.newGroup(model.UnitSeconds))
	}
	return container.NewCenter(row)
}

func (display *Widget) newGroup(unit model.Unit) fyne.CanvasObject {
	digit := canvas.NewText("00", display.style.DigitColor)
	digit.TextSize = display.style.DigitSize
	digit.TextStyle = fyne.TextStyle{Monospace: true}
	digit.Alignment = fyne.TextAlignCenter
	display.digits[unit] = digit

	if !display.showLabels {
		return container.NewPadded(digit)
	}

	caption := canvas.NewText(unitCaption(unit), display.style.LabelColor)
	caption.TextSize = display.style.LabelSize
	caption.Alignment = fyne.TextAlignCenter

	return container.NewPadded(container.NewVBox(digit, caption))
}

func (display *Widget) newSeparator() fyne.CanvasObject {
	separator := canvas.NewText(":", display.style.SeparatorColor)
	separator.TextSize = display.style.SeparatorSize
	separator.TextStyle = fyne.TextStyle{Monospace: true}
	return separator
}

func unitCaption(unit model.Unit) string {
	switch unit {
	case model.UnitDays:
		return i18n.T("Days")
	case model.UnitHours:
		return i18n.T("Hours")
	case model.UnitMinutes:
		return i18n.T("Minutes")
	case model.UnitSeconds:
		return i18n.T("Seconds")
	}
	return string(unit)
}
