package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"tickdown/internal/i18n"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	duration   *widget.Entry
	days       *widget.Check
	hours      *widget.Check
	minutes    *widget.Check
	seconds    *widget.Check
	autoStart  *widget.Check
	chime      *widget.Check
	showLabels *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Tickdown " + i18n.T("Preferences"))

	duration := widget.NewEntry()
	duration.SetText(fmt.Sprintf("%d", int(settings.InitialDuration.Seconds())))

	days := widget.NewCheck(i18n.T("Days"), nil)
	days.SetChecked(settings.Units.Days)
	hours := widget.NewCheck(i18n.T("Hours"), nil)
	hours.SetChecked(settings.Units.Hours)
	minutes := widget.NewCheck(i18n.T("Minutes"), nil)
	minutes.SetChecked(settings.Units.Minutes)
	seconds := widget.NewCheck(i18n.T("Seconds"), nil)
	seconds.SetChecked(settings.Units.Seconds)

	autoStart := widget.NewCheck(i18n.T("Start automatically"), nil)
	autoStart.SetChecked(settings.AutoStart)

	chime := widget.NewCheck(i18n.T("Play chime when finished"), nil)
	chime.SetChecked(settings.ChimeEnabled)

	showLabels := widget.NewCheck(i18n.T("Show unit labels"), nil)
	showLabels.SetChecked(settings.ShowLabels)

	form := container.NewVBox(
		container.NewHBox(widget.NewLabel(i18n.T("Duration (seconds)")), duration),
		widget.NewLabelWithStyle(i18n.T("Preferences"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(days, hours, minutes, seconds),
		autoStart,
		chime,
		showLabels,
	)

	saveButton := widget.NewButton(i18n.T("Save"), nil)
	cancelButton := widget.NewButton(i18n.T("Cancel"), nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 320))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		duration:   duration,
		days:       days,
		hours:      hours,
		minutes:    minutes,
		seconds:    seconds,
		autoStart:  autoStart,
		chime:      chime,
		showLabels: showLabels,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if seconds, ok := parseNonNegativeInt(prefs.duration.Text); ok {
		settings.InitialDuration = time.Duration(seconds) * time.Second
	}

	settings.Units.Days = prefs.days.Checked
	settings.Units.Hours = prefs.hours.Checked
	settings.Units.Minutes = prefs.minutes.Checked
	settings.Units.Seconds = prefs.seconds.Checked
	settings.AutoStart = prefs.autoStart.Checked
	settings.ChimeEnabled = prefs.chime.Checked
	settings.ShowLabels = prefs.showLabels.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
