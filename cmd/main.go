package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"tickdown/internal/core/countdown"
	"tickdown/internal/core/model"
	"tickdown/internal/i18n"
	"tickdown/internal/platform"
	"tickdown/internal/sound"
	"tickdown/internal/storage"
	"tickdown/internal/ui/display"
	"tickdown/internal/ui/preferences"
	"tickdown/internal/ui/tray"
)

const appName = "Tickdown"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings", zap.Error(err))
	}

	fyneApp := app.NewWithID("io.tickdown.app")
	mainWindow := fyneApp.NewWindow(appName)

	chimer := sound.NewChimer(logger)

	var (
		machine       *countdown.Machine
		displayWidget *display.Widget
		trayManager   *tray.Manager
		toggleButton  *widget.Button
		finishedLabel *widget.Label
	)
	chimeEnabled := settings.ChimeEnabled
	revision := 0

	// Each saved settings revision is a new countdown identity, which
	// resets the machine to the configured duration.
	buildConfig := func(settings preferences.Settings, revision int) model.Config {
		config := settings.CountdownConfig(strconv.Itoa(revision))
		config.OnChange = func(remaining time.Duration) {
			fyne.Do(func() {
				displayWidget.Refresh()
				if trayManager != nil {
					trayManager.SetStatus(formatStatus(remaining))
				}
			})
		}
		config.OnFinish = func() {
			logger.Info("countdown finished")
			if chimeEnabled {
				chimer.Play()
			}
			fyne.Do(func() {
				finishedLabel.SetText(i18n.T("Time is up!"))
			})
		}
		return config
	}

	machine = countdown.New(buildConfig(settings, revision), countdown.SystemClock)
	scheduler := countdown.NewScheduler(machine, time.Second)
	binding := platform.BindLifecycle(fyneApp.Lifecycle(), machine, logger)

	displayWidget = display.New(machine, display.DefaultStyle(), settings.ShowLabels)
	finishedLabel = widget.NewLabel("")
	finishedLabel.Alignment = fyne.TextAlignCenter

	updateToggle := func() {
		if machine.Running() {
			toggleButton.SetText(i18n.T("Pause"))
		} else {
			toggleButton.SetText(i18n.T("Start"))
		}
		if trayManager != nil {
			trayManager.SetPaused(!machine.Running())
		}
	}

	togglePause := func() {
		machine.SetRunning(!machine.Running())
		updateToggle()
	}

	reset := func() {
		machine.Reset()
		finishedLabel.SetText("")
		displayWidget.Refresh()
		if trayManager != nil {
			trayManager.SetStatus(formatStatus(machine.Remaining()))
		}
	}

	toggleButton = widget.NewButton(i18n.T("Start"), togglePause)
	resetButton := widget.NewButton(i18n.T("Reset"), reset)

	makeContent := func() fyne.CanvasObject {
		return container.NewVBox(
			displayWidget.CanvasObject(),
			finishedLabel,
			container.NewHBox(layout.NewSpacer(), toggleButton, resetButton, layout.NewSpacer()),
		)
	}

	var prefsWindow *preferences.Window
	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		chimeEnabled = updated.ChimeEnabled
		revision++
		machine.Reconfigure(buildConfig(updated, revision))
		if err := storage.SaveSettings(appName, updated); err != nil {
			logger.Warn("save settings", zap.Error(err))
		}
		displayWidget = display.New(machine, display.DefaultStyle(), updated.ShowLabels)
		finishedLabel.SetText("")
		mainWindow.SetContent(makeContent())
		updateToggle()
		logger.Info("settings applied",
			zap.Duration("initial", updated.InitialDuration),
			zap.Bool("auto_start", updated.AutoStart))
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnTogglePause: togglePause,
			OnReset:       reset,
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
		trayManager.SetStatus(formatStatus(machine.Remaining()))
	}

	updateToggle()
	scheduler.Start()

	mainWindow.SetContent(makeContent())
	mainWindow.Resize(fyne.NewSize(420, 180))
	mainWindow.SetCloseIntercept(func() {
		mainWindow.Hide()
	})

	fyneApp.Lifecycle().SetOnStopped(func() {
		scheduler.Stop()
		binding.Unbind()
		machine.Close()
	})

	mainWindow.Show()
	fyneApp.Run()
}

func formatStatus(remaining time.Duration) string {
	breakdown := countdown.Split(remaining)
	if breakdown.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", breakdown.Days, breakdown.Hours, breakdown.Minutes, breakdown.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", breakdown.Hours, breakdown.Minutes, breakdown.Seconds)
}
