package main

import (
	"runtime"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/controllers"
	"fitness-tracker/internal/logger"
	"fitness-tracker/internal/services"
	"fitness-tracker/internal/shutdown"
	"fitness-tracker/internal/storage"
	"fitness-tracker/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application wires the fyne app to the tracker using MVC
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  *logger.ZerologAdapter
	config  *config.Config

	controller *controllers.MainController
	view       *views.MainView
	tracker    *services.TrackerService
	shutdown   *shutdown.Manager
}

// NewApplication loads the data file and builds the window.
func NewApplication(cfg *config.Config, log *logger.ZerologAdapter) (*Application, error) {
	appLogger := log.WithComponent("app")

	tracker, err := services.NewTrackerService(
		storage.NewJSONStore(cfg.Data.File),
		log.WithComponent("tracker"),
	)
	if err != nil {
		return nil, err
	}

	fyneApp := app.NewWithID(cfg.App.ID)
	window := fyneApp.NewWindow(cfg.App.Name)
	window.SetMaster()

	mainView := views.NewMainView(window, views.Options{
		Title:           "Fitness Tracker",
		BackgroundImage: cfg.UI.BackgroundImage,
		DataFile:        cfg.Data.File,
		Width:           float32(cfg.UI.Width),
		Height:          float32(cfg.UI.Height),
	}, log.WithComponent("view"))
	mainView.SetToday(tracker.Today())
	window.CenterOnScreen()

	mainController := controllers.NewMainController(tracker, log.WithComponent("controller"))
	mainController.SetMainView(mainView)
	mainController.SetQuitHandler(func() {
		fyne.Do(fyneApp.Quit)
	})

	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register("controller", mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		tracker:    tracker,
		shutdown:   shutdownMgr,
	}
	application.setupWindowEvents()

	appLogger.Info("Application initialized", map[string]interface{}{
		"version":    cfg.App.Version,
		"data_file":  cfg.Data.File,
		"today":      tracker.Today(),
		"go_version": runtime.Version(),
		"log_level":  cfg.Log.Level,
	})

	return application, nil
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.shutdown.Listen()
	defer a.shutdown.Close()

	a.logger.Info("Starting application UI", nil)
	a.view.Show()
	a.fyneApp.Run()

	stats := a.tracker.Stats()
	a.logger.Info("Application terminated", map[string]interface{}{
		"saves":        stats.Saves,
		"failed_saves": stats.SaveFails,
	})
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Debug("Window closed", nil)
	})
}
