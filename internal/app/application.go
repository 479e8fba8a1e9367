package app

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/roricalc/internal/config"
	"github.com/Rorical/roricalc/internal/core"
	"github.com/Rorical/roricalc/internal/models"
)

// Application manages the complete application lifecycle
type Application struct {
	config  *config.Config
	session *core.Session
	model   *AppModel
	logFile *os.File
}

type AppModel struct {
	appModel models.AppModel
	session  *core.Session
	theme    config.Theme
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	session := core.NewSession()
	model := &AppModel{
		appModel: createInitialAppModel(),
		session:  session,
		theme:    cfg.Theme(),
	}

	return &Application{
		config:  cfg,
		session: session,
		model:   model,
	}, nil
}

func (app *Application) Start() error {
	// The terminal belongs to the UI while it runs
	if err := app.redirectLog(); err != nil {
		return err
	}

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	if app.logFile != nil {
		app.logFile.Close()
		app.logFile = nil
	}
	log.SetOutput(os.Stderr)
}

// redirectLog sends log output to debug.log when RORICALC_DEBUG is set and
// discards it otherwise.
func (app *Application) redirectLog() error {
	if os.Getenv("RORICALC_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "roricalc")
	if err != nil {
		return err
	}
	app.logFile = f
	return nil
}

func createInitialAppModel() models.AppModel {
	return models.AppModel{
		Display: "0",
		Status:  "Ready",
	}
}
