package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	sessioninadapter "cruxlog/internal/modules/session/adapter/in"
	sessionoutadapter "cruxlog/internal/modules/session/adapter/out"
	"cruxlog/internal/modules/session/domain"
	sessionservice "cruxlog/internal/modules/session/service"
	sessionusecase "cruxlog/internal/modules/session/usecase"
	"cruxlog/internal/platform/clock"
	"cruxlog/internal/platform/config"
	"cruxlog/internal/platform/id"
	uiapp "cruxlog/internal/ui/app"
)

type App struct {
	Config     config.Config
	Logger     *slog.Logger
	SessionCLI sessioninadapter.CLIHandler
	SessionTUI sessioninadapter.TUIHandler
}

// Deps lets callers swap the clock and id generator, e.g. for reproducible
// simulate output. Zero values select the system clock and UUIDs.
type Deps struct {
	Clock clock.Clock
	IDs   id.Generator
}

func New(cfg config.Config, logger *slog.Logger, deps Deps) (*App, error) {
	if deps.Clock == nil {
		deps.Clock = clock.SystemClock{}
	}
	if deps.IDs == nil {
		deps.IDs = id.UUID{}
	}
	initial := SessionConfigFrom(cfg.Session)
	if err := initial.Type.Validate(); err != nil {
		return nil, fmt.Errorf("session.type: %w", err)
	}

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(deps.Clock, deps.IDs),
		sessionoutadapter.NewMemoryHistoryStore(),
		sessionoutadapter.NewMarkdownSummaryRenderer(),
		sessionusecase.WithConfig(initial),
		sessionusecase.WithRestTimer(cfg.Rest.Default),
		sessionusecase.WithLogger(logger),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		SessionTUI: sessioninadapter.NewTUIHandler(sessionUC),
	}, nil
}

func SessionConfigFrom(d config.SessionDefaults) domain.SessionConfig {
	return domain.SessionConfig{
		Type:         domain.SessionType(d.Type),
		Goal:         d.Goal,
		Level:        d.Level,
		LowSleep:     d.LowSleep,
		Discomfort:   d.Discomfort,
		SelectedClip: d.Clip,
		AudioEnabled: d.Audio,
	}
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionTUI, uiapp.Choices{
		Goals:  app.Config.Session.Goals,
		Levels: app.Config.Session.Levels,
		Clips:  app.Config.Session.Clips,
	}, app.Config.File, app.Config.Log.File)
	out := uiapp.NewTerminal(os.Stdout)
	model.SetBellOutput(out)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := program.Run()
	return err
}
