package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/debug"
	"github.com/soocke/vaastu-overlay-go/ui/presenter"
	"github.com/soocke/vaastu-overlay-go/ui/theme"
)

const (
	tick        = 30 * time.Millisecond
	memInterval = 5 * time.Second
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	afterID string
	cancel  context.CancelFunc
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{logger: logger}
	a.c = BuildContainer(cfg, logger, cfgPath)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI, optionally loads initialImage and blocks in the Tk
// event loop until the window closes.
func (a *app) Start(initialImage string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	defer cancel()

	theme.SetDark(a.c.Config.DarkMode)
	a.c.RootView.Build(a.c.Handlers(a.exitHandler))
	Bind(App, "<Escape>", Command(func() { a.c.Tracer.Reset() }))
	a.c.OverlayPresenter.OnOverlayState(a.c.Overlay.State())

	if initialImage != "" {
		if err := a.c.ImagePresenter.LoadFile(initialImage); err != nil {
			a.logger.Warn("initial image not loaded", "path", initialImage, "error", err)
		}
	}
	if a.c.Config.Debug {
		debug.Start(ctx, memInterval, a.logger)
	}

	a.c.Loop = presenter.NewLoop(a.c.StatusPresenter, a.c.ScenePresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.cancel != nil {
		a.cancel()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
