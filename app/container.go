package app

import (
	"log/slog"

	"github.com/soocke/vaastu-overlay-go/assets"
	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/domain/capture"
	"github.com/soocke/vaastu-overlay-go/domain/geometry"
	"github.com/soocke/vaastu-overlay-go/domain/overlay"
	"github.com/soocke/vaastu-overlay-go/domain/tracer"
	"github.com/soocke/vaastu-overlay-go/ui/images"
	"github.com/soocke/vaastu-overlay-go/ui/model"
	"github.com/soocke/vaastu-overlay-go/ui/presenter"
	"github.com/soocke/vaastu-overlay-go/ui/render"
	"github.com/soocke/vaastu-overlay-go/ui/theme"
	"github.com/soocke/vaastu-overlay-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Tracer     tracer.Contract
	Overlay    overlay.Contract
	FloorPlan  *model.FloorPlanModel
	CaptureSvc *capture.Service
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	StatusPresenter  *presenter.StatusPresenter
	TracingPresenter *presenter.TracingPresenter
	OverlayPresenter *presenter.OverlayPresenter
	ScenePresenter   *presenter.ScenePresenter
	ImagePresenter   *presenter.ImagePresenter
	ExportPresenter  *presenter.ExportPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components and wires listeners. No Tk
// widgets are created until RootView.Build runs with Handlers().
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Tracer = tracer.New(logger, cfg)
	c.Overlay = overlay.New(logger, cfg)
	c.FloorPlan = model.NewFloorPlanModel(cfg.MaxViewWidth, cfg.MaxViewHeight)
	c.CaptureSvc = capture.NewService(logger, nil)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	style := render.StyleFromConfig(cfg)
	c.StatusPresenter = presenter.NewStatusPresenter(c.UI)
	c.TracingPresenter = presenter.NewTracingPresenter(c.Tracer, c.FloorPlan, c.UI, c.StatusPresenter)
	c.OverlayPresenter = presenter.NewOverlayPresenter(c.Overlay, c.Tracer, c.FloorPlan, c.UI, c.StatusPresenter, cfg.RotateStep)
	c.ScenePresenter = presenter.NewScenePresenter(c.FloorPlan, c.Tracer, c.Overlay, assets.Chakra, c.UI, style)
	c.ScenePresenter.SetPlaceholderSize(cfg.MaxViewWidth/2, cfg.MaxViewHeight/2)
	c.ImagePresenter = presenter.NewImagePresenter(c.FloorPlan, images.LoadFile, c.CaptureSvc, c.StatusPresenter, logger)
	c.ExportPresenter = presenter.NewExportPresenter(c.FloorPlan, c.Tracer, c.Overlay, assets.Chakra, c.StatusPresenter, logger, style, cfg.ExportDir)

	c.Tracer.AddListener(c.TracingPresenter.OnTracerState)
	c.Tracer.AddListener(c.OverlayPresenter.OnTracerState)
	c.Tracer.AddListener(func(_, _ tracer.Phase, _ tracer.State) { c.ScenePresenter.MarkDirty() })
	c.Overlay.AddListener(c.OverlayPresenter.OnOverlayState)
	c.Overlay.AddListener(func(overlay.State) { c.ScenePresenter.MarkDirty() })
	c.FloorPlan.OnChange(func() {
		c.Overlay.PointerLeave()
		c.ScenePresenter.MarkDirty()
	})
	return c
}

// Handlers binds view callbacks to the presenters.
func (c *AppContainer) Handlers(onExit func()) view.Handlers {
	return view.Handlers{
		OpenImage:     func(path string) { _ = c.ImagePresenter.LoadFile(path) },
		CaptureScreen: func() { _ = c.ImagePresenter.CaptureScreen() },
		ToggleOverlay: c.OverlayPresenter.ToggleVisible,
		ToggleTracing: c.TracingPresenter.Toggle,
		ExportPNG:     func() { _, _ = c.ExportPresenter.ExportPNG("") },
		ExportDetail:  func() { _, _ = c.ExportPresenter.ExportDetail("") },
		CopyCentroid:  func() { _ = c.ExportPresenter.CopyCentroid() },
		Exit:          onExit,
		Pointer: view.PointerHandlers{
			Press: func(x, y int, modifier bool) {
				c.OverlayPresenter.Press(geometry.Pt(float64(x), float64(y)), modifier)
			},
			Drag:    func(x, y int) { c.OverlayPresenter.Drag(geometry.Pt(float64(x), float64(y))) },
			Release: c.OverlayPresenter.Release,
			Leave:   c.OverlayPresenter.Leave,
		},
		RotationInput: func(raw string) { c.OverlayPresenter.RotationInput(raw) },
		Nudge:         func(dir int) { c.OverlayPresenter.Nudge(dir) },
		ConfigApplied: c.ApplyConfig,
	}
}

// ApplyConfig pushes edited settings into the live components.
func (c *AppContainer) ApplyConfig(cfg *config.Config) {
	if c == nil || cfg == nil {
		return
	}
	c.Tracer.SetClosureThreshold(cfg.ClosureThreshold)
	c.Overlay.SetSize(geometry.Size{Width: float64(cfg.ChakraSize), Height: float64(cfg.ChakraSize)})
	c.Overlay.SetAutoShow(cfg.AutoShow)
	c.OverlayPresenter.SetStep(cfg.RotateStep)
	c.FloorPlan.SetMaxDisplay(cfg.MaxViewWidth, cfg.MaxViewHeight)
	if cfg.DarkMode != theme.IsDark() {
		theme.SetDark(cfg.DarkMode)
	}
	style := render.StyleFromConfig(cfg)
	c.ScenePresenter.SetStyle(style)
	c.ExportPresenter.SetStyle(style)
	c.ExportPresenter.SetDir(cfg.ExportDir)
	c.StatusPresenter.Info("Settings applied")
	c.Logger.Info("config applied", "closure_threshold", cfg.ClosureThreshold, "chakra_size", cfg.ChakraSize)
}
