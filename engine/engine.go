package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spaghettifunk/landscape/engine/core"
	"github.com/spaghettifunk/landscape/engine/math"
	"github.com/spaghettifunk/landscape/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released every subsystem and cannot be restarted
	EngineStageStopped
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	case EngineStageStopped:
		return "stopped"
	}
	return "unknown"
}

type Engine struct {
	mutex        sync.Mutex
	currentStage Stage
	gameInstance *Game
	renderer     *renderer.Renderer
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
	frames       uint64
	quit         chan struct{}
	quitOnce     sync.Once
}

func New(g *Game, backend renderer.RendererBackend) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("%w: game without application config", core.ErrInvalidConfig)
	}
	if err := g.ApplicationConfig.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		renderer:     renderer.New(backend),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		quit:         make(chan struct{}),
	}, nil
}

func (e *Engine) Stage() Stage {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.currentStage
}

// Frames returns how many frames Run has produced so far.
func (e *Engine) Frames() uint64 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.frames
}

func (e *Engine) transition(from, to Stage) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.currentStage != from {
		return fmt.Errorf("%w: %s, want %s", core.ErrEngineStage, e.currentStage, from)
	}
	e.currentStage = to
	return nil
}

// Initialize brings up the renderer and the game. When a step fails,
// whatever was already started is shut down again and the engine ends in
// EngineStageStopped.
func (e *Engine) Initialize() (err error) {
	if err := e.transition(EngineStageUninitialized, EngineStageInitializing); err != nil {
		return err
	}
	cfg := e.gameInstance.ApplicationConfig

	var rendererUp, gameStarted bool
	defer func() {
		if err == nil {
			return
		}
		core.LogError("initialization failed: %s", err)
		if gameStarted && e.gameInstance.FnShutdown != nil {
			if serr := e.gameInstance.FnShutdown(); serr != nil {
				core.LogWarn("game shutdown after failed initialization: %s", serr)
			}
		}
		if rendererUp {
			if serr := e.renderer.Shutdown(); serr != nil {
				core.LogWarn("renderer shutdown after failed initialization: %s", serr)
			}
		}
		core.EventUnregister(core.EventCodeApplicationQuit, e)

		e.mutex.Lock()
		e.currentStage = EngineStageStopped
		e.mutex.Unlock()
	}()

	level, err := core.ParseLogLevel(cfg.Application.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	core.SetLogLevel(level)

	core.EventRegister(core.EventCodeApplicationQuit, e, e.onEvent)

	if err := e.renderer.Initialize(cfg.Application.Name); err != nil {
		return err
	}
	rendererUp = true

	if e.gameInstance.FnInitialize != nil {
		// A game that fails halfway may still hold resources.
		gameStarted = true
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	core.LogInfo("%s initialized", cfg.Application.Name)
	return e.transition(EngineStageInitializing, EngineStageInitialized)
}

// Run ticks the game at the configured frame rate until the context is done,
// the frame or time budget is spent, or Shutdown is requested. It always
// releases the engine before returning.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.transition(EngineStageInitialized, EngineStageRunning); err != nil {
		return err
	}
	app := e.gameInstance.ApplicationConfig.Application

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	ticker := time.NewTicker(time.Second / time.Duration(app.FrameRate))
	defer ticker.Stop()

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			core.LogInfo("context done, stopping")
			break loop
		case <-e.quit:
			break loop
		case <-ticker.C:
			if err := e.frame(); err != nil {
				core.LogError("frame failed, shutting down: %s", err)
				runErr = err
				break loop
			}
			if app.MaxFrames > 0 && e.Frames() >= app.MaxFrames {
				break loop
			}
			if app.Duration > 0 && e.lastTime >= app.Duration {
				break loop
			}
		}
	}

	fps, frameTime := e.metrics.Frame()
	core.LogInfo("ran %d frames in %.3fs (%.0f fps, %.3fms avg)", e.Frames(), e.lastTime, fps, frameTime)

	if err := e.release(EngineStageRunning); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (e *Engine) frame() error {
	frameStart := time.Now()

	// Update clock and get delta time.
	e.clock.Update()
	currentTime := e.clock.Elapsed()
	delta := currentTime - e.lastTime

	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(delta); err != nil {
			return fmt.Errorf("game update: %w", err)
		}
	}

	packet := &renderer.RenderPacket{
		DeltaTime: delta,
		View:      math.NewTransform[float64](),
	}
	if e.gameInstance.FnRender != nil {
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			return fmt.Errorf("game render: %w", err)
		}
	}

	if err := e.renderer.DrawFrame(packet); err != nil {
		return err
	}

	e.metrics.Update(time.Since(frameStart).Seconds())
	e.lastTime = currentTime

	e.mutex.Lock()
	e.frames++
	e.mutex.Unlock()
	return nil
}

// Shutdown stops a running engine, or releases an initialized one that never
// ran. Calling it again is a no-op.
func (e *Engine) Shutdown() error {
	switch e.Stage() {
	case EngineStageRunning:
		e.quitOnce.Do(func() { close(e.quit) })
		return nil
	case EngineStageInitialized:
		return e.release(EngineStageInitialized)
	case EngineStageShuttingDown, EngineStageStopped:
		return nil
	}
	return fmt.Errorf("%w: cannot shut down while %s", core.ErrEngineStage, e.Stage())
}

func (e *Engine) release(from Stage) error {
	if err := e.transition(from, EngineStageShuttingDown); err != nil {
		return err
	}
	var err error
	if e.gameInstance.FnShutdown != nil {
		err = e.gameInstance.FnShutdown()
	}
	if rerr := e.renderer.Shutdown(); rerr != nil && err == nil {
		err = rerr
	}
	core.EventUnregister(core.EventCodeApplicationQuit, e)
	e.clock.Stop()

	e.mutex.Lock()
	e.currentStage = EngineStageStopped
	e.mutex.Unlock()
	return err
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listener interface{}, data core.EventContext) bool {
	switch code {
	case core.EventCodeApplicationQuit:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down")
		if err := e.Shutdown(); err != nil {
			core.LogWarn("shutdown on quit event: %s", err)
		}
		return true
	}
	return false
}
