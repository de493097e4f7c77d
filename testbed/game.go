package testbed

import (
	"fmt"

	"github.com/spaghettifunk/landscape/engine"
	"github.com/spaghettifunk/landscape/engine/controls"
	"github.com/spaghettifunk/landscape/engine/core"
	"github.com/spaghettifunk/landscape/engine/landscape"
	"github.com/spaghettifunk/landscape/engine/math"
	"github.com/spaghettifunk/landscape/engine/renderer"
)

// Names of the controls the demo reads every frame.
const (
	ControlSpeed   = "speed"
	ControlLift    = "lift"
	ControlSpin    = "spin"
	ControlStagger = "stagger"
	ControlPause   = "pause"
	ControlOrbit   = "orbit"
)

// Seconds the finished landscape stays on screen before it is rebuilt.
const restSeconds = 2.0

type LandscapeGame struct {
	*engine.Game
}

type gameState struct {
	controls *controls.Registry
	builder  *landscape.Builder
	cube     *renderer.Primitive
	camera   *renderer.Camera
	centre   math.Vec3[float64]

	// Seconds since the current construction began.
	elapsed  float64
	rest     float64
	finished bool
	rebuilds int
}

func defaultControls() []controls.Control {
	p := landscape.DefaultParams()
	return []controls.Control{
		{Name: ControlSpeed, Value: p.Speed, Min: 0.1, Max: 10, Step: 0.1},
		{Name: ControlLift, Value: p.Lift, Min: 0, Max: 50, Step: 1},
		{Name: ControlSpin, Value: p.Spin, Min: 0, Max: 4, Step: 0.25},
		{Name: ControlStagger, Value: p.Stagger, Min: 0, Max: 1, Step: 0.05},
		{Name: ControlPause, Value: 0, Min: 0, Max: 1, Step: 1},
		// Camera orbit speed in degrees per second.
		{Name: ControlOrbit, Value: 10, Min: -90, Max: 90, Step: 5},
	}
}

func NewLandscapeGame(cfg *engine.ApplicationConfig) (*LandscapeGame, error) {
	if cfg == nil {
		cfg = engine.DefaultApplicationConfig()
	}
	reg, err := controls.NewRegistry(defaultControls()...)
	if err != nil {
		return nil, err
	}

	vertices, indices := landscape.CubeVertices(math.NewVec3(0.45, 0.62, 0.38))
	lg := &LandscapeGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			State: &gameState{
				controls: reg,
				cube:     &renderer.Primitive{Name: "block", Vertices: vertices, Indices: indices},
				camera:   renderer.NewCamera(),
			},
		},
	}

	lg.FnInitialize = lg.Initialize
	lg.FnUpdate = lg.Update
	lg.FnRender = lg.Render
	lg.FnShutdown = lg.Shutdown

	return lg, nil
}

func (g *LandscapeGame) state() *gameState {
	return g.State.(*gameState)
}

// Controls exposes the registry so callers can tweak the demo while it runs.
func (g *LandscapeGame) Controls() *controls.Registry {
	return g.state().controls
}

func (g *LandscapeGame) Initialize() error {
	core.LogDebug("LandscapeGame Initialize fn....")
	state := g.state()

	if path := g.ApplicationConfig.Controls.Path; path != "" {
		var err error
		if g.ApplicationConfig.Controls.Watch {
			err = state.controls.Watch(path)
		} else {
			_, err = state.controls.Load(path)
		}
		if err != nil {
			return fmt.Errorf("loading controls: %w", err)
		}
	}

	builder, err := landscape.Generate(g.ApplicationConfig.Landscape)
	if err != nil {
		return err
	}
	state.builder = builder

	// The grid is centred on the origin; frame it from above and behind.
	land := g.ApplicationConfig.Landscape
	state.centre = math.NewVec3(0, land.MaxHeight/2, 0)
	reach := math.NewVec3(float64(land.Width)*land.CellSize, land.MaxHeight, float64(land.Depth)*land.CellSize).Len()
	state.camera.SetPosition(state.centre.Add(math.NewVec3(0, 0.6*reach, reach)))
	state.camera.LookAt(state.centre)

	ext := builder.Extents()
	core.LogInfo("landscape of %d blocks, bounds %v to %v", len(builder.Blocks()), ext.Min, ext.Max)
	return nil
}

// Params reads the animation knobs from the controls.
func (g *LandscapeGame) Params() landscape.Params {
	reg := g.state().controls
	def := landscape.DefaultParams()
	return landscape.Params{
		Speed:   reg.Value(ControlSpeed, def.Speed),
		Lift:    reg.Value(ControlLift, def.Lift),
		Spin:    reg.Value(ControlSpin, def.Spin),
		Stagger: reg.Value(ControlStagger, def.Stagger),
	}
}

func (g *LandscapeGame) Update(deltaTime float64) error {
	state := g.state()
	if state.builder == nil {
		return fmt.Errorf("the game is not initialized")
	}
	if state.controls.Value(ControlPause, 0) != 0 {
		return nil
	}
	state.camera.Orbit(state.centre, state.controls.Value(ControlOrbit, 0)*deltaTime)

	if state.finished {
		state.rest += deltaTime
		if state.rest < restSeconds {
			return nil
		}
		state.elapsed, state.rest, state.finished = 0, 0, false
		state.rebuilds++
	}

	state.elapsed += deltaTime
	if state.builder.Update(state.elapsed, g.Params()) {
		state.finished = true
		g.reportSummit()
	}
	return nil
}

// reportSummit drops a ray straight down through the centre of the finished
// landscape and logs the block it lands on.
func (g *LandscapeGame) reportSummit() {
	ext := g.state().builder.Extents()
	centre := ext.Center()
	ray := math.NewRay(math.NewVec3(centre.X, ext.Max.Y+1, centre.Z), math.NewVec3(0.0, -1, 0))
	if blk, d, ok := g.state().builder.Pick(ray); ok {
		core.LogInfo("construction finished, centre block (%d,%d) at height %.2f", blk.I, blk.J, ext.Max.Y+1-d)
		return
	}
	core.LogInfo("construction finished")
}

func (g *LandscapeGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	state := g.state()
	if state.builder == nil {
		return fmt.Errorf("the game is not initialized")
	}
	packet.View = state.camera.View()
	for _, blk := range state.builder.Blocks() {
		packet.Geometries = append(packet.Geometries, &renderer.GeometryRenderData{
			ID:        blk.ID,
			Model:     blk.Pose.Local(),
			Primitive: state.cube,
		})
	}
	return nil
}

func (g *LandscapeGame) Shutdown() error {
	core.LogDebug("LandscapeGame Shutdown fn....")
	return g.state().controls.Close()
}
