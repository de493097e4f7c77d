package landscape

import (
	"fmt"
	gomath "math"

	"github.com/google/uuid"
	"github.com/spaghettifunk/landscape/engine/core"
	"github.com/spaghettifunk/landscape/engine/math"
	"golang.org/x/exp/rand"
)

type Config struct {
	// Number of cells along X.
	Width int `toml:"width"`
	// Number of cells along Z.
	Depth int `toml:"depth"`
	// Edge length of a cell in world units.
	CellSize float64 `toml:"cell_size"`
	// Tallest possible block.
	MaxHeight float64 `toml:"max_height"`
	// Seed for the height field and the fly-in rotations.
	Seed uint64 `toml:"seed"`
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Depth <= 0 {
		return fmt.Errorf("%w: landscape grid %dx%d", core.ErrInvalidConfig, c.Width, c.Depth)
	}
	if c.CellSize <= 0 || c.MaxHeight <= 0 {
		return fmt.Errorf("%w: landscape cell size %v and max height %v must be positive", core.ErrInvalidConfig, c.CellSize, c.MaxHeight)
	}
	return nil
}

// Params are the knobs the animation reads every frame.
type Params struct {
	// Blocks settled per second.
	Speed float64
	// Height the blocks drop from.
	Lift float64
	// Multiplier applied to every block's initial rotation angle.
	Spin float64
	// Delay between consecutive blocks, in block durations.
	Stagger float64
}

func DefaultParams() Params {
	return Params{Speed: 1, Lift: 12, Spin: 1, Stagger: 0.15}
}

type Block struct {
	ID     uuid.UUID
	I, J   int
	Height float64
	// Position in the construction order.
	Order int
	// Where the block ends up.
	Target math.Vec3[float64]
	// Full size of the block.
	Size math.Vec3[float64]
	// Axis and angle of the rotation the block starts with.
	SpinAxis  math.Vec3[float64]
	SpinAngle float64
	// Pose at the last Update.
	Pose *math.Pose[float64]
	// Construction progress at the last Update, in [0, 1].
	Progress float64
}

type Builder struct {
	config Config
	blocks []*Block
	byID   map[uuid.UUID]*Block
}

// Generate lays out the grid and rolls the heights. The same seed always
// produces the same landscape.
func Generate(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	b := &Builder{
		config: cfg,
		blocks: make([]*Block, 0, cfg.Width*cfg.Depth),
		byID:   make(map[uuid.UUID]*Block, cfg.Width*cfg.Depth),
	}
	originX := -float64(cfg.Width) * cfg.CellSize / 2
	originZ := -float64(cfg.Depth) * cfg.CellSize / 2
	for i := 0; i < cfg.Width; i++ {
		for j := 0; j < cfg.Depth; j++ {
			h := cfg.MaxHeight * (0.1 + 0.9*rng.Float64())
			axis := math.NewVec3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
			if axis.Len2() == 0 {
				axis = math.NewVec3(0.0, 1, 0)
			}
			blk := &Block{
				ID:     uuid.New(),
				I:      i,
				J:      j,
				Height: h,
				Order:  i + j,
				Target: math.NewVec3(
					originX+(float64(i)+0.5)*cfg.CellSize,
					h/2,
					originZ+(float64(j)+0.5)*cfg.CellSize),
				Size:      math.NewVec3(cfg.CellSize, h, cfg.CellSize),
				SpinAxis:  axis.Normalizing(),
				SpinAngle: 90 + 270*rng.Float64(),
				Pose:      math.NewPose[float64](),
			}
			b.blocks = append(b.blocks, blk)
			b.byID[blk.ID] = blk
		}
	}
	b.Update(0, DefaultParams())
	core.LogDebug("generated landscape %dx%d with seed %d", cfg.Width, cfg.Depth, cfg.Seed)
	return b, nil
}

func (b *Builder) Blocks() []*Block {
	return b.blocks
}

func (b *Builder) Block(id uuid.UUID) (*Block, bool) {
	blk, ok := b.byID[id]
	return blk, ok
}

// Duration is how long the whole construction takes with the given params.
func (b *Builder) Duration(p Params) float64 {
	if p.Speed <= 0 {
		return gomath.Inf(1)
	}
	last := b.config.Width + b.config.Depth - 2
	return (float64(last)*p.Stagger + 1) / p.Speed
}

// ease is smoothstep: zero slope at both ends so blocks settle softly.
func ease(x float64) float64 {
	return x * x * (3 - 2*x)
}

// Update poses every block for time t seconds after the construction began.
// It returns true once every block has settled.
func (b *Builder) Update(t float64, p Params) bool {
	done := true
	for _, blk := range b.blocks {
		progress := math.Clamp(t*p.Speed-float64(blk.Order)*p.Stagger, 0, 1)
		e := ease(progress)

		start := math.NewQuatAxisAngle(blk.SpinAxis, blk.SpinAngle*p.Spin)
		if start.S < 0 {
			// Same rotation, but on the identity's side so the blend ends on it.
			start = start.Neg()
		}
		rotation := math.SLerp(start, math.NewQuatIdentity[float64](), e)
		position := blk.Target.Add(math.NewVec3(0, p.Lift*(1-e), 0))
		scale := blk.Size.Mul(math.NewVec3(1, 0.25+0.75*e, 1))

		blk.Pose.SetPositionRotationScale(position, rotation.Normalizing(), scale)
		blk.Progress = progress
		if progress < 1 {
			done = false
		}
	}
	return done
}

// Pick returns the nearest block hit by r and the ray parameter of the hit.
func (b *Builder) Pick(r math.Ray[float64]) (*Block, float64, bool) {
	var (
		best  *Block
		bestD = gomath.Inf(1)
	)
	cube := UnitCubeExtents()
	for _, blk := range b.blocks {
		local := r.InvTransformation(blk.Pose.Local())
		if d, ok := math.IntersectBox(local, cube); ok && d < bestD {
			best, bestD = blk, d
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestD, true
}

// Extents bounds every block in its current pose.
func (b *Builder) Extents() math.Extents3D[float64] {
	ext := math.NewExtents3DEmpty[float64]()
	cube := UnitCubeExtents()
	for _, blk := range b.blocks {
		tr := blk.Pose.Local()
		for c := 0; c < 8; c++ {
			corner := cube.Min
			if c&1 != 0 {
				corner.X = cube.Max.X
			}
			if c&2 != 0 {
				corner.Y = cube.Max.Y
			}
			if c&4 != 0 {
				corner.Z = cube.Max.Z
			}
			ext.Expand(corner.Transformation(tr))
		}
	}
	return ext
}
