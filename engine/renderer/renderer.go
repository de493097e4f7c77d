package renderer

import (
	"fmt"

	"github.com/spaghettifunk/landscape/engine/math"
)

type RenderPacket struct {
	DeltaTime float64
	/** World to camera space, shared by every geometry of the frame. */
	View math.Transform[float64]
	/** An array of geometries to be rendered. */
	Geometries []*GeometryRenderData
}

type Renderer struct {
	backend RendererBackend
	scratch []math.Vec3[float64]
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string) error {
	return r.backend.Initialize(appName)
}

// DrawFrame packs every geometry of the packet and hands it to the backend
// between BeginFrame and EndFrame.
func (r *Renderer) DrawFrame(packet *RenderPacket) error {
	if err := r.backend.BeginFrame(packet.DeltaTime); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	view := packet.View.M.F32()
	for _, g := range packet.Geometries {
		var buf *VertexBuffer
		buf, r.scratch = Pack(g, r.scratch)
		buf.View = view
		if err := r.backend.Upload(buf); err != nil {
			return fmt.Errorf("upload %s: %w", g.ID, err)
		}
	}
	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		return fmt.Errorf("end frame: %w", err)
	}
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}
