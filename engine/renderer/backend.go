package renderer

import (
	"sync"

	"github.com/spaghettifunk/landscape/engine/core"
)

type RendererBackend interface {
	Initialize(appName string) error
	BeginFrame(deltaTime float64) error
	Upload(buffer *VertexBuffer) error
	EndFrame(deltaTime float64) error
	Shutdown() error
}

type FrameStats struct {
	Frames    uint64
	Uploads   uint64
	Vertices  uint64
	Triangles uint64
}

// HeadlessBackend accepts uploads without a GPU and keeps statistics about
// them. The last uploaded buffers of a frame stay readable until the next
// BeginFrame.
type HeadlessBackend struct {
	mutex   sync.Mutex
	name    string
	closed  bool
	inFrame bool
	stats   FrameStats
	last    []*VertexBuffer
}

func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{}
}

func (hb *HeadlessBackend) Initialize(appName string) error {
	hb.mutex.Lock()
	defer hb.mutex.Unlock()
	hb.name = appName
	core.LogInfo("headless renderer backend initialized for %s", appName)
	return nil
}

func (hb *HeadlessBackend) BeginFrame(deltaTime float64) error {
	hb.mutex.Lock()
	defer hb.mutex.Unlock()
	if hb.closed {
		return core.ErrBackendClosed
	}
	hb.inFrame = true
	hb.last = hb.last[:0]
	return nil
}

func (hb *HeadlessBackend) Upload(buffer *VertexBuffer) error {
	hb.mutex.Lock()
	defer hb.mutex.Unlock()
	if hb.closed {
		return core.ErrBackendClosed
	}
	hb.stats.Uploads++
	hb.stats.Vertices += uint64(len(buffer.Positions))
	hb.stats.Triangles += uint64(len(buffer.Indices) / 3)
	hb.last = append(hb.last, buffer)
	return nil
}

func (hb *HeadlessBackend) EndFrame(deltaTime float64) error {
	hb.mutex.Lock()
	defer hb.mutex.Unlock()
	if hb.closed {
		return core.ErrBackendClosed
	}
	hb.inFrame = false
	hb.stats.Frames++
	return nil
}

func (hb *HeadlessBackend) Shutdown() error {
	hb.mutex.Lock()
	defer hb.mutex.Unlock()
	if hb.closed {
		return core.ErrBackendClosed
	}
	hb.closed = true
	core.LogInfo("headless renderer backend for %s shut down after %d frames", hb.name, hb.stats.Frames)
	return nil
}

func (hb *HeadlessBackend) Stats() FrameStats {
	hb.mutex.Lock()
	defer hb.mutex.Unlock()
	return hb.stats
}

func (hb *HeadlessBackend) LastFrame() []*VertexBuffer {
	hb.mutex.Lock()
	defer hb.mutex.Unlock()
	return append([]*VertexBuffer(nil), hb.last...)
}
