package core

import "github.com/spaghettifunk/landscape/engine/containers"

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling frame time average and a frames-per-second count.
type Metrics struct {
	msTimes            *containers.RingQueue[float64]
	msSum              float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{msTimes: containers.NewRingQueue[float64](int(AVG_COUNT))}
}

// Update records one frame that took frameElapsedTime seconds.
func (ms *Metrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average over the last AVG_COUNT frames.
	frameMS := frameElapsedTime * 1000.0
	if dropped, ok := ms.msTimes.Push(frameMS); ok {
		ms.msSum -= dropped
	}
	ms.msSum += frameMS
	if ms.msTimes.IsFull() {
		ms.msAvg = ms.msSum / float64(AVG_COUNT)
	}

	// Count all frames, then roll the per-second counter over.
	ms.frames++
	ms.accumulatedFrameMS += frameMS
	if ms.accumulatedFrameMS > 1000 {
		ms.fps = float64(ms.frames)
		ms.accumulatedFrameMS -= 1000
		ms.frames = 0
	}
}

func (ms *Metrics) FPS() float64 {
	return ms.fps
}

// FrameTime is the average frame time in milliseconds. It stays 0 until
// AVG_COUNT frames were recorded.
func (ms *Metrics) FrameTime() float64 {
	return ms.msAvg
}

func (ms *Metrics) Frame() (float64, float64) {
	return ms.fps, ms.msAvg
}
