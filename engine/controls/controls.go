package controls

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/landscape/engine/core"
	"github.com/spaghettifunk/landscape/engine/math"
)

// Control is one numeric-entry widget: a named scalar kept inside [Min, Max]
// and nudged in increments of Step.
type Control struct {
	Name  string  `toml:"name"`
	Value float64 `toml:"value"`
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
	Step  float64 `toml:"step"`
}

type controlFile struct {
	Controls []Control `toml:"control"`
}

func (c *Control) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: control without a name", core.ErrInvalidConfig)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%w: control %q has min %v > max %v", core.ErrInvalidConfig, c.Name, c.Min, c.Max)
	}
	if c.Step < 0 {
		return fmt.Errorf("%w: control %q has a negative step", core.ErrInvalidConfig, c.Name)
	}
	return nil
}

// Registry holds the current value of every control. It is read by the
// frame loop and written by the file watcher, so every access is locked.
type Registry struct {
	mutex    sync.RWMutex
	controls map[string]*Control

	watcher *watcher
}

func NewRegistry(defaults ...Control) (*Registry, error) {
	r := &Registry{controls: make(map[string]*Control)}
	for _, c := range defaults {
		if err := r.Define(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Define adds a control or replaces the bounds of an existing one. The value
// is clamped into the new bounds.
func (r *Registry) Define(c Control) error {
	if err := c.validate(); err != nil {
		return err
	}
	c.Value = math.Clamp(c.Value, c.Min, c.Max)

	r.mutex.Lock()
	prev, existed := r.controls[c.Name]
	changed := !existed || prev.Value != c.Value
	r.controls[c.Name] = &c
	r.mutex.Unlock()

	if changed {
		notify(c.Name, c.Value)
	}
	return nil
}

func (r *Registry) Get(name string) (float64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	c, ok := r.controls[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrUnknownControl, name)
	}
	return c.Value, nil
}

// Value reads a control, falling back to def when it is not defined.
func (r *Registry) Value(name string, def float64) float64 {
	v, err := r.Get(name)
	if err != nil {
		return def
	}
	return v
}

// Set stores value clamped to the control's bounds and returns what was stored.
func (r *Registry) Set(name string, value float64) (float64, error) {
	r.mutex.Lock()
	c, ok := r.controls[name]
	if !ok {
		r.mutex.Unlock()
		return 0, fmt.Errorf("%w: %s", core.ErrUnknownControl, name)
	}
	value = math.Clamp(value, c.Min, c.Max)
	changed := c.Value != value
	c.Value = value
	r.mutex.Unlock()

	if changed {
		notify(name, value)
	}
	return value, nil
}

// Step moves a control by n increments, like pressing the arrows of a
// spin box n times.
func (r *Registry) Step(name string, n int) (float64, error) {
	r.mutex.RLock()
	c, ok := r.controls[name]
	var target float64
	if ok {
		target = c.Value + float64(n)*c.Step
	}
	r.mutex.RUnlock()
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrUnknownControl, name)
	}
	return r.Set(name, target)
}

func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, 0, len(r.controls))
	for name := range r.controls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot copies every value so a frame works on a consistent set.
func (r *Registry) Snapshot() map[string]float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	out := make(map[string]float64, len(r.controls))
	for name, c := range r.controls {
		out[name] = c.Value
	}
	return out
}

// LoadBytes applies a TOML control document. Either every control in it is
// applied or, on error, none is.
func (r *Registry) LoadBytes(data []byte) (int, error) {
	var file controlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	for i := range file.Controls {
		if err := file.Controls[i].validate(); err != nil {
			return 0, err
		}
	}
	for _, c := range file.Controls {
		if err := r.Define(c); err != nil {
			return 0, err
		}
	}
	return len(file.Controls), nil
}

func (r *Registry) Load(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n, err := r.LoadBytes(data)
	if err != nil {
		return 0, fmt.Errorf("loading controls from %s: %w", path, err)
	}
	var ctx core.EventContext
	ctx.Data.C[0] = path
	ctx.Data.U32[0] = uint32(n)
	core.EventFire(core.EventCodeControlsReloaded, r, ctx)
	return n, nil
}

// Encode writes the current controls back out as a TOML document.
func (r *Registry) Encode() ([]byte, error) {
	r.mutex.RLock()
	file := controlFile{Controls: make([]Control, 0, len(r.controls))}
	for _, c := range r.controls {
		file.Controls = append(file.Controls, *c)
	}
	r.mutex.RUnlock()
	sort.Slice(file.Controls, func(i, j int) bool { return file.Controls[i].Name < file.Controls[j].Name })
	return toml.Marshal(file)
}

func notify(name string, value float64) {
	var ctx core.EventContext
	ctx.Data.C[0] = name
	ctx.Data.F64[0] = value
	core.EventFire(core.EventCodeControlChanged, nil, ctx)
}
