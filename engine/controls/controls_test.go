package controls

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spaghettifunk/landscape/engine/core"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(
		Control{Name: "speed", Value: 1, Min: 0, Max: 4, Step: 0.5},
		Control{Name: "lift", Value: 10, Min: 0, Max: 50, Step: 5},
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestRegistrySetStep(t *testing.T) {
	r := newTestRegistry(t)

	if v, err := r.Set("speed", 9); err != nil || v != 4 {
		t.Fatalf("Set above max\nhave %v, %v\nwant 4, nil", v, err)
	}
	if v, err := r.Step("speed", -3); err != nil || v != 2.5 {
		t.Fatalf("Step\nhave %v, %v\nwant 2.5, nil", v, err)
	}
	if v, err := r.Step("lift", -100); err != nil || v != 0 {
		t.Fatalf("Step below min\nhave %v, %v\nwant 0, nil", v, err)
	}
	if v, _ := r.Get("speed"); v != 2.5 {
		t.Fatalf("Get\nhave %v\nwant 2.5", v)
	}
	if _, err := r.Get("gravity"); !errors.Is(err, core.ErrUnknownControl) {
		t.Fatalf("Get unknown\nhave %v\nwant %v", err, core.ErrUnknownControl)
	}
	if _, err := r.Set("gravity", 1); !errors.Is(err, core.ErrUnknownControl) {
		t.Fatalf("Set unknown\nhave %v\nwant %v", err, core.ErrUnknownControl)
	}
	if v := r.Value("gravity", 9.8); v != 9.8 {
		t.Fatalf("Value fallback\nhave %v\nwant 9.8", v)
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "lift" || names[1] != "speed" {
		t.Fatalf("Names\nhave %v\nwant [lift speed]", names)
	}
	snap := r.Snapshot()
	if snap["speed"] != 2.5 || snap["lift"] != 0 {
		t.Fatalf("Snapshot\nhave %v", snap)
	}
}

func TestRegistryDefineInvalid(t *testing.T) {
	r := newTestRegistry(t)
	bad := []Control{
		{Name: "", Min: 0, Max: 1},
		{Name: "x", Min: 2, Max: 1},
		{Name: "x", Min: 0, Max: 1, Step: -1},
	}
	for _, c := range bad {
		if err := r.Define(c); !errors.Is(err, core.ErrInvalidConfig) {
			t.Fatalf("Define(%+v)\nhave %v\nwant %v", c, err, core.ErrInvalidConfig)
		}
	}
}

func TestRegistryLoadBytes(t *testing.T) {
	r := newTestRegistry(t)
	doc := []byte(`
[[control]]
name = "speed"
value = 3.0
min = 0.0
max = 4.0
step = 0.25

[[control]]
name = "spin"
value = 720.0
min = 0.0
max = 360.0
step = 15.0
`)
	n, err := r.LoadBytes(doc)
	if err != nil || n != 2 {
		t.Fatalf("LoadBytes\nhave %v, %v\nwant 2, nil", n, err)
	}
	if v, _ := r.Get("speed"); v != 3 {
		t.Fatalf("speed\nhave %v\nwant 3", v)
	}
	if v, _ := r.Get("spin"); v != 360 {
		t.Fatalf("spin is clamped on load\nhave %v\nwant 360", v)
	}
	if v, _ := r.Get("lift"); v != 10 {
		t.Fatalf("controls absent from the file are kept\nhave %v\nwant 10", v)
	}

	if _, err := r.LoadBytes([]byte("[[control]]\nname = 3")); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("LoadBytes malformed\nhave %v\nwant %v", err, core.ErrInvalidConfig)
	}
	half := []byte("[[control]]\nname = \"speed\"\nvalue = 1.0\nmax = 4.0\n[[control]]\nname = \"\"\n")
	if _, err := r.LoadBytes(half); err == nil {
		t.Fatal("LoadBytes accepted a nameless control")
	}
	if v, _ := r.Get("speed"); v != 3 {
		t.Fatalf("a rejected document must not apply partially\nhave %v\nwant 3", v)
	}

	out, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, _ := NewRegistry()
	if n, err := again.LoadBytes(out); err != nil || n != 3 {
		t.Fatalf("LoadBytes(Encode())\nhave %v, %v\nwant 3, nil", n, err)
	}
	if v, _ := again.Get("spin"); v != 360 {
		t.Fatalf("spin after encode\nhave %v\nwant 360", v)
	}
}

func TestRegistryEvents(t *testing.T) {
	defer core.EventShutdown()

	var changed []string
	core.EventRegister(core.EventCodeControlChanged, t, func(code core.SystemEventCode, sender, listener interface{}, data core.EventContext) bool {
		changed = append(changed, data.Data.C[0])
		return false
	})

	r := newTestRegistry(t)
	changed = nil
	r.Set("speed", 2)
	r.Set("speed", 2)
	r.Step("lift", 1)
	if len(changed) != 2 || changed[0] != "speed" || changed[1] != "lift" {
		t.Fatalf("change events\nhave %v\nwant [speed lift]", changed)
	}
}

func TestRegistryWatch(t *testing.T) {
	defer core.EventShutdown()

	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")
	write := func(speed string) {
		doc := "[[control]]\nname = \"speed\"\nvalue = " + speed + "\nmin = 0.0\nmax = 4.0\nstep = 0.5\n"
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("1.0")

	var mu sync.Mutex
	reloads := 0
	core.EventRegister(core.EventCodeControlsReloaded, t, func(code core.SystemEventCode, sender, listener interface{}, data core.EventContext) bool {
		mu.Lock()
		reloads++
		mu.Unlock()
		return false
	})

	r, _ := NewRegistry()
	if err := r.Watch(path); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer r.Close()
	if err := r.Watch(path); err == nil {
		t.Fatal("Watch twice should fail")
	}
	if v, _ := r.Get("speed"); v != 1 {
		t.Fatalf("initial load\nhave %v\nwant 1", v)
	}

	write("3.5")
	deadline := time.Now().Add(5 * time.Second)
	for {
		v, _ := r.Get("speed")
		mu.Lock()
		n := reloads
		mu.Unlock()
		if v == 3.5 && n >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("control file change was not picked up: speed %v after %d reloads", v, n)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestRegistryWatchConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.toml")
	doc := "[[control]]\nname = \"speed\"\nvalue = 1.0\nmin = 0.0\nmax = 4.0\nstep = 0.5\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	r, _ := NewRegistry()
	if err := r.Watch(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Watch of a missing file should fail")
	}

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Watch(path)
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	if ok != 1 {
		t.Fatalf("successful concurrent Watch calls\nhave %d\nwant 1", ok)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := r.Watch(path); err != nil {
		t.Fatalf("Watch after Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
