package lod

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/helpers/fieldgen"
	"github.com/soypat/isosurf/render"
)

type fakeTimer struct {
	f       func()
	d       time.Duration
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{f: f, d: d}
	c.timers = append(c.timers, t)
	return t
}

// fire runs all live timers as if their delay elapsed.
func (c *fakeClock) fire() int {
	c.mu.Lock()
	var live []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			live = append(live, t)
		}
	}
	c.mu.Unlock()
	for _, t := range live {
		t.f()
	}
	return len(live)
}

var testExtents = isosurf.Extents{Nx: 17, Ny: 17, Nz: 9, Nb: 2}

func testField(t testing.TB) *isosurf.ScalarField {
	g := fieldgen.Grid{
		Extents: testExtents,
		Bounds:  ms3.Box{Min: ms3.Vec{X: -1, Y: -1, Z: -1}, Max: ms3.Vec{X: 1, Y: 1, Z: 1}},
	}
	f, err := g.Sample(fieldgen.Sphere(0.6))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestController(t testing.TB, clock Clock, onRefine func(float32)) *Controller {
	c, err := New(testField(t), Config{
		Extents:  testExtents,
		Step:     0.01,
		Clock:    clock,
		Logger:   quietLogger(),
		OnRefine: onRefine,
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func equalSurfaces(a, b isosurf.Surface) bool {
	if len(a.Verts) != len(b.Verts) || len(a.Indices) != len(b.Indices) {
		return false
	}
	for i := range a.Verts {
		if a.Verts[i] != b.Verts[i] {
			return false
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			return false
		}
	}
	return true
}

func TestControllerColdThenWarm(t *testing.T) {
	clock := &fakeClock{}
	c := newTestController(t, clock, nil)
	const th = 0.05
	s, level := c.Update(th)
	if level != LevelRough {
		t.Fatalf("first update should be rough, got %s", level)
	}
	if !equalSurfaces(s, render.AssembleField(c.Field(), c.RoughCells(), th)) {
		t.Error("cold update does not match direct rough assembly")
	}
	if !c.Pending() {
		t.Fatal("cold update should arm a refinement")
	}
	if n := clock.fire(); n != 1 {
		t.Fatalf("want one live timer, got %d", n)
	}
	lo, hi := c.SafeInterval()
	if !(lo < th && th < hi) || hi-lo < 0.19 || hi-lo > 0.21 {
		t.Errorf("safe interval [%v, %v] not centered on %v with half width 0.1", lo, hi, th)
	}
	s, level = c.Update(th)
	if level != LevelFine {
		t.Fatalf("update after refinement should be fine, got %s", level)
	}
	if !equalSurfaces(s, render.AssembleField(c.Field(), c.Field().Cells(), th)) {
		t.Error("warm update does not match direct fine assembly")
	}
	if s.NumTriangles() <= render.AssembleField(c.Field(), c.RoughCells(), th).NumTriangles() {
		t.Error("fine surface should have more triangles than rough surface")
	}
	// Inside the interval stays fine without arming.
	if _, level = c.Update(th + 0.05); level != LevelFine || c.Pending() {
		t.Error("threshold inside safe interval should be fine with nothing pending")
	}
	// Outside drops back to rough.
	if _, level = c.Update(th + 0.5); level != LevelRough {
		t.Error("threshold outside safe interval should be rough")
	}
}

func TestControllerDebounce(t *testing.T) {
	clock := &fakeClock{}
	var refined []float32
	c := newTestController(t, clock, func(th float32) { refined = append(refined, th) })
	thresholds := []float32{-0.3, -0.1, 0.1, 0.2, 0.35}
	for _, th := range thresholds {
		if _, level := c.Update(th); level != LevelRough {
			t.Fatalf("threshold %v should be cold", th)
		}
	}
	if n := clock.fire(); n != 1 {
		t.Fatalf("want exactly one live refinement, got %d", n)
	}
	if c.Refinements() != 1 {
		t.Fatalf("want 1 refinement, got %d", c.Refinements())
	}
	last := thresholds[len(thresholds)-1]
	if len(refined) != 1 || refined[0] != last {
		t.Fatalf("refinement should use last threshold %v, got %v", last, refined)
	}
	if c.Level(last) != LevelFine || c.Level(thresholds[0]) != LevelRough {
		t.Error("safe interval should be centered on last threshold")
	}
	if clock.fire() != 0 {
		t.Error("no refinement should remain after firing")
	}
}

func TestControllerStaleRefinement(t *testing.T) {
	clock := &fakeClock{}
	c := newTestController(t, clock, nil)
	c.Update(0.1)
	c.Update(0.3)
	if len(clock.timers) != 2 || !clock.timers[0].stopped {
		t.Fatal("second update should stop first timer")
	}
	// The first timer fired concurrently with its cancellation.
	clock.timers[0].f()
	if c.Refinements() != 0 || c.Level(0.1) == LevelFine {
		t.Fatal("stale refinement must be discarded")
	}
	clock.fire()
	if c.Refinements() != 1 || c.Level(0.3) != LevelFine {
		t.Fatal("latest refinement should apply")
	}
}

func TestControllerWarmCancelsPending(t *testing.T) {
	clock := &fakeClock{}
	c := newTestController(t, clock, nil)
	c.Warm(0)
	if _, level := c.Update(0.02); level != LevelFine {
		t.Fatal("warm interval not honored")
	}
	c.Update(0.5) // Cold, arms.
	if _, level := c.Update(0.01); level != LevelFine {
		t.Fatal("back inside warm interval should be fine")
	}
	if c.Pending() {
		t.Error("warm update should cancel pending refinement")
	}
	if clock.fire() != 0 || c.Refinements() != 0 {
		t.Error("cancelled refinement ran")
	}
}

func TestControllerClose(t *testing.T) {
	clock := &fakeClock{}
	c := newTestController(t, clock, nil)
	c.Update(0.2)
	c.Close()
	if clock.fire() != 0 || c.Refinements() != 0 {
		t.Error("refinement ran after close")
	}
	if _, level := c.Update(0.2); level != LevelRough || c.Pending() {
		t.Error("closed controller should draw rough without scheduling")
	}
}

func TestControllerWallClock(t *testing.T) {
	refined := make(chan float32, 4)
	c, err := New(testField(t), Config{
		Extents:  testExtents,
		Delay:    200 * time.Millisecond,
		Logger:   quietLogger(),
		OnRefine: func(th float32) { refined <- th },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	for _, th := range []float32{0, 0.05, 0.1, 0.15} {
		c.Update(th)
		time.Sleep(5 * time.Millisecond)
	}
	select {
	case th := <-refined:
		if th != 0.15 {
			t.Errorf("refined at %v, want last threshold 0.15", th)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("refinement never ran")
	}
	time.Sleep(100 * time.Millisecond)
	if c.Refinements() != 1 {
		t.Errorf("want exactly one refinement, got %d", c.Refinements())
	}
	if _, level := c.Update(0.15); level != LevelFine {
		t.Error("refined threshold should draw fine")
	}
}

func TestNewInvalid(t *testing.T) {
	f := testField(t)
	if _, err := New(f, Config{Extents: isosurf.Extents{Nx: 17, Ny: 17, Nz: 9, Nb: 1}}); err == nil {
		t.Error("want error for extents not matching field")
	}
	if _, err := New(nil, Config{Extents: testExtents}); err == nil {
		t.Error("want error for nil field")
	}
	if _, err := New(f, Config{Extents: testExtents, Delay: -time.Second}); err == nil {
		t.Error("want error for negative delay")
	}
}

func TestLevelString(t *testing.T) {
	if LevelFine.String() != "fine" || LevelRough.String() != "rough" {
		t.Error("bad level names")
	}
}

func TestControllerFineKeepsPending(t *testing.T) {
	clock := &fakeClock{}
	c := newTestController(t, clock, nil)
	c.Update(0.2)
	s := c.Fine(0.2)
	if !c.Pending() {
		t.Fatal("Fine cancelled pending refinement")
	}
	if !equalSurfaces(s, render.AssembleField(c.Field(), c.Field().Cells(), 0.2)) {
		t.Error("Fine does not match full resolution assembly")
	}
}
