// Package lod keeps an isosurface responsive to fast threshold changes by
// switching between full resolution cells and a precomputed coarse cell
// set, refining back to full resolution once the threshold settles.
package lod

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/sirupsen/logrus"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/render"
)

// Defaults used when the corresponding Config field is zero.
const (
	DefaultBlockSize      = 4
	DefaultDelay          = 2 * time.Second
	DefaultHalfWidthSteps = 10
	// defaultStepDivisions divides the field's value range into the default threshold step.
	defaultStepDivisions = 100
)

// Level is the resolution a surface was assembled at.
type Level uint8

const (
	LevelRough Level = iota
	LevelFine
)

func (l Level) String() string {
	switch l {
	case LevelRough:
		return "rough"
	case LevelFine:
		return "fine"
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// Config configures a Controller.
type Config struct {
	// Extents of the structured index space the field was sampled on.
	// Required to build the rough cells.
	Extents isosurf.Extents
	// BlockSize is the number of fine cells per rough cell edge.
	BlockSize int
	// Delay is the quiet time after the last cold update before refining.
	Delay time.Duration
	// Step is the threshold increment of the driving control. Defaults to
	// 1/100 of the field's value range.
	Step float32
	// HalfWidthSteps is the half width of the safe interval in steps.
	HalfWidthSteps float32
	// Clock schedules refinements. Defaults to wall clock timers.
	Clock Clock
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
	// OnRefine is called after a refinement widened the safe interval
	// around threshold. It runs on the Clock's goroutine and typically
	// redraws with Controller.Fine.
	OnRefine func(threshold float32)
}

// Controller chooses the cell set used to draw the isosurface for a
// threshold. Thresholds inside the safe interval are drawn at full
// resolution. Others are drawn with rough cells immediately and schedule
// a refinement that re-centers the safe interval on the threshold once no
// other change arrives for the configured delay.
//
// Update calls are expected to be sequential; the controller locks
// internally only to synchronize with its refinement timer.
type Controller struct {
	field     *isosurf.ScalarField
	rough     [][8]uint32
	delay     time.Duration
	halfWidth float32
	clock     Clock
	log       logrus.FieldLogger
	onRefine  func(float32)

	mu          sync.Mutex
	lo, hi      float32 // safe interval. Empty when lo > hi.
	pending     Timer
	gen         uint64 // incremented on every arm or cancel.
	refinements int
	closed      bool
}

// New builds the rough cells of field from cfg and returns a controller
// whose safe interval starts empty, so the first Update is rough.
func New(field *isosurf.ScalarField, cfg Config) (*Controller, error) {
	if field == nil {
		return nil, errors.New("lod: nil scalar field")
	}
	if err := cfg.Extents.Validate(len(field.Vertices())); err != nil {
		return nil, fmt.Errorf("lod: %w", err)
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.Delay == 0 {
		cfg.Delay = DefaultDelay
	} else if cfg.Delay < 0 {
		return nil, errors.New("lod: negative refinement delay")
	}
	if cfg.HalfWidthSteps == 0 {
		cfg.HalfWidthSteps = DefaultHalfWidthSteps
	}
	if cfg.Step == 0 {
		lo, hi := field.Range()
		cfg.Step = (hi - lo) / defaultStepDivisions
		if cfg.Step == 0 {
			cfg.Step = 1
		}
	}
	if cfg.Step < 0 || cfg.HalfWidthSteps < 0 || math32.IsNaN(cfg.Step) || math32.IsNaN(cfg.HalfWidthSteps) {
		return nil, errors.New("lod: step and half width must be positive")
	}
	if cfg.Clock == nil {
		cfg.Clock = wallClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	rough, err := Coarsen(cfg.Extents, cfg.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("lod: %w", err)
	}
	if err := field.ValidateCells(rough); err != nil {
		return nil, fmt.Errorf("lod: rough cells: %w", err)
	}
	c := &Controller{
		field:     field,
		rough:     rough,
		delay:     cfg.Delay,
		halfWidth: cfg.Step * cfg.HalfWidthSteps,
		clock:     cfg.Clock,
		log:       cfg.Logger,
		onRefine:  cfg.OnRefine,
		lo:        math32.Inf(1),
		hi:        math32.Inf(-1),
	}
	c.log.WithFields(logrus.Fields{
		"extents":    cfg.Extents.String(),
		"fine":       len(field.Cells()),
		"rough":      len(rough),
		"half_width": c.halfWidth,
		"delay":      c.delay,
	}).Debug("lod controller ready")
	return c, nil
}

// Update returns the isosurface at threshold and the level it was drawn
// at. It never waits on a pending refinement.
func (c *Controller) Update(threshold float32) (isosurf.Surface, Level) {
	c.mu.Lock()
	level := c.level(threshold)
	if level == LevelFine {
		c.cancel()
	} else if !math32.IsNaN(threshold) {
		c.arm(threshold)
	}
	c.mu.Unlock()

	cells := c.field.Cells()
	if level == LevelRough {
		cells = c.rough
	}
	s := render.AssembleField(c.field, cells, threshold)
	c.log.WithFields(logrus.Fields{
		"threshold": threshold,
		"level":     level.String(),
		"triangles": s.NumTriangles(),
	}).Debug("isosurface update")
	return s, level
}

// Fine returns the full resolution isosurface at threshold without
// touching the safe interval or the pending refinement. OnRefine hooks use
// it to redraw, since an Update from the hook would cancel a refinement
// armed by a newer threshold.
func (c *Controller) Fine(threshold float32) isosurf.Surface {
	return render.AssembleField(c.field, c.field.Cells(), threshold)
}

// Level returns the level an Update at threshold would draw at.
func (c *Controller) Level(threshold float32) Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level(threshold)
}

func (c *Controller) level(threshold float32) Level {
	if c.lo <= threshold && threshold <= c.hi {
		return LevelFine
	}
	return LevelRough
}

// SafeInterval returns the threshold interval drawn at full resolution.
// The interval is empty (lo > hi) until the first refinement.
func (c *Controller) SafeInterval() (lo, hi float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lo, c.hi
}

// Warm marks the safe interval around threshold as warm right away and
// cancels any pending refinement.
func (c *Controller) Warm(threshold float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	c.lo, c.hi = threshold-c.halfWidth, threshold+c.halfWidth
}

// Refinements returns the number of refinements run so far.
func (c *Controller) Refinements() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refinements
}

// Pending reports whether a refinement is scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Field returns the controlled scalar field.
func (c *Controller) Field() *isosurf.ScalarField { return c.field }

// RoughCells returns the coarse cells. They must not be modified.
func (c *Controller) RoughCells() [][8]uint32 { return c.rough }

// Close cancels any pending refinement. Update remains usable but no
// further refinements are scheduled.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	c.closed = true
	return nil
}

// arm replaces any pending refinement with one for threshold. Must hold mu.
func (c *Controller) arm(threshold float32) {
	c.cancel()
	if c.closed {
		return
	}
	gen := c.gen
	c.pending = c.clock.AfterFunc(c.delay, func() { c.refine(gen, threshold) })
}

// cancel invalidates the pending refinement. A refinement whose timer has
// already fired is discarded by its stale generation. Must hold mu.
func (c *Controller) cancel() {
	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) refine(gen uint64, threshold float32) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.lo, c.hi = threshold-c.halfWidth, threshold+c.halfWidth
	c.refinements++
	lo, hi := c.lo, c.hi
	hook := c.onRefine
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"threshold": threshold,
		"lo":        lo,
		"hi":        hi,
	}).Info("refined safe interval")
	if hook != nil {
		hook(threshold)
	}
}
