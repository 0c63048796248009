// Package dwell converts sustained gaze on a target into a one-shot
// activation event. Each registered target runs an independent
// Idle → Dwelling → Activated cycle: gaze entering a target starts its
// progress accumulating, gaze leaving before the threshold resets it to
// zero, and reaching the threshold fires the activation callback exactly
// once.
//
// The controller is confined to the interaction loop goroutine: all
// events and ticks must be delivered from one goroutine, matching how
// the engine drives it. There is deliberately no internal locking, and
// because progress only advances inside Tick, unregistering a target or
// exiting gaze takes effect before any later tick can observe it.
package dwell

import (
	"time"

	"github.com/google/uuid"
)

// Handle identifies a registered target. Handles are opaque and
// single-use: unregistering invalidates the handle permanently.
type Handle string

type targetState int

const (
	stateIdle targetState = iota
	stateDwelling
	stateActivated // progress held at 1.0 for one reporting tick
)

type target struct {
	id       string
	duration time.Duration
	state    targetState
	progress float64
}

// TargetProgress is a point-in-time view of one target, suitable for
// broadcast to presentation clients.
type TargetProgress struct {
	ID       string  `json:"id"`
	Progress float64 `json:"progress"`
	Dwelling bool    `json:"dwelling"`
}

// Controller owns the dwell state for all registered targets.
type Controller struct {
	config  Config
	targets map[Handle]*target

	// order preserves registration order for stable snapshots
	order []Handle

	onActivation func(id string)

	lastTick time.Time
}

// New creates a dwell controller with the given configuration.
func New(config Config) *Controller {
	return &Controller{
		config:  config,
		targets: make(map[Handle]*target),
	}
}

// OnActivation sets the callback invoked synchronously from Tick when a
// target's dwell completes. The callback receives the target's id (not
// its handle).
func (c *Controller) OnActivation(callback func(id string)) {
	c.onActivation = callback
}

// Register adds a focusable target and returns its handle. duration
// must be positive; pass 0 through RegisterDefault to use the
// configured default instead.
func (c *Controller) Register(id string, duration time.Duration) (Handle, error) {
	if duration <= 0 {
		return "", ErrInvalidConfiguration
	}
	h := Handle(uuid.NewString())
	c.targets[h] = &target{id: id, duration: duration}
	c.order = append(c.order, h)
	return h, nil
}

// RegisterDefault registers a target with the configured default dwell
// duration.
func (c *Controller) RegisterDefault(id string) (Handle, error) {
	return c.Register(id, c.config.DefaultDuration)
}

// Unregister removes a target, cancelling any in-flight dwell without
// firing activation. Unregistering an unknown or already-removed handle
// returns ErrUnknownTarget; callers that treat double-unregister as
// routine may ignore it.
func (c *Controller) Unregister(h Handle) error {
	if _, ok := c.targets[h]; !ok {
		return ErrUnknownTarget
	}
	delete(c.targets, h)
	for i, o := range c.order {
		if o == h {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// GazeEnter marks gaze arriving on a target, starting its dwell.
// Entering while already dwelling is a no-op; entering a target still
// holding its post-activation tick starts a fresh cycle.
func (c *Controller) GazeEnter(h Handle) error {
	t, ok := c.targets[h]
	if !ok {
		return ErrUnknownTarget
	}
	if t.state == stateDwelling {
		return nil
	}
	t.state = stateDwelling
	t.progress = 0
	return nil
}

// GazeExit marks gaze leaving a target. Progress resets to zero
// immediately; exiting while idle is a no-op.
func (c *Controller) GazeExit(h Handle) error {
	t, ok := c.targets[h]
	if !ok {
		return ErrUnknownTarget
	}
	t.state = stateIdle
	t.progress = 0
	return nil
}

// Progress returns the target's dwell progress in [0, 1].
func (c *Controller) Progress(h Handle) (float64, error) {
	t, ok := c.targets[h]
	if !ok {
		return 0, ErrUnknownTarget
	}
	return t.progress, nil
}

// Tick advances all dwelling targets by the wall time elapsed since the
// previous tick, firing activations whose thresholds are crossed. The
// first tick establishes the baseline and advances nothing.
func (c *Controller) Tick(now time.Time) {
	if c.lastTick.IsZero() {
		c.lastTick = now
		return
	}
	dt := now.Sub(c.lastTick)
	c.lastTick = now
	if dt <= 0 {
		return
	}
	c.Advance(dt)
}

// Advance moves every dwelling target forward by dt. Targets that
// completed on the previous advance drop back to idle first, so a
// completed dwell reports progress 1.0 for exactly one tick.
func (c *Controller) Advance(dt time.Duration) {
	for _, h := range c.order {
		t := c.targets[h]
		switch t.state {
		case stateActivated:
			t.state = stateIdle
			t.progress = 0
		case stateDwelling:
			t.progress += dt.Seconds() / t.duration.Seconds()
			if t.progress >= 1 {
				t.progress = 1
				t.state = stateActivated
				if c.onActivation != nil {
					c.onActivation(t.id)
				}
			}
		}
	}
}

// Snapshot returns the progress of every registered target in
// registration order.
func (c *Controller) Snapshot() []TargetProgress {
	out := make([]TargetProgress, 0, len(c.order))
	for _, h := range c.order {
		t := c.targets[h]
		out = append(out, TargetProgress{
			ID:       t.id,
			Progress: t.progress,
			Dwelling: t.state == stateDwelling,
		})
	}
	return out
}

// TargetCount returns the number of registered targets.
func (c *Controller) TargetCount() int {
	return len(c.targets)
}
