// Package engine runs the interaction core on a single loop goroutine.
// Raw gaze and gesture samples arrive through Submit, all state
// mutation (dwell ticking, hit-test routing, recognizer updates, target
// registration) happens inside Run's select loop, and derived events
// leave through a Sink. Confining everything to one goroutine gives the
// cooperative single-threaded model the core packages assume, and makes
// cancellation exact: once an op unregisters a target, no later tick
// can observe it.
package engine

import (
	"context"
	"time"

	"github.com/muhittincamdali/go-gazekit/internal/log"
	"github.com/muhittincamdali/go-gazekit/pkg/dwell"
	"github.com/muhittincamdali/go-gazekit/pkg/gaze"
	"github.com/muhittincamdali/go-gazekit/pkg/gesture"
	"github.com/muhittincamdali/go-gazekit/pkg/protocol"
	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// Sink receives the engine's outbound messages. Implementations must
// not block; the web layer satisfies this with a buffered broadcast
// hub.
type Sink interface {
	Publish(msg *protocol.Message)
}

// Engine owns the interaction core and its loop.
type Engine struct {
	config Config
	sink   Sink

	dwell  *dwell.Controller
	router *gaze.Router

	drag   *gesture.DragRecognizer
	pinch  *gesture.PinchRecognizer
	rotate *gesture.RotationRecognizer
	hover  *gesture.HoverRecognizer

	// target id → dwell handle, maintained on the loop goroutine
	handles map[string]dwell.Handle

	samples chan *protocol.Message
	ops     chan func()

	running bool
}

// New creates an engine publishing to sink.
func New(config Config, sink Sink) *Engine {
	e := &Engine{
		config:  config,
		sink:    sink,
		dwell:   dwell.New(config.Dwell),
		router:  gaze.NewRouter(),
		drag:    gesture.NewDragRecognizer(),
		pinch:   gesture.NewPinchRecognizer(),
		rotate:  gesture.NewRotationRecognizer(),
		hover:   gesture.NewHoverRecognizer(spatial.Vec3{}),
		handles: make(map[string]dwell.Handle),
		samples: make(chan *protocol.Message, config.QueueSize),
		ops:     make(chan func(), 16),
	}

	e.dwell.OnActivation(func(id string) {
		log.Info("dwell activation", "target", id)
		e.publish(protocol.NewActivationMessage(id))
	})

	e.drag.OnChanged(func(v gesture.DragValue) { e.publish(protocol.NewDragMessage(v)) })
	e.drag.OnEnded(func(v gesture.DragValue) { e.publish(protocol.NewDragMessage(v)) })
	e.pinch.OnChanged(func(v gesture.PinchValue) { e.publish(protocol.NewPinchMessage(v)) })
	e.pinch.OnEnded(func(v gesture.PinchValue) { e.publish(protocol.NewPinchMessage(v)) })
	e.rotate.OnChanged(func(v gesture.RotationValue) { e.publish(protocol.NewRotateMessage(v)) })
	e.rotate.OnEnded(func(v gesture.RotationValue) { e.publish(protocol.NewRotateMessage(v)) })
	e.hover.OnChanged(func(v gesture.HoverValue) { e.publish(protocol.NewHoverMessage(v)) })
	e.hover.OnEnded(func(v gesture.HoverValue) { e.publish(protocol.NewHoverMessage(v)) })

	return e
}

// SetSink sets the output sink. Must be called before Run.
func (e *Engine) SetSink(sink Sink) {
	e.sink = sink
}

// Submit queues an inbound sample message. It never blocks: when the
// queue is full the sample is dropped, matching the leniency policy for
// a feed that outruns the loop.
func (e *Engine) Submit(msg *protocol.Message) {
	select {
	case e.samples <- msg:
	default:
		log.Warn("sample queue full, dropping", "type", msg.Type)
	}
}

// Run drives the interaction loop until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	tickInterval := e.config.Dwell.TickInterval
	dwellTicker := time.NewTicker(tickInterval)
	broadcastTicker := time.NewTicker(e.config.BroadcastInterval)
	defer dwellTicker.Stop()
	defer broadcastTicker.Stop()

	e.running = true
	log.Info("engine started",
		"tick_hz", 1.0/tickInterval.Seconds(),
		"broadcast_interval", e.config.BroadcastInterval)

	for {
		select {
		case <-ctx.Done():
			e.running = false
			log.Info("engine stopped")
			return

		case op := <-e.ops:
			op()

		case msg := <-e.samples:
			e.handleSample(msg)

		case now := <-dwellTicker.C:
			e.dwell.Tick(now)

		case <-broadcastTicker.C:
			e.broadcast()
		}
	}
}

// RegisterTarget adds a dwell target with an optional hit region.
// duration 0 selects the configured default. The registration executes
// on the loop goroutine; the call waits for the result.
func (e *Engine) RegisterTarget(id string, duration time.Duration, region gaze.Region) error {
	return e.do(func() error {
		if _, exists := e.handles[id]; exists {
			// Re-registration replaces the old target wholesale
			e.removeTarget(id)
		}
		var (
			h   dwell.Handle
			err error
		)
		if duration == 0 {
			h, err = e.dwell.RegisterDefault(id)
		} else {
			h, err = e.dwell.Register(id, duration)
		}
		if err != nil {
			return err
		}
		e.handles[id] = h
		if region != nil {
			e.router.Add(id, region)
		}
		log.Info("target registered", "target", id, "duration", duration)
		return nil
	})
}

// UnregisterTarget removes a dwell target, cancelling any in-flight
// dwell without firing activation.
func (e *Engine) UnregisterTarget(id string) error {
	return e.do(func() error {
		if _, exists := e.handles[id]; !exists {
			return dwell.ErrUnknownTarget
		}
		e.removeTarget(id)
		log.Info("target unregistered", "target", id)
		return nil
	})
}

// Targets returns a snapshot of every registered target's progress.
func (e *Engine) Targets() []dwell.TargetProgress {
	var snap []dwell.TargetProgress
	e.do(func() error {
		snap = e.dwell.Snapshot()
		return nil
	})
	return snap
}

// State returns a point-in-time state summary for dashboards.
func (e *Engine) State() protocol.StateData {
	var state protocol.StateData
	e.do(func() error {
		state = e.currentState()
		return nil
	})
	return state
}

// removeTarget runs on the loop goroutine.
func (e *Engine) removeTarget(id string) {
	h := e.handles[id]
	delete(e.handles, id)
	e.dwell.Unregister(h)
	e.router.Remove(id)
}

// do executes fn on the loop goroutine and waits for its result. Run
// must be active.
func (e *Engine) do(fn func() error) error {
	result := make(chan error, 1)
	e.ops <- func() { result <- fn() }
	return <-result
}

func (e *Engine) handleSample(msg *protocol.Message) {
	switch msg.Type {
	case protocol.TypeGaze:
		var data protocol.GazeSampleData
		if err := msg.ParseData(&data); err != nil {
			log.Warn("bad gaze sample", "error", err)
			return
		}
		e.handleGaze(data)

	case protocol.TypeGesture:
		var data protocol.GestureSampleData
		if err := msg.ParseData(&data); err != nil {
			log.Warn("bad gesture sample", "error", err)
			return
		}
		e.handleGesture(data)

	default:
		log.Debug("ignoring sample", "type", msg.Type)
	}
}

func (e *Engine) handleGaze(data protocol.GazeSampleData) {
	var events []gaze.Event
	switch {
	case data.Lost:
		events = e.router.Clear()
	case data.TargetID != "":
		events = e.router.Retarget(data.TargetID)
	default:
		p, ok := spatial.FromSlice(data.Position)
		if !ok {
			return
		}
		events = e.router.Route(p)
	}

	for _, ev := range events {
		h, ok := e.handles[ev.TargetID]
		if !ok {
			continue
		}
		switch ev.Type {
		case gaze.Enter:
			e.dwell.GazeEnter(h)
		case gaze.Exit:
			e.dwell.GazeExit(h)
		}
	}
}

func (e *Engine) handleGesture(data protocol.GestureSampleData) {
	s := data.Sample()
	switch data.Kind {
	case protocol.KindDrag:
		e.dispatch(data.Phase, e.drag.Begin, e.drag.Update, e.drag.End, s)
	case protocol.KindPinch:
		e.dispatch(data.Phase, e.pinch.Begin, e.pinch.Update, e.pinch.End, s)
	case protocol.KindRotate:
		e.dispatch(data.Phase, e.rotate.Begin, e.rotate.Update, e.rotate.End, s)
	case protocol.KindHover:
		e.dispatch(data.Phase, e.hover.Begin, e.hover.Update, e.hover.End, s)
	default:
		log.Debug("ignoring gesture", "kind", data.Kind)
	}
}

func (e *Engine) dispatch(phase protocol.GesturePhase, begin, update, end func(gesture.Sample), s gesture.Sample) {
	switch phase {
	case protocol.PhaseBegin:
		begin(s)
	case protocol.PhaseChange:
		update(s)
	case protocol.PhaseEnd:
		end(s)
	}
}

// broadcast pushes dwell progress and engine state to subscribers.
func (e *Engine) broadcast() {
	snap := e.dwell.Snapshot()
	targets := make([]protocol.TargetProgressData, len(snap))
	for i, t := range snap {
		targets[i] = protocol.TargetProgressData{
			ID:       t.ID,
			Progress: t.Progress,
			Dwelling: t.Dwelling,
		}
	}
	e.publish(protocol.NewDwellMessage(targets))
	e.publish(protocol.NewStateMessage(e.currentState()))
}

// currentState runs on the loop goroutine.
func (e *Engine) currentState() protocol.StateData {
	return protocol.StateData{
		Running:    e.running,
		Targets:    e.dwell.TargetCount(),
		TickRateHz: 1.0 / e.config.Dwell.TickInterval.Seconds(),
		Focus:      e.router.Focus(),
	}
}

func (e *Engine) publish(msg *protocol.Message, err error) {
	if err != nil {
		log.Error("failed to build message", "error", err)
		return
	}
	if e.sink != nil {
		e.sink.Publish(msg)
	}
}
