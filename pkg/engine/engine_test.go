package engine

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/dwell"
	"github.com/muhittincamdali/go-gazekit/pkg/gaze"
	"github.com/muhittincamdali/go-gazekit/pkg/gesture"
	"github.com/muhittincamdali/go-gazekit/pkg/protocol"
	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// captureSink collects published messages for assertions.
type captureSink struct {
	mu   sync.Mutex
	msgs []*protocol.Message
}

func (s *captureSink) Publish(msg *protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *captureSink) byType(t protocol.MessageType) []*protocol.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*protocol.Message
	for _, m := range s.msgs {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Dwell.TickInterval = 5 * time.Millisecond
	cfg.BroadcastInterval = 10 * time.Millisecond
	return cfg
}

func startEngine(t *testing.T, cfg Config) (*Engine, *captureSink, context.CancelFunc) {
	t.Helper()
	sink := &captureSink{}
	e := New(cfg, sink)
	ctx, cancel := context.WithCancel(context.Background())
	go e.Run(ctx)
	return e, sink, cancel
}

func gazeMsg(t *testing.T, p spatial.Vec3) *protocol.Message {
	t.Helper()
	msg, err := protocol.NewGazeMessage(p, time.Now(), "")
	if err != nil {
		t.Fatalf("NewGazeMessage failed: %v", err)
	}
	return msg
}

func TestEngine_DwellActivationFlow(t *testing.T) {
	e, sink, cancel := startEngine(t, testConfig())
	defer cancel()

	err := e.RegisterTarget("confirm", 50*time.Millisecond,
		gaze.Sphere{Center: spatial.Vec3{X: 1}, Radius: 0.5})
	if err != nil {
		t.Fatalf("RegisterTarget failed: %v", err)
	}

	// Gaze lands inside the region and stays
	e.Submit(gazeMsg(t, spatial.Vec3{X: 1.1}))
	time.Sleep(200 * time.Millisecond)

	activations := sink.byType(protocol.TypeActivation)
	if len(activations) != 1 {
		t.Fatalf("Expected exactly 1 activation, got %d", len(activations))
	}
	var data protocol.ActivationData
	if err := activations[0].ParseData(&data); err != nil {
		t.Fatalf("ParseData failed: %v", err)
	}
	if data.TargetID != "confirm" {
		t.Errorf("Expected activation for confirm, got %q", data.TargetID)
	}

	// Every broadcast progress stayed in [0, 1]
	for _, m := range sink.byType(protocol.TypeDwell) {
		var d protocol.DwellData
		if err := m.ParseData(&d); err != nil {
			t.Fatalf("ParseData failed: %v", err)
		}
		for _, target := range d.Targets {
			if target.Progress < 0 || target.Progress > 1 {
				t.Errorf("Progress %v outside [0,1]", target.Progress)
			}
		}
	}
}

func TestEngine_GazeExitCancelsDwell(t *testing.T) {
	e, sink, cancel := startEngine(t, testConfig())
	defer cancel()

	if err := e.RegisterTarget("card", 500*time.Millisecond,
		gaze.Sphere{Center: spatial.Vec3{X: 1}, Radius: 0.5}); err != nil {
		t.Fatalf("RegisterTarget failed: %v", err)
	}

	e.Submit(gazeMsg(t, spatial.Vec3{X: 1}))
	time.Sleep(50 * time.Millisecond)
	// Gaze moves off the target well before the 500ms threshold
	e.Submit(gazeMsg(t, spatial.Vec3{X: 5}))
	time.Sleep(100 * time.Millisecond)

	if n := len(sink.byType(protocol.TypeActivation)); n != 0 {
		t.Errorf("Expected no activations after exit, got %d", n)
	}

	snap := e.Targets()
	if len(snap) != 1 {
		t.Fatalf("Expected 1 target, got %d", len(snap))
	}
	if snap[0].Progress != 0 || snap[0].Dwelling {
		t.Errorf("Expected idle target with progress 0, got %+v", snap[0])
	}
}

func TestEngine_HostResolvedTargetAndTrackingLoss(t *testing.T) {
	e, sink, cancel := startEngine(t, testConfig())
	defer cancel()

	if err := e.RegisterTarget("menu", 500*time.Millisecond, nil); err != nil {
		t.Fatalf("RegisterTarget failed: %v", err)
	}

	// Host resolved the target directly, no hit region involved
	msg, _ := protocol.NewGazeMessage(spatial.Vec3{}, time.Now(), "menu")
	e.Submit(msg)
	time.Sleep(50 * time.Millisecond)

	snap := e.Targets()
	if len(snap) != 1 || !snap[0].Dwelling {
		t.Fatalf("Expected menu dwelling, got %+v", snap)
	}

	// Tracking loss clears focus and cancels the dwell
	lost, _ := protocol.NewGazeLostMessage(time.Now())
	e.Submit(lost)
	time.Sleep(50 * time.Millisecond)

	snap = e.Targets()
	if snap[0].Dwelling || snap[0].Progress != 0 {
		t.Errorf("Expected cancelled dwell after tracking loss, got %+v", snap[0])
	}
	if n := len(sink.byType(protocol.TypeActivation)); n != 0 {
		t.Errorf("Expected no activations, got %d", n)
	}
}

func TestEngine_PinchSnapshots(t *testing.T) {
	e, sink, cancel := startEngine(t, testConfig())
	defer cancel()

	t0 := time.Now()
	begin, _ := protocol.NewGestureMessage(protocol.KindPinch, protocol.PhaseBegin,
		gesture.Sample{Scale: 1.0, Timestamp: t0})
	change, _ := protocol.NewGestureMessage(protocol.KindPinch, protocol.PhaseChange,
		gesture.Sample{Scale: 1.5, Timestamp: t0.Add(50 * time.Millisecond)})
	end, _ := protocol.NewGestureMessage(protocol.KindPinch, protocol.PhaseEnd,
		gesture.Sample{Scale: 2.0, Timestamp: t0.Add(100 * time.Millisecond)})

	e.Submit(begin)
	e.Submit(change)
	e.Submit(end)
	time.Sleep(50 * time.Millisecond)

	pinches := sink.byType(protocol.TypePinch)
	if len(pinches) != 2 {
		t.Fatalf("Expected changed + ended snapshots, got %d", len(pinches))
	}

	var mid gesture.PinchValue
	if err := pinches[0].ParseData(&mid); err != nil {
		t.Fatalf("ParseData failed: %v", err)
	}
	if math.Abs(mid.Scale-1.5) > 1e-9 {
		t.Errorf("Expected scale 1.5, got %v", mid.Scale)
	}

	var final gesture.PinchValue
	if err := pinches[1].ParseData(&final); err != nil {
		t.Fatalf("ParseData failed: %v", err)
	}
	if math.Abs(final.Scale-2.0) > 1e-9 {
		t.Errorf("Expected final scale 2.0, got %v", final.Scale)
	}
}

func TestEngine_DragMalformedSamplesDropped(t *testing.T) {
	e, sink, cancel := startEngine(t, testConfig())
	defer cancel()

	t0 := time.Now()
	begin, _ := protocol.NewGestureMessage(protocol.KindDrag, protocol.PhaseBegin,
		gesture.Sample{Position: spatial.Vec3{}, Timestamp: t0})
	e.Submit(begin)

	// Wrong-dimension position goes over the wire as-is; the engine
	// must not emit a snapshot for it
	bad, _ := protocol.NewMessage(protocol.TypeGesture, protocol.GestureSampleData{
		Kind:     protocol.KindDrag,
		Phase:    protocol.PhaseChange,
		Position: []float64{1, 2},
		SampleTS: t0.Add(10 * time.Millisecond).UnixMicro(),
	})
	e.Submit(bad)

	good, _ := protocol.NewGestureMessage(protocol.KindDrag, protocol.PhaseChange,
		gesture.Sample{Position: spatial.Vec3{X: 1}, Timestamp: t0.Add(20 * time.Millisecond)})
	e.Submit(good)
	time.Sleep(50 * time.Millisecond)

	drags := sink.byType(protocol.TypeDrag)
	if len(drags) != 1 {
		t.Fatalf("Expected 1 drag snapshot, got %d", len(drags))
	}
	var v gesture.DragValue
	if err := drags[0].ParseData(&v); err != nil {
		t.Fatalf("ParseData failed: %v", err)
	}
	if math.Abs(v.Distance-1) > 1e-9 {
		t.Errorf("Expected distance 1, got %v", v.Distance)
	}
}

func TestEngine_RegistrationErrors(t *testing.T) {
	e, _, cancel := startEngine(t, testConfig())
	defer cancel()

	if err := e.RegisterTarget("bad", -time.Second, nil); err != dwell.ErrInvalidConfiguration {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
	if err := e.UnregisterTarget("never-registered"); err != dwell.ErrUnknownTarget {
		t.Errorf("Expected ErrUnknownTarget, got %v", err)
	}

	// Zero duration selects the configured default
	if err := e.RegisterTarget("ok", 0, nil); err != nil {
		t.Errorf("Expected default-duration registration to succeed, got %v", err)
	}
	if err := e.UnregisterTarget("ok"); err != nil {
		t.Errorf("Unregister failed: %v", err)
	}
}

func TestEngine_UnregisterMidDwellNeverActivates(t *testing.T) {
	e, sink, cancel := startEngine(t, testConfig())
	defer cancel()

	if err := e.RegisterTarget("button", 500*time.Millisecond,
		gaze.Sphere{Radius: 1}); err != nil {
		t.Fatalf("RegisterTarget failed: %v", err)
	}

	e.Submit(gazeMsg(t, spatial.Vec3{}))
	time.Sleep(50 * time.Millisecond)

	if err := e.UnregisterTarget("button"); err != nil {
		t.Fatalf("UnregisterTarget failed: %v", err)
	}

	time.Sleep(600 * time.Millisecond)
	if n := len(sink.byType(protocol.TypeActivation)); n != 0 {
		t.Errorf("Expected no activation after unregister, got %d", n)
	}

	state := e.State()
	if state.Targets != 0 {
		t.Errorf("Expected 0 targets, got %d", state.Targets)
	}
}
