// simulate drives a running gazekitd with a scripted input session:
// it registers a dwell target, sweeps a synthetic gaze point through it
// long enough to trigger an activation, then plays pinch, drag, rotate
// and hover sequences while printing the events the engine broadcasts.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muhittincamdali/go-gazekit/internal/httpc"
	"github.com/muhittincamdali/go-gazekit/pkg/gesture"
	"github.com/muhittincamdali/go-gazekit/pkg/protocol"
	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

var (
	host    = flag.String("host", "localhost:8090", "gazekitd host:port")
	dwellMS = flag.Int("dwell", 400, "dwell duration for the demo target (ms)")
)

func main() {
	flag.Parse()

	fmt.Println("🎯 gazekit simulator")
	fmt.Printf("   Host: %s\n\n", *host)

	if resp, err := httpc.Get("http://" + *host + "/api/status"); err != nil {
		fmt.Printf("❌ gazekitd unreachable: %v\n", err)
		os.Exit(1)
	} else {
		resp.Body.Close()
	}

	if err := registerTarget(); err != nil {
		fmt.Printf("❌ Target registration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Registered target 'demo-button' (dwell %dms)\n", *dwellMS)

	events, err := dial("/ws/events")
	if err != nil {
		fmt.Printf("❌ Events connect failed: %v\n", err)
		os.Exit(1)
	}
	defer events.Close()
	go printEvents(events)

	samples, err := dial("/ws/samples")
	if err != nil {
		fmt.Printf("❌ Samples connect failed: %v\n", err)
		os.Exit(1)
	}
	defer samples.Close()
	fmt.Println("✅ Connected, streaming samples...")

	gazeSweep(samples)
	pinchSequence(samples)
	dragSequence(samples)
	rotateSequence(samples)
	hoverSequence(samples)

	// Let trailing broadcasts arrive before exiting
	time.Sleep(300 * time.Millisecond)
	fmt.Println("\n✅ Done")
}

func registerTarget() error {
	resp, err := httpc.PostJSON("http://"+*host+"/api/targets", map[string]interface{}{
		"id":       "demo-button",
		"dwell_ms": *dwellMS,
		"region": map[string]interface{}{
			"type":   "sphere",
			"center": []float64{0, 0, -1},
			"radius": 0.3,
		},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func dial(path string) (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	conn, _, err := dialer.Dial("ws://"+*host+path, nil)
	return conn, err
}

func printEvents(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := protocol.ParseMessage(data)
		if err != nil {
			continue
		}
		switch msg.Type {
		case protocol.TypeActivation:
			var a protocol.ActivationData
			if msg.ParseData(&a) == nil {
				fmt.Printf("   ⚡ ACTIVATED: %s\n", a.TargetID)
			}
		case protocol.TypeDrag:
			var v gesture.DragValue
			if msg.ParseData(&v) == nil {
				fmt.Printf("   ↔ drag translation=(%.2f, %.2f, %.2f)\n",
					v.Translation.X, v.Translation.Y, v.Translation.Z)
			}
		case protocol.TypePinch:
			var v gesture.PinchValue
			if msg.ParseData(&v) == nil {
				fmt.Printf("   🤏 pinch scale=%.2f velocity=%.2f\n", v.Scale, v.Velocity)
			}
		case protocol.TypeRotate:
			var v gesture.RotationValue
			if msg.ParseData(&v) == nil {
				fmt.Printf("   🔄 rotate %.3f rad\n", v.Rotation)
			}
		case protocol.TypeHover:
			var v gesture.HoverValue
			if msg.ParseData(&v) == nil {
				fmt.Printf("   👆 hover distance=%.3f\n", v.Distance)
			}
		}
	}
}

func send(conn *websocket.Conn, msg *protocol.Message, err error) {
	if err != nil {
		return
	}
	data, err := msg.Bytes()
	if err != nil {
		return
	}
	conn.WriteMessage(websocket.TextMessage, data)
}

// gazeSweep moves the gaze point into the demo target's sphere, holds it
// there past the dwell threshold, then looks away.
func gazeSweep(conn *websocket.Conn) {
	fmt.Println("\n▶ Gaze sweep (expect an activation)...")

	now := time.Now()
	// Approach from outside the region
	for i := 0; i < 10; i++ {
		x := 1.0 - float64(i)*0.1
		msg, err := protocol.NewGazeMessage(spatial.Vec3{X: x, Y: 0, Z: -1}, now, "")
		send(conn, msg, err)
		now = now.Add(16 * time.Millisecond)
		time.Sleep(16 * time.Millisecond)
	}
	// Hold inside the sphere for 1.5x the dwell duration
	hold := time.Duration(float64(*dwellMS)*1.5) * time.Millisecond
	for elapsed := time.Duration(0); elapsed < hold; elapsed += 16 * time.Millisecond {
		msg, err := protocol.NewGazeMessage(spatial.Vec3{X: 0, Y: 0, Z: -1}, now, "")
		send(conn, msg, err)
		now = now.Add(16 * time.Millisecond)
		time.Sleep(16 * time.Millisecond)
	}
	// Look away, then simulate tracking loss
	msg, err := protocol.NewGazeMessage(spatial.Vec3{X: 2, Y: 0, Z: -1}, now, "")
	send(conn, msg, err)
	msg, err = protocol.NewGazeLostMessage(now.Add(16 * time.Millisecond))
	send(conn, msg, err)
	time.Sleep(100 * time.Millisecond)
}

func pinchSequence(conn *websocket.Conn) {
	fmt.Println("\n▶ Pinch 1.0 → 2.0...")
	now := time.Now()
	msg, err := protocol.NewGestureMessage(protocol.KindPinch, protocol.PhaseBegin,
		gesture.Sample{Scale: 1.0, Timestamp: now})
	send(conn, msg, err)
	for i := 1; i <= 10; i++ {
		now = now.Add(16 * time.Millisecond)
		msg, err := protocol.NewGestureMessage(protocol.KindPinch, protocol.PhaseChange,
			gesture.Sample{Scale: 1.0 + float64(i)*0.1, Timestamp: now})
		send(conn, msg, err)
		time.Sleep(16 * time.Millisecond)
	}
	msg, err = protocol.NewGestureMessage(protocol.KindPinch, protocol.PhaseEnd,
		gesture.Sample{Scale: 2.0, Timestamp: now.Add(16 * time.Millisecond)})
	send(conn, msg, err)
	time.Sleep(100 * time.Millisecond)
}

func dragSequence(conn *websocket.Conn) {
	fmt.Println("\n▶ Drag along +X...")
	now := time.Now()
	msg, err := protocol.NewGestureMessage(protocol.KindDrag, protocol.PhaseBegin,
		gesture.Sample{Position: spatial.Vec3{X: 0, Y: 0, Z: -0.5}, Timestamp: now})
	send(conn, msg, err)
	for i := 1; i <= 10; i++ {
		now = now.Add(16 * time.Millisecond)
		msg, err := protocol.NewGestureMessage(protocol.KindDrag, protocol.PhaseChange,
			gesture.Sample{Position: spatial.Vec3{X: float64(i) * 0.05, Y: 0, Z: -0.5}, Timestamp: now})
		send(conn, msg, err)
		time.Sleep(16 * time.Millisecond)
	}
	msg, err = protocol.NewGestureMessage(protocol.KindDrag, protocol.PhaseEnd,
		gesture.Sample{Position: spatial.Vec3{X: 0.5, Y: 0, Z: -0.5}, Timestamp: now.Add(16 * time.Millisecond)})
	send(conn, msg, err)
	time.Sleep(100 * time.Millisecond)
}

func rotateSequence(conn *websocket.Conn) {
	fmt.Println("\n▶ Rotate a full turn plus a quarter...")
	now := time.Now()
	msg, err := protocol.NewGestureMessage(protocol.KindRotate, protocol.PhaseBegin,
		gesture.Sample{Angle: 0, Timestamp: now})
	send(conn, msg, err)
	steps := 20
	total := 2.5 * 3.141592653589793
	for i := 1; i <= steps; i++ {
		now = now.Add(16 * time.Millisecond)
		msg, err := protocol.NewGestureMessage(protocol.KindRotate, protocol.PhaseChange,
			gesture.Sample{Angle: total * float64(i) / float64(steps), Timestamp: now})
		send(conn, msg, err)
		time.Sleep(16 * time.Millisecond)
	}
	msg, err = protocol.NewGestureMessage(protocol.KindRotate, protocol.PhaseEnd,
		gesture.Sample{Angle: total, Timestamp: now.Add(16 * time.Millisecond)})
	send(conn, msg, err)
	time.Sleep(100 * time.Millisecond)
}

func hoverSequence(conn *websocket.Conn) {
	fmt.Println("\n▶ Hover approach...")
	now := time.Now()
	msg, err := protocol.NewGestureMessage(protocol.KindHover, protocol.PhaseBegin,
		gesture.Sample{Position: spatial.Vec3{X: 0, Y: 0, Z: -0.8}, Timestamp: now})
	send(conn, msg, err)
	for i := 1; i <= 8; i++ {
		now = now.Add(16 * time.Millisecond)
		z := -0.8 + float64(i)*0.08
		msg, err := protocol.NewGestureMessage(protocol.KindHover, protocol.PhaseChange,
			gesture.Sample{Position: spatial.Vec3{X: 0, Y: 0, Z: z}, Timestamp: now})
		send(conn, msg, err)
		time.Sleep(16 * time.Millisecond)
	}
	msg, err = protocol.NewGestureMessage(protocol.KindHover, protocol.PhaseEnd,
		gesture.Sample{Position: spatial.Vec3{X: 0, Y: 0, Z: -0.15}, Timestamp: now.Add(16 * time.Millisecond)})
	send(conn, msg, err)
	time.Sleep(100 * time.Millisecond)
}
