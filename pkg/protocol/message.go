// Package protocol defines the WebSocket message types exchanged
// between sample sources (headset shell, simulator), the interaction
// engine, and presentation clients subscribed to derived events.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the type of WebSocket message
type MessageType string

const (
	// Source → Engine messages
	TypeGaze    MessageType = "gaze"    // Raw gaze/pointer sample
	TypeGesture MessageType = "gesture" // Raw gesture sample

	// Engine → Client messages
	TypeDwell      MessageType = "dwell"      // Per-target dwell progress
	TypeActivation MessageType = "activation" // Completed dwell
	TypeDrag       MessageType = "drag"       // Drag value snapshot
	TypePinch      MessageType = "pinch"      // Pinch value snapshot
	TypeRotate     MessageType = "rotate"     // Rotation value snapshot
	TypeHover      MessageType = "hover"      // Hover value snapshot
	TypeState      MessageType = "state"      // Engine state summary

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// GesturePhase marks where a gesture sample sits in its lifecycle.
type GesturePhase string

const (
	PhaseBegin  GesturePhase = "begin"
	PhaseChange GesturePhase = "change"
	PhaseEnd    GesturePhase = "end"
)

// GestureKind names the recognizer a gesture sample feeds.
type GestureKind string

const (
	KindDrag   GestureKind = "drag"
	KindPinch  GestureKind = "pinch"
	KindRotate GestureKind = "rotate"
	KindHover  GestureKind = "hover"
)

// Message is the base wrapper for all WebSocket messages
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// =============================================================================
// Source → Engine Message Types
// =============================================================================

// GazeSampleData is one raw gaze/pointer sample. Position is a
// 3-component point in meters; the engine drops wrong-dimension or
// non-finite positions before they reach the interaction core.
type GazeSampleData struct {
	Position []float64 `json:"position"`
	SampleTS int64     `json:"sample_ts"`           // Unix microseconds at capture
	TargetID string    `json:"target_id,omitempty"` // Set when the host already resolved the target
	Lost     bool      `json:"lost,omitempty"`      // Tracking dropped; clears focus
}

// GestureSampleData is one raw gesture sample. Position feeds drag and
// hover, Scale feeds pinch, Angle feeds rotate.
type GestureSampleData struct {
	Kind     GestureKind  `json:"kind"`
	Phase    GesturePhase `json:"phase"`
	Position []float64    `json:"position,omitempty"`
	Scale    float64      `json:"scale,omitempty"`
	Angle    float64      `json:"angle,omitempty"`
	SampleTS int64        `json:"sample_ts"` // Unix microseconds at capture
}

// =============================================================================
// Engine → Client Message Types
// =============================================================================

// TargetProgressData reports one target's dwell progress.
type TargetProgressData struct {
	ID       string  `json:"id"`
	Progress float64 `json:"progress"` // 0.0 to 1.0
	Dwelling bool    `json:"dwelling"`
}

// DwellData carries the progress of every registered target.
type DwellData struct {
	Targets []TargetProgressData `json:"targets"`
}

// ActivationData announces a completed dwell.
type ActivationData struct {
	TargetID string `json:"target_id"`
}

// StateData summarizes the engine for dashboards.
type StateData struct {
	Running     bool    `json:"running"`
	Targets     int     `json:"targets"`
	Subscribers int     `json:"subscribers"`
	Samples     uint64  `json:"samples,omitempty"`
	TickRateHz  float64 `json:"tick_rate_hz"`
	Focus       string  `json:"focus,omitempty"`
}

// =============================================================================
// Bidirectional Message Types
// =============================================================================

// PingData contains ping information
type PingData struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"ts"`
}

// PongData contains pong response
type PongData struct {
	ID        string `json:"id"`
	PingTS    int64  `json:"ping_ts"`
	PongTS    int64  `json:"pong_ts"`
	LatencyMs int64  `json:"latency_ms"`
}
