// Package web exposes the interaction engine over HTTP and websockets:
// sample sources stream gaze/gesture samples into /ws/samples,
// presentation clients subscribe to derived events on /ws/events, and a
// small REST API manages dwell targets.
package web

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/muhittincamdali/go-gazekit/internal/log"
	"github.com/muhittincamdali/go-gazekit/pkg/dwell"
	"github.com/muhittincamdali/go-gazekit/pkg/gaze"
	"github.com/muhittincamdali/go-gazekit/pkg/hub"
	"github.com/muhittincamdali/go-gazekit/pkg/protocol"
)

// Engine is the slice of the interaction engine the web layer needs.
type Engine interface {
	Submit(msg *protocol.Message)
	RegisterTarget(id string, duration time.Duration, region gaze.Region) error
	UnregisterTarget(id string) error
	Targets() []dwell.TargetProgress
	State() protocol.StateData
}

// Server is the engine's HTTP/websocket front end.
type Server struct {
	app    *fiber.App
	port   string
	engine Engine

	// Hub for broadcasting engine events to subscribers
	eventHub *hub.Hub

	samplesReceived atomic.Uint64
}

// NewServer creates the front end for an engine.
func NewServer(port string, engine Engine) *Server {
	s := &Server{
		port:     port,
		engine:   engine,
		eventHub: hub.New("events"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "gazekit",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/targets", s.handleListTargets)
	api.Post("/targets", s.handleRegisterTarget)
	api.Delete("/targets/:id", s.handleUnregisterTarget)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes. Ingest and broadcast run on separate stacks.
	app.Get("/ws/samples", s.samplesHandler())
	app.Get("/ws/events", websocket.New(s.handleEventsWS))

	s.app = app
	return s
}

// Publish implements engine.Sink: engine output fans out to every
// events subscriber.
func (s *Server) Publish(msg *protocol.Message) {
	data, err := msg.Bytes()
	if err != nil {
		log.Error("failed to encode event", "error", err)
		return
	}
	s.eventHub.Broadcast(hub.NewJSONMessage(data))
}

// SubscriberCount returns the number of events subscribers.
func (s *Server) SubscriberCount() int {
	return s.eventHub.ClientCount()
}

// Start starts the web server. Blocks.
func (s *Server) Start() error {
	log.Info("web server listening", "port", s.port)
	go s.eventHub.Run()
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("web server error", "error", err)
		}
	}()
}

// Shutdown gracefully stops the web server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleEventsWS subscribes a presentation client to engine events
func (s *Server) handleEventsWS(c *websocket.Conn) {
	client := hub.NewClient(s.eventHub, c)
	client.Run() // Blocks until the connection closes
}
