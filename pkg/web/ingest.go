package web

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/muhittincamdali/go-gazekit/internal/log"
	"github.com/muhittincamdali/go-gazekit/pkg/protocol"
)

// samplesHandler builds the /ws/samples endpoint. Sample sources are
// kept on a separate websocket stack from event subscribers so a slow
// presentation client can never stall ingest.
func (s *Server) samplesHandler() fiber.Handler {
	return websocket.New(s.handleSamplesWS)
}

// handleSamplesWS ingests gaze/gesture samples from a source connection
func (s *Server) handleSamplesWS(c *websocket.Conn) {
	log.Info("sample source connected", "remote", c.RemoteAddr().String())
	defer log.Info("sample source disconnected", "remote", c.RemoteAddr().String())

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			return
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			log.Warn("unparseable sample message", "error", err)
			continue
		}

		switch msg.Type {
		case protocol.TypePing:
			var ping protocol.PingData
			if err := msg.ParseData(&ping); err != nil {
				continue
			}
			if pong, err := protocol.NewPongMessage(ping); err == nil {
				if data, err := pong.Bytes(); err == nil {
					c.WriteMessage(websocket.TextMessage, data)
				}
			}

		case protocol.TypeGaze, protocol.TypeGesture:
			s.samplesReceived.Add(1)
			s.engine.Submit(msg)

		default:
			log.Debug("ignoring inbound message", "type", msg.Type)
		}
	}
}

// SamplesReceived returns the number of samples accepted since start.
func (s *Server) SamplesReceived() uint64 {
	return s.samplesReceived.Load()
}
