package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/muhittincamdali/go-gazekit/pkg/dwell"
)

// handleStatus returns the engine state summary
func (s *Server) handleStatus(c *fiber.Ctx) error {
	state := s.engine.State()
	state.Subscribers = s.eventHub.ClientCount()
	state.Samples = s.samplesReceived.Load()
	return c.JSON(state)
}

// handleListTargets returns the progress of every registered target
func (s *Server) handleListTargets(c *fiber.Ctx) error {
	targets := s.engine.Targets()
	if targets == nil {
		targets = []dwell.TargetProgress{}
	}
	return c.JSON(targets)
}

// handleRegisterTarget registers a dwell target with an optional hit region
func (s *Server) handleRegisterTarget(c *fiber.Ctx) error {
	var req RegisterTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "target id is required",
		})
	}

	region, err := req.Region.build()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := s.engine.RegisterTarget(req.ID, req.Duration(), region); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, dwell.ErrInvalidConfiguration) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": req.ID})
}

// handleUnregisterTarget removes a dwell target
func (s *Server) handleUnregisterTarget(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.engine.UnregisterTarget(id); err != nil {
		if errors.Is(err, dwell.ErrUnknownTarget) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"id": id})
}

