package handler

import (
	"skill-bridge/internal/delivery/http/dto"
	"skill-bridge/internal/delivery/http/middleware"
	"skill-bridge/internal/pkg/response"
	ucrec "skill-bridge/internal/usecase/recommendation"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc *ucrec.Service
}

func NewRecommendationHandler(uc *ucrec.Service) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/mentors", h.Mentors)
	r.Get("/jobs", h.Jobs)
}

// Both endpoints return bare JSON arrays: the dashboard consumes them
// directly rather than through the success envelope.

func (h *RecommendationHandler) Mentors(c fiber.Ctx) error {
	mentors, err := h.uc.Mentors(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewMentorResponses(mentors))
}

func (h *RecommendationHandler) Jobs(c fiber.Ctx) error {
	jobs, err := h.uc.Jobs(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewJobListingResponses(jobs))
}
