package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"song-suggester/internal/domain/entity"
	"song-suggester/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const suggestionErrorMessage = "Error generating song suggestions"

type SuggestionHandler struct {
	suggester *usecase.Suggester
}

func NewSuggestionHandler(s *usecase.Suggester) *SuggestionHandler {
	return &SuggestionHandler{suggester: s}
}

// HandleFilterSongs serves POST /filter-songs.
func (h *SuggestionHandler) HandleFilterSongs(c *fiber.Ctx) error {
	req, err := decodeSuggestionRequest(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": entity.ErrInvalidRequest.Error()})
	}

	resp, err := h.suggester.Suggest(c.UserContext(), req)
	if err != nil {
		kind := "upstream"
		if errors.Is(err, entity.ErrMalformedOutput) {
			kind = "malformed_output"
		}
		// Details stay in the log; callers get one generic message for every failure kind
		slog.Error("song suggestion failed",
			"request_id", requestID(c),
			"kind", kind,
			"songs", len(req.Songs),
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": suggestionErrorMessage})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// HandleSongStatus serves POST /song. The body is ignored.
func (h *SuggestionHandler) HandleSongStatus(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Song service is running"})
}

func decodeSuggestionRequest(body []byte) (entity.SuggestionRequest, error) {
	req := entity.SuggestionRequest{Songs: []entity.SongInput{}}
	if len(body) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return entity.SuggestionRequest{}, err
	}
	return req, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
