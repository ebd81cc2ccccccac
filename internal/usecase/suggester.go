package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"song-suggester/internal/domain/entity"
	"song-suggester/internal/domain/repository"
)

// SystemInstruction is sent alongside every suggestion prompt.
const SystemInstruction = "You are an expert music recommender. Only output valid JSON without markdown formatting or extra text."

const promptTemplate = `
Return your output as valid JSON. The JSON should have a key "suggestions" that holds an array of objects.
Each object must have "name", "artist", and "reason" keys. Do not include any markdown or extra text.
Suggest songs similar to: %s
`

type Suggester struct {
	aiProvider repository.AIProvider
}

func NewSuggester(ai repository.AIProvider) *Suggester {
	return &Suggester{aiProvider: ai}
}

// BuildPrompt embeds the serialized songs in the suggestion instruction.
func BuildPrompt(songs []entity.SongInput) (string, error) {
	if songs == nil {
		songs = []entity.SongInput{}
	}
	encoded, err := json.Marshal(songs)
	if err != nil {
		return "", fmt.Errorf("encode songs: %w", err)
	}
	return fmt.Sprintf(promptTemplate, encoded), nil
}

// Suggest makes exactly one model call for the given songs. Model failures wrap
// entity.ErrUpstream; unparseable output wraps entity.ErrMalformedOutput.
func (s *Suggester) Suggest(ctx context.Context, req entity.SuggestionRequest) (*entity.SuggestionResponse, error) {
	songs := req.Songs
	if songs == nil {
		songs = []entity.SongInput{}
	}

	prompt, err := BuildPrompt(songs)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.aiProvider.Generate(ctx, prompt, SystemInstruction)
	modelLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		suggestionOutcomes.WithLabelValues("upstream_error").Inc()
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstream, err)
	}

	slog.Debug("model responded",
		"model", resp.Model,
		"tokens", resp.TokenCount,
		"songs", len(songs),
	)

	suggestions, err := ParseSuggestions(StripCodeFences(resp.Content))
	if err != nil {
		suggestionOutcomes.WithLabelValues("malformed_output").Inc()
		return nil, err
	}

	suggestionOutcomes.WithLabelValues("ok").Inc()
	return &entity.SuggestionResponse{
		FilteredSongs:  songs,
		SuggestedSongs: suggestions,
	}, nil
}
