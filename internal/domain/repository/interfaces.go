package repository

import (
	"context"

	"song-suggester/internal/domain/entity"
)

// AIProvider generates a text completion for a prompt. systemInstruction may be empty.
type AIProvider interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (*entity.AIResponse, error)
}
