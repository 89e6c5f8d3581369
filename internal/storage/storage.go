package storage

import (
	"time"

	"gramcheck/internal/config"
	"gramcheck/internal/domain"
)

// Storage persists and loads verification run results (e.g. for the faills viewer).
type Storage interface {
	Save(results []domain.CaseResult, failures []domain.CheckFailure, duration time.Duration, workers int) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-status updates).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
