package ports

import (
	"context"

	"amor-service/internal/domain"
)

// Contract for the AI image-diagnosis call. The model is an external black
// box; implementations own prompt construction and response parsing.
type DiagnosisProvider interface {
	Diagnose(ctx context.Context, imageBase64, mimeType, language string) (domain.Diagnosis, error)
}
