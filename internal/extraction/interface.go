package extraction

import (
	"context"

	"maxitask/pkg/gemini"
)

// UseCase turns free text into structured task/note candidates.
//
// Neither operation returns an error: every failure mode (missing credential,
// transport failure, malformed model output) collapses into a safe fallback
// result, so consumers have exactly one code path to handle.
type UseCase interface {
	ParseSingleTask(ctx context.Context, utterance string, ec Context) SingleTaskResult
	ProcessAssistant(ctx context.Context, utterance string, ec Context) AssistantResult
}

// Generator is the narrow model-endpoint abstraction. Stub it in tests to
// exercise the extraction logic without a live network dependency.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// GeneratorFactory builds a Generator bound to a user-supplied credential.
// The credential changes at runtime (settings), so clients are built per call.
type GeneratorFactory func(apiKey string) Generator
