package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"maxitask/internal/extraction"
	"maxitask/pkg/log"
)

// implUseCase is the private implementation of extraction.UseCase.
type implUseCase struct {
	l      log.Logger
	newGen extraction.GeneratorFactory

	// Successful extractions are cached per utterance+context so that a
	// repeated submission does not trigger a second model call. Fallback
	// results are never cached: a later credential or endpoint fix must retry.
	singleCache *lru.Cache[string, extraction.SingleTaskResult]
	assistCache *lru.Cache[string, extraction.AssistantResult]
}

// New creates a new extraction UseCase. cacheSize <= 0 disables caching.
func New(l log.Logger, newGen extraction.GeneratorFactory, cacheSize int) *implUseCase {
	uc := &implUseCase{
		l:      l,
		newGen: newGen,
	}

	if cacheSize > 0 {
		uc.singleCache, _ = lru.New[string, extraction.SingleTaskResult](cacheSize)
		uc.assistCache, _ = lru.New[string, extraction.AssistantResult](cacheSize)
	}

	return uc
}
