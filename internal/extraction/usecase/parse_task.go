package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"maxitask/internal/extraction"
	"maxitask/pkg/gemini"
)

// ParseSingleTask extracts at most one structured task from the utterance.
//
// Without a usable credential the raw text passes through as the title with
// the active category attached, and no model call is attempted. Transport and
// parse failures degrade to the same identity fallback: extraction problems
// must never block task creation.
func (uc *implUseCase) ParseSingleTask(ctx context.Context, utterance string, ec extraction.Context) extraction.SingleTaskResult {
	fallback := extraction.SingleTaskResult{
		Title:    utterance,
		Category: ec.ActiveCategory,
	}

	if strings.TrimSpace(ec.APIKey) == "" {
		return fallback
	}

	key := cacheKey("single", utterance, ec.ActiveCategory, ec.Categories, ec.CurrentDate)
	if uc.singleCache != nil {
		if cached, ok := uc.singleCache.Get(key); ok {
			return cached
		}
	}

	resp, err := uc.newGen(ec.APIKey).GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: buildSingleTaskPrompt(utterance, ec.Categories, ec.CurrentDate)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      genTemperature,
			MaxOutputTokens:  maxOutputTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   singleTaskSchema(ec.Categories),
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "extraction.ParseSingleTask: model call failed, using identity fallback: %v", err)
		return fallback
	}

	text := resp.Text()
	if text == "" {
		uc.l.Warnf(ctx, "extraction.ParseSingleTask: empty model reply, using identity fallback")
		return fallback
	}

	var reply taskReply
	if err := json.Unmarshal([]byte(sanitizeModelJSON(text)), &reply); err != nil {
		uc.l.Warnf(ctx, "extraction.ParseSingleTask: unparsable model reply %q: %v", text, err)
		return fallback
	}

	if strings.TrimSpace(reply.Title) == "" {
		return fallback
	}

	// Category is passed through as-is here. The merge step re-validates it
	// against the live category set: the model can drift outside the enum
	// despite the declared schema.
	result := extraction.SingleTaskResult{
		Title:    reply.Title,
		Category: reply.Category,
		Time:     reply.Time,
		Date:     reply.Date,
	}

	if uc.singleCache != nil {
		uc.singleCache.Add(key, result)
	}

	return result
}
