package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"maxitask/internal/extraction"
	"maxitask/pkg/gemini"
)

// ProcessAssistant runs the multi-result path: zero or more task candidates,
// at most one note candidate, and always a non-empty message.
//
// Every failure mode returns a valid, empty-effect result; nothing here is
// distinguishable to the caller from "the assistant had nothing useful to
// say" except the message text itself.
func (uc *implUseCase) ProcessAssistant(ctx context.Context, utterance string, ec extraction.Context) extraction.AssistantResult {
	if strings.TrimSpace(ec.APIKey) == "" {
		return extraction.AssistantResult{
			Message:  MsgNoCredential,
			NewTasks: []extraction.TaskCandidate{},
		}
	}

	failed := extraction.AssistantResult{
		Message:  MsgAssistantFailed,
		NewTasks: []extraction.TaskCandidate{},
	}

	key := cacheKey("assistant", utterance, ec.ActiveCategory, ec.Categories, ec.CurrentDate)
	if uc.assistCache != nil {
		if cached, ok := uc.assistCache.Get(key); ok {
			return cached
		}
	}

	resp, err := uc.newGen(ec.APIKey).GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: buildAssistantPrompt(utterance, ec.Categories, ec.CurrentDate)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      genTemperature,
			MaxOutputTokens:  maxOutputTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   assistantSchema(ec.Categories),
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "extraction.ProcessAssistant: model call failed: %v", err)
		return failed
	}

	text := resp.Text()
	if text == "" {
		uc.l.Warnf(ctx, "extraction.ProcessAssistant: empty model reply")
		return failed
	}

	var reply assistantReply
	if err := json.Unmarshal([]byte(sanitizeModelJSON(text)), &reply); err != nil {
		uc.l.Warnf(ctx, "extraction.ProcessAssistant: unparsable model reply %q: %v", text, err)
		return failed
	}

	// A missing message violates the declared schema: treat the whole reply
	// as malformed rather than inventing one.
	if strings.TrimSpace(reply.Message) == "" {
		uc.l.Warnf(ctx, "extraction.ProcessAssistant: reply missing required message")
		return failed
	}

	result := extraction.AssistantResult{
		Message:  reply.Message,
		NewTasks: make([]extraction.TaskCandidate, 0, len(reply.NewTasks)),
	}

	for _, t := range reply.NewTasks {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		result.NewTasks = append(result.NewTasks, extraction.TaskCandidate{
			Title:    t.Title,
			Category: t.Category,
			Time:     t.Time,
			Date:     t.Date,
		})
	}

	if n := reply.NewNote; n != nil && (strings.TrimSpace(n.Title) != "" || strings.TrimSpace(n.Content) != "") {
		result.NewNote = &extraction.NoteCandidate{
			Title:    n.Title,
			Content:  n.Content,
			Category: n.Category,
			Date:     n.Date,
		}
	}

	if uc.assistCache != nil {
		uc.assistCache.Add(key, result)
	}

	return result
}
