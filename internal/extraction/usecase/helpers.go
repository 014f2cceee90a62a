package usecase

import (
	"regexp"
	"strings"
)

// wire shapes the model is asked to emit. Parsed defensively: schema
// compliance from a generative source is advisory, not guaranteed.

type taskReply struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Time     string `json:"time"`
	Date     string `json:"date"`
}

type noteReply struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

type assistantReply struct {
	Message  string      `json:"message"`
	NewTasks []taskReply `json:"newTasks"`
	NewNote  *noteReply  `json:"newNote"`
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeModelJSON removes markdown code fences and leading/trailing prose
// that models sometimes add around JSON output, even under a declared schema.
func sanitizeModelJSON(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// cacheKey builds the cache key for an utterance in a given context. The
// credential is deliberately excluded: a successful extraction stays valid
// when the key is rotated.
func cacheKey(mode, utterance, active string, categories []string, currentDate string) string {
	return strings.Join([]string{
		mode,
		utterance,
		active,
		strings.Join(categories, ","),
		currentDate,
	}, "\x1f")
}
