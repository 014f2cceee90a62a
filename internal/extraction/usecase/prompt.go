package usecase

import (
	"fmt"
	"strings"
	"time"

	"maxitask/pkg/datemath"
)

// buildTimeContext renders the temporal anchor block for a prompt. The
// current date string comes from the caller and is only embedded, never
// validated: if it doesn't parse, the raw string still anchors "today".
func buildTimeContext(currentDate string) string {
	today, err := time.Parse(datemath.DateFormat, currentDate)
	if err != nil {
		return fmt.Sprintf("TODAY: %s\n", currentDate)
	}

	tomorrow := today.AddDate(0, 0, 1)
	return fmt.Sprintf(
		"TODAY: %s (%s). TOMORROW: %s.\n",
		today.Format(datemath.DateFormat),
		today.Weekday().String(),
		tomorrow.Format(datemath.DateFormat),
	)
}

// buildSingleTaskPrompt is the quick-add prompt: one utterance, exactly one
// task candidate.
func buildSingleTaskPrompt(utterance string, categories []string, currentDate string) string {
	var sb strings.Builder

	sb.WriteString("You are the quick-add parser for a personal task list.\n")
	sb.WriteString(buildTimeContext(currentDate))
	sb.WriteString("Extract exactly one task from the user's input.\n")
	sb.WriteString("- title: a short, clean task title\n")
	sb.WriteString(fmt.Sprintf("- category: pick strictly from this list: %s\n", strings.Join(categories, ", ")))
	sb.WriteString("- time: a 24-hour HH:MM clock time, only if the input implies one.")
	sb.WriteString(" Explicit times (\"at 5pm\" -> \"17:00\") and relative phrasings")
	sb.WriteString(" (\"tomorrow morning\" -> \"09:00\") both count. Omit otherwise.\n")
	sb.WriteString("- date: a YYYY-MM-DD calendar date, only if the input implies one,")
	sb.WriteString(" resolved against TODAY (\"tomorrow\" is TOMORROW above). Omit otherwise.\n")
	sb.WriteString("\nUSER INPUT:\n")
	sb.WriteString(utterance)

	return sb.String()
}

// buildAssistantPrompt is the multi-result prompt: zero or more tasks, at
// most one note, always a conversational message.
func buildAssistantPrompt(utterance string, categories []string, currentDate string) string {
	var sb strings.Builder

	sb.WriteString("You are the AI assistant inside a personal task and notes app.\n")
	sb.WriteString(buildTimeContext(currentDate))
	sb.WriteString(fmt.Sprintf("Valid categories: %s\n\n", strings.Join(categories, ", ")))
	sb.WriteString("Follow these rules:\n")
	sb.WriteString("1. If the user asks for a list of things (packing list, grocery list, steps),")
	sb.WriteString(" create one task per concrete item. Never collapse a list into a single summarizing task.\n")
	sb.WriteString("2. For every task, extract a 24-hour HH:MM time and a YYYY-MM-DD date when implied,")
	sb.WriteString(" resolving relative dates against TODAY. Omit them otherwise.\n")
	sb.WriteString("3. If the user asks for long-form content (a draft, a summary, an idea writeup),")
	sb.WriteString(" produce a single note with that content instead of, or alongside, tasks.\n")
	sb.WriteString("4. If the request is not actionable, respond with only a conversational message and no tasks.\n")
	sb.WriteString("\nAlways include a short, friendly message describing what you did.\n")
	sb.WriteString("\nUSER INPUT:\n")
	sb.WriteString(utterance)

	return sb.String()
}
