package usecase

import "maxitask/pkg/gemini"

// taskCandidateSchema is the shared task shape: title plus an enum-constrained
// category, with optional time and date strings.
func taskCandidateSchema(categories []string) *gemini.Schema {
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"title": {
				Type:        gemini.TypeString,
				Description: "Short task title",
			},
			"category": {
				Type: gemini.TypeString,
				Enum: categories,
			},
			"time": {
				Type:        gemini.TypeString,
				Description: "24-hour HH:MM clock time, omitted when none is implied",
			},
			"date": {
				Type:        gemini.TypeString,
				Description: "YYYY-MM-DD calendar date, omitted when none is implied",
			},
		},
		Required: []string{"title", "category"},
	}
}

// singleTaskSchema constrains the quick-add reply to exactly one task object.
func singleTaskSchema(categories []string) *gemini.Schema {
	return taskCandidateSchema(categories)
}

// assistantSchema constrains the assistant reply: a required message, a
// required (possibly empty) task array and an optional note.
func assistantSchema(categories []string) *gemini.Schema {
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"message": {
				Type:        gemini.TypeString,
				Description: "Conversational reply shown to the user",
			},
			"newTasks": {
				Type:  gemini.TypeArray,
				Items: taskCandidateSchema(categories),
			},
			"newNote": {
				Type: gemini.TypeObject,
				Properties: map[string]*gemini.Schema{
					"title": {Type: gemini.TypeString},
					"content": {
						Type:        gemini.TypeString,
						Description: "Long-form note body",
					},
					"category": {
						Type: gemini.TypeString,
						Enum: categories,
					},
					"date": {
						Type:        gemini.TypeString,
						Description: "YYYY-MM-DD calendar date, omitted when none is implied",
					},
				},
				Required: []string{"title", "content", "category"},
			},
		},
		Required: []string{"message", "newTasks"},
	}
}
