package assistant

import "maxitask/internal/model"

type ProcessInput struct {
	Text string
}

// ProcessOutput always carries a Message; CreatedTasks and CreatedNote are
// whatever the conversation produced, already merged into the app state.
type ProcessOutput struct {
	Message      string
	CreatedTasks []model.Task
	CreatedNote  *model.Note
}
