package extraction

// Context carries the per-call state the extraction service needs. It is
// constructed fresh by the consumer for every call and never retained.
type Context struct {
	ActiveCategory string
	Categories     []string // ordered, read-only, at least one entry
	CurrentDate    string   // today as YYYY-MM-DD, used for relative-date resolution in the prompt
	APIKey         string   // optional; blank means "no model call, degrade"
}

// TaskCandidate is a task proposed by the model. Category is NOT guaranteed
// to be a member of the live category set: the merge step must re-validate it.
type TaskCandidate struct {
	Title    string
	Category string
	Time     string // optional "HH:MM"
	Date     string // optional "YYYY-MM-DD"
}

// NoteCandidate is a note proposed by the model. Same category caveat as
// TaskCandidate.
type NoteCandidate struct {
	Title    string
	Content  string
	Category string
	Date     string // optional "YYYY-MM-DD"
}

// SingleTaskResult is the outcome of the quick-add path. On any failure it
// degrades to the identity fallback: the raw utterance as Title, the active
// category as Category.
type SingleTaskResult struct {
	Title    string
	Category string
	Time     string
	Date     string
}

// AssistantResult is the outcome of the assistant path. Message is always
// non-empty; NewTasks may be empty; NewNote may be nil.
type AssistantResult struct {
	Message  string
	NewTasks []TaskCandidate
	NewNote  *NoteCandidate
}
