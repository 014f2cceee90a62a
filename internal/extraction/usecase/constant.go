package usecase

const (
	// MsgNoCredential is returned by the assistant path when no API key is
	// configured. No model call is attempted in that state.
	MsgNoCredential = "The assistant isn't available yet. Add your Gemini API key in Settings to enable it."

	// MsgAssistantFailed is returned by the assistant path on any transport or
	// parse failure.
	MsgAssistantFailed = "Sorry, I couldn't process that request. Please check your API key and try again."

	// Low temperature for deterministic JSON output.
	genTemperature = 0.2

	maxOutputTokens = 2048
)
