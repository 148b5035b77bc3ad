package domain

const (
	DefaultChatModel = "gpt-4o-mini"

	// TTS voice options: alloy, echo, fable, onyx, nova, shimmer.
	DefaultVoice = "onyx"
)
