package tutor

// Config holds tutor reply settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// HistoryTurns caps how many earlier turns are sent with a question.
	HistoryTurns int
}

// DefaultConfig returns sensible defaults for chat replies.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    700,
		Temperature:  0.4,
		HistoryTurns: 10,
	}
}
