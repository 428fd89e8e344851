package llm

type LLMRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// TokenUsage is the provider-reported token accounting for one call.
// Either side may be zero when the provider omits it.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

func (u TokenUsage) Total() int {
	return u.InputTokens + u.OutputTokens
}

type LLMResponse struct {
	Content    string
	StopReason string
	Usage      TokenUsage
}
