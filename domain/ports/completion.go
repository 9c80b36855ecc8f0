package ports

import "context"

// CompletionPort is the outbound chat-completion call. Implementations send a
// fixed system instruction plus the user prompt and return the raw text of the
// single choice.
type CompletionPort interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
