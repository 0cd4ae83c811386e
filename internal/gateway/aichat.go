package gateway

import (
	"context"
	"errors"

	"google.golang.org/genai"

	apperrors "snadaily/internal/errors"
)

// betta care assistant persona shown in the storefront chat bubble
const chatSystemPrompt = "You are the betta fish expert of SNA Daily, an Indonesian " +
	"betta breeder and provenance registry. Answer questions about betta care, " +
	"varieties, water parameters, feeding, breeding and disease in the language " +
	"the customer writes in. Keep answers short and practical. If asked about " +
	"anything unrelated to ornamental fish, politely steer back to betta topics."

// ChatGateway answers a single customer message through the generative-AI
// provider.
type ChatGateway interface {
	Reply(ctx context.Context, message string) (string, error)
}

type geminiChat struct {
	client *genai.Client
	model  string
}

// NewGeminiChat builds a chat gateway backed by the Gemini API. Without an
// API key it returns a disabled gateway so the rest of the service still
// boots; the chat route then answers 503.
func NewGeminiChat(ctx context.Context, apiKey, model string) (ChatGateway, error) {
	if apiKey == "" {
		return disabledChat{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &geminiChat{client: client, model: model}, nil
}

// Reply sends one message and returns the model's text answer.
func (g *geminiChat) Reply(ctx context.Context, message string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(message),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(chatSystemPrompt, genai.RoleUser),
		},
	)
	if err != nil {
		return "", apperrors.NewUpstreamError("gemini", err)
	}

	reply := resp.Text()
	if reply == "" {
		return "", apperrors.NewUpstreamError("gemini", errors.New("empty completion"))
	}
	return reply, nil
}

type disabledChat struct{}

func (disabledChat) Reply(context.Context, string) (string, error) {
	return "", apperrors.ErrChatUnavailable
}
