package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

const (
	defaultChatTimeout = 30 * time.Second

	// Answers must be deterministic and grounded, so temperature stays at 0.
	chatTemperature = 0

	extractMaxTokens = 50
	answerMaxTokens  = 100
)

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(apiKey string, model openai.ChatModel) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) ExtractCompany(ctx context.Context, question string) (string, error) {
	content, err := c.complete(ctx,
		"Extract only the company name from the following question. Return just the company name, nothing else.",
		question,
		extractMaxTokens,
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *OpenAIClient) Answer(ctx context.Context, question, contextText, kind string) (string, error) {
	prompt := fmt.Sprintf(`Answer the following question based ONLY on the provided context.

Context:
%s

Question: %s

The answer should be a %s. If the information is not available in the context, return 'N/A'.

Answer:`, contextText, question, kind)

	content, err := c.complete(ctx,
		"You are a helpful assistant that answers questions based only on the provided context.",
		prompt,
		answerMaxTokens,
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:               c.model,
		Messages:            buildMessages(system, user),
		Temperature:         openai.Float(chatTemperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
