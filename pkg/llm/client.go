package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"go.uber.org/zap"
)

// Sampling parameters are pinned so repeated runs over the same corpus produce
// comparable analyses.
const (
	defaultTemperature = 0.0
	defaultSeed        = 42
)

// Client sends chat completions with a forced function tool call and returns
// the raw JSON arguments of the call. DashScope and OpenAI are both reached
// through the OpenAI-compatible chat completions API, so a single client type
// covers every backend; the base URL selects the provider.
type Client struct {
	api         openai.Client
	model       string
	temperature float64
	seed        int64
	logger      *zap.Logger
}

func NewClient(model string, backend Backend, logger *zap.Logger) *Client {
	opts := []option.RequestOption{}
	if backend.APIKey != "" {
		opts = append(opts, option.WithAPIKey(backend.APIKey))
	}
	if backend.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(backend.BaseURL))
	}

	return &Client{
		api:         openai.NewClient(opts...),
		model:       model,
		temperature: defaultTemperature,
		seed:        defaultSeed,
		logger:      logger,
	}
}

// Request sends the transcript with tool as the only available function tool,
// forced via tool_choice. On success the assistant turn and an empty tool
// result are appended to the transcript so later turns remain valid, and the
// call's raw JSON arguments are returned.
func (c *Client) Request(ctx context.Context, transcript *Transcript, tool ToolSpec) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: transcript.Messages(),
		Tools: []openai.ChatCompletionToolUnionParam{
			openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
				Name:        tool.Name,
				Description: openai.String(tool.Description),
				Strict:      openai.Bool(true),
				Parameters:  tool.Parameters,
			}),
		},
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{
			OfFunctionToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
				Function: openai.ChatCompletionNamedToolChoiceFunctionParam{
					Name: tool.Name,
				},
			},
		},
		Temperature: openai.Float(c.temperature),
		Seed:        openai.Int(c.seed),
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	message := completion.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		// callers log the failure; keep the stray content at debug only
		c.logger.Debug("model answered without calling the tool",
			zap.String("tool", tool.Name),
			zap.String("content", message.Content),
		)
		return "", fmt.Errorf("model did not call the %s tool", tool.Name)
	}

	call := message.ToolCalls[0]
	transcript.append(message.ToParam())
	transcript.append(openai.ToolMessage("", call.ID))

	return call.Function.Arguments, nil
}
