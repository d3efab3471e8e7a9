package llmprovider

import (
	"context"

	"verdant-agenda/pkg/deepseek"
	"verdant-agenda/pkg/gemini"
	"verdant-agenda/pkg/qwen"
)

// GeminiAdapter adapts the Gemini client to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Role:  req.SystemInstruction.Role,
			Parts: toGeminiParts(req.SystemInstruction.Parts),
		}
	}

	for i := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{
			Role:  req.Messages[i].Role,
			Parts: toGeminiParts(req.Messages[i].Parts),
		})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content: Message{Role: resp.Content.Role},
	}
	for _, part := range resp.Content.Parts {
		out.Content.Parts = append(out.Content.Parts, Part{Text: part.Text})
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, 0, len(parts))
	for _, p := range parts {
		out = append(out, gemini.Part{Text: p.Text})
	}
	return out
}

// DeepSeekAdapter adapts the DeepSeek client to the Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{
			Role:    "system",
			Content: flattenParts(req.SystemInstruction.Parts),
		})
	}

	for i := range req.Messages {
		role := req.Messages[i].Role
		if role == "model" {
			role = "assistant"
		}
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{
			Role:    role,
			Content: flattenParts(req.Messages[i].Parts),
		})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		msg := resp.Choices[0].Message
		out.Content = Message{Role: msg.Role}
		if msg.Content != "" {
			out.Content.Parts = append(out.Content.Parts, Part{Text: msg.Content})
		}
	}
	return out, nil
}

func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts the Qwen client to the Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Messages:    make([]qwen.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		qwenReq.SystemInstruction = &qwen.Content{
			Role:  req.SystemInstruction.Role,
			Parts: toQwenParts(req.SystemInstruction.Parts),
		}
	}

	for i := range req.Messages {
		qwenReq.Messages = append(qwenReq.Messages, qwen.Content{
			Role:  req.Messages[i].Role,
			Parts: toQwenParts(req.Messages[i].Parts),
		})
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content: Message{Role: resp.Content.Role},
	}
	for _, part := range resp.Content.Parts {
		out.Content.Parts = append(out.Content.Parts, Part{Text: part.Text})
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

func (a *QwenAdapter) Name() string {
	return "qwen"
}

func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

func toQwenParts(parts []Part) []qwen.Part {
	out := make([]qwen.Part, 0, len(parts))
	for _, p := range parts {
		out = append(out, qwen.Part{Text: p.Text})
	}
	return out
}

func flattenParts(parts []Part) string {
	var out string
	for _, p := range parts {
		if p.Text == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
