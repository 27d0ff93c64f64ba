package crew

import (
	"context"
	"errors"
	"fmt"

	"travel-orchestrator/internal/router"
	"travel-orchestrator/pkg/llmprovider"
)

// Run executes the travel-manager task: Reason, Act, Observe, for at most
// MaxIterations tool rounds, then forces a final answer. It returns the
// model's raw final text.
func (c *Crew) Run(ctx context.Context, req router.AgentRequest) (string, error) {
	task := c.prompts.TaskDescription(req.Conversation, req.Intent, req.Params, buildTimeContext(c.parser, c.now()))

	llmReq := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: c.prompts.SystemInstruction()}},
		},
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Parts: []llmprovider.Part{{Text: task}}},
		},
		Tools:       c.registry.ToFunctionDefinitions(),
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	for step := 0; step < c.cfg.MaxIterations; step++ {
		c.l.Debugf(ctx, LogMsgAgentStep, step+1, c.cfg.MaxIterations)

		// 1. Reason
		resp, err := c.llm.GenerateContent(ctx, llmReq)
		if err != nil {
			return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", step+1, err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			c.l.Infof(ctx, LogMsgAgentFinished, step+1)
			return finalText(resp)
		}

		// 2. Act, 3. Observe
		c.observe(ctx, llmReq, calls)
	}

	c.l.Warnf(ctx, LogMsgForcedFinalAnswer, c.cfg.MaxIterations)
	llmReq.Tools = nil
	llmReq.Messages = append(llmReq.Messages, llmprovider.Message{
		Role:  llmprovider.RoleUser,
		Parts: []llmprovider.Part{{Text: FinalAnswerInstruction}},
	})

	resp, err := c.llm.GenerateContent(ctx, llmReq)
	if err != nil {
		return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", c.cfg.MaxIterations+1, err)
	}
	return finalText(resp)
}

func (c *Crew) observe(ctx context.Context, llmReq *llmprovider.Request, calls []llmprovider.FunctionCall) {
	callParts := make([]llmprovider.Part, 0, len(calls))
	resultParts := make([]llmprovider.Part, 0, len(calls))

	for i := range calls {
		call := calls[i]
		c.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)

		callParts = append(callParts, llmprovider.Part{FunctionCall: &call})
		resultParts = append(resultParts, llmprovider.Part{FunctionResponse: &llmprovider.FunctionResponse{
			ID:       call.ID,
			Name:     call.Name,
			Response: c.execute(ctx, call),
		}})
	}

	llmReq.Messages = append(llmReq.Messages,
		llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: callParts},
		llmprovider.Message{Role: llmprovider.RoleTool, Parts: resultParts},
	)
}

// execute runs one tool call. Tool failures are reported back to the model
// instead of aborting the run.
func (c *Crew) execute(ctx context.Context, call llmprovider.FunctionCall) any {
	tool, ok := c.registry.Get(call.Name)
	if !ok {
		c.l.Warnf(ctx, LogMsgToolExecutionError, call.Name, ErrMsgToolNotFound)
		return map[string]string{"error": ErrMsgToolNotFound}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		c.l.Warnf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}

var errEmptyResponse = errors.New(ErrMsgEmptyLLMResponse)

func finalText(resp *llmprovider.Response) (string, error) {
	text := resp.Text()
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}
