// Package agent implements the interactive AI assistant behind the `assist`
// command. It seeds a single Gemini chat with the rendered FIRE plan so the
// user can question their own numbers.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemPrompt = `
You are a careful financial planning assistant. The user shares a FIRE
(Financial Independence, Retire Early) projection report: a deterministic
simulation of their portfolio in real, inflation-adjusted terms.

Explain the numbers in it, how the half-year contribution approximation and
the post-FIRE contribution cutoff work, and what changing a rate or a
contribution would roughly do. Never invent figures that are not in the
report, and remind the user that projections are not advice.
`

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w    io.Writer
	r    *bufio.Reader
	plan string // rendered plan markdown, given to the model as context
	chat *genai.Chat
}

// New creates a new Agent around the rendered plan report.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, plan string) *Agent {
	return &Agent{
		w:    w,
		r:    bufio.NewReader(r),
		plan: plan,
	}
}

// Start creates the Gemini chat and shares the plan with it.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	if a.plan != "" {
		if _, err := a.Ask(ctx, "Here is my current FIRE plan report:\n\n"+a.plan); err != nil {
			return err
		}
	}
	return nil
}

// Ask sends one question and returns the model's text answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to fireplan assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			fmt.Fprintln(a.w, input)
		} else {
			line, err := a.r.ReadString('\n')
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			input = strings.TrimSpace(line)
		}

		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
