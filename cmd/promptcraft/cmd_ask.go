package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promptcraft/internal/agent"
	"promptcraft/internal/technique"
)

var (
	askTechnique    string
	promptTechnique string
)

// askCmd sends one request through the agent
var askCmd = &cobra.Command{
	Use:   "ask [text...]",
	Short: "Ask once with the selected technique",
	Long: `Applies a prompting technique to the text and prints Gemini's answer.

Examples:
  promptcraft ask -t cot "What is 15% of 240?"
  promptcraft ask -t role "Write a poem as a Shakespeare expert"
  promptcraft ask -t breakdown "Build a CLI :: use Go; no cgo :: design; implement"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := selectTechnique(askTechnique)
		if err != nil {
			return err
		}
		return runAsk(cmd, strings.Join(args, " "), t)
	},
}

// searchCmd grounds an answer in web results
var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the web and summarize the results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd, "search "+strings.Join(args, " "), technique.ZeroShot)
	},
}

// promptCmd prints the final prompt without calling the model
var promptCmd = &cobra.Command{
	Use:   "prompt [text...]",
	Short: "Print the prompt a technique would send, without calling the model",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := selectTechnique(promptTechnique)
		if err != nil {
			return err
		}
		a, err := buildAgent(cfg, nil)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout(cfg))
		defer cancel()

		p, err := a.BuildPrompt(ctx, agent.Request{Task: strings.Join(args, " "), Technique: t})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askTechnique, "technique", "t", "", "Technique name, alias or /command (default from config)")
	promptCmd.Flags().StringVarP(&promptTechnique, "technique", "t", "", "Technique name, alias or /command (default from config)")
}

// selectTechnique parses name, falling back to the configured default.
func selectTechnique(name string) (technique.Technique, error) {
	if name == "" {
		return cfg.Agent.DefaultTechnique, nil
	}
	return technique.Parse(name)
}

func runAsk(cmd *cobra.Command, task string, t technique.Technique) error {
	a, err := buildAgent(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout(cfg))
	defer cancel()

	reply, err := a.Reply(ctx, agent.Request{Task: task, Technique: t})
	if err != nil {
		return err
	}

	r := newRenderer(cmd.OutOrStdout(), cfg.UX)
	fmt.Fprintln(cmd.OutOrStdout(), r.Markdown(reply.Text))
	return nil
}
