package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// demoCmd compares techniques on one query
var demoCmd = &cobra.Command{
	Use:   "demo [query...]",
	Short: "Compare prompting techniques on the same query",
	Long: `Runs the query through each demo technique (by default Zero-Shot,
Chain of Thought, Role-Based and Emotion Prompt) and prints the answers
one after another. Configure the list with agent.demo_techniques.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAgent(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout(cfg))
		defer cancel()

		query := strings.Join(args, " ")
		out := cmd.OutOrStdout()
		writeDemo(out, newRenderer(out, cfg.UX), query, a.Demonstrate(ctx, query))
		return nil
	},
}
