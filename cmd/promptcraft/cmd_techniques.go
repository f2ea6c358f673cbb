package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"promptcraft/internal/technique"
)

// techniquesCmd lists the available techniques
var techniquesCmd = &cobra.Command{
	Use:   "techniques",
	Short: "List prompting techniques",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COMMAND\tNAME\tTITLE\tDESCRIPTION")
		for _, t := range technique.All() {
			marker := ""
			if t == cfg.Agent.DefaultTechnique {
				marker = " *"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\n", t.Command(), t, t.Title(), t.Description(), marker)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n* default technique")
		return nil
	},
}
