package main

import (
	"fmt"
	"io"
	"strings"

	"promptcraft/internal/technique"
)

var rule = strings.Repeat("=", 60)

// printMenu lists shell commands, techniques and usage examples.
func printMenu(w io.Writer, r *renderer) {
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, r.Header(" GEMINI PROMPT ENGINEERING AGENT"))
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nAvailable Commands:")
	for _, c := range [][2]string{
		{"search [query]", "Search the web and get summary"},
		{"demo [query]", "Compare different prompt techniques"},
		{"help", "Show this menu"},
		{"exit", "Quit the agent"},
	} {
		fmt.Fprintf(w, "  %-18s- %s\n", c[0], c[1])
	}

	fmt.Fprintln(w, "\nPrompting Techniques:")
	for _, t := range technique.All() {
		fmt.Fprintf(w, "  %-18s- %s\n", t.Command(), t.Description())
	}

	fmt.Fprintln(w, "\nUsage Examples:")
	for _, ex := range []string{
		"/cot What is 15% of 240?",
		"/role Write a poem as a Shakespeare expert",
		"/context We deploy on Fridays :: plan a release checklist",
		"demo What is photosynthesis?",
		"search golang generics",
	} {
		fmt.Fprintln(w, "  "+r.Muted(ex))
	}
	fmt.Fprintln(w, rule+"\n")
}
