package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"promptcraft/internal/config"
)

// Brand palette
var (
	colorAccent      = lipgloss.Color("#8BC34A")
	colorDestructive = lipgloss.Color("#e53935")
	colorWarning     = lipgloss.Color("#FFC107")
	colorInfo        = lipgloss.Color("#2196F3")
)

// renderer styles shell output for one writer.
type renderer struct {
	md *glamour.TermRenderer // nil when markdown rendering is off

	header lipgloss.Style
	label  lipgloss.Style
	err    lipgloss.Style
	tip    lipgloss.Style
	info   lipgloss.Style
	muted  lipgloss.Style
}

func newRenderer(w io.Writer, ux config.UXConfig) *renderer {
	lr := lipgloss.NewRenderer(w)
	r := &renderer{
		header: lr.NewStyle().Bold(true).Foreground(colorAccent),
		label:  lr.NewStyle().Bold(true).Foreground(colorInfo),
		err:    lr.NewStyle().Foreground(colorDestructive),
		tip:    lr.NewStyle().Foreground(colorWarning),
		info:   lr.NewStyle().Foreground(colorInfo),
		muted:  lr.NewStyle().Faint(true),
	}

	if ux.RenderMarkdown {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap(ux.WordWrap))}
		switch ux.Theme {
		case "", "auto":
			opts = append(opts, glamour.WithAutoStyle())
		default:
			opts = append(opts, glamour.WithStandardStyle(ux.Theme))
		}
		if md, err := glamour.NewTermRenderer(opts...); err == nil {
			r.md = md
		}
	}
	return r
}

func wordWrap(n int) int {
	if n <= 0 {
		return 80
	}
	return n
}

// Markdown renders s through glamour, or returns it unchanged when
// rendering is off or fails.
func (r *renderer) Markdown(s string) string {
	if r.md == nil {
		return s
	}
	out, err := r.md.Render(s)
	if err != nil {
		return s
	}
	return strings.Trim(out, "\n")
}

// Answer formats a model reply.
func (r *renderer) Answer(s string) string {
	if r.md == nil {
		return r.label.Render("Agent:") + " " + s
	}
	return r.label.Render("Agent:") + "\n" + r.Markdown(s)
}

func (r *renderer) Header(s string) string { return r.header.Render(s) }
func (r *renderer) Error(s string) string  { return r.err.Render(s) }
func (r *renderer) Tip(s string) string    { return r.tip.Render(s) }
func (r *renderer) Info(s string) string   { return r.info.Render(s) }
func (r *renderer) Muted(s string) string  { return r.muted.Render(s) }
