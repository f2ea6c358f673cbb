package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptcraft/internal/agent"
	"promptcraft/internal/config"
	"promptcraft/internal/logging"
	"promptcraft/internal/technique"
)

const rateLimitTip = "Tip: Wait a minute if you hit rate limits"

// replier is the part of agent.Agent the shell drives.
type replier interface {
	Reply(ctx context.Context, req agent.Request) (agent.Reply, error)
	Demonstrate(ctx context.Context, query string) []agent.DemoResult
}

// session is the reloadable part of the shell.
type session struct {
	agent      replier
	render     *renderer
	timeout    time.Duration
	showPrompt bool
}

// Shell is the line-oriented interactive loop.
type Shell struct {
	in        io.Reader
	out       io.Writer
	technique technique.Technique

	// interrupt makes SIGINT cancel the in-flight request.
	interrupt bool

	current atomic.Pointer[session]
	logger  *zap.Logger
}

// NewShell creates a shell reading from in and writing to out.
func NewShell(in io.Reader, out io.Writer, s *session, start technique.Technique) *Shell {
	sh := &Shell{
		in:        in,
		out:       out,
		technique: start.OrDefault(),
		logger:    logging.Get(logging.CategoryShell),
	}
	sh.current.Store(s)
	return sh
}

// Reload swaps in a new agent and renderer. Safe to call while Run is active.
func (sh *Shell) Reload(s *session) {
	sh.current.Store(s)
}

// Run reads lines until "exit", end of input or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	printMenu(sh.out, sh.current.Load().render)

	scanner := bufio.NewScanner(sh.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(sh.out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out, "\nGoodbye!")
			return scanner.Err()
		}
		if quit := sh.handle(ctx, strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
}

// handle processes one input line and reports whether the shell should stop.
func (sh *Shell) handle(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	s := sh.current.Load()
	lower := strings.ToLower(line)

	switch {
	case lower == "exit":
		fmt.Fprintln(sh.out, "Goodbye!")
		return true

	case lower == "help":
		printMenu(sh.out, s.render)

	case strings.HasPrefix(line, "/"):
		sh.switchTechnique(ctx, s, line)

	case strings.HasPrefix(lower, "demo "):
		sh.demo(ctx, s, strings.TrimSpace(line[len("demo "):]))

	default:
		sh.reply(ctx, s, line)
	}
	return false
}

func (sh *Shell) switchTechnique(ctx context.Context, s *session, line string) {
	cmd, query, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	query = strings.TrimSpace(query)

	t, ok := technique.FromCommand(cmd)
	if !ok {
		fmt.Fprintln(sh.out, s.render.Error("Unknown technique: "+cmd))
		return
	}
	sh.technique = t
	sh.logger.Debug("technique switched", zap.Stringer("technique", t))

	if query == "" {
		fmt.Fprintf(sh.out, "Switched to %s mode. Enter your query:\n", t)
		return
	}
	fmt.Fprintln(sh.out, "\n"+s.render.Info(fmt.Sprintf("[Using %s technique]", t))+"\n")
	sh.reply(ctx, s, query)
}

func (sh *Shell) reply(parent context.Context, s *session, task string) {
	ctx, cancel := sh.requestContext(parent, s)
	defer cancel()

	reply, err := s.agent.Reply(ctx, agent.Request{Task: task, Technique: sh.technique})
	if s.showPrompt && reply.Prompt.Text != "" {
		fmt.Fprintln(sh.out, s.render.Muted("Prompt:")+"\n"+reply.Prompt.Text+"\n")
	}
	if err != nil {
		sh.logger.Warn("reply failed", zap.Error(err))
		fmt.Fprintln(sh.out, s.render.Error("Error: "+err.Error())+"\n")
		fmt.Fprintln(sh.out, s.render.Tip(rateLimitTip)+"\n")
		return
	}
	fmt.Fprintln(sh.out, "\n"+s.render.Answer(reply.Text)+"\n")
}

func (sh *Shell) demo(parent context.Context, s *session, query string) {
	ctx, cancel := sh.requestContext(parent, s)
	defer cancel()

	writeDemo(sh.out, s.render, query, s.agent.Demonstrate(ctx, query))
}

// writeDemo prints a side-by-side comparison of demo results.
func writeDemo(w io.Writer, r *renderer, query string, results []agent.DemoResult) {
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, r.Header("Testing Query: "+query))
	fmt.Fprintln(w, rule+"\n")

	for _, res := range results {
		fmt.Fprintln(w, "\n"+r.Info(fmt.Sprintf("--- Using %s Technique ---", res.Technique.Title())))
		if res.Err != nil {
			fmt.Fprintln(w, r.Error("Error: "+res.Err.Error())+"\n")
		} else {
			fmt.Fprintln(w, "Response: "+r.Markdown(res.Text)+"\n")
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}
}

// requestContext bounds one request by the session timeout and, in a real
// terminal, by Ctrl-C.
func (sh *Shell) requestContext(parent context.Context, s *session) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, s.timeout)
	if !sh.interrupt {
		return ctx, cancel
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	return ctx, func() {
		stop()
		cancel()
	}
}

// newSession builds the agent and renderer for c.
func newSession(c *config.Config, out, warn io.Writer) (*session, error) {
	a, err := buildAgent(c, warn)
	if err != nil {
		return nil, err
	}
	return &session{
		agent:      a,
		render:     newRenderer(out, c.UX),
		timeout:    requestTimeout(c),
		showPrompt: c.UX.ShowPrompt,
	}, nil
}

// runShell starts the interactive shell and hot-reloads the config file.
func runShell(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	s, err := newSession(cfg, out, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sh := NewShell(cmd.InOrStdin(), out, s, cfg.Agent.DefaultTechnique)
	sh.interrupt = true

	ctx, cancel := context.WithCancel(cmd.Context())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	path := resolvedConfigPath()
	if _, err := os.Stat(path); err == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			watchConfig(ctx, path, sh)
		}()
	}

	return sh.Run(ctx)
}

// watchConfig reloads the shell session whenever the config file changes.
func watchConfig(ctx context.Context, path string, sh *Shell) {
	log := logging.Get(logging.CategoryConfig)
	err := config.Watch(ctx, path, func(c *config.Config, err error) {
		if err != nil {
			log.Warn("config reload failed", zap.Error(err))
			return
		}
		applyFlags(c)
		s, err := newSession(c, sh.out, nil)
		if err != nil {
			log.Warn("config reload failed", zap.Error(err))
			return
		}
		sh.Reload(s)
		log.Info("config reloaded",
			zap.String("model", c.LLM.Model),
			zap.Bool("render_markdown", c.UX.RenderMarkdown))
	})
	if err != nil {
		log.Warn("config watch stopped", zap.Error(err))
	}
}
