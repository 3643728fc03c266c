// Package terminal implements the interactive ports over a line-oriented
// console: yes/no confirmations and error notices.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Confirmer = (*Console)(nil)
	_ ports.Notifier  = (*Console)(nil)
)

// Console prompts on out and reads answers from in. It is safe for
// concurrent use; prompts are serialized so that fanned-out transitions
// never interleave questions.
type Console struct {
	mu        sync.Mutex
	in        io.Reader
	out       io.Writer
	assumeYes bool
	logger    *slog.Logger

	readOnce sync.Once
	lines    chan string
}

// Option configures a Console.
type Option func(*Console)

// WithAssumeYes answers every confirmation with yes without prompting.
func WithAssumeYes(yes bool) Option {
	return func(c *Console) { c.assumeYes = yes }
}

// WithLogger sets the logger errors are also recorded to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     in,
		out:    out,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Confirm asks question and waits for a y/yes or n/no answer. Any other
// answer, including end of input, counts as no. The wait is abandoned when
// ctx is done.
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.assumeYes {
		fmt.Fprintf(c.out, "%s [y/N] y\n", question)
		return true, nil
	}
	fmt.Fprintf(c.out, "%s [y/N] ", question)

	c.readOnce.Do(c.startReader)

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return false, ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.out)
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// startReader feeds input lines to c.lines until the input ends. A single
// reader goroutine owns the input so an abandoned prompt never races the
// next one.
func (c *Console) startReader() {
	c.lines = make(chan string)
	go func() {
		defer close(c.lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			c.lines <- sc.Text()
		}
		if err := sc.Err(); err != nil {
			c.logger.Warn("reading console input", slog.Any("error", err))
		}
	}()
}

// Error prints message as a one-line notice.
func (c *Console) Error(ctx context.Context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.WarnContext(ctx, "board notice", slog.String("message", message))
	fmt.Fprintf(c.out, "error: %s\n", message)
}
