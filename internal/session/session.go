// Package session runs the line-oriented command loop over a contact book.
//
// A Session owns its Book. Input is read on a separate goroutine and handed
// over a channel so every command executes on the goroutine that called Run.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"addressbook/internal/contacts"
	"addressbook/internal/logging"
	"addressbook/internal/store"
	"addressbook/internal/ui"
)

const (
	Welcome = "Welcome to the assistant bot!"
	Prompt  = "Enter a command: "
	Goodbye = "Good bye!"

	invalidCommand = "Invalid command."
)

// Session dispatches commands against a book and persists it on exit.
type Session struct {
	ID string

	book   *contacts.Book
	store  store.Store
	out    io.Writer
	styles *ui.Styles
	logger *zap.Logger
	now    func() time.Time
	window int

	handlers map[string]command
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithStyles sets the output styles. The default is unstyled.
func WithStyles(st *ui.Styles) Option {
	return func(s *Session) { s.styles = st }
}

// WithClock overrides the clock used by the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithWindow sets the birthdays lookahead in days.
func WithWindow(days int) Option {
	return func(s *Session) { s.window = days }
}

// New creates a session over book. st may be nil, in which case nothing is
// persisted.
func New(book *contacts.Book, st store.Store, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		book:     book,
		store:    st,
		out:      out,
		styles:   ui.Plain(),
		logger:   zap.NewNop(),
		now:      time.Now,
		window:   contacts.DefaultWindowDays,
		handlers: make(map[string]command, len(commands)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.ID))
	for _, c := range commands {
		s.handlers[c.name] = c
	}
	return s
}

// Book returns the book the session operates on.
func (s *Session) Book() *contacts.Book { return s.book }

// Execute runs one input line and returns the reply. exit is true for
// close and exit; the caller is expected to Persist before quitting.
// A blank line yields an empty reply.
func (s *Session) Execute(line string) (reply string, exit bool) {
	reply, _, exit = s.execute(line)
	return reply, exit
}

// execute is Execute that also reports why a command failed.
func (s *Session) execute(line string) (string, errorKind, bool) {
	name, args := ParseInput(line)
	if name == "" {
		return "", kindNone, false
	}
	log := logging.For(s.logger, logging.CategoryCommand).With(zap.String("command", name))

	if name == "close" || name == "exit" {
		log.Debug("exit requested")
		return Goodbye, kindNone, true
	}

	c, ok := s.handlers[name]
	if !ok {
		log.Debug("unknown command", zap.Int("args", len(args)))
		return invalidCommand, kindUnknown, false
	}

	out, err := s.call(c, args)
	if err != nil {
		msg, kind := formatError(err)
		if kind == kindUnexpected {
			log.Error("command failed", zap.Error(err))
		} else {
			log.Debug("command rejected", zap.String("kind", string(kind)), zap.String("reason", msg))
		}
		return msg, kind, false
	}
	log.Debug("command ok", zap.Int("args", len(args)), zap.Int("contacts", s.book.Len()))
	return out, kindNone, false
}

func (s *Session) call(c command, args []string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", c.name, r)
		}
	}()
	return c.run(s, args)
}

// Persist saves the book. It runs even when ctx is already cancelled so an
// interrupted session still writes its state.
func (s *Session) Persist(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	log := logging.For(s.logger, logging.CategoryStore)
	if err := s.store.Save(context.WithoutCancel(ctx), s.book); err != nil {
		log.Error("save failed", zap.Error(err))
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	log.Info("book saved", zap.Int("contacts", s.book.Len()))
	return nil
}

// Run prints the banner and executes lines from in until close/exit, end
// of input or ctx cancellation. The book is persisted in all three cases.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logging.For(s.logger, logging.CategorySession)
	log.Info("session started", zap.Int("contacts", s.book.Len()))

	lines, readErr := readLines(ctx, in)
	s.println(s.styles.Banner(Welcome))

	for {
		fmt.Fprint(s.out, s.styles.Prompt(Prompt))

		select {
		case <-ctx.Done():
			log.Info("session interrupted", zap.Error(context.Cause(ctx)))
			s.println("")
			return s.finish(ctx)

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					log.Warn("input error", zap.Error(err))
				}
				log.Info("end of input")
				s.println("")
				return s.finish(ctx)
			}
			reply, kind, exit := s.execute(line)
			if exit {
				return s.finish(ctx)
			}
			if reply != "" {
				s.println(s.render(reply, kind))
			}
		}
	}
}

func (s *Session) finish(ctx context.Context) error {
	if err := s.Persist(ctx); err != nil {
		return err
	}
	s.println(s.styles.Reply(Goodbye))
	return nil
}

func (s *Session) render(reply string, kind errorKind) string {
	if kind != kindNone {
		return s.styles.Error(reply)
	}
	return s.styles.Reply(reply)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// readLines scans in on its own goroutine. The error channel receives
// exactly one value before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			errc <- err
			close(lines)
		}()
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err = sc.Err()
	}()
	return lines, errc
}
