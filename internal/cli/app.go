package cli

import (
	"bufio"
	"context"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/config"
	"ctchen222/tictactoe-engine/internal/room"
	"ctchen222/tictactoe-engine/internal/session"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const helpText = `Commands:
  0-8                      place your mark (cells are numbered row by row)
  reset                    start a new round
  mode two_player          two humans on one board
  mode computer [level]    play X against the computer (easy, medium, hard)
  help                     show this text
  quit                     leave
`

// App is the terminal front end. It owns one room at a time.
type App struct {
	conf     *config.Config
	in       io.Reader
	out      io.Writer
	renderer *TerminalRenderer
}

type runningRoom struct {
	room    *room.Room
	cancel  context.CancelFunc
	stopped chan struct{}
}

func (r *runningRoom) stop() {
	r.cancel()
	<-r.stopped
}

func NewApp(conf *config.Config, in io.Reader, out io.Writer) *App {
	w := &syncWriter{w: out}
	return &App{
		conf:     conf,
		in:       in,
		out:      w,
		renderer: NewTerminalRenderer(w),
	}
}

// Run plays until the input ends, quit is entered or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := session.Options{
		Mode:       session.Mode(a.conf.Mode),
		Difficulty: bot.Difficulty(a.conf.Difficulty),
	}
	current, err := a.startRoom(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { current.stop() }()

	fmt.Fprint(a.out, helpText)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			line = l
		}

		cmd, err := ParseCommand(line)
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			fmt.Fprintf(a.out, "%v (type help)\n", err)
			continue
		}

		switch cmd.Kind {
		case CommandQuit:
			return nil
		case CommandHelp:
			fmt.Fprint(a.out, helpText)
		case CommandMode:
			if cmd.Options.Mode == session.ModeComputer && cmd.Options.Difficulty == "" {
				cmd.Options.Difficulty = bot.Difficulty(a.conf.Difficulty)
			}
			next, err := a.startRoom(ctx, cmd.Options)
			if err != nil {
				fmt.Fprintf(a.out, "%v\n", err)
				continue
			}
			current.stop()
			current = next
		case CommandMessage:
			// Illegal moves are already shown by the renderer.
			if err := current.room.Submit(ctx, cmd.Message); err != nil {
				slog.DebugContext(ctx, "command rejected", "room.id", current.room.ID, "error", err)
			}
		}
	}
}

func (a *App) startRoom(ctx context.Context, opts session.Options) (*runningRoom, error) {
	sess, err := session.Start(opts)
	if err != nil {
		return nil, err
	}
	r, err := room.NewRoom(sess, a.renderer, a.conf.ReplyDelay)
	if err != nil {
		return nil, err
	}

	if sess.Mode == session.ModeComputer {
		fmt.Fprintf(a.out, "Mode: computer (%s). You play X.\n", sess.Difficulty)
	} else {
		fmt.Fprintf(a.out, "Mode: two players.\n")
	}

	ctx, cancel := context.WithCancel(ctx)
	running := &runningRoom{room: r, cancel: cancel, stopped: make(chan struct{})}
	go func() {
		defer close(running.stopped)
		r.Run(ctx)
	}()
	return running, nil
}
