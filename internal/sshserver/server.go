// Package sshserver serves the terminal game over SSH. Every PTY
// connection gets its own session and bubbletea program; nothing is shared
// between connections.
package sshserver

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordgrid/internal/session"
	"github.com/robalobadob/wordgrid/internal/tui"
)

const defaultIdleTimeout = 10 * time.Minute

// Options configures a Server.
type Options struct {
	Addr        string
	HostKeyFile string // generated on the fly when empty
	IdleTimeout time.Duration
	Daily       bool
	Factory     *session.Factory
	Logger      zerolog.Logger
}

// Server wraps an ssh.Server running the game.
type Server struct {
	srv     *ssh.Server
	factory *session.Factory
	daily   bool
	log     zerolog.Logger
}

// New builds a server; call ListenAndServe or Serve to start it.
func New(o Options) (*Server, error) {
	idle := o.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	s := &Server{factory: o.Factory, daily: o.Daily, log: o.Logger}
	s.srv = &ssh.Server{
		Addr:        o.Addr,
		IdleTimeout: idle,
		Handler:     s.handle,
	}
	if o.HostKeyFile != "" {
		if err := s.srv.SetOption(ssh.HostKeyFile(o.HostKeyFile)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error { return filterClosed(s.srv.ListenAndServe()) }

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error { return filterClosed(s.srv.Serve(l)) }

// Shutdown stops accepting connections and waits for open ones.
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

func filterClosed(err error) error {
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		_, _ = io.WriteString(sess, "wordgrid needs an interactive terminal (try ssh -t)\n")
		_ = sess.Exit(1)
		return
	}

	name := petname.Generate(2, "-")
	log := s.log.With().Str("player", name).Str("remote", sess.RemoteAddr().String()).Logger()

	m, err := tui.New(s.factory, session.Options{Daily: s.daily}, name, log)
	if err != nil {
		log.Error().Err(err).Msg("start game")
		_, _ = io.WriteString(sess, "could not start a game\n")
		_ = sess.Exit(1)
		return
	}

	p := tea.NewProgram(m,
		tea.WithInput(sess),
		tea.WithOutput(sess),
		tea.WithContext(sess.Context()),
		tea.WithAltScreen(),
	)
	go func() {
		p.Send(tea.WindowSizeMsg{Width: ptyReq.Window.Width, Height: ptyReq.Window.Height})
		for win := range winCh {
			p.Send(tea.WindowSizeMsg{Width: win.Width, Height: win.Height})
		}
	}()

	log.Info().Str("term", ptyReq.Term).Msg("player connected")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Warn().Err(err).Msg("program exited")
	}
	log.Info().Msg("player disconnected")
	_ = sess.Exit(0)
}
