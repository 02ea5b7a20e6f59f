package pkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/apex/log"
	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"github.com/labstack/echo/v4"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/gui"
	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	ShutdownTimeout   = 5 * time.Second
	SshPort           = ":2222"
	HTTPPort          = ":1998"
)

// Server shows the board over ssh and http
type Server struct {
	SSHAddr  string
	HTTPAddr string
	// HostKey is a private key file, a key is generated when empty
	HostKey string
	// Viewer is the command run inside a pty for interactive ssh sessions.
	// Sessions get the board as text when it is empty.
	Viewer []string

	Grid   board.Grid
	Theme  gui.Theme
	Themes []gui.ThemeHex
	Coords bool

	log *log.Entry
}

func NewServer(cfg Config, logger *log.Entry) (*Server, error) {
	g, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	t, err := cfg.LoadTheme()
	if err != nil {
		return nil, err
	}
	return &Server{
		SSHAddr:  SshPort,
		HTTPAddr: HTTPPort,
		Grid:     g,
		Theme:    t,
		Themes:   cfg.Themes,
		Coords:   cfg.Coords,
		log:      logger,
	}, nil
}

// Run serves until ctx is done or one of the listeners fails
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	var sshServer *ssh.Server
	if s.SSHAddr != "" {
		srv, err := s.newSSHServer()
		if err != nil {
			return err
		}
		sshServer = srv
		g.Go(func() error {
			s.log.WithField("addr", s.SSHAddr).Info("ssh listening")
			if err := sshServer.ListenAndServe(); !errors.Is(err, ssh.ErrServerClosed) {
				return fmt.Errorf("ssh: %w", err)
			}
			return nil
		})
	}

	var httpServer *echo.Echo
	if s.HTTPAddr != "" {
		httpServer = s.Handler()
		g.Go(func() error {
			s.log.WithField("addr", s.HTTPAddr).Info("http listening")
			if err := httpServer.Start(s.HTTPAddr); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if sshServer != nil {
			if err := sshServer.Shutdown(shutdownCtx); err != nil {
				s.log.WithError(err).Warn("ssh shutdown")
			}
		}
		if httpServer != nil {
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				s.log.WithError(err).Warn("http shutdown")
			}
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) newSSHServer() (*ssh.Server, error) {
	srv := &ssh.Server{
		Addr:        s.SSHAddr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.sshHandle,
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			s.log.WithFields(log.Fields{
				"user":        ctx.User(),
				"fingerprint": gossh.FingerprintSHA256(key),
			}).Debug("public key")
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}
	if s.HostKey != "" {
		if err := srv.SetOption(ssh.HostKeyFile(s.HostKey)); err != nil {
			return nil, fmt.Errorf("ssh: host key %s: %w", s.HostKey, err)
		}
	}
	return srv, nil
}

func (s *Server) sshHandle(sess ssh.Session) {
	logger := s.log.WithFields(log.Fields{
		"session": petname.Generate(2, "-"),
		"user":    sess.User(),
		"remote":  sess.RemoteAddr().String(),
	})
	ptyReq, winCh, isPty := sess.Pty()

	if !isPty || len(s.Viewer) == 0 {
		logger.WithField("pty", isPty).Info("sending board")
		if err := s.writeBoard(sess, isPty); err != nil {
			logger.WithError(err).Warn("write board")
			sess.Exit(1)
			return
		}
		sess.Exit(0)
		return
	}

	logger.WithField("term", ptyReq.Term).Info("starting viewer")
	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Viewer[0], s.Viewer[1:]...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		logger.WithError(err).Error("failed to start viewer")
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	if err := cmd.Wait(); err != nil {
		logger.WithError(err).Debug("viewer exited")
	}
	logger.Info("session closed")
}

// writeBoard writes the board as text. A pty needs carriage returns.
func (s *Server) writeBoard(w io.Writer, isPty bool) error {
	var buf bytes.Buffer
	if err := gui.WriteANSI(&buf, s.Grid, s.Theme, s.Coords, isPty); err != nil {
		return err
	}
	out := buf.Bytes()
	if isPty {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	_, err := w.Write(out)
	return err
}
