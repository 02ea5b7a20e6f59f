package pkg

import (
	"bytes"
	"context"
	"net"
	"time"

	"github.com/qnkhuat/chessboard/pkg/gui"
	gossh "golang.org/x/crypto/ssh"
	. "gopkg.in/check.v1"
)

type SSHSuite struct {
	server   *Server
	listener net.Listener
}

var _ = Suite(&SSHSuite{})

func (s *SSHSuite) SetUpSuite(c *C) {
	server, err := NewServer(DefaultConfig(), testLog)
	c.Assert(err, IsNil)
	s.server = server

	srv, err := server.newSSHServer()
	c.Assert(err, IsNil)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	c.Assert(err, IsNil)
	s.listener = l
	go srv.Serve(l)
}

func (s *SSHSuite) TearDownSuite(c *C) {
	s.listener.Close()
}

func (s *SSHSuite) dial(c *C) *gossh.Client {
	client, err := gossh.Dial("tcp", s.listener.Addr().String(), &gossh.ClientConfig{
		User:            "guest",
		Auth:            []gossh.AuthMethod{gossh.Password("guest")},
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	c.Assert(err, IsNil)
	return client
}

func (s *SSHSuite) TestBoardWithoutPty(c *C) {
	client := s.dial(c)
	defer client.Close()

	session, err := client.NewSession()
	c.Assert(err, IsNil)
	defer session.Close()

	out, err := session.Output("board")
	c.Assert(err, IsNil)

	var want bytes.Buffer
	c.Assert(gui.WriteANSI(&want, s.server.Grid, s.server.Theme, true, false), IsNil)
	c.Assert(string(out), Equals, want.String())
}

func (s *SSHSuite) TestWriteBoardPty(c *C) {
	var buf bytes.Buffer
	c.Assert(s.server.writeBoard(&buf, true), IsNil)
	c.Assert(bytes.Count(buf.Bytes(), []byte("\r\n")), Equals, 9)
	c.Assert(bytes.Contains(buf.Bytes(), []byte("\x1b[48;2;181;136;99m")), Equals, true)
}

func (s *SSHSuite) TestRunStopsWithContext(c *C) {
	server, err := NewServer(DefaultConfig(), testLog)
	c.Assert(err, IsNil)
	server.SSHAddr = "127.0.0.1:0"
	server.HTTPAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		c.Assert(err, IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("server did not stop")
	}
}
