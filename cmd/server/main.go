package main

import (
	"context"
	"flag"
	"os/signal"
	"strings"
	"syscall"

	"github.com/qnkhuat/chessboard/pkg"
)

func main() {
	sshAddr := flag.String("ssh", pkg.SshPort, "ssh listen address, empty to disable")
	httpAddr := flag.String("http", pkg.HTTPPort, "http listen address, empty to disable")
	hostKey := flag.String("hostkey", "", "ssh host key file, generated when empty")
	viewer := flag.String("viewer", "", "viewer command run for interactive ssh sessions")
	configPath := flag.String("config", "", "path to a JSON board config")
	logPath := flag.String("log", "", "path to log file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	logger := pkg.InitLog(*logPath, "server", *debug)

	cfg, err := pkg.LoadConfig(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}
	s, err := pkg.NewServer(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("invalid board")
	}
	s.SSHAddr = *sshAddr
	s.HTTPAddr = *httpAddr
	s.HostKey = *hostKey
	if *viewer != "" {
		s.Viewer = strings.Fields(*viewer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("server started")
	if err := s.Run(ctx); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
	logger.Info("server stopped")
}
