package main

import (
	"flag"
	"os"

	"github.com/qnkhuat/chessboard/pkg"
	"github.com/qnkhuat/chessboard/pkg/gui"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON board config")
	logPath := flag.String("log", "", "path to log file")
	plain := flag.Bool("plain", false, "print the board as text and exit")
	svg := flag.Bool("svg", false, "print the board as an SVG document and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	logger := pkg.InitLog(*logPath, "viewer", *debug)

	cfg, err := pkg.LoadConfig(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}
	grid, err := cfg.Grid()
	if err != nil {
		logger.WithError(err).Fatal("invalid board")
	}
	theme, err := cfg.LoadTheme()
	if err != nil {
		logger.WithError(err).Fatal("invalid theme")
	}

	if *svg {
		if err := gui.WriteSVG(os.Stdout, grid, theme, 0); err != nil {
			logger.WithError(err).Fatal("failed to write svg")
		}
		return
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if *plain || !tty {
		if err := gui.WriteANSI(os.Stdout, grid, theme, cfg.Coords, tty); err != nil {
			logger.WithError(err).Fatal("failed to write board")
		}
		return
	}

	logger.WithField("size", grid.Size).Info("starting viewer")
	v := pkg.NewViewer(grid, theme, cfg.Coords)
	if err := v.Run(); err != nil {
		logger.WithError(err).Fatal("viewer failed")
	}
}
