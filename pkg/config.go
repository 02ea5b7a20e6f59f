package pkg

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/gui"
)

// Config is the board setup read from a JSON file
type Config struct {
	Size   int                 `json:"size"`
	Theme  string              `json:"theme"`
	Themes []gui.ThemeHex      `json:"themes"`
	Pieces []board.PlacedPiece `json:"pieces"`
	FEN    string              `json:"fen"`
	Coords bool                `json:"coords"`
}

func DefaultConfig() Config {
	return Config{
		Size:   board.DefaultSize,
		Theme:  gui.ThemeClassic.Name,
		Coords: true,
	}
}

// LoadConfig reads the config at path on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Size <= 0 {
		return cfg, fmt.Errorf("config: board size must be positive, got %d", cfg.Size)
	}
	return cfg, nil
}

// Placement builds the piece placement. A FEN wins over the piece list and
// the default placement is used when neither is set.
func (c Config) Placement() (board.Placement, error) {
	switch {
	case c.FEN != "":
		return board.PlacementFromFEN(c.FEN)
	case len(c.Pieces) > 0:
		return board.NewPlacement(c.Pieces...)
	default:
		return board.DefaultPlacement(), nil
	}
}

func (c Config) LoadTheme() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}

// Grid validates the placement and renders the board. Pieces that do not fit
// on the board are reported and left out.
func (c Config) Grid() (board.Grid, error) {
	pl, err := c.Placement()
	if err != nil {
		return board.Grid{}, err
	}
	if err := pl.Validate(c.Size); err != nil {
		log.WithError(err).Warn("pieces outside the board are not shown")
	}
	return board.Render(c.Size, pl), nil
}
