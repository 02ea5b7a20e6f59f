package pkg

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/gui"
	"github.com/rivo/tview"
)

// Viewer shows a rendered board in the terminal until the user quits
type Viewer struct {
	App    *tview.Application
	Board  *tview.Box
	Grid   board.Grid
	Theme  gui.Theme
	Coords bool
}

func NewViewer(g board.Grid, t gui.Theme, coords bool) *Viewer {
	v := &Viewer{
		App:    tview.NewApplication(),
		Board:  tview.NewBox(),
		Grid:   g,
		Theme:  t,
		Coords: coords,
	}
	v.Board.SetDrawFunc(v.draw)
	v.App.SetInputCapture(v.handleKey)
	v.App.SetRoot(v.Board, true)
	return v
}

// draw centers the board in the box
func (v *Viewer) draw(s tcell.Screen, x, y, width, height int) (int, int, int, int) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			s.SetContent(col, row, ' ', nil, gui.DefStyle)
		}
	}

	w, h := gui.BoardSize(v.Grid, v.Coords)
	left := x + (width-w)/2
	if left < x {
		left = x
	}
	top := y + (height-h)/2
	if top < y {
		top = y
	}
	gui.DrawBoard(s, left, top, v.Grid, v.Theme, v.Coords)
	return x, y, width, height
}

func (v *Viewer) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		v.App.Stop()
		return nil
	}
	return ev
}

// Run blocks until the viewer is closed
func (v *Viewer) Run() error {
	return v.App.Run()
}
