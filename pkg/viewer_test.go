package pkg

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/gui"
	. "gopkg.in/check.v1"
)

type ViewerSuite struct{}

var _ = Suite(&ViewerSuite{})

func (s *ViewerSuite) TestDrawCentersBoard(c *C) {
	sim := tcell.NewSimulationScreen("UTF-8")
	c.Assert(sim.Init(), IsNil)
	defer sim.Fini()

	g := board.Render(board.DefaultSize, board.DefaultPlacement())
	v := NewViewer(g, gui.ThemeClassic, false)
	v.draw(sim, 0, 0, 80, 24)

	// 16x8 board in an 80x24 box starts at (32, 8)
	r, _, style, _ := sim.GetContent(32, 8)
	c.Assert(r, Equals, '♚')
	_, bg, _ := style.Decompose()
	c.Assert(bg, Equals, gui.ThemeClassic.SquareLight)

	r, _, _, _ = sim.GetContent(32+14, 15)
	c.Assert(r, Equals, '♔')

	r, _, _, _ = sim.GetContent(0, 0)
	c.Assert(r, Equals, ' ')
}

func (s *ViewerSuite) TestDrawSmallBox(c *C) {
	sim := tcell.NewSimulationScreen("UTF-8")
	c.Assert(sim.Init(), IsNil)
	defer sim.Fini()

	g := board.Render(board.DefaultSize, board.DefaultPlacement())
	v := NewViewer(g, gui.ThemeClassic, true)
	v.draw(sim, 2, 3, 4, 4)

	r, _, _, _ := sim.GetContent(2, 3)
	c.Assert(r, Equals, '8')
}

func (s *ViewerSuite) TestQuitKeys(c *C) {
	v := NewViewer(board.Render(2, board.Placement{}), gui.ThemeBasic, false)

	c.Assert(v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)), IsNil)
	c.Assert(v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)), IsNil)

	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	c.Assert(v.handleKey(ev), Equals, ev)
}
