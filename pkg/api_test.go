package pkg

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/qnkhuat/chessboard/pkg/board"
	. "gopkg.in/check.v1"
)

var jsonHeader = "application/json; charset=UTF-8"

type echoErrorResponse struct {
	Message string
}

type APISuite struct {
	srv    *httptest.Server
	client *http.Client
}

var _ = Suite(&APISuite{})

func (s *APISuite) SetUpSuite(c *C) {
	server, err := NewServer(DefaultConfig(), testLog)
	c.Assert(err, IsNil)
	s.srv = httptest.NewServer(server.Handler())
	s.client = s.srv.Client()
}

func (s *APISuite) TearDownSuite(c *C) {
	s.srv.Close()
}

func (s *APISuite) get(c *C, path string) (*http.Response, []byte) {
	res, err := s.client.Get(s.srv.URL + path)
	c.Assert(err, IsNil)
	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	c.Assert(err, IsNil)
	return res, body
}

func (s *APISuite) get404(c *C, path string) {
	res, body := s.get(c, path)
	c.Assert(res.StatusCode, Equals, http.StatusNotFound)
	var response echoErrorResponse
	c.Assert(json.Unmarshal(body, &response), IsNil)
	c.Assert(response.Message, Equals, "Not Found")
}

func (s *APISuite) TestBoard(c *C) {
	res, body := s.get(c, "/board")
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	c.Assert(res.Header.Get("Content-Type"), Equals, jsonHeader)

	var response struct {
		Href  string
		Board struct {
			Size int
			Rows [][]struct {
				Row   int
				Col   int
				Shade string
				Piece *struct {
					Kind  string
					Color string
				}
			}
		}
		Theme struct {
			SquareDark  string
			SquareLight string
		}
	}
	c.Assert(json.Unmarshal(body, &response), IsNil)
	c.Assert(response.Href, Equals, "/board")
	c.Assert(response.Board.Size, Equals, 8)
	c.Assert(response.Board.Rows, HasLen, 8)
	c.Assert(response.Theme.SquareDark, Equals, "#b58863")
	c.Assert(response.Theme.SquareLight, Equals, "#f0d9b5")

	pieces := 0
	for _, row := range response.Board.Rows {
		c.Assert(row, HasLen, 8)
		for _, cell := range row {
			want := "light"
			if (cell.Row+cell.Col)%2 == 1 {
				want = "dark"
			}
			c.Assert(cell.Shade, Equals, want)
			if cell.Piece != nil {
				pieces++
			}
		}
	}
	c.Assert(pieces, Equals, 2)
	c.Assert(response.Board.Rows[0][0].Piece.Color, Equals, "black")
	c.Assert(response.Board.Rows[7][7].Piece.Color, Equals, "white")
}

func (s *APISuite) TestBoardSVG(c *C) {
	res, body := s.get(c, "/board.svg?square=20")
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	c.Assert(res.Header.Get("Content-Type"), Equals, svgContentType)
	c.Assert(strings.HasPrefix(string(body), `<svg xmlns="http://www.w3.org/2000/svg" width="160" height="160"`), Equals, true)
}

func (s *APISuite) TestBoardSVGBadSquare(c *C) {
	res, _ := s.get(c, "/board.svg?square=-1")
	c.Assert(res.StatusCode, Equals, http.StatusBadRequest)
}

func (s *APISuite) TestBoardText(c *C) {
	res, body := s.get(c, "/board.txt")
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	c.Assert(lines, HasLen, 9)
	c.Assert(lines[0], Equals, "8 ♚ . . . . . . . ")
	c.Assert(lines[8], Equals, "  a b c d e f g h ")
}

func (s *APISuite) TestIcons(c *C) {
	res, body := s.get(c, "/icons")
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	var icons []iconResponse
	c.Assert(json.Unmarshal(body, &icons), IsNil)
	c.Assert(icons, HasLen, 12)
	c.Assert(icons[0], DeepEquals, iconResponse{Href: "/icons/king_white.svg", Kind: "king", Color: "white", Glyph: "♔"})

	for _, ic := range icons {
		res, body := s.get(c, ic.Href)
		c.Assert(res.StatusCode, Equals, http.StatusOK)
		c.Assert(res.Header.Get("Content-Type"), Equals, svgContentType)
		c.Assert(strings.Contains(string(body), "<title>"+ic.Color+" "+ic.Kind+"</title>"), Equals, true)
	}
}

func (s *APISuite) TestUnknownIcon(c *C) {
	s.get404(c, "/icons/dragon_white.svg")
}

func (s *APISuite) TestTheme(c *C) {
	res, body := s.get(c, "/themes/basic")
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	var theme map[string]string
	c.Assert(json.Unmarshal(body, &theme), IsNil)
	c.Assert(theme["name"], Equals, "basic")

	s.get404(c, "/themes/neon")
}

func (s *APISuite) TestCustomGrid(c *C) {
	server, err := NewServer(DefaultConfig(), testLog)
	c.Assert(err, IsNil)
	server.Grid = board.Render(3, board.Placement{})
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	res, err := srv.Client().Get(srv.URL + "/board.txt")
	c.Assert(err, IsNil)
	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	c.Assert(err, IsNil)
	c.Assert(string(body), Equals, "3 . . . \n2 . . . \n1 . . . \n  a b c \n")
}
