package pkg

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/gui"
	"github.com/qnkhuat/chessboard/pkg/icon"
)

const svgContentType = "image/svg+xml"

type boardResponse struct {
	Href  string       `json:"href"`
	Board board.Grid   `json:"board"`
	Theme gui.ThemeHex `json:"theme"`
}

type iconResponse struct {
	Href  string `json:"href"`
	Kind  string `json:"kind"`
	Color string `json:"color"`
	Glyph string `json:"glyph"`
}

// Handler returns the http routes of the server
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	e.GET("/board", s.getBoard)
	e.GET("/board.svg", s.getBoardSVG)
	e.GET("/board.txt", s.getBoardText)
	e.GET("/icons", s.getIcons)
	e.GET("/icons/:name", s.getIcon)
	e.GET("/themes/:name", s.getTheme)
	return e
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.log.WithFields(log.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
			"status": c.Response().Status,
		}).WithDuration(time.Since(start)).Info("request")
		return nil
	}
}

func (s *Server) getBoard(c echo.Context) error {
	return c.JSON(http.StatusOK, boardResponse{
		Href:  "/board",
		Board: s.Grid,
		Theme: s.Theme.Hex(),
	})
}

func (s *Server) getBoardSVG(c echo.Context) error {
	size := 0
	if q := c.QueryParam("square"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "square must be a positive integer")
		}
		size = v
	}

	var buf bytes.Buffer
	if err := gui.WriteSVG(&buf, s.Grid, s.Theme, size); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, svgContentType, buf.Bytes())
}

func (s *Server) getBoardText(c echo.Context) error {
	var buf bytes.Buffer
	if err := gui.WriteANSI(&buf, s.Grid, s.Theme, s.Coords, false); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, buf.Bytes())
}

func (s *Server) getIcons(c echo.Context) error {
	all := icon.All()
	res := make([]iconResponse, 0, len(all))
	for _, ic := range all {
		res = append(res, iconResponse{
			Href:  "/icons/" + ic.Name + ".svg",
			Kind:  ic.Kind.String(),
			Color: ic.Color.String(),
			Glyph: string(ic.Glyph),
		})
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) getIcon(c echo.Context) error {
	name := strings.TrimSuffix(c.Param("name"), ".svg")
	ic, ok := icon.ByName(name)
	if !ok {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, svgContentType, ic.SVG)
}

func (s *Server) getTheme(c echo.Context) error {
	t, err := gui.ImportThemes(c.Param("name"), s.Themes)
	if err != nil {
		return echo.ErrNotFound
	}
	return c.JSON(http.StatusOK, t.Hex())
}
