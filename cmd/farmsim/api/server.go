// Package api serves the state of a simulation as JSON.
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo"
	"github.com/pkg/errors"

	"github.com/meverselabs/stakefarm/cmd/farmsim/sim"
	"github.com/meverselabs/stakefarm/common/rlog"
)

// Server provides the queries of the simulator and runs extra steps on it
type Server struct {
	e   *echo.Echo
	sim *sim.Simulator
}

// NewServer returns a Server with the routes of the simulator
func NewServer(s *sim.Simulator) *Server {
	srv := &Server{
		e:   echo.New(),
		sim: s,
	}
	srv.e.HideBanner = true
	srv.e.HTTPErrorHandler = srv.handleError

	srv.e.GET("/farms", srv.farms)
	srv.e.GET("/farms/:addr", srv.farm)
	srv.e.GET("/farms/:addr/pools/:pid", srv.pool)
	srv.e.GET("/farms/:addr/pending/:pid/:user", srv.pending)
	srv.e.GET("/events", srv.events)
	srv.e.POST("/steps", srv.step)
	return srv
}

// Handler returns the http handler of the routes
func (srv *Server) Handler() http.Handler {
	return srv.e
}

// Run listens on the address until the server is closed
func (srv *Server) Run(BindAddress string) error {
	rlog.Infow("api server listening", "address", BindAddress)
	return srv.e.Start(BindAddress)
}

// Close stops the listener
func (srv *Server) Close() error {
	return srv.e.Close()
}

func (srv *Server) handleError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		msg = http.StatusText(code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	} else if errors.Is(err, sim.ErrUnknownName) {
		code = http.StatusNotFound
	} else {
		code = http.StatusBadRequest
	}
	if !c.Response().Committed {
		if err := c.JSON(code, map[string]string{"error": msg}); err != nil {
			rlog.Errorw("write error reply", "error", err)
		}
	}
}

func (srv *Server) farms(c echo.Context) error {
	views, err := srv.sim.Farms()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (srv *Server) farm(c echo.Context) error {
	view, err := srv.sim.Farm(c.Param("addr"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (srv *Server) pool(c echo.Context) error {
	pid, err := parsePid(c)
	if err != nil {
		return err
	}
	view, err := srv.sim.Pool(c.Param("addr"), pid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (srv *Server) pending(c echo.Context) error {
	pid, err := parsePid(c)
	if err != nil {
		return err
	}
	view, err := srv.sim.Position(c.Param("addr"), pid, c.Param("user"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (srv *Server) events(c echo.Context) error {
	return c.JSON(http.StatusOK, srv.sim.Events())
}

func (srv *Server) step(c echo.Context) error {
	var st sim.StepConfig
	if err := c.Bind(&st); err != nil {
		return err
	}
	if err := srv.sim.Step(&st); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]uint64{"now": srv.sim.Now()})
}

func parsePid(c echo.Context) (uint64, error) {
	pid, err := strconv.ParseUint(c.Param("pid"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid pool id "+c.Param("pid"))
	}
	return pid, nil
}
