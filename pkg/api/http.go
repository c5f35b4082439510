package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lioia/pagerank/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HttpServer struct {
	Ranker *Ranker
}

// NewHttpServer returns the echo instance serving /rank, /health and /metrics
func NewHttpServer(r *Ranker) *echo.Echo {
	s := &HttpServer{Ranker: r}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLog)
	e.GET("/health", s.health)
	e.POST("/rank", s.rank)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})))
	return e
}

func requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		utils.ServerLog("%s %s (%v)", c.Request().Method, c.Request().URL.Path, time.Since(start))
		return err
	}
}

func (s *HttpServer) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HttpServer) rank(c echo.Context) error {
	var req RankRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	res, err := s.Ranker.Rank(c.Request().Context(), "http", req)
	if err != nil {
		if IsInvalidInput(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if c.Request().Context().Err() != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		utils.WarnLog("http", "Rank failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}
