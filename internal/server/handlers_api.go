package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultTrendLimit = 20

// handleTrends returns the tracked words ordered by observation count,
// capped at ?limit (default 20).
func (s *Server) handleTrends(c echo.Context) error {
	limit := defaultTrendLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	trends := s.trends.Snapshot()
	if len(trends) > limit {
		trends = trends[:limit]
	}

	if err := c.JSON(http.StatusOK, trends); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
