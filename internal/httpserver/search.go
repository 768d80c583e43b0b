package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/avoronkov/catalog-api/internal/logging"
	"github.com/avoronkov/catalog-api/internal/search"
	"github.com/avoronkov/catalog-api/internal/transport"
	"github.com/avoronkov/catalog-api/internal/util"
)

type SearchHTTP struct {
	Index *search.Index
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := h.Index.Search(ctx, q, from, size)
	if err != nil {
		logging.FromContext(ctx).Error("search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search unavailable")
	}

	return c.JSON(http.StatusOK, transport.SearchResponse{Total: total, Products: products})
}
