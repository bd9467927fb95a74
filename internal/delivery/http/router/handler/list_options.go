package handler

import (
	"strconv"

	"backoffice/internal/usecase"
	"backoffice/internal/usecase/listing"

	"github.com/labstack/echo/v4"
)

// listOptionsFromQuery reads the shared listing query parameters. Invalid or
// missing values fall back to defaults; the listing pipeline clamps the page.
func listOptionsFromQuery(c echo.Context) usecase.ListOptions {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	dir := listing.Direction(c.QueryParam("dir"))
	if !dir.IsValid() {
		dir = listing.Ascending
	}

	return usecase.ListOptions{
		Term:      c.QueryParam("q"),
		SortField: c.QueryParam("sort"),
		Direction: dir,
		Page:      page,
	}
}
