package handler

import (
	"log"
	"net/http"

	"github.com/ak-pc/Dextro/internal/errors"
	"github.com/ak-pc/Dextro/internal/export"
	"github.com/ak-pc/Dextro/internal/service"

	"github.com/gin-gonic/gin"
)

type pageView struct {
	Table       string
	Columns     []string
	Rows        [][]string
	RowCount    int
	ColumnCount int
	ErrorKind   string
	ErrorText   string
	Remedy      string
}

// PageHandler runs one full render pass and produces the single page:
// config check → fetch → table + summary + export link, or an error panel.
func PageHandler(c *gin.Context) {
	view := pageView{Table: service.ProfileTable}

	rs, err := fetchProfiles(c.Request.Context())
	if err != nil {
		log.Println("render pass failed:", err)
		view.ErrorKind, view.Remedy = classifyError(err)
		view.ErrorText = err.Error()
		c.HTML(http.StatusOK, "index.html", view)
		return
	}

	view.Columns = rs.Columns
	view.RowCount = rs.RowCount()
	view.ColumnCount = rs.ColumnCount()
	view.Rows = make([][]string, 0, rs.RowCount())
	for _, row := range rs.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = export.FormatValue(v)
		}
		view.Rows = append(view.Rows, cells)
	}

	c.HTML(http.StatusOK, "index.html", view)
}

// classifyError maps a failure to its user-facing kind and remedy text.
func classifyError(err error) (kind, remedy string) {
	switch {
	case errors.IsConfiguration(err):
		return "Configuration error", "Set SUPABASE_URL and SUPABASE_ANON_KEY in the environment, then reload."
	case errors.IsConnection(err):
		return "Connection error", "Check network access and the backend credential, then reload."
	default:
		return "Query error", "Check that the table exists and is readable, then reload."
	}
}
