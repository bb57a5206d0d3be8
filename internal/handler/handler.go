package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/ak-pc/Dextro/internal/config"
	"github.com/ak-pc/Dextro/internal/errors"
	"github.com/ak-pc/Dextro/internal/export"
	"github.com/ak-pc/Dextro/internal/model"
	"github.com/ak-pc/Dextro/internal/service"

	"github.com/gin-gonic/gin"
)

// appConfig is the startup configuration snapshot; handlers read it on
// every render pass.
var appConfig config.Config

// newDataLakeClient is a function that returns a client for one render pass.
// By default, it delegates to service.NewClient, but can be overridden in tests.
var newDataLakeClient func(config.Config) (service.DataLakeClient, error) = service.NewClient

func SetConfig(cfg config.Config) {
	appConfig = cfg
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// fetchProfiles runs the fetch step of one render pass: build a client,
// read the table, close the client. No state survives the call.
func fetchProfiles(ctx context.Context) (*model.RowSet, error) {
	client, err := newDataLakeClient(appConfig)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.FetchTable(ctx, service.ProfileTable)
}

func ProfilesHandler(c *gin.Context) {
	rs, err := fetchProfiles(c.Request.Context())
	if err != nil {
		log.Println("fetch failed:", err)
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	columns := rs.Columns
	if columns == nil {
		columns = []string{}
	}

	c.JSON(http.StatusOK, model.TableResponse{
		Columns:     columns,
		Rows:        rs.Rows(),
		RowCount:    rs.RowCount(),
		ColumnCount: rs.ColumnCount(),
	})
}

func ExportHandler(c *gin.Context) {
	rs, err := fetchProfiles(c.Request.Context())
	if err != nil {
		log.Println("export fetch failed:", err)
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	data, err := export.MarshalCSV(rs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="customer_profiles.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func statusForError(err error) int {
	switch {
	case errors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	case errors.IsConnection(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
