package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/output"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/trend"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Health returns server health status
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Analyze handles POST /api/v1/analyze
// Form fields:
// - file: the statement export (required)
// - statement: balance_sheet, profit_loss or cash_flow (form or query)
// - ext: declared extension (optional, defaults to the file name's)
// - pretty: "true" to indent the JSON response
func (s *Server) Analyze(c echo.Context) error {
	result, err := s.process(c)
	if err != nil {
		return s.fail(c, err)
	}

	pretty := s.cfg.Output.Pretty
	if v := c.QueryParam("pretty"); v != "" {
		pretty, _ = strconv.ParseBool(v)
	}
	data, err := output.ToJSON(result, pretty)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSONBlob(http.StatusOK, data)
}

// Chart handles POST /api/v1/chart and returns the trend chart as PNG.
func (s *Server) Chart(c echo.Context) error {
	result, err := s.process(c)
	if err != nil {
		return s.fail(c, err)
	}

	png, err := trend.Render(result.Chart, s.cfg.RenderOptions())
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// Export handles POST /api/v1/export and returns the result as an XLSX workbook.
func (s *Server) Export(c echo.Context) error {
	result, err := s.process(c)
	if err != nil {
		return s.fail(c, err)
	}

	data, err := output.WriteXLSX(result)
	if err != nil {
		return s.fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", string(result.Statement)+".xlsx"))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// badRequest marks input errors raised before the pipeline runs.
type badRequest struct{ error }

func (s *Server) process(c echo.Context) (*models.Result, error) {
	st, err := models.ParseStatementType(c.FormValue("statement"))
	if err != nil {
		return nil, badRequest{err}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, badRequest{fmt.Errorf("missing upload field \"file\": %w", err)}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, badRequest{err}
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, badRequest{err}
	}

	ext := c.FormValue("ext")
	if ext == "" {
		ext = filepath.Ext(fh.Filename)
	}

	return finstruct.Process(st, raw, ext, s.opts)
}

func (s *Server) fail(c echo.Context, err error) error {
	var br badRequest
	if errors.As(err, &br) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if errors.Is(err, finstruct.ErrUnknownStatement) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	kind := finstruct.KindOf(err)
	switch kind {
	case finstruct.KindUnsupportedFormat:
		return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: err.Error(), Kind: string(kind)})
	case finstruct.KindDecode, finstruct.KindEmptyResult:
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: string(kind)})
	}

	s.logger.Error().Err(err).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
