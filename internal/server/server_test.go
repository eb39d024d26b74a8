package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rajesh180675/advanced-analysis/internal/common"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct"
)

const balanceSheetCSV = "Year,201103,201203\n" +
	"Total Current Assets,500,600\n" +
	"Total Current Liabilities,250,200\n"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := common.NewDefaultConfig()
	opts, err := cfg.PipelineOptions(common.NewSilentLogger())
	require.NoError(t, err)
	return NewServer(cfg, opts, common.NewSilentLogger())
}

func upload(t *testing.T, target, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(newTestServer(t), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)
	req := upload(t, "/api/v1/analyze", "bs.csv", balanceSheetCSV, map[string]string{"statement": "balance_sheet"})

	rec := serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Statement string `json:"statement"`
		Table     struct {
			Periods []string `json:"periods"`
		} `json:"table"`
		Analysis struct {
			Metrics []struct {
				Key    string     `json:"key"`
				Values []*float64 `json:"values"`
			} `json:"metrics"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "balance_sheet", body.Statement)
	assert.Equal(t, []string{"Mar-2011", "Mar-2012"}, body.Table.Periods)
	require.NotEmpty(t, body.Analysis.Metrics)
	assert.Equal(t, "current_ratio", body.Analysis.Metrics[0].Key)
	assert.Equal(t, 3.0, *body.Analysis.Metrics[0].Values[1])
}

func TestAnalyzeStatementFromQueryAndExtField(t *testing.T) {
	s := newTestServer(t)
	req := upload(t, "/api/v1/analyze?statement=bs&pretty=true", "upload.bin", balanceSheetCSV, map[string]string{"ext": "csv"})

	rec := serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "\n  \"run_id\"")
}

func TestAnalyzeErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		req    *http.Request
		status int
		kind   string
	}{
		{"unknown statement", upload(t, "/api/v1/analyze", "bs.csv", balanceSheetCSV, map[string]string{"statement": "ledger"}), http.StatusBadRequest, ""},
		{"missing file", upload(t, "/api/v1/analyze", "", "", map[string]string{"statement": "bs"}), http.StatusBadRequest, ""},
		{"unsupported extension", upload(t, "/api/v1/analyze", "bs.pdf", balanceSheetCSV, map[string]string{"statement": "bs"}), http.StatusUnsupportedMediaType, string(finstruct.KindUnsupportedFormat)},
		{"undecodable", upload(t, "/api/v1/analyze", "bs.csv", "one\ntwo\n", map[string]string{"statement": "bs"}), http.StatusUnprocessableEntity, string(finstruct.KindDecode)},
		{"empty result", upload(t, "/api/v1/analyze", "bs.csv", "Year,2011\nZero,0\n", map[string]string{"statement": "bs"}), http.StatusUnprocessableEntity, string(finstruct.KindEmptyResult)},
	}

	for _, tt := range tests {
		rec := serve(s, tt.req)
		assert.Equal(t, tt.status, rec.Code, tt.name)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), tt.name)
		assert.NotEmpty(t, body.Error, tt.name)
		assert.Equal(t, tt.kind, body.Kind, tt.name)
	}
}

func TestChart(t *testing.T) {
	s := newTestServer(t)
	req := upload(t, "/api/v1/chart", "bs.csv", balanceSheetCSV, map[string]string{"statement": "balance_sheet"})

	rec := serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestExport(t *testing.T) {
	s := newTestServer(t)
	req := upload(t, "/api/v1/export", "bs.csv", balanceSheetCSV, map[string]string{"statement": "balance_sheet"})

	rec := serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "balance_sheet.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Analysis", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Current Ratio", v)
}
