package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"saleboard/internal/importer"
	"saleboard/internal/service/board"
	"saleboard/internal/store"
)

func testRouter(t *testing.T) (*gin.Engine, *store.Session) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	session := store.NewSession()
	h := NewHandler(session, importer.NewCoordinator(session, board.DefaultWeights()))

	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r, session
}

func testWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "员工积分数据"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	rows := [][]interface{}{
		{"员工姓名", "队名", "个人总积分", "加权小组总分"},
		{"张三", "A队", 30, 100},
		{"李四", "B队", 25, 90},
		{"王五", "C队", 20, 50},
		{"赵六", "D队", 15, 40},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("员工积分数据", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func uploadWorkbook(t *testing.T, r *gin.Engine, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportAndLeaderboard(t *testing.T) {
	t.Parallel()

	r, session := testRouter(t)

	w := uploadWorkbook(t, r, "员工销售回款统计_2025年3月.xlsx", testWorkbook(t))
	if w.Code != http.StatusOK {
		t.Fatalf("import status: got=%d body=%s", w.Code, w.Body.String())
	}
	if !session.Loaded() {
		t.Fatalf("session not loaded after import")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard status: got=%d body=%s", w.Code, w.Body.String())
	}

	var resp LeaderboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode leaderboard: %v", err)
	}
	if resp.PeriodKey != "2025年3月" {
		t.Fatalf("period key: got=%q", resp.PeriodKey)
	}
	if len(resp.RedTeams) != 2 || resp.RedTeams[0] != "A队" {
		t.Fatalf("red teams: %v", resp.RedTeams)
	}
	if len(resp.Black) == 0 || resp.Black[0].Name != "赵六" {
		t.Fatalf("black entries: %+v", resp.Black)
	}
}

func TestLeaderboard_RequiresData(t *testing.T) {
	t.Parallel()

	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("status: got=%d want=409", w.Code)
	}
}

func TestImport_StructuredError(t *testing.T) {
	t.Parallel()

	r, _ := testRouter(t)

	// 缺少队名列
	f := excelize.NewFile()
	_ = f.SetSheetName("Sheet1", "员工积分数据")
	row := []interface{}{"员工姓名", "个人总积分"}
	_ = f.SetSheetRow("员工积分数据", "A1", &row)
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	_ = f.Close()

	w := uploadWorkbook(t, r, "坏数据.xlsx", buf.Bytes())
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Kind != "missing_required_column" {
		t.Fatalf("error kind: got=%q", resp.Kind)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	t.Parallel()

	r, _ := testRouter(t)
	uploadWorkbook(t, r, "员工销售回款统计_2025年3月.xlsx", testWorkbook(t))

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history status: got=%d", w.Code)
	}

	var resp struct {
		Snapshots []SnapshotSummary `json:"snapshots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(resp.Snapshots) != 1 || resp.Snapshots[0].Key != "2025年3月" {
		t.Fatalf("snapshots: %+v", resp.Snapshots)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/history/2025年3月", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status: got=%d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/history/2025年3月", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status: got=%d", w.Code)
	}
}

func TestGetSeries_UnknownScope(t *testing.T) {
	t.Parallel()

	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/history/series?scope=galaxy", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got=%d want=400", w.Code)
	}
}
