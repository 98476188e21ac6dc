package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDrawService returns canned responses so handler contracts can be
// tested without storage.
type stubDrawService struct {
	status  *models.DrawStatus
	result  *models.DrawResult
	history []models.HistoryEntry
	err     error
}

func (s *stubDrawService) CheckDrawOnDeadline(context.Context, string) (*models.DrawStatus, error) {
	return s.status, s.err
}

func (s *stubDrawService) RecordDraw(context.Context, string, string) (*models.DrawStatus, error) {
	return s.status, s.err
}

func (s *stubDrawService) Draw(context.Context, string) (*models.DrawResult, *models.DrawStatus, error) {
	return s.result, s.status, s.err
}

func (s *stubDrawService) QueryHistory(context.Context, string) ([]models.HistoryEntry, error) {
	return s.history, s.err
}

func (s *stubDrawService) Records(context.Context) ([]*models.DrawRecord, error) {
	return nil, s.err
}

func newTestRouter(svc *stubDrawService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewDrawHandler(svc)
	router := gin.New()
	router.POST("/api/check-draw-on-deadline", handler.CheckDrawOnDeadline)
	router.POST("/api/record-draw", handler.RecordDraw)
	router.POST("/api/draw", handler.Draw)
	router.POST("/api/query-history", handler.QueryHistory)
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckDrawOnDeadline_MissingPhoneIs400(t *testing.T) {
	router := newTestRouter(&stubDrawService{})

	w := post(router, "/api/check-draw-on-deadline", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCheckDrawOnDeadline_ReportsExistingDraw(t *testing.T) {
	router := newTestRouter(&stubDrawService{
		status: &models.DrawStatus{Exists: true, Time: "2025/3/26 10:00:00", Prize: "A"},
	})

	w := post(router, "/api/check-draw-on-deadline", `{"phone":"0921000223"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"exists":true,"time":"2025/3/26 10:00:00","prize":"A"}`, w.Body.String())
}

func TestRecordDraw_MissingFieldsIs400(t *testing.T) {
	router := newTestRouter(&stubDrawService{})

	w := post(router, "/api/record-draw", `{"phone":"0921000223"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(router, "/api/record-draw", `{"prize":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordDraw_NewDrawIsPlainOK(t *testing.T) {
	router := newTestRouter(&stubDrawService{status: &models.DrawStatus{Exists: false}})

	w := post(router, "/api/record-draw", `{"phone":"0921000223","prize":"A"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRecordDraw_DuplicateReportsAlreadyDrawn(t *testing.T) {
	router := newTestRouter(&stubDrawService{
		status: &models.DrawStatus{Exists: true, Time: "2025/3/26 10:00:00", Prize: "A"},
	})

	w := post(router, "/api/record-draw", `{"phone":"0921000223","prize":"B"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alreadyDrawn","time":"2025/3/26 10:00:00","prize":"A"}`, w.Body.String())
}

func TestRecordDraw_UpstreamFailureIsFail500(t *testing.T) {
	router := newTestRouter(&stubDrawService{err: assert.AnError})

	w := post(router, "/api/record-draw", `{"phone":"0921000223","prize":"A"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "FAIL", w.Body.String())
}

func TestQueryHistory_MissingPhoneIsEmptyArrayNotError(t *testing.T) {
	router := newTestRouter(&stubDrawService{})

	for _, body := range []string{`{}`, ``, `{"phone":""}`} {
		w := post(router, "/api/query-history", body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	}
}

func TestQueryHistory_ReturnsEntries(t *testing.T) {
	router := newTestRouter(&stubDrawService{history: []models.HistoryEntry{
		{Time: "2025/3/26 10:00:00", Phone: "921000223", Prize: "A", Expire: "2025-04-01", Claimed: ""},
	}})

	w := post(router, "/api/query-history", `{"phone":"0921000223"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"time":"2025/3/26 10:00:00","phone":"921000223","prize":"A","expire":"2025-04-01","claimed":""}]`, w.Body.String())
}
