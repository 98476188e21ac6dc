package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/linyuchen/phone-lottery-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCampaignService struct {
	title       string
	deadline    string
	description string
	prizes      []models.PrizeView
	err         error
}

func (s *stubCampaignService) Title(context.Context) (string, error)       { return s.title, s.err }
func (s *stubCampaignService) Deadline(context.Context) (string, error)    { return s.deadline, s.err }
func (s *stubCampaignService) Description(context.Context) (string, error) { return s.description, s.err }
func (s *stubCampaignService) Prizes(context.Context) ([]models.PrizeView, error) {
	return s.prizes, s.err
}
func (s *stubCampaignService) Settings(context.Context) ([]*models.Setting, error) {
	return nil, s.err
}
func (s *stubCampaignService) UpsertSetting(context.Context, string, string) error { return s.err }
func (s *stubCampaignService) CreatePrize(context.Context, string, float64) error  { return s.err }
func (s *stubCampaignService) DeletePrize(context.Context, string) error           { return s.err }

func newCampaignRouter(svc *stubCampaignService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCampaignHandler(svc)
	router := gin.New()
	router.GET("/api/title", handler.GetTitle)
	router.GET("/api/deadline", handler.GetDeadline)
	router.GET("/api/prizes", handler.GetPrizes)
	router.GET("/api/activity-description", handler.GetDescription)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetTitle_PlainText(t *testing.T) {
	router := newCampaignRouter(&stubCampaignService{title: services.TitlePlaceholder})

	w := get(router, "/api/title")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "(未設定)", w.Body.String())
}

func TestGetDeadline_RawStoredString(t *testing.T) {
	router := newCampaignRouter(&stubCampaignService{deadline: "2025/3/26"})

	w := get(router, "/api/deadline")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025/3/26", w.Body.String())
}

func TestGetPrizes_JSONArray(t *testing.T) {
	router := newCampaignRouter(&stubCampaignService{prizes: []models.PrizeView{
		{Name: "A", Rate: 10},
		{Name: "B", Rate: 0.5},
	}})

	w := get(router, "/api/prizes")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"A","rate":10},{"name":"B","rate":0.5}]`, w.Body.String())
}

func TestGetDescription_UpstreamFailureIs500(t *testing.T) {
	router := newCampaignRouter(&stubCampaignService{err: assert.AnError})

	w := get(router, "/api/activity-description")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
