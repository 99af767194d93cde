package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/payroute/payroute-backend/internal/domain"
	"github.com/payroute/payroute-backend/internal/usecase/planner"
)

const testToken = "test-token"

// MockDecisionRepository is a mock implementation of DecisionRepository for testing
type MockDecisionRepository struct {
	mock.Mock
}

func (m *MockDecisionRepository) Record(ctx context.Context, decision *domain.RouteDecision) error {
	args := m.Called(ctx, decision)
	return args.Error(0)
}

func (m *MockDecisionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RouteDecision, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RouteDecision), args.Error(1)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockDecisionRepository)
	mockRepo.On("Record", mock.Anything, mock.Anything).Return(nil)

	service := planner.NewRoutePlanService(zap.NewNop(), mockRepo)

	router := gin.New()
	NewBaseHandler(zap.NewNop()).RegisterRoutes(router)

	api := router.Group("/api/v1")
	api.Use(Auth(testToken))
	NewRouteHandler(zap.NewNop(), service).RegisterRoutes(api)

	return router
}

func routeRequestJSON(now time.Time) string {
	arrivalFast := now.Add(1 * time.Hour).Format(time.RFC3339)
	arrivalSlow := now.Add(24 * time.Hour).Format(time.RFC3339)
	reference := now.Format(time.RFC3339)

	return fmt.Sprintf(`{
		"referenceTime": %q,
		"routes": [
			{
				"steps": [
					{"fromAccountId": "a", "toAccountId": "b", "amount": "100", "method": "ONE_DAY", "fee": "2.50", "estimatedArrival": %q}
				],
				"totalFees": "2.50",
				"estimatedArrival": %q,
				"riskLevel": "LOW",
				"riskScore": 20
			},
			{
				"steps": [
					{"fromAccountId": "a", "toAccountId": "c", "amount": "100", "method": "INSTANT", "fee": "9.00", "estimatedArrival": %q}
				],
				"totalFees": "9.00",
				"estimatedArrival": %q,
				"riskLevel": "MEDIUM",
				"riskScore": 55
			}
		]
	}`, reference, arrivalSlow, arrivalSlow, arrivalFast, arrivalFast)
}

func doPlanRequest(t *testing.T, router *gin.Engine, body string, token string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/v1/routes/plan", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestPlanRoutes_ReturnsThreeSelections(t *testing.T) {
	router := newTestRouter()
	now := time.Now().UTC().Truncate(time.Second)

	recorder := doPlanRequest(t, router, routeRequestJSON(now), testToken)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var resp PlanRoutesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.Equal(t, "CHEAPEST", resp.Cheapest.Category)
	assert.Equal(t, "2.5", resp.Cheapest.TotalFees)
	assert.NotEmpty(t, resp.Cheapest.Reasoning)

	assert.Equal(t, "FASTEST", resp.Fastest.Category)
	assert.Equal(t, "9", resp.Fastest.TotalFees)
	assert.NotEmpty(t, resp.Fastest.Reasoning)

	assert.Equal(t, "RECOMMENDED", resp.Recommended.Category)
	assert.NotEmpty(t, resp.Recommended.Reasoning)
}

func TestPlanRoutes_MalformedBody(t *testing.T) {
	router := newTestRouter()

	recorder := doPlanRequest(t, router, `{"routes": [`, testToken)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, ErrInvalidInput, resp.Code)
}

func TestPlanRoutes_InvalidDecimal(t *testing.T) {
	router := newTestRouter()
	now := time.Now().UTC()
	arrival := now.Add(time.Hour).Format(time.RFC3339)

	body := fmt.Sprintf(`{
		"routes": [
			{
				"steps": [
					{"fromAccountId": "a", "toAccountId": "b", "amount": "not-a-number", "method": "INSTANT", "estimatedArrival": %q}
				],
				"totalFees": "0",
				"estimatedArrival": %q,
				"riskScore": 10
			}
		]
	}`, arrival, arrival)

	recorder := doPlanRequest(t, router, body, testToken)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid amount format")
}

func TestPlanRoutes_EmptyBatch(t *testing.T) {
	router := newTestRouter()

	recorder := doPlanRequest(t, router, `{"routes": []}`, testToken)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, ErrEmptyBatch, resp.Code)
}

func TestPlanRoutes_MissingToken(t *testing.T) {
	router := newTestRouter()
	now := time.Now().UTC()

	recorder := doPlanRequest(t, router, routeRequestJSON(now), "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "missing authorization header")
}

func TestPlanRoutes_InvalidToken(t *testing.T) {
	router := newTestRouter()
	now := time.Now().UTC()

	recorder := doPlanRequest(t, router, routeRequestJSON(now), "wrong-token")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid token")
}

func TestGetHealth(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ok")
}
