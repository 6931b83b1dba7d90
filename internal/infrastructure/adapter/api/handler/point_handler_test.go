package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/point-ledger/mocks/port/usecase"
)

func setupRouter(t *testing.T) (*gin.Engine, *mockusecase.MockPointUseCase) {
	gin.SetMode(gin.TestMode)

	mockUseCase := mockusecase.NewMockPointUseCase(t)
	h := NewPointHandler(mockUseCase, logger.NewNoopLogger())

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/point/:userId", h.GetPoint)
	router.GET("/point/:userId/histories", h.GetHistories)
	router.PATCH("/point/:userId/charge", h.Charge)
	router.PATCH("/point/:userId/use", h.Use)
	return router, mockUseCase
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), resp.RequestID)
	return resp
}

func TestPointHandler_GetPoint(t *testing.T) {
	router, mockUseCase := setupRouter(t)
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockUseCase.EXPECT().GetBalance(mock.Anything, uint64(7)).
		Return(entity.Balance{UserID: 7, Amount: 1500, UpdatedAt: updatedAt}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/point/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PointResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.UserID)
	assert.Equal(t, int64(1500), resp.Point)
	require.NotNil(t, resp.UpdatedAt)
	assert.True(t, updatedAt.Equal(*resp.UpdatedAt))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestPointHandler_GetPointUnknownUser(t *testing.T) {
	router, mockUseCase := setupRouter(t)
	mockUseCase.EXPECT().GetBalance(mock.Anything, uint64(9)).Return(entity.EmptyBalance(9), nil).Once()

	rec := doRequest(router, http.MethodGet, "/point/9", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":9,"point":0}`, rec.Body.String())
}

func TestPointHandler_InvalidUserID(t *testing.T) {
	router, _ := setupRouter(t)

	for _, path := range []string{"/point/abc", "/point/0", "/point/-1/histories"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(router, http.MethodGet, path, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domainerr.CodeInvalidUserID, decodeError(t, rec).Code)
		})
	}
}

func TestPointHandler_GetHistories(t *testing.T) {
	router, mockUseCase := setupRouter(t)
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockUseCase.EXPECT().GetHistory(mock.Anything, uint64(3)).Return([]entity.HistoryEntry{
		{SequenceID: 1, UserID: 3, Amount: 100, Type: entity.TransactionTypeCharge, Timestamp: ts},
		{SequenceID: 4, UserID: 3, Amount: 30, Type: entity.TransactionTypeUse, Timestamp: ts.Add(time.Second)},
	}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/point/3/histories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.PointHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "CHARGE", resp[0].Type)
	assert.Equal(t, int64(100), resp[0].Amount)
	assert.Equal(t, "USE", resp[1].Type)
	assert.Equal(t, uint64(4), resp[1].ID)
}

func TestPointHandler_GetHistoriesEmpty(t *testing.T) {
	router, mockUseCase := setupRouter(t)
	mockUseCase.EXPECT().GetHistory(mock.Anything, uint64(3)).Return([]entity.HistoryEntry{}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/point/3/histories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPointHandler_Charge(t *testing.T) {
	router, mockUseCase := setupRouter(t)
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockUseCase.EXPECT().Charge(mock.Anything, uint64(1), int64(500)).
		Return(entity.Balance{UserID: 1, Amount: 500, UpdatedAt: updatedAt}, nil).Once()

	rec := doRequest(router, http.MethodPatch, "/point/1/charge", `{"amount":500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PointResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(500), resp.Point)
}

func TestPointHandler_Use(t *testing.T) {
	router, mockUseCase := setupRouter(t)

	mockUseCase.EXPECT().Use(mock.Anything, uint64(1), int64(200)).
		Return(entity.Balance{UserID: 1, Amount: 300, UpdatedAt: time.Now()}, nil).Once()

	rec := doRequest(router, http.MethodPatch, "/point/1/use", `{"amount":200}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PointResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(300), resp.Point)
}

func TestPointHandler_InvalidBody(t *testing.T) {
	router, _ := setupRouter(t)

	for _, body := range []string{`{}`, `{"amount":"ten"}`, `not json`, `{"amount":1.5}`} {
		t.Run(body, func(t *testing.T) {
			rec := doRequest(router, http.MethodPatch, "/point/1/charge", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, rec).Code)
		})
	}
}

func TestPointHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"invalid amount", fmt.Errorf("%w: got 0", domainerr.ErrInvalidAmount), http.StatusBadRequest, domainerr.CodeInvalidAmount},
		{"cap exceeded", domainerr.NewBalanceError("charge", 1, 10, 999_995, domainerr.ErrCapExceeded),
			http.StatusUnprocessableEntity, domainerr.CodeCapExceeded},
		{"insufficient funds", domainerr.NewBalanceError("use", 1, 10, 5, domainerr.ErrInsufficientFunds),
			http.StatusUnprocessableEntity, domainerr.CodeInsufficientFunds},
		{"user locked", fmt.Errorf("user 1 busy: %w", domainerr.ErrUserLocked), http.StatusConflict, domainerr.CodeUserLocked},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, domainerr.CodeServiceUnavailable},
		{"storage", fmt.Errorf("save: %w", domainerr.ErrDatabaseConnection), http.StatusInternalServerError, domainerr.CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, mockUseCase := setupRouter(t)
			mockUseCase.EXPECT().Charge(mock.Anything, uint64(1), int64(10)).Return(entity.Balance{}, tc.err).Once()

			rec := doRequest(router, http.MethodPatch, "/point/1/charge", `{"amount":10}`)

			assert.Equal(t, tc.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.NotContains(t, resp.Message, "database")
		})
	}
}

func TestPointHandler_ZeroAmountReachesUseCase(t *testing.T) {
	router, mockUseCase := setupRouter(t)
	mockUseCase.EXPECT().Use(mock.Anything, uint64(1), int64(0)).
		Return(entity.Balance{}, fmt.Errorf("%w: got 0", domainerr.ErrInvalidAmount)).Once()

	rec := doRequest(router, http.MethodPatch, "/point/1/use", `{"amount":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerr.CodeInvalidAmount, decodeError(t, rec).Code)
}
