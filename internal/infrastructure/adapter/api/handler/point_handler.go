package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/middleware"
)

// PointHandler handles point-related HTTP requests
type PointHandler struct {
	pointUseCase usecase.PointUseCase
	logger       coreport.Logger
}

// NewPointHandler creates a new point handler instance
func NewPointHandler(pointUseCase usecase.PointUseCase, logger coreport.Logger) *PointHandler {
	return &PointHandler{
		pointUseCase: pointUseCase,
		logger:       logger,
	}
}

// GetPoint handles the GET /point/{userId} endpoint
func (h *PointHandler) GetPoint(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	balance, err := h.pointUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "Error getting balance", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPointResponse(balance))
}

// GetHistories handles the GET /point/{userId}/histories endpoint
func (h *PointHandler) GetHistories(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	entries, err := h.pointUseCase.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "Error getting history", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPointHistoryResponses(entries))
}

// Charge handles the PATCH /point/{userId}/charge endpoint
func (h *PointHandler) Charge(c *gin.Context) {
	h.mutate(c, entity.TransactionTypeCharge)
}

// Use handles the PATCH /point/{userId}/use endpoint
func (h *PointHandler) Use(c *gin.Context) {
	h.mutate(c, entity.TransactionTypeUse)
}

func (h *PointHandler) mutate(c *gin.Context, txType entity.TransactionType) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.PointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid point request format", map[string]any{
			"user_id":    userID,
			"operation":  txType.Operation(),
			"error":      err.Error(),
			"request_id": middleware.RequestIDFromContext(c),
		})
		middleware.WriteError(c, http.StatusBadRequest, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	var (
		balance entity.Balance
		err     error
	)
	switch txType {
	case entity.TransactionTypeCharge:
		balance, err = h.pointUseCase.Charge(c.Request.Context(), userID, *req.Amount)
	default:
		balance, err = h.pointUseCase.Use(c.Request.Context(), userID, *req.Amount)
	}
	if err != nil {
		h.respondError(c, "Point "+txType.Operation()+" failed", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPointResponse(balance))
}

// userID parses the path parameter, writing a 400 when it is not a positive integer
func (h *PointHandler) userID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		middleware.WriteError(c, http.StatusBadRequest, domainerr.CodeInvalidUserID, "Invalid user ID format")
		return 0, false
	}
	return userID, true
}

func (h *PointHandler) respondError(c *gin.Context, message string, userID uint64, err error) {
	code := domainerr.ErrorCode(err)
	status := statusFor(code)

	fields := map[string]any{
		"user_id":     userID,
		"error":       err.Error(),
		"error_code":  code,
		"status_code": status,
		"request_id":  middleware.RequestIDFromContext(c),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(message, fields)
	} else {
		h.logger.Debug(message, fields)
	}

	_ = c.Error(err)
	middleware.WriteError(c, status, code, messageFor(code))
}
