package employee

import (
	"net/http"
	"strconv"
	"strings"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func clientIDFrom(c *gin.Context) string {
	if id := c.GetString(middleware.ContextClientID); id != "" {
		return id
	}
	return c.Param("client_id")
}

func (h *Handler) Create(c *gin.Context) {
	clientID := clientIDFrom(c)
	h.logger.Debug("http create employee", zap.String("client_id", clientID))

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), clientID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	clientID := clientIDFrom(c)
	h.logger.Debug("http get all employees", zap.String("client_id", clientID))

	var filter GetEmployeesFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), clientID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))
	if pageSize < 1 {
		pageSize = 25
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	clientID := clientIDFrom(c)

	resp, err := h.service.GetOptions(c.Request.Context(), clientID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	clientID := clientIDFrom(c)
	targetID := c.Param("id")
	h.logger.Debug("http get employee by id",
		zap.String("client_id", clientID),
		zap.String("employee_id", targetID),
	)

	resp, err := h.service.GetByID(c.Request.Context(), clientID, targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// PayEstimate answers GET /employees/:id/pay-estimate?hours=N.
func (h *Handler) PayEstimate(c *gin.Context) {
	clientID := clientIDFrom(c)
	id := c.Param("id")

	var hours *decimal.Decimal
	if raw := strings.TrimSpace(c.Query("hours")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil || v.IsNegative() {
			h.writeServiceError(c, employeeerrors.ErrInvalidHours)
			return
		}
		hours = &v
	}

	resp, err := h.service.EstimatePay(c.Request.Context(), clientID, id, hours)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
