package payrollrun

import (
	"net/http"
	"strconv"

	"go-payroll/internal/middleware"
	payrollrunerrors "go-payroll/internal/payrollrun/errors"
	"go-payroll/internal/rbac"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerOptions struct {
	// Enforcer checks the per-target permission of the generic transition
	// endpoint. Nil skips the check.
	Enforcer middleware.Enforcer
	// Idempotent stores create responses for Idempotency-Key replays.
	Idempotent *middleware.Idempotent
}

type Handler struct {
	service  Service
	enforcer middleware.Enforcer
	idem     *middleware.Idempotent
	logger   *zap.Logger
}

func NewHandler(service Service, opts HandlerOptions, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payrollrun.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollrun.handler")
	}
	return &Handler{
		service:  service,
		enforcer: opts.Enforcer,
		idem:     opts.Idempotent,
		logger:   l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll run request failed",
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
	defer h.idem.Release(c)

	clientID := clientIDFrom(c)
	var req CreatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), clientID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.idem.Store(c, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter GetPayrollRunsFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), clientIDFrom(c), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
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

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), clientIDFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), clientIDFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), clientIDFrom(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddEmployee(c.Request.Context(), clientIDFrom(c), c.Param("id"), req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RemoveEmployee(c *gin.Context) {
	err := h.service.RemoveEmployee(c.Request.Context(), clientIDFrom(c), c.Param("id"), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true}, nil)
}

// Transition takes the target status from the body and checks the
// permission for that target.
func (h *Handler) Transition(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	target, ok := ParseStatus(req.Status)
	if !ok {
		h.writeServiceError(c, payrollrunerrors.ErrInvalidStatus)
		return
	}

	if h.enforcer != nil {
		allowed, err := h.enforcer.Enforce(c.GetString(middleware.ContextRole), rbac.ResourcePayrollRun, target.Action())
		if err != nil {
			h.writeServiceError(c, apperror.ErrInternal.WithCause(err))
			return
		}
		if !allowed {
			h.writeServiceError(c, apperror.ErrForbidden.WithDetails(map[string]string{
				"required": rbac.ResourcePayrollRun + ":" + target.Action(),
			}))
			return
		}
	}

	h.transition(c, target)
}

// TransitionTo serves the fixed-target shortcuts such as /approve.
func (h *Handler) TransitionTo(target Status) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.transition(c, target)
	}
}

func (h *Handler) transition(c *gin.Context, target Status) {
	resp, err := h.service.Transition(c.Request.Context(), clientIDFrom(c), c.Param("id"), target)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Totals(c *gin.Context) {
	resp, err := h.service.Totals(c.Request.Context(), clientIDFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Readiness(c *gin.Context) {
	resp, err := h.service.Readiness(c.Request.Context(), clientIDFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Recalculate(c *gin.Context) {
	resp, err := h.service.Recalculate(c.Request.Context(), clientIDFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RecalculateEntry(c *gin.Context) {
	resp, err := h.service.RecalculateEntry(c.Request.Context(), clientIDFrom(c), c.Param("id"), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayStub(c *gin.Context) {
	stub, err := h.service.PayStub(c.Request.Context(), clientIDFrom(c), c.Param("id"), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pdf, err := stub.PDF()
	if err != nil {
		h.writeServiceError(c, apperror.ErrInternal.WithCause(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+stub.FileName()+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
