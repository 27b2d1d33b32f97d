package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/middleware"
	"go-payroll/internal/paycalc"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn      func(ctx context.Context, clientID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn      func(ctx context.Context, clientID string, filter employee.GetEmployeesFilterRequest) ([]employee.EmployeeResponse, error)
	GetOptionsFn  func(ctx context.Context, clientID string) ([]employee.EmployeeOptionResponse, error)
	GetByIDFn     func(ctx context.Context, clientID, id string) (employee.EmployeeResponse, error)
	EstimatePayFn func(ctx context.Context, clientID, id string, hours *decimal.Decimal) (employee.PayEstimateResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, clientID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, clientID, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, clientID string, filter employee.GetEmployeesFilterRequest) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, clientID, filter)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context, clientID string) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx, clientID)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, clientID, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, clientID, id)
}
func (f *fakeEmployeeService) EstimatePay(ctx context.Context, clientID, id string, hours *decimal.Decimal) (employee.PayEstimateResponse, error) {
	return f.EstimatePayFn(ctx, clientID, id, hours)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		clientID := uuid.New().String()
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, clientID, cid)
				assert.Equal(t, "52000", req.Salary.Decimal.String())
				return employee.EmployeeResponse{ID: uuid.New().String(), Name: req.Name, ClientID: cid}, nil
			},
		}

		h := employee.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/employees", `{"name":"Jane Doe","salary":"52000","pay_frequency":"biweekly"}`)
		c.Set(middleware.ContextClientID, clientID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("binding error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		c, w := newContext(http.MethodPost, "/employees", `{"name":"Jane","pay_frequency":"daily"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	})
}

func TestEmployeeHandler_GetAll_Paginates(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, cid string, filter employee.GetEmployeesFilterRequest) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "1099", filter.EmploymentType)
			return []employee.EmployeeResponse{{Name: "A"}, {Name: "B"}, {Name: "C"}}, nil
		},
	}
	h := employee.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/employees?employment_type=1099&page=2&page_size=2", "")

	h.GetAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []employee.EmployeeResponse `json:"data"`
		Meta struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "C", body.Data[0].Name)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestEmployeeHandler_GetById_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, cid, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	h := employee.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/employees/x", "")
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_PayEstimate(t *testing.T) {
	t.Run("parses hours", func(t *testing.T) {
		svc := &fakeEmployeeService{
			EstimatePayFn: func(ctx context.Context, cid, id string, hours *decimal.Decimal) (employee.PayEstimateResponse, error) {
				require.NotNil(t, hours)
				assert.Equal(t, "45.5", hours.String())
				return employee.PayEstimateResponse{
					EmployeeID:  id,
					Calculation: paycalc.Result{Basis: paycalc.BasisHourly},
				}, nil
			},
		}
		h := employee.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/employees/e1/pay-estimate?hours=45.5", "")
		c.Params = gin.Params{{Key: "id", Value: "e1"}}

		h.PayEstimate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"basis":"hourly"`)
	})

	t.Run("no hours uses stored hours", func(t *testing.T) {
		svc := &fakeEmployeeService{
			EstimatePayFn: func(ctx context.Context, cid, id string, hours *decimal.Decimal) (employee.PayEstimateResponse, error) {
				assert.Nil(t, hours)
				return employee.PayEstimateResponse{EmployeeID: id}, nil
			},
		}
		h := employee.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/employees/e1/pay-estimate", "")

		h.PayEstimate(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects bad hours", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		for _, q := range []string{"abc", "-3"} {
			c, w := newContext(http.MethodGet, "/employees/e1/pay-estimate?hours="+q, "")
			h.PayEstimate(c)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})
}
