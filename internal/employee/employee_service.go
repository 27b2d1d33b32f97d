package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-payroll/internal/client"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/paycalc"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(clientID string) string {
	return EmployeeOptionsKeyPrefix + clientID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, clientID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, clientID string, filter GetEmployeesFilterRequest) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, clientID string) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, clientID, id string) (EmployeeResponse, error)
	EstimatePay(ctx context.Context, clientID, id string, hours *decimal.Decimal) (PayEstimateResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	clients    client.Repository
	calculator *paycalc.Calculator
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	sf         *singleflight.Group
	now        func() time.Time
	logger     *zap.Logger
}

type ServiceDeps struct {
	DB         *sql.DB
	Repo       Repository
	Clients    client.Repository
	Calculator *paycalc.Calculator
	Outbox     kafka.OutboxRepository
	Redis      *redis.Client
	Now        func() time.Time
}

func NewService(deps ServiceDeps, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	calc := deps.Calculator
	if calc == nil {
		calc = paycalc.NewCalculator(paycalc.DefaultTables(), l)
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		clients:    deps.Clients,
		calculator: calc,
		outbox:     deps.Outbox,
		rdb:        deps.Redis,
		sf:         &singleflight.Group{},
		now:        now,
		logger:     l,
	}
}

func (s *service) Create(
	ctx context.Context,
	clientID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("client_id", clientID),
	)

	clientUUID, err := uuid.Parse(clientID)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("client_id")
	}

	in := Employee{
		ClientID:                     clientUUID,
		Name:                         req.Name,
		Title:                        req.Title,
		Department:                   req.Department,
		Email:                        req.Email,
		Phone:                        req.Phone,
		Address:                      req.Address,
		State:                        req.State,
		EmploymentType:               paycalc.EmploymentType(req.EmploymentType),
		PayFrequency:                 paycalc.PayFrequency(req.PayFrequency),
		Salary:                       req.Salary,
		HourlyRate:                   req.HourlyRate,
		HoursWorked:                  req.HoursWorked,
		MaritalStatus:                paycalc.MaritalStatus(req.MaritalStatus),
		FederalWithholdingAllowances: req.FederalWithholdingAllowances,
		FederalAdditionalWithholding: req.FederalAdditionalWithholding.Decimal,
		StateWithholdingAllowances:   req.StateWithholdingAllowances,
		StateAdditionalWithholding:   req.StateAdditionalWithholding.Decimal,
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return EmployeeResponse{}, apperror.Validation(apperror.FieldError{
				Field:   "hire_date",
				Message: "must be formatted YYYY-MM-DD",
			})
		}
		in.HireDate = &hireDate
	}

	empl := NewEmployee(in, s.now())
	if errs := empl.Validate(); len(errs) > 0 {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Int("errors", len(errs)),
		)
		return EmployeeResponse{}, apperror.Validation(errs...)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:      events.EmployeeCreatedEventType,
			RequestID:      rid,
			EmployeeID:     empl.ID.String(),
			ClientID:       clientID,
			EmploymentType: string(empl.EmploymentType),
			PayFrequency:   string(empl.PayFrequency),
			OccurredAt:     s.now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: kafka.AggregateEmployee,
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, clientID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	clientID string,
	filter GetEmployeesFilterRequest,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("client_id", clientID))

	employees, err := s.repo.FindAllByClient(ctx, clientID, EmployeeQueryFilter{
		Status:         filter.Status,
		EmploymentType: filter.EmploymentType,
		PayFrequency:   filter.PayFrequency,
		Search:         filter.Q,
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

// GetOptions feeds the employee picker of the payroll run form.
func (s *service) GetOptions(ctx context.Context, clientID string) ([]EmployeeOptionResponse, error) {
	cacheKey := GetEmployeeOptionsKey(clientID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		employees, err := s.repo.FindOptionsByClient(ctx, clientID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, 0, len(employees))
		for _, e := range employees {
			resp = append(resp, EmployeeOptionResponse{
				ID:             e.ID.String(),
				DisplayName:    e.DisplayName(),
				EmploymentType: string(e.EmploymentType),
				PayFrequency:   string(e.PayFrequency),
			})
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, string(jsonData), time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	clientID, id string,
) (EmployeeResponse, error) {
	empl, err := s.find(ctx, clientID, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

// EstimatePay runs the calculator for one employee without touching any
// payroll run. hours overrides the stored per-period hours.
func (s *service) EstimatePay(
	ctx context.Context,
	clientID, id string,
	hours *decimal.Decimal,
) (PayEstimateResponse, error) {
	if hours != nil && hours.IsNegative() {
		return PayEstimateResponse{}, employeeerrors.ErrInvalidHours
	}

	empl, err := s.find(ctx, clientID, id)
	if err != nil {
		return PayEstimateResponse{}, err
	}

	clientAddress := ""
	if s.clients != nil {
		c, err := s.clients.FindByID(ctx, clientID)
		if err != nil {
			s.logger.Warn("estimate pay client lookup failed", zap.String("client_id", clientID), zap.Error(err))
		} else {
			clientAddress = joinAddress(c.State, c.Address)
		}
	}

	state := s.calculator.ResolveState(empl.State, empl.Address, clientAddress)
	result := s.calculator.Calculate(empl.PayProfile(state), hours)

	s.logger.Debug("estimate pay computed",
		zap.String("employee_id", id),
		zap.String("state", state),
		zap.String("gross", result.GrossPay.String()),
		zap.String("net", result.NetPay.String()),
	)

	return PayEstimateResponse{
		EmployeeID:   empl.ID.String(),
		EmployeeName: empl.Name,
		PayFrequency: string(empl.PayFrequency),
		State:        state,
		Calculation:  result,
	}, nil
}

func (s *service) find(ctx context.Context, clientID, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByIDAndClient(ctx, clientID, id)
	if err != nil {
		s.logger.Warn("get employee by id failed",
			zap.String("client_id", clientID),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}

func (s *service) invalidateOptions(ctx context.Context, clientID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(clientID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func joinAddress(state, address string) string {
	if state == "" {
		return address
	}
	return state + " " + address
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                           e.ID.String(),
		ClientID:                     e.ClientID.String(),
		Name:                         e.Name,
		DisplayName:                  e.DisplayName(),
		Title:                        e.Title,
		Department:                   e.Department,
		Email:                        e.Email,
		Phone:                        e.Phone,
		Address:                      e.Address,
		State:                        e.State,
		EmploymentType:               string(e.EmploymentType),
		EmploymentTypeDisplay:        e.EmploymentTypeDisplay(),
		PayFrequency:                 string(e.PayFrequency),
		PayFrequencyDisplay:          e.PayFrequencyDisplay(),
		Status:                       string(e.Status),
		StatusDisplay:                e.StatusDisplay(),
		Salary:                       e.Salary,
		HourlyRate:                   e.HourlyRate,
		HoursWorked:                  e.HoursWorked,
		CalculatedHourlyRate:         e.CalculateHourlyRate(),
		GrossPayPerPeriod:            e.CalculateGrossPayPerPeriod(),
		MaritalStatus:                string(e.MaritalStatus),
		MaritalStatusDisplay:         e.MaritalStatusDisplay(),
		FederalWithholdingAllowances: e.FederalWithholdingAllowances,
		FederalAdditionalWithholding: e.FederalAdditionalWithholding,
		StateWithholdingAllowances:   e.StateWithholdingAllowances,
		StateAdditionalWithholding:   e.StateAdditionalWithholding,
		MissingPayrollFields:         e.MissingPayrollFields(),
	}
	if e.HireDate != nil {
		resp.HireDate = e.HireDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, mapToResponse(e))
	}
	return out
}
