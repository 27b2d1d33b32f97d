package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/client"
	mock_client "go-payroll/internal/client/mock"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/paycalc"
	"go-payroll/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn              func(ctx context.Context, e *employee.Employee) error
	findAllByClientFn     func(ctx context.Context, clientID string, filter employee.EmployeeQueryFilter) ([]employee.Employee, error)
	findOptionsByClientFn func(ctx context.Context, clientID string) ([]employee.Employee, error)
	findByIDAndClientFn   func(ctx context.Context, clientID, id string) (*employee.Employee, error)
	findByIDsAndClientFn  func(ctx context.Context, clientID string, ids []string) ([]employee.Employee, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return f.createFn(ctx, e)
}
func (f *fakeRepo) FindAllByClient(ctx context.Context, clientID string, filter employee.EmployeeQueryFilter) ([]employee.Employee, error) {
	return f.findAllByClientFn(ctx, clientID, filter)
}
func (f *fakeRepo) FindOptionsByClient(ctx context.Context, clientID string) ([]employee.Employee, error) {
	return f.findOptionsByClientFn(ctx, clientID)
}
func (f *fakeRepo) FindByIDAndClient(ctx context.Context, clientID, id string) (*employee.Employee, error) {
	return f.findByIDAndClientFn(ctx, clientID, id)
}
func (f *fakeRepo) FindByIDsAndClient(ctx context.Context, clientID string, ids []string) ([]employee.Employee, error) {
	return f.findByIDsAndClientFn(ctx, clientID, ids)
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) CountUnsent(ctx context.Context, aggregateType, aggregateID string) (int, error) {
	return 0, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New().String()

	t.Run("success writes outbox event and drops options cache", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		var saved employee.Employee
		repo := &fakeRepo{createFn: func(ctx context.Context, e *employee.Employee) error {
			saved = *e
			return nil
		}}
		outbox := &fakeOutbox{}

		svc := employee.NewService(employee.ServiceDeps{
			DB:         db,
			Repo:       repo,
			Calculator: paycalc.NewCalculator(paycalc.DefaultTables()),
			Outbox:     outbox,
			Redis:      rdb,
			Now:        func() time.Time { return fixedNow },
		})

		mock.ExpectBegin()
		mock.ExpectCommit()
		redisMock.ExpectDel(employee.GetEmployeeOptionsKey(clientID)).SetVal(1)

		resp, err := svc.Create(ctx, clientID, employee.CreateEmployeeRequest{
			Name:   "Jane Doe",
			Email:  "jane@example.com",
			State:  "ca",
			Salary: decimal.NewNullDecimal(decimal.NewFromInt(52000)),
		})

		require.NoError(t, err)
		assert.Equal(t, saved.ID.String(), resp.ID)
		assert.Equal(t, "W2", resp.EmploymentType)
		assert.Equal(t, "biweekly", resp.PayFrequency)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "CA", resp.State)
		assert.Equal(t, "2024-03-15", resp.HireDate)
		assert.Equal(t, "2000", resp.GrossPayPerPeriod.String())
		assert.Equal(t, "25", resp.CalculatedHourlyRate.String())

		require.Len(t, outbox.created, 1)
		assert.Equal(t, events.EmployeeCreatedTopic, outbox.created[0].Topic)
		var evt events.EmployeeCreatedEvent
		require.NoError(t, json.Unmarshal(outbox.created[0].Payload, &evt))
		assert.Equal(t, clientID, evt.ClientID)
		assert.Equal(t, saved.ID.String(), evt.EmployeeID)

		assert.NoError(t, mock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("validation failure never opens a transaction", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		svc := employee.NewService(employee.ServiceDeps{DB: db, Repo: &fakeRepo{}})

		_, err := svc.Create(ctx, clientID, employee.CreateEmployeeRequest{
			Name:   "J",
			Salary: decimal.NewNullDecimal(decimal.Zero),
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrValidation))

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		fields := appErr.Details.([]apperror.FieldError)
		assert.Len(t, fields, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeRepo{createFn: func(ctx context.Context, e *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_client_email"}
		}}
		svc := employee.NewService(employee.ServiceDeps{DB: db, Repo: repo, Outbox: &fakeOutbox{}})

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(ctx, clientID, employee.CreateEmployeeRequest{Name: "Jane Doe"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid client id", func(t *testing.T) {
		svc := employee.NewService(employee.ServiceDeps{Repo: &fakeRepo{}})
		_, err := svc.Create(ctx, "not-a-uuid", employee.CreateEmployeeRequest{Name: "Jane Doe"})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestService_GetAll_PassesFilter(t *testing.T) {
	clientID := uuid.New().String()

	var got employee.EmployeeQueryFilter
	repo := &fakeRepo{findAllByClientFn: func(ctx context.Context, cid string, filter employee.EmployeeQueryFilter) ([]employee.Employee, error) {
		got = filter
		return []employee.Employee{{ID: uuid.New(), Name: "Ann", EmploymentType: paycalc.EmploymentContractor}}, nil
	}}
	svc := employee.NewService(employee.ServiceDeps{Repo: repo})

	res, err := svc.GetAll(context.Background(), clientID, employee.GetEmployeesFilterRequest{
		Status: "active",
		Q:      "ann",
	})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "1099 Contractor", res[0].EmploymentTypeDisplay)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "ann", got.Search)
}

func TestService_GetOptions(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New().String()
	key := employee.GetEmployeeOptionsKey(clientID)

	t.Run("cache hit skips the repository", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		repo := &fakeRepo{findOptionsByClientFn: func(ctx context.Context, clientID string) ([]employee.Employee, error) {
			t.Fatal("repository should not be called")
			return nil, nil
		}}
		svc := employee.NewService(employee.ServiceDeps{Repo: repo, Redis: rdb})

		redisMock.ExpectGet(key).SetVal(`[{"id":"e1","display_name":"Ann","employment_type":"W2","pay_frequency":"weekly"}]`)

		res, err := svc.GetOptions(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Ann", res[0].DisplayName)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		id := uuid.New()
		repo := &fakeRepo{findOptionsByClientFn: func(ctx context.Context, clientID string) ([]employee.Employee, error) {
			return []employee.Employee{{
				ID:             id,
				Name:           "Ann",
				Title:          "Cook",
				EmploymentType: paycalc.EmploymentW2,
				PayFrequency:   paycalc.FrequencyWeekly,
			}}, nil
		}}
		svc := employee.NewService(employee.ServiceDeps{Repo: repo, Redis: rdb})

		want := []employee.EmployeeOptionResponse{{
			ID:             id.String(),
			DisplayName:    "Ann - Cook",
			EmploymentType: "W2",
			PayFrequency:   "weekly",
		}}
		payload, _ := json.Marshal(want)

		redisMock.ExpectGet(key).RedisNil()
		redisMock.ExpectSet(key, string(payload), time.Hour).SetVal("OK")

		res, err := svc.GetOptions(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, want, res)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestService_EstimatePay(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New().String()
	employeeID := uuid.New()

	salaried := func(state string) *employee.Employee {
		return &employee.Employee{
			ID:             employeeID,
			Name:           "Jane Doe",
			State:          state,
			EmploymentType: paycalc.EmploymentW2,
			PayFrequency:   paycalc.FrequencyBiweekly,
			Status:         employee.StatusActive,
			Salary:         decimal.NewNullDecimal(decimal.NewFromInt(52000)),
		}
	}

	setup := func(t *testing.T, e *employee.Employee) (*mock_client.MockRepository, employee.Service) {
		ctrl := gomock.NewController(t)
		clients := mock_client.NewMockRepository(ctrl)
		repo := &fakeRepo{findByIDAndClientFn: func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			if e == nil || id != e.ID.String() {
				return nil, gorm.ErrRecordNotFound
			}
			return e, nil
		}}
		svc := employee.NewService(employee.ServiceDeps{
			Repo:       repo,
			Clients:    clients,
			Calculator: paycalc.NewCalculator(paycalc.DefaultTables()),
		})
		return clients, svc
	}

	t.Run("uses the employee state", func(t *testing.T) {
		clients, svc := setup(t, salaried("CA"))
		clients.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&client.Client{State: "TX", Address: "1 Elm St, Austin, TX"}, nil)

		res, err := svc.EstimatePay(ctx, clientID, employeeID.String(), nil)

		require.NoError(t, err)
		assert.Equal(t, "CA", res.State)
		assert.Equal(t, "2000", res.Calculation.GrossPay.String())
		assert.Equal(t, "100", res.Calculation.StateTaxes.Withholding.String())
		assert.Equal(t, "1361.31", res.Calculation.NetPay.String())
		assert.Equal(t, paycalc.BasisSalary, res.Calculation.Basis)
	})

	t.Run("falls back to the client address", func(t *testing.T) {
		clients, svc := setup(t, salaried(""))
		clients.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&client.Client{Address: "900 Capitol Mall, Sacramento, CA"}, nil)

		res, err := svc.EstimatePay(ctx, clientID, employeeID.String(), nil)

		require.NoError(t, err)
		assert.Equal(t, "CA", res.State)
		assert.Equal(t, "1361.31", res.Calculation.NetPay.String())
	})

	t.Run("client lookup failure still estimates federal only", func(t *testing.T) {
		clients, svc := setup(t, salaried(""))
		clients.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(nil, errors.New("db down"))

		res, err := svc.EstimatePay(ctx, clientID, employeeID.String(), nil)

		require.NoError(t, err)
		assert.Empty(t, res.State)
		assert.Equal(t, "1483.31", res.Calculation.NetPay.String())
	})

	t.Run("default tables when no calculator is wired", func(t *testing.T) {
		e := salaried("CA")
		svc := employee.NewService(employee.ServiceDeps{
			Repo: &fakeRepo{findByIDAndClientFn: func(ctx context.Context, cid, id string) (*employee.Employee, error) {
				return e, nil
			}},
		})

		res, err := svc.EstimatePay(ctx, clientID, employeeID.String(), nil)

		require.NoError(t, err)
		assert.Equal(t, "CA", res.State)
		assert.Equal(t, "1361.31", res.Calculation.NetPay.String())
	})

	t.Run("negative hours", func(t *testing.T) {
		_, svc := setup(t, salaried("CA"))
		h := decimal.NewFromInt(-1)
		_, err := svc.EstimatePay(ctx, clientID, employeeID.String(), &h)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHours)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setup(t, nil)
		_, err := svc.EstimatePay(ctx, clientID, "abc", nil)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		_, svc := setup(t, nil)
		_, err := svc.EstimatePay(ctx, clientID, uuid.NewString(), nil)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
