package employee

import (
	"context"
	"database/sql"
	"strings"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

type EmployeeQueryFilter struct {
	Status         string
	EmploymentType string
	PayFrequency   string
	Search         string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAllByClient(ctx context.Context, clientID string, filter EmployeeQueryFilter) ([]Employee, error)
	FindOptionsByClient(ctx context.Context, clientID string) ([]Employee, error)
	FindByIDAndClient(ctx context.Context, clientID, id string) (*Employee, error)
	FindByIDsAndClient(ctx context.Context, clientID string, ids []string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs every query of the returned repository on tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background(), SkipDefaultTransaction: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByClient(ctx context.Context, clientID string, filter EmployeeQueryFilter) ([]Employee, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.ClientScope(clientID))

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmploymentType != "" {
		q = q.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.PayFrequency != "" {
		q = q.Where("pay_frequency = ?", filter.PayFrequency)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("(name ILIKE ? OR email ILIKE ? OR department ILIKE ?)", like, like, like)
	}

	var employees []Employee
	err := q.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptionsByClient(ctx context.Context, clientID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.ClientScope(clientID)).
		Select("id", "client_id", "name", "title", "employment_type", "pay_frequency", "status").
		Where("status = ?", StatusActive).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndClient(ctx context.Context, clientID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.ClientScope(clientID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByIDsAndClient silently drops ids that belong to another client.
func (r *repository) FindByIDsAndClient(ctx context.Context, clientID string, ids []string) ([]Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.ClientScope(clientID)).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}
