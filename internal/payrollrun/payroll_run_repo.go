package payrollrun

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RunQueryFilter struct {
	Status       string
	PayFrequency string
	RunDateFrom  *time.Time
	RunDateTo    *time.Time
	Search       string
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *PayrollRun) error
	CreateEntries(ctx context.Context, entries []PayrollEntry) error
	FindAllByClient(ctx context.Context, clientID string, filter RunQueryFilter) ([]PayrollRun, error)
	FindByIDAndClient(ctx context.Context, clientID, id string) (*PayrollRun, error)
	Update(ctx context.Context, run *PayrollRun) error
	Delete(ctx context.Context, clientID, id string) error
	CreateEntry(ctx context.Context, entry *PayrollEntry) error
	UpdateEntry(ctx context.Context, entry *PayrollEntry) error
	DeleteEntry(ctx context.Context, runID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background(), SkipDefaultTransaction: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(run).Error
}

func (r *repository) CreateEntries(ctx context.Context, entries []PayrollEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&entries).Error
}

func (r *repository) FindAllByClient(ctx context.Context, clientID string, filter RunQueryFilter) ([]PayrollRun, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.ClientScope(clientID)).
		Preload("Entries")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PayFrequency != "" {
		q = q.Where("pay_frequency = ?", filter.PayFrequency)
	}
	if filter.RunDateFrom != nil {
		q = q.Where("run_date >= ?", *filter.RunDateFrom)
	}
	if filter.RunDateTo != nil {
		q = q.Where("run_date <= ?", *filter.RunDateTo)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("(name ILIKE ? OR description ILIKE ?)", like, like)
	}

	var runs []PayrollRun
	err := q.Order("run_date DESC").Order("created_at DESC").Find(&runs).Error
	return runs, err
}

func (r *repository) FindByIDAndClient(ctx context.Context, clientID, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.ClientScope(clientID)).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Entries.Employee").
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Update saves the run's own columns. Entries are written through the entry
// methods.
func (r *repository) Update(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(run).Error
}

func (r *repository) Delete(ctx context.Context, clientID, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("payroll_run_id = ?", id).Delete(&PayrollEntry{}).Error; err != nil {
		return err
	}
	res := db.Scopes(tenant.ClientScope(clientID)).Delete(&PayrollRun{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateEntry(ctx context.Context, entry *PayrollEntry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

func (r *repository) UpdateEntry(ctx context.Context, entry *PayrollEntry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entry).Error
}

func (r *repository) DeleteEntry(ctx context.Context, runID, employeeID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("payroll_run_id = ? AND employee_id = ?", runID, employeeID).
		Delete(&PayrollEntry{})
	return res.RowsAffected > 0, res.Error
}
