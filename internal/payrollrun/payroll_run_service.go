package payrollrun

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/client"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/paycalc"
	payrollrunerrors "go-payroll/internal/payrollrun/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payroll_run_service.go -destination=mock/payroll_run_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, clientID string, req CreatePayrollRunRequest) (PayrollRunResponse, error)
	GetAll(ctx context.Context, clientID string, filter GetPayrollRunsFilterRequest) ([]PayrollRunResponse, error)
	GetByID(ctx context.Context, clientID, id string) (PayrollRunResponse, error)
	Update(ctx context.Context, clientID, id string, req UpdatePayrollRunRequest) (PayrollRunResponse, error)
	Delete(ctx context.Context, clientID, id string) error
	AddEmployee(ctx context.Context, clientID, id, employeeID string) (EntryResponse, error)
	RemoveEmployee(ctx context.Context, clientID, id, employeeID string) error
	Transition(ctx context.Context, clientID, id string, target Status) (PayrollRunResponse, error)
	Totals(ctx context.Context, clientID, id string) (TotalsResponse, error)
	Readiness(ctx context.Context, clientID, id string) (ReadinessResponse, error)
	Recalculate(ctx context.Context, clientID, id string) (PayrollRunResponse, error)
	RecalculateEntry(ctx context.Context, clientID, id, employeeID string) (EntryResponse, error)
	PayStub(ctx context.Context, clientID, id, employeeID string) (PayStub, error)
}

type ServiceDeps struct {
	DB         *sql.DB
	Repo       Repository
	Employees  employee.Repository
	Clients    client.Repository
	Calculator *paycalc.Calculator
	Outbox     kafka.OutboxRepository
	Audit      bootstrap.AuditLogger
	Now        func() time.Time
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	clients    client.Repository
	calculator *paycalc.Calculator
	outbox     kafka.OutboxRepository
	audit      bootstrap.AuditLogger
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(deps ServiceDeps, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrollrun.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollrun.service")
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
		employees:  deps.Employees,
		clients:    deps.Clients,
		calculator: calc,
		outbox:     deps.Outbox,
		audit:      deps.Audit,
		now:        now,
		logger:     l,
	}
}

func (s *service) Create(
	ctx context.Context,
	clientID string,
	req CreatePayrollRunRequest,
) (PayrollRunResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll run requested",
		zap.String("request_id", rid),
		zap.String("client_id", clientID),
		zap.Int("employees", len(req.EmployeeIDs)),
	)

	clientUUID, err := uuid.Parse(clientID)
	if err != nil {
		return PayrollRunResponse{}, apperror.InvalidField("client_id")
	}

	ids := uniqueIDs(req.EmployeeIDs)
	if len(ids) == 0 {
		return PayrollRunResponse{}, payrollrunerrors.ErrNoEmployeesSelected
	}

	in := PayrollRun{
		ClientID:     clientUUID,
		Name:         req.Name,
		Description:  req.Description,
		Notes:        req.Notes,
		PayFrequency: paycalc.PayFrequency(req.PayFrequency),
	}
	var fieldErrs []apperror.FieldError
	in.RunDate = parseDate("run_date", req.RunDate, &fieldErrs)
	in.PayPeriodStart = parseDate("pay_period_start", req.PayPeriodStart, &fieldErrs)
	in.PayPeriodEnd = parseDate("pay_period_end", req.PayPeriodEnd, &fieldErrs)
	if len(fieldErrs) > 0 {
		return PayrollRunResponse{}, apperror.Validation(fieldErrs...)
	}

	run := NewPayrollRun(in, s.now())
	if errs := run.Validate(); len(errs) > 0 {
		s.logger.Warn("create payroll run validation failed",
			zap.String("request_id", rid),
			zap.Int("errors", len(errs)),
		)
		return PayrollRunResponse{}, apperror.Validation(errs...)
	}

	employees, err := s.employees.FindByIDsAndClient(ctx, clientID, ids)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	if len(employees) != len(ids) {
		return PayrollRunResponse{}, payrollrunerrors.ErrEmployeeNotInClient
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create payroll run begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, run); err != nil {
		s.logger.Error("create payroll run persist failed", zap.Error(err))
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	entries := make([]PayrollEntry, 0, len(employees))
	for i := range employees {
		entries = append(entries, *NewEntry(run.ID, &employees[i], s.calculator))
	}
	if err := qtx.CreateEntries(ctx, entries); err != nil {
		s.logger.Error("create payroll run entries failed",
			zap.String("payroll_run_id", run.ID.String()),
			zap.Error(err),
		)
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create payroll run commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}

	for i := range entries {
		entries[i].Employee = entryEmployee(&employees[i])
	}
	run.Entries = entries

	s.logger.Info("create payroll run success",
		zap.String("request_id", rid),
		zap.String("payroll_run_id", run.ID.String()),
		zap.Int("entries", len(entries)),
	)
	s.record(ctx, "payroll_run.created", run, "Payroll run created", nil)

	return mapToResponse(*run, true), nil
}

func (s *service) GetAll(
	ctx context.Context,
	clientID string,
	filter GetPayrollRunsFilterRequest,
) ([]PayrollRunResponse, error) {
	var fieldErrs []apperror.FieldError
	q := RunQueryFilter{
		Status:       filter.Status,
		PayFrequency: filter.PayFrequency,
		RunDateFrom:  parseDate("from", filter.From, &fieldErrs),
		RunDateTo:    parseDate("to", filter.To, &fieldErrs),
		Search:       filter.Q,
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.Validation(fieldErrs...)
	}

	runs, err := s.repo.FindAllByClient(ctx, clientID, q)
	if err != nil {
		s.logger.Error("get all payroll runs failed", zap.String("client_id", clientID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	out := make([]PayrollRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, mapToResponse(r, false))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, clientID, id string) (PayrollRunResponse, error) {
	run, err := s.find(ctx, s.repo, clientID, id)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	return mapToResponse(*run, true), nil
}

func (s *service) Update(
	ctx context.Context,
	clientID, id string,
	req UpdatePayrollRunRequest,
) (PayrollRunResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := s.find(ctx, qtx, clientID, id)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	if !run.IsEditable() {
		return PayrollRunResponse{}, payrollrunerrors.ErrRunNotEditable
	}

	var fieldErrs []apperror.FieldError
	if req.Name != nil {
		run.Name = *req.Name
	}
	if req.Description != nil {
		run.Description = *req.Description
	}
	if req.Notes != nil {
		run.Notes = *req.Notes
	}
	if req.PayFrequency != nil {
		f, _ := paycalc.ParseFrequency(*req.PayFrequency)
		run.PayFrequency = f
	}
	if req.RunDate != nil {
		if d := parseDate("run_date", *req.RunDate, &fieldErrs); d != nil {
			run.RunDate = d
		}
	}
	if req.PayPeriodStart != nil {
		if d := parseDate("pay_period_start", *req.PayPeriodStart, &fieldErrs); d != nil {
			run.PayPeriodStart = d
		}
	}
	if req.PayPeriodEnd != nil {
		if d := parseDate("pay_period_end", *req.PayPeriodEnd, &fieldErrs); d != nil {
			run.PayPeriodEnd = d
		}
	}
	fieldErrs = append(fieldErrs, run.Validate()...)
	if len(fieldErrs) > 0 {
		return PayrollRunResponse{}, apperror.Validation(fieldErrs...)
	}

	if err := qtx.Update(ctx, run); err != nil {
		s.logger.Error("update payroll run failed", zap.String("payroll_run_id", id), zap.Error(err))
		return PayrollRunResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollRunResponse{}, err
	}

	return mapToResponse(*run, true), nil
}

func (s *service) Delete(ctx context.Context, clientID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := s.find(ctx, qtx, clientID, id)
	if err != nil {
		return err
	}
	if !run.CanDelete() {
		return payrollrunerrors.ErrRunProcessed
	}

	if err := qtx.Delete(ctx, clientID, id); err != nil {
		s.logger.Error("delete payroll run failed", zap.String("payroll_run_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.record(ctx, "payroll_run.deleted", run, "Payroll run deleted", nil)
	return nil
}

// AddEmployee snapshots one more employee into an editable run.
func (s *service) AddEmployee(ctx context.Context, clientID, id, employeeID string) (EntryResponse, error) {
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return EntryResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := s.find(ctx, qtx, clientID, id)
	if err != nil {
		return EntryResponse{}, err
	}
	if !run.IsEditable() {
		return EntryResponse{}, payrollrunerrors.ErrRunNotEditable
	}
	if run.HasEmployee(empUUID) {
		return EntryResponse{}, payrollrunerrors.ErrEmployeeAlreadyInRun
	}

	emp, err := s.findEmployee(ctx, clientID, employeeID)
	if err != nil {
		return EntryResponse{}, err
	}

	entry := NewEntry(run.ID, emp, s.calculator)
	if err := qtx.CreateEntry(ctx, entry); err != nil {
		s.logger.Warn("add employee to payroll run failed",
			zap.String("payroll_run_id", id),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EntryResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EntryResponse{}, err
	}

	entry.Employee = entryEmployee(emp)
	return mapEntryResponse(*entry, run.PayFrequency), nil
}

func (s *service) RemoveEmployee(ctx context.Context, clientID, id, employeeID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := s.find(ctx, qtx, clientID, id)
	if err != nil {
		return err
	}
	if !run.IsEditable() {
		return payrollrunerrors.ErrRunNotEditable
	}

	removed, err := qtx.DeleteEntry(ctx, run.ID.String(), employeeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !removed {
		return payrollrunerrors.ErrEntryNotFound
	}

	return tx.Commit()
}

// Transition moves the run along the workflow on behalf of the actor in ctx.
// The status change and its event are committed together.
func (s *service) Transition(ctx context.Context, clientID, id string, target Status) (PayrollRunResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, ok := ParseStatus(string(target)); !ok {
		return PayrollRunResponse{}, payrollrunerrors.ErrInvalidStatus
	}
	actor := contextutil.GetActor(ctx)
	if actor == "" {
		return PayrollRunResponse{}, payrollrunerrors.ErrActorRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := s.find(ctx, qtx, clientID, id)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	from := run.Status
	if target == StatusProcessed && from.CanTransitionTo(target) {
		if missing := run.ProcessingErrors(); len(missing) > 0 {
			s.logger.Warn("payroll run not ready for processing",
				zap.String("request_id", rid),
				zap.String("payroll_run_id", id),
				zap.Strings("processing_errors", missing),
			)
			return PayrollRunResponse{}, payrollrunerrors.ErrNotReadyForProcessing.WithDetails(map[string]any{
				"processing_errors": missing,
			})
		}
	}

	if err := run.TransitionTo(target, actor, s.now()); err != nil {
		s.logger.Warn("payroll run transition rejected",
			zap.String("request_id", rid),
			zap.String("payroll_run_id", id),
			zap.String("from", string(from)),
			zap.String("to", string(target)),
		)
		return PayrollRunResponse{}, err
	}

	if err := qtx.Update(ctx, run); err != nil {
		s.logger.Error("payroll run transition persist failed", zap.String("payroll_run_id", id), zap.Error(err))
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueStatusChange(ctx, tx, run, from); err != nil {
		s.logger.Error("payroll run outbox persist failed", zap.String("payroll_run_id", id), zap.Error(err))
		return PayrollRunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("payroll run transition commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}

	s.logger.Info("payroll run status changed",
		zap.String("request_id", rid),
		zap.String("payroll_run_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(target)),
		zap.String("actor", actor),
	)
	s.record(ctx, "payroll_run.status_changed", run,
		"Payroll run moved from "+string(from)+" to "+string(target),
		map[string]any{"from": from, "to": target},
	)

	return mapToResponse(*run, true), nil
}

func (s *service) Totals(ctx context.Context, clientID, id string) (TotalsResponse, error) {
	run, err := s.find(ctx, s.repo, clientID, id)
	if err != nil {
		return TotalsResponse{}, err
	}
	return TotalsResponse{PayrollRunID: run.ID.String(), Totals: run.Totals()}, nil
}

func (s *service) Readiness(ctx context.Context, clientID, id string) (ReadinessResponse, error) {
	run, err := s.find(ctx, s.repo, clientID, id)
	if err != nil {
		return ReadinessResponse{}, err
	}
	missing := run.ProcessingErrors()
	if missing == nil {
		missing = []string{}
	}
	resp := ReadinessResponse{
		PayrollRunID:     run.ID.String(),
		Ready:            len(missing) == 0,
		ProcessingErrors: missing,
	}
	if s.outbox != nil {
		n, err := s.outbox.CountUnsent(ctx, kafka.AggregatePayrollRun, resp.PayrollRunID)
		if err != nil {
			s.logger.Warn("count unsent run events failed",
				zap.String("payroll_run_id", resp.PayrollRunID),
				zap.Error(err),
			)
		}
		resp.UnpublishedEvents = n
	}
	return resp, nil
}

// Recalculate refreshes gross and net for every entry of an editable run.
func (s *service) Recalculate(ctx context.Context, clientID, id string) (PayrollRunResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := s.find(ctx, qtx, clientID, id)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	if !run.IsEditable() {
		return PayrollRunResponse{}, payrollrunerrors.ErrRunNotEditable
	}

	ids := make([]string, 0, len(run.Entries))
	for _, e := range run.Entries {
		ids = append(ids, e.EmployeeID.String())
	}
	employees, err := s.employees.FindByIDsAndClient(ctx, clientID, ids)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	byID := make(map[uuid.UUID]*employee.Employee, len(employees))
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
	}

	_, clientAddress := s.clientInfo(ctx, clientID)
	for i := range run.Entries {
		entry := &run.Entries[i]
		emp, ok := byID[entry.EmployeeID]
		if !ok {
			s.logger.Warn("payroll entry employee missing, skipping",
				zap.String("payroll_run_id", id),
				zap.String("employee_id", entry.EmployeeID.String()),
			)
			continue
		}
		s.recalculate(entry, emp, clientAddress)
		if err := qtx.UpdateEntry(ctx, entry); err != nil {
			return PayrollRunResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollRunResponse{}, err
	}

	s.logger.Info("payroll run recalculated",
		zap.String("payroll_run_id", id),
		zap.Int("entries", len(run.Entries)),
	)
	return mapToResponse(*run, true), nil
}

func (s *service) RecalculateEntry(ctx context.Context, clientID, id, employeeID string) (EntryResponse, error) {
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return EntryResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	run, err := s.find(ctx, qtx, clientID, id)
	if err != nil {
		return EntryResponse{}, err
	}
	if !run.IsEditable() {
		return EntryResponse{}, payrollrunerrors.ErrRunNotEditable
	}
	entry := run.entryFor(empUUID)
	if entry == nil {
		return EntryResponse{}, payrollrunerrors.ErrEntryNotFound
	}

	emp, err := s.findEmployee(ctx, clientID, employeeID)
	if err != nil {
		return EntryResponse{}, err
	}

	_, clientAddress := s.clientInfo(ctx, clientID)
	s.recalculate(entry, emp, clientAddress)
	if err := qtx.UpdateEntry(ctx, entry); err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EntryResponse{}, err
	}

	return mapEntryResponse(*entry, run.PayFrequency), nil
}

// PayStub assembles the stub for one entry. Taxes are estimated from the
// entry's stored gross.
func (s *service) PayStub(ctx context.Context, clientID, id, employeeID string) (PayStub, error) {
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return PayStub{}, employeeerrors.ErrInvalidEmployeeID
	}

	run, err := s.find(ctx, s.repo, clientID, id)
	if err != nil {
		return PayStub{}, err
	}
	entry := run.entryFor(empUUID)
	if entry == nil {
		return PayStub{}, payrollrunerrors.ErrEntryNotFound
	}

	emp, err := s.findEmployee(ctx, clientID, employeeID)
	if err != nil {
		return PayStub{}, err
	}

	clientName, clientAddress := s.clientInfo(ctx, clientID)
	state := s.calculator.ResolveState(emp.State, emp.Address, clientAddress)

	return PayStub{
		ClientName:   clientName,
		EmployeeName: emp.Name,
		RunName:      run.Name,
		PeriodStart:  formatDate(run.PayPeriodStart),
		PeriodEnd:    formatDate(run.PayPeriodEnd),
		RunDate:      formatDate(run.RunDate),
		Frequency:    run.PayFrequency,
		Entry:        *entry,
		Estimate:     s.calculator.Estimate(entry.GrossPay, emp.PayProfile(state)),
	}, nil
}

func (s *service) recalculate(entry *PayrollEntry, emp *employee.Employee, clientAddress string) {
	entry.RecalculateGrossPay(emp, s.calculator)
	state := s.calculator.ResolveState(emp.State, emp.Address, clientAddress)
	entry.RecalculateNetPay(emp, state, s.calculator)
	entry.Employee = entryEmployee(emp)
}

func (s *service) find(ctx context.Context, repo Repository, clientID, id string) (*PayrollRun, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollrunerrors.ErrInvalidPayrollRunID
	}
	run, err := repo.FindByIDAndClient(ctx, clientID, id)
	if err != nil {
		s.logger.Warn("get payroll run failed",
			zap.String("client_id", clientID),
			zap.String("payroll_run_id", id),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return run, nil
}

func (s *service) findEmployee(ctx context.Context, clientID, employeeID string) (*employee.Employee, error) {
	emp, err := s.employees.FindByIDAndClient(ctx, clientID, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return emp, nil
}

// clientInfo returns the client's name and an address string for state
// resolution. Lookup failures degrade to blanks.
func (s *service) clientInfo(ctx context.Context, clientID string) (name, address string) {
	if s.clients == nil {
		return "", ""
	}
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		s.logger.Warn("client lookup failed", zap.String("client_id", clientID), zap.Error(err))
		return "", ""
	}
	address = c.Address
	if c.State != "" {
		address = c.State + " " + c.Address
	}
	return c.Name, address
}

func (s *service) enqueueStatusChange(ctx context.Context, tx *sql.Tx, run *PayrollRun, from Status) error {
	if s.outbox == nil {
		return nil
	}
	totals := run.Totals()
	rid := contextutil.GetRequestID(ctx)
	event := events.PayrollRunStatusChangedEvent{
		EventType:    events.PayrollRunStatusChangedEventType,
		RequestID:    rid,
		PayrollRunID: run.ID.String(),
		ClientID:     run.ClientID.String(),
		From:         string(from),
		To:           string(run.Status),
		ChangedBy:    run.StatusChangedBy,
		TotalGross:   totals.TotalGross.StringFixed(2),
		TotalNet:     totals.TotalNet.StringFixed(2),
		EntryCount:   totals.EmployeeCount,
		OccurredAt:   s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: kafka.AggregatePayrollRun,
		AggregateID:   run.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollRunStatusTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) record(ctx context.Context, action string, run *PayrollRun, msg string, meta map[string]any) {
	if s.audit == nil {
		return
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:     action,
		Actor:      contextutil.GetActor(ctx),
		Resource:   "payroll_run",
		ResourceID: run.ID.String(),
		Message:    msg,
		OccurredAt: s.now().UTC(),
		Meta:       meta,
	})
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func parseDate(field, v string, errs *[]apperror.FieldError) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		*errs = append(*errs, apperror.FieldError{Field: field, Message: "must be formatted YYYY-MM-DD"})
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func entryEmployee(e *employee.Employee) *EntryEmployee {
	return &EntryEmployee{
		ID:             e.ID,
		Name:           e.Name,
		Title:          e.Title,
		EmploymentType: e.EmploymentType,
	}
}

func mapEntryResponse(e PayrollEntry, f paycalc.PayFrequency) EntryResponse {
	resp := EntryResponse{
		ID:          e.ID.String(),
		EmployeeID:  e.EmployeeID.String(),
		HoursWorked: e.HoursWorked,
		PayRate:     e.PayRate,
		GrossPay:    e.GrossPay,
		NetPay:      e.NetPay,
		Deductions:  e.Deductions(),
		Breakdown:   e.Breakdown(f),
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
		resp.EmploymentType = string(e.Employee.EmploymentType)
	}
	return resp
}

func mapToResponse(r PayrollRun, withEntries bool) PayrollRunResponse {
	allowed := r.Status.AllowedTransitions()
	transitions := make([]string, 0, len(allowed))
	for _, t := range allowed {
		transitions = append(transitions, string(t))
	}

	resp := PayrollRunResponse{
		ID:                 r.ID.String(),
		ClientID:           r.ClientID.String(),
		Name:               r.Name,
		Description:        r.Description,
		Notes:              r.Notes,
		Status:             string(r.Status),
		StatusDisplay:      r.Status.Display(),
		AllowedTransitions: transitions,
		Editable:           r.IsEditable(),
		PayFrequency:       string(r.PayFrequency),
		RunDate:            formatDate(r.RunDate),
		PayPeriodStart:     formatDate(r.PayPeriodStart),
		PayPeriodEnd:       formatDate(r.PayPeriodEnd),
		StatusChangedBy:    r.StatusChangedBy,
		Totals:             r.Totals(),
	}
	if r.StatusChangedAt != nil {
		resp.StatusChangedAt = r.StatusChangedAt.Format(time.RFC3339)
	}
	if withEntries {
		resp.Entries = make([]EntryResponse, 0, len(r.Entries))
		for _, e := range r.Entries {
			resp.Entries = append(resp.Entries, mapEntryResponse(e, r.PayFrequency))
		}
	}
	return resp
}
