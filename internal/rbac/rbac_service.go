package rbac

import (
	"context"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(role, resource, action string) (bool, error)
	Permissions(role string) ([]Permission, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	fromFile bool
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService wraps enforcer. fromFile tells LoadPolicy to re-read the
// enforcer's adapter instead of seeding DefaultPolicies. repo may be nil.
func NewService(repo Repository, enforcer *casbin.Enforcer, fromFile bool, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		fromFile: fromFile,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fromFile {
		if err := s.enforcer.LoadPolicy(); err != nil {
			return err
		}
	} else {
		s.enforcer.ClearPolicy()
		if _, err := s.enforcer.AddPolicies(DefaultPolicies()); err != nil {
			return err
		}
		if _, err := s.enforcer.AddGroupingPolicies(DefaultGroupings()); err != nil {
			return err
		}
	}

	if s.repo == nil {
		return nil
	}

	rows, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := s.enforcer.AddPolicy(strings.ToUpper(row.Role), row.Resource, row.Action); err != nil {
			return err
		}
	}
	s.logger.Info("rbac policy loaded",
		zap.Bool("from_file", s.fromFile),
		zap.Int("extra_permissions", len(rows)),
	)

	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(strings.ToUpper(role), resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Permissions(role string) ([]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(strings.ToUpper(role))
	if err != nil {
		return nil, err
	}

	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, Permission{Role: p[0], Resource: p[1], Action: p[2]})
	}
	return out, nil
}
