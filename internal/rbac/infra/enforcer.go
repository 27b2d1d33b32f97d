package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// ModelText grants a role an action on a resource. Roles may inherit other
// roles through g.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

// NewEnforcer builds an enforcer from ModelText. With a policy path the
// enforcer reads its p/g lines from that CSV file.
func NewEnforcer(policyPath string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, err
	}
	if policyPath == "" {
		return casbin.NewEnforcer(m)
	}
	return casbin.NewEnforcer(m, fileadapter.NewAdapter(policyPath))
}
