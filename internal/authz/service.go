package authz

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiV1Prefix     = "/api/v1"
	casbinTableName = "casbin_rule"
	userSubjectFmt  = "user:%d"

	// RoleSeller is granted to users with an active seller profile.
	RoleSeller = "role:seller"
)

const defaultRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// Policy is one allow rule.
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// Service wraps the Casbin enforcer for route-level authorization.
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService creates the authorization service with policies persisted
// through GORM.
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}

	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}

	m, err := model.NewModelFromString(defaultRBACModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}

	return &Service{enforcer: enforcer}, nil
}

// BootstrapSellerRole installs the seller role's route policies.
func (s *Service) BootstrapSellerRole() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	policies := []Policy{
		{Subject: RoleSeller, Object: "/seller/*", Action: "*"},
	}
	for _, policy := range policies {
		if _, err := s.enforcer.AddPolicy(policy.Subject, NormalizeObject(policy.Object), policy.Action); err != nil {
			return fmt.Errorf("seed seller policy failed: %w", err)
		}
	}
	return nil
}

// Enforce runs one authorization check.
func (s *Service) Enforce(sub, obj, act string) (bool, error) {
	if s == nil || s.enforcer == nil {
		return false, fmt.Errorf("authz service unavailable")
	}
	return s.enforcer.Enforce(strings.TrimSpace(sub), NormalizeObject(obj), NormalizeAction(act))
}

// EnforceUser checks a user's access to an object/action.
func (s *Service) EnforceUser(userID uint, obj, act string) (bool, error) {
	return s.Enforce(SubjectForUser(userID), obj, act)
}

// GrantSellerRole links a user to the seller role.
func (s *Service) GrantSellerRole(userID uint) error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	if _, err := s.enforcer.AddGroupingPolicy(SubjectForUser(userID), RoleSeller); err != nil {
		return fmt.Errorf("grant seller role failed: %w", err)
	}
	return nil
}

// RevokeSellerRole unlinks a user from the seller role.
func (s *Service) RevokeSellerRole(userID uint) error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	if _, err := s.enforcer.RemoveGroupingPolicy(SubjectForUser(userID), RoleSeller); err != nil {
		return fmt.Errorf("revoke seller role failed: %w", err)
	}
	return nil
}

// SubjectForUser builds the enforcement subject for a user ID.
func SubjectForUser(userID uint) string {
	return fmt.Sprintf(userSubjectFmt, userID)
}

// NormalizeObject strips the API prefix so policies stay stable across
// version prefixes.
func NormalizeObject(obj string) string {
	trimmed := strings.TrimSpace(obj)
	if strings.HasPrefix(trimmed, apiV1Prefix) {
		trimmed = strings.TrimPrefix(trimmed, apiV1Prefix)
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return trimmed
}

// NormalizeAction uppercases the HTTP method.
func NormalizeAction(act string) string {
	return strings.ToUpper(strings.TrimSpace(act))
}
