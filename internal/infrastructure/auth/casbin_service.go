package auth

import (
	"log"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// CasbinService owns the policy enforcer, persisted through the gorm adapter
// alongside the election store.
type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds the enforcer from the model file and loads any
// persisted policies.
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{e}, nil
}

// SeedDefaultPolicies installs the portal role policies on first boot. The
// voter role reaches the voting view only; the admin role owns /admin.
func (s *CasbinService) SeedDefaultPolicies() {
	policies, _ := s.E.GetPolicy()
	if len(policies) > 0 {
		return
	}
	s.E.AddPolicy("role_admin", "/admin/*", "(GET|POST)")
	s.E.AddPolicy("role_voter", "/vote/ballot", "GET")
	s.E.AddPolicy("role_voter", "/vote", "POST")
	s.E.AddPolicy("role_voter", "/auth/logout", "POST")
	s.E.AddPolicy("role_admin", "/auth/logout", "POST")
	_ = s.E.SavePolicy()
	log.Println("casbin: seeded default policies")
}
