package services

import (
	"log/slog"
	"time"

	"github.com/blogem/audit-gateway/cache"
	"github.com/blogem/audit-gateway/metrics"
	"github.com/blogem/audit-gateway/repositories"
)

// Options carries the shared collaborators services are built from.
type Options struct {
	Cache    *cache.Facade
	RoleTTL  time.Duration
	Reporter Reporter
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// Services holds all service instances
type Services struct {
	Audit    AuditService
	Roles    RoleService
	Reporter Reporter
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	return &Services{
		Audit:    NewAuditService(repos.Scopes, repos.Activities, repos.Exceptions, opts.Reporter, opts.Metrics, opts.Logger),
		Roles:    NewRoleService(repos.Roles, opts.Cache, opts.RoleTTL),
		Reporter: opts.Reporter,
	}
}
