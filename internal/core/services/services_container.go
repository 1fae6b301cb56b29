package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/platform/config"
	"github.com/SscSPs/blog_api/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	hasher, err := utils.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	return NewServiceContainerWith(cfg, repos, hasher), nil
}

// NewServiceContainerWith wires the services around an explicit password hasher.
func NewServiceContainerWith(cfg *config.Config, repos portsrepo.RepositoryProvider, hasher portssvc.PasswordHasher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(TokenConfigFromConfig(cfg))
	container.Auth = NewAuthService(
		repos.UserRepo,
		repos.RefreshTokenRepo,
		container.Token,
		hasher,
		AuthConfig{
			IsAdminEmail:        cfg.IsAdminEmail,
			RotateRefreshTokens: cfg.RotateRefreshTokens,
		},
	)
	container.Authorizer = NewAuthorizationService(repos.UserRepo)
	container.User = NewUserService(repos.UserRepo, repos.RefreshTokenRepo, hasher)
	container.Blog = NewBlogService(repos.BlogRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.AuthorizerSvc  = (*authorizationService)(nil)
	_ portssvc.UserSvcFacade  = (*userService)(nil)
	_ portssvc.BlogSvcFacade  = (*blogService)(nil)
)
