package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/thecoders/cartunn-backend/internal/auth"
	"github.com/thecoders/cartunn-backend/internal/config"
	"github.com/thecoders/cartunn-backend/internal/domain"
	"github.com/thecoders/cartunn-backend/internal/repository"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// SignUpCommand carries credentials and an optional role list.
type SignUpCommand struct {
	Username string
	Password string
	Roles    []string
}

// SignInCommand carries the sign-in identifier and raw credential.
type SignInCommand struct {
	Username string
	Password string
}

// IamService coordinates account creation and sign-in.
type IamService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewIamService builds the service.
func NewIamService(cfg config.Config, users repository.UserRepository) *IamService {
	return &IamService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SignUp creates a user with a normalized role set. A nil or empty role list
// becomes the single default role.
func (s *IamService) SignUp(ctx context.Context, cmd SignUpCommand) (*domain.User, error) {
	roles := make([]domain.Role, 0, len(cmd.Roles))
	for _, name := range cmd.Roles {
		role, err := domain.ParseRole(name)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), map[string]any{"role": name})
		}
		roles = append(roles, role)
	}
	roles = domain.NormalizeRoles(roles)

	taken, err := s.users.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure("user", err)
	}
	if taken {
		return nil, apperrors.NewDuplicateKey("user", cmd.Username)
	}

	hash, err := auth.HashPassword(cmd.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     cmd.Username,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperrors.NewPersistenceFailure("user", err)
	}
	return user, nil
}

// SignIn verifies the credential and issues a token. An unknown identifier
// fails the same way as a wrong password so that sign-in never reveals
// whether a username exists.
func (s *IamService) SignIn(ctx context.Context, cmd SignInCommand) (*domain.User, string, error) {
	user, err := s.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.NewInvalidCredentials()
		}
		return nil, "", apperrors.NewPersistenceFailure("user", err)
	}
	if err := auth.ComparePassword(user.PasswordHash, cmd.Password); err != nil {
		return nil, "", apperrors.NewInvalidCredentials()
	}

	token, _, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// TokenManager exposes the underlying token manager.
func (s *IamService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
