package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/identity"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// UserService handles user management operations
type UserService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	tokenTTL  func() time.Duration
	logger    *zap.Logger
}

// NewUserService creates a new user service. Deleting a user revokes its tokens through blacklist.
func NewUserService(
	userRepo identity.UserRepository,
	blacklist auth.TokenBlacklist,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		blacklist: blacklist,
		tokenTTL:  jwtService.RefreshTokenExpiration,
		logger:    logger,
	}
}

// Create creates a user with the given role
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserInfo, error) {
	role := identity.Role(strings.ToLower(strings.TrimSpace(input.Role)))
	if role == "" {
		role = identity.RoleStaff
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, strings.ToLower(strings.TrimSpace(input.Username)))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(input.Username, input.Password, role)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	info := ToUserInfo(user)
	return &info, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// List retrieves users with pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserInfo, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = "username"
	domainFilter.OrderDir = "asc"
	domainFilter.Search = strings.TrimSpace(filter.Search)

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]UserInfo, len(users))
	for i := range users {
		out[i] = ToUserInfo(&users[i])
	}
	return out, total, nil
}

// Delete removes a user and revokes its tokens. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return shared.NewDomainError("CANNOT_DELETE_SELF", "You cannot delete your own account")
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, id.String(), s.tokenTTL()); err != nil {
		s.logger.Error("Failed to revoke tokens of deleted user", zap.Error(err))
	}

	s.logger.Info("User deleted", zap.String("user_id", id.String()), zap.String("by", actorID.String()))
	return nil
}

// BootstrapAdmin creates the first admin when no user exists yet.
// It returns false when users already exist or no credentials are configured.
func (s *UserService) BootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	count, err := s.userRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	user, err := identity.NewUser(username, password, identity.RoleAdmin)
	if err != nil {
		return false, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}

	s.logger.Info("Bootstrap admin created", zap.String("username", user.Username))
	return true, nil
}
