package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lending-ledger/internal/domain/auth"
	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/jwt"
	"lending-ledger/internal/pkg/password"
	"lending-ledger/internal/usecase/queries"
	"lending-ledger/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Group     string
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

// Register creates the account and signs it in.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, markKind(err)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, markKind(err)
	}
	name, err := user.NewPersonName(in.FirstName, in.LastName)
	if err != nil {
		return nil, markKind(err)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, markKind(err)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(email, name, in.Group, hash, role, a.clock.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return nil, markKind(err)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		return nil, markKind(err)
	}

	pair, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	a.logger.Info("user registered", "user_id", u.ID(), "role", u.Role())
	return &LoginResult{UserID: u.ID(), Role: u.Role(), TokenPair: pair}, nil
}

// Login is scoped to the role the caller picked. Unknown accounts, a role
// mismatch and a wrong password are indistinguishable to the caller.
func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	view, hashed, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	if !view.IsActive || view.Role != credentials.Role().String() {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	if err := password.ComparePassword(hashed, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	pair, err := a.issue(view.ID, credentials.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().TouchLastLogin(ctx, view.ID, a.clock.Now().UTC())
	})
	if err != nil {
		// login already succeeded
		a.logger.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, Role: credentials.Role(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrTokenValidation), errs.ErrUnauthorized)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.Mark(ErrTokenValidation, errs.ErrUnauthorized)
	}

	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil || !view.IsActive {
		return nil, errs.Mark(ErrTokenValidation, errs.ErrUnauthorized)
	}
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issue(view.ID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
