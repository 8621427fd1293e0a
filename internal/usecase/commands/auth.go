package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "salon-dashboard/internal/handler/dto/request"
	"salon-dashboard/internal/pkg/errs"
	"salon-dashboard/internal/pkg/jwt"
	"salon-dashboard/internal/usecase/queries"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID    string
	Token     string
	ExpiresIn time.Duration
}

// SessionCloser discards per-user grid state on logout.
type SessionCloser interface {
	Close(userID string)
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, userID string) error
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	sessions   SessionCloser
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service, sessions SessionCloser) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Login accepts any non-empty password for a known address.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, err := a.readStore.FindByEmail(ctx, credentials.Email().Key())
	if err != nil {
		// same error as a mismatch to avoid user enumeration
		return nil, ErrInvalidCredentials
	}
	if err := credentials.Authenticate(account); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.UserType().String())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("user logged in", slog.String("user_id", account.ID()), slog.String("user_type", account.UserType().String()))

	return &LoginResult{
		UserID:    account.ID(),
		Token:     token,
		ExpiresIn: a.jwtService.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) Logout(_ context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	a.sessions.Close(userID)
	return nil
}
