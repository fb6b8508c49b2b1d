package services

import (
	"context"
	"errors"
	"log"
	"time"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/core/domain"
	"residential-hub/internal/pkg/password"
	"residential-hub/internal/pkg/token"

	"github.com/google/uuid"
)

// AuthService handles registration and session lifecycle. Sessions are
// opaque bearer tokens held server-side: a token is valid until it is
// explicitly revoked or the session store is cleared. There is no expiry,
// refresh, or rotation, and one account may hold any number of concurrent
// sessions.
type AuthService struct {
	accountRepo repositories.AccountRepository
	sessionRepo repositories.SessionRepository
}

// NewAuthService creates a new auth service
func NewAuthService(accountRepo repositories.AccountRepository, sessionRepo repositories.SessionRepository) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the issued token and the public account view.
type LoginResult struct {
	Token   string
	Account *models.AccountResponse
}

// Register creates a new resident account. Fails with domain.ErrEmailTaken
// when the email is already registered; the email key is case-sensitive.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.AccountResponse, error) {
	exists, err := s.accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:    input.Email,
		Password: hashed,
		Name:     input.Name,
		Role:     domain.RoleResident,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	log.Printf("✅ Account registered: %s (id=%d)", account.Email, account.ID)
	return account.ToResponse(), nil
}

// Login authenticates an account and issues a session. An unknown email and
// a wrong password both fail with domain.ErrInvalidCredentials; the caller
// cannot tell which. The session stores a copy of the role fixed at
// issuance.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	account, err := s.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, account.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	bearer, err := token.New()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		TokenHash: password.HashToken(bearer),
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		IssuedAt:  time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("✅ Login: %s (session=%s)", account.Email, session.ID)
	return &LoginResult{
		Token:   bearer,
		Account: account.ToResponse(),
	}, nil
}

// Logout revokes the session for the given bearer token. Revoking an
// absent or already-revoked token is a no-op, never an error.
func (s *AuthService) Logout(ctx context.Context, bearer string) error {
	if bearer == "" {
		return nil
	}
	return s.sessionRepo.DeleteByTokenHash(ctx, password.HashToken(bearer))
}

// Resolve looks up the session for a bearer token. Pure lookup, no side
// effects; fails with domain.ErrSessionNotFound when the token does not
// resolve. The account behind the session is not revalidated.
func (s *AuthService) Resolve(ctx context.Context, bearer string) (*models.Session, error) {
	if bearer == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessionRepo.GetByTokenHash(ctx, password.HashToken(bearer))
}
