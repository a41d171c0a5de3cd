package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hepi-staff/internal/domain"
	"hepi-staff/internal/repository"
)

var (
	ErrAuthNotConfigured  = errors.New("auth service not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService valida credenciales y entrega pares de tokens.
type AuthService struct {
	logger   *zap.Logger
	accounts repository.AccountRepository
	tokens   *JWTService
}

func NewAuthService(logger *zap.Logger, accounts repository.AccountRepository, tokens *JWTService) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{logger: logger, accounts: accounts, tokens: tokens}
}

// Login compara la contraseña con el hash bcrypt de la cuenta. Cuenta inexistente y
// contraseña incorrecta devuelven el mismo error.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Account, TokenPair, error) {
	if s == nil || s.accounts == nil || s.tokens == nil {
		return domain.Account{}, TokenPair{}, ErrAuthNotConfigured
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, TokenPair{}, ErrInvalidCredentials
		}
		return domain.Account{}, TokenPair{}, err
	}
	if account.PasswordHash == "" {
		return domain.Account{}, TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("account_id", account.ID))
		return domain.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.tokens.GeneratePair(account)
	if err != nil {
		return domain.Account{}, TokenPair{}, err
	}
	return account, pair, nil
}

func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	if s == nil || s.tokens == nil {
		return TokenPair{}, ErrAuthNotConfigured
	}
	return s.tokens.RefreshPair(refreshToken)
}

func (s *AuthService) Logout(refreshToken string) error {
	if s == nil || s.tokens == nil {
		return ErrAuthNotConfigured
	}
	return s.tokens.RevokeRefresh(refreshToken)
}

// HashPassword se usa al dar de alta cuentas (seed, scripts).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
