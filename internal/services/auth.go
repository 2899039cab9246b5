package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the fixed cost the reference deployment hashed with.
const bcryptCost = 8

// Error variables
var (
	ErrInvalidName        = errors.New("name can only contain letters, numbers, spaces, and underscores")
	ErrInvalidPassword    = errors.New("password must be at least 8 characters long and contain only letters, numbers, and underscores")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserDoesNotExist   = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
)

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)
	passwordRe = regexp.MustCompile(`^[a-zA-Z0-9_]{8,}$`)
)

// UserReader defines read-only operations for accounts.
type UserReader interface {
	GetByName(ctx context.Context, name string) (*models.AccountDB, error)
}

// UserWriter defines write operations for accounts.
type UserWriter interface {
	Save(ctx context.Context, name, passwordHash string) (int64, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// TokenIssuer defines an interface for generating session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, accountID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register validates the credentials and creates a new account. The name is
// unique byte-for-byte: "Bob" and "bob" are distinct accounts.
func (svc *AuthService) Register(ctx context.Context, name, password string) error {
	if !nameRe.MatchString(name) {
		return ErrInvalidName
	}
	if !passwordRe.MatchString(password) {
		return ErrInvalidPassword
	}

	account, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "err", err)
		return err
	}
	if account != nil {
		logger.Log.Errorw("account already exists", "name", name)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, name, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save account", "err", err)
		return err
	}

	return nil
}

// Login authenticates an account and returns a session token. The last-login
// timestamp is updated before the token is issued; if that update fails, no
// token is issued and the whole operation fails.
func (svc *AuthService) Login(ctx context.Context, name, password string) (string, error) {
	account, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "name", name)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "name", name)
		return "", ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, account.ID, time.Now()); err != nil {
		logger.Log.Errorw("failed to update last login", "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, account.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
