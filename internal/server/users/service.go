package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/server/auth"
)

// Field length constraints carried over from the registration form.
const (
	fullNameMinLen = 4
	fullNameMaxLen = 40
	usernameMinLen = 4
	usernameMaxLen = 40
	emailMinLen    = 16
	emailMaxLen    = 40
	passwordMinLen = 6
	passwordMaxLen = 40
)

// Service handles registration and login. Login mints the session token the
// web layer stores in a cookie; a session is nothing more than a valid token
// bound to a username.
type Service struct {
	repo     Repository
	hasher   *auth.PasswordHasher
	secret   []byte
	tokenTTL time.Duration
}

func NewService(repo Repository, hasher *auth.PasswordHasher, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register validates the fields, checks username/email availability, and
// creates the account. Conflicts are reported in priority order: both taken,
// then username, then email. The check is a fast path only; the unique
// indexes decide when two registrations race.
func (s *Service) Register(ctx context.Context, fullName, username, email, password string) (int64, error) {
	if err := validateRegistration(fullName, username, email, password); err != nil {
		return 0, err
	}

	usernameTaken, err := exists(s.repo.GetByUsername(ctx, username))
	if err != nil {
		return 0, err
	}
	emailTaken, err := exists(s.repo.GetByEmail(ctx, email))
	if err != nil {
		return 0, err
	}

	switch {
	case usernameTaken && emailTaken:
		return 0, common.ErrUsernameAndEmailTaken
	case usernameTaken:
		return 0, common.ErrUsernameTaken
	case emailTaken:
		return 0, common.ErrEmailTaken
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: digest,
	})
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// Login verifies the credentials and returns a fresh session token bound to
// the account's username.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNoSuchEmail
		}
		return "", fmt.Errorf("%w: %w", common.ErrInternal, err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return "", common.ErrBadPassword
	}

	return auth.GenerateToken(user.Username, s.secret, s.tokenTTL)
}

// FindByEmail returns the account registered under email, or ErrNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// FindByUsername returns the account registered under username, or ErrNotFound.
func (s *Service) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func exists(_ *User, err error) (bool, error) {
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Lengths count characters, not bytes, so multibyte names fill the same
// forty slots as ASCII ones.
func validateRegistration(fullName, username, email, password string) error {
	if l := utf8.RuneCountInString(fullName); l < fullNameMinLen || l > fullNameMaxLen {
		return common.NewValidationError("fullname", fmt.Sprintf("should contain between %d and %d characters", fullNameMinLen, fullNameMaxLen))
	}
	if l := utf8.RuneCountInString(username); l < usernameMinLen || l > usernameMaxLen {
		return common.NewValidationError("username", fmt.Sprintf("should contain between %d and %d characters", usernameMinLen, usernameMaxLen))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return common.NewValidationError("email", "please write a valid email address")
	}
	if l := utf8.RuneCountInString(email); l < emailMinLen || l > emailMaxLen {
		return common.NewValidationError("email", fmt.Sprintf("should contain between %d and %d characters", emailMinLen, emailMaxLen))
	}
	if l := utf8.RuneCountInString(password); l < passwordMinLen || l > passwordMaxLen {
		return common.NewValidationError("password", fmt.Sprintf("should contain between %d and %d characters", passwordMinLen, passwordMaxLen))
	}
	return nil
}
