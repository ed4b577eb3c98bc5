package service

import (
	"errors"
	"time"

	"journalhub/internal/config"
	"journalhub/internal/http-api/models"
	"journalhub/internal/http-api/repository"
	"journalhub/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// dummyHash is a throwaway bcrypt hash compared against when login hits an
// unknown email, so the miss path costs the same as the hit path.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

// ProfileUpdate carries the optional profile fields; nil means not provided.
type ProfileUpdate struct {
	Email    *string
	Username *string
	Password *string
}

type AuthService interface {
	Register(email, username, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	UpdateProfile(email string, update ProfileUpdate) (*models.User, string, error)
	ResolveIdentity(tokenString string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  cfg.TokenTTL, // 24 hours
	}
}

// Register creates a new user and returns it with a freshly issued token.
// Email uniqueness is checked before the insert; username uniqueness relies on
// the store's unique index and surfaces as ErrDuplicateUsername.
func (s *authService) Register(email, username, password string) (*models.User, string, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrDuplicateEmail
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", translateDuplicate(err)
	}

	token, err := s.issueToken(user.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// report the same error so callers cannot enumerate accounts.
func (s *authService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// dummy compare so the miss takes as long as a real verification
		auth.VerifyPassword(dummyHash, password)
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UpdateProfile applies the provided fields to the user addressed by email and
// returns the updated user with a token minted for the (possibly new) email.
func (s *authService) UpdateProfile(email string, update ProfileUpdate) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, "", ErrUserNotFound
	}

	if update.Email != nil && *update.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*update.Email); err == nil {
			return nil, "", ErrDuplicateEmail
		}
		user.Email = *update.Email
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Password != nil {
		hashedPassword, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, "", translateDuplicate(err)
	}

	token, err := s.issueToken(user.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveIdentity verifies the token and loads the user behind its subject.
// Bad signature, expiry, missing subject and unknown user all collapse into
// ErrInvalidToken so the failure mode is not distinguishable from outside.
func (s *authService) ResolveIdentity(tokenString string) (*models.User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *authService) issueToken(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func translateDuplicate(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrDuplicateEmail
	case errors.Is(err, repository.ErrDuplicateUsername):
		return ErrDuplicateUsername
	}
	return err
}
