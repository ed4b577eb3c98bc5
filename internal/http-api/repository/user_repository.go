package repository

import (
	"errors"
	"strings"

	"journalhub/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Duplicate-key sentinels surfaced from the store's unique indexes. The email
// index is also pre-checked in the service layer; the username index is only
// enforced here.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Update(user *models.User) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return translateUniqueViolation(r.db.Create(user).Error)
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	// return nil on a miss rather than a zero-value struct; a non-nil struct
	// would make callers think the user was found
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	return translateUniqueViolation(r.db.Save(user).Error)
}

// translateUniqueViolation maps a Postgres 23505 on one of the users unique
// indexes to the matching sentinel; anything else passes through untouched.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return ErrDuplicateEmail
	case strings.Contains(pgErr.ConstraintName, "username"):
		return ErrDuplicateUsername
	}
	return err
}
