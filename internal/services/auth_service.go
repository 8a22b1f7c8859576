package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	minPasswordLength = 8
	maxNameLength     = 64
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNameOrEmail(nameOrEmail string) (models.User, error)
	ExistsByName(name string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
}

// AuthService is the credential side of identity: registration and password
// verification. Token issuance lives in the API layer.
type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with a bcrypt password hash. Name and email are
// normalized before the uniqueness checks so lookups stay case-insensitive.
func (service *AuthService) Register(name string, email string, password string) (models.User, error) {
	name = normalizeHandle(name)
	email = normalizeHandle(email)

	if name == "" || len(name) > maxNameLength || strings.ContainsAny(name, " @") {
		return models.User{}, fmt.Errorf("%w: invalid name", ErrInvalidArgument)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, fmt.Errorf("%w: invalid email", ErrInvalidArgument)
	}
	if len(password) < minPasswordLength {
		return models.User{}, fmt.Errorf("%w: password too short", ErrInvalidArgument)
	}

	nameTaken, err := service.users.ExistsByName(name)
	if err != nil {
		return models.User{}, fmt.Errorf("check name: %w", err)
	}
	if nameTaken {
		return models.User{}, fmt.Errorf("%w: name taken", ErrAlreadyExists)
	}
	emailTaken, err := service.users.ExistsByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		return models.User{}, fmt.Errorf("%w: email taken", ErrAlreadyExists)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate resolves a user by name or email and verifies the password.
// Unknown handles and wrong passwords are indistinguishable to the caller.
func (service *AuthService) Authenticate(nameOrEmail string, password string) (models.User, error) {
	user, err := service.users.FindByNameOrEmail(normalizeHandle(nameOrEmail))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
