package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Bobur2828/Technical-assignment/internal/entity"
	"github.com/Bobur2828/Technical-assignment/internal/repo/persistent"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	Register(firstName, email, password, confirmPassword string) (*entity.User, error)
	Authenticate(email, password string) (*entity.User, error)
	CreateSuperuser(firstName, email, password string, isStaff, isSuperuser bool) (*entity.User, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *userUseCase) Register(firstName, email, password, confirmPassword string) (*entity.User, error) {
	if email == "" || password == "" || confirmPassword == "" {
		return nil, &ValidationError{Message: "Email, password and confirm password are required"}
	}
	if password != confirmPassword {
		return nil, &ValidationError{Message: "Password and confirm password do not match"}
	}
	if !strings.Contains(email, "@") {
		return nil, &ValidationError{Message: "Invalid email format"}
	}
	if len(password) < 8 {
		return nil, &ValidationError{Message: "Password must be at least 8 characters long"}
	}
	if !containsLetter(password) {
		return nil, &ValidationError{Message: "Password must contain at least one letter"}
	}

	exists, err := uc.userRepo.ExistsByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to check email uniqueness: %v", err)
		return nil, fmt.Errorf("failed to process registration: %w", err)
	}
	if exists {
		return nil, &ValidationError{Message: "Email already registered"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		Email:     email,
		FirstName: firstName,
		Password:  string(hashedPassword),
		Role:      entity.RoleFollower,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) Authenticate(email, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return user, nil
}

// CreateSuperuser bootstraps an admin account. Staff and superuser flags
// default to true; passing either as false is a configuration error.
func (uc *userUseCase) CreateSuperuser(firstName, email, password string, isStaff, isSuperuser bool) (*entity.User, error) {
	if !isStaff {
		return nil, fmt.Errorf("superuser must have is_staff=true")
	}
	if !isSuperuser {
		return nil, fmt.Errorf("superuser must have is_superuser=true")
	}
	if email == "" {
		return nil, &ValidationError{Message: "Email is required"}
	}
	if password == "" {
		return nil, &ValidationError{Message: "Password is required"}
	}

	exists, err := uc.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return nil, &ValidationError{Message: "Email already registered"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:       email,
		FirstName:   firstName,
		Password:    string(hashedPassword),
		Role:        entity.RoleAdmin,
		IsStaff:     true,
		IsSuperuser: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create superuser: %w", err)
	}

	user.Password = ""
	return user, nil
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
