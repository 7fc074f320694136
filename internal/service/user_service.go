package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/finadvisor/backend/internal/config"
	"github.com/finadvisor/backend/internal/model"
	"github.com/finadvisor/backend/internal/repository"
)

// Service-level errors for authentication and user management.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
	ErrMissingFields      = errors.New("email and password are required")
)

// Built-in demo accounts. Only honored when demo mode is enabled; login with
// these credentials succeeds even when the user store is unreachable.
var demoAccounts = map[string]struct {
	Password string
	FullName string
}{
	"user@example.com":  {Password: "password123", FullName: "Test User"},
	"admin@example.com": {Password: "admin123", FullName: "Admin User"},
}

// UserRepositoryInterface defines the contract for user data access.
// Implementations must be safe for concurrent use.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	DeleteAll(ctx context.Context) error
}

// UserService handles business logic for user authentication and profiles.
type UserService struct {
	repo UserRepositoryInterface
	cfg  *config.Config
}

func NewUserService(repo UserRepositoryInterface, cfg *config.Config) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register creates a new user account with email and password.
// Returns ErrEmailTaken if the email is already registered.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.repo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email existence: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	hashStr := string(hash)
	user := &model.User{
		Email:        input.Email,
		PasswordHash: &hashStr,
		FullName:     input.FullName,
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = &input.PhoneNumber
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("parsing date of birth: %w", err)
		}
		user.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := generateToken(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Login authenticates a user with email and password.
// Returns ErrInvalidCredentials if the credentials are incorrect. In demo
// mode the built-in demo accounts authenticate without touching the store,
// so demo logins keep working when the database is down.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	if s.cfg.DemoMode {
		if demo, ok := demoAccounts[input.Email]; ok && demo.Password == input.Password {
			return demoLogin(input.Email, demo.FullName)
		}
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// demoLogin issues a session for a built-in demo account. The session is
// bound to the well-known mock identity and never touches the store, so it
// works even when the database is unreachable.
func demoLogin(email, fullName string) (*AuthResponse, error) {
	user := mockUser(email, fullName)

	token, err := generateToken(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Profile returns the profile for the given user ID. The mock identity gets
// a canned profile without a store lookup.
func (s *UserService) Profile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.cfg.DemoMode && id == MockUserID {
		return mockUser("user@example.com", "Test User"), nil
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return user, nil
}

// SeedDemoUsers wipes the user table and recreates the two demo accounts.
func (s *UserService) SeedDemoUsers(ctx context.Context) ([]model.User, error) {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clearing users: %w", err)
	}

	seeded := make([]model.User, 0, len(demoAccounts))
	for _, email := range []string{"user@example.com", "admin@example.com"} {
		demo := demoAccounts[email]
		hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing demo password: %w", err)
		}

		hashStr := string(hash)
		user := &model.User{
			Email:        email,
			PasswordHash: &hashStr,
			FullName:     demo.FullName,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("creating demo user %s: %w", email, err)
		}
		seeded = append(seeded, *user)
	}

	return seeded, nil
}

func mockUser(email, fullName string) *model.User {
	phone := "555-123-4567"
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	return &model.User{
		ID:          MockUserID,
		Email:       email,
		FullName:    fullName,
		PhoneNumber: &phone,
		DateOfBirth: &dob,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
