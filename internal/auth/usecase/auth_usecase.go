package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legendidle/domain"
	"legendidle/internal/service/logger"
	"legendidle/internal/service/middleware"
	"legendidle/internal/service/validation"
)

const minPasswordLength = 8

type AuthUsecase interface {
	RegisterUser(ctx context.Context, form domain.RegisterForm, current *domain.SessionUser) (*domain.SessionUser, bool, error)
	LoginUser(ctx context.Context, username string, password string) (*domain.SessionUser, error)
	GuestUser() *domain.SessionUser
	CheckAvailability(ctx context.Context, username string, email string) (domain.AvailabilityResponse, error)
}

type authUsecase struct {
	userRepository domain.UserRepository
}

func NewAuthUsecase(userRepository domain.UserRepository) AuthUsecase {
	return &authUsecase{
		userRepository: userRepository,
	}
}

// RegisterUser creates a persisted account. When the caller was a guest, the
// guest's session progress is carried into the new account; the returned bool
// reports that upgrade.
func (uc *authUsecase) RegisterUser(ctx context.Context, form domain.RegisterForm, current *domain.SessionUser) (*domain.SessionUser, bool, error) {
	requestID := middleware.GetRequestID(ctx)

	if current != nil && !current.IsGuest {
		return nil, false, domain.ErrAlreadyLoggedIn
	}

	username := strings.TrimSpace(form.Username)
	email := strings.TrimSpace(form.Email)

	if username == "" || email == "" || form.Password == "" {
		return nil, false, domain.ErrMissingFields
	}
	if !validation.ValidateUsername(username) {
		return nil, false, domain.ErrInvalidUsername
	}
	if !validation.ValidateEmail(email) {
		return nil, false, domain.ErrInvalidEmail
	}
	if form.Password != form.ConfirmPassword {
		return nil, false, domain.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(form.Password) < minPasswordLength {
		return nil, false, domain.ErrPasswordTooShort
	}

	wasGuest := current != nil && current.IsGuest
	progress := domain.DefaultProgress()
	if wasGuest {
		progress = domain.CloneProgress(current.Progress)
	}

	passwordHash, err := middleware.HashPassword(form.Password)
	if err != nil {
		logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", requestID), zap.Error(err))
		return nil, false, err
	}

	user, err := uc.userRepository.CreateUser(ctx, domain.CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Progress:     progress,
	})
	if err != nil {
		return nil, false, err
	}

	sessionUser := &domain.SessionUser{
		ID:       user.UUID,
		Username: user.Username,
		Email:    user.Email,
		Progress: domain.CloneProgress(user.Progress),
	}
	return sessionUser, wasGuest, nil
}

// LoginUser returns ErrInvalidCredentials for both an unknown username and a
// wrong password, so the caller cannot probe which accounts exist.
func (uc *authUsecase) LoginUser(ctx context.Context, username string, password string) (*domain.SessionUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := uc.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !middleware.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.SessionUser{
		ID:       user.UUID,
		Username: user.Username,
		Email:    user.Email,
		Progress: domain.CloneProgress(user.Progress),
	}, nil
}

// GuestUser builds a session-only user; it never touches the store.
func (uc *authUsecase) GuestUser() *domain.SessionUser {
	return &domain.SessionUser{
		ID:       "guest-" + uuid.New().String(),
		Username: "Külaline-" + uuid.New().String()[:4],
		IsGuest:  true,
		Progress: domain.DefaultProgress(),
	}
}

func (uc *authUsecase) CheckAvailability(ctx context.Context, username string, email string) (domain.AvailabilityResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	response := domain.AvailabilityResponse{UsernameAvailable: true, EmailAvailable: true}

	if username != "" {
		valid := validation.ValidateUsername(username)
		response.UsernameValid = &valid
		if valid {
			taken, err := uc.userRepository.IsUsernameTaken(ctx, username)
			if err != nil {
				return domain.AvailabilityResponse{}, err
			}
			response.UsernameAvailable = !taken
		} else {
			response.UsernameAvailable = false
			response.UsernameMessage = validation.UsernameRulesMessage
		}
	}

	if email != "" {
		taken, err := uc.userRepository.IsEmailTaken(ctx, email)
		if err != nil {
			return domain.AvailabilityResponse{}, err
		}
		response.EmailAvailable = !taken
	}

	return response, nil
}
