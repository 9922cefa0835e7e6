package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"legendidle/domain"
	"legendidle/internal/service/logger"
	"legendidle/internal/service/middleware"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{
		db: db,
	}
}

// translateUniqueViolation maps a Postgres duplicate-key error to the domain
// error of whichever unique constraint failed.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "normalized"):
			return domain.ErrUsernameTaken
		case strings.Contains(pgErr.ConstraintName, "email"):
			return domain.ErrEmailTaken
		}
	}
	return err
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	normalized := domain.NormalizeUsername(username)
	logger.DBLogger.Info("FindByUsername called", zap.String("request_id", requestID), zap.String("normalized", normalized))

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "normalized = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.String("normalized", normalized), zap.Error(err))
		return nil, err
	}

	var skills []domain.SkillLevel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", user.UUID).Find(&skills).Error; err != nil {
		logger.DBLogger.Error("Failed to get user skills", zap.String("request_id", requestID), zap.String("user_id", user.UUID), zap.Error(err))
		return nil, err
	}

	progress := domain.DefaultProgress()
	progress.Gold = user.Gold
	if user.LastTraining != nil {
		t := *user.LastTraining
		progress.LastTraining = &t
	}
	for _, skill := range skills {
		if _, ok := progress.Skills[skill.SkillName]; ok {
			progress.Skills[skill.SkillName] = skill.Level
		}
	}
	user.Progress = progress

	return &user, nil
}

func (r *userRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	normalized := domain.NormalizeUsername(username)
	if normalized == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("normalized = ?", normalized).Count(&count).Error; err != nil {
		logger.DBLogger.Error("Failed to check username", zap.String("request_id", middleware.GetRequestID(ctx)), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		logger.DBLogger.Error("Failed to check email", zap.String("request_id", middleware.GetRequestID(ctx)), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CreateUser(ctx context.Context, params domain.CreateUserParams) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateUser called", zap.String("request_id", requestID), zap.String("username", params.Username))

	progress := domain.NormalizeProgress(params.Progress)
	user := domain.User{
		Username:     strings.TrimSpace(params.Username),
		Normalized:   domain.NormalizeUsername(params.Username),
		Email:        strings.TrimSpace(params.Email),
		PasswordHash: params.PasswordHash,
		Gold:         progress.Gold,
		LastTraining: progress.LastTraining,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return translateUniqueViolation(err)
		}
		for _, name := range domain.SkillNames {
			skill := domain.SkillLevel{OwnerID: user.UUID, SkillName: name, Level: progress.Skills[name]}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUsernameTaken) && !errors.Is(err, domain.ErrEmailTaken) {
			logger.DBLogger.Error("Failed to create user", zap.String("request_id", requestID), zap.String("username", params.Username), zap.Error(err))
		}
		return nil, err
	}

	user.Progress = progress
	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.String("user_id", user.UUID))
	return &user, nil
}
