package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"legendidle/domain"
	"legendidle/internal/service/logger"
	"legendidle/internal/service/middleware"
)

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) domain.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// UpdateProgress writes gold, the training timestamp and every skill level in
// one transaction; a failed skill upsert rolls the whole write back.
func (r *progressRepository) UpdateProgress(ctx context.Context, userID string, progress domain.Progress) (domain.Progress, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateProgress called", zap.String("request_id", requestID), zap.String("user_id", userID))

	normalized := domain.NormalizeProgress(progress)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			`UPDATE users SET gold = ?, last_training = ?, updated_at = NOW() WHERE uuid = ?`,
			normalized.Gold, normalized.LastTraining, userID,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		for _, name := range domain.SkillNames {
			if err := tx.Exec(`
				INSERT INTO user_skills (owner_id, skill_name, level)
				VALUES (?, ?, ?)
				ON CONFLICT (owner_id, skill_name)
				DO UPDATE SET level = EXCLUDED.level
			`, userID, name, normalized.Skills[name]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err != domain.ErrUserNotFound {
			logger.DBLogger.Error("Failed to update progress", zap.String("request_id", requestID), zap.String("user_id", userID), zap.Error(err))
		}
		return domain.Progress{}, err
	}

	logger.DBLogger.Info("Successfully updated progress", zap.String("request_id", requestID), zap.String("user_id", userID))
	return normalized, nil
}
