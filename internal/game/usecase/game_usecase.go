package usecase

import (
	"context"
	"time"

	"legendidle/domain"
)

type GameUsecase interface {
	Train(ctx context.Context, user *domain.SessionUser, skill string) error
}

type gameUsecase struct {
	progressRepository domain.ProgressRepository
}

func NewGameUsecase(progressRepository domain.ProgressRepository) GameUsecase {
	return &gameUsecase{
		progressRepository: progressRepository,
	}
}

// Train bumps one known skill by exactly 1 and stamps the training time.
// The session user is only mutated after a successful persist, so a storage
// failure leaves the visible progress unchanged. Guests are never persisted.
func (uc *gameUsecase) Train(ctx context.Context, user *domain.SessionUser, skill string) error {
	if user == nil {
		return domain.ErrNotLoggedIn
	}
	if skill == "" {
		return domain.ErrMissingSkill
	}

	progress := domain.CloneProgress(user.Progress)
	if len(progress.Skills) == 0 {
		progress = domain.DefaultProgress()
	}

	level, ok := progress.Skills[skill]
	if !ok {
		return domain.ErrUnknownSkill
	}

	progress.Skills[skill] = level + 1
	now := time.Now()
	progress.LastTraining = &now

	if !user.IsGuest {
		if _, err := uc.progressRepository.UpdateProgress(ctx, user.ID, domain.CloneProgress(progress)); err != nil {
			return err
		}
	}

	user.Progress = progress
	return nil
}
