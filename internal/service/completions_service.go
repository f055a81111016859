package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitquest/internal/repository"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
)

type CompletionsService struct {
	repo repository.CompletionsRepositoryI
}

func NewCompletionsService(completionsRepo repository.CompletionsRepositoryI) *CompletionsService {
	if completionsRepo == nil {
		log.Fatal("provided nil completionsRepo")
	}
	return &CompletionsService{
		repo: completionsRepo,
	}
}

func (cs *CompletionsService) Week(ctx context.Context, uid uuid.UUID, date time.Time) ([]entity.HabitCompletion, error) {
	start := week.Start(date)
	completions, err := cs.repo.ListByDateRange(ctx, uid, week.FormatKey(start), week.FormatKey(week.End(start)))
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return completions, nil
}
