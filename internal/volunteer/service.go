package volunteer

import (
	"context"
	"log/slog"
	"time"

	autherror "github.com/Altraaa/creavibes-panel-api/internal/errors"
	"github.com/Altraaa/creavibes-panel-api/pkg/pagination"
	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context, filters ListFilters) ([]Volunteer, pagination.Meta, error) {
	filters.Page = filters.Page.Normalize()

	volunteers, total, err := s.repo.List(ctx, filters)
	if err != nil {
		s.logger.Error("failed to fetch volunteers", "error", err)
		return nil, pagination.Meta{}, err
	}

	return volunteers, pagination.NewMeta(filters.Page, total), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Volunteer, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch volunteer", "volunteer_id", id, "error", err)
		return nil, err
	}
	if v == nil {
		return nil, autherror.ErrVolunteerNotFound
	}

	return v, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Volunteer, error) {
	now := time.Now()
	v := &Volunteer{
		ID:                     uuid.NewString(),
		Name:                   input.Name,
		Age:                    input.Age,
		Address:                input.Address,
		CurrentActivity:        input.CurrentActivity,
		University:             input.University,
		HasEventExperience:     input.HasEventExperience,
		EventExperienceDetails: input.EventExperienceDetails,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("failed to create volunteer", "name", input.Name, "error", err)
		return nil, err
	}

	return v, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*Volunteer, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to update volunteer", "volunteer_id", id, "error", err)
		return nil, err
	}
	if v == nil {
		return nil, autherror.ErrVolunteerNotFound
	}

	if input.Name != nil {
		v.Name = *input.Name
	}
	if input.Age != nil {
		v.Age = *input.Age
	}
	if input.Address != nil {
		v.Address = *input.Address
	}
	if input.CurrentActivity != nil {
		v.CurrentActivity = *input.CurrentActivity
	}
	if input.University != nil {
		v.University = *input.University
	}
	if input.HasEventExperience != nil {
		v.HasEventExperience = *input.HasEventExperience
	}
	if input.EventExperienceDetails != nil {
		v.EventExperienceDetails = *input.EventExperienceDetails
	}
	v.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, v); err != nil {
		s.logger.Error("failed to update volunteer", "volunteer_id", id, "error", err)
		return nil, err
	}

	return v, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete volunteer", "volunteer_id", id, "error", err)
		return err
	}
	if !deleted {
		return autherror.ErrVolunteerNotFound
	}

	return nil
}
