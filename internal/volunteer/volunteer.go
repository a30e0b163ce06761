package volunteer

import (
	"context"
	"time"

	"github.com/Altraaa/creavibes-panel-api/pkg/pagination"
)

type Volunteer struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Age                    int        `json:"age"`
	Address                string     `json:"address"`
	CurrentActivity        string     `json:"current_activity"`
	University             string     `json:"university,omitempty"`
	HasEventExperience     bool       `json:"has_event_experience"`
	EventExperienceDetails string     `json:"event_experience_details,omitempty"`
	UserID                 *string    `json:"user_id,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type ListFilters struct {
	Search             string
	University         string
	HasEventExperience *bool
	Page               pagination.Request
}

type CreateInput struct {
	Name                   string `json:"name"`
	Age                    int    `json:"age"`
	Address                string `json:"address"`
	CurrentActivity        string `json:"current_activity"`
	University             string `json:"university"`
	HasEventExperience     bool   `json:"has_event_experience"`
	EventExperienceDetails string `json:"event_experience_details"`
}

type UpdateInput struct {
	Name                   *string `json:"name"`
	Age                    *int    `json:"age"`
	Address                *string `json:"address"`
	CurrentActivity        *string `json:"current_activity"`
	University             *string `json:"university"`
	HasEventExperience     *bool   `json:"has_event_experience"`
	EventExperienceDetails *string `json:"event_experience_details"`
}

type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]Volunteer, int64, error)
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	Create(ctx context.Context, v *Volunteer) error
	Update(ctx context.Context, v *Volunteer) error
	Delete(ctx context.Context, id string) (bool, error)
}
