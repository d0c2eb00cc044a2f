package prospect

import (
	"context"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
)

const (
	MinPage         = 0
	DefaultPage     = 0
	DefaultPageSize = 10
	MaxPageSize     = 50
)

type ListProspectsInput struct {
	OwnerID  int64
	Page     int
	PageSize int
}

type ProspectOutput struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListProspectsOutput struct {
	Prospects []ProspectOutput `json:"prospects"`
	Size      int              `json:"size"`
	Total     int64            `json:"total"`
}

type ListProspects interface {
	Execute(ctx context.Context, in ListProspectsInput) (ListProspectsOutput, error)
}

type listProspects struct {
	repo domain.ProspectRepository
}

func NewListProspects(repo domain.ProspectRepository) ListProspects {
	return &listProspects{repo: repo}
}

func (uc *listProspects) Execute(ctx context.Context, in ListProspectsInput) (ListProspectsOutput, error) {
	page := in.Page
	if page < MinPage {
		page = MinPage
	}
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	prospects, err := uc.repo.ListByOwner(ctx, in.OwnerID, page, pageSize)
	if err != nil {
		return ListProspectsOutput{}, fmt.Errorf("list prospects: %w", err)
	}
	total, err := uc.repo.CountByOwner(ctx, in.OwnerID)
	if err != nil {
		return ListProspectsOutput{}, fmt.Errorf("count prospects: %w", err)
	}

	out := ListProspectsOutput{
		Prospects: make([]ProspectOutput, 0, len(prospects)),
		Total:     total,
	}
	for _, p := range prospects {
		out.Prospects = append(out.Prospects, ProspectOutput{
			ID:        p.ID,
			Email:     p.Email,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	out.Size = len(out.Prospects)

	return out, nil
}
