package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
	"github.com/mohammadpnp/prospect-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ProspectFileRepository struct {
	db *gorm.DB
}

func NewProspectFileRepository(db *gorm.DB) *ProspectFileRepository {
	return &ProspectFileRepository{db: db}
}

func (r *ProspectFileRepository) Create(ctx context.Context, ownerID int64, data [][]string) (domain.ProspectFile, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return domain.ProspectFile{}, fmt.Errorf("encode file data: %w", err)
	}

	row := models.ProspectsFile{
		ID:     uuid.NewString(),
		UserID: ownerID,
		Data:   raw,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.ProspectFile{}, fmt.Errorf("create prospects file: %w", err)
	}

	return domain.ProspectFile{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Data:      data,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *ProspectFileRepository) GetByID(ctx context.Context, fileID string) (domain.ProspectFile, error) {
	var row models.ProspectsFile
	err := r.db.WithContext(ctx).First(&row, "id = ?", fileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProspectFile{}, domain.ErrFileNotFound
		}
		return domain.ProspectFile{}, fmt.Errorf("get prospects file: %w", err)
	}

	var data [][]string
	if err := json.Unmarshal(row.Data, &data); err != nil {
		return domain.ProspectFile{}, fmt.Errorf("decode file data: %w", err)
	}

	return domain.ProspectFile{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Data:      data,
		CreatedAt: row.CreatedAt,
	}, nil
}
