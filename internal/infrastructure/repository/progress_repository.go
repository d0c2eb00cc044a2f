package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
	"github.com/mohammadpnp/prospect-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Reset(ctx context.Context, fileID string, total int64) error {
	row := models.ProspectsFileProgress{
		FileID: fileID,
		Total:  total,
		Done:   0,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "file_id"}},
		DoUpdates: clause.Assignments(map[string]any{"total": total, "done": 0}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("reset import progress: %w", err)
	}
	return nil
}

// IncrementDone advances the counter inside the database so concurrent
// workers never lose an update.
func (r *ProgressRepository) IncrementDone(ctx context.Context, fileID string) error {
	res := r.db.WithContext(ctx).
		Model(&models.ProspectsFileProgress{}).
		Where("file_id = ?", fileID).
		UpdateColumn("done", gorm.Expr("done + 1"))
	if res.Error != nil {
		return fmt.Errorf("increment import progress: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProgressNotFound
	}
	return nil
}

func (r *ProgressRepository) Get(ctx context.Context, fileID string) (domain.ImportProgress, error) {
	var row models.ProspectsFileProgress
	err := r.db.WithContext(ctx).First(&row, "file_id = ?", fileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImportProgress{}, domain.ErrProgressNotFound
		}
		return domain.ImportProgress{}, fmt.Errorf("get import progress: %w", err)
	}

	return domain.ImportProgress{
		FileID: row.FileID,
		Total:  row.Total,
		Done:   row.Done,
	}, nil
}
