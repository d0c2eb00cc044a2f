package prospect

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
)

type GetImportProgressInput struct {
	FileID  string
	OwnerID int64
}

type GetImportProgressOutput struct {
	Total int64 `json:"total"`
	Done  int64 `json:"done"`
}

type GetImportProgress interface {
	Execute(ctx context.Context, in GetImportProgressInput) (GetImportProgressOutput, error)
}

type getImportProgress struct {
	files    domain.ProspectFileRepository
	progress domain.ProgressRepository
}

func NewGetImportProgress(files domain.ProspectFileRepository, progress domain.ProgressRepository) GetImportProgress {
	return &getImportProgress{files: files, progress: progress}
}

func (uc *getImportProgress) Execute(ctx context.Context, in GetImportProgressInput) (GetImportProgressOutput, error) {
	// Ownership is checked before progress is read so a foreign caller never
	// learns the counters, only that the file is off limits.
	file, err := uc.files.GetByID(ctx, in.FileID)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return GetImportProgressOutput{}, ErrFileNotFound
		}
		return GetImportProgressOutput{}, fmt.Errorf("get prospects file: %w", err)
	}
	if file.OwnerID != in.OwnerID {
		return GetImportProgressOutput{}, ErrForbidden
	}

	progress, err := uc.progress.Get(ctx, in.FileID)
	if err != nil {
		if errors.Is(err, domain.ErrProgressNotFound) {
			return GetImportProgressOutput{}, ErrProgressNotFound
		}
		return GetImportProgressOutput{}, fmt.Errorf("get import progress: %w", err)
	}

	return GetImportProgressOutput{Total: progress.Total, Done: progress.Done}, nil
}
