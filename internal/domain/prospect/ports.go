package prospect

import "context"

type ProspectRepository interface {
	FindByOwnerAndEmail(ctx context.Context, ownerID int64, email string) (*Prospect, error)
	// Insert returns ErrProspectExists when another prospect already holds
	// this owner's email.
	Insert(ctx context.Context, p Prospect) (Prospect, error)
	Update(ctx context.Context, p Prospect) error
	ListByOwner(ctx context.Context, ownerID int64, page, pageSize int) ([]Prospect, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type ProspectFileRepository interface {
	Create(ctx context.Context, ownerID int64, data [][]string) (ProspectFile, error)
	GetByID(ctx context.Context, fileID string) (ProspectFile, error)
}

type ProgressRepository interface {
	// Reset creates the progress row for a file, or zeroes done on an
	// existing one, so re-running an import never accumulates.
	Reset(ctx context.Context, fileID string, total int64) error
	// IncrementDone must be atomic; concurrent calls never lose updates.
	IncrementDone(ctx context.Context, fileID string) error
	Get(ctx context.Context, fileID string) (ImportProgress, error)
}
