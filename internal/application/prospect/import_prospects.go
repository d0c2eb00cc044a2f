package prospect

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"sync"
	"sync/atomic"
	"time"

	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
)

type ImportProspectsInput struct {
	FileID  string
	OwnerID int64
	Options domain.ImportOptions
}

type ImportProspectsOutput struct {
	ID   string     `json:"id"`
	Data [][]string `json:"data"`
}

type ImportProspects interface {
	Execute(ctx context.Context, in ImportProspectsInput) (ImportProspectsOutput, error)
}

type ImportConfig struct {
	Workers int
	Timeout time.Duration
}

type importProspects struct {
	files     domain.ProspectFileRepository
	prospects domain.ProspectRepository
	progress  domain.ProgressRepository
	cfg       ImportConfig
}

func NewImportProspects(
	files domain.ProspectFileRepository,
	prospects domain.ProspectRepository,
	progress domain.ProgressRepository,
	cfg ImportConfig,
) ImportProspects {
	if cfg.Workers <= 0 {
		cfg.Workers = 10
	}
	return &importProspects{
		files:     files,
		prospects: prospects,
		progress:  progress,
		cfg:       cfg,
	}
}

// Execute runs the whole import for one file and returns after every
// dispatched row has settled. Rows are partitioned across the worker pool by
// a hash of their email, so two rows carrying the same email are always
// handled by the same worker and never race each other's lookup-then-write.
func (uc *importProspects) Execute(ctx context.Context, in ImportProspectsInput) (ImportProspectsOutput, error) {
	if err := in.Options.Validate(); err != nil {
		return ImportProspectsOutput{}, ErrInvalidColumnMapping
	}

	file, err := uc.files.GetByID(ctx, in.FileID)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return ImportProspectsOutput{}, ErrFileNotFound
		}
		return ImportProspectsOutput{}, fmt.Errorf("get prospects file: %w", err)
	}
	if file.OwnerID != in.OwnerID {
		return ImportProspectsOutput{}, ErrForbidden
	}

	start := 0
	if in.Options.HasHeaders && len(file.Data) > 0 {
		start = 1
	}
	rows := file.Data[start:]

	if err := uc.progress.Reset(ctx, file.ID, int64(len(rows))); err != nil {
		return ImportProspectsOutput{}, fmt.Errorf("reset import progress: %w", err)
	}

	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	queues := make([][]domain.Prospect, uc.cfg.Workers)
	for _, row := range rows {
		p, err := domain.ProspectFromRow(row, in.Options, in.OwnerID, file.ID)
		if err != nil {
			// Not importable; the row stays uncounted in done.
			continue
		}
		i := partition(p.Email, uc.cfg.Workers)
		queues[i] = append(queues[i], p)
	}

	var failed atomic.Int64
	var wg sync.WaitGroup
	for _, queue := range queues {
		if len(queue) == 0 {
			continue
		}
		wg.Add(1)
		go func(queue []domain.Prospect) {
			defer wg.Done()
			for _, p := range queue {
				if ctx.Err() != nil {
					return
				}
				if err := uc.importRow(ctx, p, in.Options.Force); err != nil {
					failed.Add(1)
					log.Printf("import row for file %s: %v", file.ID, err)
				}
			}
		}(queue)
	}
	wg.Wait()

	if n := failed.Load(); n > 0 {
		log.Printf("import for file %s finished with %d failed rows", file.ID, n)
	}

	return ImportProspectsOutput{ID: file.ID, Data: file.Data}, nil
}

// importRow upserts one prospect and advances the progress counter exactly
// once. An insert conflict means another import landed this email first; the
// row falls back to the update-or-skip branch.
func (uc *importProspects) importRow(ctx context.Context, p domain.Prospect, force bool) error {
	existing, err := uc.prospects.FindByOwnerAndEmail(ctx, p.OwnerID, p.Email)
	if err != nil {
		return fmt.Errorf("find prospect: %w", err)
	}

	if existing == nil {
		_, err := uc.prospects.Insert(ctx, p)
		if err == nil {
			return uc.progress.IncrementDone(ctx, p.FileID)
		}
		if !errors.Is(err, domain.ErrProspectExists) {
			return fmt.Errorf("insert prospect: %w", err)
		}
		existing, err = uc.prospects.FindByOwnerAndEmail(ctx, p.OwnerID, p.Email)
		if err != nil {
			return fmt.Errorf("refetch prospect after conflict: %w", err)
		}
		if existing == nil {
			return fmt.Errorf("prospect for %q vanished after insert conflict", p.Email)
		}
	}

	if force {
		existing.Email = p.Email
		existing.FirstName = p.FirstName
		existing.LastName = p.LastName
		existing.FileID = p.FileID
		if err := uc.prospects.Update(ctx, *existing); err != nil {
			return fmt.Errorf("update prospect: %w", err)
		}
	}

	return uc.progress.IncrementDone(ctx, p.FileID)
}

func partition(email string, workers int) int {
	h := fnv.New32a()
	h.Write([]byte(email))
	return int(h.Sum32() % uint32(workers))
}
