package prospect

import (
	"strings"
	"time"
)

type Prospect struct {
	ID        int64
	OwnerID   int64
	Email     string
	FirstName string
	LastName  string
	FileID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ImportOptions maps zero-based CSV column indices onto prospect fields.
type ImportOptions struct {
	EmailIndex     int
	FirstNameIndex int
	LastNameIndex  int
	HasHeaders     bool
	Force          bool
}

func (o ImportOptions) maxIndex() int {
	max := o.EmailIndex
	if o.FirstNameIndex > max {
		max = o.FirstNameIndex
	}
	if o.LastNameIndex > max {
		max = o.LastNameIndex
	}
	return max
}

func (o ImportOptions) Validate() error {
	if o.EmailIndex < 0 || o.FirstNameIndex < 0 || o.LastNameIndex < 0 {
		return ErrInvalidColumnMapping
	}
	return nil
}

// ProspectFromRow maps one CSV row onto a Prospect. A row shorter than any
// mapped index, or whose email field lacks an "@", is not importable and
// yields ErrRowSkipped.
func ProspectFromRow(row []string, opts ImportOptions, ownerID int64, fileID string) (Prospect, error) {
	if len(row) <= opts.maxIndex() {
		return Prospect{}, ErrRowSkipped
	}
	email := strings.TrimSpace(row[opts.EmailIndex])
	if !strings.Contains(email, "@") {
		return Prospect{}, ErrRowSkipped
	}

	return Prospect{
		OwnerID:   ownerID,
		Email:     email,
		FirstName: row[opts.FirstNameIndex],
		LastName:  row[opts.LastNameIndex],
		FileID:    fileID,
	}, nil
}
