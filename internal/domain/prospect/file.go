package prospect

import "time"

// ProspectFile holds one uploaded CSV's parsed rows. Data is immutable after
// creation; imports only ever read it.
type ProspectFile struct {
	ID        string
	OwnerID   int64
	Data      [][]string
	CreatedAt time.Time
}

// Preview returns up to the first n rows of the file.
func (f ProspectFile) Preview(n int) [][]string {
	if n > len(f.Data) {
		n = len(f.Data)
	}
	return f.Data[:n]
}

type ImportProgress struct {
	FileID string
	Total  int64
	Done   int64
}
