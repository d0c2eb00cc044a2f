package prospect_test

import (
	"errors"
	"testing"

	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
)

func TestProspectFromRowMapsColumns(t *testing.T) {
	t.Parallel()

	opts := domain.ImportOptions{EmailIndex: 2, FirstNameIndex: 0, LastNameIndex: 1}
	p, err := domain.ProspectFromRow([]string{"Ada", "Lovelace", " ada@example.com "}, opts, 7, "file-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if p.Email != "ada@example.com" {
		t.Fatalf("unexpected email: %q", p.Email)
	}
	if p.FirstName != "Ada" || p.LastName != "Lovelace" {
		t.Fatalf("unexpected names: %q %q", p.FirstName, p.LastName)
	}
	if p.OwnerID != 7 || p.FileID != "file-1" {
		t.Fatalf("unexpected ownership: owner=%d file=%q", p.OwnerID, p.FileID)
	}
}

func TestProspectFromRowSkipsMissingAt(t *testing.T) {
	t.Parallel()

	opts := domain.ImportOptions{EmailIndex: 0, FirstNameIndex: 1, LastNameIndex: 2}
	_, err := domain.ProspectFromRow([]string{"not-an-email", "Ada", "Lovelace"}, opts, 1, "f")
	if !errors.Is(err, domain.ErrRowSkipped) {
		t.Fatalf("expected ErrRowSkipped, got %v", err)
	}
}

func TestProspectFromRowSkipsShortRow(t *testing.T) {
	t.Parallel()

	opts := domain.ImportOptions{EmailIndex: 0, FirstNameIndex: 1, LastNameIndex: 4}
	_, err := domain.ProspectFromRow([]string{"ada@example.com", "Ada"}, opts, 1, "f")
	if !errors.Is(err, domain.ErrRowSkipped) {
		t.Fatalf("expected ErrRowSkipped, got %v", err)
	}
}

func TestImportOptionsValidate(t *testing.T) {
	t.Parallel()

	valid := domain.ImportOptions{EmailIndex: 0, FirstNameIndex: 1, LastNameIndex: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid mapping, got %v", err)
	}

	invalid := domain.ImportOptions{EmailIndex: -1, FirstNameIndex: 1, LastNameIndex: 2}
	if !errors.Is(invalid.Validate(), domain.ErrInvalidColumnMapping) {
		t.Fatal("expected ErrInvalidColumnMapping")
	}
}

func TestProspectFilePreview(t *testing.T) {
	t.Parallel()

	file := domain.ProspectFile{Data: [][]string{{"a"}, {"b"}}}
	if got := len(file.Preview(3)); got != 2 {
		t.Fatalf("expected 2 preview rows, got %d", got)
	}
	if got := len(file.Preview(1)); got != 1 {
		t.Fatalf("expected 1 preview row, got %d", got)
	}
}
