package prospect_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	app "github.com/mohammadpnp/prospect-import/internal/application/prospect"
)

func csvReader(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestUploadStoresFileAndPreviews(t *testing.T) {
	t.Parallel()

	files := newMemFileRepo()
	uc := app.NewUploadProspectsFile(files, app.UploadLimits{})

	out, err := uc.Execute(context.Background(), app.UploadProspectsFileInput{
		OwnerID: 1,
		File: csvReader(
			"email,first,last",
			"ada@example.com,Ada,Lovelace",
			"grace@example.com,Grace,Hopper",
			"alan@example.com,Alan,Turing",
			"joan@example.com,Joan,Clarke",
		),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.ID == "" {
		t.Fatal("expected a file id")
	}
	if len(out.Preview) != 3 {
		t.Fatalf("expected 3 preview rows, got %d", len(out.Preview))
	}
	if out.Preview[0][0] != "email" {
		t.Fatalf("unexpected first preview row: %v", out.Preview[0])
	}

	stored, err := files.GetByID(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if len(stored.Data) != 5 {
		t.Fatalf("expected 5 stored rows, got %d", len(stored.Data))
	}
	if stored.OwnerID != 1 {
		t.Fatalf("unexpected owner: %d", stored.OwnerID)
	}
}

func TestUploadDropsBlankLines(t *testing.T) {
	t.Parallel()

	uc := app.NewUploadProspectsFile(newMemFileRepo(), app.UploadLimits{})
	out, err := uc.Execute(context.Background(), app.UploadProspectsFileInput{
		OwnerID: 1,
		File:    csvReader("ada@example.com,Ada,Lovelace", "", "grace@example.com,Grace,Hopper", ""),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Preview) != 2 {
		t.Fatalf("expected blank lines dropped, got %d rows", len(out.Preview))
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	t.Parallel()

	uc := app.NewUploadProspectsFile(newMemFileRepo(), app.UploadLimits{MaxBytes: 16})
	_, err := uc.Execute(context.Background(), app.UploadProspectsFileInput{
		OwnerID: 1,
		File:    csvReader("ada@example.com,Ada,Lovelace"),
	})
	if !errors.Is(err, app.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadRejectsTooManyRows(t *testing.T) {
	t.Parallel()

	uc := app.NewUploadProspectsFile(newMemFileRepo(), app.UploadLimits{MaxRows: 2})
	_, err := uc.Execute(context.Background(), app.UploadProspectsFileInput{
		OwnerID: 1,
		File:    csvReader("a@x.com,A,A", "b@x.com,B,B", "c@x.com,C,C"),
	})
	if !errors.Is(err, app.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	t.Parallel()

	uc := app.NewUploadProspectsFile(newMemFileRepo(), app.UploadLimits{})
	_, err := uc.Execute(context.Background(), app.UploadProspectsFileInput{
		OwnerID: 1,
		File:    strings.NewReader(""),
	})
	if !errors.Is(err, app.ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestUploadRejectsMalformedCSV(t *testing.T) {
	t.Parallel()

	uc := app.NewUploadProspectsFile(newMemFileRepo(), app.UploadLimits{})
	_, err := uc.Execute(context.Background(), app.UploadProspectsFileInput{
		OwnerID: 1,
		File:    strings.NewReader("ada@example.com,\"unterminated\n"),
	})
	if !errors.Is(err, app.ErrInvalidCSV) {
		t.Fatalf("expected ErrInvalidCSV, got %v", err)
	}
}
