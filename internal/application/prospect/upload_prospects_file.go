package prospect

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"

	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
)

const previewRows = 3

type UploadProspectsFileInput struct {
	OwnerID int64
	File    io.Reader
}

type UploadProspectsFileOutput struct {
	ID      string     `json:"id"`
	Preview [][]string `json:"preview"`
}

type UploadProspectsFile interface {
	Execute(ctx context.Context, in UploadProspectsFileInput) (UploadProspectsFileOutput, error)
}

type UploadLimits struct {
	MaxBytes int64
	MaxRows  int64
}

type uploadProspectsFile struct {
	files  domain.ProspectFileRepository
	limits UploadLimits
}

func NewUploadProspectsFile(files domain.ProspectFileRepository, limits UploadLimits) UploadProspectsFile {
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = 200 << 20
	}
	if limits.MaxRows <= 0 {
		limits.MaxRows = 1_000_000
	}
	return &uploadProspectsFile{files: files, limits: limits}
}

func (uc *uploadProspectsFile) Execute(ctx context.Context, in UploadProspectsFileInput) (UploadProspectsFileOutput, error) {
	raw, err := io.ReadAll(io.LimitReader(in.File, uc.limits.MaxBytes+1))
	if err != nil {
		return UploadProspectsFileOutput{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(raw)) > uc.limits.MaxBytes {
		return UploadProspectsFileOutput{}, ErrFileTooLarge
	}
	if lineCount(raw) > uc.limits.MaxRows {
		return UploadProspectsFileOutput{}, ErrFileTooLarge
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1

	data := make([][]string, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return UploadProspectsFileOutput{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		if len(row) == 0 {
			continue
		}
		data = append(data, row)
	}

	if len(data) == 0 {
		return UploadProspectsFileOutput{}, ErrEmptyFile
	}

	file, err := uc.files.Create(ctx, in.OwnerID, data)
	if err != nil {
		return UploadProspectsFileOutput{}, fmt.Errorf("%w: %v", ErrCreateProspectsFile, err)
	}

	return UploadProspectsFileOutput{
		ID:      file.ID,
		Preview: file.Preview(previewRows),
	}, nil
}

func lineCount(raw []byte) int64 {
	count := int64(bytes.Count(raw, []byte{'\n'}))
	if len(raw) > 0 && raw[len(raw)-1] != '\n' {
		count++
	}
	return count
}
