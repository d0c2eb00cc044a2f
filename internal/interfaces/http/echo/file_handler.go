package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/prospect-import/internal/application/prospect"
	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type FileHandler struct {
	upload   app.UploadProspectsFile
	runner   app.ImportProspects
	progress app.GetImportProgress
}

func NewFileHandler(upload app.UploadProspectsFile, runner app.ImportProspects, progress app.GetImportProgress) *FileHandler {
	return &FileHandler{upload: upload, runner: runner, progress: progress}
}

func (h *FileHandler) UploadProspectsFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "multipart field 'file' is required",
		}})
	}

	file, err := header.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "could not read uploaded file",
		}})
	}
	defer file.Close()

	out, err := h.upload.Execute(c.Request().Context(), app.UploadProspectsFileInput{
		OwnerID: ownerID(c),
		File:    file,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrFileTooLarge):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "file_too_large",
				Message: "file size limit is 200 MB or 1 million rows",
			}})
		case errors.Is(err, app.ErrInvalidCSV), errors.Is(err, app.ErrEmptyFile):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_file",
				Message: "file must be non-empty CSV",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to store prospects file",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

type importProspectsRequest struct {
	EmailIndex     int  `query:"email_index"`
	FirstNameIndex int  `query:"first_name_index"`
	LastNameIndex  int  `query:"last_name_index"`
	Force          bool `query:"force"`
	HasHeaders     bool `query:"has_headers"`
}

func (h *FileHandler) ImportProspects(c echo.Context) error {
	var req importProspectsRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid import options",
		}})
	}

	out, err := h.runner.Execute(c.Request().Context(), app.ImportProspectsInput{
		FileID:  c.Param("id"),
		OwnerID: ownerID(c),
		Options: domain.ImportOptions{
			EmailIndex:     req.EmailIndex,
			FirstNameIndex: req.FirstNameIndex,
			LastNameIndex:  req.LastNameIndex,
			Force:          req.Force,
			HasHeaders:     req.HasHeaders,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrFileNotFound):
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "no such file in the database",
			}})
		case errors.Is(err, app.ErrForbidden):
			return c.JSON(http.StatusForbidden, apiResponse{Error: &errorBody{
				Code:    "forbidden",
				Message: "file belongs to another user",
			}})
		case errors.Is(err, app.ErrInvalidColumnMapping):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_mapping",
				Message: "column indices must be non-negative",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "import failed",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *FileHandler) GetImportProgress(c echo.Context) error {
	out, err := h.progress.Execute(c.Request().Context(), app.GetImportProgressInput{
		FileID:  c.Param("id"),
		OwnerID: ownerID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrFileNotFound), errors.Is(err, app.ErrProgressNotFound):
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "no such file is being processed",
			}})
		case errors.Is(err, app.ErrForbidden):
			return c.JSON(http.StatusForbidden, apiResponse{Error: &errorBody{
				Code:    "forbidden",
				Message: "file belongs to another user",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get import progress",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
