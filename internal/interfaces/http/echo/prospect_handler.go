package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/prospect-import/internal/application/prospect"
)

type ProspectHandler struct {
	list app.ListProspects
}

func NewProspectHandler(list app.ListProspects) *ProspectHandler {
	return &ProspectHandler{list: list}
}

type listProspectsRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

func (h *ProspectHandler) ListProspects(c echo.Context) error {
	req := listProspectsRequest{Page: app.DefaultPage, PageSize: app.DefaultPageSize}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid pagination parameters",
		}})
	}

	out, err := h.list.Execute(c.Request().Context(), app.ListProspectsInput{
		OwnerID:  ownerID(c),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to list prospects",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
