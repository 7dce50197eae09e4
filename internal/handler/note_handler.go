package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serhatprogramming/notes-backend/internal/auth"
	"github.com/serhatprogramming/notes-backend/internal/errors"
	"github.com/serhatprogramming/notes-backend/internal/model"
	"github.com/serhatprogramming/notes-backend/internal/service"
)

// NoteHandler handles the note resource endpoints.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// CreateNoteRequest represents a note creation request.
type CreateNoteRequest struct {
	Content   string `json:"content" validate:"required"`
	Important bool   `json:"important"`
}

// UpdateNoteRequest represents a partial note update. Absent fields are left
// unchanged; a provided content must be non-empty.
type UpdateNoteRequest struct {
	Content   *string `json:"content"`
	Important *bool   `json:"important"`
}

// List godoc
// @Summary List all notes with owner details
// @Tags notes
// @Produce json
// @Success 200 {array} service.NoteWithOwner
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	notes, err := h.noteService.ListWithOwners(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, notes)
}

// Get godoc
// @Summary Get a note by id
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} model.Note
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	note, err := h.noteService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, note)
}

// Create godoc
// @Summary Create a note owned by the authenticated user
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNoteRequest true "Note data"
// @Success 201 {object} model.Note
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	// The jwt middleware has verified the signature; a token that carries no
	// user id is still rejected before any work happens.
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims.UserID == "" {
		httpErr := errors.MapErrorToHTTP(errors.ErrTokenInvalid)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	note, err := h.noteService.Create(c.Request().Context(), claims.UserID, req.Content, req.Important)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, note)
}

// Update godoc
// @Summary Update a note's content or importance
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param request body UpdateNoteRequest true "Fields to update"
// @Success 200 {object} model.Note
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	// Notes never hold empty content; the tag validator cannot distinguish an
	// absent field from an explicit empty string, so this check is manual.
	if req.Content != nil && *req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "content must not be empty",
			Code:  "VALIDATION_ERROR",
		})
	}

	note, err := h.noteService.Update(c.Request().Context(), c.Param("id"), model.NoteUpdate{
		Content:   req.Content,
		Important: req.Important,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Param id path string true "Note ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	if err := h.noteService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}
