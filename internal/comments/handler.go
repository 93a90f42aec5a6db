package comments

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/inkwell-press/inkwell/internal/platform/httpx"
	"github.com/inkwell-press/inkwell/internal/shared"
)

// Handler wires HTTP endpoints for comments.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers comment routes behind the authentication middleware.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/article/{articleID}", h.listByArticle)
	r.Post("/article/{articleID}", h.create)
	r.Delete("/{id}", h.delete)
}

type commentRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

func (h *Handler) listByArticle(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListByArticle(r.Context(), chi.URLParam(r, "articleID"))
	if err != nil {
		h.logger.Error("list comments failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if comments == nil {
		comments = []Comment{}
	}
	httpx.JSON(w, http.StatusOK, comments)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), shared.PrincipalFromContext(r.Context()), Comment{
		Body:      req.Body,
		ArticleID: chi.URLParam(r, "articleID"),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), shared.PrincipalFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
