package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/inkwell-press/inkwell/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the token lifecycle.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	deliverer *Deliverer
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, deliverer *Deliverer) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		deliverer: deliverer,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignUp)
	r.Post("/signin", h.handleSignIn)
	r.Post("/refresh", h.handleRefresh)
	r.Post("/revoke", h.handleRevoke)
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  int    `json:"role"`
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	user, err := h.service.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Warn("signup failed", slog.String("email", req.Email), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, userResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	_, pair, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("signin rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	body := h.deliverer.Deliver(w, pair, ChannelFromRequest(r))
	httpx.JSON(w, http.StatusOK, body)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	access, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.logger.Info("refresh rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	body := h.deliverer.Deliver(w, TokenPair{AccessToken: access}, ChannelFromRequest(r))
	body.RefreshToken = ""
	httpx.JSON(w, http.StatusOK, body)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	if err := h.service.Revoke(r.Context(), req.RefreshToken); err != nil {
		h.logger.Info("revoke rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	h.deliverer.ClearCookie(w)
	httpx.JSON(w, http.StatusOK, map[string]bool{"revoked": true})
}
