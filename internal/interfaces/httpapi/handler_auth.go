package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-league/internal/usecase"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Signup")
	defer span.End()

	var req signupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.authService.Signup(ctx, usecase.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		h.fail(ctx, w, "signup failed", err, "username", req.Username)
		return
	}

	writeJSON(ctx, w, http.StatusOK, accountResponse{
		Status:     "Admin Account successfully created",
		StatusCode: http.StatusOK,
		UserID:     created.ID,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Login(ctx, usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.fail(ctx, w, "login failed", err, "username", req.Username)
		return
	}

	writeJSON(ctx, w, http.StatusOK, accountResponse{
		Status:      "Login successful",
		StatusCode:  http.StatusOK,
		UserID:      result.UserID,
		AccessToken: result.AccessToken,
	})
}
