package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

// bind decodes and validates the request body, writing the error response
// itself when either step fails.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		writeError(w, r, h.logger, err)
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		writeError(w, r, h.logger, err)
		return false
	}
	return true
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !h.bind(w, r, &req) {
		return
	}
	user, err := h.auth.CreateAccount(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Account created, an administrator will review it shortly",
		"user":    user,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.bind(w, r, &req) {
		return
	}
	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.auth.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "We sent an email with instructions to reset your password"})
}

func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	typ := domain.TokenType(r.URL.Query().Get("type"))
	if typ == "" {
		typ = domain.TokenPasswordReset
	}
	if !typ.Valid() {
		writeError(w, r, h.logger, domain.InvalidField("type", "unknown token type"))
		return
	}
	if err := h.auth.CheckToken(r.Context(), chi.URLParam(r, "token"), typ); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (h *Handler) setPassword(w http.ResponseWriter, r *http.Request) {
	var req setPasswordRequest
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.auth.SetPassword(r.Context(), chi.URLParam(r, "token"), req.Password); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Password saved, you can now log in"})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, principalFrom(r.Context()).User)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), principalFrom(r.Context())); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) confirmUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.ConfirmUser(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
