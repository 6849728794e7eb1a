package rest

import (
	"net/http"

	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	confirmed, err := queryBool(r, "confirmed")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	out, err := h.users.ListUsers(r.Context(), domain.UserFilter{
		Confirmed: confirmed,
		Search:    r.URL.Query().Get("search"),
		Page:      page,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) confirmUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	user, err := h.auth.ConfirmUserByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) toggleUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	user, err := h.users.ToggleStatus(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) setDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	var req discountRequest
	if !h.bind(w, r, &req) {
		return
	}
	user, err := h.users.SetDiscount(r.Context(), id, *req.Discount)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !h.bind(w, r, &req) {
		return
	}
	user, err := h.profile.UpdateProfile(r.Context(), principalFrom(r.Context()).User, domain.ProfileUpdate{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.profile.UpdatePassword(r.Context(), principalFrom(r.Context()).User, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Password updated"})
}
