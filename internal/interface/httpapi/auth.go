package httpapi

import (
	"encoding/json"
	"net/http"

	"dsr-service/internal/infrastructure/auth"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and sets the access and refresh cookies
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, pair, err := h.services.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, "login", "User not found", err)
		return
	}

	h.cookies.Set(w, auth.AccessCookie, pair.AccessToken, h.issuer.AccessTTL())
	h.cookies.Set(w, auth.RefreshCookie, pair.RefreshToken, h.issuer.RefreshTTL())
	writeJSON(w, http.StatusOK, user)
}

// RefreshToken exchanges the refresh cookie for a new access cookie
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.RefreshCookie)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Refresh token missing")
		return
	}

	access, err := h.services.Auth.Refresh(r.Context(), cookie.Value)
	if err != nil {
		h.fail(w, "refresh_token", "User not found", err)
		return
	}

	h.cookies.Set(w, auth.AccessCookie, access, h.issuer.AccessTTL())
	writeMessage(w, http.StatusOK, "Token refreshed")
}

// Logout expires both auth cookies
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w, auth.AccessCookie)
	h.cookies.Clear(w, auth.RefreshCookie)
	writeMessage(w, http.StatusOK, "Logged out")
}

// Me returns the claims of the authenticated caller
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
		return
	}
	writeJSON(w, http.StatusOK, claims)
}
