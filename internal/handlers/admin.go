package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-be/internal/auth"
	"portfolio-be/internal/catalog"
	"portfolio-be/internal/config"
	"portfolio-be/internal/logger"
	"portfolio-be/internal/middleware"

	"go.uber.org/zap"
)

const (
	adminTokenTTL     = 12 * time.Hour
	maxLoginBodyBytes = 4 << 10
)

type AdminHandler struct {
	cfg *config.Config
	svc catalog.Service
}

func NewAdminHandler(cfg *config.Config, svc catalog.Service) *AdminHandler {
	return &AdminHandler{cfg: cfg, svc: svc}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.ForMethod(r.Context(), "handler", "AdminLogin")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// bcrypt runs on every attempt, known username or not
	passwordOK := auth.CheckPasswordHash(req.Password, h.cfg.AdminPasswordHash)
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUsername)) == 1
	if !usernameOK || !passwordOK {
		log.Warn("admin login rejected", zap.String("username", req.Username))
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, req.Username, auth.RoleAdmin, adminTokenTTL)
	if err != nil {
		log.Error("failed to sign admin token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Could not issue token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    token,
		Path:     "/api/admin",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(adminTokenTTL.Seconds()),
	})

	log.Info("admin login success", zap.String("username", req.Username))
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Reload handles POST /api/admin/reload
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	log := logger.ForMethod(r.Context(), "handler", "AdminReload")
	if claims, ok := middleware.ClaimsFrom(r.Context()); ok {
		log = log.With(zap.String("admin", claims.Subject))
	}

	if err := h.svc.Reload(r.Context()); err != nil {
		log.Error("catalog reload failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Reload failed")
		return
	}

	log.Info("catalog reloaded")
	respondJSON(w, http.StatusOK, h.svc.Stats(r.Context()))
}
