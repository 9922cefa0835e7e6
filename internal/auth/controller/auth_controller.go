package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"legendidle/domain"
	"legendidle/internal/auth/usecase"
	"legendidle/internal/service/logger"
	"legendidle/internal/service/middleware"
	"legendidle/internal/service/session"
	"legendidle/internal/service/validation"
)

const maxBodyBytes = 1 << 20

// Flash copy shown to players; the UI is Estonian throughout.
const (
	MsgAlreadyLoggedIn  = "Oled juba sisse logitud. Uue konto loomiseks logi palun kõigepealt välja."
	MsgRegisterMissing  = "Kasutajanimi, e-posti aadress ja parool peavad olema täidetud."
	MsgInvalidEmail     = "Palun sisesta kehtiv e-posti aadress."
	MsgPasswordMismatch = "Sisestatud paroolid ei kattu."
	MsgPasswordTooShort = "Parool peab olema vähemalt 8 tähemärki pikk."
	MsgRegisterGuest    = "Konto loodud! Sinu külalisena kogutud progress salvestati uude kontosse."
	MsgRegisterSuccess  = "Konto loodud! Nüüd saad LegendIdle maailma avastada isikliku kasutajaga."
	MsgUsernameTaken    = "Sellise kasutajanimega konto on juba olemas. Palun vali uus nimi."
	MsgEmailTaken       = "Sellise e-posti aadressiga konto on juba olemas. Palun kasuta teist aadressi või logi sisse."
	MsgRegisterFailed   = "Konto loomisel tekkis ootamatu viga. Proovi uuesti."
	MsgLoginMissing     = "Palun täida kasutajanimi ja parool."
	MsgLoginFailed      = "Sisselogimine ebaõnnestus. Kontrolli kasutajanime ja parooli."
	MsgLoginSuccess     = "Tere tulemast tagasi LegendIdle maailma!"
	MsgGuestStarted     = "Alustasid mängu külalise rollis. Head seiklemist!"
	MsgLogout           = "Oled edukalt välja logitud. Näeme varsti taas LegendIdle maailmas!"
)

type AuthHandler struct {
	usecase  usecase.AuthUsecase
	sessions *session.Service
}

func NewAuthHandler(usecase usecase.AuthUsecase, sessions *session.Service) *AuthHandler {
	return &AuthHandler{
		usecase:  usecase,
		sessions: sessions,
	}
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return r.ParseForm()
}

func (h *AuthHandler) flashAndRedirect(ctx context.Context, w http.ResponseWriter, r *http.Request, sess *domain.Session, flashType string, message string, location string) {
	if err := h.sessions.SetFlash(ctx, sess, flashType, message); err != nil {
		logger.AccessLogger.Error("Failed to set flash",
			zap.String("request_id", middleware.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	http.Redirect(w, r, location, http.StatusFound)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	sanitizer := bluemonday.UGCPolicy()

	logger.AccessLogger.Info("Received Register request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	sess := middleware.GetSession(r.Context())
	if err := parseForm(w, r); err != nil {
		logger.AccessLogger.Error("Failed to parse register form", zap.String("request_id", requestID), zap.Error(err))
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgRegisterFailed, "/")
		return
	}

	form := domain.RegisterForm{
		Username:        sanitizer.Sanitize(r.FormValue("username")),
		Email:           sanitizer.Sanitize(r.FormValue("email")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}

	var current *domain.SessionUser
	if sess != nil {
		current = sess.User
	}
	user, wasGuest, err := h.usecase.RegisterUser(ctx, form, current)
	if err != nil {
		h.handleRegisterError(ctx, w, r, sess, err, requestID)
		return
	}

	if err := h.sessions.SetUser(ctx, sess, user); err != nil {
		logger.AccessLogger.Error("Failed to store session user", zap.String("request_id", requestID), zap.Error(err))
	}
	message := MsgRegisterSuccess
	if wasGuest {
		message = MsgRegisterGuest
	}
	h.flashAndRedirect(ctx, w, r, sess, domain.FlashSuccess, message, "/game")

	logger.AccessLogger.Info("Completed Register request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusFound),
	)
}

func (h *AuthHandler) handleRegisterError(ctx context.Context, w http.ResponseWriter, r *http.Request, sess *domain.Session, err error, requestID string) {
	switch {
	case errors.Is(err, domain.ErrAlreadyLoggedIn):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgAlreadyLoggedIn, "/game")
	case errors.Is(err, domain.ErrMissingFields):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgRegisterMissing, "/")
	case errors.Is(err, domain.ErrInvalidUsername):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, validation.UsernameRulesMessage, "/")
	case errors.Is(err, domain.ErrInvalidEmail):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgInvalidEmail, "/")
	case errors.Is(err, domain.ErrPasswordMismatch):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgPasswordMismatch, "/")
	case errors.Is(err, domain.ErrPasswordTooShort):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgPasswordTooShort, "/")
	case errors.Is(err, domain.ErrUsernameTaken):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgUsernameTaken, "/")
	case errors.Is(err, domain.ErrEmailTaken):
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgEmailTaken, "/")
	default:
		logger.AccessLogger.Error("Register failed", zap.String("request_id", requestID), zap.Error(err))
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgRegisterFailed, "/")
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	sanitizer := bluemonday.UGCPolicy()

	logger.AccessLogger.Info("Received Login request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	sess := middleware.GetSession(r.Context())
	if err := parseForm(w, r); err != nil {
		logger.AccessLogger.Error("Failed to parse login form", zap.String("request_id", requestID), zap.Error(err))
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgLoginFailed, "/")
		return
	}

	username := sanitizer.Sanitize(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.usecase.LoginUser(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgLoginMissing, "/")
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgLoginFailed, "/")
		default:
			logger.AccessLogger.Error("Login failed", zap.String("request_id", requestID), zap.Error(err))
			h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgLoginFailed, "/")
		}
		return
	}

	if err := h.sessions.SetUser(ctx, sess, user); err != nil {
		logger.AccessLogger.Error("Failed to store session user", zap.String("request_id", requestID), zap.Error(err))
	}
	h.flashAndRedirect(ctx, w, r, sess, domain.FlashSuccess, MsgLoginSuccess, "/game")

	logger.AccessLogger.Info("Completed Login request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusFound),
	)
}

func (h *AuthHandler) Guest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received Guest request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	sess := middleware.GetSession(r.Context())
	user := h.usecase.GuestUser()
	if err := h.sessions.SetUser(ctx, sess, user); err != nil {
		logger.AccessLogger.Error("Failed to store guest user", zap.String("request_id", requestID), zap.Error(err))
	}
	h.flashAndRedirect(ctx, w, r, sess, domain.FlashSuccess, MsgGuestStarted, "/game")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received Logout request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	sess := middleware.GetSession(r.Context())
	fresh, err := h.sessions.Reset(ctx, w, sess)
	if err != nil {
		logger.AccessLogger.Error("Failed to reset session", zap.String("request_id", requestID), zap.Error(err))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.flashAndRedirect(ctx, w, r, fresh, domain.FlashSuccess, MsgLogout, "/")
}

func (h *AuthHandler) Availability(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	username := r.URL.Query().Get("username")
	email := r.URL.Query().Get("email")

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if username == "" && email == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing username or email"})
		return
	}

	response, err := h.usecase.CheckAvailability(ctx, username, email)
	if err != nil {
		logger.AccessLogger.Error("Availability check failed", zap.String("request_id", requestID), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Availability check failed"})
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.AccessLogger.Error("Failed to encode availability response", zap.String("request_id", requestID), zap.Error(err))
	}
}
