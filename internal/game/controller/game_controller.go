package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"legendidle/domain"
	"legendidle/internal/game/usecase"
	"legendidle/internal/service/logger"
	"legendidle/internal/service/middleware"
	"legendidle/internal/service/session"
	"legendidle/internal/service/templates"
)

const maxBodyBytes = 1 << 20

const (
	MsgTrainNoSession   = "Treening ebaõnnestus, sest sa ei ole sisse logitud."
	MsgSkillNotFound    = "Oskust ei leitud."
	MsgSkillUntrainable = "Valitud oskust ei saa hetkel treenida."
	MsgTrainFailed      = "Edenemise salvestamine ebaõnnestus. Proovi uuesti."
	MsgTrainSuccessFmt  = "%s oskuse tase tõusis!"
)

type GameHandler struct {
	usecase  usecase.GameUsecase
	sessions *session.Service
}

func NewGameHandler(usecase usecase.GameUsecase, sessions *session.Service) *GameHandler {
	return &GameHandler{
		usecase:  usecase,
		sessions: sessions,
	}
}

func (h *GameHandler) flashAndRedirect(ctx context.Context, w http.ResponseWriter, r *http.Request, sess *domain.Session, flashType string, message string, location string) {
	if err := h.sessions.SetFlash(ctx, sess, flashType, message); err != nil {
		logger.AccessLogger.Error("Failed to set flash",
			zap.String("request_id", middleware.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	http.Redirect(w, r, location, http.StatusFound)
}

func (h *GameHandler) takeFlash(ctx context.Context, sess *domain.Session) *domain.Flash {
	flash, err := h.sessions.TakeFlash(ctx, sess)
	if err != nil {
		logger.AccessLogger.Error("Failed to take flash",
			zap.String("request_id", middleware.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	return flash
}

func (h *GameHandler) Home(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	sess := middleware.GetSession(r.Context())
	var user *domain.SessionUser
	if sess != nil {
		user = sess.User
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderHome(w, templates.PageData{User: user, Flash: h.takeFlash(ctx, sess)}); err != nil {
		logger.AccessLogger.Error("Failed to render home page", zap.String("request_id", requestID), zap.Error(err))
	}
}

func (h *GameHandler) GamePage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	sess := middleware.GetSession(r.Context())
	var user *domain.SessionUser
	if sess != nil {
		user = sess.User
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderGame(w, templates.GameDataFor(user, h.takeFlash(ctx, sess))); err != nil {
		logger.AccessLogger.Error("Failed to render game page", zap.String("request_id", requestID), zap.Error(err))
	}
}

func (h *GameHandler) Train(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	sanitizer := bluemonday.UGCPolicy()

	logger.AccessLogger.Info("Received Train request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	sess := middleware.GetSession(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		logger.AccessLogger.Error("Failed to parse train form", zap.String("request_id", requestID), zap.Error(err))
		h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgSkillNotFound, "/game")
		return
	}

	skill := sanitizer.Sanitize(r.FormValue("skill"))

	var user *domain.SessionUser
	if sess != nil {
		user = sess.User
	}
	if err := h.usecase.Train(ctx, user, skill); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotLoggedIn):
			h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgTrainNoSession, "/")
		case errors.Is(err, domain.ErrMissingSkill):
			h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgSkillNotFound, "/game")
		case errors.Is(err, domain.ErrUnknownSkill):
			h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgSkillUntrainable, "/game")
		default:
			logger.AccessLogger.Error("Train failed", zap.String("request_id", requestID), zap.Error(err))
			h.flashAndRedirect(ctx, w, r, sess, domain.FlashError, MsgTrainFailed, "/game")
		}
		return
	}

	// SetFlash persists the whole session record, including the bumped progress.
	h.flashAndRedirect(ctx, w, r, sess, domain.FlashSuccess, fmt.Sprintf(MsgTrainSuccessFmt, skill), "/game")

	logger.AccessLogger.Info("Completed Train request",
		zap.String("request_id", requestID),
		zap.String("skill", skill),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusFound),
	)
}

func (h *GameHandler) Styles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(templates.Stylesheet())
}
