package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"legendidle/domain"
)

const CookieName = "sid"

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Attach resolves the session from the request cookie, creating a new one
// when the cookie is absent or stale. The cookie is (re)set on every response.
func (s *Service) Attach(w http.ResponseWriter, r *http.Request) (*domain.Session, error) {
	ctx := r.Context()
	var session *domain.Session
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		session, err = s.store.Get(ctx, cookie.Value)
		if err != nil {
			return nil, err
		}
	}
	if session == nil {
		session = &domain.Session{ID: uuid.New().String()}
		if err := s.store.Set(ctx, session); err != nil {
			return nil, err
		}
	}
	setCookie(w, session.ID)
	return session, nil
}

// Reset discards the current record and issues a fresh identifier. Used on
// logout to prevent session fixation.
func (s *Service) Reset(ctx context.Context, w http.ResponseWriter, current *domain.Session) (*domain.Session, error) {
	if current != nil {
		if err := s.store.Delete(ctx, current.ID); err != nil {
			return nil, err
		}
	}
	session := &domain.Session{ID: uuid.New().String()}
	if err := s.store.Set(ctx, session); err != nil {
		return nil, err
	}
	setCookie(w, session.ID)
	return session, nil
}

func (s *Service) Save(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return nil
	}
	return s.store.Set(ctx, session)
}

func (s *Service) SetUser(ctx context.Context, session *domain.Session, user *domain.SessionUser) error {
	if session == nil {
		return nil
	}
	session.User = user
	return s.store.Set(ctx, session)
}

func (s *Service) SetFlash(ctx context.Context, session *domain.Session, flashType string, message string) error {
	if session == nil {
		return nil
	}
	session.Flash = &domain.Flash{Type: flashType, Message: message}
	return s.store.Set(ctx, session)
}

// TakeFlash is the one-shot read: the stored flash is cleared before it is
// returned.
func (s *Service) TakeFlash(ctx context.Context, session *domain.Session) (*domain.Flash, error) {
	if session == nil || session.Flash == nil {
		return nil, nil
	}
	flash := session.Flash
	session.Flash = nil
	if err := s.store.Set(ctx, session); err != nil {
		return flash, err
	}
	return flash, nil
}
