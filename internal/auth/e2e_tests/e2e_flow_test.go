package e2e_tests

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legendidle/domain"
	authController "legendidle/internal/auth/controller"
	authMocks "legendidle/internal/auth/mocks"
	authUsecase "legendidle/internal/auth/usecase"
	gameController "legendidle/internal/game/controller"
	gameMocks "legendidle/internal/game/mocks"
	gameUsecase "legendidle/internal/game/usecase"
	"legendidle/internal/service/logger"
	"legendidle/internal/service/middleware"
	"legendidle/internal/service/router"
	"legendidle/internal/service/session"
)

type testApp struct {
	server       *httptest.Server
	client       *http.Client
	userRepo     *authMocks.MockUserRepository
	progressRepo *gameMocks.MockProgressRepository
	store        session.Store
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	logger.AccessLogger = zap.NewNop()
	logger.DBLogger = zap.NewNop()

	store := session.NewMemoryStore()
	sessions := session.NewService(store)

	userRepo := new(authMocks.MockUserRepository)
	progressRepo := new(gameMocks.MockProgressRepository)

	authHandler := authController.NewAuthHandler(authUsecase.NewAuthUsecase(userRepo), sessions)
	gameHandler := gameController.NewGameHandler(gameUsecase.NewGameUsecase(progressRepo), sessions)

	mainRouter := router.SetUpRoutes(authHandler, gameHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.SessionMiddleware(sessions))

	server := httptest.NewServer(mainRouter)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		server:       server,
		client:       &http.Client{Jar: jar},
		userRepo:     userRepo,
		progressRepo: progressRepo,
		store:        store,
	}
}

func (app *testApp) postForm(t *testing.T, path string, form url.Values) string {
	t.Helper()
	resp, err := app.client.Post(app.server.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return readBody(t, resp)
}

func (app *testApp) get(t *testing.T, path string) string {
	t.Helper()
	resp, err := app.client.Get(app.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

// TestGuestToAccountFlowE2E walks the whole front door: start as a guest,
// train a skill, then register and keep the trained progress.
func TestGuestToAccountFlowE2E(t *testing.T) {
	app := setupApp(t)

	// Step 1: an anonymous visitor gets a session cookie on the home page.
	body := app.get(t, "/")
	assert.Contains(t, body, "LegendIdle")
	serverURL, err := url.Parse(app.server.URL)
	require.NoError(t, err)
	cookies := app.client.Jar.Cookies(serverURL)
	require.NotEmpty(t, cookies)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	// Step 2: start playing as a guest. The redirect lands on the game page.
	body = app.postForm(t, "/guest", url.Values{})
	assert.Contains(t, body, "Külaline-")
	assert.Contains(t, body, "Alustasid mängu külalise rollis")
	assert.Contains(t, body, "Tase 1")

	// Step 3: train Maagia. Guests are never persisted, only the session moves.
	body = app.postForm(t, "/train", url.Values{"skill": {"Maagia"}})
	assert.Contains(t, body, "Maagia oskuse tase tõusis!")
	assert.Contains(t, body, "Tase 2")
	app.progressRepo.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything)

	// The flash shows exactly once.
	body = app.get(t, "/game")
	assert.NotContains(t, body, "oskuse tase tõusis")
	assert.Contains(t, body, "Tase 2")

	// Step 4: register. The trained guest progress must reach the store.
	storedProgress := domain.DefaultProgress()
	storedProgress.Skills["Maagia"] = 2
	storedUser := &domain.User{
		UUID:     "user-1",
		Username: "Proovija12",
		Email:    "proovija@example.com",
		Progress: storedProgress,
	}

	var captured domain.CreateUserParams
	app.userRepo.On("CreateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.CreateUserParams)
		}).
		Return(storedUser, nil)

	body = app.postForm(t, "/register", url.Values{
		"username":        {"Proovija12"},
		"email":           {"proovija@example.com"},
		"password":        {"salajane1"},
		"confirmPassword": {"salajane1"},
	})
	assert.Contains(t, body, "külalisena kogutud progress salvestati")
	assert.Contains(t, body, "Proovija12")
	assert.Contains(t, body, "Mängija")
	assert.Contains(t, body, "Tase 2")

	assert.Equal(t, "Proovija12", captured.Username)
	assert.Equal(t, 2, captured.Progress.Skills["Maagia"])
	assert.NotEqual(t, "salajane1", captured.PasswordHash)

	// Step 5: log out. The old session is discarded and a fresh cookie issued.
	oldSID := app.client.Jar.Cookies(serverURL)[0].Value
	body = app.postForm(t, "/logout", url.Values{})
	assert.Contains(t, body, "Oled edukalt välja logitud")
	newSID := app.client.Jar.Cookies(serverURL)[0].Value
	assert.NotEqual(t, oldSID, newSID)

	old, err := app.store.Get(context.Background(), oldSID)
	require.NoError(t, err)
	assert.Nil(t, old)

	body = app.get(t, "/game")
	assert.Contains(t, body, "Seanss puudub")

	app.userRepo.AssertExpectations(t)
}

// TestLoginFailureE2E confirms unknown users and wrong passwords look the same.
func TestLoginFailureE2E(t *testing.T) {
	app := setupApp(t)

	app.userRepo.On("FindByUsername", mock.Anything, "Puudub").
		Return(nil, domain.ErrUserNotFound)

	body := app.postForm(t, "/login", url.Values{
		"username": {"Puudub"},
		"password": {"valeparool"},
	})
	assert.Contains(t, body, "Sisselogimine ebaõnnestus. Kontrolli kasutajanime ja parooli.")
}
