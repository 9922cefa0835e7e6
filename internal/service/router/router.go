package router

import (
	"net/http"

	"github.com/gorilla/mux"

	auth "legendidle/internal/auth/controller"
	game "legendidle/internal/game/controller"
)

func SetUpRoutes(authHandler *auth.AuthHandler, gameHandler *game.GameHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", gameHandler.Home).Methods("GET")                     // Home page with login/register forms
	router.HandleFunc("/game", gameHandler.GamePage).Methods("GET")             // Game view
	router.HandleFunc("/availability", authHandler.Availability).Methods("GET") // Username/email availability check
	router.HandleFunc("/styles.css", gameHandler.Styles).Methods("GET")         // Static stylesheet
	router.HandleFunc("/register", authHandler.Register).Methods("POST")        // Create account
	router.HandleFunc("/login", authHandler.Login).Methods("POST")              // Log in
	router.HandleFunc("/guest", authHandler.Guest).Methods("POST")              // Start guest session
	router.HandleFunc("/train", gameHandler.Train).Methods("POST")              // Train a skill
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")            // Log out

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Lehte ei leitud."))
	})

	return router
}
