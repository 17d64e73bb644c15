package main

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

func (app *App) renderLogin(w http.ResponseWriter, r *http.Request, errMsg string, status int) {
	data := map[string]any{
		"Title":     "Log In",
		"Error":     errMsg,
		"CSRFToken": app.ensureCSRFToken(w, r),
	}

	w.WriteHeader(status)
	if err := app.templates["login.html"].ExecuteTemplate(w, "base", data); err != nil {
		logrus.WithError(err).Warn("rendering login page")
	}
}

func (app *App) renderRegister(w http.ResponseWriter, r *http.Request, errMsg string, status int) {
	data := map[string]any{
		"Title":     "Register",
		"Error":     errMsg,
		"CSRFToken": app.ensureCSRFToken(w, r),
	}

	w.WriteHeader(status)
	if err := app.templates["register.html"].ExecuteTemplate(w, "base", data); err != nil {
		logrus.WithError(err).Warn("rendering register page")
	}
}

// Home shows the login page whether or not the caller is authenticated.
func (app *App) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	app.renderLogin(w, r, "", http.StatusOK)
}

func (app *App) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		app.renderRegister(w, r, "", http.StatusOK)
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		if username == "" || password == "" {
			app.renderRegister(w, r, "Username and password are required", http.StatusBadRequest)
			return
		}

		hash, err := hashPassword(password)
		if err != nil {
			logrus.WithError(err).Warn("hashing password")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		_, err = createUser(app.db, username, hash)
		if errors.Is(err, ErrDuplicateUsername) {
			app.renderRegister(w, r, "Username already taken", http.StatusConflict)
			return
		}
		if err != nil {
			logrus.WithError(err).Warn("creating user")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/login-form", http.StatusFound)
	}
}

func (app *App) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		app.renderLogin(w, r, "", http.StatusOK)
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		user, err := findUserByUsername(app.db, username)
		if err != nil {
			logrus.WithError(err).Warn("looking up user")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		// One branch for both unknown username and wrong password keeps
		// the two failures indistinguishable to the caller.
		if user == nil || !checkPassword(user.PasswordHash, password) {
			app.renderLogin(w, r, "Invalid username or password", http.StatusUnauthorized)
			return
		}

		token, err := createSessionToken(user.ID, user.Username, app.config.SessionSecret)
		if err != nil {
			logrus.WithError(err).Warn("creating session token")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		app.setSessionCookie(w, token)
		http.Redirect(w, r, "/listings", http.StatusFound)
	}
}

func (app *App) Logout(w http.ResponseWriter, r *http.Request) {
	app.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (app *App) Listings(w http.ResponseWriter, r *http.Request, session *Session) {
	listings, err := listingsForOwner(app.db, session.UserID)
	if err != nil {
		logrus.WithError(err).Warn("loading listings")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":     "My Listings",
		"Username":  session.Username,
		"Listings":  listings,
		"CSRFToken": app.ensureCSRFToken(w, r),
	}

	err = app.templates["listings.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		logrus.WithError(err).Warn("rendering listings page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (app *App) AddListing(w http.ResponseWriter, r *http.Request, session *Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")

	if title == "" || description == "" {
		http.Error(w, "Title and description are required", http.StatusBadRequest)
		return
	}

	if _, err := createListing(app.db, title, description, session.UserID); err != nil {
		logrus.WithError(err).Warn("creating listing")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/listings", http.StatusFound)
}
