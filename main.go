package main

import (
	"database/sql"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

type App struct {
	db        *sql.DB
	templates map[string]*template.Template
	config    *Config
}

func NewApp(db *sql.DB, config *Config) *App {
	return &App{
		db:        db,
		templates: loadTemplates(),
		config:    config,
	}
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	config := loadConfig()

	db, err := openDB(config.DBPath)
	if err != nil {
		logrus.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = initDB(db); err != nil {
		logrus.Fatalf("initializing database: %v", err)
	}

	app := NewApp(db, config)

	fs := http.FileServer(http.Dir("static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	// Public routes
	http.HandleFunc("/", app.Home)
	http.HandleFunc("/register-form", app.Register)
	http.HandleFunc("/login-form", app.Login)
	http.HandleFunc("/logout", app.Logout)

	// Protected routes
	http.HandleFunc("/listings", app.requireAuth(app.Listings))
	http.HandleFunc("/add-listing", app.requireAuth(app.AddListing))

	logrus.Info("Server starting on :" + config.AppPort)
	logrus.Fatal(http.ListenAndServe(":"+config.AppPort, nil))
}
