package main

import (
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var ErrDuplicateUsername = errors.New("username already taken")

func findUserByUsername(db *sql.DB, username string) (*User, error) {
	row := db.QueryRow(`
		SELECT id, username, password_hash
		FROM users
		WHERE username = ?`, username)

	var user User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return &user, nil
}

// createUser inserts a new user record. The UNIQUE constraint on username
// arbitrates concurrent registration, so there is no check-then-insert race.
func createUser(db *sql.DB, username, passwordHash string) (*User, error) {
	result, err := db.Exec(`
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new user id: %w", err)
	}

	return &User{ID: int(id), Username: username, PasswordHash: passwordHash}, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
