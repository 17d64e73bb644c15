package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashPassword_SaltVaries(t *testing.T) {
	hash1, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword() error: %v", err)
	}
	hash2, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword() error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("expected different digests for the same input")
	}
	if !checkPassword(hash1, "secret") || !checkPassword(hash2, "secret") {
		t.Error("expected both digests to verify")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword() error: %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{"correct password", hash, "secret", true},
		{"wrong password", hash, "wrong", false},
		{"empty password", hash, "", false},
		{"malformed digest", "not-a-bcrypt-digest", "secret", false},
		{"empty digest", "", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkPassword(tt.hash, tt.password)
			if got != tt.want {
				t.Errorf("checkPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateAndParseSessionToken(t *testing.T) {
	token, err := createSessionToken(42, "alice", "test-secret")
	if err != nil {
		t.Fatalf("createSessionToken() error: %v", err)
	}

	claims, err := parseSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("parseSessionToken() error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", claims.Username)
	}
	if claims.ID == "" {
		t.Error("expected non-empty token id")
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := createSessionToken(42, "alice", "test-secret")
	if err != nil {
		t.Fatalf("createSessionToken() error: %v", err)
	}

	if _, err := parseSessionToken(token, "other-secret"); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseSessionToken_Garbage(t *testing.T) {
	if _, err := parseSessionToken("not-a-token", "test-secret"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	claims := sessionClaims{
		UserID:   42,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := parseSessionToken(token, "test-secret"); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestCurrentSession_NoCookie(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	if session := app.currentSession(req); session != nil {
		t.Error("expected nil session without a cookie")
	}
}

func TestCurrentSession_Valid(t *testing.T) {
	app := setupTestApp(t)

	token, err := createSessionToken(7, "alice", app.config.SessionSecret)
	if err != nil {
		t.Fatalf("createSessionToken() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})

	session := app.currentSession(req)
	if session == nil {
		t.Fatal("expected session, got nil")
	}
	if session.UserID != 7 {
		t.Errorf("expected UserID 7, got %d", session.UserID)
	}
	if session.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", session.Username)
	}
}

func TestCurrentSession_Tampered(t *testing.T) {
	app := setupTestApp(t)

	token, err := createSessionToken(7, "alice", app.config.SessionSecret)
	if err != nil {
		t.Fatalf("createSessionToken() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token + "x"})

	if session := app.currentSession(req); session != nil {
		t.Error("expected nil session for a tampered token")
	}
}

func TestRequireAuth_NoSession(t *testing.T) {
	app := setupTestApp(t)

	handlerCalled := false
	handler := app.requireAuth(func(w http.ResponseWriter, r *http.Request, session *Session) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if handlerCalled {
		t.Error("expected handler not to be called without auth")
	}

	if w.Code != http.StatusFound {
		t.Errorf("expected redirect status %d, got %d", http.StatusFound, w.Code)
	}

	if w.Header().Get("Location") != "/login-form" {
		t.Errorf("expected redirect to /login-form, got %s", w.Header().Get("Location"))
	}
}

func TestRequireAuth_ValidSession(t *testing.T) {
	app := setupTestApp(t)

	token, err := createSessionToken(7, "alice", app.config.SessionSecret)
	if err != nil {
		t.Fatalf("createSessionToken() error: %v", err)
	}

	var got *Session
	handler := app.requireAuth(func(w http.ResponseWriter, r *http.Request, session *Session) {
		got = session
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	w := httptest.NewRecorder()

	handler(w, req)

	if got == nil {
		t.Fatal("expected handler to receive the session")
	}
	if got.UserID != 7 || got.Username != "alice" {
		t.Errorf("unexpected session: %+v", got)
	}

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestGenerateCSRFToken(t *testing.T) {
	token1, err := generateCSRFToken()
	if err != nil {
		t.Fatalf("generateCSRFToken() error: %v", err)
	}

	if len(token1) != 64 { // 32 bytes = 64 hex chars
		t.Errorf("expected token length 64, got %d", len(token1))
	}

	token2, _ := generateCSRFToken()
	if token1 == token2 {
		t.Error("expected unique tokens")
	}
}

func TestValidateCSRF(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		form   string
		want   bool
	}{
		{"matching tokens", "token-123", "token-123", true},
		{"mismatched tokens", "token-123", "token-456", false},
		{"missing form token", "token-123", "", false},
		{"missing cookie", "", "token-123", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			if tt.form != "" {
				form.Set(csrfFieldName, tt.form)
			}
			req := httptest.NewRequest(http.MethodPost, "/login-form", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: tt.cookie})
			}

			if err := req.ParseForm(); err != nil {
				t.Fatalf("parsing form: %v", err)
			}

			if got := validateCSRF(req); got != tt.want {
				t.Errorf("validateCSRF() = %v, want %v", got, tt.want)
			}
		})
	}
}
