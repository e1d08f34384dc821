package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/cyclia-app/cyclia/internal/db"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyclia-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("access sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, time.Hour)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func requireStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()

	if response.StatusCode != want {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d (body: %s)", want, response.StatusCode, string(body))
	}
}

type registeredUser struct {
	Token        string
	RecoveryCode string
	UserID       uint
}

func registerTestAccount(t *testing.T, app *fiber.App, email string) registeredUser {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"display_name":     "Test User",
		"email":            email,
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	})
	requireStatus(t, response, fiber.StatusCreated)

	payload := struct {
		Token        string `json:"token"`
		RecoveryCode string `json:"recovery_code"`
		User         struct {
			ID uint `json:"id"`
		} `json:"user"`
	}{}
	decodeJSONBody(t, response, &payload)

	if payload.Token == "" {
		t.Fatal("expected access token in register response")
	}
	return registeredUser{
		Token:        payload.Token,
		RecoveryCode: payload.RecoveryCode,
		UserID:       payload.User.ID,
	}
}

func createTestCycle(t *testing.T, app *fiber.App, token string, start string, end string, symptoms []fiber.Map) cycleView {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/cycles", token, fiber.Map{
		"start_date": start,
		"end_date":   end,
		"notes":      "",
		"symptoms":   symptoms,
	})
	requireStatus(t, response, fiber.StatusCreated)

	created := cycleView{}
	decodeJSONBody(t, response, &created)
	return created
}
