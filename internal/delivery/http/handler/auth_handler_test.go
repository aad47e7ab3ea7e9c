package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"skill-bridge/internal/delivery/http/middleware"
	"skill-bridge/internal/domain/account"
	ucauth "skill-bridge/internal/usecase/auth"
	"skill-bridge/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type fakeAuthUsecase struct {
	registerErr error
	loginErr    error

	lastRegister ucauth.RegisterInput
}

func (f *fakeAuthUsecase) Register(_ context.Context, in ucauth.RegisterInput) (account.Account, error) {
	f.lastRegister = in
	if f.registerErr != nil {
		return account.Account{}, f.registerErr
	}
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	role := in.Role
	if role == "" {
		role = account.DefaultRole
	}
	return account.Account{
		ID:        1,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Role:      role,
		Skills:    skills,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (f *fakeAuthUsecase) Login(_ context.Context, in ucauth.LoginInput) (account.Account, error) {
	if f.loginErr != nil {
		return account.Account{}, f.loginErr
	}
	return account.Account{ID: 1, Username: in.Username, Role: account.DefaultRole, Skills: []string{}}, nil
}

func newTestApp(uc ucauth.Usecase) *fiber.App {
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewAuthHandler(uc).RegisterRoutes(app)
	return app
}

type wireResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user"`
}

type wireUser struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills"`
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, wireResponse) {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("response not valid JSON: %q", raw)
	}
	return resp.StatusCode, wire
}

func TestSignupSuccess(t *testing.T) {
	uc := &fakeAuthUsecase{}
	app := newTestApp(uc)

	status, wire := postJSON(t, app, "/signup", map[string]any{
		"username":        "alice1",
		"password":        "Passw0rd",
		"confirmPassword": "Passw0rd",
		"firstName":       "Alice",
		"lastName":        "Smith",
		"email":           "alice@example.com",
		"skills":          `["Go","Machine Learning"]`,
	})

	if status != fiber.StatusCreated {
		t.Fatalf("status = %d", status)
	}
	if !wire.Success {
		t.Fatalf("success = false, message = %q", wire.Message)
	}

	var u wireUser
	if err := json.Unmarshal(wire.User, &u); err != nil {
		t.Fatalf("user payload: %v", err)
	}
	if u.ID != 1 || u.Username != "alice1" || u.Role != "student" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(uc.lastRegister.Skills) != 2 || uc.lastRegister.Skills[0] != "Go" {
		t.Fatalf("stringified skills not parsed: %v", uc.lastRegister.Skills)
	}
}

func TestSignupSkillsAsPlainArray(t *testing.T) {
	uc := &fakeAuthUsecase{}
	app := newTestApp(uc)

	status, _ := postJSON(t, app, "/signup", map[string]any{
		"username":        "alice1",
		"password":        "Passw0rd",
		"confirmPassword": "Passw0rd",
		"firstName":       "Alice",
		"lastName":        "Smith",
		"email":           "alice@example.com",
		"skills":          []string{"DevOps"},
	})

	if status != fiber.StatusCreated {
		t.Fatalf("status = %d", status)
	}
	if len(uc.lastRegister.Skills) != 1 || uc.lastRegister.Skills[0] != "DevOps" {
		t.Fatalf("array skills not parsed: %v", uc.lastRegister.Skills)
	}
}

func TestSignupValidationFailure(t *testing.T) {
	uc := &fakeAuthUsecase{
		registerErr: &validation.Error{Message: "Passwords do not match"},
	}
	app := newTestApp(uc)

	status, wire := postJSON(t, app, "/signup", map[string]any{
		"username": "alice1",
	})

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if wire.Success {
		t.Fatalf("expected success=false")
	}
	if wire.Message != "Passwords do not match" {
		t.Fatalf("message = %q", wire.Message)
	}
}

func TestSignupDuplicate(t *testing.T) {
	uc := &fakeAuthUsecase{registerErr: ucauth.ErrDuplicateAccount}
	app := newTestApp(uc)

	status, wire := postJSON(t, app, "/signup", map[string]any{
		"username": "alice1",
	})

	if status != fiber.StatusConflict {
		t.Fatalf("status = %d", status)
	}
	if wire.Message != "Username or email already exists" {
		t.Fatalf("message = %q", wire.Message)
	}
}

func TestSignupStorageFaultHidesDetail(t *testing.T) {
	uc := &fakeAuthUsecase{registerErr: ucauth.ErrStorage}
	app := newTestApp(uc)

	status, wire := postJSON(t, app, "/signup", map[string]any{
		"username": "alice1",
	})

	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if wire.Message != "Something went wrong. Please try again." {
		t.Fatalf("message = %q", wire.Message)
	}
}

func TestSignupBadSkillsPayload(t *testing.T) {
	app := newTestApp(&fakeAuthUsecase{})

	status, wire := postJSON(t, app, "/signup", map[string]any{
		"username": "alice1",
		"skills":   "not json",
	})

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if wire.Message != "Invalid skills format" {
		t.Fatalf("message = %q", wire.Message)
	}
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(&fakeAuthUsecase{})

	status, wire := postJSON(t, app, "/login", map[string]any{
		"username": "alice1",
		"password": "Passw0rd",
	})

	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !wire.Success {
		t.Fatalf("success = false, message = %q", wire.Message)
	}

	var u wireUser
	if err := json.Unmarshal(wire.User, &u); err != nil {
		t.Fatalf("user payload: %v", err)
	}
	if u.Skills == nil {
		t.Fatalf("skills serialized as null")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := newTestApp(&fakeAuthUsecase{loginErr: ucauth.ErrInvalidCredentials})

	status, wire := postJSON(t, app, "/login", map[string]any{
		"username": "alice1",
		"password": "wrong",
	})

	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", status)
	}
	if wire.Message != "Invalid username or password" {
		t.Fatalf("message = %q", wire.Message)
	}
}
