package handler

import (
	"encoding/json"
	"errors"

	"skill-bridge/internal/delivery/http/dto"
	"skill-bridge/internal/delivery/http/middleware"
	"skill-bridge/internal/pkg/response"
	ucauth "skill-bridge/internal/usecase/auth"
	"skill-bridge/internal/validation"
	"skill-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc ucauth.Usecase
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupRequest struct {
	Username        string          `json:"username"`
	Password        string          `json:"password"`
	ConfirmPassword string          `json:"confirmPassword"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Role            string          `json:"role"`
	Skills          json.RawMessage `json:"skills"`
	LinkedinProfile string          `json:"linkedinProfile"`
	GithubProfile   string          `json:"githubProfile"`
}

func NewAuthHandler(uc ucauth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	skills, err := parseSkills(req.Skills)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skills format", err)
	}

	acct, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Role:            req.Role,
		Skills:          skills,
		LinkedinProfile: req.LinkedinProfile,
		GithubProfile:   req.GithubProfile,
	})
	if err != nil {
		return mapAuthError(err)
	}

	ws.NotifyMemberJoined(acct.Username, acct.Role)

	return response.User(c, fiber.StatusCreated, dto.NewAccountResponse(acct))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	acct, err := h.uc.Login(c.Context(), ucauth.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.User(c, fiber.StatusOK, dto.NewAccountResponse(acct))
}

// parseSkills accepts the client's JSON-stringified array ("[\"Go\"]") as
// well as a plain array, and treats an absent value as no skills.
func parseSkills(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var skills []string
	if err := json.Unmarshal(raw, &skills); err == nil {
		return skills, nil
	}

	var stringified string
	if err := json.Unmarshal(raw, &stringified); err != nil {
		return nil, err
	}
	if stringified == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(stringified), &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func mapAuthError(err error) error {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return middleware.NewAppError(fiber.StatusBadRequest, vErr.Message, err)
	case errors.Is(err, ucauth.ErrDuplicateAccount):
		return middleware.NewAppError(fiber.StatusConflict, response.MessageDuplicateAccount, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidCredentials, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
