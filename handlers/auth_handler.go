package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/apperror"
	"QR-Code-Tracker/pkg/password"
	"QR-Code-Tracker/pkg/token"
	util "QR-Code-Tracker/pkg/utils"
	"QR-Code-Tracker/repository"
)

const storeTimeout = 5 * time.Second

type AuthHandler struct {
	userRepo repository.UserRepository
	maker    token.Maker
}

func NewAuthHandler(userRepo repository.UserRepository, maker token.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		maker:    maker,
	}
}

// Register godoc
// @Summary Register User
// @Description Creates an account. Emails are unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.UserRegisterPayload true "Registration data"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse "Missing fields or user already exists"
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return apperror.Decode("Invalid request body", err)
	}
	payload.Email = strings.TrimSpace(payload.Email)

	if violations := util.ValidateStruct(payload); violations != nil {
		return apperror.Validation("Missing required fields", violations...)
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return apperror.Internal("Failed to hash password", err)
	}

	newUser := &models.User{
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	userID, err := h.userRepo.CreateUser(ctx, newUser)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return apperror.Conflict("User already exists")
		}
		return apperror.Internal("Failed to register user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.RegisterSuccessResponse{
		Message: "User registered successfully",
		UserID:  userID.Hex(),
	})
}

// Login godoc
// @Summary Login User
// @Description Checks credentials and issues an access and a refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return apperror.Decode("Invalid request body", err)
	}
	payload.Email = strings.TrimSpace(payload.Email)

	if violations := util.ValidateStruct(payload); violations != nil {
		return apperror.Validation("Missing required fields", violations...)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return apperror.Internal("Failed to look up user", err)
	}
	if user == nil || !password.CheckPasswordHash(payload.Password, user.PasswordHash) {
		return apperror.Unauthorized("Invalid email or password", nil)
	}

	accessToken, _, err := h.maker.CreateToken(user.ID, token.Access)
	if err != nil {
		return apperror.Internal("Failed to create token", err)
	}
	refreshToken, _, err := h.maker.CreateToken(user.ID, token.Refresh)
	if err != nil {
		return apperror.Internal("Failed to create token", err)
	}

	return c.Status(fiber.StatusOK).JSON(models.LoginSuccessResponse{
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh godoc
// @Summary Refresh Access Token
// @Description Exchanges a live refresh token for a new access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.RefreshTokenPayload true "Refresh token"
// @Success 200 {object} models.RefreshSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse "Refresh token missing"
// @Failure 401 {object} models.ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var payload models.RefreshTokenPayload
	if err := c.BodyParser(&payload); err != nil {
		return apperror.Decode("Invalid request body", err)
	}

	if violations := util.ValidateStruct(payload); violations != nil {
		return apperror.Validation("Refresh token is required", violations...)
	}

	userID, err := token.ValidateKind(h.maker, payload.RefreshToken, token.Refresh)
	if err != nil {
		return apperror.Unauthorized("Invalid or expired refresh token", err)
	}

	accessToken, _, err := h.maker.CreateToken(userID, token.Access)
	if err != nil {
		return apperror.Internal("Failed to create token", err)
	}

	return c.Status(fiber.StatusOK).JSON(models.RefreshSuccessResponse{AccessToken: accessToken})
}
