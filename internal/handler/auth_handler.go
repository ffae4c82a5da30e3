package handler

import (
	"net/http"
	"time"

	"tracking-service/internal/model"
	"tracking-service/pkg/database"
	"tracking-service/pkg/jwtutil"
	"tracking-service/pkg/logger"
	"tracking-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest defines the structure for account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	KnownAs  string `json:"known_as"`
}

// Register creates a new account
func Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("user", "register")

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	// Reject duplicate usernames
	var count int64
	database.GetDB().Model(&model.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		log.Warn("Username already taken", zap.String("username", req.Username))
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already taken"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	user := model.User{
		Username: req.Username,
		Password: string(hashedPassword),
		KnownAs:  req.KnownAs,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&user); result.Error != nil {
		log.Error("Failed to create user", zap.String("username", req.Username), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("User registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and issues a JWT
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("user", "login")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().Where("username = ?", req.Username).First(&user)
	if result.Error != nil {
		log.Warn("User not found", zap.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(user.Username, user.ID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User logged in", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}
