package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickmed/accounts-api/internal/auth"
	"github.com/quickmed/accounts-api/internal/model"
	"github.com/quickmed/accounts-api/internal/store"
)

type SignupRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=doctor vendor patient"`
}

// Signup creates an account. Both duplicate checks run before the insert so
// a rejected signup never writes anything.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FormatValidationErrors(err))
		return
	}
	ctx := c.Request.Context()

	taken, err := h.Store.EmailTaken(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	taken, err = h.Store.PhoneTaken(ctx, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone already registered"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}

	user := &model.User{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		UserType:     req.Role,
	}
	if err := h.Store.CreateUser(ctx, user); err != nil {
		// a concurrent signup can slip past the pre-checks, the unique
		// constraints catch it here
		if constraint, ok := store.UniqueViolation(err); ok {
			if strings.Contains(constraint, "phone") {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Phone already registered"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		log.Printf("signup: create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}

type LoginRequest struct {
	Email         string `json:"email"` // email address or phone number
	Password      string `json:"password"`
	UserType      string `json:"userType"`
	UserTypeSnake string `json:"user_type"`
}

// Login verifies credentials and mints the token pair. The same generic
// message covers both unknown identifier and wrong password so responses
// never reveal whether an account exists. The role check runs first and
// returns its own message, mis-selecting the account type on the login form
// is a user mistake worth naming.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userType := req.UserType
	if userType == "" {
		userType = req.UserTypeSnake
	}
	if req.Email == "" || req.Password == "" || userType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	ctx := c.Request.Context()
	var (
		user *model.User
		err  error
	)
	if strings.Contains(req.Email, "@") {
		user, err = h.Store.UserByEmail(ctx, req.Email)
	} else {
		user, err = h.Store.UserByPhone(ctx, req.Email)
	}
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("login: lookup: %v", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login credentials"})
		return
	}

	if user.UserType != userType {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User type does not match"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login credentials"})
		return
	}

	token, err := auth.MakeAccessToken(user.ID, user.UserType, h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	refresh, err := auth.MakeRefreshToken(user.ID, user.UserType, h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	// key names here are a wire contract with the front-end
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"refresh":  refresh,
		"fullName": user.FullName,
		"email":    user.Email,
		"phone":    user.Phone,
		"userType": user.UserType,
	})
}
