package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zeldean/DBD-Project/internal/middleware"
	"github.com/Zeldean/DBD-Project/internal/models"
	"github.com/Zeldean/DBD-Project/internal/repository"
)

type PublicHandler struct {
	users    UserStore
	products ProductStore
}

func NewPublicHandler(users UserStore, products ProductStore) *PublicHandler {
	return &PublicHandler{users: users, products: products}
}

// POST /api/public/register
func (h *PublicHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// The unique index is the real guarantee; this pre-check just turns the
	// common case into a clean validation message.
	if _, err := h.users.FindByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: Email already exists"})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: req.Password,
		Address:  req.Address,
		Region:   middleware.Region(c),
	}

	if err := h.users.Insert(c.Request.Context(), &user); err != nil {
		if repository.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered", "userId": user.ID.Hex()})
}

// GET /api/public/products
func (h *PublicHandler) ListProducts(c *gin.Context) {
	products, err := h.products.FindByRegion(c.Request.Context(), middleware.Region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}
