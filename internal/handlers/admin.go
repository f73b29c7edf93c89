package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zeldean/DBD-Project/internal/middleware"
	"github.com/Zeldean/DBD-Project/internal/models"
)

type AdminHandler struct {
	users    UserStore
	products ProductStore
	orders   OrderStore
}

func NewAdminHandler(users UserStore, products ProductStore, orders OrderStore) *AdminHandler {
	return &AdminHandler{users: users, products: products, orders: orders}
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.FindByRegion(c.Request.Context(), middleware.Region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.FindByRegion(c.Request.Context(), middleware.Region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	owners := make(map[primitive.ObjectID]*models.User)
	result := make([]models.OrderWithUser, 0, len(orders))
	for _, o := range orders {
		owner, ok := owners[o.UserID]
		if !ok {
			// Dangling owner references resolve to null, like an
			// unmatched populate.
			owner, _ = h.users.FindByID(c.Request.Context(), o.UserID)
			owners[o.UserID] = owner
		}
		result = append(result, models.OrderWithUser{Order: o, User: owner})
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/products
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.products.FindByRegion(c.Request.Context(), middleware.Region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// DELETE /api/admin/product/:id
//
// Deletes by id alone, in whatever region the product lives.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	deleted, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": deleted})
}

// GET /api/admin/stats/sales
func (h *AdminHandler) SalesStats(c *gin.Context) {
	stats, err := h.orders.SalesStats(c.Request.Context(), middleware.Region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute sales stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
