package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zeldean/DBD-Project/internal/middleware"
	"github.com/Zeldean/DBD-Project/internal/models"
	"github.com/Zeldean/DBD-Project/internal/repository"
)

type UserHandler struct {
	products ProductStore
	orders   OrderStore
}

func NewUserHandler(products ProductStore, orders OrderStore) *UserHandler {
	return &UserHandler{products: products, orders: orders}
}

// GET /api/user/profile
func (h *UserHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Principal(c))
}

// GET /api/user/orders
func (h *UserHandler) ListOrders(c *gin.Context) {
	user := middleware.Principal(c)
	region := middleware.Region(c)

	orders, err := h.orders.FindByUserInRegion(c.Request.Context(), user.ID, region)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	resolved, err := h.resolveOrders(c, orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// resolveOrders swaps each item's product reference for the full product
// document. References to since-deleted products resolve to null.
func (h *UserHandler) resolveOrders(c *gin.Context, orders []models.Order) ([]models.ResolvedOrder, error) {
	ids := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)
	for _, o := range orders {
		for _, item := range o.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}

	byID := make(map[primitive.ObjectID]*models.Product)
	if len(ids) > 0 {
		products, err := h.products.FindByIDs(c.Request.Context(), ids)
		if err != nil {
			return nil, err
		}
		for i := range products {
			byID[products[i].ID] = &products[i]
		}
	}

	resolved := make([]models.ResolvedOrder, 0, len(orders))
	for _, o := range orders {
		items := make([]models.ResolvedOrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, models.ResolvedOrderItem{
				Product:  byID[item.ProductID],
				Quantity: item.Quantity,
			})
		}
		resolved = append(resolved, models.ResolvedOrder{
			ID:         o.ID,
			UserID:     o.UserID,
			Items:      items,
			TotalPrice: o.TotalPrice,
			Status:     o.Status,
			OrderDate:  o.OrderDate,
			Region:     o.Region,
		})
	}
	return resolved, nil
}

type createOrderRequest struct {
	Items      []models.OrderItem `json:"items"`
	TotalPrice *float64           `json:"totalPrice"`
}

// POST /api/user/orders
func (h *UserHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order structure"})
		return
	}
	if len(req.Items) == 0 || req.TotalPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order structure"})
		return
	}

	order := models.Order{
		UserID:     middleware.Principal(c).ID,
		Items:      req.Items,
		TotalPrice: *req.TotalPrice,
		Region:     middleware.Region(c),
	}

	if err := h.orders.Insert(c.Request.Context(), &order); err != nil {
		if repository.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order creation failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// DELETE /api/user/orders/:id
//
// Ownership, region, and Pending status are all folded into the delete
// filter; any mismatch reports the same not-found.
func (h *UserHandler) DeleteOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending order not found or not allowed to delete"})
		return
	}

	order, err := h.orders.DeletePending(c.Request.Context(), id, middleware.Principal(c).ID, middleware.Region(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pending order not found or not allowed to delete"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully", "deletedOrderId": order.ID.Hex()})
}

// GET /api/user/spending
func (h *UserHandler) Spending(c *gin.Context) {
	orders, err := h.orders.FindByUserInRegion(c.Request.Context(), middleware.Principal(c).ID, middleware.Region(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var total float64
	for _, o := range orders {
		total += o.TotalPrice
	}
	c.JSON(http.StatusOK, gin.H{"totalSpending": total})
}

// GET /api/user/reviews
func (h *UserHandler) ListReviews(c *gin.Context) {
	reviews, err := h.products.ReviewsByUser(c.Request.Context(), middleware.Region(c), middleware.Principal(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type addReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// POST /api/user/reviews
//
// Appends without checking for an existing review by the same user, so a
// user can hold several reviews on one product through this path.
func (h *UserHandler) AddReview(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or unavailable in region"})
		return
	}

	product, err := h.products.FindByIDInRegion(c.Request.Context(), id, middleware.Region(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or unavailable in region"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	product.Reviews = append(product.Reviews, models.Review{
		ID:        primitive.NewObjectID(),
		UserID:    middleware.Principal(c).ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	})

	if err := h.products.Save(c.Request.Context(), product); err != nil {
		if repository.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to submit review: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// PUT /api/user/reviews/:productId
//
// Unlike AddReview, this path requires the user's single existing review
// and mutates it in place through a read-modify-write on the product.
func (h *UserHandler) UpdateReview(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review format"})
		return
	}
	if req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 || req.Comment == nil || *req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review format"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in this region"})
		return
	}

	product, err := h.products.FindByIDInRegion(c.Request.Context(), id, middleware.Region(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in this region"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	review := product.ReviewBy(middleware.Principal(c).ID)
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found for this user"})
		return
	}

	review.Rating = *req.Rating
	review.Comment = *req.Comment
	review.CreatedAt = time.Now()

	if err := h.products.Save(c.Request.Context(), product); err != nil {
		if repository.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update review: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "review": review})
}
