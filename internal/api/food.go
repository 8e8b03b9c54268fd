package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// FoodHandler serves the food catalogue endpoints.
type FoodHandler struct {
	foods  *service.FoodService
	images *service.ImageService
}

// NewFoodHandler creates a new FoodHandler instance. images may be nil when
// no object storage is configured; the upload endpoint then returns 503.
func NewFoodHandler(foods *service.FoodService, images *service.ImageService) *FoodHandler {
	return &FoodHandler{foods: foods, images: images}
}

// RegisterRoutes wires the food endpoints. Reads are public, writes require auth.
func (h *FoodHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	foods := public.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/:id", h.GetFood)
		foods.GET("/:id/similar", h.SimilarFoods)
	}
	authed := protected.Group("/foods")
	{
		authed.POST("", h.CreateFood)
		authed.POST("/bulk", h.CreateFoodsBulk)
		authed.PUT("/:id", h.UpdateFood)
		authed.DELETE("/:id", h.DeleteFood)
		authed.POST("/:id/image", h.UploadImage)
	}
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	mealType := c.Query("meal_type")
	macro := c.Query("macro_nutrient")
	tag := c.Query("dietary_tag")

	foods, err := h.foods.ListFoods(c.Request.Context(), mealType, macro, tag)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": newFoodResponses(foods)})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	food, err := h.foods.GetFood(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get food"})
		return
	}

	c.JSON(http.StatusOK, newFoodResponse(food))
}

func (h *FoodHandler) SimilarFoods(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
			return
		}
		limit = n
	}

	foods, err := h.foods.SimilarFoods(c.Request.Context(), id, limit)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find similar foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": newFoodResponses(foods)})
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	var req types.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.CreateFood(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food"})
		return
	}

	c.JSON(http.StatusCreated, newFoodResponse(food))
}

func (h *FoodHandler) CreateFoodsBulk(c *gin.Context) {
	var reqs []types.CreateFoodRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one food is required"})
		return
	}

	foods, err := h.foods.CreateFoodsBulk(c.Request.Context(), reqs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create foods"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"foods": newFoodResponses(foods)})
}

func (h *FoodHandler) UpdateFood(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.UpdateFood(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food"})
		return
	}

	c.JSON(http.StatusOK, newFoodResponse(food))
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.foods.DeleteFood(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}

func (h *FoodHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	food, err := h.foods.GetFood(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get food"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	url, err := h.images.UploadFoodImage(c.Request.Context(), food.ID, file, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	imageURL := url
	updated, err := h.foods.UpdateFood(c.Request.Context(), id, &types.UpdateFoodRequest{ImageURL: &imageURL})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image url"})
		return
	}

	c.JSON(http.StatusOK, newFoodResponse(updated))
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
