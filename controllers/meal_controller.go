package controllers

import (
	"net/http"
	"strconv"
	"time"

	"bookerino-backend/services"
	"bookerino-backend/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Meals: svc}
}

type CreateMealRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	AvailableDays []int   `json:"availableDays"`
	IsActive      *bool   `json:"isActive"`
	ValidFrom     string  `json:"validFrom"`
	ValidTo       string  `json:"validTo"`
}

// GetMeals handles GET /api/meals.
func (ctrl *MealController) GetMeals(c *gin.Context) {
	meals, err := ctrl.Meals.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// CreateMeal handles POST /api/meals.
func (ctrl *MealController) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	validFrom, err := optionalDate(req.ValidFrom)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	validTo, err := optionalDate(req.ValidTo)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	meal, err := ctrl.Meals.Create(services.MealInput{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		Description:   req.Description,
		AvailableDays: req.AvailableDays,
		IsActive:      req.IsActive,
		ValidFrom:     validFrom,
		ValidTo:       validTo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// ConsumeMeal handles POST /api/meals/:id/consume.
func (ctrl *MealController) ConsumeMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid meal id")
		return
	}

	meal, err := ctrl.Meals.Consume(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
