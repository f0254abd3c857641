package controllers

import (
	"net/http"
	"strconv"

	"bookerino-backend/services"
	"bookerino-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: svc}
}

type CreateReviewRequest struct {
	Room      string `json:"room"`
	RoomID    uint   `json:"roomId"`
	GuestName string `json:"guestName" binding:"required"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

// GetReviews handles GET /api/reviews?limit=N.
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	reviews, err := ctrl.Reviews.List(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /api/reviews.
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	roomRef := req.Room
	if roomRef == "" && req.RoomID != 0 {
		roomRef = strconv.FormatUint(uint64(req.RoomID), 10)
	}

	review, err := ctrl.Reviews.Create(services.ReviewInput{
		RoomRef:   roomRef,
		GuestName: req.GuestName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// RespondToReview handles PATCH /api/reviews/:id/response.
func (ctrl *ReviewController) RespondToReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var req ReviewResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	review, err := ctrl.Reviews.Respond(uint(id), req.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
