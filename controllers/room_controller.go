package controllers

import (
	"net/http"

	"bookerino-backend/models"
	"bookerino-backend/services"
	"bookerino-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

type CreateRoomRequest struct {
	RoomNumber  string  `json:"roomNumber" binding:"required"`
	Type        string  `json:"type"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetRooms handles GET /api/rooms.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms.
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := ctrl.Rooms.Create(models.Room{
		RoomNumber:  req.RoomNumber,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Status:      req.Status,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoomStatus handles PATCH /api/rooms/:id/status. The path parameter
// may be a room number or a numeric ID.
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	var req UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := ctrl.Rooms.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
