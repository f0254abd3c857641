package controllers

import (
	"net/http"
	"strconv"

	"bookerino-backend/services"
	"bookerino-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// CreateBookingRequest accepts the room either as "room" (room number) or
// "roomId". Dates travel as YYYY-MM-DD strings.
type CreateBookingRequest struct {
	GuestName  string  `json:"guestName" binding:"required"`
	GuestEmail string  `json:"guestEmail" binding:"required"`
	GuestPhone string  `json:"guestPhone"`
	Room       string  `json:"room"`
	RoomID     uint    `json:"roomId"`
	CheckIn    string  `json:"checkIn" binding:"required"`
	CheckOut   string  `json:"checkOut" binding:"required"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
}

// GetBookings handles GET /api/bookings?limit=N.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	bookings, err := ctrl.Bookings.List(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /api/bookings.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	roomRef := req.Room
	if roomRef == "" && req.RoomID != 0 {
		roomRef = strconv.FormatUint(uint64(req.RoomID), 10)
	}

	booking, err := ctrl.Bookings.Create(services.BookingInput{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		RoomRef:    roomRef,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// parseLimit tolerates absent or malformed limits; 0 means unlimited.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
