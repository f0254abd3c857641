// Package console is the interactive front desk surface. It only formats
// input and output; every decision is delegated to the services, the same
// ones the HTTP API uses.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bookerino-backend/models"
	"bookerino-backend/services"
	"bookerino-backend/utils"
)

// recentLimit caps booking and review listings to the most recent entries.
const recentLimit = 20

// commentWidth is the display width for review comments. The stored comment
// is never touched.
const commentWidth = 60

type Menu struct {
	rooms     *services.RoomService
	bookings  *services.BookingService
	reviews   *services.ReviewService
	analytics *services.AnalyticsService

	in  *bufio.Scanner
	out io.Writer
}

func New(
	rooms *services.RoomService,
	bookings *services.BookingService,
	reviews *services.ReviewService,
	analytics *services.AnalyticsService,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		rooms:     rooms,
		bookings:  bookings,
		reviews:   reviews,
		analytics: analytics,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run drives the menu loop until the user exits or input ends. Operation
// errors are printed and the loop continues.
func (m *Menu) Run() {
	fmt.Fprintln(m.out, "=====================================")
	fmt.Fprintln(m.out, "       Welcome to BOOKERINO!")
	fmt.Fprintln(m.out, "=====================================")

	for {
		fmt.Fprintln(m.out, "\n=== MAIN MENU ===")
		fmt.Fprintln(m.out, "1. Manage Rooms")
		fmt.Fprintln(m.out, "2. Manage Bookings")
		fmt.Fprintln(m.out, "3. Manage Reviews")
		fmt.Fprintln(m.out, "4. Analytics")
		fmt.Fprintln(m.out, "5. Exit")

		switch m.promptInt("Choose an option (1-5): ") {
		case 1:
			m.roomsMenu()
		case 2:
			m.bookingsMenu()
		case 3:
			m.reviewsMenu()
		case 4:
			m.showAnalytics()
		case 5, -1:
			fmt.Fprintln(m.out, "\nGoodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
	}
}

func (m *Menu) roomsMenu() {
	fmt.Fprintln(m.out, "\n=== MANAGE ROOMS ===")
	fmt.Fprintln(m.out, "1. List all rooms")
	fmt.Fprintln(m.out, "2. Add a new room")
	fmt.Fprintln(m.out, "3. Back")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.listRooms()
	case 2:
		m.addRoom()
	}
}

func (m *Menu) bookingsMenu() {
	fmt.Fprintln(m.out, "\n=== MANAGE BOOKINGS ===")
	fmt.Fprintln(m.out, "1. List all bookings")
	fmt.Fprintln(m.out, "2. Add a new booking")
	fmt.Fprintln(m.out, "3. Back")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.listBookings()
	case 2:
		m.addBooking()
	}
}

func (m *Menu) reviewsMenu() {
	fmt.Fprintln(m.out, "\n=== MANAGE REVIEWS ===")
	fmt.Fprintln(m.out, "1. List all reviews")
	fmt.Fprintln(m.out, "2. Add a new review")
	fmt.Fprintln(m.out, "3. Back")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.listReviews()
	case 2:
		m.addReview()
	}
}

func (m *Menu) listRooms() {
	rooms, err := m.rooms.List()
	if err != nil {
		fmt.Fprintln(m.out, "Error listing rooms:", err)
		return
	}

	fmt.Fprintln(m.out, "\n--- ROOMS ---")
	fmt.Fprintf(m.out, "%-12s%-16s%-14s%-12s%-10s\n", "Room", "Type", "Price/Night", "Status", "Capacity")
	fmt.Fprintln(m.out, strings.Repeat("-", 70))
	for _, r := range rooms {
		fmt.Fprintf(m.out, "%-12s%-16s%10.2f    %-12s%-10d\n",
			r.RoomNumber, r.Type, r.Price, r.Status, r.Capacity)
	}
}

func (m *Menu) addRoom() {
	number, ok := m.prompt("Room number: ")
	if !ok {
		return
	}
	roomType, ok := m.prompt("Room type (Single/Double/Suite): ")
	if !ok {
		return
	}
	price := m.promptFloat("Price per night: ")
	capacity := m.promptInt("Capacity: ")

	_, err := m.rooms.Create(models.Room{
		RoomNumber: number,
		Type:       roomType,
		Price:      price,
		Capacity:   capacity,
		Status:     models.RoomStatusAvailable,
	})
	if err != nil {
		fmt.Fprintln(m.out, "Error adding room:", err)
		return
	}
	fmt.Fprintln(m.out, "Room added successfully!")
}

func (m *Menu) listBookings() {
	bookings, err := m.bookings.List(recentLimit)
	if err != nil {
		fmt.Fprintln(m.out, "Error listing bookings:", err)
		return
	}

	fmt.Fprintf(m.out, "\n--- BOOKINGS (latest %d) ---\n", recentLimit)
	fmt.Fprintf(m.out, "%-18s%-10s%-14s%-14s%-12s%-10s\n",
		"Guest", "Room", "Check-in", "Check-out", "Status", "Total")
	fmt.Fprintln(m.out, strings.Repeat("-", 80))
	for _, b := range bookings {
		fmt.Fprintf(m.out, "%-18s%-10s%-14s%-14s%-12s%10.2f\n",
			b.GuestName, b.Room.RoomNumber,
			utils.FormatDate(b.CheckIn), utils.FormatDate(b.CheckOut),
			b.Status, b.TotalPrice)
	}
}

func (m *Menu) addBooking() {
	guestName, ok := m.prompt("Guest name: ")
	if !ok {
		return
	}
	guestEmail, ok := m.prompt("Guest email: ")
	if !ok {
		return
	}
	guestPhone, ok := m.prompt("Guest phone: ")
	if !ok {
		return
	}

	m.listRooms()
	roomNumber, ok := m.prompt("\nRoom number: ")
	if !ok {
		return
	}

	checkIn, err := m.promptDate("Check-in date (YYYY-MM-DD): ")
	if err != nil {
		fmt.Fprintln(m.out, "Error adding booking:", err)
		return
	}
	checkOut, err := m.promptDate("Check-out date (YYYY-MM-DD): ")
	if err != nil {
		fmt.Fprintln(m.out, "Error adding booking:", err)
		return
	}
	totalPrice := m.promptFloat("Total price: ")

	_, err = m.bookings.Create(services.BookingInput{
		GuestName:  guestName,
		GuestEmail: guestEmail,
		GuestPhone: guestPhone,
		RoomRef:    roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: totalPrice,
		Status:     models.BookingStatusConfirmed,
	})
	if err != nil {
		fmt.Fprintln(m.out, "Error adding booking:", err)
		return
	}
	fmt.Fprintln(m.out, "Booking added successfully!")
}

func (m *Menu) listReviews() {
	reviews, err := m.reviews.List(recentLimit)
	if err != nil {
		fmt.Fprintln(m.out, "Error listing reviews:", err)
		return
	}

	fmt.Fprintf(m.out, "\n--- REVIEWS (latest %d) ---\n", recentLimit)
	fmt.Fprintf(m.out, "%-18s%-10s%-8s%s\n", "Guest", "Room", "Rating", "Comment")
	fmt.Fprintln(m.out, strings.Repeat("-", 80))
	for _, r := range reviews {
		fmt.Fprintf(m.out, "%-18s%-10s%-8d%s\n",
			r.GuestName, r.Room.RoomNumber, r.Rating, truncate(r.Comment, commentWidth))
	}
}

func (m *Menu) addReview() {
	roomNumber, ok := m.prompt("Room number: ")
	if !ok {
		return
	}
	guestName, ok := m.prompt("Guest name: ")
	if !ok {
		return
	}
	rating := m.promptInt("Rating (1-5): ")
	comment, ok := m.prompt("Comment: ")
	if !ok {
		return
	}

	_, err := m.reviews.Create(services.ReviewInput{
		RoomRef:   roomNumber,
		GuestName: guestName,
		Rating:    rating,
		Comment:   comment,
	})
	if err != nil {
		fmt.Fprintln(m.out, "Error adding review:", err)
		return
	}
	fmt.Fprintln(m.out, "Review added successfully!")
}

func (m *Menu) showAnalytics() {
	summary, err := m.analytics.Summary()
	if err != nil {
		fmt.Fprintln(m.out, "Error computing analytics:", err)
		return
	}

	fmt.Fprintln(m.out, "\n=== ANALYTICS ===")
	fmt.Fprintln(m.out, strings.Repeat("-", 40))
	fmt.Fprintf(m.out, "Total Rooms:       %d\n", summary.TotalRooms)
	fmt.Fprintf(m.out, "Total Bookings:    %d\n", summary.TotalBookings)
	fmt.Fprintf(m.out, "Total Revenue:     %.2f\n", summary.TotalRevenue)
	fmt.Fprintf(m.out, "Average Rating:    %.2f/5\n", summary.AverageRating)
	fmt.Fprintf(m.out, "Occupancy Rate:    %.1f%%\n", summary.OccupancyRate)
	fmt.Fprintln(m.out, strings.Repeat("-", 40))
}

// prompt reads one trimmed line. ok is false once input ends.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptInt re-asks until it gets an integer; -1 means input ended.
func (m *Menu) promptInt(label string) int {
	for {
		raw, ok := m.prompt(label)
		if !ok {
			return -1
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid number.")
			continue
		}
		return n
	}
}

// promptFloat re-asks until it gets a number; 0 means input ended.
func (m *Menu) promptFloat(label string) float64 {
	for {
		raw, ok := m.prompt(label)
		if !ok {
			return 0
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid number.")
			continue
		}
		return f
	}
}

func (m *Menu) promptDate(label string) (time.Time, error) {
	raw, ok := m.prompt(label)
	if !ok {
		return time.Time{}, fmt.Errorf("input closed")
	}
	return utils.ParseDate(raw)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
