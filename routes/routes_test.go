package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"bookerino-backend/controllers"
	"bookerino-backend/models"
	"bookerino-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "bookerino.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Room{},
		&models.Booking{},
		&models.Review{},
		&models.Meal{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return SetupRouter(
		controllers.NewRoomController(services.NewRoomService(db)),
		controllers.NewBookingController(services.NewBookingService(db)),
		controllers.NewReviewController(services.NewReviewService(db)),
		controllers.NewMealController(services.NewMealService(db)),
		controllers.NewAnalyticsController(services.NewAnalyticsService(db)),
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/rooms"},
		{http.MethodPut, "/api/bookings"},
		{http.MethodPost, "/api/analytics"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s status = %d, want 405", tc.method, tc.path, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "Method not allowed" {
			t.Fatalf("error = %q, want %q", body["error"], "Method not allowed")
		}
	}
}

func TestCreateAndListRooms(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/rooms",
		`{"roomNumber":"101","type":"Double","capacity":2,"price":250}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var created models.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created room: %v", err)
	}
	if created.ID == 0 || created.Status != models.RoomStatusAvailable {
		t.Fatalf("unexpected created room: %+v", created)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/rooms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var rooms []models.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNumber != "101" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestCreateRoomErrorMapping(t *testing.T) {
	router := newTestRouter(t)

	// Validation failure -> 400
	rec := doJSON(t, router, http.MethodPost, "/api/rooms",
		`{"roomNumber":"102","capacity":0,"price":100}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid capacity status = %d, want 400", rec.Code)
	}

	// Duplicate room number -> 409
	if rec := doJSON(t, router, http.MethodPost, "/api/rooms",
		`{"roomNumber":"103","capacity":2,"price":100}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed room status = %d, want 201", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/api/rooms",
		`{"roomNumber":"103","capacity":2,"price":100}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", rec.Code)
	}
}

func TestCreateBookingThroughAPI(t *testing.T) {
	router := newTestRouter(t)

	if rec := doJSON(t, router, http.MethodPost, "/api/rooms",
		`{"roomNumber":"101","type":"Double","capacity":2,"price":250}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed room status = %d, want 201", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/bookings",
		`{"guestName":"Ana","guestEmail":"ana@example.com","room":"101",
		  "checkIn":"2024-05-01","checkOut":"2024-05-03","totalPrice":500}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create booking status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var booking models.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booking); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", booking.Status)
	}

	// Unknown room -> 404
	rec = doJSON(t, router, http.MethodPost, "/api/bookings",
		`{"guestName":"Ana","guestEmail":"ana@example.com","room":"999",
		  "checkIn":"2024-05-01","checkOut":"2024-05-03","totalPrice":500}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown room status = %d, want 404", rec.Code)
	}

	// Inverted dates -> 400
	rec = doJSON(t, router, http.MethodPost, "/api/bookings",
		`{"guestName":"Ana","guestEmail":"ana@example.com","room":"101",
		  "checkIn":"2024-05-03","checkOut":"2024-05-01","totalPrice":500}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("inverted dates status = %d, want 400", rec.Code)
	}
}

func TestAnalyticsEndpointShape(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics status = %d, want 200", rec.Code)
	}
	var body map[string]json.Number
	decoder := json.NewDecoder(strings.NewReader(rec.Body.String()))
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		t.Fatalf("decode analytics: %v", err)
	}
	for _, key := range []string{"totalRooms", "totalBookings", "totalRevenue", "averageRating", "occupancyRate"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("analytics response missing %q: %s", key, rec.Body.String())
		}
	}
}

func TestMealEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/meals",
		`{"name":"Mic dejun","category":"breakfast","price":35,"availableDays":[1,2,3,4,5]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create meal status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var meal models.Meal
	if err := json.Unmarshal(rec.Body.Bytes(), &meal); err != nil {
		t.Fatalf("decode meal: %v", err)
	}

	rec = doJSON(t, router, http.MethodPost,
		"/api/meals/"+strconv.FormatUint(uint64(meal.ID), 10)+"/consume", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("consume status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var consumed models.Meal
	if err := json.Unmarshal(rec.Body.Bytes(), &consumed); err != nil {
		t.Fatalf("decode consumed meal: %v", err)
	}
	if consumed.ConsumptionCount != 1 {
		t.Fatalf("consumption count = %d, want 1", consumed.ConsumptionCount)
	}
}
