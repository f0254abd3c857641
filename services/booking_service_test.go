package services

import (
	"errors"
	"strconv"
	"testing"

	"bookerino-backend/models"
)

func TestCreateBookingValidation(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	rooms := NewRoomService(db)
	mustCreateRoom(t, rooms, "101", 250, 2)
	svc := NewBookingService(db)

	valid := BookingInput{
		GuestName:  "Ana",
		GuestEmail: "ana@example.com",
		RoomRef:    "101",
		CheckIn:    date(t, "2024-05-01"),
		CheckOut:   date(t, "2024-05-03"),
		TotalPrice: 500,
	}

	tests := []struct {
		name   string
		mutate func(in *BookingInput)
	}{
		{name: "empty guest name", mutate: func(in *BookingInput) { in.GuestName = " " }},
		{name: "empty guest email", mutate: func(in *BookingInput) { in.GuestEmail = "" }},
		{name: "check-out equals check-in", mutate: func(in *BookingInput) { in.CheckOut = in.CheckIn }},
		{name: "check-out before check-in", mutate: func(in *BookingInput) {
			in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn
		}},
		{name: "negative total price", mutate: func(in *BookingInput) { in.TotalPrice = -1 }},
		{name: "unknown status", mutate: func(in *BookingInput) { in.Status = "maybe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if _, err := svc.Create(in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	bookings, err := svc.List(0)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("ledger has %d bookings, want 0", len(bookings))
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.Create(BookingInput{
		GuestName:  "Ana",
		GuestEmail: "ana@example.com",
		RoomRef:    "999",
		CheckIn:    date(t, "2024-05-01"),
		CheckOut:   date(t, "2024-05-03"),
		TotalPrice: 500,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The failed transaction must leave no row behind.
	var count int64
	if err := db.Model(&models.Booking{}).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 0 {
		t.Fatalf("bookings count = %d, want 0", count)
	}
}

func TestCreateBookingDefaultsAndRoomResolution(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	rooms := NewRoomService(db)
	room := mustCreateRoom(t, rooms, "101", 250, 2)
	svc := NewBookingService(db)

	byNumber, err := svc.Create(BookingInput{
		GuestName:  "Ana",
		GuestEmail: "ana@example.com",
		RoomRef:    "101",
		CheckIn:    date(t, "2024-05-01"),
		CheckOut:   date(t, "2024-05-03"),
		TotalPrice: 500,
	})
	if err != nil {
		t.Fatalf("create booking by number: %v", err)
	}
	if byNumber.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", byNumber.Status)
	}
	if byNumber.RoomID != room.ID {
		t.Fatalf("room id = %d, want %d", byNumber.RoomID, room.ID)
	}
	if byNumber.ID == 0 {
		t.Fatal("expected assigned booking id")
	}

	byID, err := svc.Create(BookingInput{
		GuestName:  "Bogdan",
		GuestEmail: "bogdan@example.com",
		RoomRef:    strconv.FormatUint(uint64(room.ID), 10),
		CheckIn:    date(t, "2024-06-01"),
		CheckOut:   date(t, "2024-06-02"),
		TotalPrice: 250,
		Status:     models.BookingStatusPending,
	})
	if err != nil {
		t.Fatalf("create booking by id: %v", err)
	}
	if byID.RoomID != room.ID {
		t.Fatalf("room id = %d, want %d", byID.RoomID, room.ID)
	}
	if byID.Status != models.BookingStatusPending {
		t.Fatalf("status = %q, want pending", byID.Status)
	}
}

func TestListBookingsOrderAndLimit(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	rooms := NewRoomService(db)
	mustCreateRoom(t, rooms, "101", 250, 2)
	svc := NewBookingService(db)

	for _, day := range []string{"2024-05-01", "2024-05-10", "2024-05-05"} {
		_, err := svc.Create(BookingInput{
			GuestName:  "Guest " + day,
			GuestEmail: "guest@example.com",
			RoomRef:    "101",
			CheckIn:    date(t, day),
			CheckOut:   date(t, day).AddDate(0, 0, 2),
			TotalPrice: 100,
		})
		if err != nil {
			t.Fatalf("create booking for %s: %v", day, err)
		}
	}

	bookings, err := svc.List(0)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	want := []string{"2024-05-10", "2024-05-05", "2024-05-01"}
	if len(bookings) != len(want) {
		t.Fatalf("got %d bookings, want %d", len(bookings), len(want))
	}
	for i, day := range want {
		if got := bookings[i].CheckIn.Format("2006-01-02"); got != day {
			t.Fatalf("bookings[%d] check-in = %s, want %s", i, got, day)
		}
		if bookings[i].Room.RoomNumber != "101" {
			t.Fatalf("bookings[%d] room not preloaded", i)
		}
	}

	limited, err := svc.List(2)
	if err != nil {
		t.Fatalf("list bookings with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("got %d bookings, want 2", len(limited))
	}
	if got := limited[0].CheckIn.Format("2006-01-02"); got != "2024-05-10" {
		t.Fatalf("limited[0] check-in = %s, want 2024-05-10", got)
	}
}
