package services

import (
	"fmt"

	"bookerino-backend/models"

	"gorm.io/gorm"
)

// AnalyticsService derives metrics from the ledgers on every call. It holds
// no state and never writes.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type AnalyticsSummary struct {
	TotalRooms    int64   `json:"totalRooms"`
	TotalBookings int64   `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AverageRating float64 `json:"averageRating"`
	OccupancyRate float64 `json:"occupancyRate"`
}

func (s *AnalyticsService) TotalRooms() (int64, error) {
	return totalRooms(s.DB)
}

func (s *AnalyticsService) TotalBookings() (int64, error) {
	return totalBookings(s.DB)
}

// TotalRevenue sums total_price over confirmed bookings; 0 when none exist.
func (s *AnalyticsService) TotalRevenue() (float64, error) {
	return totalRevenue(s.DB)
}

// AverageRating is the mean rating over all reviews; 0 when none exist.
func (s *AnalyticsService) AverageRating() (float64, error) {
	return averageRating(s.DB)
}

// OccupancyRate is 100 * occupied / total rooms; 0 when there are no rooms.
func (s *AnalyticsService) OccupancyRate() (float64, error) {
	var rate float64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		rate, txErr = occupancyRate(tx)
		return txErr
	})
	return rate, err
}

// Summary computes every metric inside a single transaction so the figures
// describe one ledger snapshot.
func (s *AnalyticsService) Summary() (AnalyticsSummary, error) {
	var out AnalyticsSummary
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		if out.TotalRooms, txErr = totalRooms(tx); txErr != nil {
			return txErr
		}
		if out.TotalBookings, txErr = totalBookings(tx); txErr != nil {
			return txErr
		}
		if out.TotalRevenue, txErr = totalRevenue(tx); txErr != nil {
			return txErr
		}
		if out.AverageRating, txErr = averageRating(tx); txErr != nil {
			return txErr
		}
		out.OccupancyRate, txErr = occupancyRate(tx)
		return txErr
	})
	if err != nil {
		return AnalyticsSummary{}, err
	}
	return out, nil
}

func totalRooms(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Room{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}

func totalBookings(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Booking{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func totalRevenue(tx *gorm.DB) (float64, error) {
	var revenue float64
	err := tx.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusConfirmed).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	return revenue, nil
}

func averageRating(tx *gorm.DB) (float64, error) {
	var avg float64
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}

func occupancyRate(tx *gorm.DB) (float64, error) {
	total, err := totalRooms(tx)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	var occupied int64
	err = tx.Model(&models.Room{}).
		Where("status = ?", models.RoomStatusOccupied).
		Count(&occupied).Error
	if err != nil {
		return 0, fmt.Errorf("count occupied rooms: %w", err)
	}
	return float64(occupied) * 100 / float64(total), nil
}
