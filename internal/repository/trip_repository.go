package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/eld-planner/internal/hos"
	"github.com/nurpe/eld-planner/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip stores a trip and its daily logs in one transaction. IDs are
// assigned here when the caller left them empty.
func (r *TripRepository) CreateTrip(ctx context.Context, trip *model.Trip, logs []model.ELDLog) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			INSERT INTO trips (id, current_location, pickup_location, dropoff_location, current_cycle_hours, start_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			trip.ID,
			trip.CurrentLocation,
			trip.PickupLocation,
			trip.DropoffLocation,
			trip.CurrentCycleHours,
			trip.StartDate,
			trip.CreatedAt,
		).Error; err != nil {
			return fmt.Errorf("insert trip: %w", err)
		}

		for i := range logs {
			log := &logs[i]
			if log.ID == uuid.Nil {
				log.ID = uuid.New()
			}
			log.TripID = trip.ID

			slots, err := encodeSlots(log.Timeline.Slots)
			if err != nil {
				return err
			}
			remarks, err := encodeRemarks(log.Timeline.Remarks)
			if err != nil {
				return err
			}

			tl := log.Timeline
			if err := tx.Exec(`
				INSERT INTO eld_logs (
					id, trip_id, log_date, total_miles, driver_name, carrier_name, time_slots,
					off_duty_hours, sleeper_berth_hours, driving_hours, on_duty_hours, remarks
				)
				VALUES (?, ?, ?, ?, ?, ?, ?::jsonb, ?, ?, ?, ?, ?::jsonb)
			`,
				log.ID,
				log.TripID,
				tl.Date,
				tl.TotalMiles,
				log.DriverName,
				log.CarrierName,
				slots,
				tl.OffDutyHours,
				tl.SleeperBerthHours,
				tl.DrivingHours,
				tl.OnDutyHours,
				remarks,
			).Error; err != nil {
				return fmt.Errorf("insert eld log %s: %w", tl.DateString(), err)
			}
		}
		return nil
	})
}

func (r *TripRepository) GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, current_location, pickup_location, dropoff_location, current_cycle_hours, start_date, created_at
		FROM trips
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&trip).Error; err != nil {
		return nil, err
	}
	if trip.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &trip, nil
}

type eldLogRow struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	LogDate     time.Time
	TotalMiles  int
	DriverName  string
	CarrierName string
	TimeSlots   string
	Remarks     string
}

func (r *TripRepository) ListLogs(ctx context.Context, tripID uuid.UUID) ([]model.ELDLog, error) {
	var rows []eldLogRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, trip_id, log_date, total_miles, driver_name, carrier_name, time_slots, remarks
		FROM eld_logs
		WHERE trip_id = ?
		ORDER BY log_date ASC
	`, tripID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	logs := make([]model.ELDLog, 0, len(rows))
	for _, row := range rows {
		slots, err := decodeSlots(row.TimeSlots)
		if err != nil {
			return nil, fmt.Errorf("eld log %s: %w", row.ID, err)
		}
		remarks, err := decodeRemarks(row.Remarks)
		if err != nil {
			return nil, fmt.Errorf("eld log %s: %w", row.ID, err)
		}
		logs = append(logs, model.ELDLog{
			ID:          row.ID,
			TripID:      row.TripID,
			DriverName:  row.DriverName,
			CarrierName: row.CarrierName,
			Timeline:    hos.NewDailyTimeline(row.LogDate, row.TotalMiles, slots, remarks),
		})
	}
	return logs, nil
}

func (r *TripRepository) ListTrips(ctx context.Context, limit, offset int) ([]model.TripSummary, error) {
	var rows []model.TripSummary
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.current_location,
			t.pickup_location,
			t.dropoff_location,
			t.current_cycle_hours,
			t.start_date,
			t.created_at,
			COUNT(l.id) AS day_count
		FROM trips t
		LEFT JOIN eld_logs l ON l.trip_id = t.id
		GROUP BY t.id
		ORDER BY t.created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
