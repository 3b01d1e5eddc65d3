package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		current_location VARCHAR(255) NOT NULL,
		pickup_location VARCHAR(255) NOT NULL,
		dropoff_location VARCHAR(255) NOT NULL,
		current_cycle_hours DOUBLE PRECISION NOT NULL CHECK (current_cycle_hours >= 0),
		start_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS eld_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		log_date DATE NOT NULL,
		total_miles INTEGER NOT NULL,
		driver_name VARCHAR(100) NOT NULL DEFAULT 'Driver',
		carrier_name VARCHAR(100) NOT NULL DEFAULT 'Transport Co.',
		time_slots JSONB NOT NULL,
		off_duty_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		sleeper_berth_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		driving_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		on_duty_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		remarks JSONB NOT NULL DEFAULT '[]'::jsonb
	);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'trips' AND column_name = 'start_date') THEN
			ALTER TABLE trips ADD COLUMN start_date DATE NOT NULL DEFAULT CURRENT_DATE;
		END IF;
	END
	$$;`,
	`CREATE INDEX IF NOT EXISTS idx_trips_created_at ON trips (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_eld_logs_trip_id ON eld_logs (trip_id);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_eld_logs_trip_date ON eld_logs (trip_id, log_date);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
