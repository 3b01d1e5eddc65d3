package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/eld-planner/internal/config"
	"github.com/nurpe/eld-planner/internal/events"
	"github.com/nurpe/eld-planner/internal/hos"
	"github.com/nurpe/eld-planner/internal/model"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type TripStore interface {
	CreateTrip(ctx context.Context, trip *model.Trip, logs []model.ELDLog) error
	GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	ListLogs(ctx context.Context, tripID uuid.UUID) ([]model.ELDLog, error)
	ListTrips(ctx context.Context, limit, offset int) ([]model.TripSummary, error)
}

type EventPublisher interface {
	PublishTripPlanned(ctx context.Context, event events.TripPlanned) error
}

type ExcelGenerator interface {
	Generate(plan model.TripPlan) ([]byte, error)
}

type PDFGenerator interface {
	Generate(plan model.TripPlan) ([]byte, error)
}

type TripService struct {
	store     TripStore
	resolver  hos.LocationResolver
	publisher EventPublisher
	excel     ExcelGenerator
	pdf       PDFGenerator
	validate  *validator.Validate
	log       zerolog.Logger
	now       func() time.Time

	driverName  string
	carrierName string
}

type PlanTripInput struct {
	CurrentLocation   string  `json:"current_location" validate:"required,max=255"`
	PickupLocation    string  `json:"pickup_location" validate:"required,max=255"`
	DropoffLocation   string  `json:"dropoff_location" validate:"required,max=255"`
	CurrentCycleHours float64 `json:"current_cycle_hours" validate:"gte=0"`
	// StartDate is the first log day; zero means today (UTC).
	StartDate time.Time `json:"start_date"`
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewTripService(
	store TripStore,
	resolver hos.LocationResolver,
	publisher EventPublisher,
	excel ExcelGenerator,
	pdf PDFGenerator,
	cfg *config.Config,
	log zerolog.Logger,
) *TripService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &TripService{
		store:       store,
		resolver:    resolver,
		publisher:   publisher,
		excel:       excel,
		pdf:         pdf,
		validate:    validate,
		log:         log,
		now:         time.Now,
		driverName:  cfg.Logs.DriverName,
		carrierName: cfg.Logs.CarrierName,
	}
}

func (s *TripService) PlanTrip(ctx context.Context, input PlanTripInput) (*model.TripPlan, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = s.now().UTC()
	}
	startDate = hos.DateOnly(startDate)

	result, err := hos.PlanTrip(ctx, hos.TripRequest{
		CurrentLocation:   input.CurrentLocation,
		PickupLocation:    input.PickupLocation,
		DropoffLocation:   input.DropoffLocation,
		CurrentCycleHours: input.CurrentCycleHours,
		StartDate:         startDate,
	}, s.resolver)
	if err != nil {
		return nil, err
	}

	trip := model.Trip{
		ID:                uuid.New(),
		CurrentLocation:   strings.TrimSpace(input.CurrentLocation),
		PickupLocation:    strings.TrimSpace(input.PickupLocation),
		DropoffLocation:   strings.TrimSpace(input.DropoffLocation),
		CurrentCycleHours: input.CurrentCycleHours,
		StartDate:         startDate,
		CreatedAt:         s.now().UTC(),
	}

	logs := make([]model.ELDLog, 0, len(result.Timelines))
	for _, tl := range result.Timelines {
		logs = append(logs, model.ELDLog{
			DriverName:  s.driverName,
			CarrierName: s.carrierName,
			Timeline:    tl,
		})
	}

	if err := s.store.CreateTrip(ctx, &trip, logs); err != nil {
		return nil, fmt.Errorf("store trip: %w", err)
	}

	plan := &model.TripPlan{
		Trip:       trip,
		Route:      &result.Route,
		Logs:       logs,
		Compliance: result.Compliance,
	}

	if err := s.publisher.PublishTripPlanned(ctx, tripPlannedEvent(plan)); err != nil {
		s.log.Warn().Err(err).Str("trip_id", trip.ID.String()).Msg("publish trip planned event failed")
	}

	s.log.Info().
		Str("trip_id", trip.ID.String()).
		Int("days", len(logs)).
		Bool("compliant", result.Compliance.Compliant).
		Msg("trip planned")

	return plan, nil
}

// GetTrip loads a stored trip and re-audits its logs.
func (s *TripService) GetTrip(ctx context.Context, id uuid.UUID) (*model.TripPlan, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: trip id is required", ErrInvalidInput)
	}

	trip, err := s.store.GetTrip(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	logs, err := s.store.ListLogs(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.TripPlan{
		Trip:       *trip,
		Logs:       logs,
		Compliance: hos.Evaluate(model.Timelines(logs), trip.CurrentCycleHours),
	}, nil
}

func (s *TripService) ListTrips(ctx context.Context, limit, offset int) ([]model.TripSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListTrips(ctx, limit, offset)
}

func (s *TripService) ExportLogsExcel(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	plan, err := s.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(*plan)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName(plan.Trip, "xlsx"),
		Content:  content,
	}, nil
}

func (s *TripService) ExportLogsPDF(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	plan, err := s.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(*plan)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName(plan.Trip, "pdf"),
		Content:  content,
	}, nil
}

func tripPlannedEvent(plan *model.TripPlan) events.TripPlanned {
	event := events.TripPlanned{
		TripID:              plan.Trip.ID.String(),
		PickupLocation:      plan.Trip.PickupLocation,
		DropoffLocation:     plan.Trip.DropoffLocation,
		StartDate:           plan.Trip.StartDate.Format("2006-01-02"),
		Days:                len(plan.Logs),
		ProjectedCycleHours: plan.Compliance.ProjectedCycleHours,
		Compliant:           plan.Compliance.Compliant,
		Violations:          plan.Compliance.Violations,
		PlannedAt:           plan.Trip.CreatedAt,
	}
	if plan.Route != nil {
		event.TotalMiles = plan.Route.TotalDistance
	}
	return event
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, fe.Field())
	case "gte":
		return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidInput, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s is longer than %s characters", ErrInvalidInput, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s is invalid", ErrInvalidInput, fe.Field())
	}
}

func buildFileName(trip model.Trip, ext string) string {
	route := fmt.Sprintf("%s-to-%s", sanitizeFileName(trip.PickupLocation), sanitizeFileName(trip.DropoffLocation))
	if strings.Trim(route, "-") == "to" {
		route = trip.ID.String()
	}
	return fmt.Sprintf("eld-logs-%s-%s.%s", route, trip.StartDate.Format("20060102"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r+('a'-'A'))
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return collapseDashes(strings.Trim(string(result), "-"))
}

func collapseDashes(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
