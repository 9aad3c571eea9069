package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий глобальных настроек записи
// Настройки хранятся единственной записью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает настройки записи (первую и единственную запись)
func (r *Repository) Get(ctx context.Context) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"enable_scheduling",
		"working_start_time",
		"working_end_time",
		"monday",
		"tuesday",
		"wednesday",
		"thursday",
		"friday",
		"saturday",
		"sunday",
		"default_slot_duration_minutes",
		"advance_booking_days",
		"min_booking_notice_minutes",
		"company_location",
		"created_at",
		"updated_at",
	).
		From("appointment_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BookingSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.EnableScheduling,
		&s.WorkingStartTime,
		&s.WorkingEndTime,
		&s.Monday,
		&s.Tuesday,
		&s.Wednesday,
		&s.Thursday,
		&s.Friday,
		&s.Saturday,
		&s.Sunday,
		&s.DefaultSlotDurationMinutes,
		&s.AdvanceBookingDays,
		&s.MinBookingNoticeMinutes,
		&s.CompanyLocation,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
