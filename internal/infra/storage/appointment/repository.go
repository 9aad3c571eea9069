package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе со списком выбранных услуг
// ID резервируется заранее из sequence, чтобы собрать публичный reference
// ("APT-<год>-<номер>") до вставки
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Резервируем ID для формирования reference
	var id int64
	err := executor.QueryRowContext(ctx,
		"SELECT nextval(pg_get_serial_sequence('appointments', 'id'))").Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - reserve id: %v", ErrExecQuery, err)
	}

	appt.ID = id
	appt.Reference = buildReference(domain.AppointmentReferencePrefix, id)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"reference",
			"customer_name",
			"phone_number",
			"email",
			"meeting_location",
			"location",
			"street_name",
			"building_name",
			"apartment_number",
			"company_location",
			"booking_date",
			"booking_time",
			"status",
		).
		Values(
			appt.ID,
			appt.Reference,
			appt.CustomerName,
			appt.PhoneNumber,
			appt.Email,
			appt.MeetingLocation,
			appt.Location,
			appt.StreetName,
			appt.BuildingName,
			appt.ApartmentNumber,
			appt.CompanyLocation,
			appt.BookingDate,
			appt.BookingTime,
			appt.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	// Привязываем выбранные услуги
	for _, serviceID := range appt.ServiceIDs {
		query, args, err := psqlbuilder.Insert("appointment_services").
			Columns("appointment_id", "service_id").
			Values(appt.ID, serviceID).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert service link: %v", ErrExecQuery, err)
		}
	}

	return appt, nil
}

// GetByReference получает бронирование по публичному идентификатору
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appts, err := r.scanAppointments(rows)
	if err != nil {
		return nil, err
	}
	if len(appts) == 0 {
		return nil, ErrAppointmentNotFound
	}

	appt := appts[0]
	if err := r.loadServiceIDs(ctx, executor, appt); err != nil {
		return nil, err
	}

	return appt, nil
}

// GetBookedSlots возвращает занятые слоты (дата + время начала) за период
// Учитываются только активные статусы (Pending, Confirmed)
func (r *Repository) GetBookedSlots(ctx context.Context, from, to time.Time) ([]domain.BookedSlotKey, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("booking_date", "booking_time").
		From("appointments").
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		Where(squirrel.Eq{"status": activeStatuses}).
		OrderBy("booking_date ASC, booking_time ASC")

	// Внутри транзакции блокируем строки для предотвращения гонки при создании
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookedSlots(rows)
}

// UpdateStatus обновляет статус бронирования
// Смена статуса происходит во внешнем ручном workflow, здесь только запись
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"reference",
		"customer_name",
		"phone_number",
		"email",
		"meeting_location",
		"location",
		"street_name",
		"building_name",
		"apartment_number",
		"company_location",
		"booking_date",
		"booking_time",
		"status",
		"created_at",
		"updated_at",
	).From("appointments")
}

// loadServiceIDs загружает привязанные услуги бронирования
func (r *Repository) loadServiceIDs(ctx context.Context, executor DBExecutor, appt *domain.Appointment) error {
	query, args, err := psqlbuilder.Select("service_id").
		From("appointment_services").
		Where(squirrel.Eq{"appointment_id": appt.ID}).
		OrderBy("service_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	serviceIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("%w: loadServiceIDs - scan row: %v", ErrScanRow, err)
		}
		serviceIDs = append(serviceIDs, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServiceIDs - rows error: %v", ErrScanRow, err)
	}

	appt.ServiceIDs = serviceIDs
	return nil
}

// scanAppointments сканирует результаты запроса в слайс бронирований
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appts := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Reference,
			&appt.CustomerName,
			&appt.PhoneNumber,
			&appt.Email,
			&appt.MeetingLocation,
			&appt.Location,
			&appt.StreetName,
			&appt.BuildingName,
			&appt.ApartmentNumber,
			&appt.CompanyLocation,
			&appt.BookingDate,
			&appt.BookingTime,
			&appt.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appts = append(appts, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appts, nil
}

// scanBookedSlots сканирует пары (дата, время начала)
func scanBookedSlots(rows *sql.Rows) ([]domain.BookedSlotKey, error) {
	slots := make([]domain.BookedSlotKey, 0)

	for rows.Next() {
		var date time.Time
		var key domain.BookedSlotKey

		if err := rows.Scan(&date, &key.Time); err != nil {
			return nil, fmt.Errorf("%w: scanBookedSlots - scan row: %v", ErrScanRow, err)
		}

		slots = append(slots, domain.NewBookedSlotKey(date, key.Time))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// buildReference собирает публичный идентификатор вида "APT-2025-00042"
func buildReference(prefix string, id int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, time.Now().UTC().Year(), id)
}
