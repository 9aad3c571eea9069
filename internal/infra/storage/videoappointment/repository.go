package videoappointment

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

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с заявками на видеопродакшн
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку на видеопродакшн
// ID резервируется заранее из sequence для формирования reference "VPA-<год>-<номер>"
func (r *Repository) Create(ctx context.Context, appt *domain.VideoAppointment) (*domain.VideoAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var id int64
	err := executor.QueryRowContext(ctx,
		"SELECT nextval(pg_get_serial_sequence('video_appointments', 'id'))").Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - reserve id: %v", ErrExecQuery, err)
	}

	appt.ID = id
	appt.Reference = fmt.Sprintf("%s-%d-%05d",
		domain.VideoAppointmentReferencePrefix, time.Now().UTC().Year(), id)

	query, args, err := psqlbuilder.Insert("video_appointments").
		Columns(
			"id",
			"reference",
			"company",
			"customer_name",
			"phone_number",
			"email",
			"appointment_type",
			"industry",
			"service",
			"requirements",
			"budget",
			"notes",
			"references_text",
			"brand_name",
			"acknowledgment",
			"client_references",
			"meeting_location",
			"google_location",
			"city",
			"zone_number",
			"street_number",
			"building_number",
			"company_location",
			"booking_date",
			"booking_time",
			"status",
		).
		Values(
			appt.ID,
			appt.Reference,
			appt.Company,
			appt.CustomerName,
			appt.PhoneNumber,
			appt.Email,
			appt.AppointmentType,
			appt.Industry,
			appt.Service,
			appt.Requirements,
			appt.Budget,
			appt.Notes,
			appt.References,
			appt.BrandName,
			appt.Acknowledgment,
			appt.ClientReferences,
			appt.MeetingLocation,
			appt.GoogleLocation,
			appt.City,
			appt.ZoneNumber,
			appt.StreetNumber,
			appt.BuildingNumber,
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
		From("video_appointments").
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		Where(squirrel.Eq{"status": activeStatuses}).
		OrderBy("booking_date ASC, booking_time ASC")

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

	slots := make([]domain.BookedSlotKey, 0)
	for rows.Next() {
		var date time.Time
		var key domain.BookedSlotKey

		if err := rows.Scan(&date, &key.Time); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan row: %v", ErrScanRow, err)
		}

		slots = append(slots, domain.NewBookedSlotKey(date, key.Time))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// HasAppointmentsWithEmail проверяет, встречался ли email в предыдущих заявках
// Используется для мягкой проверки "Current Active Client": отсутствие истории
// не блокирует заявку, а только логируется для ручной проверки менеджером
func (r *Repository) HasAppointmentsWithEmail(ctx context.Context, email string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("video_appointments").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasAppointmentsWithEmail - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasAppointmentsWithEmail - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
