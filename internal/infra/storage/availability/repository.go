package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий недельной доступности пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUser возвращает все настроенные дни пользователя с интервалами
// Отсутствующие дни не материализуются (это делает сервисный слой)
func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]*domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"day_of_week",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("user_availability").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.DayAvailability, 0)
	for rows.Next() {
		var day domain.DayAvailability
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&day.ID,
			&day.UserID,
			&day.DayOfWeek,
			&day.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUser - scan row: %v", ErrScanRow, err)
		}

		day.CreatedAt = createdAt.Time
		day.UpdatedAt = updatedAt.Time

		days = append(days, &day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUser - rows error: %v", ErrScanRow, err)
	}

	for _, day := range days {
		if err := r.loadRanges(ctx, executor, day); err != nil {
			return nil, err
		}
	}

	return days, nil
}

// Upsert создает или обновляет доступность на день недели
// Интервалы заменяются целиком (delete + insert)
func (r *Repository) Upsert(ctx context.Context, day *domain.DayAvailability) (*domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_availability").
		Columns("user_id", "day_of_week", "is_available").
		Values(day.UserID, day.DayOfWeek, day.IsAvailable).
		Suffix(`ON CONFLICT (user_id, day_of_week)
			DO UPDATE SET is_available = EXCLUDED.is_available, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	// Заменяем интервалы целиком
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_time_ranges").
		Where(squirrel.Eq{"availability_id": day.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build delete ranges query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Upsert - delete old ranges: %v", ErrExecQuery, err)
	}

	for _, rng := range day.Ranges {
		insertQuery, insertArgs, err := psqlbuilder.Insert("availability_time_ranges").
			Columns("availability_id", "from_time", "to_time").
			Values(day.ID, rng.From, rng.To).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Upsert - build insert range query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return nil, fmt.Errorf("%w: Upsert - insert range: %v", ErrExecQuery, err)
		}
	}

	return day, nil
}

// loadRanges загружает интервалы дня
func (r *Repository) loadRanges(ctx context.Context, executor DBExecutor, day *domain.DayAvailability) error {
	query, args, err := psqlbuilder.Select("from_time", "to_time").
		From("availability_time_ranges").
		Where(squirrel.Eq{"availability_id": day.ID}).
		OrderBy("from_time ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.TimeRange, 0)
	for rows.Next() {
		var rng domain.TimeRange
		if err := rows.Scan(&rng.From, &rng.To); err != nil {
			return fmt.Errorf("%w: loadRanges - scan row: %v", ErrScanRow, err)
		}
		ranges = append(ranges, rng)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadRanges - rows error: %v", ErrScanRow, err)
	}

	day.Ranges = ranges
	return nil
}
