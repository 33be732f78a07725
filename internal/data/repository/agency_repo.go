package repository

import (
	"context"
	"fmt"
	"strings"

	"booking-console/internal/data/entity"
	"booking-console/pkg/database"

	"go.uber.org/zap"
)

// AgencyFilter narrows List and Count. Soft-deleted rows are always
// excluded.
type AgencyFilter struct {
	Query   string
	Status  string
	SortKey string
	SortDir string
	Limit   int
	Offset  int
}

type AgencyRepository interface {
	List(ctx context.Context, filter AgencyFilter) ([]entity.Agency, error)
	Count(ctx context.Context, filter AgencyFilter) (int64, error)
}

type agencyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAgencyRepository(db database.PgxIface, log *zap.Logger) AgencyRepository {
	return &agencyRepository{
		db:  db,
		log: log.With(zap.String("repository", "agency")),
	}
}

var agencySortColumns = map[string]string{
	"agency_name":    "agency_name",
	"contact_person": "contact_person",
	"status":         "status",
	"created_at":     "created_at",
}

func buildAgencyWhere(filter AgencyFilter) (string, []any) {
	conds := []string{"deleted_at IS NULL"}
	var args []any

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(agency_name ILIKE $%d OR contact_person ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *agencyRepository) List(ctx context.Context, filter AgencyFilter) ([]entity.Agency, error) {
	where, args := buildAgencyWhere(filter)

	col, ok := agencySortColumns[filter.SortKey]
	if !ok {
		col = "agency_name"
	}
	dir := "ASC"
	if strings.EqualFold(filter.SortDir, "desc") {
		dir = "DESC"
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT uid, agency_name, contact_person, email, phone, status, created_at, deleted_at
		FROM agencies
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, col, dir, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list agencies",
			zap.Error(err),
			zap.String("query", filter.Query),
		)
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []entity.Agency
	for rows.Next() {
		var a entity.Agency
		err := rows.Scan(
			&a.UID,
			&a.AgencyName,
			&a.ContactPerson,
			&a.Email,
			&a.Phone,
			&a.Status,
			&a.CreatedAt,
			&a.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan agency row", zap.Error(err))
			return nil, fmt.Errorf("scan agency row: %w", err)
		}
		agencies = append(agencies, a)
	}

	return agencies, rows.Err()
}

func (r *agencyRepository) Count(ctx context.Context, filter AgencyFilter) (int64, error) {
	where, args := buildAgencyWhere(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM agencies`+where, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count agencies", zap.Error(err))
		return 0, fmt.Errorf("count agencies: %w", err)
	}

	return count, nil
}
