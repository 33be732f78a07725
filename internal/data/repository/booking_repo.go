package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"booking-console/internal/data/entity"
	"booking-console/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows List and Count. Search matches origin, destination,
// PNR and ticket number exactly, traveller names by substring, plus the
// numeric id when the term parses as one. A Status of "Confirmed" also
// matches rows still marked ON_HOLD upstream.
type BookingFilter struct {
	Search   string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	SortKey  string
	SortDir  string
	Limit    int
	Offset   int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Column identifiers are quoted because the inherited table uses mixed-case
// names.
const bookingColumns = `
	id, email, phone, customerid,
	travellers, "travellerFirstName", "travellerLastName", "passportNumber",
	"passportExpiry", dob, nationality,
	"tripType", "travelDate", "returnDate", origin, destination, transit,
	itineraries,
	airlines, "flightNumber", "flightClass", "frequentFlyer", "PNR", "ticketNumber",
	"issueMonth", "IssueDay", "issueYear", issuedthroughagency, "handledBy",
	status, currency, "paymentStatus", paymentmethod, "transactionId",
	dateofpayment, "buyingPrice", costprice, "sellingPrice",
	addons, prices, customer,
	created_at, updated_at`

// Whitelist of sortable columns; anything else falls back to created_at.
var bookingSortColumns = map[string]string{
	"id":           "id",
	"created_at":   "created_at",
	"travelDate":   `"travelDate"`,
	"PNR":          `"PNR"`,
	"status":       "status",
	"sellingPrice": `"sellingPrice"`,
	"airlines":     "airlines",
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID, &b.Email, &b.Phone, &b.CustomerID,
		&b.Travellers, &b.TravellerFirstName, &b.TravellerLastName, &b.PassportNumber,
		&b.PassportExpiry, &b.DOB, &b.Nationality,
		&b.TripType, &b.TravelDate, &b.ReturnDate, &b.Origin, &b.Destination, &b.Transit,
		&b.Itineraries,
		&b.Airlines, &b.FlightNumber, &b.FlightClass, &b.FrequentFlyer, &b.PNR, &b.TicketNumber,
		&b.IssueMonth, &b.IssueDay, &b.IssueYear, &b.Agency, &b.HandledBy,
		&b.Status, &b.Currency, &b.PaymentStatus, &b.PaymentMethod, &b.TransactionID,
		&b.PaymentDate, &b.BuyingPrice, &b.CostPrice, &b.SellingPrice,
		&b.Addons, &b.Prices, &b.Customer,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (int64, error) {
	query := `
		INSERT INTO bookings (
			email, phone, customerid,
			travellers, "travellerFirstName", "travellerLastName", "passportNumber",
			"passportExpiry", dob, nationality,
			"tripType", "travelDate", "returnDate", origin, destination, transit,
			itineraries,
			airlines, "flightNumber", "flightClass", "frequentFlyer", "PNR", "ticketNumber",
			"issueMonth", "IssueDay", "issueYear", issuedthroughagency, "handledBy",
			status, currency, "paymentStatus", paymentmethod, "transactionId",
			dateofpayment, "buyingPrice", costprice, "sellingPrice",
			addons, prices, customer,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		        $31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
		        NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		booking.Email, booking.Phone, booking.CustomerID,
		booking.Travellers, booking.TravellerFirstName, booking.TravellerLastName, booking.PassportNumber,
		booking.PassportExpiry, booking.DOB, booking.Nationality,
		booking.TripType, booking.TravelDate, booking.ReturnDate, booking.Origin, booking.Destination, booking.Transit,
		booking.Itineraries,
		booking.Airlines, booking.FlightNumber, booking.FlightClass, booking.FrequentFlyer, booking.PNR, booking.TicketNumber,
		booking.IssueMonth, booking.IssueDay, booking.IssueYear, booking.Agency, booking.HandledBy,
		booking.Status, booking.Currency, booking.PaymentStatus, booking.PaymentMethod, booking.TransactionID,
		booking.PaymentDate, booking.BuyingPrice, booking.CostPrice, booking.SellingPrice,
		booking.Addons, booking.Prices, booking.Customer,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("pnr", booking.PNR),
		)
		return 0, fmt.Errorf("create booking %s: %w", booking.PNR, err)
	}

	return id, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

// buildBookingWhere renders the filter into a WHERE clause and its args.
func buildBookingWhere(filter BookingFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, filter.Search)
		n := len(args)
		cond := fmt.Sprintf(`(origin = $%d OR destination = $%d OR "PNR" = $%d OR "ticketNumber" = $%d`, n, n, n, n)
		args = append(args, "%"+filter.Search+"%")
		cond += fmt.Sprintf(` OR "travellerFirstName" ILIKE $%d OR "travellerLastName" ILIKE $%d`, len(args), len(args))
		if id, err := strconv.ParseInt(filter.Search, 10, 64); err == nil {
			args = append(args, id)
			cond += fmt.Sprintf(" OR id = $%d", len(args))
		}
		cond += ")"
		conds = append(conds, cond)
	}

	if filter.Status != "" {
		if filter.Status == string(entity.BookingStatusConfirmed) {
			// Rows imported from the upstream system may still carry
			// ON_HOLD for confirmed bookings.
			args = append(args, filter.Status, "ON_HOLD")
			conds = append(conds, fmt.Sprintf("status IN ($%d, $%d)", len(args)-1, len(args)))
		} else {
			args = append(args, filter.Status)
			conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
		}
	}

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func bookingOrderBy(filter BookingFilter) string {
	col, ok := bookingSortColumns[filter.SortKey]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(filter.SortDir, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	where, args := buildBookingWhere(filter)

	query := `SELECT ` + bookingColumns + ` FROM bookings` + where + bookingOrderBy(filter)
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.String("status", filter.Status),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	where, args := buildBookingWhere(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+where, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings SET
			email = $2, phone = $3, customerid = $4,
			travellers = $5, "travellerFirstName" = $6, "travellerLastName" = $7,
			"passportNumber" = $8, "passportExpiry" = $9, dob = $10, nationality = $11,
			"tripType" = $12, "travelDate" = $13, "returnDate" = $14,
			origin = $15, destination = $16, transit = $17,
			itineraries = $18,
			airlines = $19, "flightNumber" = $20, "flightClass" = $21,
			"frequentFlyer" = $22, "PNR" = $23, "ticketNumber" = $24,
			"issueMonth" = $25, "IssueDay" = $26, "issueYear" = $27,
			issuedthroughagency = $28, "handledBy" = $29,
			status = $30, currency = $31, "paymentStatus" = $32,
			paymentmethod = $33, "transactionId" = $34, dateofpayment = $35,
			"buyingPrice" = $36, costprice = $37, "sellingPrice" = $38,
			addons = $39, prices = $40, customer = $41,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Email, booking.Phone, booking.CustomerID,
		booking.Travellers, booking.TravellerFirstName, booking.TravellerLastName,
		booking.PassportNumber, booking.PassportExpiry, booking.DOB, booking.Nationality,
		booking.TripType, booking.TravelDate, booking.ReturnDate,
		booking.Origin, booking.Destination, booking.Transit,
		booking.Itineraries,
		booking.Airlines, booking.FlightNumber, booking.FlightClass,
		booking.FrequentFlyer, booking.PNR, booking.TicketNumber,
		booking.IssueMonth, booking.IssueDay, booking.IssueYear,
		booking.Agency, booking.HandledBy,
		booking.Status, booking.Currency, booking.PaymentStatus,
		booking.PaymentMethod, booking.TransactionID, booking.PaymentDate,
		booking.BuyingPrice, booking.CostPrice, booking.SellingPrice,
		booking.Addons, booking.Prices, booking.Customer,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.Int64("booking_id", booking.ID),
		)
		return fmt.Errorf("update booking %d: %w", booking.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", booking.ID)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}

func (r *bookingRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = ANY($1)`, ids)
	if err != nil {
		r.log.Error("Failed to bulk delete bookings",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return 0, fmt.Errorf("bulk delete bookings: %w", err)
	}

	r.log.Info("Bookings deleted", zap.Int64("deleted", result.RowsAffected()))
	return result.RowsAffected(), nil
}
