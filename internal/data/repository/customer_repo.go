package repository

import (
	"context"
	"fmt"

	"booking-console/internal/data/entity"
	"booking-console/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Search(ctx context.Context, query string, limit int) ([]entity.Customer, error)
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `
	id, "firstName", "lastName", email, phone, "phoneCountryCode",
	"dateOfBirth", gender, country, "userType",
	"isActive", "isVerified", "isDisabled",
	passport, address, created_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.PhoneCountryCode,
		&c.DateOfBirth, &c.Gender, &c.Country, &c.UserType,
		&c.IsActive, &c.IsVerified, &c.IsDisabled,
		&c.Passport, &c.Address, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Search runs the partial match behind the customer search widget: one
// case-insensitive pattern applied to first name, last name, email and
// phone, OR-combined.
func (r *customerRepository) Search(ctx context.Context, query string, limit int) ([]entity.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE "firstName" ILIKE $1
		   OR "lastName" ILIKE $1
		   OR email ILIKE $1
		   OR phone ILIKE $1
		ORDER BY "firstName", "lastName"
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		r.log.Error("Failed to search customers",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search customers %q: %w", query, err)
	}
	defer rows.Close()

	var customers []entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}

	return customers, rows.Err()
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	sql := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, sql, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id, err)
	}

	return customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	sql := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, sql, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find customer by email %s: %w", email, err)
	}

	return customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	sql := `
		INSERT INTO customers (
			id, "firstName", "lastName", email, phone, "phoneCountryCode",
			"dateOfBirth", gender, country, "userType",
			"isActive", "isVerified", "isDisabled",
			passport, address, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
	`

	_, err := r.db.Exec(ctx, sql,
		customer.ID, customer.FirstName, customer.LastName,
		customer.Email, customer.Phone, customer.PhoneCountryCode,
		customer.DateOfBirth, customer.Gender, customer.Country, customer.UserType,
		customer.IsActive, customer.IsVerified, customer.IsDisabled,
		customer.Passport, customer.Address,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("email", customer.Email),
		)
		return fmt.Errorf("create customer %s: %w", customer.Email, err)
	}

	return nil
}
