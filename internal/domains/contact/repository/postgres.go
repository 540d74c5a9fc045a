package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contacts-backend/internal/domains/contact"
	"contacts-backend/pkg/database"
)

const contactColumns = "contact_id, name, type, email, phone, address, role, created_at, version"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func scanContact(row pgx.Row) (*contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(&c.ContactID, &c.Name, &c.Type, &c.Email, &c.Phone, &c.Address, &c.Role, &c.CreatedAt, &c.Version)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*contact.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE contact_id = $1`, contactColumns)
	c, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// searchClause build predicate OR trên 6 fields, ILIKE với %term%.
// Trả về ("", nil) khi search rỗng => không filter.
func searchClause(search string, argIdx int) (string, []interface{}) {
	if strings.TrimSpace(search) == "" {
		return "", nil
	}
	clause := fmt.Sprintf(
		"(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d OR address ILIKE $%d OR type ILIKE $%d OR role ILIKE $%d)",
		argIdx, argIdx, argIdx, argIdx, argIdx, argIdx)
	return clause, []interface{}{"%" + search + "%"}
}

func (r *postgresRepository) FindAll(ctx context.Context, search string) ([]contact.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts`, contactColumns)
	where, args := searchClause(search, 1)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY contact_id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	result := []contact.Contact{}
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ContactID, &c.Name, &c.Type, &c.Email, &c.Phone, &c.Address, &c.Role, &c.CreatedAt, &c.Version); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepository) FindPage(ctx context.Context, q contact.PageQuery) ([]contact.Contact, int64, error) {
	where, args := searchClause(q.Search, 1)

	countQuery := "SELECT COUNT(*) FROM contacts"
	if where != "" {
		countQuery += " WHERE " + where
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM contacts`, contactColumns)
	if where != "" {
		query += " WHERE " + where
	}
	query += fmt.Sprintf(" ORDER BY contact_id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contact page: %w", err)
	}
	defer rows.Close()

	result := []contact.Contact{}
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ContactID, &c.Name, &c.Type, &c.Email, &c.Phone, &c.Address, &c.Role, &c.CreatedAt, &c.Version); err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact: %w", err)
		}
		result = append(result, c)
	}
	return result, total, rows.Err()
}

func (r *postgresRepository) FindByEmailAndRole(ctx context.Context, email string, role contact.Role) (*contact.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE LOWER(email) = LOWER($1) AND role = $2`, contactColumns)
	c, err := scanContact(r.pool.QueryRow(ctx, query, email, role))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact by email and role: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Save(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	if c.ContactID == 0 {
		return r.insert(ctx, c)
	}
	return r.update(ctx, c)
}

func (r *postgresRepository) insert(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	query := `INSERT INTO contacts (name, type, email, phone, address, role, created_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_DATE, 1)
		RETURNING contact_id, created_at, version`
	saved := *c
	err := r.pool.QueryRow(ctx, query, c.Name, c.Type, c.Email, c.Phone, c.Address, c.Role).
		Scan(&saved.ContactID, &saved.CreatedAt, &saved.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}
	return &saved, nil
}

// update là read-check-write trong một transaction:
// lock row, so version, reject nếu một writer khác đã bump nó.
func (r *postgresRepository) update(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*contact.Contact, error) {
		var current int32
		err := tx.QueryRow(ctx,
			`SELECT version FROM contacts WHERE contact_id = $1 FOR UPDATE`, c.ContactID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, contact.ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to lock contact: %w", err)
		}
		if current != c.Version {
			return nil, contact.ErrVersionConflict
		}

		saved := *c
		err = tx.QueryRow(ctx,
			`UPDATE contacts
			 SET name = $2, type = $3, email = $4, phone = $5, address = $6, role = $7, version = version + 1
			 WHERE contact_id = $1
			 RETURNING created_at, version`,
			c.ContactID, c.Name, c.Type, c.Email, c.Phone, c.Address, c.Role).
			Scan(&saved.CreatedAt, &saved.Version)
		if err != nil {
			return nil, fmt.Errorf("failed to update contact: %w", err)
		}
		return &saved, nil
	})
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	// Không check RowsAffected: delete là idempotent
	_, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE contact_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
