package repository

import (
	"context"
	"errors"

	"library-backend/internal/domains/publisher/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const publisherColumns = `id, name, address, website, email, phone, description, created_at, updated_at`

// postgresRepository implements RepositoryInterface on a pgxpool.Pool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

// Create inserts a new publisher record
func (r *postgresRepository) Create(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	query := `
    INSERT INTO publishers (name, address, website, email, phone, description, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
    RETURNING ` + publisherColumns

	row := r.pool.QueryRow(ctx, query,
		pub.Name, pub.Address, pub.Website, pub.Email, pub.Phone, pub.Description,
	)

	createdPub, err := scanPublisher(row)
	if err != nil {
		return nil, model.NewCreatePublisherError(err)
	}
	return createdPub, nil
}

// GetByID retrieves a publisher by ID
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	query := `SELECT ` + publisherColumns + ` FROM publishers WHERE id = $1`

	pub, err := scanPublisher(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewGetPublisherError(err)
	}

	return pub, nil
}

// List retrieves all publishers
func (r *postgresRepository) List(ctx context.Context) ([]*model.Publisher, error) {
	query := `SELECT ` + publisherColumns + ` FROM publishers ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, model.NewListPublisherError(err)
	}
	defer rows.Close()

	publishers := make([]*model.Publisher, 0)
	for rows.Next() {
		pub, err := scanPublisher(rows)
		if err != nil {
			return nil, model.NewListPublisherError(err)
		}
		publishers = append(publishers, pub)
	}

	if err = rows.Err(); err != nil {
		return nil, model.NewListPublisherError(err)
	}

	return publishers, nil
}

// Update saves the merged entity; id is the WHERE key and never written
func (r *postgresRepository) Update(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	query := `
    UPDATE publishers
    SET name = $1, address = $2, website = $3, email = $4, phone = $5, description = $6, updated_at = NOW()
    WHERE id = $7
    RETURNING ` + publisherColumns

	row := r.pool.QueryRow(ctx, query,
		pub.Name, pub.Address, pub.Website, pub.Email, pub.Phone, pub.Description, pub.ID,
	)

	updatedPub, err := scanPublisher(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewPublisherNotFound(pub.ID)
		}
		return nil, model.NewUpdatePublisherError(err)
	}

	return updatedPub, nil
}

// Delete removes a publisher record. Zero rows affected is treated as success.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id); err != nil {
		return model.NewDeletePublisherError(err)
	}
	return nil
}

func scanPublisher(row pgx.Row) (*model.Publisher, error) {
	var pub model.Publisher
	err := row.Scan(
		&pub.ID,
		&pub.Name,
		&pub.Address,
		&pub.Website,
		&pub.Email,
		&pub.Phone,
		&pub.Description,
		&pub.CreatedAt,
		&pub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pub, nil
}
