package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var _ domain.CheckoutRepository = (*PostgresCheckoutRepository)(nil)

// PostgresCheckoutRepository keeps the latest snapshot of every checkout as a JSONB document
type PostgresCheckoutRepository struct {
	db *sqlx.DB
}

// NewPostgresCheckoutRepository creates a new PostgresCheckoutRepository
func NewPostgresCheckoutRepository(db *sqlx.DB) *PostgresCheckoutRepository {
	return &PostgresCheckoutRepository{db: db}
}

// postgresCheckout represents a checkout in database
type postgresCheckout struct {
	ID      string `db:"id"`
	Data    []byte `db:"data"`
	Version int    `db:"version"`
	models.Timestamps
}

// LoadCheckout returns the stored snapshot, trimmed to the requested includes
func (r *PostgresCheckoutRepository) LoadCheckout(
	ctx context.Context, checkoutID string, opts domain.LoadOptions,
) (*domain.Checkout, error) {
	query := `
		SELECT id, data, version, created_at, updated_at
		FROM checkouts
		WHERE id = $1`

	var row postgresCheckout
	err := r.db.GetContext(ctx, &row, query, checkoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(domain.ErrCheckoutNotFound, checkoutID)
		}
		return nil, errors.Wrap(err, "failed to load checkout")
	}

	checkout, err := toDomainCheckout(&row)
	if err != nil {
		return nil, err
	}
	return applyLoadOptions(checkout, opts), nil
}

// Save upserts the snapshot and bumps its version
func (r *PostgresCheckoutRepository) Save(ctx context.Context, checkout *domain.Checkout) error {
	query := `
		INSERT INTO checkouts (id, data, version, created_at, updated_at)
		VALUES (:id, :data, :version, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data,
			version = checkouts.version + 1,
			updated_at = EXCLUDED.updated_at`

	row, err := toPostgresCheckout(checkout)
	if err != nil {
		return err
	}

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return errors.Wrap(err, "failed to save checkout")
	}
	return nil
}

func toPostgresCheckout(checkout *domain.Checkout) (*postgresCheckout, error) {
	if checkout == nil || checkout.ID == "" {
		return nil, errors.Wrap(models.ErrEmptyID, "checkout")
	}

	data, err := json.Marshal(checkout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal checkout")
	}

	return &postgresCheckout{
		ID:         checkout.ID,
		Data:       data,
		Version:    1,
		Timestamps: models.NewTimestamps(),
	}, nil
}

func toDomainCheckout(row *postgresCheckout) (*domain.Checkout, error) {
	var checkout domain.Checkout
	if err := json.Unmarshal(row.Data, &checkout); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal checkout %s", row.ID)
	}
	if checkout.ID == "" {
		checkout.ID = row.ID
	}
	return &checkout, nil
}

// applyLoadOptions drops category names of the item kinds that were not requested
func applyLoadOptions(checkout *domain.Checkout, opts domain.LoadOptions) *domain.Checkout {
	if checkout.Cart == nil {
		return checkout
	}

	if !opts.Includes(domain.IncludePhysicalItemCategories) {
		checkout.Cart.LineItems.PhysicalItems = withoutCategories(checkout.Cart.LineItems.PhysicalItems)
	}
	if !opts.Includes(domain.IncludeDigitalItemCategories) {
		checkout.Cart.LineItems.DigitalItems = withoutCategories(checkout.Cart.LineItems.DigitalItems)
	}
	return checkout
}

func withoutCategories(items []domain.LineItem) []domain.LineItem {
	for i := range items {
		items[i].CategoryNames = nil
	}
	return items
}
