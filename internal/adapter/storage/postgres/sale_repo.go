package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-marketplace/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const saleColumns = `sale_key, seller, approval_token, asset_issuer, asset_id, price, listed_at`

// SaleRepo implements ports.SaleRepository. Removal uses DELETE RETURNING so
// concurrent buyers of the same listing race on a single statement; exactly
// one caller receives the row.
type SaleRepo struct {
	pool Pool
}

// NewSaleRepo creates a new SaleRepo.
func NewSaleRepo(pool Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// Insert stores or replaces a listing keyed by its sale key.
func (r *SaleRepo) Insert(ctx context.Context, sale *domain.Sale) error {
	query := `INSERT INTO sales (sale_key, seller, approval_token, asset_issuer, asset_id, price, listed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (sale_key) DO UPDATE
		SET seller=EXCLUDED.seller, approval_token=EXCLUDED.approval_token,
			price=EXCLUDED.price, listed_at=EXCLUDED.listed_at`

	_, err := r.pool.Exec(ctx, query,
		sale.Key(), sale.Seller, sale.ApprovalToken,
		sale.AssetIssuer, sale.AssetID, sale.Price.String(), sale.ListedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Remove deletes the listing and returns it, or (nil, nil) if absent.
func (r *SaleRepo) Remove(ctx context.Context, key string) (*domain.Sale, error) {
	query := `DELETE FROM sales WHERE sale_key = $1 RETURNING ` + saleColumns

	sale, err := scanSale(r.pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("remove sale: %w", err)
	}
	return sale, nil
}

// Get fetches a listing by key, or (nil, nil) if absent.
func (r *SaleRepo) Get(ctx context.Context, key string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_key = $1`

	sale, err := scanSale(r.pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// Count returns the total number of listings.
func (r *SaleRepo) Count(ctx context.Context) (uint64, error) {
	var n uint64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

// ListAll returns a page of listings ordered by sale key.
func (r *SaleRepo) ListAll(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_key LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collectSales(rows)
}

// ListBySeller returns every listing owned by the seller.
func (r *SaleRepo) ListBySeller(ctx context.Context, seller string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE seller = $1 ORDER BY sale_key`

	rows, err := r.pool.Query(ctx, query, seller)
	if err != nil {
		return nil, fmt.Errorf("list sales by seller: %w", err)
	}
	return collectSales(rows)
}

// ListByIssuer returns every listing under the issuer.
func (r *SaleRepo) ListByIssuer(ctx context.Context, issuer string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE asset_issuer = $1 ORDER BY sale_key`

	rows, err := r.pool.Query(ctx, query, issuer)
	if err != nil {
		return nil, fmt.Errorf("list sales by issuer: %w", err)
	}
	return collectSales(rows)
}

// CountBySeller returns the number of listings owned by the seller.
func (r *SaleRepo) CountBySeller(ctx context.Context, seller string) (uint64, error) {
	var n uint64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE seller = $1`, seller).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales by seller: %w", err)
	}
	return n, nil
}

// CountByIssuer returns the number of listings under the issuer.
func (r *SaleRepo) CountByIssuer(ctx context.Context, issuer string) (uint64, error) {
	var n uint64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE asset_issuer = $1`, issuer).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales by issuer: %w", err)
	}
	return n, nil
}

// scanSale reads one sale row. Price is stored as text and parsed back into
// its 128-bit representation.
func scanSale(row pgx.Row) (*domain.Sale, error) {
	var (
		sale     domain.Sale
		key      string
		priceRaw string
	)
	err := row.Scan(&key, &sale.Seller, &sale.ApprovalToken,
		&sale.AssetIssuer, &sale.AssetID, &priceRaw, &sale.ListedAt)
	if err != nil {
		return nil, err
	}

	price, err := domain.ParseAmount(priceRaw)
	if err != nil {
		return nil, fmt.Errorf("parse stored price %q: %w", priceRaw, err)
	}
	sale.Price = price
	return &sale, nil
}

func collectSales(rows pgx.Rows) ([]domain.Sale, error) {
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, *sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}
