package postgres

import (
	"context"
	"testing"
	"time"

	"card-marketplace/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSale() *domain.Sale {
	return &domain.Sale{
		Seller:        "alice",
		ApprovalToken: 3,
		AssetIssuer:   "cards",
		AssetID:       "card-1",
		Price:         domain.NewAmount(150),
		ListedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func saleColumnNames() []string {
	return []string{"sale_key", "seller", "approval_token", "asset_issuer", "asset_id", "price", "listed_at"}
}

func saleRow(s *domain.Sale) *pgxmock.Rows {
	return pgxmock.NewRows(saleColumnNames()).AddRow(
		s.Key(), s.Seller, s.ApprovalToken,
		s.AssetIssuer, s.AssetID, s.Price.String(), s.ListedAt,
	)
}

func TestSaleRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	s := newTestSale()

	mock.ExpectExec("INSERT INTO sales").
		WithArgs(s.Key(), s.Seller, s.ApprovalToken,
			s.AssetIssuer, s.AssetID, s.Price.String(), s.ListedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Insert(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	s := newTestSale()

	mock.ExpectQuery("SELECT .+ FROM sales WHERE sale_key").
		WithArgs(s.Key()).
		WillReturnRows(saleRow(s))

	result, err := repo.Get(context.Background(), s.Key())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.Seller, result.Seller)
	assert.Equal(t, "150", result.Price.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM sales WHERE sale_key").
		WithArgs("cards.card-9").
		WillReturnRows(pgxmock.NewRows(saleColumnNames()))

	result, err := repo.Get(context.Background(), "cards.card-9")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_Remove_ReturnsRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	s := newTestSale()

	mock.ExpectQuery("DELETE FROM sales WHERE sale_key .+ RETURNING").
		WithArgs(s.Key()).
		WillReturnRows(saleRow(s))

	result, err := repo.Remove(context.Background(), s.Key())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.Seller, result.Seller)
	assert.Equal(t, s.ApprovalToken, result.ApprovalToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_Remove_Absent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)

	mock.ExpectQuery("DELETE FROM sales WHERE sale_key .+ RETURNING").
		WithArgs("cards.card-9").
		WillReturnRows(pgxmock.NewRows(saleColumnNames()))

	result, err := repo.Remove(context.Background(), "cards.card-9")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_ListAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	s := newTestSale()

	mock.ExpectQuery("SELECT .+ FROM sales ORDER BY sale_key LIMIT").
		WithArgs(50, 0).
		WillReturnRows(saleRow(s))

	sales, err := repo.ListAll(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "cards.card-1", sales[0].Key())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_ListBySeller(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	s := newTestSale()

	mock.ExpectQuery("SELECT .+ FROM sales WHERE seller").
		WithArgs("alice").
		WillReturnRows(saleRow(s))

	sales, err := repo.ListBySeller(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_Counts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sales$`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(uint64(7)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sales WHERE seller`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(uint64(2)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sales WHERE asset_issuer`).
		WithArgs("cards").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(uint64(5)))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), total)

	bySeller, err := repo.CountBySeller(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), bySeller)

	byIssuer, err := repo.CountByIssuer(context.Background(), "cards")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), byIssuer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_CorruptPriceRejected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	s := newTestSale()

	row := pgxmock.NewRows(saleColumnNames()).AddRow(
		s.Key(), s.Seller, s.ApprovalToken,
		s.AssetIssuer, s.AssetID, "not-a-number", s.ListedAt,
	)
	mock.ExpectQuery("SELECT .+ FROM sales WHERE sale_key").
		WithArgs(s.Key()).
		WillReturnRows(row)

	result, err := repo.Get(context.Background(), s.Key())
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
