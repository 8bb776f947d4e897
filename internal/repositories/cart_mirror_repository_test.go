package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	repository "github.com/aaravmahajanofficial/food-cart/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartMirrorRepoTest(t *testing.T) (repository.CartMirrorRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCartMirrorRepo(db), mock
}

var cartColumns = []string{"id", "name", "image", "price", "quantity", "username"}

func TestCartMirrorRepository(t *testing.T) {
	repo, mock := setupCartMirrorRepoTest(t)
	ctx := t.Context()

	upsertSQL := regexp.QuoteMeta(`INSERT INTO cart_foods (id, name, image, price, quantity, username)`)
	pizza := models.CartEntry{ID: 7, Name: "Pizza", Image: "pizza.png", Price: 22, Quantity: 2, Username: "tamer_akdeniz"}
	ayran := models.CartEntry{ID: 8, Name: "Ayran", Image: "ayran.png", Price: 2, Quantity: 1, Username: "tamer_akdeniz"}

	t.Run("Upsert", func(t *testing.T) {
		mock.ExpectExec(upsertSQL).
			WithArgs(7, "Pizza", "pizza.png", 22, 2, "tamer_akdeniz").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Upsert(ctx, &pizza))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get", func(t *testing.T) {
		getSQL := regexp.QuoteMeta(`FROM cart_foods WHERE id = $1`)

		mock.ExpectQuery(getSQL).WithArgs(7).
			WillReturnRows(sqlmock.NewRows(cartColumns).AddRow(7, "Pizza", "pizza.png", 22, 2, "tamer_akdeniz"))

		entry, err := repo.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, &pizza, entry)

		mock.ExpectQuery(getSQL).WithArgs(99).WillReturnError(sql.ErrNoRows)

		entry, err = repo.Get(ctx, 99)
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_foods WHERE id = $1`)).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clear", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_foods`)).WillReturnResult(sqlmock.NewResult(0, 2))

		assert.NoError(t, repo.Clear(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ReplaceAll", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_foods`)).WillReturnResult(sqlmock.NewResult(0, 5))
			mock.ExpectExec(upsertSQL).WithArgs(7, "Pizza", "pizza.png", 22, 2, "tamer_akdeniz").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(upsertSQL).WithArgs(8, "Ayran", "ayran.png", 2, 1, "tamer_akdeniz").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.ReplaceAll(ctx, []models.CartEntry{pizza, ayran})

			// Assert
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - insert rolls back", func(t *testing.T) {
			insertErr := errors.New("constraint violation")
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_foods`)).WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec(upsertSQL).WillReturnError(insertErr)
			mock.ExpectRollback()

			err := repo.ReplaceAll(ctx, []models.CartEntry{pizza})

			require.Error(t, err)
			assert.ErrorIs(t, err, insertErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM cart_foods ORDER BY id`)).
			WillReturnRows(sqlmock.NewRows(cartColumns).
				AddRow(7, "Pizza", "pizza.png", 22, 2, "tamer_akdeniz").
				AddRow(8, "Ayran", "ayran.png", 2, 1, "tamer_akdeniz"))

		entries, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []models.CartEntry{pizza, ayran}, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Totals", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(price * quantity), 0) FROM cart_foods`)).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(46))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(quantity), 0) FROM cart_foods`)).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(3))

		price, err := repo.TotalPrice(ctx)
		require.NoError(t, err)
		assert.Equal(t, 46, price)

		quantity, err := repo.TotalQuantity(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, quantity)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Totals - empty mirror", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SUM(price * quantity)`)).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0))

		price, err := repo.TotalPrice(ctx)

		require.NoError(t, err)
		assert.Zero(t, price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
