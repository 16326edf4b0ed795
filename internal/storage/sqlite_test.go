package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneystory/moneystory/internal/common"
	"github.com/moneystory/moneystory/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestUser(t *testing.T, store *SQLiteStore) *model.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), "Test User", "test@example.com")
	require.NoError(t, err)
	return user
}

func sampleTxn(ts time.Time, amount float64, isIncome bool, category string) model.Transaction {
	return model.Transaction{
		Timestamp:   ts,
		Amount:      amount,
		IsIncome:    isIncome,
		Category:    category,
		Description: "sample",
		Source:      "upi",
	}
}

func TestNewCreatesSchema(t *testing.T) {
	store := newTestStore(t)

	var version int
	err := store.db.QueryRow("PRAGMA user_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, expectedSchemaVersion, version)
}

func TestNewIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(dbPath)
	require.NoError(t, err)
	user := newTestUser(t, store)
	require.NoError(t, store.Close())

	store, err = New(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	got, err := store.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, got.Name)
}

func TestCreateUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "Asha", "asha@example.com")
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.Equal(t, "Asha", user.Name)

	_, err = store.CreateUser(ctx, "Asha Again", "asha@example.com")
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	_, err = store.CreateUser(ctx, "   ", "blank@example.com")
	assert.Error(t, err)
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFirstUserSeedsDemo(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.FirstUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Demo User", user.Name)

	budgets, err := store.ListBudgets(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, budgets, 4)
	byCategory := map[string]float64{}
	for _, b := range budgets {
		byCategory[b.Category] = b.Amount
	}
	assert.Equal(t, 5000.0, byCategory["Food"])
	assert.Equal(t, 4000.0, byCategory["Shopping"])
	assert.Equal(t, 1500.0, byCategory["Subscriptions"])
	assert.Equal(t, 3000.0, byCategory["Transport"])

	again, err := store.FirstUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestSaveAndListTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store)

	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		sampleTxn(base, 250, false, "Food"),
		sampleTxn(base.Add(24*time.Hour), 80000, true, "Income"),
		sampleTxn(base.Add(48*time.Hour), 499, false, "Subscriptions"),
	}
	require.NoError(t, store.SaveTransactions(ctx, user.ID, txns))

	got, err := store.ListTransactions(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Newest first.
	assert.Equal(t, "Subscriptions", got[0].Category)
	assert.Equal(t, "Food", got[2].Category)
	assert.Equal(t, user.ID, got[0].UserID)
	assert.True(t, got[1].IsIncome)
}

func TestListTransactionsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store)

	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	var txns []model.Transaction
	for i := 0; i < 5; i++ {
		txns = append(txns, sampleTxn(base.Add(time.Duration(i)*time.Hour), 100, false, "Food"))
	}
	require.NoError(t, store.SaveTransactions(ctx, user.ID, txns))

	got, err := store.ListTransactions(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSaveTransactionsValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store)

	err := store.SaveTransactions(ctx, user.ID, nil)
	assert.Error(t, err)

	err = store.SaveTransactions(ctx, 0, []model.Transaction{
		sampleTxn(time.Now(), 10, false, "Food"),
	})
	assert.Error(t, err)

	err = store.SaveTransactions(ctx, user.ID, []model.Transaction{
		{Amount: -5, Timestamp: time.Now()},
	})
	assert.Error(t, err)
}

func TestGetTransactionsByRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store)

	txns := []model.Transaction{
		sampleTxn(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), 100, false, "Food"),
		sampleTxn(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 200, false, "Food"),
		sampleTxn(time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC), 300, false, "Shopping"),
		sampleTxn(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 400, false, "Food"),
	}
	require.NoError(t, store.SaveTransactions(ctx, user.ID, txns))

	start, end, err := model.MonthRange(2025, 1)
	require.NoError(t, err)
	got, err := store.GetTransactionsByRange(ctx, user.ID, start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Oldest first, half-open interval.
	assert.Equal(t, 200.0, got[0].Amount)
	assert.Equal(t, 300.0, got[1].Amount)
}

func TestGetTransactionsByRangeScopedToUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	first := newTestUser(t, store)
	second, err := store.CreateUser(ctx, "Other", "other@example.com")
	require.NoError(t, err)

	ts := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveTransactions(ctx, first.ID, []model.Transaction{
		sampleTxn(ts, 100, false, "Food"),
	}))
	require.NoError(t, store.SaveTransactions(ctx, second.ID, []model.Transaction{
		sampleTxn(ts, 999, false, "Shopping"),
	}))

	start, end, err := model.MonthRange(2025, 3)
	require.NoError(t, err)
	got, err := store.GetTransactionsByRange(ctx, first.ID, start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Amount)
}

func TestGetAllTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store)

	txns := []model.Transaction{
		sampleTxn(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 200, false, "Food"),
		sampleTxn(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 100, false, "Food"),
	}
	require.NoError(t, store.SaveTransactions(ctx, user.ID, txns))

	got, err := store.GetAllTransactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 100.0, got[0].Amount)
	assert.Equal(t, 200.0, got[1].Amount)
}

func TestUpsertBudget(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store)

	require.NoError(t, store.UpsertBudget(ctx, user.ID, "Food", 6000))
	require.NoError(t, store.UpsertBudget(ctx, user.ID, "Food", 6500))

	budgets, err := store.ListBudgets(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, 6500.0, budgets[0].Amount)

	assert.Error(t, store.UpsertBudget(ctx, user.ID, "", 100))
	assert.Error(t, store.UpsertBudget(ctx, user.ID, "Food", -1))
}

func TestOptionalFieldsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store)

	txn := model.Transaction{
		Timestamp: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		Amount:    120,
	}
	require.NoError(t, store.SaveTransactions(ctx, user.ID, []model.Transaction{txn}))

	got, err := store.GetAllTransactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Category)
	assert.Empty(t, got[0].Description)
	assert.Empty(t, got[0].Source)
	assert.Empty(t, got[0].AccountName)
}
