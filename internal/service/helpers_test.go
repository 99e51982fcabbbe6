package service_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beanbarn/storefront/internal/store"
)

type seqIDs struct{ orders, codes int }

func (g *seqIDs) OrderID() string {
	g.orders++
	return fmt.Sprintf("ord_%d", g.orders)
}

func (g *seqIDs) DiscountCode() string {
	g.codes++
	return fmt.Sprintf("DISC-%d", g.codes)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(interval, percentage int) *store.Store {
	return store.New(store.Config{
		MilestoneInterval: interval,
		RewardPercentage:  percentage,
	}, &seqIDs{}, store.DefaultCatalog())
}

func addItem(t *testing.T, st *store.Store, userID, productID string, quantity int) {
	t.Helper()
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		return tx.AddToCart(userID, productID, quantity)
	}))
}

func orderCount(t *testing.T, st *store.Store) int {
	t.Helper()
	var n int
	require.NoError(t, st.View(func(tx *store.Tx) error {
		n = tx.OrderCount()
		return nil
	}))
	return n
}

func codeCount(t *testing.T, st *store.Store) int {
	t.Helper()
	var n int
	require.NoError(t, st.View(func(tx *store.Tx) error {
		n = len(tx.DiscountCodes())
		return nil
	}))
	return n
}
