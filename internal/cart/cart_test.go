package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return NewStore(mem, config.Default(), nil), mem
}

func product(id, vendorID string, price float64) domain.Product {
	return domain.Product{
		ID:         id,
		VendorID:   vendorID,
		VendorName: "Shop " + vendorID,
		Name:       "Product " + id,
		Price:      price,
		Unit:       domain.UnitKg,
	}
}

func TestAdd_MergesSameProduct(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 2))
	require.NoError(t, s.Add(product("p1", "v1", 10), 3))

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAdd_SnapshotsProductFields(t *testing.T) {
	s, _ := newTestStore(t)

	p := product("p1", "v1", 42.5)
	p.Image = "/media/p1.jpg"
	require.NoError(t, s.Add(p, 1))

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Product p1", items[0].Name)
	assert.Equal(t, 42.5, items[0].Price)
	assert.Equal(t, domain.UnitKg, items[0].Unit)
	assert.Equal(t, "/media/p1.jpg", items[0].Image)
	assert.Equal(t, "Shop v1", items[0].VendorName)
	assert.False(t, items[0].AddedAt.IsZero())
}

func TestAdd_RejectsInvalidQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.Add(product("p1", "v1", 10), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, s.Add(product("p1", "v1", 10), -3), ErrInvalidQuantity)

	count, err := s.ItemCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAdd_CapacityLeavesStateUnchanged(t *testing.T) {
	s, mem := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 49))

	before, err := mem.Get(config.KeyCart)
	require.NoError(t, err)

	// one more fits exactly
	require.NoError(t, s.Add(product("p2", "v1", 5), 1))

	after, err := mem.Get(config.KeyCart)
	require.NoError(t, err)

	// the next add overflows and must not touch storage
	err = s.Add(product("p3", "v2", 1), 1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	unchanged, err := mem.Get(config.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, after, unchanged)
	assert.NotEqual(t, before, after)

	count, err := s.ItemCount()
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestAdd_CapacityAppliesToMergedQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 30))
	assert.ErrorIs(t, s.Add(product("p1", "v1", 10), 21), ErrCapacityExceeded)

	qty, err := s.QuantityOf("p1")
	require.NoError(t, err)
	assert.Equal(t, 30, qty)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 1))
	require.NoError(t, s.Add(product("p2", "v1", 5), 1))

	require.NoError(t, s.Remove("p1"))

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	// absent product is a no-op, not an error
	require.NoError(t, s.Remove("p1"))
	require.NoError(t, s.Remove("never-added"))
}

func TestSetQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 2))

	require.NoError(t, s.SetQuantity("p1", 7))
	qty, err := s.QuantityOf("p1")
	require.NoError(t, err)
	assert.Equal(t, 7, qty)

	// zero removes the line
	require.NoError(t, s.SetQuantity("p1", 0))
	ok, err := s.Contains("p1")
	require.NoError(t, err)
	assert.False(t, ok)

	// absent product is a no-op
	require.NoError(t, s.SetQuantity("ghost", 3))
}

func TestClear(t *testing.T) {
	s, mem := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 2))
	require.NoError(t, s.Clear())

	_, err := mem.Get(config.KeyCart)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	total, err := s.Total()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTotals_ExampleFromSpec(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 2))
	require.NoError(t, s.Add(product("p2", "v1", 5), 1))

	total, err := s.Total()
	require.NoError(t, err)
	assert.Equal(t, 25.0, total)

	count, err := s.ItemCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	groups, err := s.GroupByVendor()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "v1", groups[0].VendorID)
	assert.Equal(t, 25.0, groups[0].Total)
}

func TestTotals_EmptyCart(t *testing.T) {
	s, _ := newTestStore(t)

	total, err := s.Total()
	require.NoError(t, err)
	assert.Zero(t, total)

	count, err := s.ItemCount()
	require.NoError(t, err)
	assert.Zero(t, count)

	groups, err := s.GroupByVendor()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupByVendor_OrderAndPartition(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v2", 10), 1))
	require.NoError(t, s.Add(product("p2", "v1", 5), 1))
	require.NoError(t, s.Add(product("p3", "v2", 2), 1))
	require.NoError(t, s.Add(product("p4", "v3", 1), 1))

	groups, err := s.GroupByVendor()
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// first-occurrence order of vendors
	assert.Equal(t, "v2", groups[0].VendorID)
	assert.Equal(t, "v1", groups[1].VendorID)
	assert.Equal(t, "v3", groups[2].VendorID)

	// every item appears exactly once, cart order preserved per group
	var seen []string
	for _, g := range groups {
		for _, item := range g.Items {
			seen = append(seen, item.ProductID)
		}
	}
	assert.ElementsMatch(t, []string{"p1", "p2", "p3", "p4"}, seen)
	assert.Equal(t, []string{"p1", "p3"}, []string{groups[0].Items[0].ProductID, groups[0].Items[1].ProductID})
}

func TestSummary_DeliveryFeePerVendor(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 2))
	require.NoError(t, s.Add(product("p2", "v2", 5), 1))

	summary, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 25.0, summary.Total)
	assert.Equal(t, 2, summary.VendorCount)
	assert.Equal(t, 40.0, summary.DeliveryFee)
	assert.Equal(t, 65.0, summary.GrandTotal)
}

func TestSubscribe_NotifiedOnMutation(t *testing.T) {
	s, _ := newTestStore(t)

	var got []Summary
	s.Subscribe(func(sum Summary) { got = append(got, sum) })

	require.NoError(t, s.Add(product("p1", "v1", 10), 2))
	require.NoError(t, s.Clear())

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ItemCount)
	assert.Equal(t, 20.0, got[0].Total)
	assert.Zero(t, got[1].ItemCount)
}

func TestSubscribe_NotNotifiedOnFailedAdd(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(product("p1", "v1", 10), 50))

	calls := 0
	s.Subscribe(func(Summary) { calls++ })

	assert.ErrorIs(t, s.Add(product("p2", "v1", 1), 1), ErrCapacityExceeded)
	assert.Zero(t, calls)
}
