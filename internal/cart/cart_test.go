package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velstore/storefront/internal/domain"
)

func testProduct(id string, price float64) domain.Product {
	return domain.Product{
		ID:      id,
		Name:    "Product " + id,
		InStock: true,
		Price:   price,
	}
}

// ============================================
// IdentityKey Tests
// ============================================

func TestIdentityKey_OrderIndependent(t *testing.T) {
	a := []domain.SelectedOption{
		{Name: "Size", Value: "M"},
		{Name: "Color", Value: "Red"},
	}
	b := []domain.SelectedOption{
		{Name: "Color", Value: "Red"},
		{Name: "Size", Value: "M"},
	}

	assert.Equal(t, IdentityKey("p1", a), IdentityKey("p1", b))
}

func TestIdentityKey_DistinctOnValueChange(t *testing.T) {
	a := []domain.SelectedOption{{Name: "Size", Value: "M"}}
	b := []domain.SelectedOption{{Name: "Size", Value: "L"}}

	assert.NotEqual(t, IdentityKey("p1", a), IdentityKey("p1", b))
}

func TestIdentityKey_DistinctOnProduct(t *testing.T) {
	opts := []domain.SelectedOption{{Name: "Size", Value: "M"}}

	assert.NotEqual(t, IdentityKey("p1", opts), IdentityKey("p2", opts))
}

func TestIdentityKey_NoOptions(t *testing.T) {
	assert.Equal(t, "p1-", IdentityKey("p1", nil))
}

// ============================================
// Add Tests
// ============================================

func TestCart_Add_MergesSameIdentity(t *testing.T) {
	c := New()
	p := testProduct("p1", 10.00)
	opts := []domain.SelectedOption{{Name: "Size", Value: "M"}}
	reordered := []domain.SelectedOption{{Name: "Size", Value: "M"}}

	count := c.Add(p, opts, false, nil)
	assert.Equal(t, 1, count)
	assert.InDelta(t, 10.00, c.Total(), 0.001)

	count = c.Add(p, reordered, false, nil)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, c.Lines())
	assert.InDelta(t, 20.00, c.Total(), 0.001)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_Add_NewLineOnDifferentOptions(t *testing.T) {
	c := New()
	p := testProduct("p1", 10.00)

	c.Add(p, []domain.SelectedOption{{Name: "Size", Value: "M"}}, false, nil)
	c.Add(p, []domain.SelectedOption{{Name: "Size", Value: "M"}}, false, nil)
	count := c.Add(p, []domain.SelectedOption{{Name: "Size", Value: "L"}}, false, nil)

	assert.Equal(t, 3, count)
	assert.Equal(t, 2, c.Lines())
	assert.InDelta(t, 30.00, c.Total(), 0.001)
}

func TestCart_Add_ReorderedOptionsMerge(t *testing.T) {
	c := New()
	p := testProduct("p1", 5.00)

	c.Add(p, []domain.SelectedOption{
		{Name: "Size", Value: "M"},
		{Name: "Color", Value: "Red"},
	}, false, nil)
	c.Add(p, []domain.SelectedOption{
		{Name: "Color", Value: "Red"},
		{Name: "Size", Value: "M"},
	}, false, nil)

	assert.Equal(t, 1, c.Lines())
	assert.Equal(t, 2, c.Count())
}

func TestCart_Add_QuickAddFlag(t *testing.T) {
	c := New()

	c.Add(testProduct("p1", 1.00), nil, true, nil)

	items := c.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].QuickAdd)
}

// ============================================
// Increment / Decrement Tests
// ============================================

func TestCart_Increment(t *testing.T) {
	c := New()
	p := testProduct("p1", 10.00)
	opts := []domain.SelectedOption{{Name: "Size", Value: "M"}}
	c.Add(p, opts, false, nil)

	count := c.Increment(IdentityKey("p1", opts))

	assert.Equal(t, 2, count)
	assert.Equal(t, 2, c.Count())
}

func TestCart_Increment_UnknownKeyNoOp(t *testing.T) {
	c := New()
	c.Add(testProduct("p1", 10.00), nil, false, nil)

	count := c.Increment("p2-")

	assert.Equal(t, 1, count)
}

func TestCart_Decrement_RemovesAtZero(t *testing.T) {
	c := New()
	p := testProduct("p1", 10.00)
	opts := []domain.SelectedOption{{Name: "Size", Value: "M"}}
	c.Add(p, opts, false, nil)

	count := c.Decrement(IdentityKey("p1", opts))

	assert.Equal(t, 0, count)
	assert.True(t, c.Empty())
}

func TestCart_Decrement_AbsentKeyNoOp(t *testing.T) {
	c := New()
	p := testProduct("p1", 10.00)
	c.Add(p, nil, false, nil)

	count := c.Decrement("missing-")

	assert.Equal(t, 1, count)
	assert.Equal(t, 1, c.Lines())
}

func TestCart_CountIsQuantitySum(t *testing.T) {
	c := New()
	p1 := testProduct("p1", 10.00)
	p2 := testProduct("p2", 3.00)
	sizeM := []domain.SelectedOption{{Name: "Size", Value: "M"}}

	c.Add(p1, sizeM, false, nil)
	c.Add(p1, sizeM, false, nil)
	c.Add(p2, nil, true, nil)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 2, c.Lines())

	c.Increment(IdentityKey("p1", sizeM))
	assert.Equal(t, 4, c.Count())

	c.Decrement(IdentityKey("p2", nil))
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 1, c.Lines())
}

// ============================================
// Total Tests
// ============================================

func TestCart_Total_OrderIndependent(t *testing.T) {
	forward := New()
	forward.Add(testProduct("p1", 10.00), nil, false, nil)
	forward.Add(testProduct("p2", 7.50), nil, false, nil)

	reversed := New()
	reversed.Add(testProduct("p2", 7.50), nil, false, nil)
	reversed.Add(testProduct("p1", 10.00), nil, false, nil)

	assert.InDelta(t, forward.Total(), reversed.Total(), 0.001)
	assert.InDelta(t, 17.50, forward.Total(), 0.001)
}

func TestCart_Total_MissingPriceCountsZero(t *testing.T) {
	c := New()
	c.Add(testProduct("p1", 0), nil, false, nil)
	c.Add(testProduct("p2", 4.00), nil, false, nil)

	assert.InDelta(t, 4.00, c.Total(), 0.001)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(testProduct("p1", 10.00), nil, false, nil)
	c.Add(testProduct("p2", 5.00), nil, false, nil)

	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Count())
	assert.Zero(t, c.Total())
}

// ============================================
// Sessions Tests
// ============================================

func TestSessions_GetCreatesOnce(t *testing.T) {
	s := NewSessions()
	id := NewSessionID()

	first := s.Get(id)
	first.Add(testProduct("p1", 1.00), nil, false, nil)

	assert.Same(t, first, s.Get(id))
	assert.Equal(t, 1, s.Get(id).Count())
	assert.NotSame(t, first, s.Get(NewSessionID()))
}
