package cover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog_AddGeneratesID(t *testing.T) {
	c := NewCatalog(nil)
	id := c.Add(CoverType{Name: "anonymous", PercentThreshold: 0.5})
	require.NotEmpty(t, id)
	_, ok := c.Get(id)
	require.True(t, ok)
}

func TestCatalog_InvalidThresholdIsNoOp(t *testing.T) {
	c := NewCatalog(nil)
	id := c.Add(CoverType{ID: "bad", PercentThreshold: 1.5})
	require.Empty(t, id)
	require.Equal(t, 0, c.Len())
}

func TestCatalog_DuplicateIDIsNoOp(t *testing.T) {
	c := NewCatalog(nil)
	require.NotEmpty(t, c.Add(CoverType{ID: "x", PercentThreshold: 0.5}))
	require.Empty(t, c.Add(CoverType{ID: "x", PercentThreshold: 0.7}))
	ct, _ := c.Get("x")
	require.Equal(t, 0.5, ct.PercentThreshold)
}

func TestCatalog_UpdateUnknownIsNoOp(t *testing.T) {
	c := NewCatalog(nil)
	c.Update(CoverType{ID: "ghost", PercentThreshold: 0.5})
	require.Equal(t, 0, c.Len())
}

func TestCatalog_DerivedListsPartitionCatalog(t *testing.T) {
	c := NewCatalog(nil)
	c.Add(CoverType{ID: "a", PercentThreshold: 0.75, Priority: Prio(10)})
	c.Add(CoverType{ID: "b", PercentThreshold: 0.5, Priority: Prio(5)})
	c.Add(CoverType{ID: "c", PercentThreshold: 0.25})
	c.Add(CoverType{ID: "d", PercentThreshold: 0.1})

	p := c.Prioritized()
	u := c.Unprioritized()
	require.Len(t, p, 2)
	require.Len(t, u, 2)

	seen := map[string]int{}
	for _, ct := range p {
		seen[ct.ID]++
	}
	for _, ct := range u {
		seen[ct.ID]++
	}
	require.Len(t, seen, 4, "partition must cover the whole catalog")
	for id, n := range seen {
		require.Equal(t, 1, n, "id %s duplicated across derived lists", id)
	}
}

func TestCatalog_PrioritizedSortedDescending(t *testing.T) {
	c := NewCatalog(nil)
	c.Add(CoverType{ID: "low", PercentThreshold: 0.5, Priority: Prio(1)})
	c.Add(CoverType{ID: "high", PercentThreshold: 0.9, Priority: Prio(9)})
	c.Add(CoverType{ID: "mid", PercentThreshold: 0.7, Priority: Prio(5)})

	p := c.Prioritized()
	require.Equal(t, []string{"high", "mid", "low"}, []string{p[0].ID, p[1].ID, p[2].ID})
}

func TestCatalog_MutationInvalidatesDerivedLists(t *testing.T) {
	c := NewCatalog(nil)
	c.Add(CoverType{ID: "a", PercentThreshold: 0.5, Priority: Prio(1)})
	require.Len(t, c.Prioritized(), 1)

	c.Add(CoverType{ID: "b", PercentThreshold: 0.6, Priority: Prio(2)})
	require.Len(t, c.Prioritized(), 2, "add must invalidate the derived lists")

	c.Update(CoverType{ID: "b", PercentThreshold: 0.6}) // drop the priority
	require.Len(t, c.Prioritized(), 1, "update must invalidate the derived lists")
	require.Len(t, c.Unprioritized(), 1)

	c.Remove("a")
	require.Empty(t, c.Prioritized(), "remove must invalidate the derived lists")
}

func TestCatalog_RemoveUnknownIsNoOp(t *testing.T) {
	c := NewCatalog(nil)
	c.Add(CoverType{ID: "a", PercentThreshold: 0.5})
	c.Remove("ghost")
	require.Equal(t, 1, c.Len())
}
