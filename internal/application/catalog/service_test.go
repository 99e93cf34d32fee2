package catalog

import (
	"context"
	"testing"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/catalog"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return NewService(memory.NewCatalogRepository(memory.SeedProducts()), nil)
}

func TestListAndGet(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)

	p, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Panadol", p.Name)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestByNameMatchesSubstringCaseInsensitive(t *testing.T) {
	svc := newService()

	hits, err := svc.ByName(context.Background(), "ensure")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "Ensure", hits[0].Name)
	assert.Equal(t, "Ensure Plus", hits[1].Name)
}

func TestByNameNoMatchIsEmptyNotError(t *testing.T) {
	svc := newService()

	hits, err := svc.ByName(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestByCategory(t *testing.T) {
	svc := newService()

	hits, err := svc.ByCategory(context.Background(), "BABY")
	require.NoError(t, err)
	assert.Len(t, hits, 4)
	for _, p := range hits {
		assert.Equal(t, "Baby", p.Category)
	}
}

func TestInCategory(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.InCategory(ctx, "medicines", 2)
	require.NoError(t, err)
	assert.Equal(t, "Panadol", p.Name)

	_, err = svc.InCategory(ctx, "baby", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.InCategory(ctx, "medicines", 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecommendationsShareExactCategory(t *testing.T) {
	svc := newService()

	recs, err := svc.Recommendations(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	ids := make([]int, 0, len(recs))
	for _, p := range recs {
		assert.Equal(t, "Supplements", p.Category)
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, 5)
}
