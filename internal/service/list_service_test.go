package service

import (
	"context"
	"testing"

	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListService(t *testing.T) (*ListService, *fakeUserRepo, *fakeListRepo) {
	t.Helper()
	users := newFakeUserRepo()
	lists := newFakeListRepo()
	return NewListService(lists, users, nil), users, lists
}

func seedUser(t *testing.T, users *fakeUserRepo, email string) dom.User {
	t.Helper()
	u, err := users.Create(context.Background(), email, "x")
	require.NoError(t, err)
	return u
}

func TestCreateListDefaultsAndNormalization(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()

	neg := int64(-100)
	l, err := svc.Create(ctx, owner.ID, "  Compras da semana  ", "", nil, &neg)
	require.NoError(t, err)
	assert.Equal(t, "Compras da semana", l.Title)
	assert.EqualValues(t, 0, l.PlannedBudgetCents, "negative budget must clamp to 0")
	assert.NotEmpty(t, l.PublicToken)
	assert.False(t, l.Date.IsZero(), "date defaults to today")

	_, err = svc.Create(ctx, owner.ID, "   ", "", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestAddItemNormalizesAtIngestion(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	l, err := svc.Create(ctx, owner.ID, "Feira", "", nil, nil)
	require.NoError(t, err)

	price := int64(1000)
	it, err := svc.AddItem(ctx, owner.ID, l.ID, ItemParams{
		Name:     "Cerveja",
		Category: "bebidas",
		Unit:     "Caixa", // synonym, canonicalized to cx
	})
	require.NoError(t, err)
	assert.Equal(t, dom.CategoryBebidas, it.Category)
	assert.Equal(t, dom.UnitBox, it.Unit)
	assert.EqualValues(t, 1, it.Quantity, "missing quantity defaults to 1")
	assert.EqualValues(t, 0, it.PriceCents, "missing price defaults to 0")

	it2, err := svc.AddItem(ctx, owner.ID, l.ID, ItemParams{
		Name:       "Arroz",
		Category:   "coisas estranhas",
		Unit:       "saco",
		PriceCents: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, dom.CategoryOther, it2.Category, "unknown category folds into Outros")
	assert.Equal(t, dom.UnitUnknown, it2.Unit)
}

func TestCollaboratorCanEditOwnerOnlyOpsRejected(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	friend := seedUser(t, users, "bia@example.com")
	stranger := seedUser(t, users, "zoe@example.com")
	ctx := context.Background()

	l, err := svc.Create(ctx, owner.ID, "Churrasco", "", nil, nil)
	require.NoError(t, err)
	_, err = svc.Share(ctx, owner.ID, l.ID, "Bia@Example.com")
	require.NoError(t, err)

	// Collaborator can read and add items.
	got, err := svc.Get(ctx, friend.ID, l.ID)
	require.NoError(t, err)
	assert.True(t, got.SharedWithContains("bia@example.com"))
	_, err = svc.AddItem(ctx, friend.ID, l.ID, ItemParams{Name: "Carvão"})
	require.NoError(t, err)

	// But cannot delete, share or publish.
	assert.ErrorIs(t, svc.Delete(ctx, friend.ID, l.ID), ErrForbidden)
	_, err = svc.Share(ctx, friend.ID, l.ID, "zoe@example.com")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.SetVisibility(ctx, friend.ID, l.ID, true)
	assert.ErrorIs(t, err, ErrForbidden)

	// A stranger can do nothing at all.
	_, err = svc.Get(ctx, stranger.ID, l.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestShareRejectsOwnerEmail(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	l, err := svc.Create(ctx, owner.ID, "Lista", "", nil, nil)
	require.NoError(t, err)

	_, err = svc.Share(ctx, owner.ID, l.ID, "ana@example.com")
	assert.ErrorIs(t, err, ErrSelfShare)
}

func TestUnshareRemovesCollaborator(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	friend := seedUser(t, users, "bia@example.com")
	ctx := context.Background()
	l, err := svc.Create(ctx, owner.ID, "Lista", "", nil, nil)
	require.NoError(t, err)
	_, err = svc.Share(ctx, owner.ID, l.ID, friend.Email)
	require.NoError(t, err)

	_, err = svc.Unshare(ctx, owner.ID, l.ID, friend.Email)
	require.NoError(t, err)
	_, err = svc.Get(ctx, friend.ID, l.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTrashRestorePurge(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	l, err := svc.Create(ctx, owner.ID, "Antiga", "", nil, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner.ID, l.ID))
	_, err = svc.Get(ctx, owner.ID, l.ID)
	assert.ErrorIs(t, err, ErrNotFound, "trashed list is invisible")

	trash, err := svc.Trash(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, trash, 1)

	require.NoError(t, svc.Restore(ctx, owner.ID, l.ID))
	_, err = svc.Get(ctx, owner.ID, l.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner.ID, l.ID))
	require.NoError(t, svc.Purge(ctx, owner.ID, l.ID))
	assert.ErrorIs(t, svc.Restore(ctx, owner.ID, l.ID), ErrNotFound)
}

func TestPublicTokenRotatesOnPublish(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	l, err := svc.Create(ctx, owner.ID, "Pública", "", nil, nil)
	require.NoError(t, err)

	_, err = svc.GetPublic(ctx, l.PublicToken)
	assert.ErrorIs(t, err, ErrNotFound, "private list is not reachable by token")

	pub, err := svc.SetVisibility(ctx, owner.ID, l.ID, true)
	require.NoError(t, err)
	assert.NotEqual(t, l.PublicToken, pub.PublicToken)

	got, err := svc.GetPublic(ctx, pub.PublicToken)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	unpub, err := svc.SetVisibility(ctx, owner.ID, l.ID, false)
	require.NoError(t, err)
	_, err = svc.GetPublic(ctx, unpub.PublicToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleItemAndSummary(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	budget := int64(3000)
	l, err := svc.Create(ctx, owner.ID, "Mercado", "", nil, &budget)
	require.NoError(t, err)

	price1, qty1 := int64(1000), 3.0
	_, err = svc.AddItem(ctx, owner.ID, l.ID, ItemParams{Name: "Cerveja", Unit: "un", PriceCents: &price1, Quantity: &qty1})
	require.NoError(t, err)
	price2, qty2 := int64(500), 2.0
	it, err := svc.AddItem(ctx, owner.ID, l.ID, ItemParams{Name: "Carne", Unit: "kg", PriceCents: &price2, Quantity: &qty2})
	require.NoError(t, err)

	toggled, err := svc.ToggleItem(ctx, owner.ID, l.ID, it.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Checked)

	_, sum, err := svc.Summary(ctx, owner.ID, l.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3500, sum.TotalSpentCents, "3 un x 10.00 + 5.00 total for kg")
	assert.EqualValues(t, 500, sum.CheckedSpentCents)
	assert.True(t, sum.IsOverBudget)
	assert.EqualValues(t, 500, sum.OverageCents)
}

func TestRemoveItemExcludedFromSummary(t *testing.T) {
	svc, users, _ := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	l, err := svc.Create(ctx, owner.ID, "Mercado", "", nil, nil)
	require.NoError(t, err)
	price := int64(1000)
	it, err := svc.AddItem(ctx, owner.ID, l.ID, ItemParams{Name: "Chocolate", Unit: "un", PriceCents: &price})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, owner.ID, l.ID, it.ID))
	_, sum, err := svc.Summary(ctx, owner.ID, l.ID)
	require.NoError(t, err)
	assert.Zero(t, sum.TotalSpentCents)
	assert.Zero(t, sum.ItemCount)
}

func TestAnalyticsOverview(t *testing.T) {
	svc, users, lists := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	budget := int64(1000)
	l, err := svc.Create(ctx, owner.ID, "Estouro", "", nil, &budget)
	require.NoError(t, err)
	price := int64(2000)
	_, err = svc.AddItem(ctx, owner.ID, l.ID, ItemParams{Name: "Picanha", Unit: "kg", PriceCents: &price})
	require.NoError(t, err)

	all, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)

	ansvc := NewAnalyticsService(lists)
	grand, overBudget, sums := ansvc.Overview(ctx, all)
	assert.EqualValues(t, 2000, grand)
	assert.Equal(t, 1, overBudget)
	require.Len(t, sums, 1)
	assert.True(t, sums[0].IsOverBudget)
}

func TestBreakdownByCategory(t *testing.T) {
	svc, users, lists := newTestListService(t)
	owner := seedUser(t, users, "ana@example.com")
	ctx := context.Background()
	l, err := svc.Create(ctx, owner.ID, "Mercado", "", nil, nil)
	require.NoError(t, err)
	p1, p2 := int64(3000), int64(1000)
	_, err = svc.AddItem(ctx, owner.ID, l.ID, ItemParams{Name: "Cerveja", Category: "bebidas", Unit: "un", PriceCents: &p1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, owner.ID, l.ID, ItemParams{Name: "Sabão", Category: "limpeza", Unit: "un", PriceCents: &p2})
	require.NoError(t, err)

	ansvc := NewAnalyticsService(lists)
	buckets, total, err := ansvc.Breakdown(ctx, owner.ID, GroupByCategory, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 4000, total)
	require.Len(t, buckets, 2)
	var pct float64
	for _, b := range buckets {
		pct += b.Percent
	}
	assert.InDelta(t, 100, pct, 1e-9)
}
