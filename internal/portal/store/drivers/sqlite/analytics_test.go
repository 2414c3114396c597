package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func strptr(s string) *string { return &s }

// seedAnalytics inserts two layers, three fragments (one per layer plus one
// orphan-free extra), one ornament and two finds, returning the layer ids.
func seedAnalytics(t *testing.T, st *Store) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	entered := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	l1, err := st.Layers().CreateLayer(ctx, domain.Layer{
		Site:            strptr("Провадия"),
		Sector:          strptr("Юг"),
		Square:          strptr("A5"),
		RecordEnteredOn: entered,
		RecordCreatedOn: entered,
	})
	require.NoError(t, err)

	l2, err := st.Layers().CreateLayer(ctx, domain.Layer{
		Site:            strptr("Варна"),
		Sector:          strptr("Север"),
		Square:          strptr("B2"),
		RecordEnteredOn: entered.Add(48 * time.Hour),
		RecordCreatedOn: entered.Add(48 * time.Hour),
	})
	require.NoError(t, err)

	f1, err := st.Fragments().CreateFragment(ctx, domain.Fragment{
		LocationID:      &l1,
		PieceType:       "устие",
		Count:           1,
		Note:            strptr("вторично опален"),
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	_, err = st.Fragments().CreateFragment(ctx, domain.Fragment{
		LocationID:      &l1,
		PieceType:       "стена",
		Count:           2,
		Inventory:       strptr("ПИН 77"),
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	_, err = st.Fragments().CreateFragment(ctx, domain.Fragment{
		LocationID:      &l2,
		PieceType:       "дъно",
		Count:           1,
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	_, err = st.Ornaments().CreateOrnament(ctx, domain.Ornament{
		FragmentID:      &f1,
		Primary:         strptr("В"),
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	_, err = st.Finds().CreateFind(ctx, domain.Find{
		LayerID:         l1,
		FragmentID:      &f1,
		FindType:        strptr("костено шило"),
		Description:     strptr("фрагментирано"),
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	_, err = st.Finds().CreateFind(ctx, domain.Find{
		LayerID:         l2,
		FindType:        strptr("кремъчен нож"),
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	return l1, l2
}

func TestAnalyticsUnknownQuery(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Analytics().Query(context.Background(), domain.QueryID("q9"), domain.AnalyticsFilter{}, 10, 0)
	require.ErrorIs(t, err, store.ErrUnknownQuery)
}

func TestAnalyticsLayersFragments(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAnalytics(t, st)

	t.Run("empty filter matches every joined row", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryLayersFragments, domain.AnalyticsFilter{}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 3)

		// Newest layer first.
		require.EqualValues(t, "дъно", res.Items[0]["f_piecetype"])

		require.Contains(t, res.Columns, "l_site")
		require.Contains(t, res.Columns, "f_fragmentid")
	})

	t.Run("site filter is a substring match", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryLayersFragments,
			domain.AnalyticsFilter{Site: "ровади"}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 2, res.Total)
		for _, item := range res.Items {
			require.EqualValues(t, "Провадия", item["l_site"])
		}
	})

	t.Run("filters fold Cyrillic case", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryLayersFragments,
			domain.AnalyticsFilter{Site: "ПРОВАДИЯ"}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 2, res.Total, "uppercase Cyrillic filter must match the stored site")

		res, err = st.Analytics().Query(ctx, domain.QueryLayersFragments,
			domain.AnalyticsFilter{FreeText: "ОПАЛЕН"}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
	})

	t.Run("free text searches inventory, note and piece type", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryLayersFragments,
			domain.AnalyticsFilter{FreeText: "77"}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)

		// NULL text columns never match but never error either.
		res, err = st.Analytics().Query(ctx, domain.QueryLayersFragments,
			domain.AnalyticsFilter{FreeText: "опален"}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
	})

	t.Run("date window constrains on the layer entry timestamp", func(t *testing.T) {
		from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		res, err := st.Analytics().Query(ctx, domain.QueryLayersFragments,
			domain.AnalyticsFilter{DateFrom: &from}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
		require.EqualValues(t, "Варна", res.Items[0]["l_site"])
	})

	t.Run("total is independent of the requested page", func(t *testing.T) {
		page, err := st.Analytics().Query(ctx, domain.QueryLayersFragments, domain.AnalyticsFilter{}, 1, 2)
		require.NoError(t, err)
		require.Equal(t, 3, page.Total)
		require.Len(t, page.Items, 1)

		past, err := st.Analytics().Query(ctx, domain.QueryLayersFragments, domain.AnalyticsFilter{}, 10, 50)
		require.NoError(t, err)
		require.Equal(t, 3, past.Total)
		require.Empty(t, past.Items)
	})
}

func TestAnalyticsOrdering(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	entered := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// The older layer gets the newer fragment, so layer order and fragment
	// order disagree and the leading layerid sort key is observable.
	older, err := st.Layers().CreateLayer(ctx, domain.Layer{
		Site:            strptr("Провадия"),
		RecordEnteredOn: entered,
		RecordCreatedOn: entered,
	})
	require.NoError(t, err)

	newer, err := st.Layers().CreateLayer(ctx, domain.Layer{
		Site:            strptr("Варна"),
		RecordEnteredOn: entered,
		RecordCreatedOn: entered,
	})
	require.NoError(t, err)

	fNewer, err := st.Fragments().CreateFragment(ctx, domain.Fragment{
		LocationID:      &newer,
		PieceType:       "дъно",
		Count:           1,
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	fOlder, err := st.Fragments().CreateFragment(ctx, domain.Fragment{
		LocationID:      &older,
		PieceType:       "устие",
		Count:           1,
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	_, err = st.Ornaments().CreateOrnament(ctx, domain.Ornament{
		FragmentID:      &fNewer,
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	_, err = st.Ornaments().CreateOrnament(ctx, domain.Ornament{
		FragmentID:      &fOlder,
		RecordEnteredOn: entered,
	})
	require.NoError(t, err)

	t.Run("layer id leads on the layer and fragment join", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryLayersFragments, domain.AnalyticsFilter{}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 2, res.Total)
		require.EqualValues(t, "Варна", res.Items[0]["l_site"])
		require.EqualValues(t, "Провадия", res.Items[1]["l_site"])
	})

	t.Run("layer id leads on the ornament join", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryLayersFragmentsOrnaments, domain.AnalyticsFilter{}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 2, res.Total)
		require.EqualValues(t, "Варна", res.Items[0]["l_site"])
		require.EqualValues(t, "Провадия", res.Items[1]["l_site"])
	})
}

func TestAnalyticsLayersFragmentsOrnaments(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAnalytics(t, st)

	res, err := st.Analytics().Query(ctx, domain.QueryLayersFragmentsOrnaments, domain.AnalyticsFilter{}, 10, 0)
	require.NoError(t, err)

	// Only the one fragment with an ornament survives the inner joins.
	require.Equal(t, 1, res.Total)
	require.EqualValues(t, "устие", res.Items[0]["f_piecetype"])
	require.EqualValues(t, "В", res.Items[0]["o_primary_"])
}

func TestAnalyticsFinds(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAnalytics(t, st)

	t.Run("left joins keep finds without fragment or ornament", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryFinds, domain.AnalyticsFilter{}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 2, res.Total)

		// Newest find first; it has no fragment so those columns are null.
		require.EqualValues(t, "кремъчен нож", res.Items[0]["fi_findtype"])
		require.Nil(t, res.Items[0]["f_fragmentid"])

		require.EqualValues(t, "костено шило", res.Items[1]["fi_findtype"])
		require.NotNil(t, res.Items[1]["f_fragmentid"])
	})

	t.Run("free text searches the find columns", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryFinds,
			domain.AnalyticsFilter{FreeText: "нож"}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
	})

	t.Run("layer filters apply through the join", func(t *testing.T) {
		res, err := st.Analytics().Query(ctx, domain.QueryFinds,
			domain.AnalyticsFilter{Site: "арна"}, 10, 0)
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
		require.EqualValues(t, "кремъчен нож", res.Items[0]["fi_findtype"])
	})
}
