package service

import (
	"context"
	"testing"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestLayerCRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	entered := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	svc := &RecordService{Store: st, Now: func() time.Time { return entered }}

	t.Run("create stamps the entry timestamp server-side", func(t *testing.T) {
		l, err := svc.CreateLayer(ctx, domain.Layer{
			Site:      strptr("Провадия"),
			Sector:    strptr("Юг"),
			Square:    strptr("A5"),
			LayerType: strptr("контекст"),
			Color1:    strptr("кафяв"),
		})
		require.NoError(t, err)
		require.NotZero(t, l.LayerID)
		require.Equal(t, entered, l.RecordEnteredOn.UTC())
	})

	t.Run("rejects a value outside the layer type set", func(t *testing.T) {
		_, err := svc.CreateLayer(ctx, domain.Layer{LayerType: strptr("произволен")})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "layertype", verr.Field)
	})

	t.Run("update and delete round trip", func(t *testing.T) {
		l, err := svc.CreateLayer(ctx, domain.Layer{Site: strptr("Провадия")})
		require.NoError(t, err)

		l.Sector = strptr("Север")
		updated, err := svc.UpdateLayer(ctx, l)
		require.NoError(t, err)
		require.Equal(t, "Север", *updated.Sector)

		require.NoError(t, svc.DeleteLayer(ctx, l.LayerID))
		_, err = svc.GetLayer(ctx, l.LayerID)
		require.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("missing ids map to not found", func(t *testing.T) {
		_, err := svc.GetLayer(ctx, 424242)
		require.ErrorIs(t, err, ErrRecordNotFound)

		require.ErrorIs(t, svc.DeleteLayer(ctx, 424242), ErrRecordNotFound)

		_, err = svc.UpdateLayer(ctx, domain.Layer{LayerID: 424242})
		require.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestFragmentCRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RecordService{Store: st}

	layer, err := svc.CreateLayer(ctx, domain.Layer{Site: strptr("Провадия")})
	require.NoError(t, err)

	t.Run("count defaults to one", func(t *testing.T) {
		f, err := svc.CreateFragment(ctx, domain.Fragment{
			LocationID: &layer.LayerID,
			PieceType:  "стена",
		})
		require.NoError(t, err)
		require.EqualValues(t, 1, f.Count)
	})

	t.Run("rejects an unknown piece type", func(t *testing.T) {
		_, err := svc.CreateFragment(ctx, domain.Fragment{PieceType: "парче"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "piecetype", verr.Field)
	})

	t.Run("update preserves the original entry timestamp", func(t *testing.T) {
		created := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
		svc := &RecordService{Store: st, Now: func() time.Time { return created }}

		f, err := svc.CreateFragment(ctx, domain.Fragment{
			LocationID: &layer.LayerID,
			PieceType:  "устие",
			Count:      3,
		})
		require.NoError(t, err)

		svc.Now = func() time.Time { return created.Add(48 * time.Hour) }

		f.Note = strptr("вторично опален")
		updated, err := svc.UpdateFragment(ctx, f)
		require.NoError(t, err)
		require.Equal(t, created, updated.RecordEnteredOn.UTC())
		require.Equal(t, "вторично опален", *updated.Note)
	})

	t.Run("deleting the owning layer leaves the fragment orphaned", func(t *testing.T) {
		l, err := svc.CreateLayer(ctx, domain.Layer{Site: strptr("Провадия")})
		require.NoError(t, err)
		f, err := svc.CreateFragment(ctx, domain.Fragment{
			LocationID: &l.LayerID,
			PieceType:  "дъно",
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteLayer(ctx, l.LayerID))

		orphan, err := svc.GetFragment(ctx, f.FragmentID)
		require.NoError(t, err)
		require.Nil(t, orphan.LocationID)
	})
}

func TestOrnamentValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RecordService{Store: st}

	t.Run("accepts members of the ornament sets", func(t *testing.T) {
		o, err := svc.CreateOrnament(ctx, domain.Ornament{
			Primary:   strptr("В"),
			Secondary: strptr("IV"),
			Color1:    strptr("черен"),
		})
		require.NoError(t, err)
		require.NotZero(t, o.OrnamentID)
	})

	t.Run("rejects values outside the sets", func(t *testing.T) {
		_, err := svc.CreateOrnament(ctx, domain.Ornament{Secondary: strptr("XXI")})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "secondary", verr.Field)
	})
}

func TestFindCRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RecordService{Store: st}

	layer, err := svc.CreateLayer(ctx, domain.Layer{Site: strptr("Провадия")})
	require.NoError(t, err)

	f, err := svc.CreateFind(ctx, domain.Find{
		LayerID:     layer.LayerID,
		FindType:    strptr("костено шило"),
		Description: strptr("фрагментирано"),
	})
	require.NoError(t, err)
	require.NotZero(t, f.FindID)

	f.Inventory = strptr("ПИН 1042")
	updated, err := svc.UpdateFind(ctx, f)
	require.NoError(t, err)
	require.Equal(t, "ПИН 1042", *updated.Inventory)

	list, err := svc.ListFinds(ctx, "шило", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteFind(ctx, f.FindID))
	_, err = svc.GetFind(ctx, f.FindID)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClampLimit(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultListLimit, clampLimit(0))
	require.Equal(t, DefaultListLimit, clampLimit(-5))
	require.Equal(t, DefaultListLimit, clampLimit(DefaultListLimit+1))
	require.Equal(t, 25, clampLimit(25))
}
