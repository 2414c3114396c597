package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gkrp/dataportal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestRecordCRUD(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	admin := adminSession(t, baseURL)
	session := inviteAndActivate(t, baseURL, admin, "digger@site.example", "user", "digger", "Digger123!")

	var layerID int64

	t.Run("layer create and fetch", func(t *testing.T) {
		layer, err := session.CreateLayer(ctx, portalsdk.Layer{
			Site:      strptr("Провадия"),
			Sector:    strptr("Юг"),
			Square:    strptr("A5"),
			LayerType: strptr("контекст"),
			Color1:    strptr("кафяв"),
		})
		require.NoError(t, err)
		require.NotZero(t, layer.LayerID)
		require.False(t, layer.RecordEnteredOn.IsZero(), "entry timestamp is stamped server-side")
		layerID = layer.LayerID

		got, err := session.GetLayer(ctx, layerID)
		require.NoError(t, err)
		require.Equal(t, "Провадия", *got.Site)
	})

	t.Run("fragment belongs to the layer", func(t *testing.T) {
		fragment, err := session.CreateFragment(ctx, portalsdk.Fragment{
			LocationID: &layerID,
			PieceType:  "устие",
			Inventory:  strptr("ПИН 1042"),
		})
		require.NoError(t, err)
		require.EqualValues(t, 1, fragment.Count, "count defaults to one")

		ornament, err := session.CreateOrnament(ctx, portalsdk.Ornament{
			FragmentID: &fragment.FragmentID,
			Primary:    strptr("В"),
		})
		require.NoError(t, err)

		find, err := session.CreateFind(ctx, portalsdk.Find{
			LayerID:     layerID,
			FragmentID:  &fragment.FragmentID,
			OrnamentID:  &ornament.OrnamentID,
			FindType:    strptr("костено шило"),
			Description: strptr("фрагментирано"),
		})
		require.NoError(t, err)
		require.NotZero(t, find.FindID)
	})

	t.Run("update round trip", func(t *testing.T) {
		layer, err := session.GetLayer(ctx, layerID)
		require.NoError(t, err)

		layer.Sector = strptr("Север")
		updated, err := session.UpdateLayer(ctx, *layer)
		require.NoError(t, err)
		require.Equal(t, "Север", *updated.Sector)
	})

	t.Run("value set violations come back as 400", func(t *testing.T) {
		_, err := session.CreateLayer(ctx, portalsdk.Layer{LayerType: strptr("произволен")})

		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, portalsdk.ErrorCodeInvalidValue, apiErr.Code)
	})

	t.Run("missing records come back as 404", func(t *testing.T) {
		_, err := session.GetLayer(ctx, 999999)

		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("list and search", func(t *testing.T) {
		layers, err := session.ListLayers(ctx, "", 0)
		require.NoError(t, err)
		require.NotEmpty(t, layers)

		fragments, err := session.ListFragments(ctx, "1042", 0)
		require.NoError(t, err)
		require.Len(t, fragments, 1)

		// Search folds Cyrillic case on both sides.
		layers, err = session.ListLayers(ctx, "ПРОВАДИЯ", 0)
		require.NoError(t, err)
		require.Len(t, layers, 1)
		require.Equal(t, "Провадия", *layers[0].Site)
	})

	t.Run("delete", func(t *testing.T) {
		layer, err := session.CreateLayer(ctx, portalsdk.Layer{Site: strptr("временен")})
		require.NoError(t, err)

		require.NoError(t, session.DeleteLayer(ctx, layer.LayerID))

		_, err = session.GetLayer(ctx, layer.LayerID)
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("requests without a token are rejected", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/v1/layers")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "invalid_token")
	})
}
