package portal_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gkrp/dataportal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// seedExcavation creates two layers with fragments, an ornament, and finds
// through the public API so the analytics queries have real rows to join.
func seedExcavation(t *testing.T, ctx context.Context, session *portalsdk.Session) {
	t.Helper()

	provadia, err := session.CreateLayer(ctx, portalsdk.Layer{
		Site:   strptr("Провадия"),
		Sector: strptr("Юг"),
		Square: strptr("A5"),
	})
	require.NoError(t, err)

	varna, err := session.CreateLayer(ctx, portalsdk.Layer{
		Site:   strptr("Варна"),
		Sector: strptr("Север"),
	})
	require.NoError(t, err)

	rim, err := session.CreateFragment(ctx, portalsdk.Fragment{
		LocationID: &provadia.LayerID,
		PieceType:  "устие",
		Note:       strptr("вторично опален"),
	})
	require.NoError(t, err)

	_, err = session.CreateFragment(ctx, portalsdk.Fragment{
		LocationID: &varna.LayerID,
		PieceType:  "стена",
		Inventory:  strptr("ПИН 77"),
	})
	require.NoError(t, err)

	_, err = session.CreateOrnament(ctx, portalsdk.Ornament{
		FragmentID: &rim.FragmentID,
		Primary:    strptr("В"),
	})
	require.NoError(t, err)

	_, err = session.CreateFind(ctx, portalsdk.Find{
		LayerID:    provadia.LayerID,
		FragmentID: &rim.FragmentID,
		FindType:   strptr("костено шило"),
	})
	require.NoError(t, err)

	_, err = session.CreateFind(ctx, portalsdk.Find{
		LayerID:  varna.LayerID,
		FindType: strptr("кремъчен нож"),
	})
	require.NoError(t, err)
}

func TestAnalyticsQueries(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	admin := adminSession(t, baseURL)
	session := inviteAndActivate(t, baseURL, admin, "analyst@site.example", "user", "analyst", "Analyst123!")

	seedExcavation(t, ctx, session)

	t.Run("layer and fragment join", func(t *testing.T) {
		resp, err := session.GetAnalyticsData(ctx, "q1", portalsdk.AnalyticsParams{})
		require.NoError(t, err)
		require.EqualValues(t, 2, resp.Total)
		require.Contains(t, resp.Columns, "l_site")
		require.Contains(t, resp.Columns, "f_piecetype")
	})

	t.Run("site filter narrows the join", func(t *testing.T) {
		resp, err := session.GetAnalyticsData(ctx, "q1", portalsdk.AnalyticsParams{Site: "ровади"})
		require.NoError(t, err)
		require.EqualValues(t, 1, resp.Total)
		require.Equal(t, "Провадия", resp.Items[0]["l_site"])
	})

	t.Run("site filter ignores Cyrillic case", func(t *testing.T) {
		resp, err := session.GetAnalyticsData(ctx, "q1", portalsdk.AnalyticsParams{Site: "ПРОВАДИЯ"})
		require.NoError(t, err)
		require.EqualValues(t, 1, resp.Total)
		require.Equal(t, "Провадия", resp.Items[0]["l_site"])
	})

	t.Run("free text reaches fragment notes", func(t *testing.T) {
		resp, err := session.GetAnalyticsData(ctx, "q1", portalsdk.AnalyticsParams{FreeText: "опален"})
		require.NoError(t, err)
		require.EqualValues(t, 1, resp.Total)
	})

	t.Run("ornament join only keeps decorated fragments", func(t *testing.T) {
		resp, err := session.GetAnalyticsData(ctx, "q2", portalsdk.AnalyticsParams{})
		require.NoError(t, err)
		require.EqualValues(t, 1, resp.Total)
		require.Equal(t, "В", resp.Items[0]["o_primary_"])
	})

	t.Run("finds survive without a fragment", func(t *testing.T) {
		resp, err := session.GetAnalyticsData(ctx, "finds", portalsdk.AnalyticsParams{})
		require.NoError(t, err)
		require.EqualValues(t, 2, resp.Total)
	})

	t.Run("unknown query id", func(t *testing.T) {
		_, err := session.GetAnalyticsData(ctx, "q9", portalsdk.AnalyticsParams{})

		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, portalsdk.ErrorCodeInvalidRequest, apiErr.Code)
	})

	t.Run("report bundles rows and chart", func(t *testing.T) {
		report, err := session.GetReport(ctx, "q1", portalsdk.AnalyticsParams{GroupBy: "f_piecetype"})
		require.NoError(t, err)
		require.EqualValues(t, 2, report.Total)
		require.Len(t, report.Items, 2)
		require.Len(t, report.ChartCounts, 2)
		require.NotContains(t, report.Columns, "l_description")
		require.NotContains(t, report.Columns, "f_fragmentid")
		require.Contains(t, report.Columns, "l_parentid")
	})

	t.Run("chart figure is plotly shaped", func(t *testing.T) {
		figure, err := session.GetChart(ctx, "finds", portalsdk.AnalyticsParams{GroupBy: "fi_findtype"})
		require.NoError(t, err)
		require.Len(t, figure.Data, 1)
		require.Equal(t, "bar", figure.Data[0].Type)
		require.Len(t, figure.Data[0].X, 2)
	})

	t.Run("csv export", func(t *testing.T) {
		raw, err := session.DownloadCSV(ctx, "q1", portalsdk.AnalyticsParams{})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Len(t, lines, 3, "header plus two data rows")
		require.Contains(t, lines[0], "l_site")
	})

	t.Run("date window", func(t *testing.T) {
		tomorrow := time.Now().UTC().Add(24 * time.Hour)
		resp, err := session.GetAnalyticsData(ctx, "q1", portalsdk.AnalyticsParams{DateFrom: &tomorrow})
		require.NoError(t, err)
		require.EqualValues(t, 0, resp.Total)
		require.Empty(t, resp.Items)
	})
}
