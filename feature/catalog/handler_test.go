package catalog

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"trade-ledger/core/catalog"
	"trade-ledger/core/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	cards []*ledger.Card
	err   error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) Load(context.Context) ([]*ledger.Card, error) { return s.cards, s.err }

func setupTestApp(t *testing.T, src catalog.Source) *fiber.App {
	izzet, err := ledger.NewCard("Izzet Charm", []string{"RNA", "ARC"}, []string{"Instant"})
	require.NoError(t, err)

	l := catalog.NewLoader(src, catalog.New([]*ledger.Card{izzet}), zap.NewNop())
	app := fiber.New()
	NewHandler(NewService(l, zap.NewNop())).RegisterRoutes(app)
	return app
}

func TestHandleLookup(t *testing.T) {
	app := setupTestApp(t, stubSource{})

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/izzet%20charm", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var card CardView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	assert.Equal(t, "Izzet Charm", card.Name)
	assert.Equal(t, []string{"ARC", "RNA"}, card.Printings)

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/Izzet%20Charms", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleReload(t *testing.T) {
	boros, _ := ledger.NewCard("Boros Charm", []string{"RNA"}, []string{"Instant"})

	t.Run("Success", func(t *testing.T) {
		app := setupTestApp(t, stubSource{cards: []*ledger.Card{boros}})

		resp, err := app.Test(httptest.NewRequest("POST", "/catalog/reload", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]int
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body["cards"])

		resp, err = app.Test(httptest.NewRequest("GET", "/catalog/Boros%20Charm", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Failure", func(t *testing.T) {
		app := setupTestApp(t, stubSource{err: assert.AnError})

		resp, err := app.Test(httptest.NewRequest("POST", "/catalog/reload", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/catalog", nil))
		require.NoError(t, err)
		var body map[string]int
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body["cards"])
	})
}

func TestLoader(t *testing.T) {
	l := catalog.NewLoader(stubSource{}, catalog.New(nil), zap.NewNop())
	feature := NewFeature(l, zap.NewNop())

	assert.Equal(t, "catalog", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
