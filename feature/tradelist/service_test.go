package tradelist

import (
	"sync"
	"testing"

	"trade-ledger/core/catalog"
	"trade-ledger/core/ledger"
	"trade-ledger/core/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	izzet, err := ledger.NewCard("Izzet Charm", []string{"RNA", "ARC"}, []string{"Instant"})
	require.NoError(t, err)
	boros, err := ledger.NewCard("Boros Charm", []string{"GTC", "RNA"}, []string{"Instant"})
	require.NoError(t, err)
	return catalog.New([]*ledger.Card{izzet, boros})
}

func setupService(t *testing.T) (*Service, *ledger.Store) {
	store := ledger.NewStore(4)
	return NewService(testCatalog(t), store, metrics.New(), zap.NewNop()), store
}

func line(qty int, name, printing string) Line {
	return Line{Quantity: qty, Name: name, Printing: printing}
}

func TestService_Scenarios(t *testing.T) {
	svc, store := setupService(t)

	// 1. add 3 Izzet Charm without printing
	res := svc.Add("U1", []Line{line(3, "Izzet Charm", "")})
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, "3 Izzet Charm", svc.View("U1").Content)

	// 2. add 2 Izzet Charm [RNA]
	svc.Add("U1", []Line{line(2, "Izzet Charm", "RNA")})
	assert.Equal(t, "3 Izzet Charm\n2 Izzet Charm [RNA]", svc.View("U1").Content)

	// 5. contains without printing matches the RNA entry too
	ok, err := svc.Contains("U1", "Izzet Charm", "")
	require.NoError(t, err)
	assert.True(t, ok)

	// 3. remove 5 without printing clamps the printing-agnostic entry only
	res = svc.Remove("U1", []Line{line(5, "Izzet Charm", "")})
	require.Len(t, res.Lines, 1)
	assert.Equal(t, StatusPartial, res.Lines[0].Status)
	assert.Equal(t, 3, res.Lines[0].Applied)
	assert.Equal(t, "2 Izzet Charm [RNA]", svc.View("U1").Content)

	ok, err = svc.Contains("U1", "Izzet Charm", "")
	require.NoError(t, err)
	assert.True(t, ok)

	// 4. view of an owner with no activity is an empty response
	resp := svc.View("U2")
	assert.True(t, resp.Empty)
	assert.Equal(t, ledger.EmptyBody, resp.Embed.Body)
	_, exists := store.Get("U2")
	assert.False(t, exists)
}

func TestService_AddSkipsAndFailsPerLine(t *testing.T) {
	svc, store := setupService(t)

	res := svc.Add("U1", []Line{
		line(1, "Izzet Charms", ""),
		line(2, "Izzet Charm", "M19"),
		line(-1, "Boros Charm", ""),
		line(0, "Boros Charm", ""),
		line(4, "Boros Charm", "gtc"),
	})

	require.Len(t, res.Lines, 5)
	assert.Equal(t, StatusSkipped, res.Lines[0].Status)
	assert.Equal(t, StatusFailed, res.Lines[1].Status)
	assert.Contains(t, res.Lines[1].Reason, "unknown printing")
	assert.Equal(t, StatusFailed, res.Lines[2].Status)
	assert.Equal(t, StatusSkipped, res.Lines[3].Status)
	assert.Equal(t, StatusApplied, res.Lines[4].Status)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 2, res.Failed)

	l, ok := store.Get("U1")
	require.True(t, ok)
	assert.Equal(t, "4 Boros Charm [GTC]", l.Render("U1").Text())
}

func TestService_AddOnlyUnknownCreatesNoLedger(t *testing.T) {
	svc, store := setupService(t)

	svc.Add("U1", []Line{line(1, "Nope", "")})
	_, ok := store.Get("U1")
	assert.False(t, ok)
}

func TestService_RemoveMissing(t *testing.T) {
	svc, _ := setupService(t)

	res := svc.Remove("U1", []Line{line(1, "Izzet Charm", "")})
	assert.Equal(t, StatusSkipped, res.Lines[0].Status)

	svc.Add("U1", []Line{line(1, "Izzet Charm", "RNA")})
	res = svc.Remove("U1", []Line{line(1, "Izzet Charm", "ARC"), line(1, "Izzet Charm", "RNA")})
	assert.Equal(t, StatusSkipped, res.Lines[0].Status)
	assert.Equal(t, StatusApplied, res.Lines[1].Status)
	assert.True(t, svc.View("U1").Empty)
}

func TestService_Visibility(t *testing.T) {
	svc, _ := setupService(t)
	svc.Add("U1", []Line{line(1, "Izzet Charm", "")})

	_, err := svc.ViewAs("U2", "U1")
	assert.ErrorIs(t, err, ErrPrivate)

	svc.SetVisibility("U1", true)
	svc.SetVisibility("U1", true)
	resp, err := svc.ViewAs("U2", "U1")
	require.NoError(t, err)
	assert.True(t, resp.Public)
	assert.Equal(t, ledger.BannerPublic, resp.Embed.Banner)
	assert.Equal(t, "1 Izzet Charm", resp.Content)

	svc.SetVisibility("U1", false)
	_, err = svc.ViewAs("U2", "U1")
	assert.ErrorIs(t, err, ErrPrivate)

	// The owner always sees their own tradelist.
	assert.Equal(t, "1 Izzet Charm", svc.View("U1").Content)
}

func TestService_Contains(t *testing.T) {
	svc, _ := setupService(t)

	ok, err := svc.Contains("U1", "Izzet Charm", "")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Contains("U1", "Nope", "")
	assert.ErrorIs(t, err, ErrUnknownCard)

	_, err = svc.Contains("U1", "Izzet Charm", "M19")
	assert.ErrorIs(t, err, ledger.ErrUnknownPrinting)

	svc.Add("U1", []Line{line(1, "Izzet Charm", "RNA")})
	ok, _ = svc.Contains("U1", "Izzet Charm", "ARC")
	assert.False(t, ok)
	ok, _ = svc.Contains("U1", "Izzet Charm", "RNA")
	assert.True(t, ok)
}

func TestService_ConcurrentAdds(t *testing.T) {
	svc, store := setupService(t)
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Add("U1", []Line{line(1, "Izzet Charm", "")})
			svc.View("U1")
		}()
	}
	wg.Wait()

	l, ok := store.Get("U1")
	require.True(t, ok)
	assert.Equal(t, n, l.Total("Izzet Charm"))
}
