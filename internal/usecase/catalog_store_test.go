package usecase

import (
	"testing"

	"exocatalog-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []*entity.PlanetRecord {
	return []*entity.PlanetRecord{
		{
			Name: "TRAPPIST-1 e", System: "TRAPPIST-1", Type: "Terrestrial",
			Radius: entity.Float(0.92), Distance: entity.Float(40.7),
			EqTemp: entity.Float(250), Habitability: 0.82,
			StarType: "M8V", DiscoveryMethod: "Transit",
			Discovered: entity.Int(2017),
			ESI:        &entity.ESIResult{Global: 0.85},
			HZStatus:   &entity.HZStatus{Label: entity.HZConservative},
		},
		{
			Name: "TRAPPIST-1 b", System: "TRAPPIST-1", Type: "Terrestrial",
			Radius: entity.Float(1.12), Distance: entity.Float(40.7),
			EqTemp: entity.Float(400), Habitability: 0.21,
			StarType: "M8V", DiscoveryMethod: "Transit",
			Discovered: entity.Int(2016),
			HZStatus:   &entity.HZStatus{Label: entity.HZTooHot},
		},
		{
			Name: "Kepler-452 b", System: "Kepler-452", Type: "Super-Earth",
			Radius: entity.Float(1.63), Distance: entity.Float(1830),
			EqTemp: entity.Float(265), Habitability: 0.75,
			StarType: "G2V", DiscoveryMethod: "Transit",
			Discovered: entity.Int(2015),
			ESI:        &entity.ESIResult{Global: 0.83},
			HZStatus:   &entity.HZStatus{Label: entity.HZOptimistic},
		},
		{
			Name: "51 Peg b", System: "51 Peg", Type: "Hot Jupiter",
			Radius: entity.Float(13.0), Distance: nil,
			EqTemp: entity.Float(1260), Habitability: 0.02,
			StarType: "G5V", DiscoveryMethod: "Radial Velocity",
			Discovered: entity.Int(1995),
			HZStatus:   &entity.HZStatus{Label: entity.HZTooHot},
		},
	}
}

func TestSearchQueryAndFilterCompose(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	results := store.Search("trappist", entity.SearchFilters{
		MinHabitability: entity.Float(0.5),
	})

	require.Len(t, results, 1)
	assert.Equal(t, "TRAPPIST-1 e", results[0].Name)
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	assert.Len(t, store.Search("hot jupiter", entity.SearchFilters{}), 1)
	assert.Len(t, store.Search("radial", entity.SearchFilters{}), 1)
	assert.Len(t, store.Search("kepler", entity.SearchFilters{}), 1)
	assert.Empty(t, store.Search("no such planet", entity.SearchFilters{}))
}

func TestSearchHZMembershipFilter(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	conservative := store.Search("", entity.SearchFilters{HZMembership: "conservative"})
	require.Len(t, conservative, 1)
	assert.Equal(t, "TRAPPIST-1 e", conservative[0].Name)

	// optimistic membership includes the conservative band
	optimistic := store.Search("", entity.SearchFilters{HZMembership: "optimistic"})
	assert.Len(t, optimistic, 2)
}

func TestSearchRangeFilters(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	near := store.Search("", entity.SearchFilters{MaxDistance: entity.Float(100)})
	// 51 Peg b has no distance and cannot satisfy a distance bound
	assert.Len(t, near, 2)

	gStars := store.Search("", entity.SearchFilters{StarTypePrefix: "g"})
	assert.Len(t, gStars, 2)

	recent := store.Search("", entity.SearchFilters{MinYear: entity.Int(2016)})
	assert.Len(t, recent, 2)
}

func TestSortMissingKeysCollateLast(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	asc := store.Search("", entity.SearchFilters{SortBy: "distance"})
	require.Len(t, asc, 4)
	assert.Equal(t, "51 Peg b", asc[3].Name)
	assert.Equal(t, "Kepler-452 b", asc[2].Name)

	desc := store.Search("", entity.SearchFilters{SortBy: "distance", SortDesc: true})
	require.Len(t, desc, 4)
	assert.Equal(t, "Kepler-452 b", desc[0].Name)
	assert.Equal(t, "51 Peg b", desc[3].Name)
}

func TestSortByHabitabilityDesc(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	results := store.Search("", entity.SearchFilters{SortBy: "habitability", SortDesc: true})
	require.Len(t, results, 4)
	assert.Equal(t, "TRAPPIST-1 e", results[0].Name)
	assert.Equal(t, "51 Peg b", results[3].Name)
}

func TestDefaultSortIsByName(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	results := store.Search("", entity.SearchFilters{})
	require.Len(t, results, 4)
	assert.Equal(t, "51 Peg b", results[0].Name)
	assert.Equal(t, "TRAPPIST-1 e", results[3].Name)
}

func TestGetByNameAndSystem(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	assert.NotNil(t, store.GetByName("Kepler-452 b"))
	assert.Nil(t, store.GetByName("Kepler-452 c"))

	siblings := store.GetSystemPlanets("trappist-1")
	assert.Len(t, siblings, 2)
}

func TestGetStats(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceLive)

	stats := store.GetStats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByType["Terrestrial"])
	assert.Equal(t, 2, stats.ByStarClass["M"])
	assert.Equal(t, 2, stats.ByStarClass["G"])
	assert.Equal(t, 3, stats.ByDiscoveryMethod["Transit"])
	assert.Equal(t, 2, stats.HighlyHabitable)
	assert.Equal(t, 2, stats.HighESI)
	assert.Equal(t, 2, stats.InOptimisticHZ)
	require.NotNil(t, stats.Nearest)
	assert.Equal(t, "TRAPPIST-1 e", stats.Nearest.Name)
	require.NotNil(t, stats.MostHabitable)
	assert.Equal(t, "TRAPPIST-1 e", stats.MostHabitable.Name)
	assert.InDelta(t, 0.45, stats.AverageHabitability, 0.001)
}

func TestSubscribeReplaysCurrentSnapshot(t *testing.T) {
	store := NewCatalogStore()
	store.Replace(catalogFixture(), entity.SourceCacheFresh)

	ch := store.Subscribe()
	select {
	case update := <-ch:
		assert.Len(t, update.Records, 4)
		assert.Equal(t, entity.SourceCacheFresh, update.Source)
	default:
		t.Fatal("late subscriber did not receive the current snapshot")
	}
}

func TestReplaceNotifiesSubscribers(t *testing.T) {
	store := NewCatalogStore()
	ch := store.Subscribe()

	select {
	case <-ch:
		t.Fatal("unexpected update before the catalog is populated")
	default:
	}

	store.Replace(catalogFixture(), entity.SourceLive)
	select {
	case update := <-ch:
		assert.Equal(t, entity.SourceLive, update.Source)
	default:
		t.Fatal("subscriber not notified on replace")
	}
}
