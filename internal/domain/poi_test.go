package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testCatalog() []PointOfInterest {
	return []PointOfInterest{
		{ID: 1, Name: "Chùa Bà", NameEn: strPtr("Ba Pagoda"), Latitude: 11.3670, Longitude: 106.1680, Category: CategoryReligious},
		{ID: 2, Name: "Đỉnh Núi Bà Đen", NameEn: strPtr("Ba Den Mountain Peak"), Latitude: 11.3780, Longitude: 106.1710, Category: CategoryViewpoint},
		{ID: 3, Name: "Nhà ga cáp treo", NameEn: strPtr("Cable Car Station"), Latitude: 11.3570, Longitude: 106.1650, Category: CategoryCable},
		{ID: 4, Name: "Tượng Phật Bà", NameEn: strPtr("Lady Buddha Statue"), Latitude: 11.3775, Longitude: 106.1705, Category: CategoryReligious},
		{ID: 5, Name: "Bãi đỗ xe", Latitude: 11.3540, Longitude: 106.1630, Category: CategoryParking},
	}
}

func TestFilterByCategory(t *testing.T) {
	pois := testCatalog()

	t.Run("nil category returns all in order", func(t *testing.T) {
		out := FilterByCategory(pois, nil)
		require.Len(t, out, len(pois))
		for i := range pois {
			assert.Equal(t, pois[i].ID, out[i].ID)
		}
	})

	t.Run("matching category preserves catalog order", func(t *testing.T) {
		cat := CategoryReligious
		out := FilterByCategory(pois, &cat)
		require.Len(t, out, 2)
		assert.Equal(t, int64(1), out[0].ID)
		assert.Equal(t, int64(4), out[1].ID)
	})

	t.Run("unknown category yields empty list", func(t *testing.T) {
		cat := "submarine"
		out := FilterByCategory(pois, &cat)
		assert.Empty(t, out)
	})
}

func TestSearchByName(t *testing.T) {
	pois := testCatalog()

	t.Run("matches vietnamese name case-insensitively", func(t *testing.T) {
		out := SearchByName(pois, "núi")
		require.Len(t, out, 1)
		assert.Equal(t, "Đỉnh Núi Bà Đen", out[0].Name)
	})

	t.Run("matches english name", func(t *testing.T) {
		out := SearchByName(pois, "cable")
		require.Len(t, out, 1)
		assert.Equal(t, int64(3), out[0].ID)
	})

	t.Run("substring across both names without duplicates", func(t *testing.T) {
		out := SearchByName(pois, "bà")
		require.Len(t, out, 3)
		assert.Equal(t, int64(1), out[0].ID)
		assert.Equal(t, int64(2), out[1].ID)
		assert.Equal(t, int64(4), out[2].ID)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		assert.Nil(t, SearchByName(pois, ""))
		assert.Nil(t, SearchByName(pois, "   "))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchByName(pois, "xyzzy"))
	})

	t.Run("results capped at limit", func(t *testing.T) {
		many := make([]PointOfInterest, 0, SearchLimit+5)
		for i := 0; i < SearchLimit+5; i++ {
			many = append(many, PointOfInterest{
				ID:        int64(i + 1),
				Name:      "Trạm dừng chân",
				Latitude:  11.35,
				Longitude: 106.16,
			})
		}
		out := SearchByName(many, "trạm")
		require.Len(t, out, SearchLimit)
		// First seven in catalog order.
		for i, p := range out {
			assert.Equal(t, int64(i+1), p.ID)
		}
	})
}

func TestDecodePOIs(t *testing.T) {
	t.Run("valid collection", func(t *testing.T) {
		data := []byte(`[
			{"id": 1, "name": "Chùa Bà", "name_en": "Ba Pagoda", "latitude": 11.367, "longitude": 106.168, "category": "religious", "featured": true},
			{"id": 2, "name": "Bãi đỗ xe", "latitude": 11.354, "longitude": 106.163, "category": "parking"}
		]`)
		pois, err := DecodePOIs(data)
		require.NoError(t, err)
		require.Len(t, pois, 2)
		assert.Equal(t, "Chùa Bà", pois[0].Name)
		assert.True(t, pois[0].IsFeatured())
		assert.False(t, pois[1].IsFeatured())
	})

	t.Run("missing coordinates rejected", func(t *testing.T) {
		data := []byte(`[{"id": 1, "name": "Chùa Bà", "latitude": 11.367}]`)
		_, err := DecodePOIs(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing coordinates")
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := DecodePOIs([]byte(`{"not": "an array"}`))
		assert.Error(t, err)
	})
}

func TestValidateCatalog(t *testing.T) {
	t.Run("duplicate ids rejected", func(t *testing.T) {
		err := ValidateCatalog([]PointOfInterest{
			{ID: 1, Name: "a", Latitude: 11.3, Longitude: 106.1},
			{ID: 1, Name: "b", Latitude: 11.4, Longitude: 106.2},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate poi id")
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		err := ValidateCatalog([]PointOfInterest{
			{ID: 1, Name: "a", Latitude: 123.0, Longitude: 106.1},
		})
		assert.Error(t, err)
	})

	t.Run("valid catalog accepted", func(t *testing.T) {
		assert.NoError(t, ValidateCatalog(testCatalog()))
	})
}
