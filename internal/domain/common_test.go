package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialViewport(t *testing.T) {
	t.Run("first poi at default zoom", func(t *testing.T) {
		pois := testCatalog()
		vp := InitialViewport(pois)
		assert.Equal(t, pois[0].Position(), vp.Center)
		assert.Equal(t, DefaultZoom, vp.Zoom)
	})

	t.Run("fallback center for empty catalog", func(t *testing.T) {
		vp := InitialViewport(nil)
		assert.Equal(t, FallbackCenter, vp.Center)
		assert.Equal(t, 11.3127, vp.Center.Latitude)
		assert.Equal(t, 106.1303, vp.Center.Longitude)
		assert.Equal(t, DefaultZoom, vp.Zoom)
	})
}

func TestCategoryByKey(t *testing.T) {
	desc, ok := CategoryByKey(CategoryReligious)
	assert.True(t, ok)
	assert.Equal(t, CategoryReligious, desc.Key)

	_, ok = CategoryByKey("submarine")
	assert.False(t, ok)
	assert.False(t, KnownCategory("submarine"))
}
