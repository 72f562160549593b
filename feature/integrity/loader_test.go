package integrity

import (
	"testing"

	"monument-catalog/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), testStorage, zap.NewNop(), nil, testMedia)

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	assert.False(t, NewFeature(nil, testStorage, nil, nil, testMedia).IsEnabled())
}
