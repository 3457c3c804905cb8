package blob_test

import (
	"testing"

	"blob-store/core/storage"
	"blob-store/feature/blob"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	svc := blob.NewService(storage.NewMemoryClient(), zap.NewNop())
	feature := blob.NewFeature(svc)

	assert.Equal(t, "objects", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
