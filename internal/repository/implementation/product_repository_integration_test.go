//go:build integration

package implementation

import (
	"context"
	"testing"
	"time"

	"spi-eshop-be/internal/model"
	"spi-eshop-be/internal/repository/specification"
	"spi-eshop-be/internal/seed"
	"spi-eshop-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("spi_eshop_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewQuietGormDB(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))
	return db
}

func TestProductRepositoryIntegration(t *testing.T) {
	db := setupPostgres(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	products := seed.Products()
	require.NoError(t, repo.CreateMany(ctx, products))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(products)), total)

	civil, err := repo.FindAll(ctx,
		specification.ActiveProducts{},
		specification.ByDepartment{Department: "Civil Technology"},
		specification.OrderBy{Field: "rating", Desc: true},
	)
	require.NoError(t, err)
	require.NotEmpty(t, civil)
	for i, p := range civil {
		assert.Equal(t, "Civil Technology", p.Department)
		if i > 0 {
			assert.GreaterOrEqual(t, civil[i-1].Rating, p.Rating)
		}
	}

	found, err := repo.FindAll(ctx, specification.ProductTextSearch{Query: "100%_"})
	require.NoError(t, err)
	assert.Empty(t, found, "LIKE metacharacters must be literal")

	one, err := repo.FindOne(ctx, specification.BySku{Sku: "PROD-001"})
	require.NoError(t, err)
	require.NotNil(t, one)

	missing, err := repo.FindOne(ctx, specification.BySku{Sku: "PROD-999"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	dup := *one
	err = repo.Create(ctx, &dup)
	assert.Error(t, err, "sku is unique")
}
