package categories

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pronunciationapp/backend/internal/database/crud"
	"github.com/pronunciationapp/backend/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_categories_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Level{}, &entities.Category{}, &entities.Word{}))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db), cleanup
}

func TestRepository_FindByCategoryName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Save(&entities.Category{ID: "c1", CategoryName: "Animals", SubCategoryName: "Pets"})
	require.NoError(t, err)

	category, err := repo.FindByCategoryName("Animals")
	require.NoError(t, err)
	assert.Equal(t, "c1", category.ID)

	_, err = repo.FindByCategoryName("Plants")
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestRepository_FindBySubCategoryName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Save(&entities.Category{ID: "c1", CategoryName: "Animals", SubCategoryName: "Pets"})
	require.NoError(t, err)

	category, err := repo.FindBySubCategoryName("Pets")
	require.NoError(t, err)
	assert.Equal(t, "Animals", category.CategoryName)

	_, err = repo.FindBySubCategoryName("Farm")
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestRepository_FindByNames(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Save(&entities.Category{ID: "c1", CategoryName: "Animals", SubCategoryName: "Pets"})
	require.NoError(t, err)
	_, err = repo.Save(&entities.Category{ID: "c2", CategoryName: "Animals", SubCategoryName: "Farm"})
	require.NoError(t, err)

	category, err := repo.FindByNames("Animals", "Farm")
	require.NoError(t, err)
	assert.Equal(t, "c2", category.ID)

	_, err = repo.FindByNames("Animals", "Wild")
	assert.ErrorIs(t, err, crud.ErrNotFound)
}
