package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/internal/models"
)

func memoryDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
}

func TestOpenAndMigrate(t *testing.T) {
	db, err := Open("sqlite", memoryDSN())
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Supplier{}))
	assert.True(t, db.Migrator().HasTable(&models.Product{}))
	assert.NoError(t, Ping(context.Background(), db))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDeletingSupplierCascadesToProducts(t *testing.T) {
	db, err := Open("sqlite", memoryDSN())
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, Migrate(db))

	supplier := models.Supplier{Name: "Ada", Company: "Acme", Email: "ada@acme.test", Phone: "555"}
	require.NoError(t, db.Create(&supplier).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Widget", SuppliedByID: supplier.ID}).Error)

	require.NoError(t, db.Delete(&models.Supplier{}, supplier.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductRequiresExistingSupplier(t *testing.T) {
	db, err := Open("sqlite", memoryDSN())
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, Migrate(db))

	err = db.Create(&models.Product{Name: "Orphan", SuppliedByID: 42}).Error
	assert.Error(t, err)
}
