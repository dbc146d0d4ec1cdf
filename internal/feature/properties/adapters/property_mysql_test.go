package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realty_backend/internal/domain/entity"
	"realty_backend/internal/feature/properties/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &entity.Property{}, &entity.Listing{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// createOwner inserts a user row to satisfy the ownership reference.
func createOwner(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	owner := &entity.User{Email: email, Name: "Jane Doe"}
	require.NoError(t, db.Create(owner).Error, "failed to create owner")
	return owner
}

func TestNewPropertyMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewPropertyMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestPropertyMySQL_Create(t *testing.T) {
	t.Run("successful property creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)
		owner := createOwner(t, db, "owner@example.com")

		zip := "1234"
		lat := 14.5995
		property := &entity.Property{
			OwnerID:  owner.ID,
			Address:  "123 Main Street",
			City:     "Metro City",
			Province: "Metro",
			ZipCode:  &zip,
			Latitude: &lat,
		}

		err := repo.Create(context.Background(), property)

		assert.NoError(t, err, "failed to create property")
		assert.NotZero(t, property.ID, "ID is not set")
		assert.False(t, property.CreatedAt.IsZero(), "CreatedAt is not set")
	})
}

func TestPropertyMySQL_FindByID(t *testing.T) {
	t.Run("find property by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)
		owner := createOwner(t, db, "owner@example.com")

		expected := &entity.Property{OwnerID: owner.ID, Address: "123 Main Street", City: "Metro City", Province: "Metro"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err, "failed to find property")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Nil(t, found.Owner, "owner must not be preloaded on the bare lookup")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "property should be nil")
		assert.ErrorIs(t, err, usecase.ErrPropertyNotFound, "should return ErrPropertyNotFound")
	})
}

func TestPropertyMySQL_FindByIDDetail(t *testing.T) {
	t.Run("owner and listings are preloaded", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)
		owner := createOwner(t, db, "owner@example.com")

		property := &entity.Property{OwnerID: owner.ID, Address: "123 Main Street", City: "Metro City", Province: "Metro"}
		require.NoError(t, repo.Create(context.Background(), property))
		require.NoError(t, db.Create(&entity.Listing{
			PropertyID: property.ID, Price: 2500000, Status: "active",
		}).Error)

		found, err := repo.FindByIDDetail(context.Background(), property.ID)

		require.NoError(t, err, "failed to find property")
		require.NotNil(t, found.Owner, "owner is not preloaded")
		assert.Equal(t, owner.ID, found.Owner.ID, "owner ID does not match")
		require.Len(t, found.Listings, 1, "listings are not preloaded")
		assert.Equal(t, "active", found.Listings[0].Status)
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)

		_, err := repo.FindByIDDetail(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrPropertyNotFound)
	})
}

func TestPropertyMySQL_FindAll(t *testing.T) {
	t.Run("all properties with owner and listings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)
		owner := createOwner(t, db, "owner@example.com")

		p1 := &entity.Property{OwnerID: owner.ID, Address: "123 Main Street", City: "Metro City", Province: "Metro"}
		p2 := &entity.Property{OwnerID: owner.ID, Address: "456 Side Street", City: "Metro City", Province: "Metro"}
		require.NoError(t, repo.Create(context.Background(), p1))
		require.NoError(t, repo.Create(context.Background(), p2))

		properties, err := repo.FindAll(context.Background())

		require.NoError(t, err, "failed to list properties")
		require.Len(t, properties, 2)
		require.NotNil(t, properties[0].Owner, "owner is not preloaded")
		assert.Equal(t, "owner@example.com", properties[0].Owner.Email)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)

		properties, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, properties)
	})
}

func TestPropertyMySQL_Update(t *testing.T) {
	t.Run("only supplied columns change, owner comes back preloaded", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)
		owner := createOwner(t, db, "owner@example.com")

		zip := "1234"
		property := &entity.Property{
			OwnerID: owner.ID, Address: "123 Main Street", City: "Old Town", Province: "Metro", ZipCode: &zip,
		}
		require.NoError(t, repo.Create(context.Background(), property))

		updated, err := repo.Update(context.Background(), property.ID, map[string]any{"city": "New Town"})

		require.NoError(t, err, "failed to update property")
		assert.Equal(t, "New Town", updated.City, "city was not updated")
		assert.Equal(t, "123 Main Street", updated.Address, "address must be untouched")
		require.NotNil(t, updated.ZipCode, "zip code must be untouched")
		assert.Equal(t, "1234", *updated.ZipCode)
		require.NotNil(t, updated.Owner, "owner is not preloaded after update")
		assert.Equal(t, owner.ID, updated.Owner.ID)
	})

	t.Run("ownership transfer", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)
		first := createOwner(t, db, "first@example.com")
		second := createOwner(t, db, "second@example.com")

		property := &entity.Property{OwnerID: first.ID, Address: "123 Main Street", City: "Metro City", Province: "Metro"}
		require.NoError(t, repo.Create(context.Background(), property))

		updated, err := repo.Update(context.Background(), property.ID, map[string]any{"owner_id": second.ID})

		require.NoError(t, err, "failed to transfer ownership")
		assert.Equal(t, second.ID, updated.OwnerID)
		require.NotNil(t, updated.Owner)
		assert.Equal(t, "second@example.com", updated.Owner.Email)
	})
}

func TestPropertyMySQL_Delete(t *testing.T) {
	t.Run("deleted property is gone", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)
		owner := createOwner(t, db, "owner@example.com")

		property := &entity.Property{OwnerID: owner.ID, Address: "123 Main Street", City: "Metro City", Province: "Metro"}
		require.NoError(t, repo.Create(context.Background(), property))

		err := repo.Delete(context.Background(), property.ID)
		require.NoError(t, err, "failed to delete property")

		_, err = repo.FindByID(context.Background(), property.ID)
		assert.ErrorIs(t, err, usecase.ErrPropertyNotFound, "property must be gone after delete")
	})

	t.Run("missing property yields not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPropertyMySQL(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrPropertyNotFound)
	})
}

func TestOwnerMySQL_FindByID(t *testing.T) {
	t.Run("existing owner is returned", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnerMySQL(db)
		owner := createOwner(t, db, "owner@example.com")

		found, err := repo.FindByID(context.Background(), owner.ID)

		require.NoError(t, err, "failed to find owner")
		assert.Equal(t, owner.ID, found.ID)
		assert.Equal(t, "owner@example.com", found.Email)
	})

	t.Run("missing owner yields ErrOwnerNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnerMySQL(db)

		found, err := repo.FindByID(context.Background(), 999999)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrOwnerNotFound)
	})
}
