package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlace() PlaceFields {
	return PlaceFields{
		Title:       "Cozy flat",
		Address:     "1 Main St",
		AddedPhotos: []string{"a.jpg", "b.jpg"},
		Description: "Nice views",
		Perks:       []string{"wifi", "parking"},
		CheckIn:     "14:00",
		CheckOut:    "11:00",
		MaxGuests:   4,
		Price:       120,
	}
}

func TestPlaceCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	places := NewPlaceService(db)
	ownerID := registerTestUser(t, db, "owner@example.com")

	place, err := places.Create(ownerID, samplePlace())
	require.NoError(t, err)
	assert.Equal(t, ownerID, place.OwnerID)

	found, err := places.GetByID(place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cozy flat", found.Title)
	// owner reference resolved to the full record
	assert.Equal(t, "owner@example.com", found.Owner.Email)
}

func TestPlaceCreateRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	places := NewPlaceService(db)
	ownerID := registerTestUser(t, db, "owner@example.com")

	fields := samplePlace()
	fields.Title = "  "
	_, err := places.Create(ownerID, fields)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOwnershipGuardsMutation(t *testing.T) {
	db := setupTestDB(t)
	places := NewPlaceService(db)
	users := NewUserService(db)

	owner, err := users.Register("Owner", "owner", "111", "owner@example.com", "pw")
	require.NoError(t, err)
	intruder, err := users.Register("Intruder", "intruder", "222", "intruder@example.com", "pw")
	require.NoError(t, err)

	place, err := places.Create(owner.ID, samplePlace())
	require.NoError(t, err)

	changed := samplePlace()
	changed.Title = "Hijacked"

	_, err = places.Update(place.ID, intruder.ID, changed)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = places.Delete(place.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// record unchanged
	found, err := places.GetByID(place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cozy flat", found.Title)

	// the owner can still mutate
	updated, err := places.Update(place.ID, owner.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, "Hijacked", updated.Title)

	require.NoError(t, places.Delete(place.ID, owner.ID))
	_, err = places.GetByID(place.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceListings(t *testing.T) {
	db := setupTestDB(t)
	places := NewPlaceService(db)
	users := NewUserService(db)

	a, err := users.Register("A", "a", "111", "a@example.com", "pw")
	require.NoError(t, err)
	b, err := users.Register("B", "b", "222", "b@example.com", "pw")
	require.NoError(t, err)

	_, err = places.Create(a.ID, samplePlace())
	require.NoError(t, err)
	_, err = places.Create(b.ID, samplePlace())
	require.NoError(t, err)

	own, err := places.ListByOwner(a.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := places.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		assert.NotZero(t, p.Owner.ID, "catalog entries carry the populated owner")
	}
}
