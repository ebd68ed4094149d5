package services

import (
	"testing"

	"staybnb-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeDuplicateConflict(t *testing.T) {
	db := setupTestDB(t)
	liked := NewLikedService(db)
	places := NewPlaceService(db)
	userID := registerTestUser(t, db, "liker@example.com")

	place, err := places.Create(userID, samplePlace())
	require.NoError(t, err)

	_, err = liked.Like(userID, place.ID)
	require.NoError(t, err)

	_, err = liked.Like(userID, place.ID)
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.Liked{}).
		Where("user_id = ? AND place_id = ?", userID, place.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUnlikeNotFound(t *testing.T) {
	db := setupTestDB(t)
	liked := NewLikedService(db)
	userID := registerTestUser(t, db, "liker@example.com")

	err := liked.Unlike(userID, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlikeWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	liked := NewLikedService(db)
	places := NewPlaceService(db)
	users := NewUserService(db)

	a, err := users.Register("A", "a", "111", "a@example.com", "pw")
	require.NoError(t, err)
	b, err := users.Register("B", "b", "222", "b@example.com", "pw")
	require.NoError(t, err)

	place, err := places.Create(a.ID, samplePlace())
	require.NoError(t, err)

	_, err = liked.Like(a.ID, place.ID)
	require.NoError(t, err)

	err = liked.Unlike(b.ID, place.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// a's favorite survives
	favs, err := liked.ListByUser(a.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, place.ID, favs[0].Place.ID)

	require.NoError(t, liked.Unlike(a.ID, place.ID))
	favs, err = liked.ListByUser(a.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)
}
