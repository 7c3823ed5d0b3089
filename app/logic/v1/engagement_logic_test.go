package v1_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

func TestToggleLikeAlternates(t *testing.T) {
	c := NewCore()
	cfg := mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)
	token := *cfg.ShareToken

	logic := v1.NewEngagementLogic(ctxWithUser("user-2", ""), c)

	liked, err := logic.ToggleLike(token)
	assert.NoError(t, err)
	assert.True(t, liked)

	liked, err = logic.ToggleLike(token)
	assert.NoError(t, err)
	assert.False(t, liked)

	liked, err = logic.ToggleLike(token)
	assert.NoError(t, err)
	assert.True(t, liked)

	count, err := c.Store().TripLikeStore().Count(ctxWithUser("user-2", ""), "trip-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	c := NewCore()
	cfg := mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)

	anon := v1.NewEngagementLogic(ctxWithUser("", ""), c)
	_, err := anon.ToggleLike(*cfg.ShareToken)
	assert.True(t, errors.IsUnauthorized(err))
}

func TestToggleLikeBadToken(t *testing.T) {
	c := NewCore()
	mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)

	logic := v1.NewEngagementLogic(ctxWithUser("user-2", ""), c)
	_, err := logic.ToggleLike("no-such-token")
	assert.True(t, errors.IsNotFound(err))
}

func TestAddCommentGating(t *testing.T) {
	c := NewCore()
	cfg := mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)
	token := *cfg.ShareToken

	// comments disabled: the public class is rejected
	visitor := v1.NewEngagementLogic(ctxWithUser("user-2", ""), c)
	_, err := visitor.AddComment(token, "lovely itinerary")
	assert.True(t, errors.IsForbidden(err))

	// the owner comments regardless of the flag
	owner := v1.NewEngagementLogic(ctxWithUser("owner-1", ""), c)
	id, err := owner.AddComment(token, "thanks for visiting")
	assert.NoError(t, err)
	assert.NotZero(t, id)

	// a direct share at comment level carries its own grant
	sharer := v1.NewSharingLogic(ctxWithUser("owner-1", ""), c)
	_, err = sharer.ShareWithUser("trip-1", v1.ShareWithUserRequest{
		Email:      "ana@example.com",
		Permission: types.SharePermissionComment,
	})
	assert.NoError(t, err)
	claimer := v1.NewSharingLogic(ctxWithUser("user-ana", "ana@example.com"), c)
	_, err = claimer.ClaimShares()
	assert.NoError(t, err)

	ana := v1.NewEngagementLogic(ctxWithUser("user-ana", "ana@example.com"), c)
	id, err = ana.AddComment(token, "adding this to my list")
	assert.NoError(t, err)
	assert.NotZero(t, id)

	// flipping the flag opens the public class
	_, err = sharer.UpdateSettings("trip-1", v1.UpdateSharingSettingsRequest{AllowComments: boolPtr(true)})
	assert.NoError(t, err)
	_, err = visitor.AddComment(token, "finally")
	assert.NoError(t, err)
}

func TestAddCommentValidation(t *testing.T) {
	c := NewCore()
	cfg := mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)
	token := *cfg.ShareToken

	anon := v1.NewEngagementLogic(ctxWithUser("", ""), c)
	_, err := anon.AddComment(token, "hi")
	assert.True(t, errors.IsUnauthorized(err))

	owner := v1.NewEngagementLogic(ctxWithUser("owner-1", ""), c)
	_, err = owner.AddComment(token, "   \n\t ")
	assert.True(t, errors.IsInvalidInput(err))
}

func TestListComments(t *testing.T) {
	c := NewCore()
	cfg := mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)
	token := *cfg.ShareToken

	owner := v1.NewEngagementLogic(ctxWithUser("owner-1", ""), c)
	for i := 0; i < 5; i++ {
		_, err := owner.AddComment(token, fmt.Sprintf("note %d", i))
		assert.NoError(t, err)
	}

	list, err := owner.ListComments(token, 1, 3)
	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "note 4", list[0].Content, "newest first")

	list, err = owner.ListComments(token, 2, 3)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	anonList, err := v1.NewEngagementLogic(ctxWithUser("", ""), c).ListComments(token, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, anonList, 5)
}
