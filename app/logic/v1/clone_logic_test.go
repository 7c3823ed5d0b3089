package v1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

func TestCloneTrip(t *testing.T) {
	c := NewCore()
	mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)

	owner := v1.NewSharingLogic(ctxWithUser("owner-1", ""), c)
	_, err := owner.UpdateSettings("trip-1", v1.UpdateSharingSettingsRequest{AllowCloning: boolPtr(true)})
	assert.NoError(t, err)

	logic := v1.NewCloneLogic(ctxWithUser("user-2", ""), c)
	newID, err := logic.CloneTrip("trip-1", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, newID)
	assert.NotEqual(t, "trip-1", newID)

	ctx := context.Background()
	clone, err := c.Store().TripStore().Get(ctx, newID)
	assert.NoError(t, err)
	assert.Equal(t, "user-2", clone.UserID, "the cloner owns the copy")
	assert.NotNil(t, clone.ClonedFromTripID)
	assert.Equal(t, "trip-1", *clone.ClonedFromTripID)

	// the copy starts private with no token and no engagement
	cloneCfg, err := c.Store().SharingConfigStore().Get(ctx, newID)
	assert.NoError(t, err)
	assert.Equal(t, types.VisibilityPrivate, cloneCfg.Visibility)
	assert.Nil(t, cloneCfg.ShareToken)
	assert.Equal(t, "user-2", cloneCfg.UserID)

	views, err := c.Store().TripViewStore().Count(ctx, newID)
	assert.NoError(t, err)
	assert.Zero(t, views)

	shares, err := c.Store().DirectShareStore().List(ctx, types.ListDirectShareOptions{TripID: newID})
	assert.NoError(t, err)
	assert.Empty(t, shares)
}

func TestCloneTripDisabledFlag(t *testing.T) {
	c := NewCore()
	mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)

	logic := v1.NewCloneLogic(ctxWithUser("user-2", ""), c)
	_, err := logic.CloneTrip("trip-1", "")
	assert.True(t, errors.IsForbidden(err))

	// the owner clones its own trip even with the flag off
	ownerLogic := v1.NewCloneLogic(ctxWithUser("owner-1", ""), c)
	newID, err := ownerLogic.CloneTrip("trip-1", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, newID)
}

func TestCloneTripPolicyGate(t *testing.T) {
	c := NewCore()
	mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPrivate)

	owner := v1.NewSharingLogic(ctxWithUser("owner-1", ""), c)
	_, err := owner.UpdateSettings("trip-1", v1.UpdateSharingSettingsRequest{AllowCloning: boolPtr(true)})
	assert.NoError(t, err)

	// cloning enabled means nothing without view access
	logic := v1.NewCloneLogic(ctxWithUser("user-2", ""), c)
	_, err = logic.CloneTrip("trip-1", "")
	assert.True(t, errors.IsForbidden(err))
}

func TestCloneTripRequiresAuth(t *testing.T) {
	c := NewCore()
	mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityPublic)

	anon := v1.NewCloneLogic(ctxWithUser("", ""), c)
	_, err := anon.CloneTrip("trip-1", "")
	assert.True(t, errors.IsUnauthorized(err))
}

func TestCloneTripWithToken(t *testing.T) {
	c := NewCore()
	cfg := mustSeedTrip(t, c, "trip-1", "owner-1", types.VisibilityUnlisted)

	owner := v1.NewSharingLogic(ctxWithUser("owner-1", ""), c)
	_, err := owner.UpdateSettings("trip-1", v1.UpdateSharingSettingsRequest{AllowCloning: boolPtr(true)})
	assert.NoError(t, err)

	// unlisted means the token is the only way in for strangers
	logic := v1.NewCloneLogic(ctxWithUser("user-2", ""), c)
	_, err = logic.CloneTrip("trip-1", "")
	assert.True(t, errors.IsForbidden(err))

	newID, err := logic.CloneTrip("trip-1", *cfg.ShareToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, newID)
}
