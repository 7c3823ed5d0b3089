package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestPlanVisibilityTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   SharingConfig
		next      Visibility
		wantIssue bool
		wantClear bool
	}{
		{"private to unlisted issues", SharingConfig{Visibility: VisibilityPrivate}, VisibilityUnlisted, true, false},
		{"private to public issues", SharingConfig{Visibility: VisibilityPrivate}, VisibilityPublic, true, false},
		{"unlisted to public keeps token", SharingConfig{Visibility: VisibilityUnlisted, ShareToken: strptr("tok-a")}, VisibilityPublic, false, false},
		{"public to unlisted keeps token", SharingConfig{Visibility: VisibilityPublic, ShareToken: strptr("tok-a")}, VisibilityUnlisted, false, false},
		{"unlisted to unlisted keeps token", SharingConfig{Visibility: VisibilityUnlisted, ShareToken: strptr("tok-a")}, VisibilityUnlisted, false, false},
		{"public to private clears", SharingConfig{Visibility: VisibilityPublic, ShareToken: strptr("tok-a")}, VisibilityPrivate, false, true},
		{"unlisted to friends_only clears", SharingConfig{Visibility: VisibilityUnlisted, ShareToken: strptr("tok-a")}, VisibilityFriendsOnly, false, true},
		{"private to private no-op", SharingConfig{Visibility: VisibilityPrivate}, VisibilityPrivate, false, false},
		{"private to friends_only no-op", SharingConfig{Visibility: VisibilityPrivate}, VisibilityFriendsOnly, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue, clear := PlanVisibilityTransition(&tt.current, tt.next)
			assert.Equal(t, tt.wantIssue, issue)
			assert.Equal(t, tt.wantClear, clear)
		})
	}
}

func TestVisibilityValid(t *testing.T) {
	for _, v := range []Visibility{VisibilityPrivate, VisibilityUnlisted, VisibilityPublic, VisibilityFriendsOnly} {
		assert.True(t, v.Valid(), string(v))
	}
	assert.False(t, Visibility("everyone").Valid())
	assert.False(t, Visibility("").Valid())
}

func TestVisibilityRequiresToken(t *testing.T) {
	assert.True(t, VisibilityUnlisted.RequiresToken())
	assert.True(t, VisibilityPublic.RequiresToken())
	assert.False(t, VisibilityPrivate.RequiresToken())
	assert.False(t, VisibilityFriendsOnly.RequiresToken())
}

func TestDirectShareGrantsTo(t *testing.T) {
	share := DirectShare{
		TripID:     "trip-1",
		Recipient:  "ana@example.com",
		Permission: SharePermissionView,
		Status:     DIRECT_SHARE_STATUS_PENDING,
	}

	assert.False(t, share.GrantsTo(""), "anonymous never matches a grant")
	assert.False(t, share.GrantsTo("user-1"))

	share.RecipientUserID = "user-1"
	share.Status = DIRECT_SHARE_STATUS_CLAIMED
	assert.True(t, share.GrantsTo("user-1"))
	assert.False(t, share.GrantsTo("user-2"))

	share.Status = DIRECT_SHARE_STATUS_EXPIRED
	assert.False(t, share.GrantsTo("user-1"), "expired grants are dead")
}

func TestRequesterIdentity(t *testing.T) {
	assert.Equal(t, "user-1", Requester{UserID: "user-1", Fingerprint: "fp"}.Identity())
	assert.Equal(t, "anon:fp", Requester{Fingerprint: "fp"}.Identity())
	assert.Equal(t, "anon:unknown", Requester{}.Identity())
}
