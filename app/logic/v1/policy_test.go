package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

func tokenPtr(s string) *string { return &s }

func TestDecideAccess(t *testing.T) {
	const (
		owner    = "owner-1"
		stranger = "user-2"
		friend   = "user-3"
		token    = "tok-abc"
	)

	base := func(vis types.Visibility, tok *string) *types.SharingConfig {
		return &types.SharingConfig{
			TripID:     "trip-1",
			UserID:     owner,
			Visibility: vis,
			ShareToken: tok,
		}
	}
	directView := []types.DirectShare{{
		TripID:          "trip-1",
		Recipient:       "friend@example.com",
		RecipientUserID: friend,
		Permission:      types.SharePermissionComment,
		Status:          types.DIRECT_SHARE_STATUS_CLAIMED,
	}}

	tests := []struct {
		name      string
		cfg       *types.SharingConfig
		shares    []types.DirectShare
		req       types.Requester
		wantAllow bool
		wantClass types.AccessClass
		wantPerm  types.SharePermission
	}{
		{"nil config denies", nil, nil, types.Requester{UserID: owner}, false, types.AccessClassNone, ""},

		{"owner on private", base(types.VisibilityPrivate, nil), nil, types.Requester{UserID: owner}, true, types.AccessClassOwner, types.SharePermissionEdit},
		{"owner wins over public class", base(types.VisibilityPublic, tokenPtr(token)), nil, types.Requester{UserID: owner}, true, types.AccessClassOwner, types.SharePermissionEdit},
		{"owner wins over direct share", base(types.VisibilityPrivate, nil), directView, types.Requester{UserID: owner}, true, types.AccessClassOwner, types.SharePermissionEdit},

		{"anonymous on public", base(types.VisibilityPublic, tokenPtr(token)), nil, types.Requester{Fingerprint: "fp"}, true, types.AccessClassPublic, types.SharePermissionView},
		{"authenticated stranger on public", base(types.VisibilityPublic, tokenPtr(token)), nil, types.Requester{UserID: stranger}, true, types.AccessClassPublic, types.SharePermissionView},
		{"public without token still allowed", base(types.VisibilityPublic, tokenPtr(token)), nil, types.Requester{}, true, types.AccessClassPublic, types.SharePermissionView},

		{"unlisted with matching token", base(types.VisibilityUnlisted, tokenPtr(token)), nil, types.Requester{Token: token}, true, types.AccessClassToken, types.SharePermissionView},
		{"unlisted with wrong token denies", base(types.VisibilityUnlisted, tokenPtr(token)), nil, types.Requester{Token: "tok-wrong"}, false, types.AccessClassNone, ""},
		{"unlisted without token denies", base(types.VisibilityUnlisted, tokenPtr(token)), nil, types.Requester{UserID: stranger}, false, types.AccessClassNone, ""},
		{"unlisted with empty stored token denies empty presented", base(types.VisibilityUnlisted, nil), nil, types.Requester{Token: ""}, false, types.AccessClassNone, ""},

		{"private denies stranger", base(types.VisibilityPrivate, nil), nil, types.Requester{UserID: stranger}, false, types.AccessClassNone, ""},
		{"private denies anonymous", base(types.VisibilityPrivate, nil), nil, types.Requester{}, false, types.AccessClassNone, ""},
		{"private token is dead after revocation", base(types.VisibilityPrivate, nil), nil, types.Requester{Token: token}, false, types.AccessClassNone, ""},

		{"friends_only behaves as private", base(types.VisibilityFriendsOnly, nil), nil, types.Requester{UserID: stranger}, false, types.AccessClassNone, ""},
		{"friends_only still honors direct share", base(types.VisibilityFriendsOnly, nil), directView, types.Requester{UserID: friend}, true, types.AccessClassDirect, types.SharePermissionComment},

		{"direct share on private", base(types.VisibilityPrivate, nil), directView, types.Requester{UserID: friend}, true, types.AccessClassDirect, types.SharePermissionComment},
		{"direct share ignores other trips", base(types.VisibilityPrivate, nil), []types.DirectShare{{TripID: "trip-9", RecipientUserID: friend, Permission: types.SharePermissionView, Status: types.DIRECT_SHARE_STATUS_CLAIMED}}, types.Requester{UserID: friend}, false, types.AccessClassNone, ""},
		{"expired direct share denies", base(types.VisibilityPrivate, nil), []types.DirectShare{{TripID: "trip-1", RecipientUserID: friend, Permission: types.SharePermissionView, Status: types.DIRECT_SHARE_STATUS_EXPIRED}}, types.Requester{UserID: friend}, false, types.AccessClassNone, ""},
		{"direct share never grants anonymous", base(types.VisibilityPrivate, nil), directView, types.Requester{Token: token}, false, types.AccessClassNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v1.DecideAccess(tt.cfg, tt.shares, tt.req)
			assert.Equal(t, tt.wantAllow, got.Allowed)
			assert.Equal(t, tt.wantClass, got.Class)
			assert.Equal(t, tt.wantPerm, got.Permission)
		})
	}
}
