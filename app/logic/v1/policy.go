package v1

import (
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

// DecideAccess is the visibility policy, a pure function over the trip's
// sharing config, its direct shares and whoever is asking. Rules are
// evaluated in order; the first match wins.
//
// friends_only behaves as private here: the friends relation belongs to an
// external collaborator, so only the owner and direct shares get through.
func DecideAccess(cfg *types.SharingConfig, shares []types.DirectShare, req types.Requester) types.AccessDecision {
	if cfg == nil {
		return types.AccessDecision{Class: types.AccessClassNone}
	}

	if req.UserID != "" && req.UserID == cfg.UserID {
		return types.AccessDecision{
			Allowed:    true,
			Class:      types.AccessClassOwner,
			Permission: types.SharePermissionEdit,
		}
	}

	if cfg.Visibility == types.VisibilityPublic {
		return types.AccessDecision{
			Allowed:    true,
			Class:      types.AccessClassPublic,
			Permission: types.SharePermissionView,
		}
	}

	if cfg.Visibility == types.VisibilityUnlisted && req.Token != "" && req.Token == cfg.TokenValue() {
		return types.AccessDecision{
			Allowed:    true,
			Class:      types.AccessClassToken,
			Permission: types.SharePermissionView,
		}
	}

	for _, share := range shares {
		if share.TripID == cfg.TripID && share.GrantsTo(req.UserID) {
			return types.AccessDecision{
				Allowed:    true,
				Class:      types.AccessClassDirect,
				Permission: share.Permission,
			}
		}
	}

	return types.AccessDecision{Class: types.AccessClassNone}
}
