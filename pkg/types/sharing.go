package types

import (
	sq "github.com/Masterminds/squirrel"
)

// Visibility is the trip-level policy controlling default discoverability.
type Visibility string

const (
	VisibilityPrivate     Visibility = "private"
	VisibilityUnlisted    Visibility = "unlisted"
	VisibilityPublic      Visibility = "public"
	VisibilityFriendsOnly Visibility = "friends_only"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityUnlisted, VisibilityPublic, VisibilityFriendsOnly:
		return true
	}
	return false
}

// RequiresToken reports whether a config in this visibility must carry a live share token.
func (v Visibility) RequiresToken() bool {
	return v == VisibilityUnlisted || v == VisibilityPublic
}

// SharingConfig 数据表结构，每个 trip 一条
type SharingConfig struct {
	TripID        string     `json:"trip_id" db:"trip_id"`
	UserID        string     `json:"user_id" db:"user_id"` // owner
	Visibility    Visibility `json:"visibility" db:"visibility"`
	ShareToken    *string    `json:"share_token,omitempty" db:"share_token"` // non-nil iff visibility is unlisted/public
	AllowComments bool       `json:"allow_comments" db:"allow_comments"`
	AllowCloning  bool       `json:"allow_cloning" db:"allow_cloning"`
	CreatedAt     int64      `json:"created_at" db:"created_at"`
	UpdatedAt     int64      `json:"updated_at" db:"updated_at"`
}

// TokenValue returns the live token or "".
func (c *SharingConfig) TokenValue() string {
	if c.ShareToken == nil {
		return ""
	}
	return *c.ShareToken
}

// PlanVisibilityTransition reports what must happen to the share token when a
// config moves from its current visibility to next. Entering unlisted/public
// from a token-less state issues a token; leaving clears it; staying within
// the token-bearing pair (or repeating the same visibility) never rotates it.
func PlanVisibilityTransition(current *SharingConfig, next Visibility) (issueToken, clearToken bool) {
	if next.RequiresToken() {
		return current.ShareToken == nil, false
	}
	return false, current.ShareToken != nil
}

type SharePermission string

const (
	SharePermissionView    SharePermission = "view"
	SharePermissionComment SharePermission = "comment"
	SharePermissionEdit    SharePermission = "edit"
)

func (p SharePermission) Valid() bool {
	switch p {
	case SharePermissionView, SharePermissionComment, SharePermissionEdit:
		return true
	}
	return false
}

type DirectShareStatus string

const (
	DIRECT_SHARE_STATUS_PENDING DirectShareStatus = "pending"
	DIRECT_SHARE_STATUS_CLAIMED DirectShareStatus = "claimed"
	DIRECT_SHARE_STATUS_EXPIRED DirectShareStatus = "expired"
)

// DirectShare is an owner-granted per-recipient access row, independent of
// the trip's visibility. Recipient holds whatever the owner typed (email or
// user id); RecipientUserID is bound once the invite is claimed.
type DirectShare struct {
	ID              int64             `json:"id" db:"id"`
	TripID          string            `json:"trip_id" db:"trip_id"`
	Recipient       string            `json:"recipient" db:"recipient"`
	RecipientUserID string            `json:"recipient_user_id" db:"recipient_user_id"`
	Permission      SharePermission   `json:"permission" db:"permission"`
	Message         string            `json:"message" db:"message"`
	Status          DirectShareStatus `json:"status" db:"status"`
	InvitedAt       int64             `json:"invited_at" db:"invited_at"`
	ClaimedAt       int64             `json:"claimed_at" db:"claimed_at"`
}

// GrantsTo reports whether this share currently grants access to the given user.
func (d DirectShare) GrantsTo(userID string) bool {
	if userID == "" || d.Status == DIRECT_SHARE_STATUS_EXPIRED {
		return false
	}
	return d.RecipientUserID == userID || d.Recipient == userID
}

type ListDirectShareOptions struct {
	TripID    string
	Recipient string
	Status    DirectShareStatus
}

func (opts ListDirectShareOptions) Apply(query *sq.SelectBuilder) {
	if opts.TripID != "" {
		*query = query.Where(sq.Eq{"trip_id": opts.TripID})
	}
	if opts.Recipient != "" {
		*query = query.Where(sq.Eq{"recipient": opts.Recipient})
	}
	if opts.Status != "" {
		*query = query.Where(sq.Eq{"status": opts.Status})
	}
}

// AccessClass is the class of access granted by the visibility policy.
type AccessClass string

const (
	AccessClassOwner  AccessClass = "owner"
	AccessClassPublic AccessClass = "public"
	AccessClassToken  AccessClass = "token"
	AccessClassDirect AccessClass = "direct"
	AccessClassNone   AccessClass = "none"
)

// Requester is the explicit identity of whoever is knocking. No field is
// required; an all-zero Requester is an anonymous visitor.
type Requester struct {
	UserID      string // resolved authenticated user id, "" when anonymous
	Token       string // share token presented with the request, if any
	Fingerprint string // anonymous viewer fingerprint, handler-computed
}

// Identity returns the viewer identity recorded in the engagement ledger.
func (r Requester) Identity() string {
	if r.UserID != "" {
		return r.UserID
	}
	if r.Fingerprint != "" {
		return "anon:" + r.Fingerprint
	}
	return "anon:unknown"
}

// AccessDecision is the outcome of the visibility policy.
type AccessDecision struct {
	Allowed    bool
	Class      AccessClass
	Permission SharePermission // set for the direct class, capped by the grant
}
