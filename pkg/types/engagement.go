package types

// TripView 数据表结构，append-only
type TripView struct {
	ID       int64  `json:"id" db:"id"`
	TripID   string `json:"trip_id" db:"trip_id"`
	Viewer   string `json:"viewer" db:"viewer"` // user id or "anon:<fingerprint>"
	ViewedAt int64  `json:"viewed_at" db:"viewed_at"`
}

type TripLike struct {
	TripID    string `json:"trip_id" db:"trip_id"`
	UserID    string `json:"user_id" db:"user_id"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

type TripComment struct {
	ID        int64  `json:"id" db:"id"`
	TripID    string `json:"trip_id" db:"trip_id"`
	UserID    string `json:"user_id" db:"user_id"`
	Content   string `json:"content" db:"content"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// EngagementStats is always derived from the ledger tables at read time,
// never from stored counters.
type EngagementStats struct {
	ViewCount     int64      `json:"view_count"`
	UniqueViewers int64      `json:"unique_viewers"`
	LikeCount     int64      `json:"like_count"`
	CommentCount  int64      `json:"comment_count"`
	RecentViews   []TripView `json:"recent_views"`
}
