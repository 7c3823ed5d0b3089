package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "wayfarer_"

const (
	TABLE_TRIP           = TableName("trip")
	TABLE_SHARING_CONFIG = TableName("sharing_config")
	TABLE_DIRECT_SHARE   = TableName("direct_share")
	TABLE_TRIP_VIEW      = TableName("trip_view")
	TABLE_TRIP_LIKE      = TableName("trip_like")
	TABLE_TRIP_COMMENT   = TableName("trip_comment")
)
