package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/wayfarer-app/wayfarer/pkg/register"
	"github.com/wayfarer-app/wayfarer/pkg/types"
	"github.com/wayfarer-app/wayfarer/pkg/utils"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.DirectShareStore = NewDirectShareStore(provider)
	})
}

type DirectShareStoreImpl struct {
	CommonFields
}

func NewDirectShareStore(provider SqlProviderAchieve) *DirectShareStoreImpl {
	repo := &DirectShareStoreImpl{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DIRECT_SHARE)
	repo.SetAllColumns(
		"id", "trip_id", "recipient", "recipient_user_id", "permission", "message", "status", "invited_at", "claimed_at",
	)
	return repo
}

// Upsert keys on (trip_id, recipient): re-sharing with a new permission level
// overwrites the prior grant in one statement, never duplicating it. An
// expired invite goes back to pending so the recipient can claim it again; a
// claimed grant stays claimed. Returns the stored row.
func (s *DirectShareStoreImpl) Upsert(ctx context.Context, data types.DirectShare) (*types.DirectShare, error) {
	if data.ID == 0 {
		data.ID = utils.GenUniqID()
	}
	if data.InvitedAt == 0 {
		data.InvitedAt = time.Now().Unix()
	}
	if data.Status == "" {
		data.Status = types.DIRECT_SHARE_STATUS_PENDING
	}

	table := s.GetTable()
	query := sq.Insert(table).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.TripID, data.Recipient, data.RecipientUserID, data.Permission, data.Message, data.Status, data.InvitedAt, data.ClaimedAt).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (trip_id, recipient) DO UPDATE SET permission = EXCLUDED.permission, message = EXCLUDED.message, invited_at = EXCLUDED.invited_at, status = CASE WHEN %s.status = '%s' THEN '%s' ELSE %s.status END RETURNING %s",
			table, types.DIRECT_SHARE_STATUS_EXPIRED, types.DIRECT_SHARE_STATUS_PENDING, table, strings.Join(s.GetAllColumns(), ", "),
		))

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.DirectShare
	if err = s.GetMaster(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *DirectShareStoreImpl) List(ctx context.Context, opts types.ListDirectShareOptions) ([]types.DirectShare, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		OrderBy("invited_at DESC")
	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.DirectShare
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DirectShareStoreImpl) Claim(ctx context.Context, email, userID string) (int64, error) {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"recipient_user_id": userID,
		"status":            types.DIRECT_SHARE_STATUS_CLAIMED,
		"claimed_at":        time.Now().Unix(),
	}).Where(sq.Eq{"recipient": email, "status": types.DIRECT_SHARE_STATUS_PENDING})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *DirectShareStoreImpl) ExpirePending(ctx context.Context, olderThan int64) (int64, error) {
	query := sq.Update(s.GetTable()).
		Set("status", types.DIRECT_SHARE_STATUS_EXPIRED).
		Where(sq.Eq{"status": types.DIRECT_SHARE_STATUS_PENDING}).
		Where(sq.Lt{"invited_at": olderThan})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *DirectShareStoreImpl) DeleteByTrip(ctx context.Context, tripID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
