package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/wayfarer-app/wayfarer/pkg/register"
	"github.com/wayfarer-app/wayfarer/pkg/types"
	"github.com/wayfarer-app/wayfarer/pkg/utils"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.TripCommentStore = NewTripCommentStore(provider)
	})
}

type TripCommentStoreImpl struct {
	CommonFields
}

func NewTripCommentStore(provider SqlProviderAchieve) *TripCommentStoreImpl {
	repo := &TripCommentStoreImpl{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TRIP_COMMENT)
	repo.SetAllColumns("id", "trip_id", "user_id", "content", "created_at")
	return repo
}

func (s *TripCommentStoreImpl) Create(ctx context.Context, data types.TripComment) error {
	if data.ID == 0 {
		data.ID = utils.GenUniqID()
	}
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.TripID, data.UserID, data.Content, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *TripCommentStoreImpl) Count(ctx context.Context, tripID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var count int64
	if err = s.GetReplica(ctx).Get(&count, queryString, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *TripCommentStoreImpl) List(ctx context.Context, tripID string, page, pageSize uint64) ([]types.TripComment, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"trip_id": tripID}).
		OrderBy("created_at DESC")

	if page != types.NO_PAGINATION && pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.TripComment
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *TripCommentStoreImpl) DeleteByTrip(ctx context.Context, tripID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
