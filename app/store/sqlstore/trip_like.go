package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/wayfarer-app/wayfarer/pkg/register"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.TripLikeStore = NewTripLikeStore(provider)
	})
}

type TripLikeStoreImpl struct {
	CommonFields
}

func NewTripLikeStore(provider SqlProviderAchieve) *TripLikeStoreImpl {
	repo := &TripLikeStoreImpl{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TRIP_LIKE)
	repo.SetAllColumns("trip_id", "user_id", "created_at")
	return repo
}

// TryCreate relies on the (trip_id, user_id) primary key: under a concurrent
// double-toggle exactly one insert wins and the loser observes zero affected
// rows, so state converges to 0 or 1 like, never 2.
func (s *TripLikeStoreImpl) TryCreate(ctx context.Context, tripID, userID string) (bool, error) {
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(tripID, userID, time.Now().Unix()).
		Suffix("ON CONFLICT (trip_id, user_id) DO NOTHING")

	queryString, args, err := query.ToSql()
	if err != nil {
		return false, ErrorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *TripLikeStoreImpl) Delete(ctx context.Context, tripID, userID string) (bool, error) {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"trip_id": tripID, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return false, ErrorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *TripLikeStoreImpl) Exists(ctx context.Context, tripID, userID string) (bool, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"trip_id": tripID, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return false, ErrorSqlBuild(err)
	}

	var count int64
	if err = s.GetReplica(ctx).Get(&count, queryString, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TripLikeStoreImpl) Count(ctx context.Context, tripID string) (int64, error) {
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

func (s *TripLikeStoreImpl) DeleteByTrip(ctx context.Context, tripID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
