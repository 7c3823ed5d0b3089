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
		provider.stores.TripViewStore = NewTripViewStore(provider)
	})
}

type TripViewStoreImpl struct {
	CommonFields
}

func NewTripViewStore(provider SqlProviderAchieve) *TripViewStoreImpl {
	repo := &TripViewStoreImpl{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TRIP_VIEW)
	repo.SetAllColumns("id", "trip_id", "viewer", "viewed_at")
	return repo
}

func (s *TripViewStoreImpl) Create(ctx context.Context, data types.TripView) error {
	if data.ID == 0 {
		data.ID = utils.GenUniqID()
	}
	if data.ViewedAt == 0 {
		data.ViewedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.TripID, data.Viewer, data.ViewedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *TripViewStoreImpl) Count(ctx context.Context, tripID string) (int64, error) {
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

func (s *TripViewStoreImpl) CountDistinctViewers(ctx context.Context, tripID string) (int64, error) {
	query := sq.Select("COUNT(DISTINCT viewer)").From(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

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

func (s *TripViewStoreImpl) ListRecent(ctx context.Context, tripID string, limit uint64) ([]types.TripView, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"trip_id": tripID}).
		OrderBy("viewed_at DESC").
		Limit(limit)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.TripView
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *TripViewStoreImpl) DeleteByTrip(ctx context.Context, tripID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
