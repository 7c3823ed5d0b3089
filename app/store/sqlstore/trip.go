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
		provider.stores.TripStore = NewTripStore(provider)
	})
}

type TripStoreImpl struct {
	CommonFields
}

func NewTripStore(provider SqlProviderAchieve) *TripStoreImpl {
	repo := &TripStoreImpl{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TRIP)
	repo.SetAllColumns(
		"trip_id", "user_id", "title", "description", "destination", "start_date", "end_date", "cloned_from_trip_id", "created_at", "updated_at",
	)
	return repo
}

func (s *TripStoreImpl) Create(ctx context.Context, data types.Trip) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.TripID, data.UserID, data.Title, data.Description, data.Destination, data.StartDate, data.EndDate, data.ClonedFromTripID, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *TripStoreImpl) Get(ctx context.Context, tripID string) (*types.Trip, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Trip
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Copy inserts a duplicate of source under a new id and owner, recording
// where the copy came from. Itinerary content carries over as-is.
func (s *TripStoreImpl) Copy(ctx context.Context, source *types.Trip, newTripID, newOwner string) error {
	now := time.Now().Unix()
	clone := *source
	clone.TripID = newTripID
	clone.UserID = newOwner
	clone.ClonedFromTripID = &source.TripID
	clone.CreatedAt = now
	clone.UpdatedAt = now
	return s.Create(ctx, clone)
}

func (s *TripStoreImpl) Delete(ctx context.Context, tripID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
