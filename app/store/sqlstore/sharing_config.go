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
		provider.stores.SharingConfigStore = NewSharingConfigStore(provider)
	})
}

type SharingConfigStoreImpl struct {
	CommonFields
}

func NewSharingConfigStore(provider SqlProviderAchieve) *SharingConfigStoreImpl {
	repo := &SharingConfigStoreImpl{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SHARING_CONFIG)
	repo.SetAllColumns(
		"trip_id", "user_id", "visibility", "share_token", "allow_comments", "allow_cloning", "created_at", "updated_at",
	)
	return repo
}

func (s *SharingConfigStoreImpl) Create(ctx context.Context, data types.SharingConfig) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.TripID, data.UserID, data.Visibility, data.ShareToken, data.AllowComments, data.AllowCloning, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SharingConfigStoreImpl) Get(ctx context.Context, tripID string) (*types.SharingConfig, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.SharingConfig
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetForUpdate must run inside a transaction; the row lock serializes
// visibility transitions for the trip.
func (s *SharingConfigStoreImpl) GetForUpdate(ctx context.Context, tripID string) (*types.SharingConfig, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"trip_id": tripID}).
		Suffix("FOR UPDATE")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.SharingConfig
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SharingConfigStoreImpl) GetByToken(ctx context.Context, token string) (*types.SharingConfig, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"share_token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.SharingConfig
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SharingConfigStoreImpl) UpdateVisibility(ctx context.Context, tripID string, visibility types.Visibility, token *string) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"visibility":  visibility,
		"share_token": token,
		"updated_at":  time.Now().Unix(),
	}).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SharingConfigStoreImpl) UpdateFlags(ctx context.Context, tripID string, allowComments, allowCloning *bool) error {
	set := map[string]interface{}{
		"updated_at": time.Now().Unix(),
	}
	if allowComments != nil {
		set["allow_comments"] = *allowComments
	}
	if allowCloning != nil {
		set["allow_cloning"] = *allowCloning
	}

	query := sq.Update(s.GetTable()).SetMap(set).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SharingConfigStoreImpl) Delete(ctx context.Context, tripID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"trip_id": tripID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
