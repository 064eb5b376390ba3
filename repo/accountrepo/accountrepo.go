//go:generate mockgen -destination mock_accountrepo/mock_accountrepo.go github.com/anyproto/anytype-fcm-notifier/repo/accountrepo AccountRepo

package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anyproto/anytype-fcm-notifier/db"
	"github.com/anyproto/anytype-fcm-notifier/domain"
)

const CName = "fcm.accountrepo"

const collName = "account"

func New() AccountRepo {
	return new(accountRepo)
}

// AccountRepo keeps the group membership of accounts.
type AccountRepo interface {
	SetAccountGroups(ctx context.Context, accountId string, groups []string) error
	GetAccountIdsByGroups(ctx context.Context, groups []string) ([]string, error)
	GetGroupsByAccountId(ctx context.Context, accountId string) (groups []string, err error)
	app.ComponentRunnable
}

type accountRepo struct {
	coll *mongo.Collection
}

func (r *accountRepo) Init(a *app.App) (err error) {
	r.coll = a.MustComponent(db.CName).(db.Database).Db().Collection(collName)
	return
}

func (r *accountRepo) Name() (name string) {
	return CName
}

func (r *accountRepo) Run(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{"groups", 1}},
	})
	return err
}

// SetAccountGroups replaces the groups of the account, an empty list unsubscribes it from everything.
func (r *accountRepo) SetAccountGroups(ctx context.Context, accountId string, groups []string) error {
	if groups == nil {
		groups = []string{}
	}
	now := time.Now().Unix()
	_, err := r.coll.UpdateByID(
		ctx,
		accountId,
		bson.D{
			{"$set", bson.D{{"groups", groups}, {"updated", now}}},
			{"$setOnInsert", bson.D{{"created", now}}},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *accountRepo) GetAccountIdsByGroups(ctx context.Context, groups []string) ([]string, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"groups": bson.M{"$in": groups}}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cur.Close(ctx)
	}()
	var docs []domain.Account
	if err = cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.Id
	}
	return ids, nil
}

func (r *accountRepo) GetGroupsByAccountId(ctx context.Context, accountId string) (groups []string, err error) {
	var account domain.Account
	if err = r.coll.FindOne(ctx, bson.M{"_id": accountId}).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return account.Groups, nil
}

func (r *accountRepo) Close(ctx context.Context) error {
	return nil
}
