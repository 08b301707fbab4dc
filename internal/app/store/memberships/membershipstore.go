// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	coll records.Collection[models.Membership]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.Membership](db, "memberships")}
}

func (s *Store) List(ctx context.Context) ([]models.Membership, error) {
	return s.coll.Find(ctx, nil)
}

func (s *Store) Get(ctx context.Context, id int64) (models.Membership, error) {
	return s.coll.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, m models.Membership) (models.Membership, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.Membership{}, err
	}
	m.ID = id
	m.Stamp(records.Now())
	if err := s.coll.Insert(ctx, m); err != nil {
		return models.Membership{}, err
	}
	return m, nil
}

type Data struct {
	SizeES        *string  `bson:"size_es,omitempty"`
	SizeEN        *string  `bson:"size_en,omitempty"`
	DescriptionES *string  `bson:"description_es,omitempty"`
	DescriptionEN *string  `bson:"description_en,omitempty"`
	Price1        *float64 `bson:"price1,omitempty"`
	Price2        *float64 `bson:"price2,omitempty"`
	Price3        *float64 `bson:"price3,omitempty"`
}

func (s *Store) Update(ctx context.Context, id int64, d Data) (models.Membership, error) {
	return s.coll.Patch(ctx, id, d)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}
