// internal/app/store/socialmedias/socialmediastore.go
package socialmediastore

import (
	"context"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	coll records.Collection[models.SocialMedia]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.SocialMedia](db, "social_medias")}
}

func (s *Store) List(ctx context.Context) ([]models.SocialMedia, error) {
	return s.coll.Find(ctx, nil)
}

func (s *Store) Get(ctx context.Context, id int64) (models.SocialMedia, error) {
	return s.coll.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, sm models.SocialMedia) (models.SocialMedia, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.SocialMedia{}, err
	}
	sm.ID = id
	sm.Stamp(records.Now())
	if err := s.coll.Insert(ctx, sm); err != nil {
		return models.SocialMedia{}, err
	}
	return sm, nil
}

type Data struct {
	Type  *string `bson:"type,omitempty"`
	Label *string `bson:"label,omitempty"`
	URL   *string `bson:"url,omitempty"`
}

func (s *Store) Update(ctx context.Context, id int64, d Data) (models.SocialMedia, error) {
	return s.coll.Patch(ctx, id, d)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}
