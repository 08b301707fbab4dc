// internal/app/store/labels/labelstore.go
package labelstore

import (
	"context"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	coll records.Collection[models.Label]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.Label](db, "labels")}
}

func (s *Store) List(ctx context.Context) ([]models.Label, error) {
	return s.coll.Find(ctx, nil)
}

func (s *Store) Get(ctx context.Context, id int64) (models.Label, error) {
	return s.coll.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, l models.Label) (models.Label, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.Label{}, err
	}
	l.ID = id
	l.Stamp(records.Now())
	if err := s.coll.Insert(ctx, l); err != nil {
		return models.Label{}, err
	}
	return l, nil
}

// SetText replaces the label text. The video label stores its object path
// here.
func (s *Store) SetText(ctx context.Context, id int64, text string) (models.Label, error) {
	return s.coll.Patch(ctx, id, bson.M{"text": text})
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}
