// internal/app/store/services/servicestore.go
package servicestore

import (
	"context"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	coll records.Collection[models.Service]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.Service](db, "services")}
}

func (s *Store) List(ctx context.Context) ([]models.Service, error) {
	return s.coll.Find(ctx, nil)
}

func (s *Store) Get(ctx context.Context, id int64) (models.Service, error) {
	return s.coll.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, sv models.Service) (models.Service, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.Service{}, err
	}
	sv.ID = id
	sv.Stamp(records.Now())
	if err := s.coll.Insert(ctx, sv); err != nil {
		return models.Service{}, err
	}
	return sv, nil
}

// Data holds the non-asset fields an update may change.
type Data struct {
	TitleES       *string `bson:"title_es,omitempty"`
	TitleEN       *string `bson:"title_en,omitempty"`
	DescriptionES *string `bson:"description_es,omitempty"`
	DescriptionEN *string `bson:"description_en,omitempty"`
	ContactName   *string `bson:"contact_name,omitempty"`
	Phone         *string `bson:"phone,omitempty"`
}

func (s *Store) UpdateData(ctx context.Context, id int64, d Data) (models.Service, error) {
	return s.coll.Patch(ctx, id, d)
}

func (s *Store) SetImage(ctx context.Context, id int64, path string) (models.Service, error) {
	return s.coll.Patch(ctx, id, bson.M{"img_path": path})
}

func (s *Store) ClearImage(ctx context.Context, id int64) (models.Service, error) {
	return s.coll.Patch(ctx, id, nil, "img_path")
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}
