// internal/app/store/contacts/contactstore.go
package contactstore

import (
	"context"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	coll records.Collection[models.Contact]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.Contact](db, "contacts")}
}

func (s *Store) List(ctx context.Context) ([]models.Contact, error) {
	return s.coll.Find(ctx, nil)
}

func (s *Store) Get(ctx context.Context, id int64) (models.Contact, error) {
	return s.coll.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.Contact{}, err
	}
	c.ID = id
	c.Stamp(records.Now())
	if err := s.coll.Insert(ctx, c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

type Data struct {
	Name    *string `bson:"name,omitempty"`
	Email   *string `bson:"email,omitempty"`
	Phone   *string `bson:"phone,omitempty"`
	Message *string `bson:"message,omitempty"`
}

func (s *Store) Update(ctx context.Context, id int64, d Data) (models.Contact, error) {
	return s.coll.Patch(ctx, id, d)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}
