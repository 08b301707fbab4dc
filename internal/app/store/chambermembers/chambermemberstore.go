// internal/app/store/chambermembers/chambermemberstore.go
package chambermemberstore

import (
	"context"
	"errors"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrImageTaken is returned when img_path already belongs to another member.
var ErrImageTaken = errors.New("image already belongs to another chamber member")

type Store struct {
	coll records.Collection[models.ChamberMember]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.ChamberMember](db, "chamber_members")}
}

func (s *Store) List(ctx context.Context) ([]models.ChamberMember, error) {
	return s.coll.Find(ctx, nil)
}

func (s *Store) Get(ctx context.Context, id int64) (models.ChamberMember, error) {
	return s.coll.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, m models.ChamberMember) (models.ChamberMember, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.ChamberMember{}, err
	}
	m.ID = id
	m.Stamp(records.Now())
	if err := s.coll.Insert(ctx, m); err != nil {
		return models.ChamberMember{}, err
	}
	return m, nil
}

// Data holds the fields an update may change. ImgPath is only set by the
// legacy update, which accepts an already stored path.
type Data struct {
	Name    *string `bson:"name,omitempty"`
	RoleES  *string `bson:"role_es,omitempty"`
	RoleEN  *string `bson:"role_en,omitempty"`
	ImgPath *string `bson:"img_path,omitempty"`
}

func (s *Store) Update(ctx context.Context, id int64, d Data) (models.ChamberMember, error) {
	m, err := s.coll.Patch(ctx, id, d)
	if wafflemongo.IsDup(err) {
		return models.ChamberMember{}, ErrImageTaken
	}
	return m, err
}

// ImageTaken reports whether a member other than id points at path.
func (s *Store) ImageTaken(ctx context.Context, path string, id int64) (bool, error) {
	n, err := s.coll.Count(ctx, bson.M{"img_path": path, "_id": bson.M{"$ne": id}})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) SetImage(ctx context.Context, id int64, path string) (models.ChamberMember, error) {
	return s.coll.Patch(ctx, id, bson.M{"img_path": path})
}

func (s *Store) ClearImage(ctx context.Context, id int64) (models.ChamberMember, error) {
	return s.coll.Patch(ctx, id, nil, "img_path")
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}
