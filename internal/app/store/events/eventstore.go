// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"time"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter selects events relative to the current day.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterPast     Filter = "past"
	FilterUpcoming Filter = "upcoming"
)

// ParseFilter maps the query value; anything unknown means all.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterPast, FilterUpcoming:
		return Filter(s)
	default:
		return FilterAll
	}
}

type Store struct {
	coll records.Collection[models.Event]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.Event](db, "events")}
}

// StartOfDay is the boundary between past and upcoming events.
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// List returns the events selected by f in id order. Past events are dated
// before today; upcoming events are dated today or later.
func (s *Store) List(ctx context.Context, f Filter, now time.Time) ([]models.Event, error) {
	filter := bson.M{}
	switch f {
	case FilterPast:
		filter["date"] = bson.M{"$lt": StartOfDay(now)}
	case FilterUpcoming:
		filter["date"] = bson.M{"$gte": StartOfDay(now)}
	}
	return s.coll.Find(ctx, filter)
}

func (s *Store) Get(ctx context.Context, id int64) (models.Event, error) {
	return s.coll.Get(ctx, id)
}

// Create assigns the id and timestamps and stores e.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.Event{}, err
	}
	e.ID = id
	e.Stamp(records.Now())
	if err := s.coll.Insert(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// Data holds the non-asset fields an update may change. Nil fields are left
// untouched.
type Data struct {
	TitleES       *string    `bson:"title_es,omitempty"`
	TitleEN       *string    `bson:"title_en,omitempty"`
	DescriptionES *string    `bson:"description_es,omitempty"`
	DescriptionEN *string    `bson:"description_en,omitempty"`
	Price         *float64   `bson:"price,omitempty"`
	Date          *time.Time `bson:"date,omitempty"`
	Time          *string    `bson:"time,omitempty"`
	Address       *string    `bson:"address,omitempty"`
	Lat           *float64   `bson:"lat,omitempty"`
	Long          *float64   `bson:"long,omitempty"`
}

func (s *Store) UpdateData(ctx context.Context, id int64, d Data) (models.Event, error) {
	return s.coll.Patch(ctx, id, d)
}

// SetImage points the event at a stored image.
func (s *Store) SetImage(ctx context.Context, id int64, path string) (models.Event, error) {
	return s.coll.Patch(ctx, id, bson.M{"img_path": path})
}

// ClearImage removes the image path.
func (s *Store) ClearImage(ctx context.Context, id int64) (models.Event, error) {
	return s.coll.Patch(ctx, id, nil, "img_path")
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}
