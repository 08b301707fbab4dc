// internal/app/store/joinrequests/joinrequeststore.go
package joinrequeststore

import (
	"context"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	coll records.Collection[models.JoinRequest]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.JoinRequest](db, "join_requests")}
}

// List returns every request, or only those with status when it is one of
// the four known statuses.
func (s *Store) List(ctx context.Context, status *int) ([]models.JoinRequest, error) {
	filter := bson.M{}
	if status != nil && models.IsKnownStatus(*status) {
		filter["status"] = *status
	}
	return s.coll.Find(ctx, filter)
}

func (s *Store) Get(ctx context.Context, id int64) (models.JoinRequest, error) {
	return s.coll.Get(ctx, id)
}

func (s *Store) Create(ctx context.Context, jr models.JoinRequest) (models.JoinRequest, error) {
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.JoinRequest{}, err
	}
	jr.ID = id
	jr.Stamp(records.Now())
	if err := s.coll.Insert(ctx, jr); err != nil {
		return models.JoinRequest{}, err
	}
	return jr, nil
}

// SetStatus moves the request to status. Any transition is allowed.
func (s *Store) SetStatus(ctx context.Context, id int64, status int) (models.JoinRequest, error) {
	return s.coll.Patch(ctx, id, bson.M{"status": status})
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.coll.Delete(ctx, id)
}

type statusCount struct {
	Status int   `bson:"_id"`
	N      int64 `bson:"n"`
}

// CountByStatus returns the total and per-status counts. Requests with a
// status outside 1..4 count toward Received only.
func (s *Store) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	var rows []statusCount
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	if err := s.coll.Aggregate(ctx, pipeline, &rows); err != nil {
		return models.StatusCounts{}, err
	}

	var out models.StatusCounts
	for _, r := range rows {
		out.Received += r.N
		switch r.Status {
		case models.StatusUnattended:
			out.Unattended = r.N
		case models.StatusContacted:
			out.Contacted = r.N
		case models.StatusFailed:
			out.Failed = r.N
		case models.StatusJoined:
			out.Joined = r.N
		}
	}
	return out, nil
}
