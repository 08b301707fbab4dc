// internal/domain/models/socialmedia.go
package models

type SocialMedia struct {
	ID    int64  `bson:"_id" json:"id"`
	Type  string `bson:"type" json:"type"` // facebook, instagram, ...
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`

	Timestamps `bson:",inline"`
}
