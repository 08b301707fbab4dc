// internal/domain/models/label.go
package models

// VideoLabelID is the well-known label whose text holds the stored path of
// the site video rather than display text.
const VideoLabelID int64 = 2

// Label is a short piece of site copy.
type Label struct {
	ID   int64  `bson:"_id" json:"id"`
	Text string `bson:"text" json:"text"`

	Timestamps `bson:",inline"`
}

// IsVideo reports whether this label is the video slot.
func (l Label) IsVideo() bool { return l.ID == VideoLabelID }

// HasVideo reports whether the video slot points at a stored video. Text
// outside the videos namespace is never treated as an object.
func (l Label) HasVideo() bool {
	return l.IsVideo() && InNamespace(l.Text, NamespaceVideos)
}
