// internal/domain/models/event.go
package models

import "time"

// Event is a dated chamber activity with an optional cover image.
type Event struct {
	ID            int64     `bson:"_id"`
	TitleES       string    `bson:"title_es"`
	TitleEN       string    `bson:"title_en"`
	DescriptionES string    `bson:"description_es"`
	DescriptionEN string    `bson:"description_en"`
	Price         *float64  `bson:"price,omitempty"`
	Date          time.Time `bson:"date"` // midnight UTC
	Time          string    `bson:"time"`
	Address       string    `bson:"address"`
	Lat           *float64  `bson:"lat,omitempty"`
	Long          *float64  `bson:"long,omitempty"`
	ImgPath       *string   `bson:"img_path,omitempty"`

	Timestamps `bson:",inline"`
}

func (e Event) HasImage() bool { return hasPath(e.ImgPath) }
