// internal/domain/models/service.go
package models

// Service is a chamber offering with a contact person and optional image.
type Service struct {
	ID            int64   `bson:"_id"`
	TitleES       string  `bson:"title_es"`
	TitleEN       string  `bson:"title_en"`
	DescriptionES string  `bson:"description_es"`
	DescriptionEN string  `bson:"description_en"`
	ContactName   string  `bson:"contact_name"`
	Phone         string  `bson:"phone"`
	ImgPath       *string `bson:"img_path,omitempty"`

	Timestamps `bson:",inline"`
}

func (s Service) HasImage() bool { return hasPath(s.ImgPath) }
