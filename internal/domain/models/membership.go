// internal/domain/models/membership.go
package models

// Membership is a paid membership tier with three price points.
type Membership struct {
	ID            int64   `bson:"_id" json:"id"`
	SizeES        string  `bson:"size_es" json:"size_es"`
	SizeEN        string  `bson:"size_en" json:"size_en"`
	DescriptionES string  `bson:"description_es" json:"description_es"`
	DescriptionEN string  `bson:"description_en" json:"description_en"`
	Price1        float64 `bson:"price1" json:"price1"`
	Price2        float64 `bson:"price2" json:"price2"`
	Price3        float64 `bson:"price3" json:"price3"`

	Timestamps `bson:",inline"`
}
