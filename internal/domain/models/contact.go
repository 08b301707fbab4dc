// internal/domain/models/contact.go
package models

// Contact is a message left through the public contact form.
type Contact struct {
	ID      int64   `bson:"_id" json:"id"`
	Name    string  `bson:"name" json:"name"`
	Email   string  `bson:"email" json:"email"`
	Phone   *string `bson:"phone,omitempty" json:"phone"`
	Message string  `bson:"message" json:"message"`

	Timestamps `bson:",inline"`
}
