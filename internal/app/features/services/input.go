// internal/app/features/services/input.go
package services

import (
	servicestore "github.com/dalemusser/chamberhub/internal/app/store/services"
	"github.com/dalemusser/chamberhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/chamberhub/internal/domain/models"
)

type serviceInput struct {
	TitleES       *string `schema:"title_es" validate:"required,max=256"`
	TitleEN       *string `schema:"title_en" validate:"required,max=256"`
	DescriptionES *string `schema:"description_es" validate:"required,max=2048"`
	DescriptionEN *string `schema:"description_en" validate:"required,max=2048"`
	ContactName   *string `schema:"contact_name" validate:"required,max=128"`
	Phone         *string `schema:"phone" validate:"required,max=13"`
}

func (in serviceInput) data() servicestore.Data {
	return servicestore.Data{
		TitleES:       in.TitleES,
		TitleEN:       in.TitleEN,
		DescriptionES: htmlsanitize.SanitizePtr(in.DescriptionES),
		DescriptionEN: htmlsanitize.SanitizePtr(in.DescriptionEN),
		ContactName:   in.ContactName,
		Phone:         in.Phone,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (in serviceInput) model() models.Service {
	d := in.data()
	return models.Service{
		TitleES:       deref(d.TitleES),
		TitleEN:       deref(d.TitleEN),
		DescriptionES: deref(d.DescriptionES),
		DescriptionEN: deref(d.DescriptionEN),
		ContactName:   deref(d.ContactName),
		Phone:         deref(d.Phone),
	}
}
