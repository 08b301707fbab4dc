// internal/app/features/events/input.go
package events

import (
	eventstore "github.com/dalemusser/chamberhub/internal/app/store/events"
	"github.com/dalemusser/chamberhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/domain/models"
)

// eventInput carries the non-asset fields. Create and update-data share
// the same rules.
type eventInput struct {
	TitleES       *string `schema:"title_es" validate:"required,max=256"`
	TitleEN       *string `schema:"title_en" validate:"required,max=256"`
	DescriptionES *string `schema:"description_es" validate:"required,max=2048"`
	DescriptionEN *string `schema:"description_en" validate:"required,max=2048"`
	Price         *string `schema:"price" validate:"omitnil,decimal"`
	Date          *string `schema:"date" validate:"required,date"`
	Time          *string `schema:"time" validate:"required,max=32"`
	Address       *string `schema:"address" validate:"required,max=256"`
	Lat           *string `schema:"lat" validate:"omitnil,decimal"`
	Long          *string `schema:"long" validate:"omitnil,decimal"`
}

func decimal(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := inputval.ParseDecimal(*s)
	if err != nil {
		return nil
	}
	return &f
}

// data converts validated input into a store patch. Dates keep day
// precision.
func (in eventInput) data() eventstore.Data {
	d := eventstore.Data{
		TitleES:       in.TitleES,
		TitleEN:       in.TitleEN,
		DescriptionES: htmlsanitize.SanitizePtr(in.DescriptionES),
		DescriptionEN: htmlsanitize.SanitizePtr(in.DescriptionEN),
		Price:         decimal(in.Price),
		Time:          in.Time,
		Address:       in.Address,
		Lat:           decimal(in.Lat),
		Long:          decimal(in.Long),
	}
	if in.Date != nil {
		if t, err := inputval.ParseDate(*in.Date); err == nil {
			day := eventstore.StartOfDay(t)
			d.Date = &day
		}
	}
	return d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (in eventInput) model() models.Event {
	d := in.data()
	e := models.Event{
		TitleES:       deref(d.TitleES),
		TitleEN:       deref(d.TitleEN),
		DescriptionES: deref(d.DescriptionES),
		DescriptionEN: deref(d.DescriptionEN),
		Price:         d.Price,
		Time:          deref(d.Time),
		Address:       deref(d.Address),
		Lat:           d.Lat,
		Long:          d.Long,
	}
	if d.Date != nil {
		e.Date = *d.Date
	}
	return e
}
