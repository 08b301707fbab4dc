// internal/app/features/events/views.go
package events

import (
	"time"

	"github.com/dalemusser/chamberhub/internal/app/system/i18n"
	"github.com/dalemusser/chamberhub/internal/domain/models"
)

const dateLayout = "2006-01-02"

var text = struct {
	Title       i18n.Field[models.Event]
	Description i18n.Field[models.Event]
}{
	Title: i18n.Field[models.Event]{
		ES: func(e models.Event) string { return e.TitleES },
		EN: func(e models.Event) string { return e.TitleEN },
	},
	Description: i18n.Field[models.Event]{
		ES: func(e models.Event) string { return e.DescriptionES },
		EN: func(e models.Event) string { return e.DescriptionEN },
	},
}

type publicView struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Address     string   `json:"address"`
	Lat         *float64 `json:"lat"`
	Long        *float64 `json:"long"`
	ImgPath     *string  `json:"img_path"`
}

type dashView struct {
	ID            int64     `json:"id"`
	TitleES       string    `json:"title_es"`
	TitleEN       string    `json:"title_en"`
	DescriptionES string    `json:"description_es"`
	DescriptionEN string    `json:"description_en"`
	Price         *float64  `json:"price"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Address       string    `json:"address"`
	Lat           *float64  `json:"lat"`
	Long          *float64  `json:"long"`
	ImgPath       *string   `json:"img_path"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (h *Handler) public(e models.Event, lang i18n.Lang) publicView {
	return publicView{
		ID:          e.ID,
		Title:       text.Title.In(e, lang),
		Description: text.Description.In(e, lang),
		Price:       e.Price,
		Date:        e.Date.UTC().Format(dateLayout),
		Time:        e.Time,
		Address:     e.Address,
		Lat:         e.Lat,
		Long:        e.Long,
		ImgPath:     h.Assets.URL(e.ImgPath),
	}
}

func (h *Handler) dash(e models.Event) dashView {
	return dashView{
		ID:            e.ID,
		TitleES:       e.TitleES,
		TitleEN:       e.TitleEN,
		DescriptionES: e.DescriptionES,
		DescriptionEN: e.DescriptionEN,
		Price:         e.Price,
		Date:          e.Date.UTC().Format(dateLayout),
		Time:          e.Time,
		Address:       e.Address,
		Lat:           e.Lat,
		Long:          e.Long,
		ImgPath:       h.Assets.URL(e.ImgPath),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
