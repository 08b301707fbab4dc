// internal/app/features/services/views.go
package services

import (
	"time"

	"github.com/dalemusser/chamberhub/internal/app/system/i18n"
	"github.com/dalemusser/chamberhub/internal/domain/models"
)

var text = struct {
	Title       i18n.Field[models.Service]
	Description i18n.Field[models.Service]
}{
	Title: i18n.Field[models.Service]{
		ES: func(s models.Service) string { return s.TitleES },
		EN: func(s models.Service) string { return s.TitleEN },
	},
	Description: i18n.Field[models.Service]{
		ES: func(s models.Service) string { return s.DescriptionES },
		EN: func(s models.Service) string { return s.DescriptionEN },
	},
}

type publicView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ContactName string  `json:"contact_name"`
	Phone       string  `json:"phone"`
	ImgPath     *string `json:"img_path"`
}

type dashView struct {
	ID            int64     `json:"id"`
	TitleES       string    `json:"title_es"`
	TitleEN       string    `json:"title_en"`
	DescriptionES string    `json:"description_es"`
	DescriptionEN string    `json:"description_en"`
	ContactName   string    `json:"contact_name"`
	Phone         string    `json:"phone"`
	ImgPath       *string   `json:"img_path"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (h *Handler) public(s models.Service, lang i18n.Lang) publicView {
	return publicView{
		ID:          s.ID,
		Title:       text.Title.In(s, lang),
		Description: text.Description.In(s, lang),
		ContactName: s.ContactName,
		Phone:       s.Phone,
		ImgPath:     h.Assets.URL(s.ImgPath),
	}
}

func (h *Handler) dash(s models.Service) dashView {
	return dashView{
		ID:            s.ID,
		TitleES:       s.TitleES,
		TitleEN:       s.TitleEN,
		DescriptionES: s.DescriptionES,
		DescriptionEN: s.DescriptionEN,
		ContactName:   s.ContactName,
		Phone:         s.Phone,
		ImgPath:       h.Assets.URL(s.ImgPath),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
