// internal/app/features/chambermembers/views.go
package chambermembers

import (
	"time"

	"github.com/dalemusser/chamberhub/internal/app/system/i18n"
	"github.com/dalemusser/chamberhub/internal/domain/models"
)

var role = i18n.Field[models.ChamberMember]{
	ES: func(m models.ChamberMember) string { return m.RoleES },
	EN: func(m models.ChamberMember) string { return m.RoleEN },
}

type publicView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Initials string  `json:"initials,omitempty"`
	Role     string  `json:"role"`
	ImgPath  *string `json:"img_path"`
}

type dashView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Initials  string    `json:"initials,omitempty"`
	RoleES    string    `json:"role_es"`
	RoleEN    string    `json:"role_en"`
	ImgPath   *string   `json:"img_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) public(m models.ChamberMember, lang i18n.Lang) publicView {
	return publicView{
		ID:      m.ID,
		Name:    m.Name,
		Role:    role.In(m, lang),
		ImgPath: h.Assets.URL(m.ImgPath),
	}
}

func (h *Handler) dash(m models.ChamberMember) dashView {
	return dashView{
		ID:        m.ID,
		Name:      m.Name,
		RoleES:    m.RoleES,
		RoleEN:    m.RoleEN,
		ImgPath:   h.Assets.URL(m.ImgPath),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
