// internal/app/features/chambermembers/input.go
package chambermembers

import (
	chambermemberstore "github.com/dalemusser/chamberhub/internal/app/store/chambermembers"
	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/normalize"
	"github.com/dalemusser/chamberhub/internal/domain/models"
)

type createInput struct {
	Name   *string `schema:"name" validate:"required,max=128"`
	RoleES *string `schema:"role_es" validate:"required,max=128"`
	RoleEN *string `schema:"role_en" validate:"required,max=128"`
}

func (in createInput) model() models.ChamberMember {
	return models.ChamberMember{
		Name:   normalize.Name(*in.Name),
		RoleES: *in.RoleES,
		RoleEN: *in.RoleEN,
	}
}

// dataInput is update-data: every field is optional but checked when sent.
type dataInput struct {
	Name   *string `schema:"name" validate:"omitnil,required,max=128"`
	RoleES *string `schema:"role_es" validate:"omitnil,required,max=128"`
	RoleEN *string `schema:"role_en" validate:"omitnil,required,max=128"`
}

func (in dataInput) data() chambermemberstore.Data {
	d := chambermemberstore.Data{RoleES: in.RoleES, RoleEN: in.RoleEN}
	if in.Name != nil {
		n := normalize.Name(*in.Name)
		d.Name = &n
	}
	return d
}

// legacyInput is the generic update, which may also repoint img_path at an
// object already stored under the chamber_members namespace.
type legacyInput struct {
	Name    *string `schema:"name" validate:"omitnil,required,max=128"`
	RoleES  *string `schema:"role_es" validate:"omitnil,required,max=128"`
	RoleEN  *string `schema:"role_en" validate:"omitnil,required,max=128"`
	ImgPath *string `schema:"img_path" validate:"omitnil,required,max=512"`
}

func (in legacyInput) validate() *inputval.Result {
	res := inputval.Validate(in)
	if in.ImgPath != nil && len(*in.ImgPath) <= 512 {
		p := *in.ImgPath
		if !inputval.IsCleanRelativePath(p) || !assets.InNamespace(p, models.NamespaceChamberMembers) {
			res.Add("img_path", msgImgNotStored)
		}
	}
	return res
}

func (in legacyInput) data() chambermemberstore.Data {
	d := dataInput{Name: in.Name, RoleES: in.RoleES, RoleEN: in.RoleEN}.data()
	d.ImgPath = in.ImgPath
	return d
}
