// internal/app/features/joinrequests/input.go
package joinrequests

import (
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/domain/models"
)

// joinInput carries the application form. Every field is required.
type joinInput struct {
	InsComercialName *string `schema:"ins_comercial_name" validate:"required,max=128"`
	InsAddress       *string `schema:"ins_address" validate:"required,max=256"`
	InsHood          *string `schema:"ins_hood" validate:"required,max=128"`
	InsCP            *string `schema:"ins_cp" validate:"required,max=10"`
	InsEmail         *string `schema:"ins_email" validate:"required,email,max=256"`

	ComCapacity      *string `schema:"com_capacity" validate:"required,integer"`
	ComMale          *string `schema:"com_male" validate:"required,integer"`
	ComFemale        *string `schema:"com_female" validate:"required,integer"`
	ComDisabled      *string `schema:"com_disabled" validate:"required,integer"`
	ComOpenDate      *string `schema:"com_open_date" validate:"required,date"`
	ComLicenseStatus *string `schema:"com_license_status" validate:"required,max=2"`
	ComLicenseType   *string `schema:"com_license_type" validate:"required,max=2"`

	TaxName     *string `schema:"tax_name" validate:"required,max=128"`
	TaxRFC      *string `schema:"tax_rfc" validate:"required,max=16"`
	TaxStreet   *string `schema:"tax_street" validate:"required,max=128"`
	TaxHood     *string `schema:"tax_hood" validate:"required,max=128"`
	TaxCP       *string `schema:"tax_cp" validate:"required,max=10"`
	TaxLocality *string `schema:"tax_locality" validate:"required,max=128"`
	TaxPayment  *string `schema:"tax_payment" validate:"required,max=2"`

	ConName  *string `schema:"con_name" validate:"required,max=128"`
	ConRole  *string `schema:"con_role" validate:"required,max=96"`
	ConPhone *string `schema:"con_phone" validate:"required,max=13"`
	ConEmail *string `schema:"con_email" validate:"required,email,max=256"`

	ComHours *string `schema:"com_hours" validate:"required,max=128"`
	ComLine  *string `schema:"com_line" validate:"required,max=1024"`
	ComDesc  *string `schema:"com_desc" validate:"required,max=1024"`

	SMFacebook  *string `schema:"sm_facebook" validate:"required,max=512"`
	SMInstagram *string `schema:"sm_instagram" validate:"required,max=512"`
	SMTwitter   *string `schema:"sm_twitter" validate:"required,max=512"`
	SMEmail     *string `schema:"sm_email" validate:"required,email,max=256"`
	SMPhone     *string `schema:"sm_phone" validate:"required,max=13"`
	SMWeb       *string `schema:"sm_web" validate:"required,max=512"`

	SVHaveWifi       *string `schema:"sv_have_wifi" validate:"required,bool"`
	SVHaveAC         *string `schema:"sv_have_ac" validate:"required,bool"`
	SVHaveLiveMusic  *string `schema:"sv_have_live_music" validate:"required,bool"`
	SVHaveDeck       *string `schema:"sv_have_deck" validate:"required,bool"`
	SVHaveLounge     *string `schema:"sv_have_lounge" validate:"required,bool"`
	SVLoungeCapacity *string `schema:"sv_lounge_capacity" validate:"required,integer"`

	Status *string `schema:"status" validate:"required,integer"`
}

type statusInput struct {
	Status *string `schema:"status" validate:"required,integer"`
}

// The parsers below only run after validation has passed.

func integer(s *string) int {
	n, _ := inputval.ParseInteger(*s)
	return n
}

func boolean(s *string) bool {
	b, _ := inputval.ParseBool(*s)
	return b
}

func (in joinInput) model() models.JoinRequest {
	opened, _ := inputval.ParseDate(*in.ComOpenDate)
	return models.JoinRequest{
		InsComercialName: *in.InsComercialName,
		InsAddress:       *in.InsAddress,
		InsHood:          *in.InsHood,
		InsCP:            *in.InsCP,
		InsEmail:         *in.InsEmail,

		ComCapacity:      integer(in.ComCapacity),
		ComMale:          integer(in.ComMale),
		ComFemale:        integer(in.ComFemale),
		ComDisabled:      integer(in.ComDisabled),
		ComOpenDate:      opened,
		ComLicenseStatus: *in.ComLicenseStatus,
		ComLicenseType:   *in.ComLicenseType,
		ComHours:         *in.ComHours,
		ComLine:          *in.ComLine,
		ComDesc:          *in.ComDesc,

		TaxName:     *in.TaxName,
		TaxRFC:      *in.TaxRFC,
		TaxStreet:   *in.TaxStreet,
		TaxHood:     *in.TaxHood,
		TaxCP:       *in.TaxCP,
		TaxLocality: *in.TaxLocality,
		TaxPayment:  *in.TaxPayment,

		ConName:  *in.ConName,
		ConRole:  *in.ConRole,
		ConPhone: *in.ConPhone,
		ConEmail: *in.ConEmail,

		SMFacebook:  *in.SMFacebook,
		SMInstagram: *in.SMInstagram,
		SMTwitter:   *in.SMTwitter,
		SMEmail:     *in.SMEmail,
		SMPhone:     *in.SMPhone,
		SMWeb:       *in.SMWeb,

		SVHaveWifi:       boolean(in.SVHaveWifi),
		SVHaveAC:         boolean(in.SVHaveAC),
		SVHaveLiveMusic:  boolean(in.SVHaveLiveMusic),
		SVHaveDeck:       boolean(in.SVHaveDeck),
		SVHaveLounge:     boolean(in.SVHaveLounge),
		SVLoungeCapacity: integer(in.SVLoungeCapacity),

		Status: integer(in.Status),
	}
}
