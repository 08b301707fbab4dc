// internal/domain/models/joinrequest.go
package models

import "time"

// Join request statuses. Transitions between them are unrestricted.
const (
	StatusUnattended = 1
	StatusContacted  = 2
	StatusFailed     = 3
	StatusJoined     = 4
)

// IsKnownStatus reports whether s is one of the four tracked statuses.
func IsKnownStatus(s int) bool {
	return s >= StatusUnattended && s <= StatusJoined
}

// JoinRequest is an application from a business to join the chamber.
// Field groups: ins_* establishment, com_* commercial details, tax_* billing,
// con_* contact person, sm_* social media, sv_* services offered.
type JoinRequest struct {
	ID int64 `bson:"_id" json:"id"`

	InsComercialName string `bson:"ins_comercial_name" json:"ins_comercial_name"`
	InsAddress       string `bson:"ins_address" json:"ins_address"`
	InsHood          string `bson:"ins_hood" json:"ins_hood"`
	InsCP            string `bson:"ins_cp" json:"ins_cp"`
	InsEmail         string `bson:"ins_email" json:"ins_email"`

	ComCapacity      int       `bson:"com_capacity" json:"com_capacity"`
	ComMale          int       `bson:"com_male" json:"com_male"`
	ComFemale        int       `bson:"com_female" json:"com_female"`
	ComDisabled      int       `bson:"com_disabled" json:"com_disabled"`
	ComOpenDate      time.Time `bson:"com_open_date" json:"com_open_date"`
	ComLicenseStatus string    `bson:"com_license_status" json:"com_license_status"`
	ComLicenseType   string    `bson:"com_license_type" json:"com_license_type"`
	ComHours         string    `bson:"com_hours" json:"com_hours"`
	ComLine          string    `bson:"com_line" json:"com_line"`
	ComDesc          string    `bson:"com_desc" json:"com_desc"`

	TaxName     string `bson:"tax_name" json:"tax_name"`
	TaxRFC      string `bson:"tax_rfc" json:"tax_rfc"`
	TaxStreet   string `bson:"tax_street" json:"tax_street"`
	TaxHood     string `bson:"tax_hood" json:"tax_hood"`
	TaxCP       string `bson:"tax_cp" json:"tax_cp"`
	TaxLocality string `bson:"tax_locality" json:"tax_locality"`
	TaxPayment  string `bson:"tax_payment" json:"tax_payment"`

	ConName  string `bson:"con_name" json:"con_name"`
	ConRole  string `bson:"con_role" json:"con_role"`
	ConPhone string `bson:"con_phone" json:"con_phone"`
	ConEmail string `bson:"con_email" json:"con_email"`

	SMFacebook  string `bson:"sm_facebook" json:"sm_facebook"`
	SMInstagram string `bson:"sm_instagram" json:"sm_instagram"`
	SMTwitter   string `bson:"sm_twitter" json:"sm_twitter"`
	SMEmail     string `bson:"sm_email" json:"sm_email"`
	SMPhone     string `bson:"sm_phone" json:"sm_phone"`
	SMWeb       string `bson:"sm_web" json:"sm_web"`

	SVHaveWifi       bool `bson:"sv_have_wifi" json:"sv_have_wifi"`
	SVHaveAC         bool `bson:"sv_have_ac" json:"sv_have_ac"`
	SVHaveLiveMusic  bool `bson:"sv_have_live_music" json:"sv_have_live_music"`
	SVHaveDeck       bool `bson:"sv_have_deck" json:"sv_have_deck"`
	SVHaveLounge     bool `bson:"sv_have_lounge" json:"sv_have_lounge"`
	SVLoungeCapacity int  `bson:"sv_lounge_capacity" json:"sv_lounge_capacity"`

	Status int `bson:"status" json:"status"`

	Timestamps `bson:",inline"`
}

// StatusCounts is the aggregate reporting view over join requests.
type StatusCounts struct {
	Received   int64 `json:"received"`
	Unattended int64 `json:"unattended"`
	Contacted  int64 `json:"contacted"`
	Failed     int64 `json:"failed"`
	Joined     int64 `json:"joined"`
}
