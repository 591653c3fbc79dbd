package types

// SingletonID is the fixed row id of singleton records. Business and
// contact data each hold at most one row, addressed by this id and
// updated by full replace.
const SingletonID = "default"

// Business classification values.
const (
	BusinessTypeIndividual = "individual"
	BusinessTypeJuristic   = "juristic"
)

// IndividualDetails carries the sub-type of an individual registration.
// Stored as a JSON blob inside the business row.
type IndividualDetails struct {
	Type string `json:"type,omitempty"`
}

// JuristicDetails carries the sub-type of a juristic registration.
type JuristicDetails struct {
	Type string `json:"type,omitempty"`
}

// VATDetails carries optional VAT registration detail.
type VATDetails struct {
	VATRegistrationDate string `json:"vatRegistrationDate,omitempty"`
}

// BusinessProfile is the singleton business registration record.
// Timestamps are engine-managed and reported as stored.
type BusinessProfile struct {
	ID                  string            `json:"id,omitempty"`
	BusinessType        string            `json:"businessType"`
	RegistrationNumber  string            `json:"registrationNumber"`
	OfficeType          string            `json:"officeType"`
	Branch              string            `json:"branch,omitempty"`
	IndividualDetails   IndividualDetails `json:"individualDetails"`
	JuristicDetails     JuristicDetails   `json:"juristicDetails"`
	BusinessName        string            `json:"businessName"`
	BusinessDescription string            `json:"businessDescription"`
	RegistrationDate    string            `json:"registrationDate"`
	VATRegistered       bool              `json:"vatRegistered"`
	VATDetails          VATDetails        `json:"vatDetails"`
	CreatedAt           string            `json:"createdAt,omitempty"`
	UpdatedAt           string            `json:"updatedAt,omitempty"`
}

// Validate checks the fields a save requires.
func (p *BusinessProfile) Validate() error {
	if p.BusinessType == "" {
		return ErrInvalidArgument
	}
	return nil
}
