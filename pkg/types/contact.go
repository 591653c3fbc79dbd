package types

// ContactAddress is the singleton registered-address record. House
// number, sub-district, district, province, country, postal code and
// phone number are required; the remaining address parts are optional.
type ContactAddress struct {
	ID          string `json:"id,omitempty"`
	Building    string `json:"building,omitempty"`
	RoomNumber  string `json:"roomNumber,omitempty"`
	Floor       string `json:"floor,omitempty"`
	Village     string `json:"village,omitempty"`
	HouseNumber string `json:"houseNumber"`
	Moo         string `json:"moo,omitempty"`
	Soi         string `json:"soi,omitempty"`
	Road        string `json:"road,omitempty"`
	SubDistrict string `json:"subDistrict"`
	District    string `json:"district"`
	Province    string `json:"province"`
	Country     string `json:"country"`
	PostalCode  string `json:"postalCode"`
	PhoneNumber string `json:"phoneNumber"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Validate checks that the required address fields are present.
func (a *ContactAddress) Validate() error {
	switch "" {
	case a.HouseNumber, a.SubDistrict, a.District, a.Province, a.Country, a.PostalCode, a.PhoneNumber:
		return ErrInvalidArgument
	}
	return nil
}
