package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kridsada-n/acctrack/pkg/types"
)

// Singleton rows are written with INSERT OR REPLACE against the fixed
// id, so N saves leave exactly one row. All columns are written on
// every save (full replace, not a patch) and updated_at is refreshed by
// the engine.

// SaveBusinessProfile upserts the singleton business row. Nested detail
// objects are serialized to JSON text columns.
func (s *Store) SaveBusinessProfile(p *types.BusinessProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return err
	}

	individual, err := json.Marshal(p.IndividualDetails)
	if err != nil {
		return fmt.Errorf("marshaling individual details: %w", err)
	}
	juristic, err := json.Marshal(p.JuristicDetails)
	if err != nil {
		return fmt.Errorf("marshaling juristic details: %w", err)
	}
	vat, err := json.Marshal(p.VATDetails)
	if err != nil {
		return fmt.Errorf("marshaling vat details: %w", err)
	}

	_, err = db.Exec(`
		INSERT OR REPLACE INTO business_data (
			id, business_type, registration_number, office_type, branch,
			individual_details, juristic_details, business_name,
			business_description, registration_date, vat_registered,
			vat_details, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		types.SingletonID, p.BusinessType, p.RegistrationNumber, p.OfficeType,
		nullable(p.Branch), string(individual), string(juristic),
		p.BusinessName, p.BusinessDescription, p.RegistrationDate,
		boolToInt(p.VATRegistered), string(vat))
	if err != nil {
		return fmt.Errorf("saving business data: %w", err)
	}
	return nil
}

// BusinessProfile reads the singleton business row. A missing row is
// not an error: the result is nil. A blob column that no longer parses
// is reported as data corruption and the row is left untouched.
func (s *Store) BusinessProfile() (*types.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`
		SELECT id, business_type, registration_number, office_type, branch,
		       individual_details, juristic_details, business_name,
		       business_description, registration_date, vat_registered,
		       vat_details, created_at, updated_at
		FROM business_data WHERE id = ? ORDER BY updated_at DESC LIMIT 1`,
		types.SingletonID)

	var p types.BusinessProfile
	var regNumber, officeType, branch, name, desc, regDate sql.NullString
	var individual, juristic, vat sql.NullString
	var vatRegistered sql.NullInt64
	err = row.Scan(&p.ID, &p.BusinessType, &regNumber, &officeType, &branch,
		&individual, &juristic, &name, &desc, &regDate, &vatRegistered,
		&vat, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading business data: %w", err)
	}

	p.RegistrationNumber = regNumber.String
	p.OfficeType = officeType.String
	p.Branch = branch.String
	p.BusinessName = name.String
	p.BusinessDescription = desc.String
	p.RegistrationDate = regDate.String
	p.VATRegistered = vatRegistered.Int64 != 0

	if err := unmarshalBlob(individual, &p.IndividualDetails); err != nil {
		return nil, fmt.Errorf("individual details: %w", err)
	}
	if err := unmarshalBlob(juristic, &p.JuristicDetails); err != nil {
		return nil, fmt.Errorf("juristic details: %w", err)
	}
	if err := unmarshalBlob(vat, &p.VATDetails); err != nil {
		return nil, fmt.Errorf("vat details: %w", err)
	}
	return &p, nil
}

// SaveContactAddress upserts the singleton contact row.
func (s *Store) SaveContactAddress(a *types.ContactAddress) error {
	if err := a.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR REPLACE INTO contact_data (
			id, building, room_number, floor, village, house_number, moo,
			soi, road, sub_district, district, province, country,
			postal_code, phone_number, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		types.SingletonID, nullable(a.Building), nullable(a.RoomNumber),
		nullable(a.Floor), nullable(a.Village), a.HouseNumber,
		nullable(a.Moo), nullable(a.Soi), nullable(a.Road),
		a.SubDistrict, a.District, a.Province, a.Country,
		a.PostalCode, a.PhoneNumber)
	if err != nil {
		return fmt.Errorf("saving contact data: %w", err)
	}
	return nil
}

// ContactAddress reads the singleton contact row, nil when absent.
func (s *Store) ContactAddress() (*types.ContactAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`
		SELECT id, building, room_number, floor, village, house_number,
		       moo, soi, road, sub_district, district, province, country,
		       postal_code, phone_number, created_at, updated_at
		FROM contact_data WHERE id = ? ORDER BY updated_at DESC LIMIT 1`,
		types.SingletonID)

	var a types.ContactAddress
	var building, roomNumber, floor, village, moo, soi, road sql.NullString
	err = row.Scan(&a.ID, &building, &roomNumber, &floor, &village,
		&a.HouseNumber, &moo, &soi, &road, &a.SubDistrict, &a.District,
		&a.Province, &a.Country, &a.PostalCode, &a.PhoneNumber,
		&a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading contact data: %w", err)
	}

	a.Building = building.String
	a.RoomNumber = roomNumber.String
	a.Floor = floor.String
	a.Village = village.String
	a.Moo = moo.String
	a.Soi = soi.String
	a.Road = road.String
	return &a, nil
}

// unmarshalBlob parses a JSON text column into dst. NULL and empty are
// treated as an empty object; anything unparseable is data corruption.
func unmarshalBlob(col sql.NullString, dst any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(col.String), dst); err != nil {
		return types.ErrDataCorruption
	}
	return nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
