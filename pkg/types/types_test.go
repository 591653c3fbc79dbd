package types

import (
	"errors"
	"testing"
)

func TestDocumentValidate(t *testing.T) {
	d := Document{Kind: DocKindQuotation, Number: "QT-1", CustomerName: "Acme"}
	if err := d.Validate(); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	if d.Status != DocStatusDraft {
		t.Fatalf("empty status not defaulted: %q", d.Status)
	}

	cases := []struct {
		name string
		doc  Document
		want error
	}{
		{"unknown kind", Document{Kind: "receipt", Number: "1", CustomerName: "A"}, ErrUnknownDocumentKind},
		{"missing number", Document{Kind: DocKindInvoice, CustomerName: "A"}, ErrInvalidArgument},
		{"missing customer", Document{Kind: DocKindInvoice, Number: "1"}, ErrInvalidArgument},
		{"unknown status", Document{Kind: DocKindInvoice, Number: "1", CustomerName: "A", Status: "archived"}, ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.doc.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestStorageSettingsValidate(t *testing.T) {
	if err := DefaultStorageSettings().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}

	s := StorageSettings{StorageType: StorageTypeDocument}
	if err := s.Validate(); err != nil {
		t.Fatalf("document type rejected: %v", err)
	}

	s = StorageSettings{StorageType: "ftp"}
	if err := s.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown type: err = %v", err)
	}

	// Interval bounds only apply when backups are on.
	s = StorageSettings{StorageType: StorageTypeSQLite, AutoBackup: false, BackupInterval: 0}
	if err := s.Validate(); err != nil {
		t.Fatalf("disabled backup with zero interval rejected: %v", err)
	}
	s.AutoBackup = true
	if err := s.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero interval with backup on: err = %v", err)
	}
	s.BackupInterval = MaxBackupIntervalHours + 1
	if err := s.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("oversized interval: err = %v", err)
	}
}

func TestProductPatchEmpty(t *testing.T) {
	if !(ProductPatch{}).Empty() {
		t.Fatal("zero patch not empty")
	}
	stock := 3
	if (ProductPatch{Stock: &stock}).Empty() {
		t.Fatal("patch with a field reported empty")
	}
}

func TestContactAddressValidate(t *testing.T) {
	a := ContactAddress{
		HouseNumber: "1", SubDistrict: "s", District: "d", Province: "p",
		Country: "c", PostalCode: "10200", PhoneNumber: "02-111-2222",
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}

	a.Country = ""
	if err := a.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("missing country: err = %v", err)
	}
}
