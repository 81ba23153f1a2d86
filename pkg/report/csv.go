// Package report flattens API records into semicolon-delimited CSV files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/WesselPinew/forticare-api-v3/pkg/forticare"
)

// Delimiter used for all report files.
const Delimiter = ';'

// AssetsToCSV writes one row per asset to path, overwriting any existing
// file. Column order matches the header.
func AssetsToCSV(assets []forticare.Asset, path string) error {
	records := [][]string{
		{"Serial Number", "Description", "Model", "Decommissioned", "Register Date"},
	}
	for _, a := range assets {
		records = append(records, []string{
			a.SerialNumber,
			a.Description,
			a.ProductModel,
			fmt.Sprintf("%t", a.IsDecommissioned),
			a.RegistrationDate,
		})
	}
	return writeRecords(records, path)
}

// WarrantySupportsToCSV writes one row per support contract to path,
// overwriting any existing file. An empty or nil slice produces a
// header-only file.
func WarrantySupportsToCSV(supports []forticare.WarrantySupport, path string) error {
	records := [][]string{
		{"Support type", "Support level", "Expiration date"},
	}
	for _, ws := range supports {
		records = append(records, []string{ws.TypeDesc, ws.LevelDesc, ws.EndDate})
	}
	return writeRecords(records, path)
}

func writeRecords(records [][]string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = Delimiter
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
