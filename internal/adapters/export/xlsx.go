// Package export writes the full city table to spreadsheet formats.
package export

import (
	"io"
	"trainer-market-service/internal/domain"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

const SheetName = "Cities"

// Header row, in column order.
var Columns = []string{
	"City", "State", "Gyms", "Trainers", "TrainerDensity",
	"BoutiqueGyms", "BigBoxGyms", "CommunityGyms", "RentableVenues",
	"ViolentCrimePer1k", "PropertyCrimePer1k", "CrimeIndex",
	"BidenPct", "TrumpPct", "Mayor",
	"TotalCrimePer1k", "GymDensity", "Lean",
}

// WriteXLSX writes records (raw and derived columns) as a single-sheet workbook.
// Rows keep the order of records.
func WriteXLSX(w io.Writer, records []domain.CityRecord) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "export xlsx: add sheet")
	}

	header := sheet.AddRow()
	for _, c := range Columns {
		header.AddCell().SetString(c)
	}

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().SetString(r.City)
		row.AddCell().SetString(r.State)
		row.AddCell().SetInt(r.Gyms)
		row.AddCell().SetInt(r.Trainers)
		row.AddCell().SetFloat(r.TrainerDensity)
		row.AddCell().SetInt(r.BoutiqueGyms)
		row.AddCell().SetInt(r.BigBoxGyms)
		row.AddCell().SetInt(r.CommunityGyms)
		row.AddCell().SetFloat(r.RentableVenues)
		row.AddCell().SetFloat(r.ViolentCrimePer1k)
		row.AddCell().SetFloat(r.PropertyCrimePer1k)
		row.AddCell().SetInt(r.CrimeIndex)
		row.AddCell().SetFloat(r.BidenPct)
		row.AddCell().SetFloat(r.TrumpPct)
		row.AddCell().SetString(r.Mayor)
		row.AddCell().SetFloat(r.TotalCrimePer1k)
		row.AddCell().SetFloat(r.GymDensity)
		row.AddCell().SetString(string(r.Lean))
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export xlsx: write workbook")
	}
	return nil
}
