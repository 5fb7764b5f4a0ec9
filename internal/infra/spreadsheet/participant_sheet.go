// Package spreadsheet renders the participant list as an xlsx workbook.
package spreadsheet

import (
	"strconv"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Teilnehmerliste"
	FileName    = "data.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	missingValue = "-"
)

var headers = []string{
	"Vorname",
	"Nachname",
	"E-Mail",
	"Telefonnummer",
	"Geschlecht",
	"Geburtsdatum",
	"Pfahl",
	"Gemeinde",
	"Braucht Schlafplatz?",
	"Braucht Frühstück?",
	"Ernährung",
	"Straße und Hausnummer",
	"PLZ",
	"Stadt",
	"Wohnsitz",
}

type participantSheetWriter struct{}

// NewParticipantSheetWriter is the constructor for the excelize backed writer.
func NewParticipantSheetWriter() service.ParticipantSheetWriter {
	return participantSheetWriter{}
}

// Write renders a bold header row followed by one row per participant.
func (participantSheetWriter) Write(participants []*entity.Participant) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1".
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name sheet")
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, errors.Wrap(err, "failed to write header row")
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve header range")
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, boldStyle); err != nil {
		return nil, errors.Wrap(err, "failed to style header row")
	}

	for i, p := range participants {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve row")
		}

		row := Row(p)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}

	return buf.Bytes(), nil
}

// Row formats one participant in header order.
func Row(p *entity.Participant) []string {
	postalCode := missingValue
	if p.PostalCode != nil {
		postalCode = strconv.FormatInt(*p.PostalCode, 10)
	}

	return []string{
		orMissing(p.FirstName),
		orMissing(p.LastName),
		orMissing(p.Email),
		orMissing(p.PhoneNumber),
		orMissing(p.Gender),
		orMissing(p.DateOfBirth),
		orMissing(p.StakeName),
		orMissing(p.WardName),
		yesNo(p.NeedsPlaceToSleep),
		yesNo(p.WantsBreakfast),
		orMissing(p.FoodPreferences),
		orMissing(p.StreetNameAndNumber),
		postalCode,
		orMissing(p.City),
		orMissing(p.CountryOfResidency),
	}
}

func orMissing(s *string) string {
	if s == nil {
		return missingValue
	}

	return *s
}

func yesNo(b bool) string {
	if b {
		return "Ja"
	}

	return "Nein"
}
