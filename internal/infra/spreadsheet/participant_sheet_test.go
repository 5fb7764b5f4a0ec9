package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/TimDev9492/chad-website/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func TestRow_FormatsMissingAndBooleans(t *testing.T) {
	code := int64(10115)
	p := &entity.Participant{
		FirstName:         strPtr("Anna"),
		LastName:          strPtr("Schmidt"),
		NeedsPlaceToSleep: true,
		PostalCode:        &code,
	}

	row := Row(p)

	require.Len(t, row, len(headers))
	assert.Equal(t, "Anna", row[0])
	assert.Equal(t, "Schmidt", row[1])
	assert.Equal(t, "-", row[2])
	assert.Equal(t, "Ja", row[8])
	assert.Equal(t, "Nein", row[9])
	assert.Equal(t, "10115", row[12])
	assert.Equal(t, "-", row[14])
}

func TestParticipantSheetWriter_Write(t *testing.T) {
	participants := []*entity.Participant{
		{FirstName: strPtr("Anna"), Email: strPtr("anna@example.com"), WantsBreakfast: true},
		{FirstName: strPtr("Ben")},
	}

	data, err := NewParticipantSheetWriter().Write(participants)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "anna@example.com", rows[1][2])
	assert.Equal(t, "Ja", rows[1][9])
	assert.Equal(t, "Ben", rows[2][0])

	styleID, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestParticipantSheetWriter_EmptyList(t *testing.T) {
	data, err := NewParticipantSheetWriter().Write(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
