package sheet_test

import (
	"testing"

	"asdm-hrms/internal/sheet"
	sheeterrors "asdm-hrms/internal/sheet/errors"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func testRows() []sheet.PayrollRow {
	return []sheet.PayrollRow{
		{EmployeeID: 10, Name: "Anil Baruah", Status: sheet.StatusPending},
		{EmployeeID: 11, BreakingRecordID: int64Ptr(101), Name: "Bina Das", Status: sheet.StatusGenerated},
		{EmployeeID: 12, Name: "Chandan Kalita", Status: sheet.StatusPending},
	}
}

func TestState_Load(t *testing.T) {
	t.Run("first non-empty load populates without tag change", func(t *testing.T) {
		s := sheet.NewState()

		replaced := s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.True(t, replaced)
		assert.True(t, s.Loaded())
		assert.Len(t, s.Rows(), 3)
	})

	t.Run("same tag keeps unsaved edits", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		err := s.ApplyFieldEdit(int64Ptr(10), -1, sheet.FieldAttendance, "22")
		assert.NoError(t, err)

		replaced := s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.False(t, replaced)
		assert.Equal(t, 22.0, *s.Rows()[0].Attendance)
	})

	t.Run("tag change discards edits and selection", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(10), -1, sheet.FieldAttendance, "22"))
		s.ToggleOne(10)

		replaced := s.Load(sheet.Tag{Month: 4, Year: 2024}, testRows())

		assert.True(t, replaced)
		assert.Nil(t, s.Rows()[0].Attendance)
		assert.Empty(t, s.Selection())
	})

	t.Run("returning to old tag does not resurrect discarded edits", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())
		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(10), -1, sheet.FieldAttendance, "22"))

		s.Load(sheet.Tag{Month: 4, Year: 2024}, testRows())
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.Nil(t, s.Rows()[0].Attendance)
	})
}

func TestState_ApplyFieldEdit(t *testing.T) {
	t.Run("empty string coerces to null not zero", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(12), -1, sheet.FieldLWPDays, "5"))
		assert.Equal(t, 5.0, *s.Rows()[2].LWPDays)

		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(12), -1, sheet.FieldLWPDays, ""))
		assert.Nil(t, s.Rows()[2].LWPDays)
	})

	t.Run("unparseable input coerces to null", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(10), -1, sheet.FieldArrear, "abc"))
		assert.Nil(t, s.Rows()[0].Arrear)
	})

	t.Run("matches by breaking record id when present", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		// Row 11 has breaking record 101, so 101 is its identifier.
		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(101), -1, sheet.FieldAttendance, "22"))
		assert.Equal(t, 22.0, *s.Rows()[1].Attendance)
	})

	t.Run("positional fallback when identifier is nil", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.NoError(t, s.ApplyFieldEdit(nil, 2, sheet.FieldIncomeTax, "1500"))
		assert.Equal(t, 1500.0, *s.Rows()[2].IncomeTax)
	})

	t.Run("edit preserves other fields and row order", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(10), -1, sheet.FieldAttendance, "20"))

		rows := s.Rows()
		assert.Equal(t, int64(10), rows[0].EmployeeID)
		assert.Equal(t, "Anil Baruah", rows[0].Name)
		assert.Equal(t, int64(11), rows[1].EmployeeID)
		assert.Equal(t, int64(12), rows[2].EmployeeID)
	})

	t.Run("string field assigns raw value", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.NoError(t, s.ApplyFieldEdit(int64Ptr(10), -1, sheet.FieldDesignation, "Senior Clerk"))
		assert.Equal(t, "Senior Clerk", s.Rows()[0].Designation)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		err := s.ApplyFieldEdit(int64Ptr(10), -1, "netAmount", "999")
		assert.ErrorIs(t, err, sheeterrors.ErrUnknownField)
	})

	t.Run("missing row rejected", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		err := s.ApplyFieldEdit(int64Ptr(999), -1, sheet.FieldAttendance, "22")
		assert.ErrorIs(t, err, sheeterrors.ErrRowNotFound)
	})
}

func TestState_Selection(t *testing.T) {
	t.Run("toggle one preserves insertion order on removal", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		s.ToggleOne(10)
		s.ToggleOne(101)
		s.ToggleOne(12)
		s.ToggleOne(101)

		assert.Equal(t, []int64{10, 12}, s.Selection())
	})

	t.Run("toggle all is idempotent", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		s.ToggleAll(true)
		s.ToggleAll(true)

		assert.Equal(t, []int64{10, 101, 12}, s.Selection())
	})

	t.Run("toggle all false clears regardless of prior state", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		s.ToggleOne(10)
		s.ToggleAll(true)
		s.ToggleAll(false)

		assert.Empty(t, s.Selection())
	})

	t.Run("membership check", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		s.ToggleOne(101)

		assert.True(t, s.IsSelected(101))
		assert.False(t, s.IsSelected(10))
	})
}

func TestState_RowsForSubmit(t *testing.T) {
	t.Run("empty selection submits all rows", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		assert.Len(t, s.RowsForSubmit(), 3)
	})

	t.Run("partial selection submits exactly the selected rows", func(t *testing.T) {
		s := sheet.NewState()
		s.Load(sheet.Tag{Month: 3, Year: 2024}, testRows())

		s.ToggleOne(101)
		s.ToggleOne(12)

		rows := s.RowsForSubmit()
		assert.Len(t, rows, 2)
		assert.Equal(t, int64(11), rows[0].EmployeeID)
		assert.Equal(t, int64(12), rows[1].EmployeeID)
	})
}
