package sheet

import (
	"math"
	"strconv"
	"strings"

	sheeterrors "asdm-hrms/internal/sheet/errors"
)

// State is the in-memory salary sheet for one (structure type, month,
// year) window: the editable row buffer plus the ordered selection set.
// It is a plain state machine with no I/O; the service layer owns
// locking and upstream calls.
type State struct {
	loaded    bool
	tag       Tag
	rows      []PayrollRow
	fetched   []PayrollRow
	selection []int64
}

func NewState() *State {
	return &State{}
}

func (s *State) Loaded() bool { return s.loaded }
func (s *State) Tag() Tag     { return s.tag }

func (s *State) Rows() []PayrollRow {
	return s.rows
}

// Fetched returns the last server result untouched by edits.
func (s *State) Fetched() []PayrollRow {
	return s.fetched
}

func (s *State) Selection() []int64 {
	return s.selection
}

// Load applies a fetch result. The buffer is replaced only when the
// (month, year) tag changes, or on the first non-empty load; a result
// for the currently loaded tag never overwrites unsaved edits. The
// selection is cleared on every buffer replacement since its
// identifiers belong to the discarded window. Returns whether the
// buffer was replaced.
func (s *State) Load(tag Tag, rows []PayrollRow) bool {
	s.fetched = rows

	if s.loaded && tag == s.tag {
		if len(s.rows) == 0 && len(rows) > 0 {
			s.rows = copyRows(rows)
			return true
		}
		return false
	}

	s.loaded = true
	s.tag = tag
	s.rows = copyRows(rows)
	s.selection = nil
	return true
}

// ApplyFieldEdit replaces a single field of a single row, preserving
// every other field and the row order. rowID is matched against
// breakingRecordId ?? employeeId; a nil rowID falls back to positional
// matching for legacy rows that carry no id at all. Numeric override
// fields coerce empty or unparseable input to nil, never to zero.
func (s *State) ApplyFieldEdit(rowID *int64, index int, field, rawValue string) error {
	i := -1
	if rowID != nil {
		for j := range s.rows {
			if s.rows[j].RowID() == *rowID {
				i = j
				break
			}
		}
	} else if index >= 0 && index < len(s.rows) {
		i = index
	}
	if i < 0 {
		return sheeterrors.ErrRowNotFound
	}

	row := &s.rows[i]
	switch field {
	case FieldAttendance:
		row.Attendance = parseNullableNumber(rawValue)
	case FieldLWPDays:
		row.LWPDays = parseNullableNumber(rawValue)
	case FieldArrear:
		row.Arrear = parseNullableNumber(rawValue)
	case FieldIncomeTax:
		row.IncomeTax = parseNullableNumber(rawValue)
	case FieldOtherDeductions:
		row.OtherDeductions = parseNullableNumber(rawValue)
	case FieldName:
		row.Name = rawValue
	case FieldDesignation:
		row.Designation = rawValue
	default:
		return sheeterrors.ErrUnknownField
	}

	return nil
}

// ToggleAll selects every row in buffer order, or clears the selection.
func (s *State) ToggleAll(checked bool) {
	if !checked {
		s.selection = nil
		return
	}

	ids := make([]int64, len(s.rows))
	for i, row := range s.rows {
		ids[i] = row.RowID()
	}
	s.selection = ids
}

// ToggleOne appends the id to the selection order, or removes it if
// already present. Removal keeps the relative order of the survivors.
func (s *State) ToggleOne(id int64) {
	for i, sel := range s.selection {
		if sel == id {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return
		}
	}
	s.selection = append(s.selection, id)
}

func (s *State) IsSelected(id int64) bool {
	for _, sel := range s.selection {
		if sel == id {
			return true
		}
	}
	return false
}

func (s *State) ClearSelection() {
	s.selection = nil
}

// RowsForSubmit returns the rows the next generate request covers: the
// selected rows when any are selected, otherwise every row. An empty
// selection means "no explicit choice", not "none".
func (s *State) RowsForSubmit() []PayrollRow {
	if len(s.selection) == 0 {
		return s.rows
	}

	rows := make([]PayrollRow, 0, len(s.selection))
	for _, row := range s.rows {
		if s.IsSelected(row.RowID()) {
			rows = append(rows, row)
		}
	}
	return rows
}

func parseNullableNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func copyRows(rows []PayrollRow) []PayrollRow {
	out := make([]PayrollRow, len(rows))
	copy(out, rows)
	return out
}
