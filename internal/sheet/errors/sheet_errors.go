package sheeterrors

import (
	"net/http"

	"asdm-hrms/internal/shared/apperror"
)

var (
	ErrSheetNotLoaded = apperror.New(
		apperror.CodeInvalidState,
		"Salary sheet has not been loaded for this period",
		http.StatusConflict,
	)
	ErrRowNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee row not found in the current sheet",
		http.StatusNotFound,
	)
	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown editable field",
		http.StatusBadRequest,
	)
	ErrNoRowsToGenerate = apperror.New(
		apperror.CodeInvalidInput,
		"No employee rows available for salary generation",
		http.StatusBadRequest,
	)
	ErrNothingToExport = apperror.New(
		apperror.CodeInvalidInput,
		"No salary data available to export",
		http.StatusBadRequest,
	)
	ErrSlipNotAvailable = apperror.New(
		apperror.CodeInvalidState,
		"Salary slip is only available after the salary has been generated",
		http.StatusConflict,
	)
)
