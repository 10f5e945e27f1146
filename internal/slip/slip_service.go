package slip

import (
	"context"
	"net/http"
	"sync"

	sheeterrors "asdm-hrms/internal/sheet/errors"
	"asdm-hrms/internal/shared/apperror"
)

// CoreClient fetches finalized slip data from the HRMS core.
type CoreClient interface {
	FetchSalarySlip(ctx context.Context, employeeID int64, month, year int) ([]SlipRecord, error)
}

// StatusSource reports the current generation status of one employee's
// sheet row. Slips exist only once the row has been generated.
type StatusSource interface {
	RowStatus(userID, structureType string, employeeID int64) (string, error)
}

var ErrSlipInProgress = apperror.New(
	apperror.CodeConflict,
	"A slip is already being generated for this employee",
	http.StatusConflict,
)

var ErrSlipEmpty = apperror.New(
	apperror.CodeNotFound,
	"No salary slip found for this employee and period",
	http.StatusNotFound,
)

//go:generate mockgen -source=slip_service.go -destination=mock/slip_service_mock.go -package=mock
type Service interface {
	GenerateSlip(ctx context.Context, userID string, req GenerateSlipRequest) (SlipFile, error)
}

type service struct {
	client CoreClient
	status StatusSource

	mu   sync.Mutex
	busy map[int64]bool
}

func NewService(client CoreClient, status StatusSource) Service {
	return &service{
		client: client,
		status: status,
		busy:   make(map[int64]bool),
	}
}

// GenerateSlip fetches one employee's finalized slip and renders it as
// a printable PDF. Busy state is tracked per employee so slips for
// different rows can be produced concurrently while duplicate triggers
// on the same row are rejected.
func (s *service) GenerateSlip(ctx context.Context, userID string, req GenerateSlipRequest) (SlipFile, error) {
	const generatedStatus = "generated"

	status, err := s.status.RowStatus(userID, req.SalaryStructureType, req.EmployeeID)
	if err != nil {
		return SlipFile{}, err
	}
	if status != generatedStatus {
		return SlipFile{}, sheeterrors.ErrSlipNotAvailable
	}

	s.mu.Lock()
	if s.busy[req.EmployeeID] {
		s.mu.Unlock()
		return SlipFile{}, ErrSlipInProgress
	}
	s.busy[req.EmployeeID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.busy, req.EmployeeID)
		s.mu.Unlock()
	}()

	records, err := s.client.FetchSalarySlip(ctx, req.EmployeeID, req.GenerateMonth, req.GenerateYear)
	if err != nil {
		return SlipFile{}, err
	}
	if len(records) == 0 {
		return SlipFile{}, ErrSlipEmpty
	}

	content, err := renderSlipPDF(records[0])
	if err != nil {
		return SlipFile{}, err
	}

	return SlipFile{
		Name:    slipFileName(records[0]),
		Content: content,
	}, nil
}
