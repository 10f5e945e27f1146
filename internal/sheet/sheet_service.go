package sheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"asdm-hrms/internal/events"
	"asdm-hrms/internal/messaging/kafka"
	sheeterrors "asdm-hrms/internal/sheet/errors"
	"asdm-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CoreClient is the slice of the HRMS core API this module consumes.
type CoreClient interface {
	FetchEmployeeList(ctx context.Context, structureType string, month, year int) ([]PayrollRow, error)
	GenerateSalary(ctx context.Context, payload GenerateSalaryPayload) (GenerateReport, error)
}

//go:generate mockgen -source=sheet_service.go -destination=mock/sheet_service_mock.go -package=mock
type Service interface {
	Load(ctx context.Context, userID string, req LoadSheetRequest) (SheetView, error)
	View(ctx context.Context, userID, structureType string) (SheetView, error)
	EditField(ctx context.Context, userID string, req EditFieldRequest) (SheetView, error)
	UpdateSelection(ctx context.Context, userID string, req SelectionRequest) (SheetView, error)
	Generate(ctx context.Context, userID string, req GenerateSheetRequest) (GenerateOutcome, error)
	Export(ctx context.Context, userID string, req ExportSheetRequest) (ExportFile, error)
	RowStatus(userID, structureType string, employeeID int64) (string, error)
}

// session is one user's sheet for one structure type. requested tracks
// the most recently asked-for window so a slow fetch that resolves
// after the user moved on is discarded instead of clobbering the buffer.
type session struct {
	structureType string
	requested     Tag
	state         *State
}

type service struct {
	db     *sql.DB
	client CoreClient
	outbox kafka.OutboxRepository

	mu       sync.Mutex
	sessions map[string]*session
}

func NewService(client CoreClient) Service {
	return &service{
		client:   client,
		sessions: make(map[string]*session),
	}
}

func NewServiceWithOutbox(db *sql.DB, client CoreClient, outbox kafka.OutboxRepository) Service {
	return &service{
		db:       db,
		client:   client,
		outbox:   outbox,
		sessions: make(map[string]*session),
	}
}

func sessionKey(userID, structureType string) string {
	return userID + "|" + structureType
}

func (s *service) getOrCreate(userID, structureType string) *session {
	key := sessionKey(userID, structureType)
	sess, ok := s.sessions[key]
	if !ok {
		sess = &session{
			structureType: structureType,
			state:         NewState(),
		}
		s.sessions[key] = sess
	}
	return sess
}

func (s *service) Load(ctx context.Context, userID string, req LoadSheetRequest) (SheetView, error) {
	tag := Tag{Month: req.GenerateMonth, Year: req.GenerateYear}

	s.mu.Lock()
	sess := s.getOrCreate(userID, req.SalaryStructureType)
	sess.requested = tag
	s.mu.Unlock()

	rows, err := s.client.FetchEmployeeList(ctx, req.SalaryStructureType, tag.Month, tag.Year)
	if err != nil {
		return SheetView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.requested != tag {
		// A newer load superseded this one while the fetch was in
		// flight; drop the stale result.
		return viewOf(sess), nil
	}

	sess.state.Load(tag, rows)
	return viewOf(sess), nil
}

func (s *service) View(ctx context.Context, userID, structureType string) (SheetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey(userID, structureType)]
	if !ok || !sess.state.Loaded() {
		return SheetView{}, sheeterrors.ErrSheetNotLoaded
	}

	return viewOf(sess), nil
}

func (s *service) EditField(ctx context.Context, userID string, req EditFieldRequest) (SheetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey(userID, req.SalaryStructureType)]
	if !ok || !sess.state.Loaded() {
		return SheetView{}, sheeterrors.ErrSheetNotLoaded
	}

	if err := sess.state.ApplyFieldEdit(req.RowID, req.RowIndex, req.Field, req.Value); err != nil {
		return SheetView{}, err
	}

	return viewOf(sess), nil
}

func (s *service) UpdateSelection(ctx context.Context, userID string, req SelectionRequest) (SheetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey(userID, req.SalaryStructureType)]
	if !ok || !sess.state.Loaded() {
		return SheetView{}, sheeterrors.ErrSheetNotLoaded
	}

	switch {
	case req.All != nil:
		sess.state.ToggleAll(*req.All)
	case req.RowID != nil:
		sess.state.ToggleOne(*req.RowID)
	default:
		return SheetView{}, sheeterrors.ErrUnknownField
	}

	return viewOf(sess), nil
}

func (s *service) Generate(ctx context.Context, userID string, req GenerateSheetRequest) (GenerateOutcome, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionKey(userID, req.SalaryStructureType)]
	if !ok || !sess.state.Loaded() {
		s.mu.Unlock()
		return GenerateOutcome{}, sheeterrors.ErrSheetNotLoaded
	}

	rows := copyRows(sess.state.RowsForSubmit())
	tag := sess.state.Tag()
	s.mu.Unlock()

	if len(rows) == 0 {
		return GenerateOutcome{}, sheeterrors.ErrNoRowsToGenerate
	}

	payload := BuildGeneratePayload(req.SalaryStructureType, tag, rows)

	report, err := s.client.GenerateSalary(ctx, payload)
	if err != nil {
		return GenerateOutcome{}, err
	}

	outcome := ClassifyReport(report)

	if outcome.Level == LevelSuccess {
		s.mu.Lock()
		sess.state.ClearSelection()
		s.mu.Unlock()

		// No refetch after submit. Row statuses go stale until the next
		// load, which keeps the sheet view stable right after submission.
		s.recordGeneratedEvent(ctx, userID, req.SalaryStructureType, tag, outcome)
	}

	return outcome, nil
}

func (s *service) recordGeneratedEvent(ctx context.Context, userID, structureType string, tag Tag, outcome GenerateOutcome) {
	if s.outbox == nil || s.db == nil {
		return
	}

	logger := contextutil.GetLogger(ctx, zap.L()).Named("sheet.service")

	event := events.SalaryGeneratedEvent{
		EventType:           events.SalaryGeneratedEventType,
		SalaryStructureType: structureType,
		GenerateMonth:       tag.Month,
		GenerateYear:        tag.Year,
		SuccessCount:        outcome.SuccessCount,
		FailedCount:         outcome.FailedCount,
		GeneratedBy:         userID,
		OccurredAt:          time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("marshal salary generated event failed", zap.Error(err))
		return
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("begin outbox tx failed", zap.Error(err))
		return
	}
	defer tx.Rollback()

	err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "salary_sheet",
		AggregateID:   structureType,
		EventType:     events.SalaryGeneratedEventType,
		Topic:         events.SalaryGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		logger.Error("create outbox event failed", zap.Error(err))
		return
	}

	if err := tx.Commit(); err != nil {
		logger.Error("commit outbox tx failed", zap.Error(err))
	}
}

func (s *service) Export(ctx context.Context, userID string, req ExportSheetRequest) (ExportFile, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionKey(userID, req.SalaryStructureType)]
	if !ok || !sess.state.Loaded() {
		s.mu.Unlock()
		return ExportFile{}, sheeterrors.ErrSheetNotLoaded
	}

	// Prefer the live buffer so unsaved edits make it into the report.
	rows := sess.state.Rows()
	if len(rows) == 0 {
		rows = sess.state.Fetched()
	}
	tag := sess.state.Tag()
	s.mu.Unlock()

	if len(rows) == 0 {
		return ExportFile{}, sheeterrors.ErrNothingToExport
	}

	return BuildSalaryReport(rows, tag)
}

func (s *service) RowStatus(userID, structureType string, employeeID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey(userID, structureType)]
	if !ok || !sess.state.Loaded() {
		return "", sheeterrors.ErrSheetNotLoaded
	}

	for _, row := range sess.state.Rows() {
		if row.EmployeeID == employeeID {
			return row.Status, nil
		}
	}

	return "", sheeterrors.ErrRowNotFound
}

func viewOf(sess *session) SheetView {
	tag := sess.state.Tag()
	return SheetView{
		SalaryStructureType: sess.structureType,
		GenerateMonth:       tag.Month,
		GenerateYear:        tag.Year,
		EmployeeList:        sess.state.Rows(),
		Selection:           sess.state.Selection(),
	}
}
