package slip_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sheeterrors "asdm-hrms/internal/sheet/errors"
	"asdm-hrms/internal/slip"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSlipService struct {
	generateSlipFn func(ctx context.Context, userID string, req slip.GenerateSlipRequest) (slip.SlipFile, error)
}

func (f *fakeSlipService) GenerateSlip(ctx context.Context, userID string, req slip.GenerateSlipRequest) (slip.SlipFile, error) {
	return f.generateSlipFn(ctx, userID, req)
}

func TestSlipHandler_Generate(t *testing.T) {
	svc := &fakeSlipService{
		generateSlipFn: func(ctx context.Context, userID string, req slip.GenerateSlipRequest) (slip.SlipFile, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, int64(10), req.EmployeeID)
			return slip.SlipFile{Name: "SalarySlip_10_March_2024.pdf", Content: []byte("%PDF-1.3")}, nil
		},
	}

	h := slip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"salaryStructureType":"REGULAR","employeeId":10,"generateMonth":3,"generateYear":2024}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-slips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", "user-1")

	h.Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=SalarySlip_10_March_2024.pdf", w.Header().Get("Content-Disposition"))
}

func TestSlipHandler_Generate_NotAvailable(t *testing.T) {
	svc := &fakeSlipService{
		generateSlipFn: func(ctx context.Context, userID string, req slip.GenerateSlipRequest) (slip.SlipFile, error) {
			return slip.SlipFile{}, sheeterrors.ErrSlipNotAvailable
		},
	}

	h := slip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"salaryStructureType":"REGULAR","employeeId":10,"generateMonth":3,"generateYear":2024}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-slips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", "user-1")

	h.Generate(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var env struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestSlipHandler_Generate_MissingEmployee(t *testing.T) {
	h := slip.NewHandler(&fakeSlipService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"salaryStructureType":"REGULAR","generateMonth":3,"generateYear":2024}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-slips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", "user-1")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
