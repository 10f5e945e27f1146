package master_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"asdm-hrms/internal/master"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeMasterService struct {
	getMasterDataFn func(ctx context.Context) (master.MasterDataResponse, error)
}

func (f *fakeMasterService) GetMasterData(ctx context.Context) (master.MasterDataResponse, error) {
	return f.getMasterDataFn(ctx)
}

func TestMasterHandler_GetMasterData(t *testing.T) {
	svc := &fakeMasterService{
		getMasterDataFn: func(ctx context.Context) (master.MasterDataResponse, error) {
			return master.MasterDataResponse{
				SalaryStructureTypes: []master.StructureTypeResponse{{Type: "REGULAR"}},
				FYMaster: []master.FinancialYearResponse{
					{ID: 7, Label: "2024-2025", StartMonth: 4, Enabled: true},
				},
			}, nil
		},
	}

	h := master.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/salary-structure-types", nil)

	h.GetMasterData(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Ok   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)

	var resp master.MasterDataResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "REGULAR", resp.SalaryStructureTypes[0].Type)
	assert.Equal(t, "2024-2025", resp.FYMaster[0].Label)
}

func TestMasterHandler_GetMasterData_Error(t *testing.T) {
	svc := &fakeMasterService{
		getMasterDataFn: func(ctx context.Context) (master.MasterDataResponse, error) {
			return master.MasterDataResponse{}, assert.AnError
		},
	}

	h := master.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/salary-structure-types", nil)

	h.GetMasterData(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
