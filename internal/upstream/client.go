package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"asdm-hrms/internal/sheet"
	"asdm-hrms/internal/shared/apperror"
	"asdm-hrms/internal/slip"
)

// Client talks to the HRMS core API, which owns all payroll
// computation. It implements sheet.CoreClient and slip.CoreClient.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchEmployeeList returns the per-employee payroll rows for one
// (structure type, month, year) window. A missing parameter resolves to
// an empty successful result without touching the network, so partially
// filled filters never produce spurious calls.
func (c *Client) FetchEmployeeList(ctx context.Context, structureType string, month, year int) ([]sheet.PayrollRow, error) {
	if structureType == "" || month == 0 || year == 0 {
		return []sheet.PayrollRow{}, nil
	}

	req := employeeListRequest{
		SalaryStructureType: structureType,
		GenerateMonth:       month,
		GenerateYear:        year,
	}

	var resp employeeListResponse
	if err := c.postJSON(ctx, "/employee-list", req, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		return nil, upstreamError(resp.Message)
	}

	return resp.EmployeeList, nil
}

func (c *Client) GenerateSalary(ctx context.Context, payload sheet.GenerateSalaryPayload) (sheet.GenerateReport, error) {
	var resp generateSalaryResponse
	if err := c.postJSON(ctx, "/generate-salary", payload, &resp); err != nil {
		return sheet.GenerateReport{}, err
	}

	return resp.SucessReport, nil
}

func (c *Client) FetchSalarySlip(ctx context.Context, employeeID int64, month, year int) ([]slip.SlipRecord, error) {
	req := salarySlipRequest{
		EmployeeID:    employeeID,
		GenerateMonth: month,
		GenerateYear:  year,
	}

	var resp salarySlipResponse
	if err := c.postJSON(ctx, "/salary-slip", req, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		return nil, upstreamError(resp.Message)
	}

	return resp.Data, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.Wrap(err,
			apperror.CodeUpstreamError,
			"The payroll core service is unavailable",
			http.StatusBadGateway,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// Surface the core's own message when it sends one.
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message != "" {
			return upstreamError(errBody.Message)
		}
		return upstreamError(fmt.Sprintf("payroll core returned status %d", resp.StatusCode))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func upstreamError(message string) error {
	if message == "" {
		message = "The payroll core service rejected the request"
	}
	return apperror.New(apperror.CodeUpstreamError, message, http.StatusBadGateway)
}
