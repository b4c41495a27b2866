package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/prajeet74/fire-calculator/internal/model"
)

func doRequest(t *testing.T, method, path string, body []byte) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.SetRequestURI("http://localhost" + path)
	req.Header.SetMethod(method)
	if body != nil {
		req.SetBody(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	Handler(ctx)
	return ctx
}

func planBody(t *testing.T, plan model.Plan) []byte {
	t.Helper()
	body, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal plan: %v", err)
	}
	return body
}

func testPlan() model.Plan {
	return model.Plan{
		CurrentAge:            28,
		RetirementAge:         45,
		CurrentSavings:        1000000,
		MonthlyIncome:         100000,
		SavingsRatePct:        40,
		InvestmentReturnPct:   7,
		SafeWithdrawalRatePct: 4,
		Expenses: []model.ExpenseInput{
			{Name: "Living", Kind: model.KindMonthly, Amount: 50000, InflationPct: 4},
		},
	}
}

func TestProjectionEndpoint(t *testing.T) {
	ctx := doRequest(t, "POST", "/v1/projection", planBody(t, testPlan()))

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", got, ctx.Response.Body())
	}

	var resp ProjectionResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Aggregate.TotalAnnualCost != 600000 {
		t.Fatalf("TotalAnnualCost = %.2f, want 600000", resp.Aggregate.TotalAnnualCost)
	}
	if len(resp.Projection.Points) != 18 {
		t.Fatalf("series length = %d, want 18", len(resp.Projection.Points))
	}
	if resp.Projection.Points[0].FireNumber != 15000000 {
		t.Fatalf("offset-0 fire number = %.2f, want 15000000", resp.Projection.Points[0].FireNumber)
	}
}

func TestProjectionEndpoint_InvalidPlan(t *testing.T) {
	plan := testPlan()
	plan.SafeWithdrawalRatePct = 0

	ctx := doRequest(t, "POST", "/v1/projection", planBody(t, plan))

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Field != "safe_withdrawal_rate_pct" {
		t.Fatalf("error field = %q, want safe_withdrawal_rate_pct", resp.Field)
	}
}

func TestProjectionEndpoint_MethodAndRoute(t *testing.T) {
	if got := doRequest(t, "GET", "/v1/projection", nil).Response.StatusCode(); got != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("GET status = %d, want 405", got)
	}
	if got := doRequest(t, "GET", "/nope", nil).Response.StatusCode(); got != fasthttp.StatusNotFound {
		t.Fatalf("unknown route status = %d, want 404", got)
	}
	if got := doRequest(t, "GET", "/healthz", nil).Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("healthz status = %d, want 200", got)
	}
}
