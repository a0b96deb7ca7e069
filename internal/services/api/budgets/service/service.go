// Package service contains budgets workflows
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/gaql"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/budgets/domain"
)

// Service defines the budgets service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the budgets service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs a budgets service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("budgets.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

const listFields = `SELECT
  campaign_budget.id,
  campaign_budget.name,
  campaign_budget.amount_micros,
  campaign_budget.delivery_method,
  campaign_budget.explicitly_shared,
  campaign_budget.reference_count,
  campaign_budget.status
FROM campaign_budget`

// List returns campaign budgets in the account
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit == 0 {
		limit = 50
	}
	if limit, err = validate.Limit(limit, 0); err != nil {
		return nil, err
	}

	q := listFields + fmt.Sprintf("\nORDER BY campaign_budget.id\nLIMIT %d", limit)
	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "budgets.list")
	}

	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		row, err := decodeRow(r)
		if err != nil {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

// Get fetches one budget by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (*domain.Row, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	budgetID, err := validate.NumericID(in.BudgetID, "budget_id")
	if err != nil {
		return nil, err
	}

	q := listFields + "\n" + gaql.Where(gaql.EqID("campaign_budget.id", budgetID)) + "\nLIMIT 1"
	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "budgets.get")
	}
	if len(rows) == 0 {
		return nil, perr.NotFoundf("budget %s not found", budgetID)
	}
	return decodeRow(rows[0])
}

// Create makes a campaign budget. Amount converts from currency units to
// the API's micro representation
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	delivery := in.DeliveryMethod
	if delivery == "" {
		delivery = "STANDARD"
	}
	if delivery, err = validate.Enum("delivery_method", delivery); err != nil {
		return nil, err
	}

	op := client.Operation{"campaignBudgetOperation": map[string]any{
		"create": map[string]any{
			"name":             in.Name,
			"amountMicros":     strconv.FormatInt(client.Micros(in.Amount), 10),
			"deliveryMethod":   delivery,
			"explicitlyShared": in.Shared,
		},
	}}
	return s.mutateOne(ctx, cid, op, "budgets.create")
}

// Update patches budget name or amount
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	budgetID, err := validate.NumericID(in.BudgetID, "budget_id")
	if err != nil {
		return nil, err
	}

	update := map[string]any{
		"resourceName": client.ResourceName("campaignBudgets", cid, budgetID),
	}
	var mask []string
	if in.Name != "" {
		update["name"] = in.Name
		mask = append(mask, "name")
	}
	if in.Amount > 0 {
		update["amountMicros"] = strconv.FormatInt(client.Micros(in.Amount), 10)
		mask = append(mask, "amount_micros")
	}
	if len(mask) == 0 {
		return nil, perr.Validationf("update requires at least one of name, amount")
	}

	op := client.Operation{"campaignBudgetOperation": map[string]any{
		"update":     update,
		"updateMask": strings.Join(mask, ","),
	}}
	return s.mutateOne(ctx, cid, op, "budgets.update")
}

func (s *Svc) mutateOne(ctx context.Context, cid string, op client.Operation, opName string) (*domain.MutateResult, error) {
	resp, err := s.ads.Mutate(ctx, cid, []client.Operation{op}, client.MutateOptions{})
	if err != nil {
		return nil, perr.WithOp(err, opName)
	}
	if len(resp.Results) == 0 {
		return nil, perr.Unexpectedf("mutate returned no result")
	}
	return &domain.MutateResult{ResourceName: resp.Results[0].ResourceName}, nil
}

func decodeRow(r client.Row) (*domain.Row, error) {
	var b struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		AmountMicros     string `json:"amountMicros"`
		DeliveryMethod   string `json:"deliveryMethod"`
		ExplicitlyShared bool   `json:"explicitlyShared"`
		ReferenceCount   string `json:"referenceCount"`
		Status           string `json:"status"`
	}
	if ok, err := r.Decode("campaignBudget", &b); err != nil || !ok {
		return nil, perr.Unexpectedf("malformed budget row")
	}
	row := &domain.Row{
		ID:             b.ID,
		Name:           b.Name,
		DeliveryMethod: b.DeliveryMethod,
		Shared:         b.ExplicitlyShared,
		Status:         b.Status,
	}
	if b.AmountMicros != "" {
		if micros, convErr := strconv.ParseInt(b.AmountMicros, 10, 64); convErr == nil {
			row.Amount = client.Units(micros)
		}
	}
	if b.ReferenceCount != "" {
		if n, convErr := strconv.ParseInt(b.ReferenceCount, 10, 64); convErr == nil {
			row.ReferenceCount = n
		}
	}
	return row, nil
}
