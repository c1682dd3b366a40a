package postgres

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	plannerOptionsTable = "planner_options"
	inquiriesTable      = "inquiries"
)

// PlannerOptions lists options by position, newest first among equal positions.
func (p *PgSQL) PlannerOptions(ctx context.Context, filter domain.PlannerOptionFilter) ([]domain.PlannerOption, error) {
	var w []goqu.Expression
	if filter.Kind != "" {
		w = append(w, goqu.I("kind").Eq(string(filter.Kind)))
	}
	if filter.ActiveOnly {
		w = append(w, goqu.I("active").IsTrue())
	}

	var rows []PgPlannerOption
	if err := p.Builder.From(plannerOptionsTable).
		Where(w...).
		Order(goqu.I("position").Asc(), goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch planner options from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgPlannerOption).ToDomain), nil
}

func (p *PgSQL) PlannerOptionByID(ctx context.Context, id int64) (*domain.PlannerOption, error) {
	var row PgPlannerOption
	found, err := p.Builder.From(plannerOptionsTable).Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch planner option from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StorePlannerOption(ctx context.Context, option domain.PlannerOption) (*domain.PlannerOption, error) {
	var in, out PgPlannerOption
	in.FromDomain(option)
	if _, err := p.Builder.Insert(plannerOptionsTable).
		Rows(in).
		Returning(&PgPlannerOption{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, plannerOptionsTable, "store")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) UpdatePlannerOption(ctx context.Context, option domain.PlannerOption) (*domain.PlannerOption, error) {
	var in, out PgPlannerOption
	in.FromDomain(option)
	in.UpdatedAt = time.Now().UTC()
	found, err := p.Builder.Update(plannerOptionsTable).
		Set(in).
		Where(goqu.I("id").Eq(option.ID)).
		Returning(&PgPlannerOption{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, writeError(err, plannerOptionsTable, "update")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) SetPlannerOptionPosition(ctx context.Context, id int64, position int) error {
	if _, err := p.Builder.Update(plannerOptionsTable).
		Set(goqu.Record{
			"position":   position,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not set planner option position in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeletePlannerOption(ctx context.Context, id int64) (*domain.PlannerOption, error) {
	var row PgPlannerOption
	found, err := p.Builder.Delete(plannerOptionsTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgPlannerOption{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete planner option in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error) {
	var in, out PgInquiry
	in.FromDomain(inquiry)
	if _, err := p.Builder.Insert(inquiriesTable).
		Rows(in).
		Returning(&PgInquiry{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, inquiriesTable, "store")
	}

	return out.ToDomain(), nil
}

// Inquiries lists inquiries in creation order.
func (p *PgSQL) Inquiries(ctx context.Context, status domain.RequestStatus) ([]domain.Inquiry, error) {
	ds := p.Builder.From(inquiriesTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	if status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(status)))
	}

	var rows []PgInquiry
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch inquiries from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgInquiry).ToDomain), nil
}

func (p *PgSQL) InquiryByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	var row PgInquiry
	found, err := p.Builder.From(inquiriesTable).Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch inquiry from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateInquiryStatus(ctx context.Context,
	id int64,
	status domain.RequestStatus) (*domain.Inquiry, error) {
	var row PgInquiry
	found, err := p.Builder.Update(inquiriesTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgInquiry{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update inquiry status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteInquiry(ctx context.Context, id int64) (*domain.Inquiry, error) {
	var row PgInquiry
	found, err := p.Builder.Delete(inquiriesTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgInquiry{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete inquiry in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountInquiries(ctx context.Context, status domain.RequestStatus) (int64, error) {
	ds := p.Builder.From(inquiriesTable)
	if status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(status)))
	}
	n, err := ds.CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count inquiries in pg: %w", err)
	}

	return n, nil
}
