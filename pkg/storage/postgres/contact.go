package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const contactsTable = "contact_submissions"

func (p *PgSQL) StoreContact(ctx context.Context,
	contact domain.ContactSubmission) (*domain.ContactSubmission, error) {
	var in, out PgContact
	in.FromDomain(contact)
	if _, err := p.Builder.Insert(contactsTable).
		Rows(in).
		Returning(&PgContact{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, contactsTable, "store")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) Contacts(ctx context.Context, unreadOnly bool) ([]domain.ContactSubmission, error) {
	ds := p.Builder.From(contactsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	if unreadOnly {
		ds = ds.Where(goqu.I("read").IsFalse())
	}

	var rows []PgContact
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch contacts from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgContact).ToDomain), nil
}

func (p *PgSQL) ContactByID(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	var row PgContact
	found, err := p.Builder.From(contactsTable).Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch contact from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) MarkContactRead(ctx context.Context, id int64, read bool) (*domain.ContactSubmission, error) {
	var row PgContact
	found, err := p.Builder.Update(contactsTable).
		Set(goqu.Record{
			"read":       read,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgContact{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark contact read in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteContact(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	var row PgContact
	found, err := p.Builder.Delete(contactsTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgContact{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete contact in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountContacts(ctx context.Context, unreadOnly bool) (int64, error) {
	ds := p.Builder.From(contactsTable)
	if unreadOnly {
		ds = ds.Where(goqu.I("read").IsFalse())
	}
	n, err := ds.CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count contacts in pg: %w", err)
	}

	return n, nil
}
