package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// QuoteRow is one row of the quotes table. Numeric columns travel as text so
// no precision is lost in either direction.
type QuoteRow struct {
	ID                 uuid.UUID
	ActorID            uuid.UUID
	GuestCount         int32
	StartingAt         pgtype.Timestamptz
	EndingAt           pgtype.Timestamptz
	EffectiveEndingAt  pgtype.Timestamptz
	AddOns             []byte
	DiscountType       string
	DiscountAmount     string
	DiscountPercentage string
	TaxRate            string
	Subtotal           string
	Discounted         string
	Tax                string
	TotalPrice         string
	Breakdown          []byte
	Rates              []byte
	CreatedAt          pgtype.Timestamptz
}

type QuoteListRow struct {
	ID         uuid.UUID
	GuestCount int32
	StartingAt pgtype.Timestamptz
	Subtotal   string
	TotalPrice string
	CreatedAt  pgtype.Timestamptz
}

type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const createQuote = `
INSERT INTO quotes (
    id, actor_id, guest_count, starting_at, ending_at, effective_ending_at,
    add_ons, discount_type, discount_amount, discount_percentage, tax_rate,
    subtotal, discounted, tax, total_price, breakdown, rates, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7::jsonb, $8, $9::numeric, $10::numeric, $11::numeric,
    $12::numeric, $13::numeric, $14::numeric, $15::numeric, $16::jsonb, $17::jsonb,
    COALESCE($18, now())
)
RETURNING created_at`

func (q *Queries) CreateQuote(ctx context.Context, db DBTX, arg QuoteRow) (pgtype.Timestamptz, error) {
	var createdAt pgtype.Timestamptz
	err := db.QueryRow(ctx, createQuote,
		arg.ID, arg.ActorID, arg.GuestCount, arg.StartingAt, arg.EndingAt, arg.EffectiveEndingAt,
		string(arg.AddOns), arg.DiscountType, arg.DiscountAmount, arg.DiscountPercentage, arg.TaxRate,
		arg.Subtotal, arg.Discounted, arg.Tax, arg.TotalPrice, string(arg.Breakdown), string(arg.Rates),
		arg.CreatedAt,
	).Scan(&createdAt)
	return createdAt, err
}

const getQuoteByID = `
SELECT id, actor_id, guest_count, starting_at, ending_at, effective_ending_at,
       add_ons, discount_type, discount_amount::text, discount_percentage::text, tax_rate::text,
       subtotal::text, discounted::text, tax::text, total_price::text, breakdown, rates, created_at
FROM quotes
WHERE id = $1`

func (q *Queries) GetQuoteByID(ctx context.Context, db DBTX, id uuid.UUID) (QuoteRow, error) {
	var r QuoteRow
	err := db.QueryRow(ctx, getQuoteByID, id).Scan(
		&r.ID, &r.ActorID, &r.GuestCount, &r.StartingAt, &r.EndingAt, &r.EffectiveEndingAt,
		&r.AddOns, &r.DiscountType, &r.DiscountAmount, &r.DiscountPercentage, &r.TaxRate,
		&r.Subtotal, &r.Discounted, &r.Tax, &r.TotalPrice, &r.Breakdown, &r.Rates, &r.CreatedAt,
	)
	return r, err
}

const listQuotesByActorFirstPage = `
SELECT id, guest_count, starting_at, subtotal::text, total_price::text, created_at
FROM quotes
WHERE actor_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (q *Queries) ListQuotesByActorFirstPage(ctx context.Context, db DBTX, actorID uuid.UUID, limit int32) ([]QuoteListRow, error) {
	rows, err := db.Query(ctx, listQuotesByActorFirstPage, actorID, limit)
	if err != nil {
		return nil, err
	}
	return collectListRows(rows)
}

const listQuotesByActorKeyset = `
SELECT id, guest_count, starting_at, subtotal::text, total_price::text, created_at
FROM quotes
WHERE actor_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

func (q *Queries) ListQuotesByActorKeyset(ctx context.Context, db DBTX, actorID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]QuoteListRow, error) {
	rows, err := db.Query(ctx, listQuotesByActorKeyset, actorID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, err
	}
	return collectListRows(rows)
}

func collectListRows(rows pgx.Rows) ([]QuoteListRow, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (QuoteListRow, error) {
		var r QuoteListRow
		err := row.Scan(&r.ID, &r.GuestCount, &r.StartingAt, &r.Subtotal, &r.TotalPrice, &r.CreatedAt)
		return r, err
	})
}
