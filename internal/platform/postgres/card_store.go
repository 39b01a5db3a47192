package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tbouvier/leitner-api/internal/domain"
	"github.com/tbouvier/leitner-api/internal/store"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// CardStore implements the store.CardStore interface using a PostgreSQL
// database as the storage backend.
type CardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure CardStore implements store.CardStore interface
var _ store.CardStore = (*CardStore)(nil)

// NewCardStore creates a new PostgreSQL implementation of the CardStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, the process
// default logger is used.
func NewCardStore(db store.DBTX, logger *slog.Logger) *CardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// WithTx returns a new CardStore bound to the given transaction. The
// transaction is created and managed by the caller.
func (s *CardStore) WithTx(tx *sql.Tx) *CardStore {
	return &CardStore{
		db:     tx,
		logger: s.logger,
	}
}

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

const cardColumns = "id, question, answer, tag, category, owner_id, next_review_date"

// scanCard reads one card row. The tag column is nullable; NULL maps to
// the empty string.
func scanCard(row interface{ Scan(dest ...any) error }) (domain.Card, error) {
	var (
		card     domain.Card
		tag      sql.NullString
		category string
	)
	err := row.Scan(&card.ID, &card.Question, &card.Answer, &tag, &category, &card.OwnerID, &card.NextReviewDate)
	if err != nil {
		return domain.Card{}, err
	}

	card.Tag = tag.String
	card.Category, err = domain.ParseCategory(category)
	if err != nil {
		return domain.Card{}, fmt.Errorf("stored category is corrupt: %w", err)
	}
	return card, nil
}

// tagParam converts the optional tag to its nullable column value.
func tagParam(tag string) sql.NullString {
	return sql.NullString{String: tag, Valid: tag != ""}
}

// FindAll implements store.CardStore.FindAll.
func (s *CardStore) FindAll(ctx context.Context, ownerID string, tags []string) ([]domain.Card, error) {
	query := "SELECT " + cardColumns + " FROM cards WHERE owner_id = $1"
	args := []any{ownerID}
	if len(tags) > 0 {
		query += " AND tag = ANY($2)"
		args = append(args, tags)
	}
	query += " ORDER BY next_review_date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.NewStoreError("card", "find_all", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, store.NewStoreError("card", "find_all", "scan failed", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("card", "find_all", "row iteration failed", err)
	}
	return cards, nil
}

// FindByID implements store.CardStore.FindByID.
// Returns store.ErrCardNotFound when the card is absent or foreign-owned.
func (s *CardStore) FindByID(ctx context.Context, id uuid.UUID, ownerID string) (domain.Card, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE id = $1 AND owner_id = $2",
		id, ownerID)

	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Card{}, store.ErrCardNotFound
	}
	if err != nil {
		return domain.Card{}, store.NewStoreError("card", "find_by_id", "query failed", err)
	}
	return card, nil
}

// Save implements store.CardStore.Save.
func (s *CardStore) Save(ctx context.Context, card domain.Card) (domain.Card, error) {
	if err := card.Validate(); err != nil {
		return domain.Card{}, store.NewStoreError("card", "save", "validation failed", store.ErrInvalidEntity)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cards (id, question, answer, tag, category, owner_id, next_review_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID, card.Question, card.Answer, tagParam(card.Tag),
		string(card.Category), card.OwnerID, card.NextReviewDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Card{}, store.ErrDuplicate
		}
		return domain.Card{}, store.NewStoreError("card", "save", "insert failed", err)
	}

	s.logger.Debug("card saved",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", card.OwnerID))
	return card, nil
}

// Update implements store.CardStore.Update.
// Returns store.ErrCardNotFound when no card with card.ID exists.
func (s *CardStore) Update(ctx context.Context, card domain.Card) (domain.Card, error) {
	if err := card.Validate(); err != nil {
		return domain.Card{}, store.NewStoreError("card", "update", "validation failed", store.ErrInvalidEntity)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE cards
		 SET question = $2, answer = $3, tag = $4, category = $5, next_review_date = $6
		 WHERE id = $1 AND owner_id = $7`,
		card.ID, card.Question, card.Answer, tagParam(card.Tag),
		string(card.Category), card.NextReviewDate, card.OwnerID)
	if err != nil {
		return domain.Card{}, store.NewStoreError("card", "update", "update failed", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Card{}, store.NewStoreError("card", "update", "rows affected unavailable", err)
	}
	if affected == 0 {
		return domain.Card{}, store.ErrCardNotFound
	}

	s.logger.Debug("card updated",
		slog.String("card_id", card.ID.String()),
		slog.String("category", card.Category.String()))
	return card, nil
}

// FindCardsForQuiz implements store.CardStore.FindCardsForQuiz.
// The query pre-filters on ownership, the terminal box, and the scheduled
// review date; the core re-applies the eligibility filter on the result.
func (s *CardStore) FindCardsForQuiz(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+cardColumns+` FROM cards
		 WHERE owner_id = $1 AND category <> $2 AND next_review_date <= $3
		 ORDER BY next_review_date, id`,
		ownerID, string(domain.CategoryDone), asOf)
	if err != nil {
		return nil, store.NewStoreError("card", "find_cards_for_quiz", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, store.NewStoreError("card", "find_cards_for_quiz", "scan failed", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("card", "find_cards_for_quiz", "row iteration failed", err)
	}
	return cards, nil
}
