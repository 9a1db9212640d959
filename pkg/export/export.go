// Package export renders a session's results for researchers: one CSV per
// entity, or a single XLSX workbook with a sheet per entity plus summary
// statistics. Exports read through the store only; they never mutate.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
)

// Exportable entities. Votes come from the session config rather than their
// own table, but researchers consume them the same way.
const (
	EntityParticipants = "participants"
	EntityMessages     = "messages"
	EntityTransactions = "transactions"
	EntityInvestments  = "investments"
	EntityRankings     = "rankings"
	EntityGuesses      = "guesses"
	EntityVotes        = "votes"
)

// Entities lists every exportable entity in sheet order.
var Entities = []string{
	EntityParticipants,
	EntityMessages,
	EntityTransactions,
	EntityInvestments,
	EntityRankings,
	EntityGuesses,
	EntityVotes,
}

// Exporter renders session data. Safe for concurrent use.
type Exporter struct {
	store *store.Store
}

// New creates an Exporter over a store.
func New(st *store.Store) *Exporter {
	return &Exporter{store: st}
}

// table is one rendered entity: a header row plus data rows, all strings.
type table struct {
	name   string
	header []string
	rows   [][]string
}

// WriteCSV renders one entity of a session as CSV. Unknown entities are an
// InvalidState fault so the transport can answer 400 rather than 500.
func (e *Exporter) WriteCSV(ctx context.Context, w io.Writer, sessionCode, entity string) error {
	tbl, err := e.table(ctx, sessionCode, entity)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.WriteAll(tbl.rows); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func (e *Exporter) table(ctx context.Context, sessionCode, entity string) (*table, error) {
	// Resolve the session first so a bad code fails uniformly for every
	// entity, including config-backed ones.
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}

	switch entity {
	case EntityParticipants:
		return e.participantsTable(ctx, sessionCode)
	case EntityMessages:
		return e.messagesTable(ctx, sessionCode)
	case EntityTransactions:
		return e.transactionsTable(ctx, sessionCode)
	case EntityInvestments:
		return e.investmentsTable(ctx, sessionCode)
	case EntityRankings:
		return e.rankingsTable(ctx, sessionCode)
	case EntityGuesses:
		return e.guessesTable(ctx, sessionCode)
	case EntityVotes:
		return votesTable(sess), nil
	}
	return nil, fault.Errorf(fault.InvalidState, "unknown export entity %q", entity)
}

func (e *Exporter) participantsTable(ctx context.Context, sessionCode string) (*table, error) {
	participants, err := e.store.Participants.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	tbl := &table{
		name:   EntityParticipants,
		header: []string{"participant_code", "type", "role", "specialty_shape", "money", "orders_completed", "login_status", "created_at"},
	}
	for _, p := range participants {
		tbl.rows = append(tbl.rows, []string{
			p.ParticipantCode,
			p.Type.String(),
			p.Role,
			p.SpecialtyShape,
			strconv.Itoa(p.Money),
			strconv.Itoa(p.OrdersCompleted),
			p.LoginStatus.String(),
			stamp(p.CreatedAt),
		})
	}
	return tbl, nil
}

func (e *Exporter) messagesTable(ctx context.Context, sessionCode string) (*table, error) {
	messages, err := e.store.Messages.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	tbl := &table{
		name:   EntityMessages,
		header: []string{"message_id", "sender", "recipient", "type", "delivered_status", "content", "created_at"},
	}
	for _, m := range messages {
		recipient := "all"
		if m.Recipient != nil {
			recipient = *m.Recipient
		}
		tbl.rows = append(tbl.rows, []string{
			m.ID,
			m.Sender,
			recipient,
			m.Type,
			m.DeliveredStatus.String(),
			m.Content,
			stamp(m.CreatedAt),
		})
	}
	return tbl, nil
}

func (e *Exporter) transactionsTable(ctx context.Context, sessionCode string) (*table, error) {
	trades, err := e.store.Trades.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	tbl := &table{
		name:   EntityTransactions,
		header: []string{"short_id", "proposer", "recipient", "seller", "buyer", "offer_type", "shape", "quantity", "price_per_unit", "status", "created_at", "resolved_at"},
	}
	for _, t := range trades {
		resolved := ""
		if t.ResolvedAt != nil {
			resolved = stamp(*t.ResolvedAt)
		}
		tbl.rows = append(tbl.rows, []string{
			t.ShortID,
			t.Proposer,
			t.Recipient,
			t.Seller,
			t.Buyer,
			t.OfferType.String(),
			t.Shape,
			strconv.Itoa(t.Quantity),
			strconv.Itoa(t.PricePerUnit),
			t.Status.String(),
			stamp(t.CreatedAt),
			resolved,
		})
	}
	return tbl, nil
}

func (e *Exporter) investmentsTable(ctx context.Context, sessionCode string) (*table, error) {
	investments, err := e.store.Investments.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	tbl := &table{
		name:   EntityInvestments,
		header: []string{"participant_code", "price", "decision_type", "created_at"},
	}
	for _, inv := range investments {
		tbl.rows = append(tbl.rows, []string{
			participantCode(inv.Edges.Participant),
			strconv.FormatFloat(inv.Price, 'f', -1, 64),
			inv.DecisionType.String(),
			stamp(inv.CreatedAt),
		})
	}
	return tbl, nil
}

func (e *Exporter) rankingsTable(ctx context.Context, sessionCode string) (*table, error) {
	submissions, err := e.store.Rankings.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	tbl := &table{
		name:   EntityRankings,
		header: []string{"participant_code", "essay_id", "rank", "reasoning", "submitted_at"},
	}
	for _, sub := range submissions {
		code := participantCode(sub.Edges.Participant)
		for _, r := range sub.EssayRankings {
			tbl.rows = append(tbl.rows, []string{
				code,
				fmt.Sprint(r["essay_id"]),
				fmt.Sprint(r["rank"]),
				fmt.Sprint(r["reasoning"]),
				stamp(sub.CreatedAt),
			})
		}
	}
	return tbl, nil
}

func (e *Exporter) guessesTable(ctx context.Context, sessionCode string) (*table, error) {
	guesses, err := e.store.Guesses.History(ctx, sessionCode, 0)
	if err != nil {
		return nil, err
	}
	tbl := &table{
		name:   EntityGuesses,
		header: []string{"participant_code", "round", "guess_text", "correct", "created_at"},
	}
	for _, g := range guesses {
		tbl.rows = append(tbl.rows, []string{
			participantCode(g.Edges.Participant),
			strconv.Itoa(g.Round),
			g.GuessText,
			strconv.FormatBool(g.Correct),
			stamp(g.CreatedAt),
		})
	}
	return tbl, nil
}

func votesTable(sess *ent.Session) *table {
	votes := models.ExperimentConfig(sess.ExperimentConfig).Votes()
	codes := make([]string, 0, len(votes))
	for code := range votes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	tbl := &table{
		name:   EntityVotes,
		header: []string{"participant_code", "candidate_name"},
	}
	for _, code := range codes {
		tbl.rows = append(tbl.rows, []string{code, votes[code]})
	}
	return tbl
}

// participantCode reads the code off an eager-loaded participant edge. Rows
// whose participant was since deleted render empty rather than failing the
// whole export.
func participantCode(p *ent.Participant) string {
	if p == nil {
		return ""
	}
	return p.ParticipantCode
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
