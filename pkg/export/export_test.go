package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	testdb "github.com/behavelab/parley/test/database"
)

func newTestExporter(t *testing.T) (*Exporter, *store.Store) {
	t.Helper()
	client := testdb.NewTestClient(t)
	st := store.New(client)
	return New(st), st
}

// seedSession creates an active session with agent participants.
func seedSession(t *testing.T, st *store.Store, kind models.ExperimentType, codes ...string) string {
	t.Helper()
	ctx := context.Background()
	code := fmt.Sprintf("X%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    code,
		ExperimentType: kind,
	})
	require.NoError(t, err)
	shapes := []string{"circle", "square", "triangle"}
	for i, pc := range codes {
		_, err := st.Participants.Add(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: pc,
			Type:            models.ParticipantAgent,
			SpecialtyShape:  shapes[i%len(shapes)],
		})
		require.NoError(t, err)
	}
	_, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSetupComplete)
	require.NoError(t, err)
	_, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionActive)
	require.NoError(t, err)
	return code
}

func parseCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV_Messages(t *testing.T) {
	exp, st := newTestExporter(t)
	ctx := context.Background()
	code := seedSession(t, st, models.ExperimentShapeFactory, "Alice", "Bob")

	bob := "Bob"
	_, err := st.Messages.Create(ctx, code, "Alice", &bob, "want a circle?", models.MessageTypeChat)
	require.NoError(t, err)
	_, err = st.Messages.Create(ctx, code, "Bob", nil, "selling squares", models.MessageTypeChat)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exp.WriteCSV(ctx, &buf, code, EntityMessages))

	records := parseCSV(t, &buf)
	require.Len(t, records, 3, "header plus two messages")
	assert.Equal(t, []string{"message_id", "sender", "recipient", "type", "delivered_status", "content", "created_at"}, records[0])
	assert.Equal(t, "Bob", records[1][2], "direct recipient is kept")
	assert.Equal(t, "want a circle?", records[1][5], "rows come oldest first")
	assert.Equal(t, "all", records[2][2], "broadcasts render as all")
}

func TestWriteCSV_Transactions(t *testing.T) {
	exp, st := newTestExporter(t)
	ctx := context.Background()
	code := seedSession(t, st, models.ExperimentShapeFactory, "Alice", "Bob")

	_, err := st.Trades.CreateOffer(ctx, code, models.TradeOfferRequest{
		Proposer:     "Alice",
		Recipient:    "Bob",
		OfferType:    "sell",
		Shape:        "circle",
		Quantity:     2,
		PricePerUnit: 20,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exp.WriteCSV(ctx, &buf, code, EntityTransactions))

	records := parseCSV(t, &buf)
	require.Len(t, records, 2)
	row := records[1]
	assert.True(t, strings.HasPrefix(row[0], "S"), "short id starts with S: %s", row[0])
	assert.Equal(t, "Alice", row[1])
	assert.Equal(t, "Alice", row[3], "sell offers make the proposer the seller")
	assert.Equal(t, "proposed", row[9])
	assert.Empty(t, row[11], "unresolved offers have no resolved_at")
}

func TestWriteCSV_Votes(t *testing.T) {
	exp, st := newTestExporter(t)
	ctx := context.Background()
	code := seedSession(t, st, models.ExperimentHiddenProfiles, "P1", "P2")

	require.NoError(t, st.Sessions.SetVote(ctx, code, "P2", "Candidate_B"))
	require.NoError(t, st.Sessions.SetVote(ctx, code, "P1", "Candidate_A"))

	var buf bytes.Buffer
	require.NoError(t, exp.WriteCSV(ctx, &buf, code, EntityVotes))

	records := parseCSV(t, &buf)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"P1", "Candidate_A"}, records[1], "rows sort by participant code")
	assert.Equal(t, []string{"P2", "Candidate_B"}, records[2])
}

func TestWriteCSV_Faults(t *testing.T) {
	exp, st := newTestExporter(t)
	ctx := context.Background()
	code := seedSession(t, st, models.ExperimentShapeFactory, "Alice")

	var buf bytes.Buffer
	err := exp.WriteCSV(ctx, &buf, code, "budgets")
	assert.Equal(t, fault.InvalidState, fault.KindOf(err))

	err = exp.WriteCSV(ctx, &buf, "NOSUCH1", EntityMessages)
	assert.Equal(t, fault.SessionNotFound, fault.KindOf(err))
}

func TestWriteWorkbook(t *testing.T) {
	exp, st := newTestExporter(t)
	ctx := context.Background()
	code := seedSession(t, st, models.ExperimentShapeFactory, "Alice", "Bob")

	_, err := st.Messages.Create(ctx, code, "Alice", nil, "hello everyone", models.MessageTypeChat)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exp.WriteWorkbook(ctx, &buf, code))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	want := append(append([]string{}, Entities...), summarySheet)
	assert.Equal(t, want, f.GetSheetList())

	rows, err := f.GetRows(EntityMessages)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hello everyone", rows[1][5])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 4, "header plus three metrics")
	assert.Equal(t, []string{"metric", "count", "mean", "median", "stdev"}, summary[0])
	assert.Equal(t, "participant_money", summary[1][0])
	assert.Equal(t, "2", summary[1][1], "both participants count toward the money series")
	assert.Equal(t, "completed_trade_price", summary[2][0])
	assert.Equal(t, "0", summary[2][1], "no completed trades yet")
}
