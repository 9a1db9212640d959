package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/models"
	testdb "github.com/behavelab/parley/test/database"
)

func newTestStore(t *testing.T) (*Store, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return New(client), client
}

type testParticipant struct {
	code      string
	specialty string
	role      string
}

// createTestSession creates a session with participants registered, leaving
// it in idle state.
func createTestSession(t *testing.T, st *Store, kind models.ExperimentType, cfg models.ExperimentConfig, participants ...testParticipant) string {
	t.Helper()
	ctx := context.Background()
	code := fmt.Sprintf("T%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    code,
		ExperimentType: kind,
		Config:         cfg,
	})
	require.NoError(t, err)
	for _, p := range participants {
		_, err := st.Participants.Add(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: p.code,
			Type:            models.ParticipantAgent,
			SpecialtyShape:  p.specialty,
			Role:            p.role,
		})
		require.NoError(t, err)
	}
	return code
}

// activateTestSession walks the session through setup_complete into
// session_active.
func activateTestSession(t *testing.T, st *Store, code string) {
	t.Helper()
	ctx := context.Background()
	_, err := st.Sessions.UpdateStatus(ctx, code, session.StatusSetupComplete)
	require.NoError(t, err)
	_, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionActive)
	require.NoError(t, err)
}

func getTestParticipant(t *testing.T, client *database.Client, sessionCode, participantCode string) *ent.Participant {
	t.Helper()
	p, err := client.Participant.Query().
		Where(
			participant.ParticipantCodeEQ(participantCode),
			participant.HasSessionWith(session.SessionCodeEQ(sessionCode)),
		).
		Only(context.Background())
	require.NoError(t, err)
	return p
}

func seedInventory(t *testing.T, client *database.Client, sessionCode, participantCode string, tags []string) {
	t.Helper()
	p := getTestParticipant(t, client, sessionCode, participantCode)
	inv, err := p.QueryInventory().Only(context.Background())
	require.NoError(t, err)
	require.NoError(t, inv.Update().SetShapesInInventory(tags).Exec(context.Background()))
}

func inventoryTags(t *testing.T, client *database.Client, sessionCode, participantCode string) []string {
	t.Helper()
	p := getTestParticipant(t, client, sessionCode, participantCode)
	inv, err := p.QueryInventory().Only(context.Background())
	require.NoError(t, err)
	return inv.ShapesInInventory
}

func setMoney(t *testing.T, client *database.Client, sessionCode, participantCode string, money int) {
	t.Helper()
	p := getTestParticipant(t, client, sessionCode, participantCode)
	require.NoError(t, p.Update().SetMoney(money).Exec(context.Background()))
}

func setOrders(t *testing.T, client *database.Client, sessionCode, participantCode string, orders []string) {
	t.Helper()
	p := getTestParticipant(t, client, sessionCode, participantCode)
	require.NoError(t, p.Update().SetOrders(orders).Exec(context.Background()))
}

// shapeFactoryConfig is the literal baseline configuration used across the
// ShapeFactory tests.
func shapeFactoryConfig() models.ExperimentConfig {
	return models.ExperimentConfig{
		models.KeyStartingMoney:    300,
		models.KeySpecialtyCost:    10,
		models.KeyRegularCost:      25,
		models.KeyMinTradePrice:    15,
		models.KeyMaxTradePrice:    35,
		models.KeyShapesPerOrder:   4,
		models.KeyIncentiveMoney:   50,
		models.KeyMaxProductionNum: 6,
		models.KeyProductionTime:   5,
	}
}
