package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	testdb "github.com/behavelab/parley/test/database"
)

func newTestFactory(t *testing.T) (*Factory, *store.Store, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	st := store.New(client)
	pub := events.NewEventPublisher(client.DB())
	return NewFactory(st, pub, nil), st, client
}

type testParticipant struct {
	code      string
	specialty string
	role      string
}

// newTestSession creates a session through its engine and registers the
// participants, leaving the session idle.
func newTestSession(t *testing.T, f *Factory, kind models.ExperimentType, cfg models.ExperimentConfig, participants ...testParticipant) (Engine, string) {
	t.Helper()
	ctx := context.Background()
	eng, err := f.ForType(kind)
	require.NoError(t, err)

	code := fmt.Sprintf("E%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err = eng.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    code,
		ExperimentType: kind,
		Config:         cfg,
	})
	require.NoError(t, err)
	for _, p := range participants {
		_, err := eng.AddParticipant(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: p.code,
			Type:            models.ParticipantAgent,
			SpecialtyShape:  p.specialty,
			Role:            p.role,
		})
		require.NoError(t, err)
	}
	return eng, code
}

func startTestSession(t *testing.T, eng Engine, code string) {
	t.Helper()
	_, err := eng.StartSession(context.Background(), code)
	require.NoError(t, err)
}

func seedTestInventory(t *testing.T, client *database.Client, sessionCode, participantCode string, tags []string) {
	t.Helper()
	ctx := context.Background()
	p, err := client.Participant.Query().
		Where(
			participant.ParticipantCodeEQ(participantCode),
			participant.HasSessionWith(session.SessionCodeEQ(sessionCode)),
		).
		Only(ctx)
	require.NoError(t, err)
	inv, err := p.QueryInventory().Only(ctx)
	require.NoError(t, err)
	require.NoError(t, inv.Update().SetShapesInInventory(tags).Exec(ctx))
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
