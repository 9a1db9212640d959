package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/models"
)

func TestFormatTimer(t *testing.T) {
	result := FormatTimer(models.TimerInfo{TimeRemaining: 1052, ExperimentStatus: models.TimerActive})
	assert.Equal(t, "Time remaining: 17m 32s (status: active)", result)
}

func TestFormatInventory_SortedCounts(t *testing.T) {
	result := FormatInventory([]string{"square", "circle", "circle", "star"})
	assert.Equal(t, "Inventory: 2x circle, 1x square, 1x star", result)
}

func TestFormatInventory_Empty(t *testing.T) {
	assert.Equal(t, "Inventory: empty", FormatInventory(nil))
}

func TestFormatOrders_IndicesMatchFulfillArgs(t *testing.T) {
	result := FormatOrders([]string{"circle,square", "star,square"}, 3)
	assert.Contains(t, result, "Orders (3 completed)")
	assert.Contains(t, result, "[0] circle,square")
	assert.Contains(t, result, "[1] star,square")
}

func TestFormatOrders_Empty(t *testing.T) {
	assert.Contains(t, FormatOrders(nil, 0), "none open")
}

func TestFormatProductionQueue(t *testing.T) {
	result := FormatProductionQueue([]map[string]any{
		{"status": "in_progress", "quantity": 2, "shape": "circle", "expected_completion": "2026-08-25T10:00:00Z"},
		{"status": "queued", "quantity": 1, "shape": "star"},
	})
	assert.Contains(t, result, "in_progress: 2x circle (ready 2026-08-25T10:00:00Z)")
	assert.Contains(t, result, "queued: 1x star")
}

func TestFormatPendingOffers_Hints(t *testing.T) {
	sent := []map[string]any{{
		"short_id": "SAB12-001", "offer_type": "buy", "quantity": 2, "shape": "star",
		"price_per_unit": 20, "proposer": "Alice", "recipient": "Bob",
	}}
	received := []map[string]any{
		{
			// Alice buys: needs 2*20=40 money, has 30.
			"short_id": "SAB12-002", "offer_type": "sell", "quantity": 2, "shape": "circle",
			"price_per_unit": 20, "proposer": "Bob", "recipient": "Alice", "buyer": "Alice", "seller": "Bob",
		},
		{
			// Alice sells: needs 3 squares, holds 1.
			"short_id": "SAB12-003", "offer_type": "buy", "quantity": 3, "shape": "square",
			"price_per_unit": 18, "proposer": "Bob", "recipient": "Alice", "buyer": "Bob", "seller": "Alice",
		},
	}

	result := FormatPendingOffers("Alice", sent, received, 30, []string{"square"})
	assert.Contains(t, result, "SENT SAB12-001")
	assert.Contains(t, result, "to/from Bob")
	assert.Contains(t, result, "RECEIVED SAB12-002")
	assert.Contains(t, result, "WARNING: accepting needs 40 money, you have 30")
	assert.Contains(t, result, "WARNING: accepting needs 3x square, you hold 1")
}

func TestFormatPendingOffers_NoHintWhenAffordable(t *testing.T) {
	received := []map[string]any{{
		"short_id": "SAB12-004", "offer_type": "sell", "quantity": 1, "shape": "circle",
		"price_per_unit": 20, "proposer": "Bob", "buyer": "Alice", "seller": "Bob",
	}}
	result := FormatPendingOffers("Alice", nil, received, 100, nil)
	assert.NotContains(t, result, "WARNING")
}

func TestFormatUnreadMessages_GroupsConversations(t *testing.T) {
	bob := "me"
	msgs := []*ent.Message{
		{Sender: "Carol", Recipient: &bob, Content: "second from Carol"},
		{Sender: "Alice", Recipient: &bob, Content: "hi"},
		{Sender: "Alice", Content: "announcement"},
	}
	result := FormatUnreadMessages(msgs)
	assert.Contains(t, result, "Unread messages (3)")
	assert.Contains(t, result, "From Alice:\n    hi")
	assert.Contains(t, result, "From Carol:\n    second from Carol")
	assert.Contains(t, result, "Broadcasts:\n    Alice: announcement")
}

func TestFormatUnreadMessages_Empty(t *testing.T) {
	assert.Equal(t, "Unread messages: none\n", FormatUnreadMessages(nil))
}

func TestFormatFailures(t *testing.T) {
	assert.Empty(t, FormatFailures(nil))

	result := FormatFailures([]string{"create_trade_offer: InvalidPrice"})
	assert.Contains(t, result, "Recent failed actions")
	assert.Contains(t, result, "- create_trade_offer: InvalidPrice")
}

func TestFormatParticipants_AwarenessExtras(t *testing.T) {
	money := 120
	list := []models.ParticipantSummary{
		{ParticipantCode: "Alice", LoginStatus: "logged_in", Money: &money},
		{ParticipantCode: "Bob", LoginStatus: "logged_out"},
	}
	result := FormatParticipants("Bob", list)
	assert.Contains(t, result, "Alice (logged_in) money=120")
	assert.NotContains(t, result, "Bob (logged_out)")
}

func TestParticipantCodes_ExcludesSelf(t *testing.T) {
	list := []models.ParticipantSummary{
		{ParticipantCode: "Carol"}, {ParticipantCode: "Alice"}, {ParticipantCode: "Bob"},
	}
	assert.Equal(t, []string{"Alice", "Carol"}, ParticipantCodes("Bob", list))
}
