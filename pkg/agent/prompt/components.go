package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/models"
)

// FormatTimer renders the authoritative timer line.
func FormatTimer(t models.TimerInfo) string {
	mins := t.TimeRemaining / 60
	secs := t.TimeRemaining % 60
	return fmt.Sprintf("Time remaining: %dm %02ds (status: %s)", mins, secs, t.ExperimentStatus)
}

// FormatInventory renders shape tags as sorted counts: "2x circle, 1x star".
func FormatInventory(tags []string) string {
	if len(tags) == 0 {
		return "Inventory: empty"
	}
	counts := map[string]int{}
	for _, tag := range tags {
		counts[tag]++
	}
	shapes := make([]string, 0, len(counts))
	for shape := range counts {
		shapes = append(shapes, shape)
	}
	sort.Strings(shapes)

	parts := make([]string, 0, len(shapes))
	for _, shape := range shapes {
		parts = append(parts, fmt.Sprintf("%dx %s", counts[shape], shape))
	}
	return "Inventory: " + strings.Join(parts, ", ")
}

// FormatOrders renders open orders with their fulfil indices.
func FormatOrders(orders []string, completed int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Orders (%d completed):\n", completed)
	if len(orders) == 0 {
		sb.WriteString("  none open\n")
		return sb.String()
	}
	for i, order := range orders {
		fmt.Fprintf(&sb, "  [%d] %s\n", i, order)
	}
	return sb.String()
}

// FormatProductionQueue renders queue entries oldest first.
func FormatProductionQueue(entries []map[string]any) string {
	if len(entries) == 0 {
		return "Production queue: empty\n"
	}
	var sb strings.Builder
	sb.WriteString("Production queue:\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "  %s: %dx %s", str(e, "status"), num(e, "quantity"), str(e, "shape"))
		if done := str(e, "expected_completion"); done != "" {
			fmt.Fprintf(&sb, " (ready %s)", done)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatPendingOffers renders open trade offers split by direction, with a
// hint when accepting or settling an offer would fail on current holdings.
func FormatPendingOffers(self string, sent, received []map[string]any, money int, inventory []string) string {
	if len(sent) == 0 && len(received) == 0 {
		return "Pending trade offers: none\n"
	}
	held := map[string]int{}
	for _, tag := range inventory {
		held[tag]++
	}

	var sb strings.Builder
	sb.WriteString("Pending trade offers:\n")
	for _, offer := range sent {
		fmt.Fprintf(&sb, "  SENT %s — you %s %dx %s at %d each to/from %s (awaiting their response; cancel_trade_offer to withdraw)\n",
			str(offer, "short_id"), str(offer, "offer_type"), num(offer, "quantity"),
			str(offer, "shape"), num(offer, "price_per_unit"), counterparty(offer, self))
	}
	for _, offer := range received {
		fmt.Fprintf(&sb, "  RECEIVED %s — %s wants to %s %dx %s at %d each (respond_to_trade_offer accept/reject)",
			str(offer, "short_id"), str(offer, "proposer"), str(offer, "offer_type"),
			num(offer, "quantity"), str(offer, "shape"), num(offer, "price_per_unit"))
		if hint := acceptHint(offer, self, money, held); hint != "" {
			fmt.Fprintf(&sb, " — WARNING: %s", hint)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// acceptHint warns when the participant's side of the settlement would fail.
func acceptHint(offer map[string]any, self string, money int, held map[string]int) string {
	total := num(offer, "quantity") * num(offer, "price_per_unit")
	if str(offer, "buyer") == self && money < total {
		return fmt.Sprintf("accepting needs %d money, you have %d", total, money)
	}
	if str(offer, "seller") == self {
		shape := str(offer, "shape")
		if held[shape] < num(offer, "quantity") {
			return fmt.Sprintf("accepting needs %dx %s, you hold %d", num(offer, "quantity"), shape, held[shape])
		}
	}
	return ""
}

// FormatRecentTrades renders the latest settled trades.
func FormatRecentTrades(trades []map[string]any) string {
	if len(trades) == 0 {
		return "Recent trades: none\n"
	}
	var sb strings.Builder
	sb.WriteString("Recent trades:\n")
	for _, t := range trades {
		fmt.Fprintf(&sb, "  %s sold %dx %s to %s at %d each\n",
			str(t, "seller"), num(t, "quantity"), str(t, "shape"),
			str(t, "buyer"), num(t, "price_per_unit"))
	}
	return sb.String()
}

// FormatUnreadMessages groups unread messages by conversation, broadcasts
// last, each conversation oldest first.
func FormatUnreadMessages(msgs []*ent.Message) string {
	if len(msgs) == 0 {
		return "Unread messages: none\n"
	}

	direct := map[string][]*ent.Message{}
	var broadcasts []*ent.Message
	var senders []string
	for _, m := range msgs {
		if m.Recipient == nil {
			broadcasts = append(broadcasts, m)
			continue
		}
		if _, seen := direct[m.Sender]; !seen {
			senders = append(senders, m.Sender)
		}
		direct[m.Sender] = append(direct[m.Sender], m)
	}
	sort.Strings(senders)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Unread messages (%d):\n", len(msgs))
	for _, sender := range senders {
		fmt.Fprintf(&sb, "  From %s:\n", sender)
		for _, m := range direct[sender] {
			fmt.Fprintf(&sb, "    %s\n", m.Content)
		}
	}
	if len(broadcasts) > 0 {
		sb.WriteString("  Broadcasts:\n")
		for _, m := range broadcasts {
			fmt.Fprintf(&sb, "    %s: %s\n", m.Sender, m.Content)
		}
	}
	return sb.String()
}

// FormatFailures renders the failure FIFO, oldest first.
func FormatFailures(failures []string) string {
	if len(failures) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Recent failed actions (do not repeat them unchanged):\n")
	for _, f := range failures {
		fmt.Fprintf(&sb, "  - %s\n", f)
	}
	return sb.String()
}

// FormatParticipants renders the other participants, with money and order
// progress when the session's awareness dashboard exposes them.
func FormatParticipants(self string, list []models.ParticipantSummary) string {
	var sb strings.Builder
	sb.WriteString("Participants:\n")
	others := 0
	for _, p := range list {
		if p.ParticipantCode == self {
			continue
		}
		others++
		fmt.Fprintf(&sb, "  %s (%s)", p.ParticipantCode, p.LoginStatus)
		if p.Money != nil {
			fmt.Fprintf(&sb, " money=%d", *p.Money)
		}
		if p.OrdersCompleted != nil {
			fmt.Fprintf(&sb, " orders_completed=%d", *p.OrdersCompleted)
		}
		if p.ProductionCount != nil {
			fmt.Fprintf(&sb, " produced=%d", *p.ProductionCount)
		}
		sb.WriteString("\n")
	}
	if others == 0 {
		sb.WriteString("  you are alone in this session\n")
	}
	return sb.String()
}

// ParticipantCodes lists the other participants' codes, sorted.
func ParticipantCodes(self string, list []models.ParticipantSummary) []string {
	codes := make([]string, 0, len(list))
	for _, p := range list {
		if p.ParticipantCode != self {
			codes = append(codes, p.ParticipantCode)
		}
	}
	sort.Strings(codes)
	return codes
}

// Coercion helpers for private-state values: built in-process they keep Go
// types, round-tripped through JSON they come back as []any and float64.

func maps(v any) []map[string]any {
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func strList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func intVal(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func floatVal(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func boolVal(v any) bool {
	b, _ := v.(bool)
	return b
}

// counterparty names the other side of an offer from self's point of view.
func counterparty(offer map[string]any, self string) string {
	if str(offer, "proposer") == self {
		return str(offer, "recipient")
	}
	return str(offer, "proposer")
}
