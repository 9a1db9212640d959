package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// Result is the discriminated outcome of a tool call. It marshals to
// {"success":true, ...payload} or {"success":false,"error":kind,"message":m},
// which is what agents see verbatim in their memory.
type Result struct {
	Success bool
	Payload any
	Kind    fault.Kind
	Message string
}

// MarshalJSON flattens the payload's fields beside the success flag.
// Non-object payloads nest under "result" instead.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(map[string]any{
			"success": false,
			"error":   r.Kind,
			"message": r.Message,
		})
	}
	merged := map[string]any{"success": true}
	if r.Payload != nil {
		raw, err := json.Marshal(r.Payload)
		if err != nil {
			return nil, err
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			merged["result"] = r.Payload
		} else {
			for k, v := range fields {
				if k != "success" {
					merged[k] = v
				}
			}
		}
	}
	return json.Marshal(merged)
}

// Err reconstructs the fault carried by a failed result, nil for successes.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return fault.New(r.Kind, r.Message)
}

func success(payload any) Result {
	return Result{Success: true, Payload: payload}
}

func failure(err error) Result {
	kind := fault.KindOf(err)
	if kind == "" {
		kind = fault.StoreError
	}
	msg := err.Error()
	// Strip the kind prefix fault.Error adds; agents get the kind separately.
	if cut, found := strings.CutPrefix(msg, string(kind)+": "); found {
		msg = cut
	}
	return Result{Success: false, Kind: kind, Message: msg}
}

// Executor is the dispatch surface agent controllers call. *Dispatcher is
// the production implementation; wrappers may intercept calls to observe
// outcomes (the agent manager uses one to route message triggers).
type Executor interface {
	Execute(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) Result
}

// Dispatcher routes tool calls into the engines. It enriches arguments with
// the caller's identity (overriding whatever the model guessed), applies the
// session's communication level to send_message, resolves human-readable
// trade ids, and rejects template placeholders before they hit the store.
type Dispatcher struct {
	engines *engine.Factory
}

// NewDispatcher creates a Dispatcher over an engine factory.
func NewDispatcher(engines *engine.Factory) *Dispatcher {
	return &Dispatcher{engines: engines}
}

// Execute runs one tool call on behalf of a participant. It never returns a
// Go error: every failure is folded into the Result so agent controllers can
// record it and move on.
func (d *Dispatcher) Execute(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) Result {
	if sessionCode == "" {
		return failure(fault.New(fault.MissingSessionScope, "tool calls require a session code"))
	}
	eng, err := d.engines.ForSession(ctx, sessionCode)
	if err != nil {
		return failure(err)
	}

	enriched := make(map[string]any, len(args)+2)
	for k, v := range args {
		enriched[k] = v
	}
	enriched["participant_code"] = participantCode
	enriched["session_code"] = sessionCode

	switch name {
	case engine.ToolRespondToTradeOffer, engine.ToolCancelTradeOffer:
		ref := stringArg(enriched, "transaction_id")
		if looksLikePlaceholder(ref) {
			return failure(fault.Errorf(fault.InvalidState,
				"transaction_id %q is a template placeholder, use the id of a real offer", ref))
		}
		t, err := d.engines.Store().Trades.Resolve(ctx, sessionCode, ref)
		if err != nil {
			return failure(err)
		}
		enriched["transaction_id"] = t.ID
	}

	switch name {
	case ToolGetGameState:
		state, err := eng.GameState(ctx, sessionCode, participantCode)
		if err != nil {
			return failure(err)
		}
		return success(state)

	case ToolSendMessage:
		return d.sendMessage(ctx, eng, sessionCode, participantCode,
			stringArg(enriched, "recipient"), stringArg(enriched, "content"))

	case ToolMarkMessagesAsRead:
		marked, err := d.markMessagesRead(ctx, sessionCode, participantCode, stringSliceArg(enriched, "message_ids"))
		if err != nil {
			return failure(err)
		}
		return success(map[string]any{"messages_marked": marked})

	default:
		payload, err := eng.HandleAction(ctx, sessionCode, participantCode, name, enriched)
		if err != nil {
			return failure(err)
		}
		return success(payload)
	}
}

// sendMessage applies the communication-level filter before dispatch:
// no_chat drops the call, chat rejects broadcasts, broadcast coerces every
// recipient to "all". The engine enforces the same rules again for callers
// that bypass the dispatcher.
func (d *Dispatcher) sendMessage(ctx context.Context, eng engine.Engine, sessionCode, participantCode, recipient, content string) Result {
	sess, err := d.engines.Store().Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return failure(err)
	}
	level := models.ExperimentConfig(sess.ExperimentConfig).CommunicationLevel()
	switch level {
	case models.CommNoChat:
		slog.DebugContext(ctx, "Dropping send_message in no_chat session",
			"session_code", sessionCode, "participant_code", participantCode)
		return failure(fault.New(fault.CommunicationLevelViolation, "messaging is disabled in this session"))
	case models.CommChat:
		if recipient == "" || recipient == engine.BroadcastRecipient {
			return failure(fault.New(fault.CommunicationLevelViolation, "broadcast messaging is disabled in chat mode"))
		}
	case models.CommBroadcast:
		recipient = engine.BroadcastRecipient
	}

	msg, err := eng.SendMessage(ctx, sessionCode, participantCode, recipient, content)
	if err != nil {
		return failure(err)
	}
	// The effective recipient after policy, not what the caller asked for:
	// wrappers and agents route on this value.
	return success(map[string]any{"message_id": msg.ID, "recipient": recipient})
}

// markMessagesRead consumes the participant's unread set: direct messages
// flip to read, broadcasts record the viewer in seen_by (and flip to read
// once the whole session has seen them). ids restricts the sweep.
func (d *Dispatcher) markMessagesRead(ctx context.Context, sessionCode, participantCode string, ids []string) (int, error) {
	st := d.engines.Store()
	unread, err := st.Messages.Unread(ctx, sessionCode, participantCode)
	if err != nil {
		return 0, err
	}

	var wanted map[string]bool
	if len(ids) > 0 {
		wanted = make(map[string]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
	}

	marked := 0
	var direct []string
	for _, m := range unread {
		if wanted != nil && !wanted[m.ID] {
			continue
		}
		if m.Recipient == nil {
			if err := st.Messages.MarkBroadcastSeen(ctx, sessionCode, m.ID, participantCode); err != nil {
				return marked, err
			}
			marked++
		} else {
			direct = append(direct, m.ID)
		}
	}
	if len(direct) > 0 {
		n, err := st.Messages.MarkDirectRead(ctx, sessionCode, participantCode, direct...)
		if err != nil {
			return marked, err
		}
		marked += n
	}
	return marked, nil
}

// looksLikePlaceholder catches transaction references the model copied out
// of the tool schema instead of a real offer: empty strings, the literal
// field name, and template-bracketed values.
func looksLikePlaceholder(ref string) bool {
	if ref == "" {
		return true
	}
	switch strings.ToLower(ref) {
	case "transaction_id", "short_id", "txn_id", "id", "uuid":
		return true
	}
	for _, pair := range [][2]string{{"<", ">"}, {"{", "}"}, {"[", "]"}} {
		if strings.HasPrefix(ref, pair[0]) && strings.HasSuffix(ref, pair[1]) {
			return true
		}
	}
	return false
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func stringSliceArg(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
