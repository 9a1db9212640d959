package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/agent/prompt"
	"github.com/behavelab/parley/pkg/agentlog"
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/tools"
)

// votePromptWindow is how close to the end (seconds remaining) the voting
// prompt starts appearing in HiddenProfiles status updates.
const votePromptWindow = 60

// Config assembles a controller's collaborators.
type Config struct {
	SessionCode     string
	ParticipantCode string
	Kind            models.ExperimentType

	LLM        llm.Client
	Engines    *engine.Factory
	Dispatcher tools.Executor
	// Timers provides authoritative timer reads; nil falls back to the
	// timer embedded in the perceived state.
	Timers engine.TimerReader
	// Sinks receives the per-agent log streams; nil disables file logging.
	Sinks *agentlog.Sinks

	// PlanJSON decides through plain completions parsed as JSON plans
	// instead of native tool calling.
	PlanJSON  bool
	MaxMemory int
}

// Controller drives one agent. Not safe for concurrent use: the manager
// guarantees at most one Tick/FinalVoteCycle runs at a time per agent.
type Controller struct {
	cfg     Config
	prompts *prompt.PromptBuilder
	palette []llm.Tool

	memory   *Memory
	failures *failureLog

	log *slog.Logger

	tick         int
	systemPrompt string
}

// NewController creates a controller. The system prompt is built lazily on
// the first tick, when the session state is first perceived.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg:      cfg,
		prompts:  prompt.NewPromptBuilder(),
		palette:  tools.ForKind(cfg.Kind),
		memory:   NewMemory(cfg.MaxMemory),
		failures: &failureLog{},
		log: slog.With(
			"agent_key", cfg.SessionCode+":"+cfg.ParticipantCode,
			"experiment_type", string(cfg.Kind),
		),
	}
	if cfg.Sinks != nil {
		cfg.Sinks.Memory("init", fmt.Sprintf("memory capacity %d, plan_json=%v", c.memory.max, cfg.PlanJSON))
	}
	return c
}

// Memory exposes the conversation ring for inspection (CLI debugging).
func (c *Controller) Memory() *Memory { return c.memory }

// Tick runs one perceive-decide-act cycle. It returns an error only for
// failures that make the cycle impossible (the session is gone, the state
// cannot be read); everything recoverable is folded into the failure log.
func (c *Controller) Tick(ctx context.Context) error {
	c.tick++

	// Finished specialty batches become inventory before the agent looks.
	c.promoteProductions(ctx)

	state, timer, unread, err := c.perceive(ctx)
	if err != nil {
		return err
	}

	update := c.prompts.BuildStatusUpdate(prompt.StatusInput{
		ParticipantCode: c.cfg.ParticipantCode,
		Kind:            c.cfg.Kind,
		State:           state,
		Timer:           timer,
		Unread:          unread,
		Failures:        c.failures.list(),
		VotePromptDue:   c.votePromptDue(state, timer),
	})
	c.memory.Append(RoleUser, update)
	if c.cfg.Sinks != nil {
		c.cfg.Sinks.Memory("status_update", fmt.Sprintf("tick %d, %d unread, %d failures",
			c.tick, len(unread), len(c.failures.entries)))
	}

	calls, ok := c.decide(ctx, state)
	if !ok {
		return nil
	}

	// The status update showed the unread set, so it counts as seen even if
	// the model ignores it. Scoped to the perceived ids: messages arriving
	// mid-decide stay unread for the next tick.
	c.markSeen(ctx, unread)

	if len(calls) == 0 {
		c.log.DebugContext(ctx, "Agent chose no action this tick", "tick", c.tick)
		return nil
	}
	for _, toolCall := range calls {
		c.act(ctx, toolCall)
	}
	return nil
}

// FinalVoteCycle runs the end-of-experiment vote demand for HiddenProfiles
// agents. Reports whether a vote exists after the cycle; the caller only
// warns on false — a missing vote is never synthesised.
func (c *Controller) FinalVoteCycle(ctx context.Context) bool {
	if c.cfg.Kind != models.ExperimentHiddenProfiles {
		return true
	}
	state, _, _, err := c.perceive(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "Final vote cycle could not perceive state", "error", err)
		return false
	}
	if voted, _ := state.PrivateState["has_voted"].(bool); voted {
		return true
	}

	candidates := stateStrings(state.PrivateState["candidate_list"])
	demand := c.prompts.BuildFinalVotePrompt(candidates)
	c.memory.Append(RoleUser, demand)
	if c.cfg.Sinks != nil {
		c.cfg.Sinks.Memory("final_vote", "demanding a final vote")
	}

	calls, ok := c.decide(ctx, state)
	if !ok {
		return false
	}
	voted := false
	for _, toolCall := range calls {
		if toolCall.Name != engine.ToolSubmitVote {
			c.log.DebugContext(ctx, "Dropping non-vote action in final vote cycle", "tool", toolCall.Name)
			continue
		}
		result := c.act(ctx, toolCall)
		voted = voted || result.Success
	}
	if !voted {
		c.log.WarnContext(ctx, "Agent produced no final vote", "tick", c.tick)
		if c.cfg.Sinks != nil {
			c.cfg.Sinks.Memory("final_vote", "no vote cast")
		}
	}
	return voted
}

// promoteProductions finishes due production batches. Only ShapeFactory has
// a queue; other kinds skip the round trip.
func (c *Controller) promoteProductions(ctx context.Context) {
	if c.cfg.Kind != models.ExperimentShapeFactory {
		return
	}
	_, err := c.cfg.Engines.Store().Production.PromoteCompleted(ctx, c.cfg.SessionCode, c.cfg.ParticipantCode)
	if err != nil {
		c.log.WarnContext(ctx, "Promoting completed productions failed", "error", err)
	}
}

// perceive loads the agent's view and the authoritative timer.
func (c *Controller) perceive(ctx context.Context) (*models.GameState, models.TimerInfo, []*ent.Message, error) {
	eng, err := c.cfg.Engines.ForSession(ctx, c.cfg.SessionCode)
	if err != nil {
		return nil, models.TimerInfo{}, nil, err
	}
	state, err := eng.GameState(ctx, c.cfg.SessionCode, c.cfg.ParticipantCode)
	if err != nil {
		return nil, models.TimerInfo{}, nil, err
	}

	// The registry read wins over the state's embedded copy: a tick landing
	// mid-transition must not act on a stale experiment status.
	timer := state.PublicState.Timer
	if c.cfg.Timers != nil {
		if snapshot, ok := c.cfg.Timers.Snapshot(c.cfg.SessionCode); ok {
			timer = snapshot
		}
	}

	unread, err := c.cfg.Engines.Store().Messages.Unread(ctx, c.cfg.SessionCode, c.cfg.ParticipantCode)
	if err != nil {
		return nil, models.TimerInfo{}, nil, err
	}
	return state, timer, unread, nil
}

// decide runs one LLM call over the current memory and returns the chosen
// tool calls. ok is false when the LLM call itself failed; the failure is
// already recorded.
func (c *Controller) decide(ctx context.Context, state *models.GameState) ([]llm.ToolCall, bool) {
	if c.systemPrompt == "" {
		c.systemPrompt = c.prompts.BuildSystemPrompt(prompt.SystemInput{
			ParticipantCode: c.cfg.ParticipantCode,
			Kind:            c.cfg.Kind,
			Config:          state.PublicState.ExperimentConfig,
			State:           state,
			PlanJSON:        c.cfg.PlanJSON,
		})
	}
	transcript := c.memory.Transcript()
	if c.cfg.Sinks != nil {
		c.cfg.Sinks.LLMRequest(c.cfg.LLM.Model(), c.systemPrompt, transcript)
	}

	if c.cfg.PlanJSON {
		raw, err := c.cfg.LLM.DecidePlain(ctx, c.systemPrompt, transcript)
		if c.cfg.Sinks != nil {
			c.cfg.Sinks.LLMResponse(c.cfg.LLM.Model(), raw, err)
		}
		if err != nil {
			c.recordFailure(ctx, "llm_decide", err.Error())
			return nil, false
		}
		c.memory.Append(RoleAssistant, raw)
		plan := llm.ExtractPlan(raw)
		return MapPlan(plan, state.PublicState.ExperimentConfig), true
	}

	calls, err := c.cfg.LLM.DecideWithTools(ctx, c.systemPrompt, transcript, c.palette)
	if c.cfg.Sinks != nil {
		c.cfg.Sinks.LLMResponse(c.cfg.LLM.Model(), renderCalls(calls), err)
	}
	if err != nil {
		c.recordFailure(ctx, "llm_decide", err.Error())
		return nil, false
	}
	c.memory.Append(RoleAssistant, renderCalls(calls))
	return calls, true
}

// act executes one tool call and folds the outcome into memory, the failure
// log, and the action sink.
func (c *Controller) act(ctx context.Context, toolCall llm.ToolCall) tools.Result {
	result := c.cfg.Dispatcher.Execute(ctx,
		c.cfg.SessionCode, c.cfg.ParticipantCode, toolCall.Name, toolCall.Arguments)

	if result.Success {
		c.memory.Append(RoleAssistant,
			fmt.Sprintf("SUCCESSFUL ACTION: %s %s", toolCall.Name, compactJSON(result.Payload)))
		if c.cfg.Sinks != nil {
			c.cfg.Sinks.Action(c.tick, toolCall.Name, true, "")
		}
		c.log.InfoContext(ctx, "Agent action succeeded", "tick", c.tick, "tool", toolCall.Name)
		return result
	}

	c.memory.Append(RoleAssistant,
		fmt.Sprintf("FAILED ACTION: %s — %s: %s", toolCall.Name, result.Kind, result.Message))
	c.recordFailure(ctx, toolCall.Name, fmt.Sprintf("%s: %s", result.Kind, result.Message))
	return result
}

// markSeen consumes exactly the unread messages the status update showed.
func (c *Controller) markSeen(ctx context.Context, unread []*ent.Message) {
	if len(unread) == 0 {
		return
	}
	ids := make([]string, 0, len(unread))
	for _, m := range unread {
		ids = append(ids, m.ID)
	}
	result := c.cfg.Dispatcher.Execute(ctx,
		c.cfg.SessionCode, c.cfg.ParticipantCode, tools.ToolMarkMessagesAsRead,
		map[string]any{"message_ids": ids})
	if !result.Success {
		c.log.WarnContext(ctx, "Marking messages read failed",
			"kind", string(result.Kind), "error", result.Message)
	}
}

// votePromptDue is true when a HiddenProfiles status update must demand a
// vote: the experiment is ending, or reading is done and no vote is cast.
func (c *Controller) votePromptDue(state *models.GameState, timer models.TimerInfo) bool {
	if c.cfg.Kind != models.ExperimentHiddenProfiles {
		return false
	}
	voted, _ := state.PrivateState["has_voted"].(bool)
	ending := timer.ExperimentStatus == models.TimerCompleted ||
		(timer.ExperimentStatus == models.TimerActive && timer.TimeRemaining <= votePromptWindow)
	if ending {
		return true
	}
	if voted {
		return false
	}
	doc, _ := state.PrivateState["assigned_doc"].(string)
	info, _ := state.PrivateState["public_info"].(string)
	return doc != "" && info != ""
}

func (c *Controller) recordFailure(ctx context.Context, tool, message string) {
	failure := fmt.Sprintf("%s: %s", tool, message)
	c.failures.add(failure)
	if c.cfg.Sinks != nil {
		c.cfg.Sinks.Action(c.tick, tool, false, message)
		c.cfg.Sinks.Memory("failure", failure)
	}
	c.log.WarnContext(ctx, "Agent action failed", "tick", c.tick, "tool", tool, "error", message)
}

// renderCalls flattens tool calls for memory and the llm sink.
func renderCalls(calls []llm.ToolCall) string {
	if len(calls) == 0 {
		return "(no tool calls)"
	}
	parts := make([]string, 0, len(calls))
	for _, call := range calls {
		parts = append(parts, call.Name+" "+compactJSON(call.Arguments))
	}
	return strings.Join(parts, "\n")
}

func compactJSON(v any) string {
	if v == nil {
		return "{}"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func stateStrings(v any) []string {
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
