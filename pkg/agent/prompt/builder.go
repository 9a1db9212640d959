package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/models"
)

// PromptBuilder builds all prompt text for agent controllers: system prompts
// per experiment kind and per-tick status updates. Stateless — all state
// comes from parameters. Thread-safe — no mutable state.
type PromptBuilder struct{}

// NewPromptBuilder creates a PromptBuilder.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SystemInput carries the snapshot a system prompt is rendered from. The
// system prompt is built once at agent start; live values arrive later
// through status updates.
type SystemInput struct {
	ParticipantCode string
	Kind            models.ExperimentType
	Config          models.ExperimentConfig
	State           *models.GameState
	// PlanJSON appends the JSON plan format when the controller parses
	// plans from plain completions instead of native tool calls.
	PlanJSON bool
}

// StatusInput carries one tick's observations for the status update.
type StatusInput struct {
	ParticipantCode string
	Kind            models.ExperimentType
	State           *models.GameState
	// Timer overrides the state's embedded timer with an authoritative
	// read, covering in-flight transitions.
	Timer    models.TimerInfo
	Unread   []*ent.Message
	Failures []string
	// VotePromptDue demands a final HiddenProfiles vote in this update.
	VotePromptDue bool
}

// BuildSystemPrompt composes the one-time system prompt for an agent.
func (b *PromptBuilder) BuildSystemPrompt(in SystemInput) string {
	var personality string
	if name, desc := in.Config.Personality(in.ParticipantCode); name != "" {
		personality = fmt.Sprintf(personalityTemplate, name, desc)
	}

	others := ParticipantCodes(in.ParticipantCode, in.State.PublicState.Participants)
	list := strings.Join(others, ", ")
	if list == "" {
		list = "none yet"
	}

	head := fmt.Sprintf(commonSystemTemplate,
		in.ParticipantCode,
		in.State.PublicState.Description,
		personality,
		communicationRules(in.State.CommunicationLevel),
		list,
		remaining(in.State.PublicState.Timer),
	)

	prompt := head + b.kindBody(in)
	if in.PlanJSON {
		prompt += "\n" + planFormatInstructions
	}
	return prompt
}

// kindBody renders the experiment rule section from the session config and
// the agent's starting state.
func (b *PromptBuilder) kindBody(in SystemInput) string {
	cfg := in.Config
	private := in.State.PrivateState

	switch in.Kind {
	case models.ExperimentShapeFactory:
		return fmt.Sprintf(shapeFactorySystemTemplate,
			str(private, "specialty_shape"),
			cfg.StartingMoney(),
			cfg.SpecialtyCost(),
			cfg.RegularCost(),
			int(cfg.ProductionTime().Seconds()),
			cfg.MaxProductionNum(),
			cfg.ShapesPerOrder(),
			cfg.IncentiveMoney(),
			cfg.MinTradePrice(),
			cfg.MaxTradePrice(),
		)

	case models.ExperimentDayTrader:
		return fmt.Sprintf(dayTraderSystemTemplate,
			cfg.StartingMoney(),
			cfg.MinTradePrice(),
			cfg.MaxTradePrice(),
		)

	case models.ExperimentEssayRanking:
		return essayRankingSystemTemplate

	case models.ExperimentWordGuessing:
		if str(private, "role") == models.RoleHinter {
			words := strList(private["assigned_words"])
			return fmt.Sprintf(wordGuessingHinterTemplate, strings.Join(words, ", "))
		}
		return fmt.Sprintf(wordGuessingGuesserTemplate,
			strings.Join(strList(private["hinter_participants"]), ", "),
			strings.Join(strList(private["guesser_participants"]), ", "))

	case models.ExperimentHiddenProfiles:
		doc := str(private, "assigned_doc")
		docBlock := "You have not been assigned a briefing document yet."
		if doc != "" {
			docBlock = fmt.Sprintf(assignedDocTemplate, doc)
		}
		return fmt.Sprintf(hiddenProfilesSystemTemplate,
			strings.Join(strList(private["candidate_list"]), ", "),
			docBlock,
		)
	}
	return ""
}

// BuildStatusUpdate composes the deterministic per-tick status summary the
// controller appends to memory before each decide call.
func (b *PromptBuilder) BuildStatusUpdate(in StatusInput) string {
	private := in.State.PrivateState

	var sb strings.Builder
	sb.WriteString(separator)
	sb.WriteString("\nSTATUS UPDATE\n")
	sb.WriteString(FormatTimer(in.Timer))
	sb.WriteString("\n\n")

	switch in.Kind {
	case models.ExperimentShapeFactory:
		fmt.Fprintf(&sb, "Money: %d\n", intVal(private["money"]))
		sb.WriteString(FormatInventory(strList(private["inventory"])))
		sb.WriteString("\n")
		sb.WriteString(FormatOrders(strList(private["orders"]), intVal(private["orders_completed"])))
		sb.WriteString(FormatProductionQueue(maps(private["production_queue"])))
		sb.WriteString(FormatPendingOffers(in.ParticipantCode,
			maps(private["pending_offers_sent"]), maps(private["pending_offers_received"]),
			intVal(private["money"]), strList(private["inventory"])))
		sb.WriteString(FormatRecentTrades(maps(private["recent_trades"])))

	case models.ExperimentDayTrader:
		fmt.Fprintf(&sb, "Money: %d (started with %d)\n", intVal(private["money"]), intVal(private["starting_money"]))
		history := maps(private["investment_history"])
		if len(history) == 0 {
			sb.WriteString("Investments: none yet\n")
		} else {
			sb.WriteString("Investments:\n")
			for _, inv := range history {
				fmt.Fprintf(&sb, "  %.2f (%s) at %s\n",
					floatVal(inv["price"]), str(inv, "decision_type"), str(inv, "timestamp"))
			}
		}

	case models.ExperimentEssayRanking:
		essays := maps(private["assigned_essays"])
		fmt.Fprintf(&sb, "Assigned essays (%d):\n", len(essays))
		for _, e := range essays {
			fmt.Fprintf(&sb, "  %s: %s (%d words)\n", str(e, "essay_id"), str(e, "title"), num(e, "word_count"))
		}
		sb.WriteString(formatRankings(private["current_rankings"]))

	case models.ExperimentWordGuessing:
		fmt.Fprintf(&sb, "Role: %s — round %d\n", str(private, "role"), intVal(private["current_round"]))
		if words := strList(private["assigned_words"]); len(words) > 0 {
			fmt.Fprintf(&sb, "Your words: %s\n", strings.Join(words, ", "))
		}
		sb.WriteString(formatScores(private["scores"]))
		if boolVal(private["all_words_guessed"]) {
			sb.WriteString("All words have been guessed.\n")
		}

	case models.ExperimentHiddenProfiles:
		if info := str(private, "public_info"); info != "" {
			fmt.Fprintf(&sb, "Shared public information:\n%s\n\n", info)
		}
		if vote := str(private, "my_vote"); vote != "" {
			fmt.Fprintf(&sb, "Your current vote: %s (you may change it)\n", vote)
		} else {
			sb.WriteString("You have not voted yet.\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString(FormatUnreadMessages(in.Unread))
	if failures := FormatFailures(in.Failures); failures != "" {
		sb.WriteString(failures)
	}
	sb.WriteString(FormatParticipants(in.ParticipantCode, in.State.PublicState.Participants))

	if in.VotePromptDue {
		candidates := strings.Join(strList(private["candidate_list"]), ", ")
		fmt.Fprintf(&sb, votePromptBlock, candidates)
		sb.WriteString("\n")
	}

	sb.WriteString(separator)
	return sb.String()
}

// BuildFinalVotePrompt is the one-shot prompt for the shutdown vote cycle.
func (b *PromptBuilder) BuildFinalVotePrompt(candidates []string) string {
	return fmt.Sprintf(finalVoteTemplate, strings.Join(candidates, ", "))
}

func communicationRules(level models.CommunicationLevel) string {
	switch level {
	case models.CommBroadcast:
		return broadcastRules
	case models.CommNoChat:
		return noChatRules
	default:
		return chatRules
	}
}

func remaining(t models.TimerInfo) string {
	return fmt.Sprintf("%dm %02ds", t.TimeRemaining/60, t.TimeRemaining%60)
}

// formatRankings renders current_rankings, a map of essay_id to
// {rank, reasoning} entries.
func formatRankings(v any) string {
	rankings, ok := v.(map[string]any)
	if !ok || len(rankings) == 0 {
		return "Current rankings: none submitted\n"
	}
	type ranked struct {
		essay string
		rank  int
	}
	entries := make([]ranked, 0, len(rankings))
	for essay, val := range rankings {
		entry, _ := val.(map[string]any)
		entries = append(entries, ranked{essay: essay, rank: num(entry, "rank")})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].rank < entries[j].rank })

	var sb strings.Builder
	sb.WriteString("Current rankings:\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "  rank %d: %s\n", e.rank, e.essay)
	}
	return sb.String()
}

// formatScores renders the guesser score map sorted by code.
func formatScores(v any) string {
	scores, ok := v.(map[string]any)
	if !ok {
		if typed, isTyped := v.(map[string]int); isTyped {
			scores = make(map[string]any, len(typed))
			for k, n := range typed {
				scores[k] = n
			}
		}
	}
	if len(scores) == 0 {
		return "Scores: none yet\n"
	}
	codes := make([]string, 0, len(scores))
	for code := range scores {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var sb strings.Builder
	sb.WriteString("Scores:\n")
	for _, code := range codes {
		fmt.Fprintf(&sb, "  %s: %d\n", code, intVal(scores[code]))
	}
	return sb.String()
}
