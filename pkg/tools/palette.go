// Package tools is the agent-facing action surface. It owns the tool palette
// (the schemas handed to the LLM, in provider-neutral form) and the
// dispatcher that validates, enriches, and routes tool calls into the game
// engines. Engines return Go errors; the dispatcher flattens every outcome
// into a Result so callers never branch on error shape.
package tools

import (
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
)

// Shared tool names available in every experiment kind. Kind-specific names
// live in pkg/engine next to their handlers.
const (
	ToolGetGameState       = "get_game_state"
	ToolSendMessage        = "send_message"
	ToolMarkMessagesAsRead = "mark_messages_as_read"
)

// ForKind returns the tool palette for an experiment kind: the shared tools
// plus the kind's own actions. The same palette serves both providers; the
// llm adapters encode it into the OpenAI and Anthropic dialects.
func ForKind(kind models.ExperimentType) []llm.Tool {
	palette := []llm.Tool{
		{
			Name:        ToolGetGameState,
			Description: "Get your current private state plus the shared public state of the session.",
			InputSchema: schema(nil),
		},
		{
			Name:        ToolSendMessage,
			Description: "Send a chat message to another participant, or to \"all\" when the session allows broadcasts.",
			InputSchema: schema(map[string]any{
				"recipient": strProp("Participant code of the recipient, or \"all\" for a broadcast."),
				"content":   strProp("The message text."),
			}, "recipient", "content"),
		},
		{
			Name:        ToolMarkMessagesAsRead,
			Description: "Mark your unread messages as read. Optionally restrict to specific message ids.",
			InputSchema: schema(map[string]any{
				"message_ids": arrProp("Message ids to mark; omit to mark everything unread.", "string"),
			}),
		},
	}
	return append(palette, kindTools(kind)...)
}

func kindTools(kind models.ExperimentType) []llm.Tool {
	switch kind {
	case models.ExperimentShapeFactory:
		return []llm.Tool{
			{
				Name:        engine.ToolCreateTradeOffer,
				Description: "Propose a trade: buy a shape from, or sell a shape to, another participant.",
				InputSchema: schema(map[string]any{
					"recipient":      strProp("Participant code of the trade partner."),
					"offer_type":     enumProp("Whether you are buying or selling.", "buy", "sell"),
					"shape":          strProp("The shape to trade."),
					"quantity":       intProp("How many units. Defaults to 1."),
					"price_per_unit": intProp("Price per unit, inside the session's allowed range."),
				}, "recipient", "offer_type", "shape", "price_per_unit"),
			},
			{
				Name:        engine.ToolRespondToTradeOffer,
				Description: "Accept or reject a trade offer sent to you. Use the exact transaction_id or short id from your pending offers.",
				InputSchema: schema(map[string]any{
					"transaction_id": strProp("The offer's transaction id or short id, e.g. S1A2-003."),
					"response":       enumProp("Your decision.", "accept", "reject"),
				}, "transaction_id", "response"),
			},
			{
				Name:        engine.ToolCancelTradeOffer,
				Description: "Withdraw a trade offer you proposed while it is still pending.",
				InputSchema: schema(map[string]any{
					"transaction_id": strProp("The offer's transaction id or short id."),
				}, "transaction_id"),
			},
			{
				Name:        engine.ToolProduceShape,
				Description: "Queue production of shapes. Your specialty is cheap, everything else costs more.",
				InputSchema: schema(map[string]any{
					"shape":    strProp("The shape to produce."),
					"quantity": intProp("How many units. Defaults to 1."),
				}, "shape"),
			},
			{
				Name:        engine.ToolFulfillOrders,
				Description: "Fulfill orders from your order list using shapes in your inventory. Each fulfilled order earns incentive money.",
				InputSchema: schema(map[string]any{
					"order_indices": arrProp("Zero-based indices into your order list.", "integer"),
				}, "order_indices"),
			},
			{
				Name:        engine.ToolProcessCompletedProductions,
				Description: "Collect finished production into your inventory.",
				InputSchema: schema(nil),
			},
			{
				Name:        engine.ToolStartNextProduction,
				Description: "Start your next queued production batch. Does nothing while a batch is still in progress.",
				InputSchema: schema(nil),
			},
		}

	case models.ExperimentDayTrader:
		return []llm.Tool{
			{
				Name:        engine.ToolMakeInvestment,
				Description: "Record an investment decision at a price inside the allowed range.",
				InputSchema: schema(map[string]any{
					"invest_price":         numProp("The investment price."),
					"invest_decision_type": enumProp("Whether this is your own decision or the group's.", "individual", "group"),
				}, "invest_price", "invest_decision_type"),
			},
			{
				Name:        engine.ToolGetInvestmentHistory,
				Description: "List your past investment decisions.",
				InputSchema: schema(nil),
			},
		}

	case models.ExperimentEssayRanking:
		return []llm.Tool{
			{
				Name:        engine.ToolSubmitRanking,
				Description: "Submit rankings for one or more of your assigned essays. Resubmitting an essay overwrites its previous rank.",
				InputSchema: schema(map[string]any{
					"rankings": map[string]any{
						"type":        "array",
						"description": "The rankings, best essay first. Ranks must be unique.",
						"items": schema(map[string]any{
							"essay_id":  strProp("The essay's id from your assignment."),
							"rank":      intProp("1 is best."),
							"reasoning": strProp("Why you placed it here."),
						}, "essay_id", "rank"),
					},
				}, "rankings"),
			},
			{
				Name:        engine.ToolGetAssignedEssays,
				Description: "List the essays assigned to you (titles and ids, no body text).",
				InputSchema: schema(nil),
			},
			{
				Name:        engine.ToolGetEssayContent,
				Description: "Read the full text of one assigned essay.",
				InputSchema: schema(map[string]any{
					"essay_id": strProp("The essay's id from your assignment."),
				}, "essay_id"),
			},
		}

	case models.ExperimentWordGuessing:
		return []llm.Tool{
			{
				Name:        engine.ToolSubmitGuess,
				Description: "Guess the current round's word. Guessers only; matching is case-insensitive.",
				InputSchema: schema(map[string]any{
					"guess_text": strProp("Your guess."),
				}, "guess_text"),
			},
			{
				Name:        engine.ToolGetAssignedWords,
				Description: "List your secret words. Hinters only.",
				InputSchema: schema(nil),
			},
		}

	case models.ExperimentHiddenProfiles:
		return []llm.Tool{
			{
				Name:        engine.ToolSubmitVote,
				Description: "Vote for a candidate. You may change your vote any time before the session ends.",
				InputSchema: schema(map[string]any{
					"candidate_name": strProp("The candidate's exact name."),
				}, "candidate_name"),
			},
		}
	}
	return nil
}

// schema builds a JSON Schema object node.
func schema(props map[string]any, required ...string) map[string]any {
	if props == nil {
		props = map[string]any{}
	}
	node := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		node["required"] = required
	}
	return node
}

func strProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func intProp(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func numProp(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

func enumProp(desc string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

func arrProp(desc, itemType string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items":       map[string]any{"type": itemType},
	}
}
