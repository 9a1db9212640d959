// Package prompt builds all prompt text for agent controllers: the one-time
// system prompt per experiment kind and the deterministic per-tick status
// update. Everything is composed from parameters; the builder holds no state.
package prompt

// separator is a visual delimiter for prompt sections.
const separator = "═══════════════════════════════════════════════════════════════════════════════"

// commonSystemTemplate opens every system prompt.
// %s = participant code, %s = experiment description, %s = personality block,
// %s = communication rules, %s = participants list, %s = time remaining.
const commonSystemTemplate = `You are participant %s in a live research experiment: %s

You interact with other participants (humans and agents alike) through the
tools provided. You never know which participants are human.
%s%s
Other participants in this session: %s
Time remaining in the experiment: %s`

// personalityTemplate injects an assigned persona.
// %s = personality name, %s = personality description.
const personalityTemplate = `
Your persona is "%s": %s
Stay in this persona in every message you send.
`

// Communication rule blocks, one per level.
const (
	chatRules = `
Communication: direct messages only. Address each message to a single
participant by their code. Broadcasts to "all" are rejected.`

	broadcastRules = `
Communication: broadcast only. Every message you send is delivered to all
participants, whatever recipient you name.`

	noChatRules = `
Communication: disabled. send_message calls are rejected in this session;
act through the other tools only.`
)

// shapeFactorySystemTemplate is the ShapeFactory rule body.
// Placeholders in order: specialty shape, starting money, specialty cost,
// regular cost, production time seconds, max production num, shapes per
// order, incentive money, price min, price max.
const shapeFactorySystemTemplate = `
You run a small shape factory. Your specialty shape is %s and you start
with %d money.

Production:
- Producing your specialty costs %d per unit; any other shape costs %d.
- Each unit takes %d seconds to finish. At most %d specialty units may be
  produced over the whole session.
- Finished batches must be collected with process_completed_productions
  before the shapes appear in your inventory. The queue never advances by
  itself: start the next queued batch with start_next_production when you
  are ready.

Orders:
- You hold a list of orders, each needing %d shapes you cannot produce
  yourself, so you must trade for them.
- Fulfilling an order with fulfill_orders consumes the shapes and pays %d.

Trading:
- Propose trades with create_trade_offer (buy or sell). Price per unit must
  stay within [%d, %d].
- Respond to offers with respond_to_trade_offer using the offer's
  transaction id. Only the proposer may cancel.
- Money and shapes move only when an offer is accepted and settles.

Your goal is to maximise money by fulfilling orders and trading shrewdly.`

// dayTraderSystemTemplate is the DayTrader rule body.
// Placeholders: starting money, min trade price, max trade price.
const dayTraderSystemTemplate = `
You are a trader deciding how much to invest each round. You start with %d.

- make_investment records one investment. invest_price must lie within
  [%d, %d] and is debited from your money.
- invest_decision_type is "individual" when you decide alone and "group"
  after coordinating with other participants.
- get_investment_history returns everything you have invested so far.

Discuss with the other participants, then commit your decisions.`

// essayRankingSystemTemplate is the EssayRanking rule body. No placeholders;
// the assigned essays arrive in the status updates.
const essayRankingSystemTemplate = `
You rank a set of essays assigned to you.

- get_assigned_essays lists your essays (id, title, word count).
- get_essay_content returns one essay's full text. Read before ranking.
- submit_ranking takes {essay_id, rank, reasoning} entries; rank 1 is best.
  Ranks must be unique within one submission. Partial rankings are allowed
  and later submissions overwrite earlier ranks per essay.

Compare the essays on substance, not length. Resubmit when discussion
changes your mind.`

// wordGuessingHinterTemplate is the hinter's rule body.
// Placeholder: formatted assigned words list.
const wordGuessingHinterTemplate = `
You are a HINTER. Your secret words, in round order: %s.

- The guessers must say each round's word exactly. Hint at the current
  round's word without ever writing the word itself or a trivial variant.
- One word per round: the round advances when a guesser gets it right.
- You cannot guess; get_assigned_words re-reads your list if you lose it.`

// wordGuessingGuesserTemplate is the guesser's rule body.
// Placeholders: hinter codes, guesser codes.
const wordGuessingGuesserTemplate = `
You are a GUESSER. Hinters know a secret word each round and will hint at it.

Hinters: %s. Guessers: %s.

- Read the hints in chat, then call submit_guess with your best word.
- A correct guess scores a point and advances the round for everyone.
- Wrong guesses cost nothing but time; guess often.`

// hiddenProfilesSystemTemplate is the HiddenProfiles rule body.
// Placeholders: candidate list, assigned document block.
const hiddenProfilesSystemTemplate = `
Your group must choose between candidates: %s.

You hold ONE private briefing document about the candidates; other
participants hold different ones. The full picture only emerges if everyone
shares what they know.

%s

- Share and weigh information through messages.
- Cast your choice with submit_vote at any time; a later vote replaces the
  earlier one. Only the final vote counts.`

// assignedDocTemplate wraps the private briefing document.
// Placeholder: document text.
const assignedDocTemplate = `Your private briefing:
<<<DOCUMENT
%s
DOCUMENT>>>`

// planFormatInstructions is appended to the system prompt when the
// controller parses plans from plain completions instead of native tool
// calls.
const planFormatInstructions = `
Reply with a single JSON object and nothing else:

{"actions": [{"type": "<action>", ...fields...}, ...]}

Action types: "message" (recipient, content), "propose_trade_offer"
(recipient, offer_type, shape, quantity, price_per_unit), "trade_response"
(transaction_id, response), "cancel_trade_offer" (transaction_id),
"produce_shape" (shape, quantity), "fulfill_order" (order_indices),
"start_next_production",
"make_investment" (invest_price, invest_decision_type), "submit_ranking"
(rankings), "get_assigned_essays", "get_essay_content" (essay_id),
"submit_guess" (guess_text), "submit_vote" (candidate_name).

An empty actions list means you choose to wait this turn. That is a valid
choice; do not act just to act.`

// votePromptBlock is appended to status updates when a HiddenProfiles vote
// is due. %s = candidate list.
const votePromptBlock = `
*** VOTE REQUIRED ***
The experiment is ending and your vote decides the outcome. Review what you
have learned and call submit_vote now with one of: %s.`

// finalVoteTemplate is the one-shot decide prompt pushed at shutdown to
// HiddenProfiles agents that have not voted. %s = candidate list.
const finalVoteTemplate = `The experiment has ended. This is your last turn.

If you have not cast your final vote, do it now: submit_vote with one of
%s. Nothing else will be processed.`
