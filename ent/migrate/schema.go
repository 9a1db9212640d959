// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EssayAssignmentsColumns holds the columns for the "essay_assignments" table.
	EssayAssignmentsColumns = []*schema.Column{
		{Name: "essay_id", Type: field.TypeString, Unique: true},
		{Name: "participant_code", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source_file", Type: field.TypeString, Nullable: true},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EssayAssignmentsTable holds the schema information for the "essay_assignments" table.
	EssayAssignmentsTable = &schema.Table{
		Name:       "essay_assignments",
		Columns:    EssayAssignmentsColumns,
		PrimaryKey: []*schema.Column{EssayAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "essay_assignments_sessions_essay_assignments",
				Columns:    []*schema.Column{EssayAssignmentsColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "essayassignment_session_id_participant_code",
				Unique:  false,
				Columns: []*schema.Column{EssayAssignmentsColumns[7], EssayAssignmentsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// InvestmentsColumns holds the columns for the "investments" table.
	InvestmentsColumns = []*schema.Column{
		{Name: "investment_id", Type: field.TypeString, Unique: true},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "decision_type", Type: field.TypeEnum, Enums: []string{"individual", "group"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// InvestmentsTable holds the schema information for the "investments" table.
	InvestmentsTable = &schema.Table{
		Name:       "investments",
		Columns:    InvestmentsColumns,
		PrimaryKey: []*schema.Column{InvestmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "investments_participants_investments",
				Columns:    []*schema.Column{InvestmentsColumns[4]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "investments_sessions_investments",
				Columns:    []*schema.Column{InvestmentsColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "investment_participant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestmentsColumns[4], InvestmentsColumns[3]},
			},
			{
				Name:    "investment_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestmentsColumns[5], InvestmentsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sender", Type: field.TypeString},
		{Name: "recipient", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeString, Default: "chat"},
		{Name: "delivered_status", Type: field.TypeEnum, Enums: []string{"sent", "delivered", "read"}, Default: "sent"},
		{Name: "message_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_recipient_delivered_status",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[2], MessagesColumns[5]},
			},
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[7]},
			},
		},
	}
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "participant_code", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"human", "ai_agent"}, Default: "human"},
		{Name: "specialty_shape", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "money", Type: field.TypeInt, Default: 0},
		{Name: "orders", Type: field.TypeJSON, Nullable: true},
		{Name: "orders_completed", Type: field.TypeInt, Default: 0},
		{Name: "assigned_words", Type: field.TypeJSON, Nullable: true},
		{Name: "current_rankings", Type: field.TypeJSON, Nullable: true},
		{Name: "login_status", Type: field.TypeEnum, Enums: []string{"not_logged_in", "logged_in", "active", "disconnected"}, Default: "not_logged_in"},
		{Name: "specialty_production_used", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "participants_sessions_participants",
				Columns:    []*schema.Column{ParticipantsColumns[13]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participant_session_id_participant_code",
				Unique:  true,
				Columns: []*schema.Column{ParticipantsColumns[13], ParticipantsColumns[1]},
			},
			{
				Name:    "participant_session_id_type",
				Unique:  false,
				Columns: []*schema.Column{ParticipantsColumns[13], ParticipantsColumns[2]},
			},
		},
	}
	// ProductionQueueColumns holds the columns for the "production_queue" table.
	ProductionQueueColumns = []*schema.Column{
		{Name: "queue_id", Type: field.TypeString, Unique: true},
		{Name: "shape", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "in_progress", "completed"}, Default: "queued"},
		{Name: "queue_position", Type: field.TypeInt, Default: 0},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "estimated_completion", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// ProductionQueueTable holds the schema information for the "production_queue" table.
	ProductionQueueTable = &schema.Table{
		Name:       "production_queue",
		Columns:    ProductionQueueColumns,
		PrimaryKey: []*schema.Column{ProductionQueueColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "production_queue_participants_production_entries",
				Columns:    []*schema.Column{ProductionQueueColumns[8]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "production_queue_sessions_production_entries",
				Columns:    []*schema.Column{ProductionQueueColumns[9]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "productionqueueentry_participant_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProductionQueueColumns[8], ProductionQueueColumns[3]},
			},
			{
				Name:    "productionqueueentry_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProductionQueueColumns[9], ProductionQueueColumns[3]},
			},
		},
	}
	// RankingSubmissionsColumns holds the columns for the "ranking_submissions" table.
	RankingSubmissionsColumns = []*schema.Column{
		{Name: "submission_id", Type: field.TypeString, Unique: true},
		{Name: "essay_rankings", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// RankingSubmissionsTable holds the schema information for the "ranking_submissions" table.
	RankingSubmissionsTable = &schema.Table{
		Name:       "ranking_submissions",
		Columns:    RankingSubmissionsColumns,
		PrimaryKey: []*schema.Column{RankingSubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ranking_submissions_participants_ranking_submissions",
				Columns:    []*schema.Column{RankingSubmissionsColumns[3]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "ranking_submissions_sessions_ranking_submissions",
				Columns:    []*schema.Column{RankingSubmissionsColumns[4]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rankingsubmission_participant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RankingSubmissionsColumns[3], RankingSubmissionsColumns[2]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "session_code", Type: field.TypeString, Unique: true},
		{Name: "experiment_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "setup_complete", "session_active", "session_paused", "session_completed"}, Default: "idle"},
		{Name: "experiment_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_experiment_type",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[5]},
			},
		},
	}
	// ShapeInventoryColumns holds the columns for the "shape_inventory" table.
	ShapeInventoryColumns = []*schema.Column{
		{Name: "inventory_id", Type: field.TypeString, Unique: true},
		{Name: "shapes_in_inventory", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// ShapeInventoryTable holds the schema information for the "shape_inventory" table.
	ShapeInventoryTable = &schema.Table{
		Name:       "shape_inventory",
		Columns:    ShapeInventoryColumns,
		PrimaryKey: []*schema.Column{ShapeInventoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shape_inventory_participants_inventory",
				Columns:    []*schema.Column{ShapeInventoryColumns[3]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "shape_inventory_sessions_inventories",
				Columns:    []*schema.Column{ShapeInventoryColumns[4]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "shapeinventory_session_id",
				Unique:  false,
				Columns: []*schema.Column{ShapeInventoryColumns[4]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "transaction_id", Type: field.TypeString, Unique: true},
		{Name: "short_id", Type: field.TypeString},
		{Name: "proposer", Type: field.TypeString},
		{Name: "recipient", Type: field.TypeString},
		{Name: "seller", Type: field.TypeString},
		{Name: "buyer", Type: field.TypeString},
		{Name: "offer_type", Type: field.TypeEnum, Enums: []string{"buy", "sell"}},
		{Name: "shape", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "price_per_unit", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"proposed", "completed", "cancelled"}, Default: "proposed"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_sessions_transactions",
				Columns:    []*schema.Column{TransactionsColumns[13]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_session_id_short_id",
				Unique:  true,
				Columns: []*schema.Column{TransactionsColumns[13], TransactionsColumns[1]},
			},
			{
				Name:    "transaction_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[13], TransactionsColumns[10]},
			},
			{
				Name:    "transaction_session_id_proposer_status",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[13], TransactionsColumns[2], TransactionsColumns[10]},
			},
			{
				Name:    "transaction_session_id_recipient_status",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[13], TransactionsColumns[3], TransactionsColumns[10]},
			},
		},
	}
	// WordguessingChatHistoryColumns holds the columns for the "wordguessing_chat_history" table.
	WordguessingChatHistoryColumns = []*schema.Column{
		{Name: "guess_id", Type: field.TypeString, Unique: true},
		{Name: "guess_text", Type: field.TypeString, Size: 2147483647},
		{Name: "round", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// WordguessingChatHistoryTable holds the schema information for the "wordguessing_chat_history" table.
	WordguessingChatHistoryTable = &schema.Table{
		Name:       "wordguessing_chat_history",
		Columns:    WordguessingChatHistoryColumns,
		PrimaryKey: []*schema.Column{WordguessingChatHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "wordguessing_chat_history_participants_word_guesses",
				Columns:    []*schema.Column{WordguessingChatHistoryColumns[5]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "wordguessing_chat_history_sessions_word_guesses",
				Columns:    []*schema.Column{WordguessingChatHistoryColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "wordguess_session_id_round",
				Unique:  false,
				Columns: []*schema.Column{WordguessingChatHistoryColumns[6], WordguessingChatHistoryColumns[2]},
			},
			{
				Name:    "wordguess_participant_id_correct",
				Unique:  false,
				Columns: []*schema.Column{WordguessingChatHistoryColumns[5], WordguessingChatHistoryColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EssayAssignmentsTable,
		EventsTable,
		InvestmentsTable,
		MessagesTable,
		ParticipantsTable,
		ProductionQueueTable,
		RankingSubmissionsTable,
		SessionsTable,
		ShapeInventoryTable,
		TransactionsTable,
		WordguessingChatHistoryTable,
	}
)

func init() {
	EssayAssignmentsTable.ForeignKeys[0].RefTable = SessionsTable
	EventsTable.ForeignKeys[0].RefTable = SessionsTable
	InvestmentsTable.ForeignKeys[0].RefTable = ParticipantsTable
	InvestmentsTable.ForeignKeys[1].RefTable = SessionsTable
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
	ParticipantsTable.ForeignKeys[0].RefTable = SessionsTable
	ProductionQueueTable.ForeignKeys[0].RefTable = ParticipantsTable
	ProductionQueueTable.ForeignKeys[1].RefTable = SessionsTable
	ProductionQueueTable.Annotation = &entsql.Annotation{
		Table: "production_queue",
	}
	RankingSubmissionsTable.ForeignKeys[0].RefTable = ParticipantsTable
	RankingSubmissionsTable.ForeignKeys[1].RefTable = SessionsTable
	ShapeInventoryTable.ForeignKeys[0].RefTable = ParticipantsTable
	ShapeInventoryTable.ForeignKeys[1].RefTable = SessionsTable
	ShapeInventoryTable.Annotation = &entsql.Annotation{
		Table: "shape_inventory",
	}
	TransactionsTable.ForeignKeys[0].RefTable = SessionsTable
	WordguessingChatHistoryTable.ForeignKeys[0].RefTable = ParticipantsTable
	WordguessingChatHistoryTable.ForeignKeys[1].RefTable = SessionsTable
	WordguessingChatHistoryTable.Annotation = &entsql.Annotation{
		Table: "wordguessing_chat_history",
	}
}
