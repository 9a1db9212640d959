package api

// SendMessageRequest is the body of POST .../messages.
type SendMessageRequest struct {
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
}

// MarkReadRequest is the body of POST .../messages/read. An empty MessageIDs
// marks everything unread.
type MarkReadRequest struct {
	MessageIDs []string `json:"message_ids,omitempty"`
}

// ActionRequest is the body of POST .../actions: one tool call by name, with
// the same arguments an agent would pass.
type ActionRequest struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// DocumentRequest is the JSON body of the document and essay endpoints. The
// multipart alternative carries a PDF file under the "file" form field.
type DocumentRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// StartAgentRequest is the body of POST .../agent.
type StartAgentRequest struct {
	Initiative string `json:"initiative,omitempty"`
}
