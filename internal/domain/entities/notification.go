package entities

// Notification is the message handed to the external delivery collaborator
// after a lifecycle transition or recurrence decision. Delivery is
// best-effort and asynchronous; a failed dispatch never rolls back the
// transition it describes.

type Notification struct {
	Type     string         `json:"type"`
	OwnerID  string         `json:"ownerId"`
	Data     map[string]any `json:"data"`
	Channels []string       `json:"channels"`
}
