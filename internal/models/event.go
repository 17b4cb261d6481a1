package models

// Event types published for domain changes.
const (
	EventUserCreated  = "user.created"
	EventUserUpdated  = "user.updated"
	EventUserDeleted  = "user.deleted"
	EventListCreated  = "list.created"
	EventListUpdated  = "list.updated"
	EventListDeleted  = "list.deleted"
	EventListArchived = "list.archived"
	EventListRestored = "list.unarchived"
	EventItemCreated  = "item.created"
	EventItemUpdated  = "item.updated"
	EventItemDeleted  = "item.deleted"
	EventItemToggled  = "item.toggled"
)

// Event is a domain change notification, including who caused it and what it touched.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the change.
	ActorID   int64  `json:"actor_id"`  // ActorID is the authenticated user, 0 for public routes.
	EntityID  int64  `json:"entity_id"` // EntityID is the id of the changed user, list or item.
}
