package domain

import "time"

type EventAction string

const (
	EventCreated EventAction = "created"
	EventUpdated EventAction = "updated"
	EventDeleted EventAction = "deleted"
)

// Event notifies listeners that an entity changed. Type is "<entity>.<action>".
type Event struct {
	Type     string    `json:"type"`
	EntityID uint      `json:"entity_id"`
	At       time.Time `json:"at"`
	Payload  any       `json:"payload,omitempty"`
}

func NewEvent(entity string, action EventAction, id uint, payload any) Event {
	return Event{
		Type:     entity + "." + string(action),
		EntityID: id,
		At:       time.Now().UTC(),
		Payload:  payload,
	}
}
