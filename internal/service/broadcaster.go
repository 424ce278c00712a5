package service

// Broadcaster pushes live events to the subscribers of a form (avoids import cycle with ws)
type Broadcaster interface {
	BroadcastToForm(formID string, msgType string, payload interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastToForm(string, string, interface{}) {}
