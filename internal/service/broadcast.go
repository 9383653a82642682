package service

// Broadcaster pushes a payload to every websocket client subscribed to a
// topic. Implemented by ws.Hub; faked in tests.
type Broadcaster interface {
	Broadcast(topic string, payload interface{})
}
