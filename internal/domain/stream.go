package domain

// Stream names
const (
	StreamSensorReadings = "stream:sensor:readings"
)

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
