package messaging

// Bus subjects. Tells are point-to-point, channels fan out to everyone
// online, system lines come from the server itself.
const (
	SubjectTell    = "chat.tell"
	SubjectChannel = "chat.channel"
	SubjectSystem  = "system.broadcast"
)

// ChatMessage is the wire format for player chat on the bus.
type ChatMessage struct {
	FromID   string `json:"from_id"`
	FromName string `json:"from_name"`
	To       string `json:"to,omitempty"`
	Channel  string `json:"channel,omitempty"`
	Text     string `json:"text"`
}

// SystemMessage is a server-wide announcement.
type SystemMessage struct {
	Text string `json:"text"`
}
