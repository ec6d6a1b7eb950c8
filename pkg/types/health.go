package types

const (
	DatabaseConnected    = "Connected"
	DatabaseDisconnected = "Disconnected"
)

type Health struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}
