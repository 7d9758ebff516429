package dtos

type BoardMessageType string

const (
	BoardRefresh BoardMessageType = "refresh"
)

// BoardMessage is pushed to open pages after a successful mutation.
type BoardMessage struct {
	Type BoardMessageType `json:"type"`
}
