package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"baccarat-server/pkg/deck"
)

// LogMessage is the format a game should send log messages in
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(format, a...)}
}

// CardsLogMessage returns a new LogMessage with the cards attached
func CardsLogMessage(cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	msg := SimpleLogMessage(format, a...)
	msg.Cards = cards

	return msg
}
