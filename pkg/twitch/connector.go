// Package twitch adapts an anonymous read-only Twitch IRC connection
// into a channel of chat events for the UI.
package twitch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brb-sh/brb/pkg/logger"
	irc "github.com/gempir/go-twitch-irc/v4"
	"github.com/google/uuid"
)

// Message is a single chat line as the UI consumes it.
type Message struct {
	ID     string
	Sender string
	Color  string // provider-supplied hex color, empty when the user never set one
	Text   string
	At     time.Time
}

// Event is either a message or a terminal connection error. After an
// Event with Err set, no further events are produced.
type Event struct {
	Message *Message
	Err     error
}

// Connector manages the chat connection for a single channel. The event
// stream is lazy and non-restartable: one Start per process run.
type Connector struct {
	channel string
	client  *irc.Client
}

// New creates a connector for the given channel.
func New(channel string) *Connector {
	return &Connector{channel: strings.TrimPrefix(strings.ToLower(channel), "#")}
}

// Channel returns the configured channel name.
func (c *Connector) Channel() string {
	return c.channel
}

// Start connects anonymously and forwards chat lines onto events until
// ctx is cancelled. Connection failure emits exactly one error event;
// there is no retry. Sends never block past ctx so shutdown cannot hang
// on a full channel.
func (c *Connector) Start(ctx context.Context, events chan<- Event) {
	c.client = irc.NewAnonymousClient()

	c.client.OnPrivateMessage(func(msg irc.PrivateMessage) {
		message := fromPrivateMessage(msg)
		if message == nil {
			// Undecodable or empty frame, drop it and keep going
			logger.Warn("dropping malformed chat frame from channel %s", c.channel)
			return
		}

		select {
		case events <- Event{Message: message}:
		case <-ctx.Done():
		}
	})

	c.client.OnConnect(func() {
		logger.Info("connected to twitch chat for channel %s", c.channel)
	})

	c.client.Join(c.channel)

	go func() {
		// Connect blocks for the lifetime of the connection. A returned
		// error is terminal for this run: one error event, no retry.
		if err := c.client.Connect(); err != nil {
			select {
			case events <- Event{Err: fmt.Errorf("twitch connection failed: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	go func() {
		<-ctx.Done()
		logger.Debug("disconnecting from twitch chat")
		if err := c.client.Disconnect(); err != nil {
			logger.Warn("twitch disconnect: %v", err)
		}
	}()
}

// fromPrivateMessage converts an IRC PRIVMSG into a Message, or nil for
// frames the UI cannot use.
func fromPrivateMessage(msg irc.PrivateMessage) *Message {
	sender := msg.User.DisplayName
	if sender == "" {
		sender = msg.User.Name
	}
	if sender == "" || msg.Message == "" {
		return nil
	}

	id := msg.ID
	if id == "" {
		id = uuid.New().String()
	}

	at := msg.Time
	if at.IsZero() {
		at = time.Now()
	}

	return &Message{
		ID:     id,
		Sender: sender,
		Color:  msg.User.Color,
		Text:   msg.Message,
		At:     at,
	}
}
