package announce

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"questbets/events"
)

// Config holds announcer configuration
type Config struct {
	Token     string
	ChannelID string
}

// Announcer posts a message to a Discord channel whenever a submission
// is recorded. It is a fire-and-forget consumer: a Discord outage never
// affects the submission itself.
type Announcer struct {
	config  Config
	session *discordgo.Session
}

// New creates an announcer and opens its Discord session
func New(config Config) (*Announcer, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	return &Announcer{
		config:  config,
		session: dg,
	}, nil
}

// Attach subscribes the announcer to submission events on the bus
func (a *Announcer) Attach(bus *events.Bus) {
	bus.Subscribe(events.EventTypeSubmissionRecorded, a.handleSubmission)
}

func (a *Announcer) handleSubmission(ctx context.Context, event events.Event) {
	recorded, ok := event.(events.SubmissionRecordedEvent)
	if !ok {
		return
	}

	msg := fmt.Sprintf("🎲 **%s** locked in their picks for the campaign!", shortAddress(recorded.Address))
	if recorded.DiscordHandle != "" {
		msg = fmt.Sprintf("🎲 **%s** (%s) locked in their picks for the campaign!",
			recorded.DiscordHandle, shortAddress(recorded.Address))
	}

	if _, err := a.session.ChannelMessageSend(a.config.ChannelID, msg); err != nil {
		log.WithError(err).WithField("address", recorded.Address).
			Error("Failed to announce submission")
	}
}

// shortAddress abbreviates a wallet address for display
func shortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// Close closes the Discord session
func (a *Announcer) Close() error {
	return a.session.Close()
}
