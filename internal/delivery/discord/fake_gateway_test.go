package discord

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LavaJover/shvark-deal-bot/internal/config"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/metrics"
)

// fakeGateway records everything the flows send so tests can assert on the
// conversation instead of on a live session.
type fakeGateway struct {
	mu        sync.Mutex
	nextID    int
	sent      []sentMessage
	responses []sentMessage
	deleted   []string
	granted   []string
	dms       []sentMessage
}

type sentMessage struct {
	ChannelID string
	MessageID string
	UserID    string
	Msg       OutboundMessage
	Ephemeral bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{}
}

func (g *fakeGateway) record(channelID string, msg *OutboundMessage) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	id := fmt.Sprintf("msg-%d", g.nextID)
	g.sent = append(g.sent, sentMessage{ChannelID: channelID, MessageID: id, Msg: *msg})
	return id
}

func (g *fakeGateway) SendMessage(channelID, content string) (string, error) {
	return g.record(channelID, &OutboundMessage{Content: content}), nil
}

func (g *fakeGateway) Send(channelID string, msg *OutboundMessage) (string, error) {
	return g.record(channelID, msg), nil
}

func (g *fakeGateway) EditMessage(channelID, messageID string, msg *OutboundMessage) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentMessage{ChannelID: channelID, MessageID: messageID, Msg: *msg})
	return nil
}

func (g *fakeGateway) Respond(ev *ButtonEvent, msg *OutboundMessage, ephemeral bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses = append(g.responses, sentMessage{ChannelID: ev.ChannelID, UserID: ev.UserID, Msg: *msg, Ephemeral: ephemeral})
	return nil
}

func (g *fakeGateway) UpdateSource(ev *ButtonEvent, msg *OutboundMessage) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses = append(g.responses, sentMessage{ChannelID: ev.ChannelID, MessageID: ev.MessageID, Msg: *msg})
	return nil
}

func (g *fakeGateway) CreateTicketChannel(guildID, categoryID, name, userID string) (string, error) {
	return "ticket-chan-" + name, nil
}

func (g *fakeGateway) GrantChannelAccess(channelID, userID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.granted = append(g.granted, channelID+":"+userID)
	return nil
}

func (g *fakeGateway) DeleteChannel(channelID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleted = append(g.deleted, channelID)
	return nil
}

func (g *fakeGateway) SendDM(userID, content string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dms = append(g.dms, sentMessage{UserID: userID, Msg: OutboundMessage{Content: content}})
	return nil
}

// lastTo returns the most recent message sent to channelID
func (g *fakeGateway) lastTo(channelID string) (sentMessage, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(g.sent) - 1; i >= 0; i-- {
		if g.sent[i].ChannelID == channelID {
			return g.sent[i], true
		}
	}
	return sentMessage{}, false
}

func (g *fakeGateway) sentContaining(substr string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, m := range g.sent {
		if strings.Contains(m.Msg.Content, substr) || (m.Msg.Embed != nil && strings.Contains(m.Msg.Embed.Description, substr)) {
			return true
		}
	}
	return false
}

func (g *fakeGateway) countSent(substr string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, m := range g.sent {
		if strings.Contains(m.Msg.Content, substr) || (m.Msg.Embed != nil && strings.Contains(m.Msg.Embed.Description, substr)) {
			n++
		}
	}
	return n
}

func (g *fakeGateway) respondedContaining(substr string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, m := range g.responses {
		if strings.Contains(m.Msg.Content, substr) {
			return true
		}
	}
	return false
}

// metrics are registered on the default prometheus registry, so tests share
// a single instance
var (
	testMetricsOnce sync.Once
	testMetrics     *metrics.DealMetrics
)

func sharedMetrics() *metrics.DealMetrics {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.NewDealMetrics()
	})
	return testMetrics
}

func testConfig() *config.DealBotConfig {
	cfg := &config.DealBotConfig{}
	cfg.Discord.TicketCategories = map[string]string{"guild-1": "cat-1"}
	cfg.Discord.PoolChannels = map[string]string{"guild-1": "pool-1"}
	cfg.Discord.ReviewChannelID = "reviews-1"
	cfg.Discord.StaffRoleID = "staff-role"
	cfg.Discord.AdminRoleID = "admin-role"
	cfg.Discord.PoolRoleID = "pool-role"
	return cfg
}
