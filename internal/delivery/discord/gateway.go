package discord

// Gateway is the chat-platform surface the flows are written against.
// The discordgo adapter implements it in production; tests drive flows
// through a fake.
type Gateway interface {
	SendMessage(channelID, content string) (messageID string, err error)
	Send(channelID string, msg *OutboundMessage) (messageID string, err error)
	EditMessage(channelID, messageID string, msg *OutboundMessage) error
	// Respond acks a button press with a new message
	Respond(ev *ButtonEvent, msg *OutboundMessage, ephemeral bool) error
	// UpdateSource acks a button press by editing the message holding the button
	UpdateSource(ev *ButtonEvent, msg *OutboundMessage) error
	CreateTicketChannel(guildID, categoryID, name, userID string) (channelID string, err error)
	GrantChannelAccess(channelID, userID string) error
	DeleteChannel(channelID string) error
	SendDM(userID, content string) error
}

type OutboundMessage struct {
	Content string
	Embed 	*Embed
	Buttons [][]Button
}

type Embed struct {
	Title 		string
	Description string
	Color 		int
	Footer 		string
	Image 		string
	Fields 		[]EmbedField
}

type EmbedField struct {
	Name 	string
	Value 	string
	Inline 	bool
}

// ButtonStyle values mirror the platform's styles
type ButtonStyle int

const (
	StylePrimary   ButtonStyle = 1
	StyleSecondary ButtonStyle = 2
	StyleSuccess   ButtonStyle = 3
	StyleDanger    ButtonStyle = 4
)

type Button struct {
	CustomID string
	Label 	 string
	Style 	 ButtonStyle
	Disabled bool
}

type MessageEvent struct {
	GuildID 	string
	ChannelID 	string
	MessageID 	string
	AuthorID 	string
	AuthorName 	string
	Content 	string
	Attachments []string
}

type ButtonEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID 	  string
	Username  string
	CustomID  string
	IsAdmin   bool
	Roles 	  []string
	// Ref is an adapter-owned handle used to ack the interaction
	Ref any
}

func (ev *ButtonEvent) HasRole(roleID string) bool {
	for _, r := range ev.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
