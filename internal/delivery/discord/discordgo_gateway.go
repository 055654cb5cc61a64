package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// DiscordgoGateway adapts a discordgo session to the Gateway interface
type DiscordgoGateway struct {
	session *discordgo.Session
}

func NewDiscordgoGateway(botToken string) (*DiscordgoGateway, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers
	return &DiscordgoGateway{session: session}, nil
}

// Run registers the bot's handlers and opens the gateway connection.
// Returns once the connection is established; events arrive on the
// session's own goroutines.
func (g *DiscordgoGateway) Run(bot *Bot) error {
	g.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		attachments := make([]string, 0, len(m.Attachments))
		for _, a := range m.Attachments {
			attachments = append(attachments, a.URL)
		}
		bot.HandleMessage(&MessageEvent{
			GuildID:     m.GuildID,
			ChannelID:   m.ChannelID,
			MessageID:   m.ID,
			AuthorID:    m.Author.ID,
			AuthorName:  m.Author.Username,
			Content:     m.Content,
			Attachments: attachments,
		})
	})

	g.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionMessageComponent {
			return
		}
		ev := &ButtonEvent{
			GuildID:   i.GuildID,
			ChannelID: i.ChannelID,
			CustomID:  i.MessageComponentData().CustomID,
			Ref:       i.Interaction,
		}
		if i.Message != nil {
			ev.MessageID = i.Message.ID
		}
		if i.Member != nil && i.Member.User != nil {
			ev.UserID = i.Member.User.ID
			ev.Username = i.Member.User.Username
			ev.Roles = i.Member.Roles
			ev.IsAdmin = i.Member.Permissions&discordgo.PermissionAdministrator != 0
		} else if i.User != nil {
			ev.UserID = i.User.ID
			ev.Username = i.User.Username
		}
		bot.HandleButton(ev)
	})

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	if g.session.State != nil && g.session.State.User != nil {
		bot.SetBotUserID(g.session.State.User.ID)
		slog.Info("discord gateway connected", "bot_user", g.session.State.User.Username)
	}
	return nil
}

func (g *DiscordgoGateway) Close() error {
	return g.session.Close()
}

func (g *DiscordgoGateway) SendMessage(channelID, content string) (string, error) {
	msg, err := g.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (g *DiscordgoGateway) Send(channelID string, out *OutboundMessage) (string, error) {
	msg, err := g.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    out.Content,
		Embeds:     toEmbeds(out.Embed),
		Components: toComponents(out.Buttons),
	})
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (g *DiscordgoGateway) EditMessage(channelID, messageID string, out *OutboundMessage) error {
	edit := discordgo.NewMessageEdit(channelID, messageID)
	if out.Content != "" {
		edit.SetContent(out.Content)
	}
	if out.Embed != nil {
		edit.SetEmbeds(toEmbeds(out.Embed))
	}
	components := toComponents(out.Buttons)
	edit.Components = &components
	_, err := g.session.ChannelMessageEditComplex(edit)
	return err
}

func (g *DiscordgoGateway) Respond(ev *ButtonEvent, out *OutboundMessage, ephemeral bool) error {
	interaction, ok := ev.Ref.(*discordgo.Interaction)
	if !ok {
		return fmt.Errorf("button event carries no interaction handle")
	}
	data := &discordgo.InteractionResponseData{
		Content:    out.Content,
		Embeds:     toEmbeds(out.Embed),
		Components: toComponents(out.Buttons),
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return g.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func (g *DiscordgoGateway) UpdateSource(ev *ButtonEvent, out *OutboundMessage) error {
	interaction, ok := ev.Ref.(*discordgo.Interaction)
	if !ok {
		return fmt.Errorf("button event carries no interaction handle")
	}
	return g.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    out.Content,
			Embeds:     toEmbeds(out.Embed),
			Components: toComponents(out.Buttons),
		},
	})
}

func (g *DiscordgoGateway) CreateTicketChannel(guildID, categoryID, name, userID string) (string, error) {
	channel, err := g.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: categoryID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{
				ID:   guildID, // @everyone shares the guild id
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			{
				ID:    userID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
			},
		},
	})
	if err != nil {
		return "", err
	}
	return channel.ID, nil
}

func (g *DiscordgoGateway) GrantChannelAccess(channelID, userID string) error {
	return g.session.ChannelPermissionSet(
		channelID, userID, discordgo.PermissionOverwriteTypeMember,
		discordgo.PermissionViewChannel|discordgo.PermissionSendMessages|discordgo.PermissionReadMessageHistory,
		0,
	)
}

func (g *DiscordgoGateway) DeleteChannel(channelID string) error {
	_, err := g.session.ChannelDelete(channelID)
	return err
}

func (g *DiscordgoGateway) SendDM(userID, content string) error {
	dm, err := g.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = g.session.ChannelMessageSend(dm.ID, content)
	return err
}

func toEmbeds(e *Embed) []*discordgo.MessageEmbed {
	if e == nil {
		return nil
	}
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}
	if e.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
	}
	if e.Image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.Image}
	}
	for _, f := range e.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return []*discordgo.MessageEmbed{embed}
}

func toComponents(rows [][]Button) []discordgo.MessageComponent {
	if len(rows) == 0 {
		return nil
	}
	components := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		buttons := make([]discordgo.MessageComponent, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, discordgo.Button{
				CustomID: b.CustomID,
				Label:    b.Label,
				Style:    discordgo.ButtonStyle(b.Style),
				Disabled: b.Disabled,
			})
		}
		components = append(components, discordgo.ActionsRow{Components: buttons})
	}
	return components
}
