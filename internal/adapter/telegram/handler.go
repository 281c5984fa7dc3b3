package telegram

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ether-community-telegram-bot/internal/domain"
)

// EventFromUpdate переводит обновление Telegram в явное событие домена.
// false — когда обновление не содержит сообщения (колбэки, опросы и т.п.).
func EventFromUpdate(u tgbotapi.Update) (domain.InboundEvent, bool) {
	msg := u.Message
	if msg == nil {
		msg = u.ChannelPost
	}
	if msg == nil || msg.Chat == nil {
		return domain.InboundEvent{}, false
	}

	ev := domain.InboundEvent{
		OriginChatID: msg.Chat.ID,
		ChatKind:     chatKind(msg.Chat),
		MessageID:    msg.MessageID,
		FreeText:     msg.Text,
		IsReply:      msg.ReplyToMessage != nil,
		IsService:    isServiceMessage(msg),
	}
	if ev.FreeText == "" {
		ev.FreeText = msg.Caption
	}
	if msg.From != nil {
		ev.SenderID = msg.From.ID
		ev.SenderName = displayName(msg.From)
	}
	if msg.IsCommand() {
		ev.Command = msg.Command()
		ev.CommandArgs = msg.CommandArguments()
	}
	if fwd := msg.ForwardFromChat; fwd != nil {
		ev.ForwardedFromChatID = fwd.ID
		ev.ForwardedFromChatKind = chatKind(fwd)
	}
	return ev, true
}

func chatKind(chat *tgbotapi.Chat) domain.ChatKind {
	switch {
	case chat.IsPrivate():
		return domain.ChatPrivate
	case chat.IsChannel():
		return domain.ChatChannel
	default:
		// group и supergroup для диспетчеризации неразличимы
		return domain.ChatGroup
	}
}

// Служебные уведомления не считаются содержательными сообщениями
func isServiceMessage(m *tgbotapi.Message) bool {
	return len(m.NewChatMembers) > 0 || m.LeftChatMember != nil || m.PinnedMessage != nil
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if u.UserName != "" {
		return u.UserName
	}
	return strconv.FormatInt(u.ID, 10)
}

// Реализация отправителя для юзкейсов
type Sender struct{ bot *tgbotapi.BotAPI }

func NewSender(bot *tgbotapi.BotAPI) *Sender { return &Sender{bot: bot} }

func (s *Sender) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := s.bot.Send(msg)
	return err
}

func (s *Sender) ReplyText(chatID int64, text string, replyToMessageID int) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyToMessageID
	_, err := s.bot.Send(msg)
	return err
}

func (s *Sender) SendPNG(chatID int64, name string, png []byte) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: png})
	_, err := s.bot.Send(photo)
	return err
}
