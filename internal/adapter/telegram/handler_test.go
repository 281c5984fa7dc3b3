package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"ether-community-telegram-bot/internal/domain"
)

func TestEventFromUpdatePrivateText(t *testing.T) {
	upd := tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 5,
		From:      &tgbotapi.User{ID: 42, FirstName: "Ли", LastName: "Фань"},
		Chat:      &tgbotapi.Chat{ID: 42, Type: "private"},
		Text:      "привет",
	}}

	ev, ok := EventFromUpdate(upd)
	require.True(t, ok)
	require.Equal(t, domain.ChatPrivate, ev.ChatKind)
	require.Equal(t, int64(42), ev.SenderID)
	require.Equal(t, "Ли Фань", ev.SenderName)
	require.Equal(t, "привет", ev.FreeText)
	require.Empty(t, ev.Command)
	require.False(t, ev.IsService)
}

func TestEventFromUpdateCommandWithArgs(t *testing.T) {
	text := "/link DaoSeeker"
	upd := tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 6,
		From:      &tgbotapi.User{ID: 42, UserName: "daoseeker"},
		Chat:      &tgbotapi.Chat{ID: 42, Type: "private"},
		Text:      text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len("/link")},
		},
	}}

	ev, ok := EventFromUpdate(upd)
	require.True(t, ok)
	require.Equal(t, "link", ev.Command)
	require.Equal(t, "DaoSeeker", ev.CommandArgs)
	require.Equal(t, "daoseeker", ev.SenderName)
}

func TestEventFromUpdateForwardedFromChannel(t *testing.T) {
	upd := tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID:       7,
		From:            &tgbotapi.User{ID: 42, FirstName: "Ли"},
		Chat:            &tgbotapi.Chat{ID: -1001, Type: "supergroup"},
		Text:            "пост канала",
		ForwardFromChat: &tgbotapi.Chat{ID: -2002, Type: "channel"},
	}}

	ev, ok := EventFromUpdate(upd)
	require.True(t, ok)
	require.Equal(t, domain.ChatGroup, ev.ChatKind, "supergroup сводится к group")
	require.Equal(t, int64(-2002), ev.ForwardedFromChatID)
	require.Equal(t, domain.ChatChannel, ev.ForwardedFromChatKind)
}

func TestEventFromUpdateChannelPost(t *testing.T) {
	upd := tgbotapi.Update{ChannelPost: &tgbotapi.Message{
		MessageID: 8,
		Chat:      &tgbotapi.Chat{ID: -2002, Type: "channel"},
		Text:      "анонс",
	}}

	ev, ok := EventFromUpdate(upd)
	require.True(t, ok)
	require.Equal(t, domain.ChatChannel, ev.ChatKind)
	require.Zero(t, ev.SenderID, "у поста канала нет отправителя")
}

func TestEventFromUpdateServiceMessage(t *testing.T) {
	upd := tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID:      9,
		Chat:           &tgbotapi.Chat{ID: -1001, Type: "group"},
		NewChatMembers: []tgbotapi.User{{ID: 100}},
	}}

	ev, ok := EventFromUpdate(upd)
	require.True(t, ok)
	require.True(t, ev.IsService)
}

func TestEventFromUpdateCaptionFallback(t *testing.T) {
	upd := tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 10,
		From:      &tgbotapi.User{ID: 42},
		Chat:      &tgbotapi.Chat{ID: -1001, Type: "group"},
		Caption:   "подпись к фото",
	}}

	ev, ok := EventFromUpdate(upd)
	require.True(t, ok)
	require.Equal(t, "подпись к фото", ev.FreeText)
}

func TestEventFromUpdateReplyFlag(t *testing.T) {
	upd := tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID:      11,
		From:           &tgbotapi.User{ID: 42},
		Chat:           &tgbotapi.Chat{ID: -1001, Type: "group"},
		Text:           "ответ",
		ReplyToMessage: &tgbotapi.Message{MessageID: 3},
	}}

	ev, ok := EventFromUpdate(upd)
	require.True(t, ok)
	require.True(t, ev.IsReply)
}

func TestEventFromUpdateNonMessage(t *testing.T) {
	_, ok := EventFromUpdate(tgbotapi.Update{UpdateID: 1})
	require.False(t, ok)
}

func TestDisplayNameFallbacks(t *testing.T) {
	require.Equal(t, "Ли", displayName(&tgbotapi.User{ID: 1, FirstName: "Ли"}))
	require.Equal(t, "daoseeker", displayName(&tgbotapi.User{ID: 1, UserName: "daoseeker"}))
	require.Equal(t, "1", displayName(&tgbotapi.User{ID: 1}))
}
