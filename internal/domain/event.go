package domain

type ChatKind string

const (
	ChatPrivate ChatKind = "private"
	ChatGroup   ChatKind = "group"
	ChatChannel ChatKind = "channel"
)

// InboundEvent — одно входящее событие вебхука, уже разобранное адаптером.
// Опциональные поля заданы явно, без проверок наличия атрибутов.
type InboundEvent struct {
	OriginChatID int64
	ChatKind     ChatKind
	MessageID    int

	// 0 для постов канала
	SenderID   int64
	SenderName string

	// Command без ведущего "/", пусто если сообщение не команда
	Command     string
	CommandArgs string
	FreeText    string

	ForwardedFromChatID   int64
	ForwardedFromChatKind ChatKind

	IsReply bool
	// вступления, выходы, закрепы
	IsService bool
}
