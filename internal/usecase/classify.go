package usecase

import "ether-community-telegram-bot/internal/domain"

// Категории диспетчеризации
type Category string

const (
	CategoryCommand          Category = "command"
	CategoryForwardedRelay   Category = "forwarded_relay"
	CategoryCountableMessage Category = "countable_message"
	CategoryAwaitingRange    Category = "awaiting_range"
	CategoryPrivateMessage   Category = "private_message"
	CategoryIgnored          Category = "ignored"
)

// Известные команды
const (
	CmdRandom   = "random"
	CmdRank     = "rank"
	CmdTop      = "top"
	CmdSite     = "site"
	CmdServers  = "servers"
	CmdPartners = "partners"
	CmdHelp     = "help"
	CmdPing     = "ping"
	CmdLink     = "link"
)

func knownCommand(cmd string) bool {
	switch cmd {
	case CmdRandom, CmdRank, CmdTop, CmdSite, CmdServers, CmdPartners, CmdHelp, CmdPing, CmdLink:
		return true
	}
	return false
}

// Mode — эфемерный режим диалога пользователя
type Mode int

const (
	ModeNone Mode = iota
	ModeNumericRange
)

type ModeLookup func(userID int64) Mode

// ChatConfig — настроенные идентификаторы группы обсуждений и канала-источника.
// Нулевое значение означает «не настроено»: соответствующие правила не срабатывают.
type ChatConfig struct {
	GroupID   int64
	ChannelID int64
}

// Classify относит событие ровно к одной категории. Порядок правил фиксирован,
// первое совпадение побеждает.
func Classify(ev domain.InboundEvent, cfg ChatConfig, mode ModeLookup) Category {
	if ev.Command != "" && knownCommand(ev.Command) {
		return CategoryCommand
	}
	if ev.ChatKind == domain.ChatGroup &&
		ev.ForwardedFromChatKind == domain.ChatChannel &&
		cfg.ChannelID != 0 && ev.ForwardedFromChatID == cfg.ChannelID &&
		cfg.GroupID != 0 && ev.OriginChatID == cfg.GroupID {
		return CategoryForwardedRelay
	}
	if ev.ChatKind == domain.ChatGroup &&
		cfg.GroupID != 0 && ev.OriginChatID == cfg.GroupID &&
		!ev.IsService && ev.ForwardedFromChatKind == "" {
		return CategoryCountableMessage
	}
	if ev.ChatKind == domain.ChatPrivate && ev.SenderID != 0 &&
		mode != nil && mode(ev.SenderID) == ModeNumericRange {
		return CategoryAwaitingRange
	}
	if ev.ChatKind == domain.ChatPrivate && ev.FreeText != "" {
		return CategoryPrivateMessage
	}
	return CategoryIgnored
}
