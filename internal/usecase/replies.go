package usecase

// Фиксированные тексты ответов

const (
	ReplyRelayComment = "Отличный пост! 🚀 Обсуждаем в комментариях."

	ReplyRandomPrompt      = "Пришлите диапазон в формате 5-20, и я выберу число."
	ReplyRandomOnlyPrivate = "Игра в случайные числа доступна только в личке с ботом."
	ReplyRandomBadRange    = "Не понял диапазон. Нужен формат <число>-<число>, например 1-100."

	ReplyPrivateHint = "Я бот сообщества Ether. Напишите /random, чтобы сыграть в число, или /link <ник>, чтобы привязать форумный аккаунт."

	ReplySite     = "Наш сайт: https://etherhall.example.org"
	ReplyServers  = "Серверы сообщества: Ether-1, Ether-2. Адреса закреплены в шапке группы."
	ReplyPartners = "Партнёры сообщества перечислены на сайте в разделе «Партнёры»."
	ReplyHelp     = "Команды: /rank — ваш ранг, /top — топ активности, /site, /servers, /partners, /ping."
	ReplyPing     = "pong"

	ReplyLinkUsage = "Формат: /link <ник на форуме>"
	ReplyLinkOK    = "Аккаунт привязан к форуму."
	ReplyLinkFail  = "Не получилось привязать аккаунт, попробуйте позже."
)
