package usecase

import (
	"context"
	"log/slog"

	"ether-community-telegram-bot/internal/domain"
)

// Outcome — результат обработки одной доставки.
type Outcome struct {
	Category Category
	Replied  bool
}

// ChartRenderer строит PNG с графиком топа активности (реализуется Telegram-адаптером)
type ChartRenderer interface {
	RenderBarChart(labels []string, values []int64) ([]byte, error)
}

// Dispatcher выбирает ровно один обработчик на событие. Ошибки и паники
// обработчиков гасятся на границе диспетчеризации: подтверждение вебхука
// не должно падать из-за бага обработчика.
type Dispatcher struct {
	cfg    ChatConfig
	ranks  domain.RankRepository
	modes  *ModeStore
	sender domain.MessageSender
	forum  domain.ForumPoster
	charts ChartRenderer
	logger *slog.Logger
}

func NewDispatcher(cfg ChatConfig, ranks domain.RankRepository, modes *ModeStore, sender domain.MessageSender, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		cfg:    cfg,
		ranks:  ranks,
		modes:  modes,
		sender: sender,
		logger: logger,
	}
}

func (d *Dispatcher) SetForumClient(f domain.ForumPoster) { d.forum = f }

func (d *Dispatcher) SetChartRenderer(c ChartRenderer) { d.charts = c }

// Dispatch классифицирует событие и вызывает обработчик. На событие уходит
// не более одного текстового ответа; Ignored не вызывает ничего.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.InboundEvent) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panic", "category", out.Category, "chat_id", ev.OriginChatID, "panic", r)
		}
	}()

	out.Category = Classify(ev, d.cfg, d.modes.Get)
	switch out.Category {
	case CategoryCommand:
		out.Replied = d.handleCommand(ctx, ev)
	case CategoryForwardedRelay:
		out.Replied = d.handleRelay(ctx, ev)
	case CategoryCountableMessage:
		d.handleCount(ctx, ev)
	case CategoryAwaitingRange:
		out.Replied = d.handleRangeInput(ev)
	case CategoryPrivateMessage:
		out.Replied = d.send(ev.OriginChatID, ReplyPrivateHint)
	}
	return out
}

func (d *Dispatcher) send(chatID int64, text string) bool {
	if err := d.sender.SendText(chatID, text); err != nil {
		d.logger.Error("send failed", "chat_id", chatID, "error", err)
		return false
	}
	return true
}
