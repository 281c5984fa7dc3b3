package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"ether-community-telegram-bot/internal/domain"
)

const forumPostTimeout = 10 * time.Second

func (d *Dispatcher) handleCommand(ctx context.Context, ev domain.InboundEvent) bool {
	switch ev.Command {
	case CmdRandom:
		return d.handleStartRandom(ev)
	case CmdRank:
		return d.handleRankQuery(ctx, ev)
	case CmdTop:
		return d.handleTop(ctx, ev)
	case CmdLink:
		return d.handleLink(ctx, ev)
	case CmdSite:
		return d.handleStatic(ev, ReplySite)
	case CmdServers:
		return d.handleStatic(ev, ReplyServers)
	case CmdPartners:
		return d.handleStatic(ev, ReplyPartners)
	case CmdHelp:
		return d.handleStatic(ev, ReplyHelp)
	case CmdPing:
		return d.handleStatic(ev, ReplyPing)
	}
	return false
}

// handleStatic отвечает фиксированным текстом только в настроенной группе,
// в остальных чатах молчит
func (d *Dispatcher) handleStatic(ev domain.InboundEvent, text string) bool {
	if !d.inGroup(ev) {
		return false
	}
	return d.send(ev.OriginChatID, text)
}

func (d *Dispatcher) inGroup(ev domain.InboundEvent) bool {
	return d.cfg.GroupID != 0 && ev.OriginChatID == d.cfg.GroupID
}

func (d *Dispatcher) handleStartRandom(ev domain.InboundEvent) bool {
	if ev.ChatKind != domain.ChatPrivate {
		return d.send(ev.OriginChatID, ReplyRandomOnlyPrivate)
	}
	if ev.SenderID == 0 {
		return false
	}
	d.modes.Set(ev.SenderID, ModeNumericRange)
	return d.send(ev.OriginChatID, ReplyRandomPrompt)
}

// handleRangeInput потребляет режим ровно один раз: он сбрасывается до разбора,
// каким бы ни был ввод
func (d *Dispatcher) handleRangeInput(ev domain.InboundEvent) bool {
	d.modes.Clear(ev.SenderID)

	start, end, err := parseRange(ev.FreeText)
	if err != nil || start > end {
		return d.send(ev.OriginChatID, ReplyRandomBadRange)
	}
	// ширина диапазона может переполнить int64
	span := end - start + 1
	if span <= 0 {
		return d.send(ev.OriginChatID, ReplyRandomBadRange)
	}
	n := start + rand.Int63n(span)
	return d.send(ev.OriginChatID, fmt.Sprintf("Выпало число: %d", n))
}

func parseRange(text string) (int64, int64, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(text), "-")
	if !ok {
		return 0, 0, errors.New("no separator")
	}
	start, err := strconv.ParseInt(strings.TrimSpace(left), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	end, err := strconv.ParseInt(strings.TrimSpace(right), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (d *Dispatcher) handleCount(ctx context.Context, ev domain.InboundEvent) {
	if ev.SenderID == 0 {
		return
	}
	rec, err := d.ranks.Increment(ctx, ev.SenderID, ev.SenderName)
	if err != nil {
		// сообщение просто не считаем, без ретраев
		d.logger.Error("increment failed", "user_id", ev.SenderID, "error", err)
		return
	}
	d.logger.Debug("message counted", "user_id", rec.UserID, "count", rec.MessageCount, "rank", rec.RankLabel)
}

func (d *Dispatcher) handleRankQuery(ctx context.Context, ev domain.InboundEvent) bool {
	if !d.inGroup(ev) || ev.SenderID == 0 {
		return false
	}
	rec, err := d.ranks.Lookup(ctx, ev.SenderID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			d.logger.Error("rank lookup failed", "user_id", ev.SenderID, "error", err)
		}
		// неизвестный пользователь и ошибка хранилища выглядят одинаково
		rec = domain.UserRecord{UserID: ev.SenderID, MessageCount: 0, RankLabel: domain.RankWanderer}
	}
	name := ev.SenderName
	if name == "" {
		name = strconv.FormatInt(ev.SenderID, 10)
	}
	text := fmt.Sprintf("%s, ваш ранг: %s (сообщений: %d)", name, rec.RankLabel, rec.MessageCount)
	return d.send(ev.OriginChatID, text)
}

func (d *Dispatcher) handleTop(ctx context.Context, ev domain.InboundEvent) bool {
	if !d.inGroup(ev) {
		return false
	}
	records, err := d.ranks.Top(ctx, 5)
	if err != nil {
		d.logger.Error("top query failed", "error", err)
		return false
	}
	if len(records) == 0 {
		return d.send(ev.OriginChatID, "Пока никто не написал ни одного сообщения.")
	}
	if d.charts != nil {
		labels, values := TopChartData(records)
		if png, err := d.charts.RenderBarChart(labels, values); err != nil {
			d.logger.Error("top chart render failed", "error", err)
		} else if err := d.sender.SendPNG(ev.OriginChatID, "top.png", png); err != nil {
			d.logger.Error("top chart send failed", "error", err)
		} else {
			return true
		}
	}
	return d.send(ev.OriginChatID, TopText(records))
}

func (d *Dispatcher) handleRelay(ctx context.Context, ev domain.InboundEvent) bool {
	replied := true
	if err := d.sender.ReplyText(ev.OriginChatID, ReplyRelayComment, ev.MessageID); err != nil {
		d.logger.Error("relay comment failed", "message_id", ev.MessageID, "error", err)
		replied = false
	}

	// Зеркалим пост на форум, не блокируя обработку доставки
	if d.forum != nil && strings.TrimSpace(ev.FreeText) != "" {
		body := ev.FreeText
		authorID := ev.SenderID
		authorName := ev.SenderName
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), forumPostTimeout)
			defer cancel()
			title := postTitle(body)
			if err := d.forum.PostToForum(ctx, title, body, authorID, authorName); err != nil {
				d.logger.Error("forum mirror failed", "error", err)
				return
			}
			d.logger.Info("forum mirror posted", "title", title)
		}()
	}
	return replied
}

func (d *Dispatcher) handleLink(ctx context.Context, ev domain.InboundEvent) bool {
	if ev.ChatKind != domain.ChatPrivate || ev.SenderID == 0 {
		return false
	}
	if d.forum == nil {
		return false
	}
	username := strings.TrimSpace(ev.CommandArgs)
	if username == "" {
		return d.send(ev.OriginChatID, ReplyLinkUsage)
	}
	if err := d.forum.LinkAccount(ctx, username, ev.SenderID); err != nil {
		d.logger.Error("forum link failed", "user_id", ev.SenderID, "error", err)
		return d.send(ev.OriginChatID, ReplyLinkFail)
	}
	return d.send(ev.OriginChatID, ReplyLinkOK)
}

// postTitle — первая строка поста, обрезанная до разумной длины заголовка
func postTitle(body string) string {
	line := body
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if r := []rune(line); len(r) > 80 {
		line = string(r[:80])
	}
	if line == "" {
		line = "Новый пост канала"
	}
	return line
}
