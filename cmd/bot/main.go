package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	telegramAdapter "ether-community-telegram-bot/internal/adapter/telegram"
	"ether-community-telegram-bot/internal/adapter/webhook"
	"ether-community-telegram-bot/internal/config"
	"ether-community-telegram-bot/internal/infra/forum"
	sqliteRepo "ether-community-telegram-bot/internal/infra/sqlite"
	"ether-community-telegram-bot/internal/usecase"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Ошибка настройки логирования: %v", err)
	}
	slog.SetDefault(logger)

	token := cfg.Telegram.Token
	if token == "" {
		token = os.Getenv("BOT_TOKEN")
	}
	if token == "" {
		log.Fatal("Токен бота не задан (ETHERBOT_TELEGRAM_TOKEN или BOT_TOKEN)")
	}

	// Таймаут клиента ограничивает время исходящей отправки,
	// чтобы медленный Telegram не задерживал подтверждение вебхука
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: 15 * time.Second})
	if err != nil {
		log.Fatalf("Ошибка создания бота: %v", err)
	}
	bot.Debug = false
	logger.Info("авторизован", "username", bot.Self.UserName)

	if cfg.Chat.GroupID == 0 {
		logger.Warn("chat.group_id не задан, групповые обработчики отключены")
	}
	if cfg.Chat.ChannelID == 0 {
		logger.Warn("chat.channel_id не задан, комментирование пересланных постов отключено")
	}

	ranks, err := sqliteRepo.NewRankRepo(cfg.Storage.SQLiteDSN)
	if err != nil {
		log.Fatalf("sqlite init error: %v", err)
	}

	sender := telegramAdapter.NewSender(bot)
	modes := usecase.NewModeStore()
	disp := usecase.NewDispatcher(
		usecase.ChatConfig{GroupID: cfg.Chat.GroupID, ChannelID: cfg.Chat.ChannelID},
		ranks, modes, sender, logger,
	)
	disp.SetChartRenderer(telegramAdapter.BarChartRenderer{})

	if cfg.Forum.Domain != "" && cfg.Forum.AppSecret != "" {
		disp.SetForumClient(forum.NewClient(cfg.Forum.Domain, cfg.Forum.AppSecret, forum.WithBaseURL(cfg.Forum.BaseURL)))
	}

	srv := webhook.NewServer(token, disp, logger)
	addr := ":" + strconv.Itoa(cfg.Server.Port)
	logger.Info("слушаем вебхук", "addr", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatalf("Ошибка HTTP-сервера: %v", err)
	}
}
