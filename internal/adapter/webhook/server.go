package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"

	"ether-community-telegram-bot/internal/adapter/telegram"
	"ether-community-telegram-bot/internal/domain"
	"ether-community-telegram-bot/internal/usecase"
)

const dispatchTimeout = 10 * time.Second

type Dispatcher interface {
	Dispatch(ctx context.Context, ev domain.InboundEvent) usecase.Outcome
}

// Server принимает доставки вебхука. Путь содержит хвост токена бота
// (часть после ":"), несовпадение — 403 без вызова диспетчера.
type Server struct {
	tokenSuffix string
	dispatcher  Dispatcher
	logger      *slog.Logger
}

func NewServer(botToken string, d Dispatcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	suffix := botToken
	if i := strings.LastIndex(botToken, ":"); i >= 0 {
		suffix = botToken[i+1:]
	}
	return &Server{tokenSuffix: suffix, dispatcher: d, logger: logger}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/webhook/{token}", s.handleUpdate).Methods(http.MethodPost)
	// старый формат пути, только хвост токена
	r.HandleFunc("/{token}", s.handleUpdate).Methods(http.MethodPost)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"message": "ether community bot",
	})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.tokenSuffix)) != 1 {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if s.dispatcher == nil {
		http.Error(w, "dispatcher is not ready", http.StatusInternalServerError)
		return
	}

	var upd tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "bad update payload", http.StatusBadRequest)
		return
	}

	ev, ok := telegram.EventFromUpdate(upd)
	if !ok {
		// не-сообщения подтверждаем без обработки
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dispatchTimeout)
	defer cancel()
	out := s.dispatcher.Dispatch(ctx, ev)
	s.logger.Debug("update dispatched",
		"update_id", upd.UpdateID,
		"category", out.Category,
		"replied", out.Replied,
	)
	w.WriteHeader(http.StatusOK)
}
