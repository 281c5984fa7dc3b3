package domain

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда пользователь ещё ни разу не считался
var ErrNotFound = errors.New("user not found")

type UserRecord struct {
	UserID       int64
	DisplayName  string
	MessageCount int64
	RankLabel    string
}

type RankRepository interface {
	// Increment атомарно увеличивает счётчик (или создаёт запись с 1),
	// обновляет имя и пересчитывает ранг той же записью
	Increment(ctx context.Context, userID int64, displayName string) (UserRecord, error)
	// Lookup возвращает ErrNotFound, если записи нет
	Lookup(ctx context.Context, userID int64) (UserRecord, error)
	// Top возвращает до n записей по убыванию счётчика
	Top(ctx context.Context, n int) ([]UserRecord, error)
}

// Абстракция отправки сообщений (реализуется Telegram-адаптером)
type MessageSender interface {
	SendText(chatID int64, text string) error
	ReplyText(chatID int64, text string, replyToMessageID int) error
	SendPNG(chatID int64, name string, png []byte) error
}

// ForumPoster — граница внешнего форумного API
type ForumPoster interface {
	PostToForum(ctx context.Context, title, body string, authorID int64, authorName string) error
	LinkAccount(ctx context.Context, forumUsername string, userID int64) error
}
