package forum

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client зеркалит посты канала на форум сообщества и привязывает аккаунты
type Client struct {
	// Базовый хост API, по умолчанию https://forum.etherhall.example.org
	BaseURL    string
	Domain     string
	AppSecret  string
	HTTPClient *http.Client
}

func NewClient(domain, appSecret string, opts ...func(*Client)) *Client {
	c := &Client{
		BaseURL:    "https://forum.etherhall.example.org",
		Domain:     domain,
		AppSecret:  appSecret,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithBaseURL(baseURL string) func(*Client) {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.BaseURL = baseURL
		}
	}
}

// PostToForum создаёт тему на форуме от имени бота с указанием автора поста
func (c *Client) PostToForum(ctx context.Context, title, body string, authorID int64, authorName string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("post title is empty")
	}
	form := url.Values{}
	form.Set("title", title)
	form.Set("message", body)
	form.Set("author_id", strconv.FormatInt(authorID, 10))
	form.Set("author_name", authorName)
	return c.post(ctx, "/community/post/", "post", form)
}

// LinkAccount привязывает форумный ник к Telegram-пользователю
func (c *Client) LinkAccount(ctx context.Context, forumUsername string, userID int64) error {
	if strings.TrimSpace(forumUsername) == "" {
		return errors.New("forum username is empty")
	}
	form := url.Values{}
	form.Set("username", forumUsername)
	form.Set("telegram_id", strconv.FormatInt(userID, 10))
	return c.post(ctx, "/community/link/", "link", form)
}

func (c *Client) post(ctx context.Context, path, action string, form url.Values) error {
	if c == nil {
		return errors.New("forum client is nil")
	}
	if strings.TrimSpace(c.Domain) == "" || strings.TrimSpace(c.AppSecret) == "" {
		return errors.New("forum domain/app_secret are not set")
	}

	ts := time.Now().Unix()
	tsStr := strconv.FormatInt(ts, 10)
	form.Set("domain", c.Domain)
	form.Set("time", tsStr)
	form.Set("token", md5Hex(c.Domain+tsStr+c.AppSecret))
	form.Set("action", action)

	endpoint := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// считаем успешным любой 2xx
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("forum non-2xx: %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
