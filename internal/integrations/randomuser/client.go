package randomuser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Client клиент каталога профилей сюрвейеров (randomuser.me).
//
// Upstream survey API отдает только числовые идентификаторы сюрвейеров;
// имена и аватары подтягиваются отсюда. Ответы кэшируются, при недоступности
// сервиса генерируются локальные fallback-профили — каталог никогда не
// является причиной отказа операции.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога профилей
func NewClient(baseURL string, timeout, cacheTTL time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache.New(cacheTTL, 2*cacheTTL),
		log:   log,
	}
}

// FetchProfiles возвращает count профилей. Сначала кэш, затем сеть,
// затем fallback-генерация — ошибок наружу не отдаёт.
func (c *Client) FetchProfiles(ctx context.Context, count int) []Profile {
	cacheKey := fmt.Sprintf("profiles:%d", count)
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]Profile)
	}

	profiles, err := c.fetch(ctx, count)
	if err != nil {
		c.log.Warn("Profile directory unavailable, generating fallback profiles: %v", err)
		return generateFallbackProfiles(count)
	}

	c.cache.Set(cacheKey, profiles, cache.DefaultExpiration)
	c.log.Info("Fetched %d surveyor profiles from directory", len(profiles))
	return profiles
}

func (c *Client) fetch(ctx context.Context, count int) ([]Profile, error) {
	reqURL := fmt.Sprintf("%s?results=%d", strings.TrimRight(c.baseURL, "/"), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	// Без User-Agent сервис иногда отклоняет запросы как бот-трафик
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if len(list.Results) == 0 {
		return nil, fmt.Errorf("empty results")
	}

	return list.Results, nil
}

// generateFallbackProfiles генерирует локальные профили, когда каталог
// недоступен. Аватар — детерминированный SVG по seed (валидный URL даже
// без доступа в интернет на стороне UI).
func generateFallbackProfiles(count int) []Profile {
	firstNames := []string{
		"John", "Sarah", "Michael", "Emily", "David", "Lisa",
		"Aiman", "Siti", "Haziq", "Nurin", "Farah", "Hakim",
	}
	lastNames := []string{
		"Mitchell", "Anderson", "Chen", "Roberts", "Thompson", "Rodriguez",
		"Zulkifli", "Rahman", "Tan", "Lim", "Kaur", "Lee",
	}

	out := make([]Profile, count)
	for i := range out {
		first := firstNames[i%len(firstNames)]
		last := lastNames[(i/len(firstNames)+i)%len(lastNames)]
		seed := fmt.Sprintf("%s-%s-%s", first, last, uuid.NewString())

		out[i] = Profile{
			Name: Name{First: first, Last: last},
			Picture: Picture{
				Thumbnail: avatarURL(seed, 64),
				Medium:    avatarURL(seed, 128),
				Large:     avatarURL(seed, 256),
			},
		}
	}
	return out
}

func avatarURL(seed string, size int) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s&size=%d",
		url.QueryEscape(seed), size)
}
