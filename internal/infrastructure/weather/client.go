package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/smart-jordan/internal/config"
	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// currentResponse - интересующая часть ответа /data/2.5/weather
type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

// NewWeatherClient создает клиент сервиса текущей погоды
func NewWeatherClient(cfg *config.WeatherConfig, logger *zap.Logger) repository.WeatherRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Current возвращает текущую температуру и влажность в точке
func (c *client) Current(ctx context.Context, p domain.Point) (*domain.Weather, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather API key is not configured")
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(p.Lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, q.Encode())

	c.logger.Debug("Calling weather API",
		zap.Float64("lat", p.Lat),
		zap.Float64("lon", p.Lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Weather API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("weather API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var weatherResp currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &domain.Weather{
		Temperature: weatherResp.Main.Temp,
		Humidity:    weatherResp.Main.Humidity,
		Lat:         p.Lat,
		Lon:         p.Lon,
		Source:      domain.WeatherSourceLive,
		FetchedAt:   time.Now().UTC(),
	}, nil
}
