package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/pkg/errors"
)

// routeEndpoint - маршрутный эндпоинт OpenRouteService c GeoJSON-ответом
const routeEndpoint = "/v2/directions/driving-car/geojson"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient создает клиент OpenRouteService. HTTP-клиент один на процесс,
// соединения переиспользуются между запросами.
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RouteProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type routeRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type routeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Route запрашивает маршрут между двумя точками. Провайдер принимает
// координаты в порядке (lon, lat); дистанция в ответе - в метрах.
func (c *client) Route(ctx context.Context, start, end domain.Coord) (*domain.RouteGeometry, error) {
	body, err := json.Marshal(routeRequest{
		Coordinates: [][]float64{
			{start.Lon, start.Lat},
			{end.Lon, end.Lat},
		},
	})
	if err != nil {
		c.logger.Error("Failed to marshal route request", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+routeEndpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create route request", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Routing provider request failed", zap.Error(err))
		return nil, errors.ErrRouteUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Routing provider returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return nil, errors.ErrRouteUpstream
	}

	var routeResp routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		c.logger.Error("Failed to decode route response", zap.Error(err))
		return nil, errors.ErrRouteUpstream
	}

	if len(routeResp.Features) == 0 {
		c.logger.Error("Routing provider returned no features")
		return nil, errors.ErrRouteUpstream
	}

	feature := routeResp.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		c.logger.Error("Routing provider returned degenerate geometry",
			zap.Int("points", len(feature.Geometry.Coordinates)),
		)
		return nil, errors.ErrRouteUpstream
	}

	geom := &domain.RouteGeometry{
		Polyline:   feature.Geometry.Coordinates,
		TotalMiles: feature.Properties.Summary.Distance * domain.MetersToMiles,
	}

	c.logger.Debug("Route fetched",
		zap.Int("points", len(geom.Polyline)),
		zap.Float64("total_miles", geom.TotalMiles),
	)

	return geom, nil
}
