package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"agro-forecast/engine"
	"agro-forecast/market"
	"agro-forecast/models"
	"agro-forecast/weather"
)

const (
	defaultWeatherDays = 7
	requestTimeout     = 15 * time.Second
)

var errBadParam = errors.New("некорректный параметр")

func (s *Server) getWeather(w http.ResponseWriter, r *http.Request) {
	loc, err := locationParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	days, err := intParam(r, "days", defaultWeatherDays)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	series, err := s.engine.WeatherForecast(ctx, loc, days)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (s *Server) getCrops(w http.ResponseWriter, r *http.Request) {
	loc, err := locationParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	crops, err := s.engine.CropRecommendations(ctx, loc)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, crops)
}

func (s *Server) getPrices(w http.ResponseWriter, r *http.Request) {
	loc, err := locationParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	days, err := intParam(r, "days", 0)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	forecasts, err := s.engine.MarketPriceForecasts(ctx, loc, r.URL.Query().Get("commodity"), days)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, forecasts)
}

type adviceResponse struct {
	UserID string   `json:"user_id"`
	Items  []string `json:"items"`
}

func (s *Server) getAdvice(w http.ResponseWriter, r *http.Request) {
	userID, loc, err := adviceParams(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items := s.engine.PersonalizedRecommendations(ctx, userID, loc)
	writeJSON(w, http.StatusOK, adviceResponse{UserID: userID, Items: items})
}

func (s *Server) publishAdvice(w http.ResponseWriter, r *http.Request) {
	userID, loc, err := adviceParams(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	batch, err := s.engine.PublishRecommendations(ctx, userID, loc)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, batch)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	provider := "synthetic"
	if s.provider != nil && s.provider.IsAvailable() {
		provider = s.provider.Name()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": s.clock.Now().Format(time.RFC3339),
		"provider":  provider,
	})
}

// fail переводит ошибку движка в HTTP статус
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Внутренняя ошибка"
	switch {
	case errors.Is(err, market.ErrCommodityNotFound):
		status, message = http.StatusNotFound, "Товар не найден"
	case errors.Is(err, errBadParam),
		errors.Is(err, weather.ErrInvalidDays),
		errors.Is(err, engine.ErrInvalidLocation):
		status, message = http.StatusBadRequest, "Некорректный запрос"
	case errors.Is(err, engine.ErrNoPublisher):
		status, message = http.StatusServiceUnavailable, "Публикация недоступна"
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
			"err", err,
		)
	}
	writeJSON(w, status, models.ErrorResponse{Error: message, Details: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func locationParam(r *http.Request) (models.Location, error) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: lat", errBadParam)
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: lon", errBadParam)
	}
	return models.Location{Latitude: lat, Longitude: lon, Address: q.Get("address")}, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errBadParam, name)
	}
	return v, nil
}

// adviceParams user_id обязателен, координаты только парой
func adviceParams(r *http.Request) (string, *models.Location, error) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	if userID == "" {
		return "", nil, fmt.Errorf("%w: user_id", errBadParam)
	}
	if q.Get("lat") == "" && q.Get("lon") == "" {
		return userID, nil, nil
	}
	loc, err := locationParam(r)
	if err != nil {
		return "", nil, err
	}
	return userID, &loc, nil
}
