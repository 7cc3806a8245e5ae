package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"agro-forecast/aggregator"
	"agro-forecast/api"
	"agro-forecast/clock"
	"agro-forecast/config"
	"agro-forecast/engine"
	"agro-forecast/metrics"
	"agro-forecast/models"
	"agro-forecast/notify"
	"agro-forecast/providers"
	"agro-forecast/random"
	"agro-forecast/store"
)

var (
	cfg    *config.Config
	agg    *aggregator.Aggregator
	logger *slog.Logger

	output string
	seed   uint64
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Создаем агрегатор и добавляем провайдеры
	agg = aggregator.NewAggregator(cfg.CacheDuration)
	agg.AddProvider(providers.NewOpenMeteoProvider(cfg.OpenMeteoEnabled))
	agg.AddProvider(providers.NewOpenWeatherProvider(cfg.OpenWeatherAPIKey))
	agg.AddProvider(providers.NewWeatherAPIProvider(cfg.WeatherAPIKey))
	logger.Debug("weather providers configured", "providers", agg.GetProvidersInfo())

	var rootCmd = &cobra.Command{
		Use:   "agro",
		Short: "Агрономические прогнозы",
		Long:  "Прогноз погоды, подбор культур, прогноз цен и советы для фермеров",
	}
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Формат вывода (text, json)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Зерно генератора для воспроизводимых прогнозов (0 = случайное)")

	var serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Запуск HTTP сервера",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer()
		},
	}

	var weatherCmd = &cobra.Command{
		Use:   "weather [широта] [долгота]",
		Short: "Прогноз погоды по дням",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocation(args)
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")
			return withEngine(func(e *engine.Engine) error {
				series, err := e.WeatherForecast(cmd.Context(), loc, days)
				if err != nil {
					return err
				}
				return render(series, func() { printWeather(series) })
			})
		},
	}
	weatherCmd.Flags().IntP("days", "d", 7, "Количество дней")

	var cropsCmd = &cobra.Command{
		Use:   "crops [широта] [долгота]",
		Short: "Подходящие культуры для местоположения",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocation(args)
			if err != nil {
				return err
			}
			return withEngine(func(e *engine.Engine) error {
				crops, err := e.CropRecommendations(cmd.Context(), loc)
				if err != nil {
					return err
				}
				return render(crops, func() { printCrops(crops) })
			})
		},
	}

	var pricesCmd = &cobra.Command{
		Use:   "prices [широта] [долгота]",
		Short: "Прогноз рыночных цен",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocation(args)
			if err != nil {
				return err
			}
			commodity, _ := cmd.Flags().GetString("commodity")
			days, _ := cmd.Flags().GetInt("days")
			return withEngine(func(e *engine.Engine) error {
				forecasts, err := e.MarketPriceForecasts(cmd.Context(), loc, commodity, days)
				if err != nil {
					return err
				}
				return render(forecasts, func() { printPrices(forecasts) })
			})
		},
	}
	pricesCmd.Flags().StringP("commodity", "c", "", "Идентификатор товара (например, rice, tomato)")
	pricesCmd.Flags().IntP("days", "d", 0, "Горизонт прогноза в днях (по умолчанию FORECAST_DAYS)")

	var adviseCmd = &cobra.Command{
		Use:   "advise [пользователь] [широта долгота]",
		Short: "Персональные советы",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return errors.New("координаты задаются парой: широта и долгота")
			}
			var loc *models.Location
			if len(args) == 3 {
				l, err := parseLocation(args[1:])
				if err != nil {
					return err
				}
				loc = &l
			}
			publish, _ := cmd.Flags().GetBool("publish")
			return withEngine(func(e *engine.Engine) error {
				if publish {
					batch, err := e.PublishRecommendations(cmd.Context(), args[0], loc)
					if err != nil {
						return err
					}
					return render(batch, func() {
						printAdvice(batch.Items)
						fmt.Printf("\nОтправлено: %s\n", batch.ID)
					})
				}
				items := e.PersonalizedRecommendations(cmd.Context(), args[0], loc)
				return render(items, func() { printAdvice(items) })
			})
		},
	}
	adviseCmd.Flags().Bool("publish", false, "Отправить советы в Kafka")

	var providersCmd = &cobra.Command{
		Use:   "providers",
		Short: "Показать список доступных провайдеров",
		Run: func(cmd *cobra.Command, args []string) {
			showProviders()
		},
	}

	var userCmd = &cobra.Command{
		Use:   "user",
		Short: "Сохраненные местоположения пользователей",
	}
	var userSetCmd = &cobra.Command{
		Use:   "set [пользователь] [широта] [долгота]",
		Short: "Сохранить местоположение пользователя",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocation(args[1:])
			if err != nil {
				return err
			}
			loc.Address, _ = cmd.Flags().GetString("address")

			db, err := store.NewSQLite(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.SetUserLocation(cmd.Context(), args[0], loc); err != nil {
				return err
			}
			fmt.Printf("✅ Местоположение %s сохранено\n", args[0])
			return nil
		},
	}
	userSetCmd.Flags().StringP("address", "a", "", "Адрес или название места")
	userCmd.AddCommand(userSetCmd)

	// Команда для очистки кеша
	var clearCacheCmd = &cobra.Command{
		Use:   "clear-cache",
		Short: "Очистить кеш",
		Run: func(cmd *cobra.Command, args []string) {
			agg.ClearCache()
			fmt.Println("✅ Кеш очищен")
		},
	}

	rootCmd.AddCommand(serverCmd, weatherCmd, cropsCmd, pricesCmd, adviseCmd, providersCmd, userCmd, clearCacheCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEngine собирает движок; закрытие ресурсов на вызывающем
func newEngine(m *metrics.Metrics) (*engine.Engine, func(), error) {
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){func() { db.Close() }}

	opts := engine.Options{
		Provider:     agg,
		Clock:        clock.System{},
		Locations:    db,
		Logger:       logger,
		Metrics:      m,
		ForecastDays: cfg.ForecastDays,
	}
	if seed != 0 {
		opts.Rand = random.Seeded(seed)
	}
	if len(cfg.KafkaBrokers) > 0 {
		pub := notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		opts.Publisher = pub
		closers = append(closers, func() { pub.Close() })
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	return engine.New(opts), closeAll, nil
}

func withEngine(fn func(e *engine.Engine) error) error {
	e, closeAll, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer closeAll()
	return fn(e)
}

// startServer запускает HTTP сервер
func startServer() error {
	m := metrics.New()
	e, closeAll, err := newEngine(m)
	if err != nil {
		return err
	}
	defer closeAll()

	srv := api.NewServer(e, agg, clock.System{}, m, logger)

	// Настройка сервера
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "port", cfg.ServerPort, "providers", agg.GetProvidersInfo())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка сервера: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при завершении работы сервера: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func parseLocation(args []string) (models.Location, error) {
	var loc models.Location
	if _, err := fmt.Sscan(args[0], &loc.Latitude); err != nil {
		return loc, fmt.Errorf("некорректная широта %q", args[0])
	}
	if _, err := fmt.Sscan(args[1], &loc.Longitude); err != nil {
		return loc, fmt.Errorf("некорректная долгота %q", args[1])
	}
	return loc, nil
}

// render печатает JSON или текст в зависимости от --output
func render(v interface{}, text func()) error {
	if output == "json" {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	text()
	return nil
}

func printWeather(series []models.WeatherDay) {
	fmt.Println("🌤️  Прогноз погоды")
	fmt.Println(strings.Repeat("=", 60))
	for _, d := range series {
		mark := ""
		if d.Synthetic {
			mark = " *"
		}
		fmt.Printf("%s  %5.1f..%5.1f°C  осадки %3.0f%% %5.1f мм  влажность %3.0f%%  %s%s\n",
			d.Date.Format("2006-01-02"), d.Temperature.Min, d.Temperature.Max,
			d.Precipitation.Probability*100, d.Precipitation.Amount, d.Humidity, d.Condition, mark)
	}
	fmt.Println("* синтетический прогноз")
}

func printCrops(crops []models.CropRecommendation) {
	fmt.Println("🌱 Рекомендуемые культуры")
	fmt.Println(strings.Repeat("=", 60))
	if len(crops) == 0 {
		fmt.Println("Подходящих культур не найдено")
		return
	}
	for _, c := range crops {
		fmt.Printf("%-28s %3.0f%%  урожай %.1f-%.1f %s  цена %.0f-%.0f %s\n",
			c.CropName, c.SuitabilityScore*100,
			c.ExpectedYield.Min, c.ExpectedYield.Max, c.ExpectedYield.Unit,
			c.ExpectedPrice.Min, c.ExpectedPrice.Max, c.ExpectedPrice.Currency)
	}
}

func printPrices(forecasts []models.MarketForecast) {
	fmt.Println("📈 Прогноз цен")
	fmt.Println(strings.Repeat("=", 60))
	for _, f := range forecasts {
		fmt.Printf("%-14s %6.0f → %6.0f  (%+.1f%%, уверенность %.0f%%)\n",
			f.CommodityName, f.CurrentPrice, f.ForecastedPrice, f.PriceChangePercentage, f.ConfidenceLevel*100)
	}
}

func printAdvice(items []string) {
	fmt.Println("💡 Советы")
	fmt.Println(strings.Repeat("=", 60))
	for i, s := range items {
		fmt.Printf("%d. %s\n", i+1, s)
	}
}

// showProviders показывает список доступных провайдеров
func showProviders() {
	fmt.Println("📡 Доступные провайдеры погоды:")
	fmt.Println(strings.Repeat("-", 30))

	printStatus("Open-Meteo", cfg.OpenMeteoEnabled)
	printStatus("OpenWeatherMap", cfg.OpenWeatherAPIKey != "")
	printStatus("WeatherAPI", cfg.WeatherAPIKey != "")
	fmt.Println("✓ Синтетическая погода (всегда)")
}

func printStatus(name string, ok bool) {
	if ok {
		fmt.Printf("✓ %s\n", name)
		return
	}
	fmt.Printf("✗ %s (не настроен)\n", name)
}
