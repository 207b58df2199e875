package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"employee-directory/config"
	"employee-directory/internal/app/service"
	"employee-directory/internal/delivery/rest"
	"employee-directory/internal/delivery/telegram"
	"employee-directory/internal/delivery/telegram/flows"
	"employee-directory/internal/logging"
	"employee-directory/internal/repository/sqlite"
	"employee-directory/pkg/workerpool"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("запуск справочника сотрудников", zap.String("db", cfg.Database.Path))

	store := sqlite.NewStore(cfg.Database.Path, cfg.Database.BusyTimeout)
	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	repo := sqlite.NewSqliteEmployeeRepo(store)
	employees := service.NewEmployeeService(repo, nil)

	var bot *telebot.Bot
	if cfg.Telegram.Enabled() {
		pool := workerpool.NewWorkerPool(cfg.Telegram.Workers, cfg.Telegram.QueueSize)
		defer pool.Close()
		async := service.NewAsyncService(pool)

		dir := &flows.Directory{Employees: employees, Async: async, Timeout: cfg.Telegram.Timeout}
		bot, err = startBot(cfg.Telegram, dir, logger)
		if err != nil {
			return err
		}
		defer bot.Stop()

		if cfg.Telegram.ChatID != 0 {
			employees.Notifier = telegram.NewNotifier(bot, cfg.Telegram.ChatID, async, logger)
		}
	}

	router, err := rest.NewRouter(rest.NewHandler(employees, logger), logger)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return serveHTTP(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

func startBot(cfg config.TelegramConfig, dir *flows.Directory, logger *zap.Logger) (*telebot.Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка запуска бота: %w", err)
	}
	handler := &telegram.Handler{Bot: bot, Directory: dir, Logger: logger}
	handler.Register()

	go bot.Start()
	logger.Info("бот запущен", zap.String("username", bot.Me.Username))
	return bot, nil
}

// serveHTTP слушает до отмены ctx, затем мягко останавливает сервер.
func serveHTTP(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP сервер слушает", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("остановка сервера")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
