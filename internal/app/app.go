package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/smartlinks/internal/config"
	"github.com/fsdevblog/smartlinks/internal/controllers"
	"github.com/fsdevblog/smartlinks/internal/db"
	"github.com/fsdevblog/smartlinks/internal/logs"
	"github.com/fsdevblog/smartlinks/internal/metrics"
	"github.com/fsdevblog/smartlinks/internal/services"
	"github.com/fsdevblog/smartlinks/internal/tlscert"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ShutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	config   config.Config
	Services *services.Services
	Logger   *logrus.Logger
	closeDB  func() error
}

// New создает логгер, подключается к хранилищу и собирает сервисный слой.
//
// Параметры:
//   - ctx: контекст подключения к хранилищу
//   - conf: конфигурация приложения
//   - logOutput: куда пишутся логи
//
// Возвращает:
//   - *App: готовое к запуску приложение
//   - error: ошибка инициализации
func New(ctx context.Context, conf config.Config, logOutput io.Writer) (*App, error) {
	logger, logErr := logs.New(logs.WithLevel(conf.LogLevel), logs.WithOutput(logOutput))
	if logErr != nil {
		return nil, fmt.Errorf("init logger: %w", logErr)
	}
	// явно заданный GIN_MODE gin применяет сам
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(ginMode(logger.GetLevel()))
	}

	conn, connErr := Connect(ctx, conf)
	if connErr != nil {
		return nil, connErr
	}

	svc, svcErr := services.Factory(conn, services.ServiceType(conf.DBType), logger,
		services.WithRecorder(metrics.NewRecorder()),
	)
	if svcErr != nil {
		_ = Close(conn)
		return nil, fmt.Errorf("init services: %w", svcErr)
	}

	return &App{
		config:   conf,
		Services: svc,
		Logger:   logger,
		closeDB:  closer(conn),
	}, nil
}

// Connect открывает хранилище, выбранное в конфигурации. Для SQL хранилищ схема накатывается сразу.
func Connect(ctx context.Context, conf config.Config) (any, error) {
	conn, err := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  db.StorageType(conf.DBType),
		PostgresDSN:  &conf.DatabaseDSN,
		SqliteDBPath: &conf.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}
	return conn, nil
}

// Close закрывает соединение, открытое Connect.
func Close(conn any) error {
	return closer(conn)()
}

// Close закрывает соединение с хранилищем. Run делает это сам при остановке.
func (a *App) Close() error {
	return a.closeDB()
}

// Handler возвращает настроенный роутер.
func (a *App) Handler() http.Handler {
	return controllers.SetupRouter(controllers.RouterParams{
		SmartlinkStore:    a.Services.SmartlinkService,
		ConnectionChecker: a.Services.PingService,
		Logger:            a.Logger,
		APIPrefix:         a.config.APIPrefix,
	})
}

// Run запускает web сервер и блокируется до SIGINT/SIGTERM, отмены ctx или ошибки сервера.
// При остановке активные запросы дорабатывают не дольше ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	listen := server.ListenAndServe
	if a.config.EnableHTTPS {
		if err := a.ensureCert(); err != nil {
			_ = a.Close()
			return err
		}
		listen = func() error {
			return server.ListenAndServeTLS(a.config.TLSCertFile, a.config.TLSKeyFile)
		}
	}

	errChan := make(chan error, 1)
	a.Logger.WithFields(logrus.Fields{
		"address": a.config.ServerAddress,
		"https":   a.config.EnableHTTPS,
	}).Info("Starting server")
	go func() {
		if err := listen(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.WithError(err).Error("server shutdown error")
		serverErr = errors.Join(serverErr, err)
	}

	if err := a.Close(); err != nil {
		a.Logger.WithError(err).Error("close storage error")
	}
	a.Logger.Info("Server stopped")

	return serverErr
}

// ensureCert выпускает самоподписанный сертификат, если рабочего еще нет.
func (a *App) ensureCert() error {
	opts := []func(*tlscert.Options){tlscert.WithFiles(a.config.TLSCertFile, a.config.TLSKeyFile)}
	if host, _, err := net.SplitHostPort(a.config.ServerAddress); err == nil && host != "" {
		opts = append(opts, tlscert.WithHosts(host))
	}

	issued, err := tlscert.EnsurePair(opts...)
	if err != nil {
		return fmt.Errorf("prepare tls certificate: %w", err)
	}
	if issued {
		a.Logger.WithField("cert", a.config.TLSCertFile).Info("Self-signed certificate issued")
	}
	return nil
}

// ginMode отладочный режим gin с дампом маршрутов только на уровне debug и ниже.
func ginMode(level logrus.Level) string {
	if level >= logrus.DebugLevel {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func closer(conn any) func() error {
	gormDB, ok := conn.(*gorm.DB)
	if !ok {
		return func() error { return nil }
	}
	return func() error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return fmt.Errorf("get sql.DB: %w", err)
		}
		return sqlDB.Close() //nolint:wrapcheck
	}
}
