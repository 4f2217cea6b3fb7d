package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gabrielduah055/menHealthBackend/internal/config"
	"github.com/Gabrielduah055/menHealthBackend/internal/delivery/httpx"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/mailer"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/mongodb"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/nats"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/paystack"
	"github.com/Gabrielduah055/menHealthBackend/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

func (a *App) Run() error {
	a.logger.Info("Starting store backend")

	mongoClient, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer mongoClient.Close()

	db := mongoClient.Database()

	orderRepo, err := mongodb.NewOrderRepositoryMongo(db, a.logger)
	if err != nil {
		return fmt.Errorf("failed to init order repository: %w", err)
	}
	productRepo, err := mongodb.NewProductRepositoryMongo(db, a.logger)
	if err != nil {
		return fmt.Errorf("failed to init product repository: %w", err)
	}
	blogRepo, err := mongodb.NewBlogRepositoryMongo(db, a.logger)
	if err != nil {
		return fmt.Errorf("failed to init blog repository: %w", err)
	}
	commentRepo := mongodb.NewCommentRepositoryMongo(db, a.logger)
	categoryRepo, err := mongodb.NewCategoryRepositoryMongo(db, a.logger)
	if err != nil {
		return fmt.Errorf("failed to init category repository: %w", err)
	}
	adminRepo := mongodb.NewAdminUserRepositoryMongo(db, a.logger)
	userRepo, err := mongodb.NewUserRepositoryMongo(db, a.logger)
	if err != nil {
		return fmt.Errorf("failed to init user repository: %w", err)
	}

	publisher := a.initNATS()
	defer publisher.Close()

	paymentGateway := paystack.NewClient(
		a.cfg.Paystack.BaseURL,
		a.cfg.Paystack.SecretKey,
		a.cfg.Paystack.CallbackURL,
		a.logger,
	)

	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, paymentGateway, publisher, a.logger)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, productRepo, paymentGateway, publisher, a.logger)
	productUseCase := usecase.NewProductUseCase(productRepo, a.logger)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, a.logger)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, blogRepo, a.logger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, a.logger)
	authUseCase := usecase.NewAuthUseCase(adminRepo, a.cfg.JWT.Secret, a.logger)
	userAuthUseCase := usecase.NewUserAuthUseCase(userRepo, a.initMailer(), a.cfg.JWT.Secret, a.logger)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, productRepo)

	router := httpx.NewRouter(httpx.Handlers{
		Order:     httpx.NewOrderHandler(orderUseCase, paymentUseCase, a.logger),
		Product:   httpx.NewProductHandler(productUseCase, a.logger),
		Blog:      httpx.NewBlogHandler(blogUseCase, commentUseCase, a.logger),
		Comment:   httpx.NewCommentHandler(commentUseCase, a.logger),
		Category:  httpx.NewCategoryHandler(categoryUseCase, a.logger),
		Auth:      httpx.NewAuthHandler(authUseCase, userAuthUseCase, a.logger),
		Dashboard: httpx.NewDashboardHandler(dashboardUseCase, a.logger),

		AuthUseCase:     authUseCase,
		UserAuthUseCase: userAuthUseCase,
	})

	server := &http.Server{
		Addr:         ":" + a.cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a.runServerWithGracefulShutdown(server)
}

func (a *App) initMongoDB() (*mongodb.Client, error) {
	a.logger.Info("Connecting to MongoDB", "uri", a.cfg.Mongo.URI, "db", a.cfg.Mongo.DB)

	client, err := mongodb.NewClient(a.cfg.Mongo.URI, a.cfg.Mongo.DB)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return client, nil
}

func (a *App) initNATS() usecase.EventPublisher {
	if a.cfg.NATS.URL == "" {
		a.logger.Info("NATS URL not set, event publishing disabled")
		return &noopPublisher{}
	}

	publisher, err := connectToNATSWithRetry(a.cfg.NATS.URL, a.logger, 3, 2*time.Second)
	if err != nil {
		a.logger.Warn("Failed to connect to NATS, continuing without event publishing",
			"error", err,
			"url", a.cfg.NATS.URL)
		return &noopPublisher{}
	}

	a.logger.Info("Connected to NATS successfully")
	return publisher
}

func (a *App) initMailer() usecase.Mailer {
	if a.cfg.SMTP.Host == "" {
		a.logger.Info("SMTP host not set, auth codes will be logged instead of mailed")
		return mailer.NewLogMailer(a.logger)
	}

	return mailer.NewSMTPMailer(
		a.cfg.SMTP.Host,
		a.cfg.SMTP.Port,
		a.cfg.SMTP.Username,
		a.cfg.SMTP.Password,
		a.cfg.SMTP.From,
		a.logger,
	)
}

func (a *App) runServerWithGracefulShutdown(server *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server", "port", a.cfg.HTTP.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Warn("Graceful shutdown failed, forcing close", "error", err)
			return server.Close()
		}

		a.logger.Info("Graceful shutdown completed")
		return nil
	}
}

func connectToNATSWithRetry(url string, logger *logger.Logger, maxRetries int, delay time.Duration) (usecase.EventPublisher, error) {
	for i := 0; i < maxRetries; i++ {
		publisher, err := nats.NewNatsPublisher(url, logger)
		if err == nil {
			return publisher, nil
		}

		logger.Warn("Failed to connect to NATS, retrying...",
			"attempt", i+1,
			"max_retries", maxRetries,
			"error", err)

		if i < maxRetries-1 {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts", maxRetries)
}

type noopPublisher struct{}

func (n *noopPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	return nil
}

func (n *noopPublisher) PublishPaymentReceived(ctx context.Context, order *entities.Order) error {
	return nil
}

func (n *noopPublisher) Close() {
}
