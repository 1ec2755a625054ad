package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/galvanlaw/crm-intake/internal/config"
	"github.com/galvanlaw/crm-intake/internal/infra/database"
	"github.com/galvanlaw/crm-intake/internal/infra/http/handlers"
	"github.com/galvanlaw/crm-intake/internal/infra/http/middleware"
	"github.com/galvanlaw/crm-intake/internal/infra/mail"
	"github.com/galvanlaw/crm-intake/internal/infra/queue"
	"github.com/galvanlaw/crm-intake/internal/usecase"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connecting to Postgres", zap.Error(err))
	}
	defer db.Close()

	// 1. Repositórios
	contactRepo := database.NewContactRepository(db)
	opportunityRepo := database.NewOpportunityRepository(db)
	workshopRepo := database.NewWorkshopRepository(db)
	registrationRepo := database.NewRegistrationRepository(db)

	// 2. Fila + worker de confirmação (opcional: sem broker o intake roda igual)
	var (
		events   usecase.SignupEventPublisherInterface
		rabbitMQ *queue.RabbitMQ
	)
	if cfg.RabbitURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitURL)
		if err != nil {
			logger.Fatal("connecting to RabbitMQ", zap.Error(err))
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailSender := mail.NewEmailSender(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom,
		)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender, logger)
		go worker.Start(queue.QueueName)
	} else {
		logger.Warn("RABBITMQ_URL not set; confirmation emails disabled")
	}

	// 3. UseCases
	resolver := usecase.NewContactResolver(contactRepo, opportunityRepo, logger)
	matcher := usecase.NewWorkshopMatcher(workshopRepo, registrationRepo, logger)
	signupUC := usecase.NewProcessSignupUseCase(resolver, matcher, events, logger)

	// 4. Handlers
	webhookHandler := handlers.NewWorkshopWebhookHandler(signupUC, logger)
	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.SMTPHost)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil, cfg.SMTPHost)
	}

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/webhook/workshop", webhookHandler.Handle)
	r.Get("/webhook/workshop", webhookHandler.HandleVerify)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	logger.Info("intake service listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
