package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"translatable/internal/adapters/httpapi"
	"translatable/internal/application"
	"translatable/internal/config"
	"translatable/internal/infrastructure/cache"
	"translatable/internal/infrastructure/database"
	"translatable/internal/infrastructure/events"
	"translatable/internal/infrastructure/i18n"
	"translatable/internal/infrastructure/memory"
	"translatable/internal/infrastructure/scylla"
	"translatable/internal/ports/output"
	"translatable/internal/translatable"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	registry, err := translatable.LoadRegistry(cfg.EntitiesFile)
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement des entités traduisibles: %v", err)
	}
	resolver, err := translatable.NewResolver(cfg.SupportedLocales)
	if err != nil {
		log.Fatalf("❌ Erreur de configuration des locales: %v", err)
	}

	ctx := context.Background()
	repo, cleanup, err := buildRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation du store de traductions: %v", err)
	}
	defer cleanup()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		repo = cache.New(repo, rdb, cfg.RedisPrefix, cfg.RedisTTL)
		log.Println("✅ Cache Redis activé.")
	}

	var publisher output.Publisher
	if cfg.KafkaBrokers != "" {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatalf("❌ Erreur lors de l'initialisation du producteur Kafka: %v", err)
		}
		defer kp.Close()
		publisher = kp
		log.Println("✅ Événements Kafka activés.")
	}

	messages := i18n.NewMessages(cfg.DefaultLocale)
	svc := application.NewTranslationService(registry, repo, publisher, resolver.Default(), cfg.AutoTranslate)
	server := httpapi.NewServer(svc, repo, messages, resolver)

	log.Printf("🚀 translatord à l'écoute sur %s (backend=%s)", cfg.HTTPAddr, cfg.StoreBackend)
	if err := http.ListenAndServe(cfg.HTTPAddr, server.Router()); err != nil {
		log.Printf("❌ Erreur du serveur HTTP: %v", err)
		os.Exit(1)
	}
}

func buildRepository(ctx context.Context, cfg *config.Config) (output.TranslationRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return database.NewTranslationRepository(pool), pool.Close, nil
	case config.BackendScylla:
		session, err := scylla.NewSession(cfg.ScyllaHosts, cfg.ScyllaKeyspace)
		if err != nil {
			return nil, nil, err
		}
		return scylla.NewTranslationRepository(session), session.Close, nil
	default:
		return memory.NewTranslationRepository(), func() {}, nil
	}
}
