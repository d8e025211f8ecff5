// Package app wires configuration into the running service graph.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"moneybrief/internal/advice"
	"moneybrief/internal/cache"
	"moneybrief/internal/config"
	"moneybrief/internal/llm"
	"moneybrief/internal/mailer"
	"moneybrief/internal/report"
	"moneybrief/internal/repository"
	"moneybrief/internal/service"
	"moneybrief/internal/transport/rest"
	"moneybrief/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// narrativeTTL is how long finished narrative jobs stay readable
const narrativeTTL = time.Hour

type App struct {
	Handler   http.Handler
	Narrative *service.NarrativeService
	Hub       *ws.Hub

	mongo  *mongo.Client
	redis  *redis.Client
	logger *zap.Logger
}

// New connects the optional backends and builds the HTTP handler.
// MongoDB supplies the advice catalog and Redis the session cache; either
// may be left unconfigured.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger}

	catalog, err := a.loadCatalog(ctx, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	sessions, narratives, err := a.caches(ctx, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	reportSvc := service.NewReportService(report.NewBuilder(catalog))

	var completer llm.Completer
	if cfg.AI.IsEnabled() {
		completer = llm.NewClient(cfg.AI)
		logger.Info("AI narratives enabled", zap.String("model", cfg.AI.Model))
	} else {
		logger.Warn("OPENAI_API_KEY not set, AI narratives disabled")
	}
	timeout := time.Duration(cfg.AI.TimeoutMS) * time.Millisecond
	a.Narrative = service.NewNarrativeService(completer, reportSvc, narratives, timeout, logger)

	a.Hub = ws.NewHub(logger)
	a.Narrative.SetBroadcaster(a.Hub)

	if !cfg.Mail.IsEnabled() {
		logger.Warn("SMTP credentials not set, email delivery disabled")
	}
	if cfg.ShareSecret == "" {
		logger.Warn("SHARE_SECRET not set, share links expire on restart")
	}

	a.Handler = rest.NewRouter(&rest.Container{
		SessionService:   service.NewSessionService(sessions, logger),
		ReportService:    reportSvc,
		NarrativeService: a.Narrative,
		DeliveryService:  service.NewDeliveryService(mailer.NewSMTP(cfg.Mail), reportSvc, logger),
		ShareService:     service.NewShareService(cfg.ShareSecret, cfg.ShareTTL, cfg.PublicBaseURL),
		WSHub:            a.Hub,
		CORS:             cfg.CORS,
		Logger:           logger,
	})
	return a, nil
}

func (a *App) loadCatalog(ctx context.Context, cfg *config.Config) (*advice.Catalog, error) {
	if cfg.MongoURI == "" {
		a.logger.Info("MONGO_URI not set, using built-in advice catalog")
		return advice.Default(), nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	a.mongo = client

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	catalog, err := repository.NewCatalogRepo(client.Database(cfg.MongoDatabase)).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load advice catalog: %w", err)
	}
	if catalog == nil {
		a.logger.Warn("advice catalog not seeded, using built-in catalog")
		return advice.Default(), nil
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	a.logger.Info("advice catalog loaded", zap.String("version", catalog.Version))
	return catalog, nil
}

func (a *App) caches(ctx context.Context, cfg *config.Config) (cache.SessionCache, cache.NarrativeCache, error) {
	if cfg.RedisAddr == "" {
		a.logger.Info("REDIS_URI not set, keeping sessions in memory")
		mem := cache.NewMemory()
		return mem.Sessions(cfg.SessionTTL), mem.Narratives(narrativeTTL), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	a.redis = rdb
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("ping Redis: %w", err)
	}
	a.logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
	return cache.NewSessionCache(rdb, cfg.SessionTTL), cache.NewNarrativeCache(rdb, narrativeTTL), nil
}

// Close waits for background narrative jobs and releases connections
func (a *App) Close(ctx context.Context) {
	if a.Narrative != nil {
		a.Narrative.Wait()
	}
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("close Redis", zap.Error(err))
		}
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.logger.Warn("disconnect MongoDB", zap.Error(err))
		}
	}
}
