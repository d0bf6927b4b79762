package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pollbase/config"
	"pollbase/internal/cache"
	"pollbase/internal/repository"
	"pollbase/internal/repository/memory"
	"pollbase/internal/service"
	"pollbase/internal/transport/gql"
	"pollbase/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	var (
		surveyRepo         repository.SurveyRepo
		questionRepo       repository.QuestionRepo
		optionRepo         repository.OptionRepo
		answerRepo         repository.AnswerRepo
		surveyQuestionRepo repository.SurveyQuestionRepo
		uow                repository.UnitOfWork
	)

	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}
		log.Println("Connected to MongoDB")

		db := mongoClient.Database(cfg.MongoDatabase)
		seq := repository.NewSequence(db)
		surveyRepo = repository.NewSurveyRepo(db, seq)
		questionRepo = repository.NewQuestionRepo(db, seq)
		optionRepo = repository.NewOptionRepo(db, seq)
		answerRepo = repository.NewAnswerRepo(db, seq)
		surveyQuestionRepo = repository.NewSurveyQuestionRepo(db, seq)
		uow = repository.NewUnitOfWork(mongoClient)
	} else {
		log.Println("Warning: MONGO_URI not set, using in-memory store")
		store := memory.NewStore()
		surveyRepo = memory.NewSurveyRepo(store)
		questionRepo = memory.NewQuestionRepo(store)
		optionRepo = memory.NewOptionRepo(store)
		answerRepo = memory.NewAnswerRepo(store)
		surveyQuestionRepo = memory.NewSurveyQuestionRepo(store)
		uow = store
	}

	scores := cache.NewNoopScoreCache()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		scores = cache.NewScoreCache(rdb, cfg.ScoreCacheTTL)
	} else {
		log.Println("Warning: REDIS_ADDR not set, score caching disabled")
	}

	policy := service.ParseCompletionPolicy(cfg.CompletionPolicy)

	surveySvc := service.NewSurveyService(
		surveyRepo, questionRepo, optionRepo, answerRepo, surveyQuestionRepo,
		uow, scores, policy,
	)
	questionSvc := service.NewQuestionService(questionRepo, surveyRepo, surveyQuestionRepo)
	optionSvc := service.NewOptionService(optionRepo, questionRepo)
	answerSvc := service.NewAnswerService(answerRepo, questionRepo, optionRepo, scores)

	schema, err := gql.NewSchema(&gql.Resolver{
		Surveys:   surveySvc,
		Questions: questionSvc,
		Options:   optionSvc,
		Answers:   answerSvc,
	})
	if err != nil {
		log.Fatal("Failed to build GraphQL schema:", err)
	}

	router := rest.NewRouter(schema, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /graphql")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
