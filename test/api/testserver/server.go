//go:build api

// Package testserver provides a fully wired CESLAR server for API integration tests.
package testserver

import (
	"context"
	"time"

	"ceslar/internal/authz"
	"ceslar/internal/cache"
	"ceslar/internal/handler"
	"ceslar/internal/queue"
	"ceslar/internal/repository"
	"ceslar/internal/router"
	"ceslar/internal/service"
	"ceslar/internal/storage"
	"ceslar/pkg/auth"
	"ceslar/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestClaimsCacheTTL is how long resolved claims stay in Redis.
	TestClaimsCacheTTL = time.Minute
	// TestRateLimitPerMinute is high enough that only the rate-limit tests trip it.
	TestRateLimitPerMinute = 30
	// TestDBName is the database name used in tests.
	TestDBName = "ceslar_api_test"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo       repository.UserRepository
	ChurchRepo     repository.ChurchRepository
	EventRepo      repository.EventRepository
	SermonRepo     repository.SermonRepository
	MinistryRepo   repository.MinistryRepository
	MembershipRepo repository.MembershipRepository
	QuestionRepo   repository.QuestionRepository

	// Auth
	JWTManager     *auth.JWTManager
	ClaimsResolver *authz.ClaimsResolver

	// Stats recounts triggered by membership and content writes.
	StatsProcessor *queue.Processor

	cancel context.CancelFunc
}

// New starts the containers and wires the same object graph as cmd/server.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	ts := &TestServer{
		MongoDB: mongoDB,
		Redis:   redisContainer,
		MinIO:   minioContainer,
	}

	s3Client, err := storage.NewS3Client(ctx,
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false,
	)
	if err != nil {
		ts.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedisFromClient(redisContainer.Client)
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	db := mongoDB.Database
	ts.UserRepo = repository.NewUserRepository(db)
	ts.ChurchRepo = repository.NewChurchRepository(db)
	ts.EventRepo = repository.NewEventRepository(db)
	ts.SermonRepo = repository.NewSermonRepository(db)
	ts.MinistryRepo = repository.NewMinistryRepository(db)
	ts.MembershipRepo = repository.NewMembershipRepository(db)
	ts.QuestionRepo = repository.NewQuestionRepository(db)

	claimsResolver := authz.NewClaimsResolver(ts.UserRepo, ts.MembershipRepo, redisCache, TestClaimsCacheTTL)

	// Service layer
	churchService := service.NewChurchService(ts.ChurchRepo, redisCache, s3Client)
	statsProcessor := queue.NewProcessor(queue.NewMemoryQueue(100), queue.Counters{
		Members: ts.MembershipRepo.CountActive,
		Events:  ts.EventRepo.CountPublished,
		Sermons: ts.SermonRepo.CountPublished,
	}, churchService, 2)

	authService := service.NewAuthService(ts.UserRepo, jwtManager)
	userService := service.NewUserService(ts.UserRepo, claimsResolver)
	eventService := service.NewEventService(ts.EventRepo, statsProcessor, s3Client)
	sermonService := service.NewSermonService(ts.SermonRepo, statsProcessor, s3Client)
	ministryService := service.NewMinistryService(ts.MinistryRepo, s3Client)
	membershipService := service.NewMembershipService(service.MembershipServiceConfig{
		Repo:     ts.MembershipRepo,
		Churches: ts.ChurchRepo,
		Users:    ts.UserRepo,
		Claims:   claimsResolver,
		Stats:    statsProcessor,
	})
	questionService := service.NewQuestionService(ts.QuestionRepo, ts.ChurchRepo)
	uploadService := service.NewUploadService(ts.ChurchRepo, s3Client)

	ts.Router = router.Setup(&router.Config{
		AuthHandler:        handler.NewAuthHandler(authService),
		UserHandler:        handler.NewUserHandler(userService),
		ChurchHandler:      handler.NewChurchHandler(churchService),
		EventHandler:       handler.NewEventHandler(eventService),
		SermonHandler:      handler.NewSermonHandler(sermonService),
		MinistryHandler:    handler.NewMinistryHandler(ministryService),
		MembershipHandler:  handler.NewMembershipHandler(membershipService),
		QuestionHandler:    handler.NewQuestionHandler(questionService),
		UploadHandler:      handler.NewUploadHandler(uploadService),
		HealthHandler:      handler.NewHealthHandler(mongoDB),
		TokenManager:       jwtManager,
		ClaimsResolver:     claimsResolver,
		RateLimiter:        redis_rate.NewLimiter(redisContainer.Client),
		RateLimitPerMinute: TestRateLimitPerMinute,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		MetricsEnabled:     true,
	})

	ts.JWTManager = jwtManager
	ts.ClaimsResolver = claimsResolver
	ts.StatsProcessor = statsProcessor

	procCtx, cancel := context.WithCancel(context.Background())
	ts.cancel = cancel
	statsProcessor.Start(procCtx)

	return ts, nil
}

// Cleanup stops the stats workers and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.StatsProcessor != nil {
		ts.cancel()
		ts.StatsProcessor.Stop()
	}
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
