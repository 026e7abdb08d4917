package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/favsync/favsync/internal/repository/mysql"
	"github.com/favsync/favsync/internal/repository/mysql/model"
	redisRepo "github.com/favsync/favsync/internal/repository/redis"
	"github.com/favsync/favsync/internal/rest"
	"github.com/favsync/favsync/internal/rest/middleware"
	"github.com/favsync/favsync/internal/twitter"
	"github.com/favsync/favsync/internal/usecase/like"
	"github.com/favsync/favsync/internal/usecase/tweet"
	"github.com/favsync/favsync/internal/usecase/user"
	"github.com/favsync/favsync/internal/workers"
)

const (
	defaultTimeout       = 30
	defaultAddress       = ":8080"
	defaultCacheDB       = 0
	defaultSessionHours  = 72
	defaultRemoteRetries = 0
	dbMaxRetry           = 10
	dbRetryIntervalSec   = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	if err := db.AutoMigrate(&model.User{}, &model.Tweet{}, &model.UserLike{}); err != nil {
		log.Fatal("failed to migrate database schema:", err)
	}

	// prepare session backend
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the redis connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to redis", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	tweetRepo := mysqlRepo.NewTweetRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)

	sessionTTLStr := os.Getenv("SESSION_TTL_HOURS")
	sessionTTLHours, err := strconv.Atoi(sessionTTLStr)
	if err != nil {
		log.Println("failed to parse session TTL, using default 72 hours")
		sessionTTLHours = defaultSessionHours
	}
	sessionTTL := time.Duration(sessionTTLHours) * time.Hour
	sessionStore := redisRepo.NewSessionStore(client, sessionTTL)

	// Prepare twitter client
	consumerKey := os.Getenv("TWITTER_CONSUMER_KEY")
	consumerSecret := os.Getenv("TWITTER_CONSUMER_SECRET")
	twitterClient := twitter.NewClient(twitter.Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	})

	// Build service Layer
	remoteRetriesStr := os.Getenv("LIKE_REMOTE_RETRIES")
	remoteRetries, err := strconv.Atoi(remoteRetriesStr)
	if err != nil {
		log.Println("failed to parse remote retries, using default 0")
		remoteRetries = defaultRemoteRetries
	}

	tweetSvc := tweet.NewService(tweetRepo)
	userSvc := user.NewService(userRepo)
	likeSvc := like.NewService(likeRepo, twitterClient, remoteRetries)

	// Start stream worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	track := splitTrack(os.Getenv("TWITTER_TRACK"))
	if len(track) > 0 {
		stream := twitter.NewStream(twitter.StreamConfig{
			ConsumerKey:    consumerKey,
			ConsumerSecret: consumerSecret,
			AccessToken:    os.Getenv("TWITTER_ACCESS_TOKEN"),
			AccessSecret:   os.Getenv("TWITTER_ACCESS_TOKEN_SECRET"),
			Track:          track,
		})
		ingester := workers.NewIngestWorker(stream, tweetSvc)
		go ingester.Start(ctx)
	} else {
		log.Println("TWITTER_TRACK is empty, stream ingestion disabled")
	}

	statusHandler := rest.NewStatusHandler(likeSvc, userSvc)
	likeHandler := rest.NewLikeHandler(likeSvc)
	tweetHandler := rest.NewTweetHandler(tweetSvc)
	authHandler := rest.NewAuthHandler(rest.AuthConfig{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		CallbackURL:    os.Getenv("OAUTH_CALLBACK_URL"),
		SessionTTL:     sessionTTL,
	}, twitterClient, userSvc, sessionStore)

	route.Use(middleware.LoadUser(sessionStore, userSvc))

	// Register routes
	route.GET("/", statusHandler.Status)
	route.GET("/login/twitter", authHandler.Login)
	route.GET("/oauth/callback", authHandler.Callback)
	route.GET("/logout", authHandler.Logout)

	authorized := route.Group("/")
	authorized.Use(middleware.RequireUser())
	{
		authorized.POST("/like", likeHandler.LikeAll)
		authorized.POST("/tweets", tweetHandler.Store)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

func splitTrack(raw string) []string {
	parts := strings.Split(raw, ",")
	track := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			track = append(track, p)
		}
	}
	return track
}
