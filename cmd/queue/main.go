package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradebook/internal/db"
	"tradebook/internal/logger"
	"tradebook/internal/metrics"
	"tradebook/internal/queue"
	"tradebook/internal/repository"
	"tradebook/internal/resolver"
	"tradebook/internal/service"
	"tradebook/internal/util"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	once := flag.Bool("once", false, "process a single message and exit")
	backoff := flag.Duration("backoff", 5*time.Second, "wait after a failed message")
	flag.Parse()

	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(cfg.LogLevel)
	if cfg.SqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL is not set")
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config: aws.Config{Region: aws.String(cfg.AwsRegion),
			CredentialsChainVerboseErrors: aws.Bool(true)},
		Profile: cfg.AwsProfile,
	})
	if err != nil {
		log.Fatal(err)
	}
	_, err = sess.Config.Credentials.Get()
	if err != nil {
		log.Fatal(err)
	}
	sqsService := sqs.New(sess)

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)
	positionsService := service.NewPositionsService(
		repository.NewPortfolioRepository(),
		repository.NewPositionsRepository(),
		cache.New(cfg.CacheTTL, service.CacheCleanupInterval),
		m,
	)
	r := resolver.NewResolver(dbConn, positionsService)
	consumer := queue.NewConsumer(sqsService, cfg.SqsQueueURL, r, m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.ToContext(ctx, logger.L)

	if *once {
		err = consumer.GetAndProcess(ctx)
		if err != nil && !errors.Is(err, queue.ErrNoMessages) {
			log.Fatal(err)
		}
		return
	}

	err = consumer.Run(ctx, *backoff)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
