package main

import (
	"context"
	"os"
	"time"

	"github.com/totomace/VitaZen-sub000/config"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/scheduler"
	"github.com/totomace/VitaZen-sub000/services"
	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// job holds what warm invocations share: one connection pool, one Redis
// client and one scheduler per container.
type job struct {
	db    *gorm.DB
	redis *redis.Client
	sched *scheduler.Scheduler
}

// newJob connects without migrating; the API owns the schema.
func newJob(ctx context.Context, cfg *config.Config) (*job, error) {
	db, err := config.OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	repos := repositories.New(db)
	j := &job{db: db}

	var pusher services.Pusher
	if cfg.SNSFCMArn != "" {
		push, err := services.NewPushService(ctx, repos.Devices, cfg.AWSRegion, cfg.SNSFCMArn)
		if err != nil {
			j.close()
			return nil, err
		}
		pusher = push
	}

	var leases scheduler.Leaser
	if cfg.RedisAddr != "" {
		j.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		leases = scheduler.NewRedisLeaser(j.redis)
	}

	notifier := services.NewNotifier(repos, nil, pusher)
	j.sched = scheduler.New(repos.Reminders, notifier, leases, cfg.Location(), cfg.SchedulerTick)
	return j, nil
}

// handle runs one reminder sweep. Scheduled by an EventBridge rule when
// the API runs without its in-process scheduler.
func (j *job) handle(ctx context.Context) (scheduler.SweepResult, error) {
	res, err := j.sched.Sweep(ctx, time.Now())
	if err != nil {
		return res, err
	}
	utils.LogInfo("reminder job: due=%d delivered=%d skipped=%d failed=%d",
		res.Due, res.Delivered, res.Skipped, res.Failed)
	return res, nil
}

func (j *job) close() {
	if j.redis != nil {
		_ = j.redis.Close()
	}
	if sqlDB, err := j.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.LogError("config: %v", err)
		os.Exit(1)
	}
	j, err := newJob(context.Background(), cfg)
	if err != nil {
		utils.LogError("reminder job init: %v", err)
		os.Exit(1)
	}
	lambda.Start(j.handle)
}
