package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/totomace/VitaZen-sub000/config"
	"github.com/totomace/VitaZen-sub000/controllers"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/routes"
	"github.com/totomace/VitaZen-sub000/scheduler"
	"github.com/totomace/VitaZen-sub000/services"
	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.LogError("config: %v", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		utils.LogError("JWT_SECRET is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.LogError("database: %v", err)
		os.Exit(1)
	}
	repos := repositories.New(db)
	loc := cfg.Location()

	var mailer services.Mailer
	if cfg.SESEmail != "" {
		m, err := utils.NewSESMailer(ctx, cfg.AWSRegion, cfg.SESEmail)
		if err != nil {
			utils.LogError("SES disabled: %v", err)
		} else {
			mailer = m
		}
	}

	var avatars services.AvatarStore
	if cfg.S3Bucket != "" {
		u, err := utils.NewS3Uploader(ctx, cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			utils.LogError("S3 disabled: %v", err)
		} else {
			avatars = u
		}
	}

	var (
		push   *services.PushService
		pusher services.Pusher
	)
	if cfg.SNSFCMArn != "" {
		push, err = services.NewPushService(ctx, repos.Devices, cfg.AWSRegion, cfg.SNSFCMArn)
		if err != nil {
			utils.LogError("SNS push disabled: %v", err)
			push = nil
		} else {
			pusher = push
		}
	}

	leases := newLeaser(ctx, cfg)

	hub := services.NewRealtimeHub()
	notifier := services.NewNotifier(repos, hub, pusher)
	sched := scheduler.New(repos.Reminders, notifier, leases, loc, cfg.SchedulerTick)

	r := routes.SetupRouter(routes.Controllers{
		Auth:          controllers.NewAuthController(services.NewAuthService(repos.Users, mailer, cfg.JWTSecret)),
		User:          controllers.NewUserController(services.NewUserService(repos, avatars)),
		Health:        controllers.NewHealthController(services.NewHealthService(repos)),
		History:       controllers.NewHistoryController(services.NewHistoryService(repos)),
		Notes:         controllers.NewNoteController(services.NewNoteService(repos, loc), loc),
		Reminders:     controllers.NewReminderController(services.NewReminderService(repos, sched)),
		Water:         controllers.NewWaterController(services.NewWaterService(repos, loc)),
		Goals:         controllers.NewGoalController(services.NewGoalService(repos, loc), loc),
		Analytics:     controllers.NewAnalyticsController(services.NewAnalyticsService(repos, loc), loc),
		Devices:       controllers.NewDeviceController(push),
		Notifications: controllers.NewNotificationController(notifier),
		Realtime:      controllers.NewRealtimeController(hub),
	}, cfg.JWTSecret)

	go func() {
		if err := sched.Run(ctx); err != nil {
			utils.LogError("reminder scheduler stopped: %v", err)
		}
	}()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		utils.LogSuccess("VitaZen API listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError("server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	utils.LogInfo("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.LogError("shutdown: %v", err)
	}
}

// newLeaser uses Redis when configured so several instances never fire the
// same reminder slot twice.
func newLeaser(ctx context.Context, cfg *config.Config) scheduler.Leaser {
	if cfg.RedisAddr == "" {
		return scheduler.NewMemoryLeaser()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	if err := client.Ping(ctx).Err(); err != nil {
		utils.LogError("redis unavailable, using in-memory leases: %v", err)
		return scheduler.NewMemoryLeaser()
	}
	utils.LogSuccess("redis leases at %s", cfg.RedisAddr)
	return scheduler.NewRedisLeaser(client)
}
