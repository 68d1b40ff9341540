package cron

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"yachtmatch/config"
	"yachtmatch/models"
	"yachtmatch/services/session"
	"yachtmatch/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitFollowupWorker runs the async worker in background.
func InitFollowupWorker(sessions session.Store) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEnquiryFollowup, handleFollowupTask(sessions))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowupWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowupWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowupWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleFollowupTask nudges an enquiry that went quiet while the supervisor
// was still collecting details. The nudge is dropped if the session has
// been dispatched, replaced, or expired since it was queued.
func handleFollowupTask(sessions session.Store) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.FollowupPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowupHandler] Invalid payload: %v", err)
			return err
		}

		sess, err := sessions.Get(ctx, p.UserID)
		if err != nil {
			log.Printf("[FollowupHandler] Session lookup failed for %s: %v", p.UserID, err)
			return err
		}
		if sess == nil || sess.SessionID != p.SessionID || sess.Dispatched {
			return nil
		}

		sess.AppendTurn("assistant", "Just checking in! I still need your "+
			strings.Join(p.Missing, ", ")+" to plan the perfect charter for you.")
		if err := sessions.Save(ctx, sess); err != nil {
			log.Printf("[FollowupHandler] Failed to record followup for %s: %v", p.UserID, err)
			return err
		}
		log.Printf("[FollowupHandler] Followed up with %s on missing: %s", p.UserID, strings.Join(p.Missing, ", "))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[FollowupWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
