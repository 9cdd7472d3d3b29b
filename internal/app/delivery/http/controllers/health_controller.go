package controllers

import (
	"context"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type HealthController struct {
	Log         *zap.Logger
	MongoClient *mongo.Client
	RedisClient *redis.Client
}

func NewHealthController(logger *zap.Logger, mongoClient *mongo.Client, redisClient *redis.Client) *HealthController {
	return &HealthController{
		Log:         logger,
		MongoClient: mongoClient,
		RedisClient: redisClient,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := responses.Health{Mongo: "up", Redis: "up"}
	statusCode := constvars.StatusOK

	if err := ctrl.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		health.Mongo = "down"
		statusCode = constvars.StatusServiceUnavailable
	}
	if err := ctrl.RedisClient.Ping(ctx).Err(); err != nil {
		health.Redis = "down"
		statusCode = constvars.StatusServiceUnavailable
	}

	utils.BuildSuccessResponse(w, statusCode, constvars.HealthCheckSuccess, health)
}
