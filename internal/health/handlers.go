package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handlers struct {
	DB *gorm.DB
	// Rdb is optional; when nil the redis status is reported as "disabled".
	Rdb *redis.Client
}

// Banner GET /
func (h *Handlers) Banner(c *fiber.Ctx) error {
	return c.SendString("Brickly Fractional Property API")
}

// Check GET /health pings the database (and redis when configured).
func (h *Handlers) Check(c *fiber.Ctx) error {
	dbStatus := "connected"
	sqlDB, err := h.DB.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		dbStatus = "error"
	}

	redisStatus := "disabled"
	if h.Rdb != nil {
		redisStatus = "connected"
		if err := h.Rdb.Ping(c.Context()).Err(); err != nil {
			redisStatus = "error"
		}
	}

	ok := dbStatus == "connected"
	status := fiber.StatusOK
	if !ok {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"ok":    ok,
		"db":    dbStatus,
		"redis": redisStatus,
		"time":  time.Now().UTC().Format(time.RFC3339),
	})
}
