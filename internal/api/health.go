package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints.
type HealthHandler struct {
	dbPing func() error // checks database connectivity, typically (*sql.DB).Ping
}

func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts the probes on the given router.
//
// Routes:
//   - GET /healthz: always 200 while the process is up.
//   - GET /readyz: 200 if the database is reachable, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing != nil && h.dbPing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
