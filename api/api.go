package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"
	l3_service "wealthtrack/internal/service/l3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                       *sql.DB
	Logger                   *zap.SugaredLogger
	PortfolioAnalysisService l3_service.PortfolioAnalysisService
	HistoryService           l3_service.HistoryService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to wealthtrack"})
	})
	router.POST("/analytics", m.analytics)
	router.POST("/history", m.history)
	router.POST("/snapshot", m.snapshot)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	code := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidRange) {
		code = http.StatusBadRequest
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw("request failed",
		"status", code,
		"error", err.Error(),
	)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// parseUserID rejects a missing or nil id.
func parseUserID(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return errors.New("userID is required")
	}
	return nil
}

func (m ApiHandler) requestLogger() *zap.SugaredLogger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.S()
}

// logRequestMiddleware puts a request scoped logger in the request context
// and logs each request once it completes.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	var body []byte
	if ctx.Request.Body != nil {
		raw, err := ctx.GetRawData()
		if err != nil {
			m.requestLogger().Warnw("failed to get raw data", "error", err.Error())
		}
		body = raw
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	type userIdBody struct {
		UserID uuid.UUID `json:"userID"`
	}
	reqBody := userIdBody{}
	// bodies without a user id are fine here, the handler validates
	_ = json.Unmarshal(body, &reqBody)

	log := m.requestLogger().With(
		"requestID", uuid.NewString(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	if reqBody.UserID != uuid.Nil {
		log = log.With("userID", reqBody.UserID.String())
	}
	ctx.Request = ctx.Request.WithContext(logger.NewContext(ctx.Request.Context(), log))

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("handled request",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
