package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	api_types "tradebook/api-types"
	tradebook_errors "tradebook/internal"
	"tradebook/internal/logger"
	"tradebook/internal/metrics"
	"tradebook/internal/resolver"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	requestIDHeader = "X-Request-ID"
	maxUploadBytes  = 32 << 20
	defaultFileName = "upload.json"
)

func StartApi(port int, r resolver.Resolver, m *metrics.Metrics) error {
	return NewRouter(r, m).Run(fmt.Sprintf(":%d", port))
}

func NewRouter(r resolver.Resolver, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestContext)
	router.Use(countRequests(m))

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to tradebook"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/analyze", func(c *gin.Context) {
		name, raw, err := readUpload(c)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.Analyze(c.Request.Context(), name, raw)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusOK, resp)
	})

	router.POST("/portfolio", func(c *gin.Context) {
		var req api_types.NewPortfolioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			returnErrorJsonCode(errors.New("name is required"), c, http.StatusBadRequest)
			return
		}

		resp, err := r.NewPortfolio(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusOK, resp)
	})

	router.POST("/portfolio/:id/sync", func(c *gin.Context) {
		portfolioID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, http.StatusBadRequest)
			return
		}
		name, raw, err := readUpload(c)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.SyncPortfolio(c.Request.Context(), portfolioID, name, raw)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusOK, resp)
	})

	router.GET("/portfolio/:id/positions", func(c *gin.Context) {
		portfolioID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.GetPortfolioPositions(portfolioID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusOK, resp)
	})

	return router
}

// readUpload accepts either a multipart form with a "file" part or the
// export itself as the request body. Only multipart requests are parsed
// as forms; any other content type is read raw.
func readUpload(c *gin.Context) (string, []byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return readRawUpload(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	return fileHeader.Filename, raw, err
}

func readRawUpload(c *gin.Context) (string, []byte, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", nil, err
	}
	name := c.Query("name")
	if name == "" {
		name = defaultFileName
	}
	return name, raw, nil
}

func statusFor(err error) int {
	switch {
	case errors.As(err, &tradebook_errors.ErrInvalidLedger{}):
		return http.StatusBadRequest
	case errors.As(err, &tradebook_errors.ErrUnknownPortfolio{}):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusFor(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// requestContext tags each request with an id and carries a logger
// holding it.
func requestContext(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	ctx := logger.WithContext(c.Request.Context(), "requestId", requestID, "path", c.Request.URL.Path)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func countRequests(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
