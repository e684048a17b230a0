package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"sqlgen/models"
	"sqlgen/service"

	"github.com/gin-gonic/gin"
)

// @title           SQL Generator API
// @version         1.0
// @description     Turns a natural-language request into SQL for a chosen dialect using a generative model.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /
// @schemes   http https

const (
	missingQueryMessage  = `Missing "q" parameter`
	internalErrorMessage = "Internal server error"
)

type Handlers struct {
	sqlService *service.SQLService
	logger     *slog.Logger
}

func New(sqlService *service.SQLService, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		sqlService: sqlService,
		logger:     logger,
	}
}

// GenerateHandler generates SQL for a natural-language query
// @Summary      Generate SQL from natural language
// @Description  Composes a dialect-specific prompt and returns the model's SQL as plain text. Model failures are returned as a 200 with a /* Error: ... */ comment.
// @Tags         SQL
// @Produce      plain
// @Param        q    query     string  true   "Natural-language request"
// @Param        l    query     string  false  "Dialect key (access, postgres, mysql); defaults to access"
// @Success      200  {string}  string  "Generated SQL or a placeholder comment"
// @Failure      400  {string}  string  "Missing \"q\" parameter"
// @Failure      500  {string}  string  "Internal server error"
// @Router       / [get]
func (h *Handlers) GenerateHandler(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.String(http.StatusBadRequest, missingQueryMessage)
		return
	}

	result, err := h.sqlService.GenerateSQL(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingParameter) {
			c.String(http.StatusBadRequest, missingQueryMessage)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "server error", slog.Any("error", err))
		c.String(http.StatusInternalServerError, internalErrorMessage)
		return
	}

	c.String(http.StatusOK, result.SQL)
}

// DialectsHandler lists the supported dialects
// @Summary      List dialects
// @Description  Returns the dialect keys accepted by the l parameter and the default used for unknown keys
// @Tags         SQL
// @Produce      json
// @Success      200  {object}  models.DialectsResponse
// @Router       /api/dialects [get]
func (h *Handlers) DialectsHandler(c *gin.Context) {
	registry := h.sqlService.Registry()

	resp := models.DialectsResponse{
		Default: registry.DefaultKey(),
	}
	for _, e := range registry.Entries() {
		resp.Dialects = append(resp.Dialects, models.DialectInfo{Key: e.Key, Name: e.Name})
	}

	c.JSON(http.StatusOK, resp)
}

// Recovery turns a panic in request handling into a plain-text 500.
func (h *Handlers) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		h.logger.ErrorContext(c.Request.Context(), "server error",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered),
		)
		c.String(http.StatusInternalServerError, internalErrorMessage)
		c.Abort()
	})
}
