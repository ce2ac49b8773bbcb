package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infinitychat/internal/view"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// API bundles shared dependencies for HTTP handlers.
type API struct {
	logger *slog.Logger
	meta   view.Metadata
}

// NewAPI constructs a handler set. A nil logger falls back to slog.Default.
func NewAPI(logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		logger: logger,
		meta:   view.DefaultMetadata(),
	}
}

// renderPage 渲染页面片段并用根布局包裹；渲染失败时返回 500，不输出半截文档。
func (a *API) renderPage(c *gin.Context, status int, page view.Page) {
	var buf bytes.Buffer
	if err := view.RenderPage(&buf, a.meta, page); err != nil {
		c.Error(err)
		a.logger.Error("render page failed",
			"path", c.Request.URL.Path,
			"request_id", requestID(c),
			"error", err,
		)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	writeHTML(c, status, buf.Bytes())
}
