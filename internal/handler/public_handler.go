package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infinitychat/internal/view"
)

// ShowHome renders the public landing page inside the root layout.
func (a *API) ShowHome(c *gin.Context) {
	a.renderPage(c, http.StatusOK, view.HomePage)
}

// ShowNotFound renders the fallback page for unmatched routes.
func (a *API) ShowNotFound(c *gin.Context) {
	a.renderPage(c, http.StatusNotFound, view.NotFoundPage)
}
