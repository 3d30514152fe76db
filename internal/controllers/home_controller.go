package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/edu-match/internal/views"
	"github.com/gin-gonic/gin"
)

const (
	// PlatformLabel is the heading shown on the landing page
	PlatformLabel = "EduMatch Platform"
	// StatusLabel is the status line shown on the landing page
	StatusLabel = "System is running."
)

// HomeController serves the landing page
type HomeController interface {
	// Home renders the landing page
	Home(c *gin.Context)
}

type homeController struct{}

// NewHomeController creates a new instance of HomeController
func NewHomeController() HomeController {
	return &homeController{}
}

// Home godoc
// @Summary Landing page
// @Description Render the EduMatch landing page
// @Tags web
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *homeController) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, views.HomeTemplate, gin.H{
		"Title":  PlatformLabel,
		"Labels": []string{PlatformLabel, StatusLabel},
	})
}
