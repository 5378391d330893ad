package pages

import (
	"time"

	"bpp_web/models"
	"bpp_web/services/shell"
)

// LandingViewModel holds the data for the landing page
type LandingViewModel struct {
	ViewID        string
	State         shell.State
	Overflow      string
	Site          *models.Site
	Today         time.Time
	CSRFToken     string
	HTMXScriptURL string
	SEO           *models.SEO
}
