package models

// ImageOrigins are the remote origins photographs may be served from. The
// CSP img-src directive lists exactly these.
var ImageOrigins = []string{"https://picsum.photos", "https://fastly.picsum.photos"}

// Link is a navigation target. Most links on the site are placeholders ("#")
// until the organisation's back office is integrated.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
}

// Pillar is one card of the "Our Pillars" feature grid
type Pillar struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tone        string `json:"tone"` // blue, red, green, yellow
}

// NewsItem is a mock news story
type NewsItem struct {
	Category  string `json:"category,omitempty"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	ImageURL  string `json:"image_url"`
	Published string `json:"published"` // YYYY-MM-DD
	Location  string `json:"location,omitempty"`
}

// GalleryTile is one image of the bento gallery
type GalleryTile struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
	Span     string `json:"span"` // feature, wide, square
}

// FooterColumn is a titled list of footer links
type FooterColumn struct {
	Title  string `json:"title"`
	Accent string `json:"accent"`
	Links  []Link `json:"links"`
}

// Site holds all static content rendered on the landing page
type Site struct {
	Name         string         `json:"name"`
	Tagline      string         `json:"tagline"`
	Monogram     string         `json:"monogram"`
	Region       string         `json:"region"`
	Nav          []Link         `json:"nav"`
	MobileNav    []Link         `json:"mobile_nav"`
	UtilityLinks []Link         `json:"utility_links"`
	Social       []Link         `json:"social"`
	Hero         Hero           `json:"hero"`
	QuickLinks   []Link         `json:"quick_links"`
	Pillars      []Pillar       `json:"pillars"`
	LeadStory    NewsItem       `json:"lead_story"`
	Stories      []NewsItem     `json:"stories"`
	Actions      []Link         `json:"actions"`
	Quote        Quote          `json:"quote"`
	Gallery      []GalleryTile  `json:"gallery"`
	About        string         `json:"about"`
	FooterLinks  []FooterColumn `json:"footer_links"`
	Newsletter   Newsletter     `json:"newsletter"`
}

// Hero is the banner at the top of the page
type Hero struct {
	Badge      string `json:"badge"`
	Headline   string `json:"headline"`
	Highlight  string `json:"highlight"`
	Body       string `json:"body"`
	ImageURL   string `json:"image_url"`
	PrimaryCTA string `json:"primary_cta"`
	SecondCTA  string `json:"second_cta"`
}

// Quote is the mission statement band
type Quote struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution"`
}

// Newsletter is the footer sign-up copy. The form has no backing handler.
type Newsletter struct {
	Title       string `json:"title"`
	Blurb       string `json:"blurb"`
	Placeholder string `json:"placeholder"`
	Button      string `json:"button"`
}
