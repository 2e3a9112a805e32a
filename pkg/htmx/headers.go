package htmx

// Response headers.
const (
	HeaderHXPushURL  = "HX-Push-Url"
	HeaderHXReswap   = "HX-Reswap"
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXTrigger  = "HX-Trigger"
)

// Request headers.
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXTarget  = "HX-Target"
)
