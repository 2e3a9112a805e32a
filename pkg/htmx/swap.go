package htmx

// SwapStrategy defines how HTMX should swap content into the target element.
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML" // Replace the inner html of the target element
	SwapOuterHTML SwapStrategy = "outerHTML" // Replace the entire target element with the response
	SwapNone      SwapStrategy = "none"      // Do not swap content
)
