package carosello

// CarouselAction represents how the user left the Carousel component.
type CarouselAction int

const (
	CarouselActionSelected  CarouselAction = iota // User selected the focused item (A button / tap)
	CarouselActionConfirmed                       // User confirmed the focused item (Start button)
)

// CarouselResult is the return type of the Carousel component.
type CarouselResult struct {
	Items    []Item         // The store's items, in display order
	Selected int            // Index of the selected item on exit
	Action   CarouselAction // How the component was exited
}
