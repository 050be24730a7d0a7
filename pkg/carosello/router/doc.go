// Package router provides screen navigation with explicit data flow.
//
// Router uses explicit input/output types for each screen and a
// centralized transition function for all routing logic. This makes data
// flow traceable and avoids hidden global state.
//
// # Basic Usage
//
//	// Define screen identifiers as typed constants
//	const (
//	    ScreenCarousel Screen = iota
//	    ScreenConfirm
//	)
//
//	// Define input/output types for each screen
//	type CarouselInput struct {
//	    Store  *carosello.ItemStore
//	    Resume *CarouselResume // nil if fresh, populated if returning
//	}
//
//	type CarouselScreenResult struct {
//	    Action   CarouselScreenAction
//	    Selected int
//	    Resume   *CarouselResume // position state for back navigation
//	}
//
//	// Create and configure router
//	r := router.New()
//
//	r.Register(ScreenCarousel, func(input any) (any, error) {
//	    in := input.(CarouselInput)
//	    return carouselScreen(in), nil
//	})
//
//	r.Register(ScreenConfirm, func(input any) (any, error) {
//	    in := input.(ConfirmInput)
//	    return confirmScreen(in), nil
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenCarousel:
//	        r := result.(CarouselScreenResult)
//	        switch r.Action {
//	        case ActionSelected:
//	            // Push current state for back navigation
//	            stack.Push(from, input, r.Resume)
//	            return ScreenConfirm, ConfirmInput{Selected: r.Selected}
//	        case ActionBack:
//	            if stack.IsEmpty() {
//	                return router.ScreenExit, nil
//	            }
//	            entry := stack.Pop()
//	            // Restore with resume state
//	            in := entry.Input.(CarouselInput)
//	            in.Resume = entry.Resume.(*CarouselResume)
//	            return entry.Screen, in
//	        }
//	    case ScreenConfirm:
//	        // ...
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	r.Run(ScreenCarousel, CarouselInput{Store: store})
//
// # Resume State
//
// Screens can return resume state (like the selected index) that gets
// stored on the stack when navigating forward. When navigating back,
// this state is passed back to the screen via its input, allowing it to
// restore position.
//
// The Resume field should be nil for stateless screens (dialogs, confirmations).
package router
