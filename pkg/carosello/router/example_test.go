package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/carosello/pkg/carosello/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenCarousel router.Screen = iota
	ScreenConfirm
)

// Action enums for each screen
type CarouselScreenAction int

const (
	CarouselScreenActionSelected CarouselScreenAction = iota
	CarouselScreenActionBack
)

type ConfirmAction int

const (
	ConfirmActionAccept ConfirmAction = iota
	ConfirmActionBack
)

// Input types - what each screen needs to render
type CarouselInput struct {
	ItemCount int
	Resume    *CarouselResume
}

type ConfirmInput struct {
	Selected int
}

// Result types - what each screen returns
type CarouselScreenResult struct {
	Action   CarouselScreenAction
	Selected int
	Resume   *CarouselResume
}

type ConfirmResult struct {
	Action ConfirmAction
}

// Resume types - position state for back navigation
type CarouselResume struct {
	SelectedIndex int
}

// Example demonstrates basic router usage with screen registration and transitions.
func Example() {
	r := router.New()

	// Track calls to simulate a flow: carousel -> confirm -> back -> exit
	carouselCalls := 0

	r.Register(ScreenCarousel, func(input any) (any, error) {
		in := input.(CarouselInput)
		carouselCalls++

		if carouselCalls == 1 {
			// First call: pick the item right of center
			fmt.Println("Carousel: selecting item 3")
			return CarouselScreenResult{
				Action:   CarouselScreenActionSelected,
				Selected: 3,
				Resume:   &CarouselResume{SelectedIndex: 3},
			}, nil
		}
		// Second call: restored position, exit
		fmt.Printf("Carousel: restored to index %d, exiting\n", in.Resume.SelectedIndex)
		return CarouselScreenResult{Action: CarouselScreenActionBack}, nil
	})

	r.Register(ScreenConfirm, func(input any) (any, error) {
		in := input.(ConfirmInput)
		fmt.Printf("Confirm: item %d, going back\n", in.Selected)
		return ConfirmResult{Action: ConfirmActionBack}, nil
	})

	// Define all transitions in one place
	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenCarousel:
			res := result.(CarouselScreenResult)
			switch res.Action {
			case CarouselScreenActionSelected:
				// Forward: push current state, go to confirmation
				stack.Push(from, CarouselInput{ItemCount: 5}, res.Resume)
				return ScreenConfirm, ConfirmInput{Selected: res.Selected}
			case CarouselScreenActionBack:
				return router.ScreenExit, nil
			}

		case ScreenConfirm:
			res := result.(ConfirmResult)
			if res.Action == ConfirmActionBack {
				// Back: pop and restore
				if entry := stack.Pop(); entry != nil {
					in := entry.Input.(CarouselInput)
					if entry.Resume != nil {
						in.Resume = entry.Resume.(*CarouselResume)
					}
					return entry.Screen, in
				}
			}
			return router.ScreenExit, nil
		}
		return router.ScreenExit, nil
	})

	if err := r.Run(ScreenCarousel, CarouselInput{ItemCount: 5}); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// Carousel: selecting item 3
	// Confirm: item 3, going back
	// Carousel: restored to index 3, exiting
}
