// Command carosello-demo runs the carousel component with its default
// five-item store, then asks for confirmation of the chosen item.
// Intended for trying the toolkit on a desktop (ENVIRONMENT=DEV) or on
// a handheld over SSH.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BrandonKowalski/carosello/pkg/carosello"
	"github.com/BrandonKowalski/carosello/pkg/carosello/router"
)

const (
	screenCarousel router.Screen = iota
	screenConfirm
)

type carouselInput struct {
	resume *carouselResume
}

type carouselResume struct {
	selectedIndex int
}

type confirmInput struct {
	item carosello.Item
}

func main() {
	carosello.Init(carosello.Options{
		WindowTitle:    "Carosello Demo",
		ShowBackground: true,
		LogPath:        os.Getenv("CAROSELLO_LOG_PATH"),
	})
	defer carosello.Close()

	store := carosello.NewItemStore()

	r := router.New()

	r.Register(screenCarousel, func(input any) (any, error) {
		in := input.(carouselInput)

		settings := carosello.DefaultCarouselSettings(store)
		settings.FooterHelpItems = []carosello.FooterHelpItem{
			{ButtonName: "B", HelpText: "Quit"},
			{ButtonName: "A", HelpText: "Select"},
		}
		if in.resume != nil {
			settings.InitialSelectedIndex = in.resume.selectedIndex
		}

		return carosello.Carousel("Carosello", settings, store)
	})

	r.Register(screenConfirm, func(input any) (any, error) {
		in := input.(confirmInput)

		return carosello.ConfirmationMessage(
			fmt.Sprintf("Use %s?", in.item.Label),
			[]carosello.MessageOption{
				{DisplayName: "Yes", Value: true},
				{DisplayName: "No", Value: false},
			},
			carosello.MessageSettings{},
		)
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case screenCarousel:
			res := result.(*carosello.CarouselResult)
			stack.Push(from, carouselInput{}, &carouselResume{selectedIndex: res.Selected})
			return screenConfirm, confirmInput{item: res.Items[res.Selected]}

		case screenConfirm:
			res := result.(*carosello.MessageResult)
			if accepted, ok := res.SelectedValue.(bool); ok && accepted {
				return router.ScreenExit, nil
			}
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(carouselInput)
				if entry.Resume != nil {
					in.resume = entry.Resume.(*carouselResume)
				}
				return entry.Screen, in
			}
		}
		return router.ScreenExit, nil
	})

	if err := r.Run(screenCarousel, carouselInput{}); err != nil {
		if errors.Is(err, carosello.ErrCancelled) {
			return
		}
		carosello.GetLogger().Error("Demo exited with error", "error", err)
		os.Exit(1)
	}
}
