package model

import (
	"fmt"
)

type Event interface {
	event()
}

type ScreenSize struct {
	Width, Height int
}

func (ScreenSize) event() {}

func (s ScreenSize) String() string {
	return fmt.Sprintf("ScreenSize{Width: %d, Height: %d}", s.Width, s.Height)
}

type Quit struct{}

func (Quit) event() {}

type TogglePause struct{}

func (TogglePause) event() {}

type Restart struct{}

func (Restart) event() {}
