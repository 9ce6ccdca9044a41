package app

import (
	"fmt"
	"time"

	"github.com/talanapp/talan"
)

// LoopState is the frame loop state.
type LoopState int

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopExiting
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopExiting:
		return "exiting"
	default:
		return fmt.Sprintf("LoopState(%d)", int(s))
	}
}

// FrameFunc builds one frame. Setting *run to false ends the loop after
// the frame is presented.
type FrameFunc func(run *bool, ui *gui.UI)

// FrameFuncE is a FrameFunc that can fail. An error ends the loop without
// presenting the frame.
type FrameFuncE func(run *bool, ui *gui.UI) error

// MainLoop runs fn once per frame until it clears run, the window is
// closed, or a fatal error occurs. The System is consumed: its resources
// are released on return and a second call returns ErrSystemConsumed.
func (s *System) MainLoop(fn FrameFunc) error {
	return s.MainLoopE(func(run *bool, ui *gui.UI) error {
		fn(run, ui)
		return nil
	})
}

// MainLoopE is MainLoop for a callback that returns an error.
func (s *System) MainLoopE(fn FrameFuncE) error {
	if s.consumed {
		return ErrSystemConsumed
	}
	s.consumed = true
	defer s.release()

	s.state = LoopRunning
	last := s.clock()
	run := true
	for {
		if err := s.frame(&run, &last, fn); err != nil {
			s.state = LoopExiting
			s.logger.Error("main loop failed", "frame", s.ctx.FrameCount(), "err", err)
			return err
		}
		if !run {
			s.state = LoopExiting
			s.logger.Info("main loop exited", "frames", s.ctx.FrameCount())
			return nil
		}
	}
}

func (s *System) frame(run *bool, last *time.Time, fn FrameFuncE) error {
	io := s.ctx.IO()

	s.events.Poll(func(ev Event) {
		if _, ok := ev.(CloseRequested); ok {
			*run = false
		}
		s.platform.HandleEvent(io, ev)
	})

	if err := s.platform.PrepareFrame(io, s.window); err != nil {
		return fmt.Errorf("app: prepare frame: %w", err)
	}
	if err := s.syncFontScale(); err != nil {
		return fmt.Errorf("app: reload fonts: %w", err)
	}
	*last = io.UpdateDeltaTime(*last, s.clock())

	ui := s.ctx.NewFrame()
	rendered := false
	defer func() {
		if !rendered {
			s.ctx.Render()
		}
	}()

	if err := fn(run, ui); err != nil {
		return fmt.Errorf("app: frame callback: %w", err)
	}

	target, err := s.display.Draw()
	if err != nil {
		return fmt.Errorf("app: acquire frame: %w", err)
	}
	finished := false
	defer func() {
		if !finished {
			target.Discard()
		}
	}()

	target.Clear(1, 1, 1, 1)
	s.platform.PrepareRender(io, s.window)
	data := s.ctx.Render()
	rendered = true
	if err := s.renderer.Render(data); err != nil {
		return fmt.Errorf("app: render: %w", err)
	}

	finished = true
	if err := target.Finish(); err != nil {
		return fmt.Errorf("app: present frame: %w", err)
	}
	return nil
}

func (s *System) release() {
	s.renderer.Close()
	s.window.Destroy()
}
