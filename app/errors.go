package app

import "errors"

var (
	// ErrWindowGone is returned when the native window has been destroyed
	// under the frame loop.
	ErrWindowGone = errors.New("app: window no longer exists")
	// ErrSystemConsumed is returned when MainLoop is called a second time.
	ErrSystemConsumed = errors.New("app: system already ran its main loop")
	// ErrAlreadyAttached is returned by Platform.Attach on a second call.
	ErrAlreadyAttached = errors.New("app: platform already attached")
)
