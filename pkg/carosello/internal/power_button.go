package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig describes how the physical power button behaves.
// A short press runs the suspend script; holding past ShortPressMax
// runs the shutdown command. CoolDownTime suppresses bounce after an
// action fires.
type PowerButtonConfig struct {
	ButtonCode      uint16
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	SuspendScript   string
	ShutdownCommand string
}

// IsZero reports whether the config is unset (power handling disabled).
func (c PowerButtonConfig) IsZero() bool {
	return c.DevicePath == ""
}

// PowerButtonHandle owns the evdev device watching the power button.
// Acquired during Init, released by Stop on Close.
type PowerButtonHandle struct {
	device   *evdev.InputDevice
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// StartPowerButtonHandler opens the configured input device and watches
// it on a background goroutine.
func StartPowerButtonHandler(config PowerButtonConfig) (*PowerButtonHandle, error) {
	device, err := evdev.Open(config.DevicePath)
	if err != nil {
		return nil, err
	}

	handle := &PowerButtonHandle{
		device: device,
		done:   make(chan struct{}),
	}

	handle.wg.Add(1)
	go handle.watch(config)

	return handle, nil
}

// Stop closes the input device and waits for the watcher to exit.
func (h *PowerButtonHandle) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.device.Close()
		h.wg.Wait()
	})
}

func (h *PowerButtonHandle) watch(config PowerButtonConfig) {
	defer h.wg.Done()

	log := GetInternalLogger()
	var pressedAt time.Time
	var lastAction time.Time

	for {
		event, err := h.device.ReadOne()
		if err != nil {
			select {
			case <-h.done:
				return
			default:
				log.Error("Power button device read failed", "path", config.DevicePath, "error", err)
				return
			}
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != config.ButtonCode {
			continue
		}

		switch event.Value {
		case 1: // press
			pressedAt = time.Now()

		case 0: // release
			if pressedAt.IsZero() || time.Since(lastAction) < config.CoolDownTime {
				continue
			}

			held := time.Since(pressedAt)
			pressedAt = time.Time{}
			lastAction = time.Now()

			if held <= config.ShortPressMax {
				log.Info("Power button short press, suspending", "held", held)
				if err := exec.Command(config.SuspendScript).Run(); err != nil {
					log.Error("Suspend script failed", "script", config.SuspendScript, "error", err)
				}
			} else {
				log.Info("Power button long press, shutting down", "held", held)
				if err := exec.Command(config.ShutdownCommand).Run(); err != nil {
					log.Error("Shutdown command failed", "command", config.ShutdownCommand, "error", err)
				}
			}
		}
	}
}
