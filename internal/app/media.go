package app

import (
	"errors"
	"path/filepath"

	"ovalplayer/internal/controller"

	"github.com/atotto/clipboard"
	"github.com/sqweek/dialog"
)

// openMediaDialog lets the user pick a video instead of dropping one.
func (a *App) openMediaDialog() {
	path, err := dialog.File().Filter("Video files", controller.MediaExtensions()...).Title("Open video").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			controller.Logger().Warn("open dialog failed", "err", err)
		}
		return
	}
	if path == "" {
		return
	}
	if err := a.ctrl.OpenMedia(filepath.Clean(path)); err != nil {
		controller.Logger().Warn("open media", "err", err)
		return
	}
	a.dirty = true
}

// copyMediaPath puts the loaded media path on the system clipboard.
func (a *App) copyMediaPath() {
	state := a.ctrl.State()
	if !state.HasMedia() {
		return
	}
	if err := clipboard.WriteAll(state.Media); err != nil {
		controller.Logger().Warn("copy media path failed", "err", err)
		return
	}
	controller.Logger().Info("media path copied", "path", state.Media)
}
