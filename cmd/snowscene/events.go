package main

import (
	"log/slog"

	"github.com/akmonengine/snowscene"
)

// logEvents reports scene events: figure and camera changes at debug level,
// render mode changes and close requests at info level.
func logEvents(logger *slog.Logger, scene *snowscene.Scene) {
	scene.Events.SubscribeAll(func(event snowscene.Event) {
		switch e := event.(type) {
		case snowscene.FigureMovedEvent:
			logger.Debug("figure moved", "x", e.Placement.X, "z", e.Placement.Z)
		case snowscene.FigureScaledEvent:
			logger.Debug("figure scaled", "scale", e.Scale)
		case snowscene.FigureRepositionedEvent:
			logger.Debug("figure repositioned", "x", e.Placement.X, "z", e.Placement.Z)
		case snowscene.FigureResetEvent:
			logger.Debug("figure reset")
		case snowscene.CameraResetEvent:
			logger.Debug("camera reset", "position", scene.Camera.Position)
		case snowscene.RenderModeChangedEvent:
			logger.Info("render mode changed", "from", e.From, "to", e.To)
		case snowscene.CloseRequestedEvent:
			logger.Info("close requested")
		}
	})
}
