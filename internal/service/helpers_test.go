package service

import "earthwords/internal/models"

func pos(x, y float64) models.Position {
	return models.Position{X: x, Y: y}
}

func bounds(w, h float64) models.Bounds {
	return models.Bounds{Width: w, Height: h}
}
