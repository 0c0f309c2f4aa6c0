package meditation

import "medtracker/internal/domain/meditation"

type listInput struct{}

type listOutput struct {
	Body meditationListBody
}

type meditationListBody struct {
	Data []meditation.Meditation `json:"data"`
}
