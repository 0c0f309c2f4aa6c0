package record

import "medtracker/internal/app/server/storage"

type createInput struct {
	Body createRequest
}

type createRequest struct {
	MeditationID string `json:"meditationId"`
	Value        int    `json:"value" minimum:"1"`
}

type createOutput struct {
	Body createBody
}

type createBody struct {
	Data createdRecord `json:"data"`
}

type createdRecord struct {
	ID string `json:"id"`
}

type listInput struct{}

type listOutput struct {
	Body recordListBody
}

type recordListBody struct {
	Data []storage.ServerRecord `json:"data"`
}
