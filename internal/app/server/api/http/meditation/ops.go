package meditation

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "meditations-list",
		Method:      http.MethodGet,
		Path:        "/meditations",
		Summary:     "Practice catalog",
		Tags:        []string{"meditations"},
		Middlewares: h.middleware,
	}
}
