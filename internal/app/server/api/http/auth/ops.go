package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Exchange credentials for a token pair",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) refreshOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-refresh",
		Method:      http.MethodPost,
		Path:        "/auth/refresh",
		Summary:     "Rotate the token pair",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-logout",
		Method:      http.MethodPost,
		Path:        "/auth/logout",
		Summary:     "Revoke the current session",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) profileOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-profile",
		Method:      http.MethodGet,
		Path:        "/auth/profile",
		Summary:     "Current user profile",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
