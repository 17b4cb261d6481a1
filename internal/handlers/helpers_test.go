package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-lists/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func withPrincipal(req *http.Request, id int64) *http.Request {
	user := &models.User{ID: id, Email: "user@example.com", IsActive: true}
	return req.WithContext(middlewares.WithUser(req.Context(), user))
}

func ptr[T any](v T) *T { return &v }
