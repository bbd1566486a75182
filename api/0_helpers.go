package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/scrolldb/scrolldb/engine"
	"github.com/scrolldb/scrolldb/match"
	"github.com/scrolldb/scrolldb/store"
)

func InterceptorUnavailable(s *store.Store) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := s.GetStatus()
			if status == store.StatusOpening {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: opening"))
				return
			}
			if status == store.StatusClosing {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: closing"))
				return
			}
			next(ctx)
		}
	}
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		writeError := func(status int, description string) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{
					"message":     err.Error(),
					"description": description,
				},
			})
		}

		if errors.Is(err, engine.ErrorProtectedNamespace) {
			writeError(http.StatusForbidden, "writes are not allowed in system namespaces")
			return
		}

		if errors.Is(err, match.ErrorMalformedPattern) {
			writeError(http.StatusBadRequest, "the filter is not a valid JSON object")
			return
		}

		if err == box.ErrResourceNotFound {
			writeError(http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writeError(http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if _, ok := err.(*json.SyntaxError); ok {
			writeError(http.StatusBadRequest, "Malformed JSON")
			return
		}

		writeError(http.StatusInternalServerError, "Unexpected error")
	}
}
