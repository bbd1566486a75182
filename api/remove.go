package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/scrolldb/scrolldb/document"
)

// remove deletes every record matching the filter, or only the first one
// when justOne is set.
func remove(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := struct {
		Filter  map[string]interface{}
		JustOne bool
	}{
		Filter: map[string]interface{}{},
	}
	err = json.Unmarshal(requestBody, &params)
	if err != nil && len(requestBody) > 0 {
		return err
	}

	pattern, err := json.Marshal(params.Filter)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)
	namespace := box.GetUrlParameter(ctx, "namespace")

	return s.Remove(namespace, document.New(pattern), params.JustOne)
}
