package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/scrolldb/scrolldb/document"
)

// update overwrites the first record matching the filter with the given
// document. With upsert, a filter that matches nothing inserts the document
// instead.
func update(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := struct {
		Filter   map[string]interface{} `json:"filter"`
		Document json.RawMessage        `json:"document"`
		Upsert   bool                   `json:"upsert"`
	}{
		Filter: map[string]interface{}{},
	}
	err = jsonv2.Unmarshal(requestBody, &params)
	if err != nil {
		return err
	}

	if len(params.Document) == 0 {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return fmt.Errorf("missing 'document'")
	}

	pattern, err := json.Marshal(params.Filter)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)
	namespace := box.GetUrlParameter(ctx, "namespace")

	return s.Update(namespace, document.New(params.Document), document.New(pattern), params.Upsert)
}
