package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/wire"
)

// find runs a query and writes the matched documents back as JSON lines, in
// scan order.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	buf, err := runFind(ctx, r)
	if err != nil {
		return err
	}

	reply, err := wire.DecodeReply(buf)
	if err != nil {
		return err
	}

	for _, doc := range reply.Docs {
		w.Write(doc.Payload())
		w.Write([]byte("\n"))
	}

	return nil
}

// findWire runs the same query but hands the raw reply buffer to the
// client, header included.
func findWire(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	buf, err := runFind(ctx, r)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(buf)

	return nil
}

func runFind(ctx context.Context, r *http.Request) ([]byte, error) {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	params := struct {
		Filter map[string]interface{} `json:"filter"`
		Limit  int                    `json:"limit"`
	}{
		Filter: map[string]interface{}{},
	}
	err = jsonv2.Unmarshal(requestBody, &params)
	if err != nil && len(requestBody) > 0 {
		return nil, err
	}

	pattern, err := json.Marshal(params.Filter)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	namespace := box.GetUrlParameter(ctx, "namespace")

	return s.Find(namespace, params.Limit, document.New(pattern))
}
