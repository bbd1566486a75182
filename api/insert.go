package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/scrolldb/scrolldb/document"
)

// insert accepts a stream of JSON objects and appends each one as a new
// record of the namespace.
func insert(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	namespace := box.GetUrlParameter(ctx, "namespace")

	jsonReader := json.NewDecoder(r.Body)
	jsonWriter := json.NewEncoder(w)

	for i := 0; true; i++ {
		item := json.RawMessage{}
		err := jsonReader.Decode(&item)
		if err == io.EOF {
			if i == 0 {
				w.WriteHeader(http.StatusNoContent)
			}
			return nil
		}
		if err != nil {
			if i == 0 {
				w.WriteHeader(http.StatusBadRequest)
			}
			return err
		}

		err = s.Insert(namespace, document.New(item))
		if err != nil {
			return err
		}

		if i == 0 {
			w.WriteHeader(http.StatusCreated)
		}
		jsonWriter.Encode(item)
	}

	return nil
}
