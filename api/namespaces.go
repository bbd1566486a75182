package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/scrolldb/scrolldb/store"
)

func listNamespaces(ctx context.Context) ([]*store.Namespace, error) {
	s := GetServicer(ctx)
	return s.ListNamespaces(), nil
}

func dropNamespace(ctx context.Context) error {
	s := GetServicer(ctx)
	namespace := box.GetUrlParameter(ctx, "namespace")
	return s.DropNamespace(namespace)
}
