package api

import (
	"github.com/fulldump/box"

	"github.com/scrolldb/scrolldb/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(injectServicer(s))

	v1.Resource("/namespaces").
		WithActions(
			box.Get(listNamespaces),
		)

	v1.Resource("/namespaces/{namespace}").
		WithActions(
			box.ActionPost(insert),
			box.ActionPost(find),
			box.ActionPost(findWire),
			box.ActionPost(remove),
			box.ActionPost(update),
			box.ActionPost(dropNamespace),
		)

	b.Resource("/version").
		WithActions(
			box.Get(func() string { return version }),
		)

	return b
}
