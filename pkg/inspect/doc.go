// Package inspect serves a live view of a rendered tree over HTTP.
//
// The inspector owns a vdom.Root rendering into an htmlhost.Document and
// serialises every access to it, so event handlers, re-renders and
// readers never overlap.
//
// # Routes
//
//	GET  /            page showing the tree, refreshed over /ws
//	GET  /tree        the container's inner HTML
//	GET  /mutations   the mutation journal as JSON
//	POST /dispatch    fire ?event= at the node at ?path= (e.g. "0/1")
//	GET  /ws          websocket stream of mutations as JSON
//	GET  /metrics     Prometheus metrics, when a gatherer is configured
//	GET  /healthz     liveness check
//
// # Usage
//
//	doc := htmlhost.New()
//	root := vdom.NewRoot(doc, doc.Container())
//	srv := inspect.New(root, doc, inspect.WithLogger(logger))
//	if err := srv.Render(ctx, vdom.C(demo.Counter, nil)); err != nil {
//	    return err
//	}
//	http.ListenAndServe(":7070", srv.Handler())
package inspect
