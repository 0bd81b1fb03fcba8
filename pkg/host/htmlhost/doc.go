// Package htmlhost implements host.Host on top of golang.org/x/net/html.
//
// A Document owns a <body> container and every node created through it.
// Attributes are stored on the html.Node, listeners are kept in a side
// table, and every primitive is appended to a mutation journal that
// tests and the inspector can read or subscribe to.
//
//	doc := htmlhost.New()
//	root := vdom.NewRoot(doc, doc.Container())
//	_ = root.Render(ctx, vdom.Div(vdom.Text("hi")))
//	fmt.Println(doc.HTML()) // <div>hi</div>
package htmlhost
