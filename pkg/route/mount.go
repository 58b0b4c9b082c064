package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler resolves a tool invocation for a matched Node and runtime
// params into an HTTP response. Callers supply one per tool entity;
// Mount looks it up by entity ID.
type Handler func(c *gin.Context, n *Node, params map[string]string)

// Mount registers every KindTool node in t as a gin route under group,
// translating each PathPattern into gin's own `:name`/`*name` syntax and
// dispatching to the Handler registered for that node's entity in
// handlers. Nodes with no registered handler are skipped.
func Mount(group *gin.RouterGroup, t *Tree, handlers map[string]Handler) {
	for _, n := range t.FlattenToolNodes() {
		h, ok := handlers[string(n.Entity)]
		if !ok {
			continue
		}
		ginPath := toGinPath(n.Pattern)
		method := n.Method
		if method == "" {
			method = http.MethodGet
		}
		node := n
		handler := h
		group.Handle(method, ginPath, func(c *gin.Context) {
			params := map[string]string{}
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			handler(c, node, params)
		})
	}
}

// toGinPath renders a PathPattern into gin's router syntax: Dynamic
// segments keep their ":name" form, Greedy segments become "*name" (gin's
// own catch-all syntax), Static segments are passed through literally.
func toGinPath(p PathPattern) string {
	out := "/"
	for i, seg := range p.Segments() {
		if i > 0 {
			out += "/"
		}
		out += seg.Annotated()
	}
	return out
}
