package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

const htmxRequestHeader = "HX-Request"

var htmlContentType = []string{"text/html; charset=utf-8"}

// nodeRender adapts a gomponents node to gin's render.Render.
type nodeRender struct {
	node g.Node
}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}

func renderNode(c *gin.Context, status int, node g.Node) {
	c.Render(status, nodeRender{node: node})
}

// isHTMX reports whether the request was issued by htmx, which expects a
// fragment instead of a full page.
func isHTMX(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader(htmxRequestHeader), "true")
}

// fragmentStatus keeps htmx responses at 200, since htmx does not swap
// error responses.
func fragmentStatus(c *gin.Context, status int) int {
	if isHTMX(c) {
		return http.StatusOK
	}
	return status
}
