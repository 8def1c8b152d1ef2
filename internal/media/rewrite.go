package media

import "strings"

// Rewriter converts raw storage-object URLs into their public
// delivery-network form. It is a fixed prefix substitution: content stored
// at <origin>/media/abc.jpg is served from <cdn>/media/abc.jpg.
type Rewriter struct {
	origin string
	cdn    string
}

// NewRewriter builds a Rewriter from the storage origin and CDN base URLs.
func NewRewriter(origin, cdn string) *Rewriter {
	return &Rewriter{origin: origin, cdn: cdn}
}

// Rewrite returns the delivery URL for url. References outside the storage
// origin pass through unchanged.
func (r *Rewriter) Rewrite(url string) string {
	return strings.Replace(url, r.origin, r.cdn, 1)
}
