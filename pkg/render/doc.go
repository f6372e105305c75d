// Package render turns DOT documents into images.
//
// It is the boundary between grafo and Graphviz. Two engines are provided:
//
//   - [Embedded] runs Graphviz in process through go-graphviz, so no
//     external tools are needed
//   - [Command] pipes the document into a Graphviz executable such as
//     fdp and reads the image from its stdout
//
// Both satisfy [Renderer], which extends graph.Renderer with an ID used in
// cache keys. [Cached] wraps any Renderer with a cache.Cache so identical
// documents are laid out only once.
//
//	r := render.NewCached(render.Embedded{Layout: render.LayoutFDP}, c, 0, logger)
//	png, err := r.Render(ctx, g.DOT(), render.FormatPNG)
//
// Failures of the rendering collaborator are RENDER_FAILED errors and are
// never retried.
package render
