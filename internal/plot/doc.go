// Package plot renders walk paths to image files.
//
// A [Figure] is the serializable rendering object built from a path: 1-D
// paths are plotted against their step index, 2-D paths directly, and 3-D
// paths through a fixed perspective [Camera]. The [Plotter] writes a figure
// as a static image (PNG, JPEG or SVG) or as a GIF that reveals the path one
// position per frame, and can persist the figure beside the image as YAML so
// it can be rendered again later.
package plot
