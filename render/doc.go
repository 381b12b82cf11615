// Package render turns raster bands into viewable images and imports
// ordinary image pixels into rasters.
//
// Band values are normalized into [0,1] before coloring: integer bands are
// scaled by their radiometric resolution (or by the observed value range
// when contrast stretching is requested), float bands always by the observed
// range. Rendered results carry the image as base64 PNG alongside its
// dimensions, ready to embed in JSON responses.
//
// All functions read through the raster package's bounds-checked accessors
// and propagate its errors unchanged; an unreadable store surfaces as
// raster.ErrUnsupportedOperation.
package render
