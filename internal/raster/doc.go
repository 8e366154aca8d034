// Package raster holds the in-memory pixel buffer edited by the image editor.
//
// A Buffer stores every pixel as a packed 32-bit ARGB value (0xAARRGGBB,
// non-premultiplied) in a flat row-major slice, so the pixel at (x, y) lives
// at index y*width + x. The buffer supports two region operations that the
// clipboard actions are built on:
//
//   - ExtractRegion reads a rectangle into a new row-major slice
//   - CompositeRegion overwrites a rectangle, clipped to the buffer bounds
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner, X increasing
// rightward and Y increasing downward. A Rect is an origin plus a width and
// height; unlike image.Rectangle it is never normalized, so a rectangle
// dragged "backwards" carries negative dimensions. Region operations reject
// negative dimensions with ErrRegionOutOfBounds.
//
// # Edge Policy
//
// Reads outside the buffer are lenient: ExtractRegion zero-pads cells that
// fall outside [0,width)x[0,height). Writes are clipped: CompositeRegion
// never touches a cell outside the buffer.
//
// # Display Image
//
// After every mutation the buffer rebuilds its display image (an
// *image.NRGBA) wholesale from the pixel slice. Image returns that committed
// representation; it is never patched incrementally.
package raster
