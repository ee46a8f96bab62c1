// Package thumbnail implements the thumbnail code block: it downloads an
// image, fits it into a small box, encodes it as PNG and caches the result
// in blob storage under the source url.
package thumbnail
