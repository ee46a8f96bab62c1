package thumbnail

import "errors"

var (
	// ErrInvalidURL is returned for urls that are not absolute http(s) urls.
	ErrInvalidURL = errors.New("invalid image url")
	// ErrDownloadFailed is returned when the image cannot be fetched.
	ErrDownloadFailed = errors.New("image download failed")
	// ErrUnsupportedImage is returned when the data is not a known image.
	ErrUnsupportedImage = errors.New("unsupported image")
)
