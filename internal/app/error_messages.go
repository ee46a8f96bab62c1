// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the code block runtime and
// the bundled code blocks.
//
// They are written into {"message": ...} response bodies, so keeping them in
// one place keeps the wording consistent.
package app

const (
	// MsgInvalidJSONBody is returned when a POST or PUT body is not valid
	// JSON.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgBodyNotObject is returned when a POST or PUT body is valid JSON but
	// not an object, so it cannot be turned into arguments.
	MsgBodyNotObject = "request body must be a JSON object"

	// MsgBodyTooLarge is returned when a POST or PUT body exceeds the
	// configured size limit.
	MsgBodyTooLarge = "request body too large"

	// MsgInvalidArguments prefixes argument decoding failures.
	MsgInvalidArguments = "invalid arguments"

	// MsgURLRequired is returned when the thumbnail code block gets no url.
	MsgURLRequired = "url is required"

	// MsgInvalidURL is returned for urls that are not absolute http(s) urls.
	MsgInvalidURL = "url must be an absolute http or https url"

	// MsgDownloadFailed is returned when the source image cannot be fetched.
	MsgDownloadFailed = "failed to download image"

	// MsgUnsupportedImage is returned when the downloaded data is not a
	// decodable image.
	MsgUnsupportedImage = "unsupported image format"
)
