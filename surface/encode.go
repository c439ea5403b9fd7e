// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported snapshot mime types.
const (
	MIMETypePNG  = "image/png"
	MIMETypeBMP  = "image/bmp"
	MIMETypeTIFF = "image/tiff"
)

// ErrInvalidDataURL is returned when a string is not a base64 image data URI.
var ErrInvalidDataURL = errors.New("surface: invalid data URL")

// NormalizeMIMEType returns the mime type an encoder will actually produce
// for the requested one. Unknown and empty types map to PNG.
func NormalizeMIMEType(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case MIMETypeBMP:
		return MIMETypeBMP
	case MIMETypeTIFF:
		return MIMETypeTIFF
	default:
		return MIMETypePNG
	}
}

// Encode writes img in the given mime type and returns the encoded bytes and
// the mime type actually used.
func Encode(img image.Image, mimeType string) ([]byte, string, error) {
	mimeType = NormalizeMIMEType(mimeType)

	var buf bytes.Buffer
	var err error
	switch mimeType {
	case MIMETypeBMP:
		err = bmp.Encode(&buf, img)
	case MIMETypeTIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, mimeType, fmt.Errorf("surface: encode %s: %w", mimeType, err)
	}
	return buf.Bytes(), mimeType, nil
}

// EncodeDataURL encodes img as a base64 "data:" URI.
func EncodeDataURL(img image.Image, mimeType string) (string, error) {
	data, mimeType, err := Encode(img, mimeType)
	if err != nil {
		return "", err
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ParseDataURL splits a base64 data URI into its mime type and payload.
func ParseDataURL(uri string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	mimeType, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: not base64", ErrInvalidDataURL)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	return mimeType, data, nil
}

// DecodeDataURL decodes an image data URI produced by EncodeDataURL.
func DecodeDataURL(uri string) (image.Image, error) {
	_, data, err := ParseDataURL(uri)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("surface: decode data URL: %w", err)
	}
	return img, nil
}
