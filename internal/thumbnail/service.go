package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-codeblocks/codeblocks"
	"github.com/MKhiriev/go-codeblocks/internal/app"
	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/utils"
)

// Thumbnail box, in pixels.
const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// Storage caches thumbnails by source url. [codeblocks.BlobStorage]
// implements it.
type Storage interface {
	Create(ctx context.Context, key string, data []byte) error
	Retrieve(ctx context.Context, key string) ([]byte, error)
}

// Service produces cached thumbnails.
type Service struct {
	storage Storage
	client  *utils.HTTPClient
	width   uint
	height  uint

	logger *logger.Logger
}

func NewService(storage Storage, client *utils.HTTPClient, logger *logger.Logger) *Service {
	return &Service{
		storage: storage,
		client:  client,
		width:   DefaultWidth,
		height:  DefaultHeight,
		logger:  logger,
	}
}

// Thumbnail returns the PNG thumbnail of the image at rawURL, from the
// cache when present.
func (s *Service) Thumbnail(ctx context.Context, rawURL string) ([]byte, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	cached, err := s.storage.Retrieve(ctx, rawURL)
	if err == nil {
		s.logger.Debug().Str("url", rawURL).Msg("thumbnail served from cache")
		return cached, nil
	}
	if !errors.Is(err, codeblocks.ErrNotFound) {
		return nil, fmt.Errorf("error reading thumbnail cache: %w", err)
	}

	data, err := s.download(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	thumb, err := Make(data, s.width, s.height)
	if err != nil {
		return nil, err
	}

	// a concurrent request may have stored it first
	if err := s.storage.Create(ctx, rawURL, thumb); err != nil && !errors.Is(err, codeblocks.ErrAlreadyExists) {
		return nil, fmt.Errorf("error caching thumbnail: %w", err)
	}
	s.logger.Debug().Str("url", rawURL).Int("size", len(thumb)).Msg("thumbnail created")

	return thumb, nil
}

// Exec handles POST /thumbnail {"url": "..."} and answers with the PNG.
func (s *Service) Exec(r *http.Request, args codeblocks.Args) (any, error) {
	var request struct {
		URL string `json:"url"`
	}
	if err := args.Decode(&request); err != nil {
		return nil, err
	}
	if request.URL == "" {
		return nil, codeblocks.NewHTTPError(http.StatusBadRequest, app.MsgURLRequired)
	}

	thumb, err := s.Thumbnail(r.Context(), request.URL)
	switch {
	case errors.Is(err, ErrInvalidURL):
		return nil, codeblocks.NewHTTPError(http.StatusBadRequest, app.MsgInvalidURL)
	case errors.Is(err, ErrDownloadFailed):
		return nil, codeblocks.NewHTTPError(http.StatusBadGateway, app.MsgDownloadFailed)
	case errors.Is(err, ErrUnsupportedImage):
		return nil, codeblocks.NewHTTPError(http.StatusUnprocessableEntity, app.MsgUnsupportedImage)
	case err != nil:
		return nil, err
	}

	response := codeblocks.NewResponse(http.StatusOK, thumb)
	response.Header.Set("Content-Type", "image/png")
	return response, nil
}

func (s *Service) download(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrDownloadFailed, resp.Status())
	}

	return resp.Body(), nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	return nil
}
