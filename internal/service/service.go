package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/outfitguide/web/internal/domain"
)

// UnknownErrorMessage is shown when a failure carries no description
const UnknownErrorMessage = "Unknown error"

// WeatherFetcher performs one weather lookup
type WeatherFetcher interface {
	FetchWeather(ctx context.Context, location string) (domain.WeatherResponse, error)
}

var _ WeatherFetcher = (*WeatherClient)(nil)

// ErrorMessage turns a failed search into the text shown to the user.
// Transport errors are reported by their cause, without the
// method and URL that net/http prepends.
func ErrorMessage(err error) string {
	if err == nil {
		return UnknownErrorMessage
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}
