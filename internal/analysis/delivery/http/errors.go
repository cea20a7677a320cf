package http

import (
	"errors"
	"net/http"

	"logsense/internal/analysis"
	pkgErrors "logsense/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, analysis.ErrEmptyText.Error())
	case errors.Is(err, analysis.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, analysis.ErrNotFound.Error())
	case errors.Is(err, analysis.ErrUpstream):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, analysis.ErrUpstream.Error())
	case errors.Is(err, analysis.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, analysis.ErrNotConfigured.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
