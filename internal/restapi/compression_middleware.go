package restapi

import (
	"log/slog"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"wbexplorer.org/internal/appconf"
	"wbexplorer.org/internal/logging"
)

// compressibleTypes lists what the API, chart and page handlers send.
var compressibleTypes = []string{
	"application/json",
	"image/svg+xml",
	"text/html",
}

// NewCompressionMiddleware gzips JSON, SVG and HTML bodies of at least cfg.MinSize bytes.
// When gzhttp rejects cfg the error is logged and responses are sent uncompressed.
func NewCompressionMiddleware(cfg appconf.CompressionConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(cfg.MinSize),
		gzhttp.CompressionLevel(cfg.Level),
		gzhttp.ContentTypes(compressibleTypes),
	)
	if err != nil {
		logging.LogError(logger, "invalid compression settings, responses will not be compressed", err,
			slog.Int("min_size", cfg.MinSize),
			slog.Int("compression_level", cfg.Level),
			slog.String("component", "compression"))
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler { return wrapper(next) }
}

// compression returns the configured settings, or the defaults for a zero config.
func (api *RestAPI) compression() appconf.CompressionConfig {
	if api.Config.Compression == (appconf.CompressionConfig{}) {
		return appconf.DefaultCompression()
	}
	return api.Config.Compression
}
