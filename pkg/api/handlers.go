package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ssargent/hatdecoder/pkg/hat"
)

// Server holds the API server state
type Server struct {
	decoder IDecoder
	config  ServerConfig
	metrics *Metrics
	log     *logrus.Logger
}

// NewServer creates a new API server
func NewServer(decoder IDecoder, config ServerConfig, metrics *Metrics, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		decoder: decoder,
		config:  config,
		metrics: metrics,
		log:     log,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDecode decodes the container in the request body and returns its
// record as JSON.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	c, ok := s.decodeBody(w, r)
	if !ok {
		return
	}

	resp := DecodeResponse{
		TeamName:  c.Record.TeamName,
		ImageSize: c.Record.ImageSize,
		Variant:   c.Variant.String(),
		Image:     c.Record.Image,
	}
	if c.Variant == hat.VariantComplex {
		resp.BaseKey = c.BaseKeyClass.String()
	}
	sendSuccess(w, resp)
}

// handleDecodeImage decodes the container in the request body and returns the
// raw image.
func (s *Server) handleDecodeImage(w http.ResponseWriter, r *http.Request) {
	c, ok := s.decodeBody(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(c.Record.Image))
	w.Header().Set("Content-Length", strconv.Itoa(len(c.Record.Image)))
	w.Header().Set("X-Hat-Team", url.PathEscape(c.Record.TeamName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(c.Record.Image)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (*hat.Container, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, fmt.Sprintf("Container larger than %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	if len(raw) == 0 {
		sendError(w, "Request body is empty", http.StatusBadRequest)
		return nil, false
	}

	start := time.Now()
	c, err := s.decoder.Inspect(raw)
	duration := time.Since(start)

	if err != nil {
		s.metrics.RecordDecode("unknown", kindLabel(err), len(raw), duration)
		s.log.WithError(err).WithField("bytes", len(raw)).Warn("Decode failed")
		sendError(w, err.Error(), errorStatus(err))
		return nil, false
	}

	s.metrics.RecordDecode(c.Variant.String(), statusSuccess, len(raw), duration)
	return c, true
}

func kindLabel(err error) string {
	switch hat.Kind(err) {
	case hat.ErrStructural:
		return "structural"
	case hat.ErrInvalidBaseKey:
		return "invalid_base_key"
	case hat.ErrUnsupportedVariant:
		return "unsupported"
	default:
		return statusError
	}
}

// errorStatus maps a decode error to an HTTP status code
func errorStatus(err error) int {
	switch hat.Kind(err) {
	case hat.ErrStructural, hat.ErrInvalidBaseKey:
		return http.StatusUnprocessableEntity
	case hat.ErrUnsupportedVariant:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
