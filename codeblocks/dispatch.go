package codeblocks

import (
	"encoding/json"
	"errors"
	"io"
	"maps"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-codeblocks/internal/app"
	handler "github.com/MKhiriev/go-codeblocks/internal/handler/http"
	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/utils"
)

// sniffLen is the number of bytes http.DetectContentType looks at.
const sniffLen = 512

// dispatch adapts h to http.Handler: it collects the request arguments,
// runs h once and writes its result. Bodies larger than maxBody bytes are
// rejected with 413; zero disables the limit.
func dispatch(h Handler, maxBody int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maxBody > 0 && r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		}

		args, err := parseArgs(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		result, err := h.Exec(r, args)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeResult(w, r, result)
	})
}

func parseArgs(r *http.Request) (Args, error) {
	args := make(Args)

	switch r.Method {
	case http.MethodPost, http.MethodPut:
		if err := decodeBody(r, args); err != nil {
			return nil, err
		}
	default:
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				args[key] = values[0]
			}
		}
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			args[key] = rctx.URLParams.Values[i]
		}
	}

	return args, nil
}

// decodeBody merges a JSON object body into args. An empty or null body
// leaves args empty.
func decodeBody(r *http.Request, args Args) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewHTTPError(http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge)
		}
		return NewHTTPError(http.StatusBadRequest, app.MsgInvalidJSONBody)
	}
	if body == nil {
		return nil
	}

	object, ok := body.(map[string]any)
	if !ok {
		return NewHTTPError(http.StatusBadRequest, app.MsgBodyNotObject)
	}
	maps.Copy(args, object)

	return nil
}

func writeResult(w http.ResponseWriter, r *http.Request, result any) {
	status := http.StatusOK
	body := result

	switch v := result.(type) {
	case *Response:
		body = nil
		if v != nil {
			status, body = v.Status, v.Body
			copyHeader(w.Header(), v.Header)
		}
	case Response:
		status, body = v.Status, v.Body
		copyHeader(w.Header(), v.Header)
	}
	if status == 0 {
		status = http.StatusOK
	}

	writeBody(w, r, status, body)
}

func writeBody(w http.ResponseWriter, r *http.Request, status int, body any) {
	log := logger.FromRequest(r)

	switch v := body.(type) {
	case []byte:
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(v))
		}
		w.WriteHeader(status)
		if _, err := w.Write(v); err != nil {
			log.Err(err).Str("func", "writeBody").Msg("error writing response body")
		}
	case io.Reader:
		if closer, ok := v.(io.Closer); ok {
			defer closer.Close()
		}
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(v, head)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			writeError(w, r, err)
			return
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(head[:n]))
		}
		w.WriteHeader(status)
		if _, err := w.Write(head[:n]); err != nil {
			log.Err(err).Str("func", "writeBody").Msg("error writing response body")
			return
		}
		if _, err := io.Copy(w, v); err != nil {
			log.Err(err).Str("func", "writeBody").Msg("error streaming response body")
		}
	default:
		if _, err := utils.WriteJSON(w, body, status); err != nil {
			log.Err(err).Str("func", "writeBody").Msg("error encoding response body")
		}
	}
}

// writeError answers err with {"message": ...}. HTTPErrors keep their
// status and message, storage errors are mapped to their status, anything
// else is a 500 with the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		log.Debug().Err(err).Str("uri", r.RequestURI).Msg("handler returned HTTP error")
		utils.WriteError(w, httpErr.Status, httpErr.message())
		return
	}

	status := handler.StatusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Str("method", r.Method).Msg("handler failed")
	} else {
		log.Debug().Err(err).Str("uri", r.RequestURI).Msg("handler failed")
	}
	utils.WriteError(w, status, http.StatusText(status))
}

func copyHeader(dst, src http.Header) {
	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
