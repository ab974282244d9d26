package gateway

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m"

	ResetColor = "\033[0m"
)

var methodColors = map[string]string{
	http.MethodGet:    Green,
	http.MethodPost:   Blue,
	http.MethodPut:    Cyan,
	http.MethodDelete: Yellow,
	http.MethodPatch:  Magenta,
}

func displayMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}

func statusColor(status int) string {
	switch {
	case status >= 500 || status == 0:
		return Red
	case status >= 400:
		return Yellow
	default:
		return Green
	}
}

// debugLogging logs each exchange with a coloured method prefix.
func debugLogging() ResponseInterceptor {
	return func(req *http.Request, resp *http.Response, err error) {
		if resp == nil {
			log.Debug().Err(err).Msgf("[%s] %s", displayMethod(req.Method), req.URL.Path)
			return
		}
		log.Debug().
			Str("request_id", req.Header.Get(RequestIDHeader)).
			Msgf("[%s] %s %s%d%s", displayMethod(req.Method), req.URL.Path, statusColor(resp.StatusCode), resp.StatusCode, ResetColor)
	}
}
