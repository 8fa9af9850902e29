package routes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// ProxyHandler is the signature of an API Gateway proxy Lambda handler.
type ProxyHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Handlers are the functions the local server exposes.
type Handlers struct {
	Recent      ProxyHandler
	DeviceQuery ProxyHandler
}

// NewRouter registers the API Gateway routes on a gorilla/mux router, mirroring
// the paths the functions are deployed under.
func NewRouter(h Handlers) *mux.Router {
	router := mux.NewRouter()

	router.Handle("/telemetry/recent", Adapt(h.Recent)).Methods(http.MethodGet)
	router.Handle("/devices/telemetry", Adapt(h.DeviceQuery)).Methods(http.MethodGet)
	router.Handle("/devices/{deviceId}/telemetry", Adapt(h.DeviceQuery)).Methods(http.MethodGet)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods(http.MethodGet)

	return router
}

// WithCORS wraps h with a CORS policy for the given origins.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(h)
}

// Adapt serves a proxy handler over plain HTTP by building the event API Gateway would send.
func Adapt(handler ProxyHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := toProxyRequest(r)
		if err != nil {
			slog.Error("Failed to read request", "error", err)
			http.Error(w, "Error reading request body", http.StatusBadRequest)
			return
		}

		resp, err := handler(r.Context(), event)
		if err != nil {
			slog.Error("Handler returned an error", "error", err, "request_id", event.RequestContext.RequestID)
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
		writeProxyResponse(w, resp)
	})
}

func toProxyRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayProxyRequest{}, err
		}
		body = b
	}

	event := events.APIGatewayProxyRequest{
		Resource:   routeTemplate(r),
		Path:       r.URL.Path,
		HTTPMethod: r.Method,
		Body:       string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  uuid.NewString(),
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
		},
	}

	if len(r.Header) > 0 {
		event.Headers = make(map[string]string, len(r.Header))
		event.MultiValueHeaders = make(map[string][]string, len(r.Header))
		for k, v := range r.Header {
			event.Headers[k] = strings.Join(v, ",")
			event.MultiValueHeaders[k] = v
		}
	}

	// API Gateway keeps the last value of a repeated query parameter.
	if q := r.URL.Query(); len(q) > 0 {
		event.QueryStringParameters = make(map[string]string, len(q))
		event.MultiValueQueryStringParameters = make(map[string][]string, len(q))
		for k, v := range q {
			event.QueryStringParameters[k] = v[len(v)-1]
			event.MultiValueQueryStringParameters[k] = v
		}
	}

	if vars := mux.Vars(r); len(vars) > 0 {
		event.PathParameters = vars
	}
	return event, nil
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func writeProxyResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
