package proxy

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// Router dispatches to the first matching route, or to CatchAll when none
// matches.
//
//	router := &proxy.Router{}
//	router.GET("/books", books.Handle)
//	router.POST("/translate", translate.Handle)
//	if !router.Valid() {
//		return router.BuildErrors()
//	}
type Router struct {
	Routes   []*Route
	CatchAll HandlerFunc

	errors []error
}

// Valid returns true if every route was built successfully.
func (router *Router) Valid() bool {
	return len(router.errors) == 0
}

// AddRoute appends route to the routes used for matching.
func (router *Router) AddRoute(route *Route) {
	router.Routes = append(router.Routes, route)
}

// AddBuildError records a route construction failure.
func (router *Router) AddBuildError(err error) {
	router.errors = append(router.errors, err)
}

// BuildErrors folds every construction failure into one error.
func (router *Router) BuildErrors() error {
	topError := errors.New("failed building router")

	for _, err := range router.errors {
		topError = errors.Wrap(topError, err.Error())
	}

	return topError
}

// AddRouteIfNoError appends route, or records err when construction failed.
func (router *Router) AddRouteIfNoError(route *Route, err error) {
	if err != nil {
		router.AddBuildError(err)
	} else {
		router.AddRoute(route)
	}
}

// GET adds a GET route.
func (router *Router) GET(match string, handler HandlerFunc) {
	router.AddRouteIfNoError(NewRoute(http.MethodGet, match, handler))
}

// POST adds a POST route.
func (router *Router) POST(match string, handler HandlerFunc) {
	router.AddRouteIfNoError(NewRoute(http.MethodPost, match, handler))
}

// OPTIONS adds an OPTIONS route.
func (router *Router) OPTIONS(match string, handler HandlerFunc) {
	router.AddRouteIfNoError(NewRoute(http.MethodOptions, match, handler))
}

// Route executes the handler of the first matching route.
func (router *Router) Route(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	for _, route := range router.Routes {
		if route.IsMatch(request) {
			return route.Handler(ctx, request)
		}
	}

	if router.CatchAll != nil {
		return router.CatchAll(ctx, request)
	}

	return events.APIGatewayProxyResponse{}, errors.Errorf("'%s %s' not found", request.HTTPMethod, request.Path)
}
