package proxy

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// HandlerFunc serves a matched request.
type HandlerFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Route pairs an HTTP method and a path pattern with a handler.
type Route struct {
	Method  string
	Regex   *regexp.Regexp
	Handler HandlerFunc
}

// NewRoute anchors pattern and allows an optional trailing slash.
func NewRoute(method, pattern string, handler HandlerFunc) (*Route, error) {
	rx, err := regexp.Compile("^" + pattern + "/?$")
	if err != nil {
		return nil, errors.Wrapf(err, "failed compiling regex pattern '%s'", pattern)
	}

	return &Route{Method: method, Regex: rx, Handler: handler}, nil
}

func (route *Route) String() string {
	return fmt.Sprintf("%s %s", route.Method, route.Regex)
}

// IsMatch reports whether request has the route's method and a matching path.
func (route *Route) IsMatch(request events.APIGatewayProxyRequest) bool {
	if route.Method != request.HTTPMethod {
		return false
	}
	return route.Regex.MatchString(request.Path)
}
