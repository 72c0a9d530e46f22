// Package proxy routes API Gateway REST proxy events to handlers by method
// and path. It lets a single function serve every catalog endpoint.
//
// The router is deliberately small: routes are tried in the order they were
// added and the first match wins.
package proxy
