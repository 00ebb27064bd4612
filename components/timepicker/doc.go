// Package timepicker exposes the time picker over net/http.
//
// The conversion handler answers GET and HEAD requests with the decoded
// components and re-serialized value for the query parameters value, type,
// second, format, spliter, showUnits and locale. The markup handler renders
// the same request through an HTML renderer.
package timepicker
