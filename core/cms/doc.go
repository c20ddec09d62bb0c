// Package cms is the capability surface of the remote structured content store.
//
// The Client interface lists exactly the operations the reconcile engine consumes:
// schema listing, paginated entry and asset listing, entry create/update/publish/
// unpublish/delete, and the asset pipeline (upload bytes, create, process for a
// locale, fetch, publish). NewClient returns an implementation that talks to the
// Contentful Management API over HTTP using imroc/req.
//
// # Field Encoding
//
// Every field value is wrapped in a locale envelope: Fields maps a field id to a
// map from locale tag to value. References are typed Link values.
//
// # Errors
//
// Error documents returned by the API are decoded into *APIError, which carries
// the HTTP status, the store's error id and the operation that failed.
//
// # Testing
//
// The mocks subpackage provides a testify mock of Client.
package cms
