// Package field defines the contract every form-field plugin satisfies: menu
// metadata, factories for the initial schema and UI hint fragments, and one
// render method per interaction mode. It also provides the plugin registry and
// the resolver that binds imported schema fragments back to plugin types.
//
// A plugin never writes documents. It receives the current slice of the
// schema, UI schema and form data in its props and reports replacements
// through the callbacks bound on the widget tree it returns.
package field
