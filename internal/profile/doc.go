// Package profile holds the port table, URL table, and repository identity
// used to render artifacts and build completion reports. The default profile
// is embedded at compile time; callers overlay config/env overrides and then
// pass the value around explicitly so alternate tables can be tested without
// touching global state.
package profile
