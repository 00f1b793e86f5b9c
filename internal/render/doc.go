// Package render substitutes configuration values into artifact templates.
// Rendering is pure: the same template and context always produce
// byte-identical output, and a reference to a variable the context does not
// supply is a hard error rather than a silent placeholder.
package render
