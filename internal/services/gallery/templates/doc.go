// Package templates renders gallery markup as templ components.
//
// Components are pure: they read only their arguments and the children
// carried on the render context.
package templates
