// Package search provides the web search integration used to ground
// "search ..." requests. The Serper provider posts the query to the Serper
// Google search API and condenses the top organic results into a short
// plain-text digest that can be embedded in a prompt.
package search
