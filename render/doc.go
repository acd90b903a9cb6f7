// Package render draws a roadmap year as an HTML page or a text timeline.
package render
