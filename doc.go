/*
The hlayout library.

This library provides small composers for building HTML strings out of
literal template text and interpolated values, and a layout-governed
composer that renders a body fragment into a layout file at a marker.

A composer takes Segments, the ordered interleaving of literal fragments and
placeholder values, and returns the rendered string:

	page, err := hlayout.GovernedTemplate("layout.html", nil)
	if err != nil {
		log.Fatal(err)
	}
	out := page(hlayout.NewSegments(
		[]string{"<h1>", "</h1>"}, title))

Literal fragments are trusted text. Placeholder values are coerced to strings
and, depending on the composer used, escaped with EscapeHTML.
*/
package hlayout
